package opengl

import (
	"fmt"

	"github.com/go-theft-auto/glyphtext"
)

// locations holds the resolved attribute and uniform locations of the
// text program. Unresolved entries are -1.
type locations struct {
	position   int32
	color      int32
	texCoord   int32
	projection int32
	sampler    int32
}

func unresolvedLocations() locations {
	return locations{position: -1, color: -1, texCoord: -1, projection: -1, sampler: -1}
}

// resolved reports whether every location was found.
func (l locations) resolved() bool {
	return l.position >= 0 && l.color >= 0 && l.texCoord >= 0 &&
		l.projection >= 0 && l.sampler >= 0
}

// resolveLocations looks up the names from cfg. attrib and uniform
// return -1 for unknown names, as glGetAttribLocation does.
func resolveLocations(cfg glyphtext.Config, attrib, uniform func(name string) int32) (locations, error) {
	loc := unresolvedLocations()

	lookups := []struct {
		kind   string
		name   string
		lookup func(string) int32
		dst    *int32
	}{
		{"attribute", cfg.PositionAttrib, attrib, &loc.position},
		{"attribute", cfg.ColorAttrib, attrib, &loc.color},
		{"attribute", cfg.TexCoordAttrib, attrib, &loc.texCoord},
		{"uniform", cfg.ProjectionUniform, uniform, &loc.projection},
		{"uniform", cfg.SamplerUniform, uniform, &loc.sampler},
	}
	for _, l := range lookups {
		v := l.lookup(l.name)
		if v == -1 {
			return unresolvedLocations(), fmt.Errorf("%w: %s %s", glyphtext.ErrLocationNotFound, l.kind, l.name)
		}
		*l.dst = v
	}
	return loc, nil
}
