package opengl

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-theft-auto/glyphtext"
)

func fakeLookup(known map[string]int32) func(string) int32 {
	return func(name string) int32 {
		if v, ok := known[name]; ok {
			return v
		}
		return -1
	}
}

func TestResolveLocations(t *testing.T) {
	cfg := glyphtext.DefaultConfig()
	attribs := map[string]int32{"a_v4Position": 0, "a_v4FontColor": 1, "a_v2TexCoord": 2}
	uniforms := map[string]int32{"u_m4Projection": 3, "u_s2dTexture": 4}

	loc, err := resolveLocations(cfg, fakeLookup(attribs), fakeLookup(uniforms))
	if err != nil {
		t.Fatalf("resolveLocations = %v", err)
	}
	want := locations{position: 0, color: 1, texCoord: 2, projection: 3, sampler: 4}
	if loc != want {
		t.Errorf("locations = %+v, want %+v", loc, want)
	}
	if !loc.resolved() {
		t.Error("resolved() = false")
	}
}

func TestResolveLocationsMissing(t *testing.T) {
	cfg := glyphtext.DefaultConfig()
	names := []string{"a_v4Position", "a_v4FontColor", "a_v2TexCoord", "u_m4Projection", "u_s2dTexture"}

	for _, missing := range names {
		t.Run(missing, func(t *testing.T) {
			known := map[string]int32{}
			for i, n := range names {
				if n != missing {
					known[n] = int32(i)
				}
			}

			loc, err := resolveLocations(cfg, fakeLookup(known), fakeLookup(known))
			if !errors.Is(err, glyphtext.ErrLocationNotFound) {
				t.Fatalf("err = %v, want ErrLocationNotFound", err)
			}
			if !strings.Contains(err.Error(), missing) {
				t.Errorf("error %q does not name %s", err, missing)
			}
			if loc.resolved() {
				t.Error("failed resolve returned usable locations")
			}
		})
	}
}

func TestUnresolvedLocations(t *testing.T) {
	if unresolvedLocations().resolved() {
		t.Error("unresolvedLocations().resolved() = true")
	}
}
