package glyphtext_test

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/go-theft-auto/glyphtext"
)

func TestBatchIndexCount(t *testing.T) {
	cfg := glyphtext.DefaultConfig()
	for n := 0; n <= 40; n++ {
		var b glyphtext.Batch
		if err := b.AddString(cfg, 0, 0, strings.Repeat("x", n), glyphtext.ColorWhite); err != nil {
			t.Fatalf("n=%d: AddString: %v", n, err)
		}

		want := 0
		if n > 0 {
			want = 6*n - 2
		}
		if got := b.IndexCount(); got != want {
			t.Errorf("n=%d: IndexCount() = %d, want %d", n, got, want)
		}
		if b.Len() != n {
			t.Errorf("n=%d: Len() = %d", n, b.Len())
		}
		if len(b.Positions) != 12*n || len(b.TexCoords) != 8*n || len(b.Colors) != 16*n {
			t.Errorf("n=%d: array lengths %d/%d/%d", n, len(b.Positions), len(b.TexCoords), len(b.Colors))
		}
		if n > 0 && !reflect.DeepEqual(b.Indices[:4], []uint16{0, 1, 2, 3}) {
			t.Errorf("n=%d: first indices = %v, want [0 1 2 3]", n, b.Indices[:4])
		}
	}
}

func TestBatchStripTopology(t *testing.T) {
	var b glyphtext.Batch
	if err := b.AddString(glyphtext.DefaultConfig(), 0, 0, "abc", glyphtext.ColorWhite); err != nil {
		t.Fatal(err)
	}

	want := []uint16{
		0, 1, 2, 3,
		3, 4, 4, 5, 6, 7,
		7, 8, 8, 9, 10, 11,
	}
	if !reflect.DeepEqual(b.Indices, want) {
		t.Errorf("Indices = %v, want %v", b.Indices, want)
	}
}

func TestBatchIndicesIgnoreGlyphs(t *testing.T) {
	cfg := glyphtext.DefaultConfig()
	var a, b glyphtext.Batch
	_ = a.AddString(cfg, 0, 0, "hello", glyphtext.ColorRed)
	_ = b.AddString(cfg, 50, 90, "~~~~~", glyphtext.ColorBlue)

	if !reflect.DeepEqual(a.Indices, b.Indices) {
		t.Errorf("indices differ for equal lengths: %v vs %v", a.Indices, b.Indices)
	}
}

func TestBatchSplitAppendEqualsSingle(t *testing.T) {
	for _, scale := range []float32{1, 2, 0.5} {
		cfg := glyphtext.DefaultConfig().Apply(glyphtext.WithScale(scale))
		c := glyphtext.RGBA(10, 20, 30, 40)

		var whole glyphtext.Batch
		if err := whole.AddString(cfg, 5, 7, "ABC", c); err != nil {
			t.Fatal(err)
		}

		var split glyphtext.Batch
		if err := split.AddString(cfg, 5, 7, "AB", c); err != nil {
			t.Fatal(err)
		}
		if err := split.AddString(cfg, 5+cfg.Advance("AB"), 7, "C", c); err != nil {
			t.Fatal(err)
		}

		if !reflect.DeepEqual(whole.Positions, split.Positions) {
			t.Errorf("scale %v: positions differ\n got %v\nwant %v", scale, split.Positions, whole.Positions)
		}
		if !reflect.DeepEqual(whole.TexCoords, split.TexCoords) {
			t.Errorf("scale %v: texcoords differ", scale)
		}
		if !reflect.DeepEqual(whole.Colors, split.Colors) {
			t.Errorf("scale %v: colors differ", scale)
		}
		if !reflect.DeepEqual(whole.Indices, split.Indices) {
			t.Errorf("scale %v: indices differ\n got %v\nwant %v", scale, split.Indices, whole.Indices)
		}
	}
}

func TestBatchColorBroadcast(t *testing.T) {
	var b glyphtext.Batch
	if err := b.AddString(glyphtext.DefaultConfig(), 0, 0, "Q", glyphtext.RGBA(255, 0, 0, 255)); err != nil {
		t.Fatal(err)
	}

	want := []float32{
		1, 0, 0, 1,
		1, 0, 0, 1,
		1, 0, 0, 1,
		1, 0, 0, 1,
	}
	if !reflect.DeepEqual(b.Colors, want) {
		t.Errorf("Colors = %v, want %v", b.Colors, want)
	}
}

func TestBatchPositions(t *testing.T) {
	cfg := glyphtext.DefaultConfig().Apply(glyphtext.WithScale(2))
	var b glyphtext.Batch
	if err := b.AddString(cfg, 10, 20, "ab", glyphtext.ColorWhite); err != nil {
		t.Fatal(err)
	}

	want := []float32{
		10, 20, 0, 26, 20, 0, 10, 52, 0, 26, 52, 0,
		26, 20, 0, 42, 20, 0, 26, 52, 0, 42, 52, 0,
	}
	if !reflect.DeepEqual(b.Positions, want) {
		t.Errorf("Positions = %v, want %v", b.Positions, want)
	}
}

func TestBatchStopsAtNUL(t *testing.T) {
	var b glyphtext.Batch
	if err := b.AddString(glyphtext.DefaultConfig(), 0, 0, "ab\x00cd", glyphtext.ColorWhite); err != nil {
		t.Fatal(err)
	}
	if b.Len() != 2 {
		t.Errorf("Len() = %d, want 2", b.Len())
	}

	if err := b.AddString(glyphtext.DefaultConfig(), 0, 0, "", glyphtext.ColorWhite); err != nil {
		t.Fatal(err)
	}
	if b.Len() != 2 {
		t.Errorf("empty string changed Len() to %d", b.Len())
	}
}

func TestBatchFull(t *testing.T) {
	cfg := glyphtext.DefaultConfig()
	var b glyphtext.Batch
	if err := b.AddString(cfg, 0, 0, strings.Repeat("x", glyphtext.MaxGlyphs), glyphtext.ColorWhite); err != nil {
		t.Fatalf("filling batch: %v", err)
	}
	if last := b.Indices[len(b.Indices)-1]; last != 0xFFFF {
		t.Errorf("last index = %d, want 65535", last)
	}

	err := b.AddString(cfg, 0, 0, "y", glyphtext.ColorWhite)
	if !errors.Is(err, glyphtext.ErrBatchFull) {
		t.Fatalf("AddString past capacity: err = %v, want ErrBatchFull", err)
	}
	if b.Len() != glyphtext.MaxGlyphs {
		t.Errorf("failed append changed Len() to %d", b.Len())
	}
}

func TestBatchReset(t *testing.T) {
	var b glyphtext.Batch
	b.Reset() // never populated

	_ = b.AddString(glyphtext.DefaultConfig(), 0, 0, "abc", glyphtext.ColorWhite)
	b.Reset()
	b.Reset()

	if b.Len() != 0 || b.IndexCount() != 0 {
		t.Errorf("after Reset: Len=%d IndexCount=%d", b.Len(), b.IndexCount())
	}
	if b.Positions != nil || b.TexCoords != nil || b.Colors != nil || b.Indices != nil {
		t.Error("Reset should release all arrays")
	}

	_ = b.AddString(glyphtext.DefaultConfig(), 0, 0, "z", glyphtext.ColorWhite)
	if !reflect.DeepEqual(b.Indices, []uint16{0, 1, 2, 3}) {
		t.Errorf("indices after Reset = %v", b.Indices)
	}
}
