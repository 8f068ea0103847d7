package warp

import (
	"image"
	"image/color"
	"testing"
)

// uniformRGBA creates a w x h frame filled with a single color.
func uniformRGBA(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestBuildField_LuminanceExtremes(t *testing.T) {
	white := uniformRGBA(8, 8, color.RGBA{255, 255, 255, 255})
	f := BuildField(white)
	if f.Width() != 8 || f.Height() != 8 {
		t.Fatalf("expected 8x8 field, got %dx%d", f.Width(), f.Height())
	}
	if v := f.At(3, 3); v != 255 {
		t.Fatalf("white template should give 255, got %d", v)
	}

	black := uniformRGBA(8, 8, color.RGBA{0, 0, 0, 255})
	f = BuildField(black)
	if v := f.At(3, 3); v != 0 {
		t.Fatalf("black template should give 0, got %d", v)
	}
}

func TestBuildField_MonotonicInGray(t *testing.T) {
	prev := -1
	for _, g := range []uint8{0, 40, 80, 120, 160, 200, 255} {
		f := BuildField(uniformRGBA(2, 2, color.RGBA{g, g, g, 255}))
		v := int(f.At(0, 0))
		if v < prev {
			t.Fatalf("luminance not monotonic: gray %d gave %d after %d", g, v, prev)
		}
		prev = v
	}
}

func TestBuildField_GrayRoundTrips(t *testing.T) {
	// Rec.709 weights sum to 1, so a neutral gray reduces to itself.
	f := BuildField(uniformRGBA(4, 4, color.RGBA{137, 137, 137, 255}))
	if v := f.At(1, 2); v != 137 {
		t.Fatalf("expected 137, got %d", v)
	}
}

func TestBuildField_EmptyTemplate(t *testing.T) {
	f := BuildField(image.NewRGBA(image.Rect(0, 0, 0, 0)))
	if !f.Empty() {
		t.Fatalf("zero-sized template should yield empty field")
	}
	if f = BuildField(nil); !f.Empty() {
		t.Fatalf("nil template should yield empty field")
	}
}
