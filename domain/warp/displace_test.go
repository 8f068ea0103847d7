package warp

import (
	"bytes"
	"image"
	"image/color"
	"testing"
)

// patternRGBA creates a deterministic non-uniform frame, including partially
// and fully transparent pixels.
func patternRGBA(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			a := uint8(255)
			switch (x + y) % 5 {
			case 0:
				a = 0
			case 1:
				a = 128
			}
			img.SetRGBA(x, y, color.RGBA{uint8(x * 7 % 256), uint8(y * 13 % 256), uint8((x ^ y) % 256), a})
		}
	}
	return img
}

func TestDisplace_FlatFieldIsIdentity(t *testing.T) {
	// A uniformly bright field has zero crease intensity everywhere, so the
	// warp must reduce to direct placement.
	field := BuildField(uniformRGBA(100, 100, color.RGBA{255, 255, 255, 255}))
	sel := image.Rect(0, 0, 100, 100)
	src := patternRGBA(100, 100)

	dst := displace(src, field, sel, WarpOptions{}.withDefaults())
	if !bytes.Equal(dst.Pix, src.Pix) {
		t.Fatalf("flat field should not move any pixel")
	}
}

func TestDisplace_DarkFieldMovesPixels(t *testing.T) {
	field := BuildField(uniformRGBA(60, 60, color.RGBA{0, 0, 0, 255}))
	sel := image.Rect(0, 0, 60, 60)
	src := uniformRGBA(60, 60, color.RGBA{255, 0, 0, 255})

	dst := displace(src, field, sel, WarpOptions{}.withDefaults())

	// Full crease intensity sags every pixel down by 6 rows, so the top rows
	// of the destination are never written and stay transparent.
	for y := 0; y < 6; y++ {
		if a := dst.RGBAAt(30, y).A; a != 0 {
			t.Fatalf("expected transparent gap at row %d, got alpha %d", y, a)
		}
	}
	// Source (0,0) has zero ripple phase and lands exactly at (0,6).
	if got := dst.RGBAAt(0, 6); got != (color.RGBA{255, 0, 0, 255}) {
		t.Fatalf("expected displaced red at (0,6), got %v", got)
	}
	// At least one destination differs from its source offset.
	if dst.RGBAAt(0, 0) == src.RGBAAt(0, 0) {
		t.Fatalf("expected visible displacement on dark field")
	}
}

func TestCreaseIntensity_MonotonicNonIncreasing(t *testing.T) {
	prev := 2.0
	for v := 0; v <= 255; v++ {
		c := creaseIntensity(float64(v)/255.0, 1.5)
		if c > prev {
			t.Fatalf("crease intensity increased at field value %d: %f > %f", v, c, prev)
		}
		if c < 0 || c > 1 {
			t.Fatalf("crease intensity out of range at %d: %f", v, c)
		}
		prev = c
	}
	if c := creaseIntensity(1.0, 1.5); c != 0 {
		t.Fatalf("bright field must give zero displacement, got %f", c)
	}
	if c := creaseIntensity(0.0, 1.5); c != 1 {
		t.Fatalf("dark field must give full displacement, got %f", c)
	}
}

func TestDisplaceParallel_MatchesSequential(t *testing.T) {
	// The band merge must reproduce the sequential last-writer-wins order
	// exactly, byte for byte.
	tmpl := patternRGBA(120, 90)
	field := BuildField(tmpl)
	sel := image.Rect(10, 5, 110, 85)
	src := patternRGBA(100, 80)
	opts := WarpOptions{}.withDefaults()

	seq := displace(src, field, sel, opts)
	opts.Parallel = true
	par := displace(src, field, sel, opts)

	if !bytes.Equal(seq.Pix, par.Pix) {
		t.Fatalf("parallel displacement differs from sequential output")
	}
}

func TestDisplace_SubRegionBoundsSkip(t *testing.T) {
	// A graphic larger than the selection samples the field sub-region at a
	// coarser step; every map coordinate must stay inside the sub-region.
	field := BuildField(uniformRGBA(50, 50, color.RGBA{0, 0, 0, 255}))
	sel := image.Rect(0, 0, 10, 10)
	src := uniformRGBA(25, 25, color.RGBA{0, 255, 0, 255})

	dst := displace(src, field, sel, WarpOptions{}.withDefaults())
	if dst.Rect.Dx() != 25 || dst.Rect.Dy() != 25 {
		t.Fatalf("unexpected destination size %v", dst.Rect)
	}
}
