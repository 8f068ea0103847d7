package warp

import "image"

// Field is the single-channel intensity field derived from a template's
// luminance. It is built once per template and is read-only afterwards, so it
// may be shared freely across concurrent placements.
type Field struct {
	w, h int
	pix  []uint8
}

// BuildField reduces the template to one Rec.709 luminance scalar per pixel.
// A nil or zero-sized template yields an empty field; every placement against
// an empty field fails with ErrNoSelectableArea.
func BuildField(tmpl image.Image) Field {
	if tmpl == nil {
		return Field{}
	}
	b := tmpl.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return Field{}
	}
	f := Field{w: w, h: h, pix: make([]uint8, w*h)}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, bl, _ := tmpl.At(b.Min.X+x, b.Min.Y+y).RGBA()
			lum := 0.2126*float64(r) + 0.7152*float64(g) + 0.0722*float64(bl)
			// 16-bit color values scale down to [0,255].
			f.pix[y*w+x] = uint8(lum/257.0 + 0.5)
		}
	}
	return f
}

// Width returns the field width in pixels.
func (f Field) Width() int { return f.w }

// Height returns the field height in pixels.
func (f Field) Height() int { return f.h }

// Empty reports whether the field covers no pixels.
func (f Field) Empty() bool { return f.w <= 0 || f.h <= 0 }

// At returns the intensity at (x, y). The caller must keep coordinates inside
// the field; placement code bounds-checks before calling.
func (f Field) At(x, y int) uint8 { return f.pix[y*f.w+x] }

// Bounds returns the field extent as a rectangle anchored at the origin.
func (f Field) Bounds() image.Rectangle { return image.Rect(0, 0, f.w, f.h) }
