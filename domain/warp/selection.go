package warp

import "image"

// ClampSelection builds a selection rectangle from four template-pixel
// coordinates given in any order. Reversed coordinate pairs are swapped so
// min <= max on both axes, then the rectangle is clamped to bounds. The
// result may be degenerate (zero width or height); placement rejects
// degenerate selections with ErrInvalidSelection.
func ClampSelection(x1, y1, x2, y2 int, bounds image.Rectangle) image.Rectangle {
	// image.Rect canonicalizes swapped coordinates.
	return image.Rect(x1, y1, x2, y2).Intersect(bounds)
}

// validSelection reports whether r can host a placement.
func validSelection(r image.Rectangle) bool {
	return r.Dx() > 0 && r.Dy() > 0
}
