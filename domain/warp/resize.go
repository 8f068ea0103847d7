package warp

import (
	"image"
	"image/draw"

	"github.com/disintegration/imaging"
)

// fitToSelection computes the dimensions of the resized graphic. The
// selection scaled by the factor sets the anchor size; the graphic's own
// aspect ratio is then restored by growing the short side, so the resized
// graphic never inherits the selection's aspect. A target dimension that
// truncates to zero aborts with ErrDegenerateScale.
func fitToSelection(gw, gh, selW, selH int, scale float64) (int, int, error) {
	tw := int(float64(selW) * scale)
	th := int(float64(selH) * scale)
	if tw < 1 || th < 1 {
		return 0, 0, ErrDegenerateScale
	}
	aspect := float64(gw) / float64(gh)
	if aspect > float64(tw)/float64(th) {
		tw = int(float64(th) * aspect)
	} else {
		th = int(float64(tw) / aspect)
	}
	if tw < 1 || th < 1 {
		return 0, 0, ErrDegenerateScale
	}
	return tw, th, nil
}

// centerOffsets returns the top-left placement of a tw x th graphic centered
// in the selection. Floor division keeps symmetric overhang when the resized
// graphic is larger than the selection.
func centerOffsets(sel image.Rectangle, tw, th int) (int, int) {
	return sel.Min.X + floorHalf(sel.Dx()-tw), sel.Min.Y + floorHalf(sel.Dy()-th)
}

func floorHalf(v int) int {
	if v < 0 && v%2 != 0 {
		return v/2 - 1
	}
	return v / 2
}

// resizeGraphic resamples the graphic to tw x th with a Lanczos filter.
func resizeGraphic(g image.Image, tw, th int) *image.RGBA {
	return toRGBA(imaging.Resize(g, tw, th, imaging.Lanczos))
}

// toRGBA returns img as *image.RGBA anchored at the origin, copying only when
// the representation differs.
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out
}
