package warp

import (
	"image"
	"image/draw"
)

// Compositor owns everything needed to place graphics onto one template: the
// template pixels, its intensity field (built once) and the current selection.
// It replaces hidden mutable state with an explicit value the caller threads
// through; concurrent PlaceGraphic calls are safe as long as the selection is
// not changed at the same time.
type Compositor struct {
	template *image.RGBA
	field    Field
	sel      *image.Rectangle
	opts     WarpOptions
}

// NewCompositor copies the template into an origin-anchored RGBA buffer and
// derives its intensity field. A nil or zero-sized template is accepted; the
// resulting compositor rejects every placement with ErrNoSelectableArea.
func NewCompositor(template image.Image, opts WarpOptions) *Compositor {
	c := &Compositor{opts: opts.withDefaults()}
	if template == nil {
		return c
	}
	c.template = toRGBA(template)
	c.field = BuildField(c.template)
	return c
}

// SetSelection establishes the placement area from four template-pixel
// coordinates in any order. Coordinates are normalized and clamped to the
// template bounds.
func (c *Compositor) SetSelection(x1, y1, x2, y2 int) {
	bounds := image.Rectangle{}
	if c.template != nil {
		bounds = c.template.Bounds()
	}
	r := ClampSelection(x1, y1, x2, y2, bounds)
	c.sel = &r
}

// SelectionRect returns the current selection rectangle, or nil if none has
// been set.
func (c *Compositor) SelectionRect() *image.Rectangle {
	return c.sel
}

// PlaceGraphic resizes the graphic to the selection (preserving the graphic's
// aspect ratio), warps it against the intensity field and returns a new
// buffer with the warped graphic composited onto a copy of the template.
func (c *Compositor) PlaceGraphic(graphic image.Image, scale float64) (*image.RGBA, error) {
	if c.field.Empty() {
		return nil, ErrNoSelectableArea
	}
	if c.sel == nil || !validSelection(*c.sel) {
		return nil, ErrInvalidSelection
	}
	return Composite(c.template, c.field, *c.sel, graphic, scale, c.opts)
}

// Composite is the placement pipeline as a pure function: template and field
// in, fresh composite out. The field must have been built from the template;
// it is only read, so one field serves concurrent calls. The selection is in
// template pixel coordinates relative to the template's origin.
func Composite(template *image.RGBA, field Field, sel image.Rectangle, graphic image.Image, scale float64, opts WarpOptions) (*image.RGBA, error) {
	opts = opts.withDefaults()
	if template == nil || field.Empty() {
		return nil, ErrNoSelectableArea
	}
	if !validSelection(sel) {
		return nil, ErrInvalidSelection
	}
	if !sel.In(field.Bounds()) {
		return nil, ErrSelectionOutOfBounds
	}
	if graphic == nil {
		return nil, ErrDegenerateScale
	}
	gb := graphic.Bounds()
	if gb.Dx() < 1 || gb.Dy() < 1 {
		return nil, ErrDegenerateScale
	}

	tw, th, err := fitToSelection(gb.Dx(), gb.Dy(), sel.Dx(), sel.Dy(), scale)
	if err != nil {
		return nil, err
	}
	resized := resizeGraphic(graphic, tw, th)
	displaced := displace(resized, field, sel, opts)

	tb := template.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, tb.Dx(), tb.Dy()))
	draw.Draw(out, out.Bounds(), template, tb.Min, draw.Src)

	xOff, yOff := centerOffsets(sel, tw, th)
	target := image.Rect(xOff, yOff, xOff+tw, yOff+th)
	// Paste with the displaced buffer's own alpha as mask; transparent gaps
	// left by the forward mapping keep the template visible.
	draw.Draw(out, target, displaced, image.Point{}, draw.Over)
	recycleBuffer(displaced)
	return out, nil
}
