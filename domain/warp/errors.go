package warp

import "errors"

// Error taxonomy for placement. All failures are returned as values; the
// package never logs and never panics across its boundary.
var (
	// ErrNoSelectableArea is returned when the template (and therefore the
	// intensity field) is zero-sized, so no selection can ever be placed.
	ErrNoSelectableArea = errors.New("warp: template has no selectable area")

	// ErrInvalidSelection is returned when placement is attempted with no
	// selection set, or with a degenerate (zero width or height) selection.
	ErrInvalidSelection = errors.New("warp: no valid selection set")

	// ErrDegenerateScale is returned when the requested scale collapses the
	// resized graphic to zero in either dimension.
	ErrDegenerateScale = errors.New("warp: scale produces zero-sized graphic")

	// ErrSelectionOutOfBounds is returned when the selection does not lie
	// inside the intensity field. The selection constructor clamps, so this
	// is a defensive check on hand-built rectangles.
	ErrSelectionOutOfBounds = errors.New("warp: selection outside intensity field")
)
