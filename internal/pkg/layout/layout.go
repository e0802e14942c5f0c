// Package layout maps block width/height values onto a 12-column CSS grid.
package layout

import "math"

const (
	// Columns in the display grid.
	Columns = 12
	// RowUnit is the pixel height of one grid row.
	RowUnit = 80
	// MaxRows caps how many row units a single block may span.
	MaxRows = 8

	// DefaultWidth and DefaultHeight apply when a block carries no
	// explicit dimensions (legacy rows, zeroed fields).
	DefaultWidth  = 6
	DefaultHeight = 200

	// MinHeight and MaxHeight bound the editable height range in pixels.
	MinHeight = 50
	MaxHeight = MaxRows * RowUnit
)

// Placement is a resolved grid slot for one block.
type Placement struct {
	ColSpan int `json:"colSpan"`
	RowSpan int `json:"rowSpan"`
}

// Resolve clamps raw block dimensions into a grid placement. Width is in
// columns (1..12); height is in pixels and maps to ceil(h/RowUnit) rows,
// capped at MaxRows. Zero or negative inputs fall back to the defaults.
func Resolve(width, height int) Placement {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return Placement{
		ColSpan: clamp(width, 1, Columns),
		RowSpan: clamp(int(math.Ceil(float64(height)/RowUnit)), 1, MaxRows),
	}
}

// ValidWidth reports whether an explicit width is inside the column range.
func ValidWidth(w int) bool { return w >= 1 && w <= Columns }

// ValidHeight reports whether an explicit height is inside the pixel range.
func ValidHeight(h int) bool { return h >= MinHeight && h <= MaxHeight }

// ClampWidth bounds an editor-supplied width to the valid column range.
func ClampWidth(w int) int {
	if w <= 0 {
		return DefaultWidth
	}
	return clamp(w, 1, Columns)
}

// ClampHeight bounds an editor-supplied height to the valid pixel range.
func ClampHeight(h int) int {
	if h <= 0 {
		return DefaultHeight
	}
	return clamp(h, MinHeight, MaxHeight)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
