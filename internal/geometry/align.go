package geometry

// Alignment selects where content sits inside its container
type Alignment int

const (
	// AlignStart places content at the leading edge
	AlignStart Alignment = iota
	// AlignCenter centers content in the container
	AlignCenter
	// AlignEnd places content at the trailing edge
	AlignEnd
)

// String returns the alignment name for diagnostics
func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignEnd:
		return "end"
	default:
		return "start"
	}
}

// HorizontalOffset returns the horizontal offset at which content of
// contentWidth is drawn inside a container of containerWidth.
// The function is pure; every composer resolves placement through it
// so alignment behaves identically across content types.
func HorizontalOffset(a Alignment, contentWidth, containerWidth float64) float64 {
	switch a {
	case AlignCenter:
		return (containerWidth - contentWidth) / 2
	case AlignEnd:
		return containerWidth - contentWidth
	default:
		return 0
	}
}

// CellHorizontalOffset resolves placement inside a cell, where the
// usable container is the cell width minus the horizontal margin on
// both sides.
func CellHorizontalOffset(a Alignment, contentWidth, cellWidth, xMargin float64) float64 {
	return xMargin + HorizontalOffset(a, contentWidth, cellWidth-2*xMargin)
}

// CellVerticalOffset centers content of contentHeight vertically in a
// cell of cellHeight, pulled up by the vertical margin.
func CellVerticalOffset(contentHeight, cellHeight, yMargin float64) float64 {
	return (cellHeight-contentHeight)/2 - yMargin
}
