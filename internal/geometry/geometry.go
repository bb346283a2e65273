package geometry

// PaperSize represents a paper size in points (1/72 inch)
type PaperSize struct {
	Width  float64
	Height float64
	Name   string
}

// Standard paper sizes in points (1/72 inch)
var (
	PaperSizeA3     = PaperSize{Width: 841.89, Height: 1190.55, Name: "A3"}
	PaperSizeA4     = PaperSize{Width: 595.28, Height: 841.89, Name: "A4"}
	PaperSizeA5     = PaperSize{Width: 419.53, Height: 595.28, Name: "A5"}
	PaperSizeLetter = PaperSize{Width: 612.00, Height: 792.00, Name: "Letter"}
	PaperSizeLegal  = PaperSize{Width: 612.00, Height: 1008.00, Name: "Legal"}
)

// Orientation represents page orientation
type Orientation string

const (
	// OrientationPortrait lays pages out taller than wide
	OrientationPortrait Orientation = "portrait"
	// OrientationLandscape lays pages out wider than tall
	OrientationLandscape Orientation = "landscape"
)

// ColorMode represents the color mode documents are rendered in
type ColorMode int

const (
	// ColorModeColor renders content with its original colors
	ColorModeColor ColorMode = iota
	// ColorModeMonochrome converts bitmaps to grayscale before drawing
	ColorModeMonochrome
)

// Margins represents page margins in points.
// Start and End are the leading and trailing horizontal margins.
type Margins struct {
	Start  float64
	Top    float64
	End    float64
	Bottom float64
}

// Rect is an axis-aligned rectangle in page coordinates
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Info holds the resolved, immutable document geometry
type Info struct {
	Paper       PaperSize
	Orientation Orientation
	DPI         float64
	ColorMode   ColorMode
	Margins     Margins
}

// Resolve normalizes the configured geometry into concrete values:
// landscape swaps the paper dimensions and negative margins are
// coerced to zero.
func Resolve(info Info) Info {
	switch info.Orientation {
	case OrientationLandscape:
		if info.Paper.Width < info.Paper.Height {
			info.Paper.Width, info.Paper.Height = info.Paper.Height, info.Paper.Width
		}
	case OrientationPortrait, "":
		info.Orientation = OrientationPortrait
		if info.Paper.Width > info.Paper.Height {
			info.Paper.Width, info.Paper.Height = info.Paper.Height, info.Paper.Width
		}
	}

	if info.DPI <= 0 {
		info.DPI = 72
	}

	info.Margins = clampMargins(info.Margins)

	return info
}

// clampMargins coerces negative margins to zero
func clampMargins(m Margins) Margins {
	if m.Start < 0 {
		m.Start = 0
	}
	if m.Top < 0 {
		m.Top = 0
	}
	if m.End < 0 {
		m.End = 0
	}
	if m.Bottom < 0 {
		m.Bottom = 0
	}
	return m
}

// UsableWidth returns the drawable width of a page of the given width
func (i Info) UsableWidth(pageWidth float64) float64 {
	return pageWidth - i.Margins.Start - i.Margins.End
}

// UsableHeight returns the drawable height of a page of the given height
func (i Info) UsableHeight(pageHeight float64) float64 {
	return pageHeight - i.Margins.Top - i.Margins.Bottom
}
