package surface

import (
	"image"
	"io"

	"github.com/MaxMyalkin/SimplyPDF/internal/geometry"
)

// Color is an RGB color with 0-255 components
type Color struct {
	R int
	G int
	B int
}

// Common colors
var (
	White     = Color{R: 255, G: 255, B: 255}
	Black     = Color{R: 0, G: 0, B: 0}
	LightGray = Color{R: 240, G: 240, B: 240}
)

// PaintStyle controls how a rectangle is painted
type PaintStyle int

const (
	// PaintStyleFill fills the rectangle
	PaintStyleFill PaintStyle = iota
	// PaintStyleStroke draws the rectangle outline
	PaintStyleStroke
	// PaintStyleFillStroke fills and outlines the rectangle
	PaintStyleFillStroke
)

// Paint describes how rectangles are drawn
type Paint struct {
	Color     Color
	Style     PaintStyle
	LineWidth float64
}

// TextPaint describes how text is drawn
type TextPaint struct {
	// Family is the font family name ("Helvetica", "Times", "Courier")
	Family string
	// Style is the fpdf style string: "" regular, "B" bold, "I" italic, "BI" both
	Style string
	// Size is the font size in points
	Size  float64
	Color Color
}

// Surface is one drawable page. Coordinates are in points with the
// origin at the top-left corner of the page.
//
// A surface is owned by exactly one document session at a time and
// becomes read-only once its page has been finished.
type Surface interface {
	// Save pushes the current transform onto the state stack
	Save()
	// Restore pops the most recently saved transform
	Restore()
	// Translate shifts the origin of subsequent drawing by (dx, dy)
	Translate(dx, dy float64)

	// DrawRect draws a rectangle with the given paint
	DrawRect(r geometry.Rect, p Paint)
	// DrawBitmap draws the src region of img scaled into dst
	DrawBitmap(img image.Image, src, dst geometry.Rect)
	// DrawText draws a single line of text with its baseline derived
	// from y as the top of the line box
	DrawText(s string, x, y float64, p TextPaint)
	// MeasureText returns the width of s in points when drawn with p
	MeasureText(s string, p TextPaint) float64

	// PageWidth returns the page width in points
	PageWidth() float64
	// PageHeight returns the page height in points
	PageHeight() float64
}

// Factory creates, finalizes and serializes pages. The core never
// touches the output format directly; everything goes through here.
type Factory interface {
	// StartPage opens the page with the given zero-based index and
	// returns its drawing surface
	StartPage(index int) (Surface, error)
	// FinishPage seals a surface; further draws on it are discarded
	FinishPage(s Surface) error
	// WriteTo serializes every finished page to w
	WriteTo(w io.Writer) error
	// Close releases the factory's resources
	Close() error
}
