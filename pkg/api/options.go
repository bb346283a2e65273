package api

import (
	"github.com/MaxMyalkin/SimplyPDF/internal/geometry"
	"github.com/MaxMyalkin/SimplyPDF/internal/session"
	"github.com/MaxMyalkin/SimplyPDF/internal/surface"
)

// Options represents configuration options for a document
type Options struct {
	// Page dimensions in points
	PageWidth  float64
	PageHeight float64
	// Page orientation: portrait or landscape
	PageOrientation PageOrientation

	// Page margins in points
	MarginStart  float64
	MarginTop    float64
	MarginEnd    float64
	MarginBottom float64

	// Rendering options
	DPI        float64
	ColorMode  ColorMode
	LineHeight float64
	Background Color
	Debug      bool

	// StrictImages makes invalid bitmaps an error instead of a
	// silent skip
	StrictImages bool

	// Modifiers are applied to every page, including the first
	Modifiers []PageModifier

	// Document metadata
	Title    string
	Author   string
	Subject  string
	Keywords string
}

// Option is a function that modifies Options
type Option func(*Options)

// PageOrientation represents page orientation
type PageOrientation = geometry.Orientation

const (
	// PageOrientationPortrait sets the page to portrait orientation
	PageOrientationPortrait = geometry.OrientationPortrait
	// PageOrientationLandscape sets the page to landscape orientation
	PageOrientationLandscape = geometry.OrientationLandscape
)

// ColorMode represents the document color mode
type ColorMode = geometry.ColorMode

const (
	// ColorModeColor renders content with its original colors
	ColorModeColor = geometry.ColorModeColor
	// ColorModeMonochrome converts bitmaps to grayscale
	ColorModeMonochrome = geometry.ColorModeMonochrome
)

// DefaultOptions returns the default options
func DefaultOptions() Options {
	return Options{
		// Default to A4 paper size (595.28 x 841.89 points)
		PageWidth:  geometry.PaperSizeA4.Width,
		PageHeight: geometry.PaperSizeA4.Height,
		// Default page orientation
		PageOrientation: PageOrientationPortrait,

		// Default margins (1 inch = 72 points)
		MarginStart:  72,
		MarginTop:    72,
		MarginEnd:    72,
		MarginBottom: 72,

		// Default rendering options
		DPI:        72,
		ColorMode:  ColorModeColor,
		LineHeight: session.DefaultLineHeight,
		Background: surface.White,
		Debug:      false,
	}
}

// WithPageSize sets the page size in points
func WithPageSize(width, height float64) Option {
	return func(o *Options) {
		o.PageWidth = width
		o.PageHeight = height
	}
}

// WithMargins sets the page margins
func WithMargins(start, top, end, bottom float64) Option {
	return func(o *Options) {
		o.MarginStart = start
		o.MarginTop = top
		o.MarginEnd = end
		o.MarginBottom = bottom
	}
}

// WithDPI sets the document density
func WithDPI(dpi float64) Option {
	return func(o *Options) {
		o.DPI = dpi
	}
}

// WithColorMode sets the color mode
func WithColorMode(mode ColorMode) Option {
	return func(o *Options) {
		o.ColorMode = mode
	}
}

// WithLineHeight sets the line height used by the text composer and
// InsertEmptyLines. Non-positive values fall back to the default.
func WithLineHeight(height float64) Option {
	return func(o *Options) {
		o.LineHeight = height
	}
}

// WithBackground sets the default page background color
func WithBackground(color Color) Option {
	return func(o *Options) {
		o.Background = color
	}
}

// WithStrictImages makes invalid bitmaps fail instead of being
// silently skipped
func WithStrictImages() Option {
	return func(o *Options) {
		o.StrictImages = true
	}
}

// WithModifier registers a decoration applied to every page,
// including the first
func WithModifier(m PageModifier) Option {
	return func(o *Options) {
		o.Modifiers = append(o.Modifiers, m)
	}
}

// WithDebug sets the debug mode
func WithDebug(debug bool) Option {
	return func(o *Options) {
		o.Debug = debug
	}
}

// WithPageOrientation sets the page orientation
func WithPageOrientation(orientation PageOrientation) Option {
	return func(o *Options) {
		o.PageOrientation = orientation
	}
}

// WithTitle sets the document title
func WithTitle(title string) Option {
	return func(o *Options) {
		o.Title = title
	}
}

// WithAuthor sets the document author
func WithAuthor(author string) Option {
	return func(o *Options) {
		o.Author = author
	}
}

// WithSubject sets the document subject
func WithSubject(subject string) Option {
	return func(o *Options) {
		o.Subject = subject
	}
}

// WithKeywords sets the document keywords
func WithKeywords(keywords string) Option {
	return func(o *Options) {
		o.Keywords = keywords
	}
}

// WithPaperSizeA3 sets the page size to A3
func WithPaperSizeA3() Option {
	return WithPageSize(geometry.PaperSizeA3.Width, geometry.PaperSizeA3.Height)
}

// WithPaperSizeA4 sets the page size to A4
func WithPaperSizeA4() Option {
	return WithPageSize(geometry.PaperSizeA4.Width, geometry.PaperSizeA4.Height)
}

// WithPaperSizeA5 sets the page size to A5
func WithPaperSizeA5() Option {
	return WithPageSize(geometry.PaperSizeA5.Width, geometry.PaperSizeA5.Height)
}

// WithPaperSizeLetter sets the page size to US Letter
func WithPaperSizeLetter() Option {
	return WithPageSize(geometry.PaperSizeLetter.Width, geometry.PaperSizeLetter.Height)
}

// WithPaperSizeLegal sets the page size to US Legal
func WithPaperSizeLegal() Option {
	return WithPageSize(geometry.PaperSizeLegal.Width, geometry.PaperSizeLegal.Height)
}
