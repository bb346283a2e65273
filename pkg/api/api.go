// Package api is the public interface for composing paginated
// documents. A Document owns one composition session; text, image
// and table calls share the session's page, content height and
// overflow handling.
package api

import (
	"image"
	"io"

	"github.com/MaxMyalkin/SimplyPDF/internal/compose"
	"github.com/MaxMyalkin/SimplyPDF/internal/geometry"
	"github.com/MaxMyalkin/SimplyPDF/internal/res"
	"github.com/MaxMyalkin/SimplyPDF/internal/session"
	"github.com/MaxMyalkin/SimplyPDF/internal/surface"
)

// Re-exported content and placement types
type (
	// Color is an RGB color with 0-255 components
	Color = surface.Color
	// TextPaint describes how raw text is drawn by page modifiers
	TextPaint = surface.TextPaint
	// Alignment selects where content sits inside its container
	Alignment = geometry.Alignment
	// Margins are the resolved page margins in points
	Margins = geometry.Margins

	// TextProperties describes how a text run is drawn
	TextProperties = compose.TextProperties
	// ImageProperties describes how a bitmap is drawn
	ImageProperties = compose.ImageProperties
	// TableProperties describes table sizing and decoration
	TableProperties = compose.TableProperties
	// CellContent is anything a table cell can hold
	CellContent = compose.CellContent
	// TextCell holds wrapped text inside a table cell
	TextCell = compose.TextCell
	// ImageCell holds a bitmap inside a table cell
	ImageCell = compose.ImageCell

	// PageModifier is a per-page decoration
	PageModifier = session.PageModifier
	// HeaderModifier draws text inside the top margin of every page
	HeaderModifier = session.HeaderModifier
	// FooterModifier draws text inside the bottom margin of every page
	FooterModifier = session.FooterModifier
	// WatermarkModifier draws centered text on every page
	WatermarkModifier = session.WatermarkModifier

	// ResourceLoader fetches and decodes image resources from files,
	// URLs and data URLs, rasterizing SVG
	ResourceLoader = res.Loader
)

// NewResourceLoader creates an image resource loader resolving
// relative references against baseURL
func NewResourceLoader(baseURL string) *ResourceLoader {
	return res.NewLoader(baseURL)
}

const (
	// AlignStart places content at the leading edge
	AlignStart = geometry.AlignStart
	// AlignCenter centers content in the container
	AlignCenter = geometry.AlignCenter
	// AlignEnd places content at the trailing edge
	AlignEnd = geometry.AlignEnd
)

// Common colors
var (
	White     = surface.White
	Black     = surface.Black
	LightGray = surface.LightGray
)

// Errors callers can branch on
var (
	// ErrFinished is returned by any mutating call after Finish
	ErrFinished = session.ErrFinished
	// ErrInvalidBitmap is returned in strict mode for nil or empty bitmaps
	ErrInvalidBitmap = compose.ErrInvalidBitmap
)

// Document composes content onto paginated pages and serializes the
// result on Finish. It is not safe for concurrent use: composer
// calls must be issued sequentially.
type Document struct {
	options Options
	session *session.Session
	text    *compose.TextComposer
	image   *compose.ImageComposer
	table   *compose.TableComposer
	output  io.Writer
}

// NewDocument creates a document writing its serialized output to w
// on Finish. The first page is opened immediately, with the
// background painted and all configured modifiers applied.
func NewDocument(w io.Writer, opts ...Option) (*Document, error) {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	info := geometry.Resolve(geometry.Info{
		Paper: geometry.PaperSize{
			Width:  options.PageWidth,
			Height: options.PageHeight,
			Name:   "Custom",
		},
		Orientation: options.PageOrientation,
		DPI:         options.DPI,
		ColorMode:   options.ColorMode,
		Margins: geometry.Margins{
			Start:  options.MarginStart,
			Top:    options.MarginTop,
			End:    options.MarginEnd,
			Bottom: options.MarginBottom,
		},
	})

	factory := surface.NewFpdfFactory(info.Paper.Width, info.Paper.Height, surface.FpdfOptions{
		Title:    options.Title,
		Author:   options.Author,
		Subject:  options.Subject,
		Keywords: options.Keywords,
		Creator:  "SimplyPDF",
	})

	return newDocument(w, factory, info, options)
}

// newDocument wires a session and its composers over any page
// factory. Composers are constructed here, at session build time,
// so there are no hidden first-use initialization dependencies.
func newDocument(w io.Writer, factory surface.Factory, info geometry.Info, options Options) (*Document, error) {
	sess := session.New(factory, info, options.LineHeight, options.Background)
	sess.Debug = options.Debug
	for _, m := range options.Modifiers {
		sess.AddModifier(m)
	}

	text := compose.NewTextComposer(sess)
	img := compose.NewImageComposer(sess)
	img.Strict = options.StrictImages

	d := &Document{
		options: options,
		session: sess,
		text:    text,
		image:   img,
		table:   compose.NewTableComposer(sess, text, img),
		output:  w,
	}

	if err := sess.Start(options.Background); err != nil {
		return nil, err
	}
	return d, nil
}

// DrawText draws a wrapped text run at the current content height
func (d *Document) DrawText(text string, props TextProperties) error {
	return d.text.DrawText(text, props)
}

// DrawBitmap draws a bitmap at the current content height,
// downscaled to the usable width if necessary
func (d *Document) DrawBitmap(img image.Image, props ImageProperties, xMargin, yMargin float64) error {
	return d.image.DrawBitmap(img, props, xMargin, yMargin)
}

// DrawBitmapShifted is DrawBitmap with an extra horizontal shift
// applied after alignment
func (d *Document) DrawBitmapShifted(img image.Image, props ImageProperties, xMargin, yMargin, xShift float64) error {
	return d.image.DrawBitmapShifted(img, props, xMargin, yMargin, xShift)
}

// DrawTable draws a tabular grid, delegating cell content to the
// text and image composers
func (d *Document) DrawTable(rows [][]CellContent, props TableProperties) error {
	return d.table.DrawTable(rows, props)
}

// NewPage finalizes the current page and opens a fresh one with the
// given background
func (d *Document) NewPage(background Color) error {
	return d.session.NewPage(background)
}

// InsertEmptySpace advances the content height by the given amount
func (d *Document) InsertEmptySpace(height float64) error {
	return d.session.InsertEmptySpace(height)
}

// InsertEmptyLines advances the content height by count line
// heights; a negative count is a no-op
func (d *Document) InsertEmptyLines(count int) error {
	return d.session.InsertEmptyLines(count)
}

// AddContentHeight reports externally drawn content to the height
// accumulator
func (d *Document) AddContentHeight(delta float64) error {
	return d.session.AddContentHeight(delta)
}

// AddModifier registers a decoration applied to every page opened
// after this call. Use WithModifier to cover the first page too.
func (d *Document) AddModifier(m PageModifier) {
	d.session.AddModifier(m)
}

// Finish finalizes the current page, writes the document to the
// configured output and seals the session. A second call fails with
// ErrFinished and does not rewrite the output.
func (d *Document) Finish() error {
	return d.session.Finish(d.output)
}

// PageNumber returns the zero-based index of the current page
func (d *Document) PageNumber() int { return d.session.PageNumber() }

// ContentHeight returns the running content height on the current
// page, including the reserved top margin
func (d *Document) ContentHeight() float64 { return d.session.ContentHeight() }

// LineHeight returns the configured line height
func (d *Document) LineHeight() float64 { return d.session.LineHeight() }

// Margins returns the resolved page margins
func (d *Document) Margins() Margins { return d.session.Margins() }

// UsableWidth returns the drawable width of the current page
func (d *Document) UsableWidth() float64 { return d.session.UsableWidth() }

// UsableHeight returns the drawable height of the current page
func (d *Document) UsableHeight() float64 { return d.session.UsableHeight() }
