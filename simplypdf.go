package simplypdf

import (
	"io"

	"github.com/MaxMyalkin/SimplyPDF/pkg/api"
)

type Document = api.Document
type Options = api.Options
type Option = api.Option
type PageOrientation = api.PageOrientation
type ColorMode = api.ColorMode
type Color = api.Color
type TextPaint = api.TextPaint
type Alignment = api.Alignment
type Margins = api.Margins
type TextProperties = api.TextProperties
type ImageProperties = api.ImageProperties
type TableProperties = api.TableProperties
type CellContent = api.CellContent
type TextCell = api.TextCell
type ImageCell = api.ImageCell
type PageModifier = api.PageModifier
type HeaderModifier = api.HeaderModifier
type FooterModifier = api.FooterModifier
type WatermarkModifier = api.WatermarkModifier
type ResourceLoader = api.ResourceLoader

func NewDocument(w io.Writer, opts ...Option) (*Document, error) { return api.NewDocument(w, opts...) }
func DefaultOptions() Options                                    { return api.DefaultOptions() }
func NewResourceLoader(baseURL string) *ResourceLoader           { return api.NewResourceLoader(baseURL) }

var (
	WithPageSize        = api.WithPageSize
	WithMargins         = api.WithMargins
	WithDPI             = api.WithDPI
	WithColorMode       = api.WithColorMode
	WithLineHeight      = api.WithLineHeight
	WithBackground      = api.WithBackground
	WithStrictImages    = api.WithStrictImages
	WithModifier        = api.WithModifier
	WithDebug           = api.WithDebug
	WithPageOrientation = api.WithPageOrientation
	WithTitle           = api.WithTitle
	WithAuthor          = api.WithAuthor
	WithSubject         = api.WithSubject
	WithKeywords        = api.WithKeywords
	WithPaperSizeA3     = api.WithPaperSizeA3
	WithPaperSizeA4     = api.WithPaperSizeA4
	WithPaperSizeA5     = api.WithPaperSizeA5
	WithPaperSizeLetter = api.WithPaperSizeLetter
	WithPaperSizeLegal  = api.WithPaperSizeLegal

	White     = api.White
	Black     = api.Black
	LightGray = api.LightGray

	ErrFinished      = api.ErrFinished
	ErrInvalidBitmap = api.ErrInvalidBitmap
)

const (
	PageOrientationPortrait  = api.PageOrientationPortrait
	PageOrientationLandscape = api.PageOrientationLandscape

	ColorModeColor      = api.ColorModeColor
	ColorModeMonochrome = api.ColorModeMonochrome

	AlignStart  = api.AlignStart
	AlignCenter = api.AlignCenter
	AlignEnd    = api.AlignEnd
)
