package compose

import (
	"errors"
	"image"
	"image/draw"
	"math"

	"github.com/MaxMyalkin/SimplyPDF/internal/geometry"
	"github.com/MaxMyalkin/SimplyPDF/internal/session"
	xdraw "golang.org/x/image/draw"
)

// ErrInvalidBitmap is returned in strict mode when a nil or empty
// bitmap is passed to the image composer
var ErrInvalidBitmap = errors.New("invalid bitmap")

// ImageProperties describes how a bitmap is drawn
type ImageProperties struct {
	Alignment geometry.Alignment
	// DPI is the source density of the bitmap; zero means the
	// document density (ratio 1, one pixel per point at 72 DPI)
	DPI float64
}

// ImageComposer draws bitmaps into a session
type ImageComposer struct {
	s *session.Session
	// Strict makes invalid bitmaps an error instead of a silent skip
	Strict bool
}

// NewImageComposer creates an image composer bound to the session
func NewImageComposer(s *session.Session) *ImageComposer {
	return &ImageComposer{s: s}
}

// DrawBitmap draws img at the current content height, downscaled if
// wider than the usable width, and reports the consumed height.
// Invalid bitmaps are silently skipped unless Strict is set.
func (c *ImageComposer) DrawBitmap(img image.Image, props ImageProperties, xMargin, yMargin float64) error {
	return c.draw(img, props, xMargin, yMargin, 0, nil)
}

// DrawBitmapShifted is DrawBitmap with an extra horizontal shift
// applied after alignment
func (c *ImageComposer) DrawBitmapShifted(img image.Image, props ImageProperties, xMargin, yMargin, xShift float64) error {
	return c.draw(img, props, xMargin, yMargin, xShift, nil)
}

// DrawBitmapInCell draws img into a table cell using cell-relative
// placement. Cell content never reports height and never rotates the
// page; the table owns those decisions for its own bounds.
func (c *ImageComposer) DrawBitmapInCell(img image.Image, props ImageProperties, xMargin, yMargin float64, cell Cell) error {
	return c.draw(img, props, xMargin, yMargin, 0, &cell)
}

func (c *ImageComposer) draw(img image.Image, props ImageProperties, xMargin, yMargin, xShift float64, cell *Cell) error {
	if c.s.Finished() {
		return session.ErrFinished
	}
	if !c.s.Started() {
		return session.ErrNoPage
	}
	if img == nil || img.Bounds().Empty() {
		if c.Strict {
			return ErrInvalidBitmap
		}
		return nil
	}

	var targetWidth float64
	if cell != nil {
		targetWidth = cell.Bounds.Width - 2*xMargin
	} else {
		targetWidth = c.s.UsableWidth() - 2*xMargin
	}

	img, width, height := c.fit(img, props, targetWidth)

	if cell == nil {
		// Whole-unit fit check. Skipped when the page is still empty,
		// otherwise an oversized image would rotate forever.
		if height+DefaultSpacing > c.s.RemainingHeight() && !c.s.PageEmpty() {
			if err := c.s.NewPage(c.s.Background()); err != nil {
				return err
			}
			if err := c.s.InsertEmptyLines(1); err != nil {
				return err
			}
		}
	}

	if c.s.Info().ColorMode == geometry.ColorModeMonochrome {
		img = toGray(img)
	}

	var x, y float64
	if cell != nil {
		x = cell.Bounds.X + geometry.CellHorizontalOffset(props.Alignment, width, cell.Bounds.Width, xMargin)
		vy := geometry.CellVerticalOffset(height, cell.Bounds.Height, yMargin)
		if vy < 0 {
			vy = 0
		}
		y = cell.Bounds.Y + vy + yMargin
	} else {
		x = c.s.Margins().Start + xMargin + xShift +
			geometry.HorizontalOffset(props.Alignment, width, targetWidth)
		y = c.s.ContentHeight() + yMargin
	}

	src := geometry.Rect{
		Width:  float64(img.Bounds().Dx()),
		Height: float64(img.Bounds().Dy()),
	}
	c.s.Surface().DrawBitmap(img, src, geometry.Rect{X: x, Y: y, Width: width, Height: height})

	if cell != nil {
		return nil
	}
	return c.s.AddContentHeight(height + DefaultSpacing + 2*yMargin)
}

// fit converts the bitmap's pixel dimensions into drawn points via
// the source/target density ratio, downscaling the pixels when the
// drawn width would exceed targetWidth. The aspect ratio is
// preserved and bitmaps are never upscaled.
func (c *ImageComposer) fit(img image.Image, props ImageProperties, targetWidth float64) (image.Image, float64, float64) {
	bounds := img.Bounds()
	pxWidth := bounds.Dx()
	pxHeight := bounds.Dy()

	ratio := 1.0
	if props.DPI > 0 && c.s.Info().DPI > 0 {
		ratio = props.DPI / c.s.Info().DPI
	}
	width := math.Trunc(float64(pxWidth) * ratio)
	height := math.Trunc(float64(pxHeight) * ratio)

	if width <= targetWidth {
		return img, width, height
	}

	scale := targetWidth / width
	width = math.Trunc(targetWidth)
	height = math.Trunc(height * scale)

	scaledW := int(float64(pxWidth) * scale)
	scaledH := int(float64(pxHeight) * scale)
	if scaledW < 1 {
		scaledW = 1
	}
	if scaledH < 1 {
		scaledH = 1
	}

	scaled := image.NewRGBA(image.Rect(0, 0, scaledW, scaledH))
	xdraw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), img, bounds, xdraw.Over, nil)
	return scaled, width, height
}

// toGray converts a bitmap to grayscale for monochrome documents
func toGray(img image.Image) image.Image {
	bounds := img.Bounds()
	gray := image.NewGray(bounds)
	draw.Draw(gray, bounds, img, bounds.Min, draw.Src)
	return gray
}
