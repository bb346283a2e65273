package surface

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"

	"codeberg.org/go-pdf/fpdf"
	"github.com/MaxMyalkin/SimplyPDF/internal/geometry"
)

// FpdfFactory is a Factory backed by a single fpdf document.
// All pages share one fpdf instance; fpdf closes the previous page
// implicitly when a new one is added.
type FpdfFactory struct {
	pdf      *fpdf.Fpdf
	width    float64
	height   float64
	imageSeq int
	current  *fpdfSurface
}

// FpdfOptions contains document metadata passed through to fpdf
type FpdfOptions struct {
	Title    string
	Author   string
	Subject  string
	Keywords string
	Creator  string
}

// NewFpdfFactory creates a factory producing pages of the given size
// in points.
func NewFpdfFactory(width, height float64, options FpdfOptions) *FpdfFactory {
	orientation := "P"
	if width > height {
		orientation = "L"
	}

	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: orientation,
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: width, Ht: height},
	})

	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle(options.Title, true)
	pdf.SetAuthor(options.Author, true)
	pdf.SetSubject(options.Subject, true)
	pdf.SetKeywords(options.Keywords, true)
	pdf.SetCreator(options.Creator, true)
	pdf.SetFont("Helvetica", "", 12)

	return &FpdfFactory{
		pdf:    pdf,
		width:  width,
		height: height,
	}
}

// StartPage opens a new page and returns its surface
func (f *FpdfFactory) StartPage(index int) (Surface, error) {
	if f.pdf.Err() {
		return nil, fmt.Errorf("failed to start page %d: %w", index, f.pdf.Error())
	}

	f.pdf.AddPage()
	f.current = &fpdfSurface{factory: f}
	return f.current, nil
}

// FinishPage seals the surface so later draws are discarded
func (f *FpdfFactory) FinishPage(s Surface) error {
	fs, ok := s.(*fpdfSurface)
	if !ok {
		return fmt.Errorf("surface does not belong to this factory")
	}
	for fs.saveDepth > 0 {
		fs.Restore()
	}
	fs.finished = true
	return nil
}

// WriteTo serializes the document to w
func (f *FpdfFactory) WriteTo(w io.Writer) error {
	if f.pdf.Err() {
		return fmt.Errorf("failed to serialize document: %w", f.pdf.Error())
	}
	return f.pdf.Output(w)
}

// Close releases the underlying fpdf document
func (f *FpdfFactory) Close() error {
	f.pdf.Close()
	if f.pdf.Err() {
		return f.pdf.Error()
	}
	return nil
}

// fpdfSurface adapts one fpdf page to the Surface interface
type fpdfSurface struct {
	factory   *FpdfFactory
	finished  bool
	saveDepth int
}

func (s *fpdfSurface) Save() {
	if s.finished {
		return
	}
	s.factory.pdf.TransformBegin()
	s.saveDepth++
}

func (s *fpdfSurface) Restore() {
	if s.finished || s.saveDepth == 0 {
		return
	}
	s.factory.pdf.TransformEnd()
	s.saveDepth--
}

func (s *fpdfSurface) Translate(dx, dy float64) {
	if s.finished {
		return
	}
	s.factory.pdf.TransformTranslate(dx, dy)
}

func (s *fpdfSurface) DrawRect(r geometry.Rect, p Paint) {
	if s.finished {
		return
	}
	pdf := s.factory.pdf

	styleStr := "F"
	switch p.Style {
	case PaintStyleStroke:
		styleStr = "D"
	case PaintStyleFillStroke:
		styleStr = "FD"
	}
	if p.Style != PaintStyleFill {
		pdf.SetDrawColor(p.Color.R, p.Color.G, p.Color.B)
		width := p.LineWidth
		if width <= 0 {
			width = 1
		}
		pdf.SetLineWidth(width)
	}
	if p.Style != PaintStyleStroke {
		pdf.SetFillColor(p.Color.R, p.Color.G, p.Color.B)
	}

	pdf.Rect(r.X, r.Y, r.Width, r.Height, styleStr)
}

func (s *fpdfSurface) DrawBitmap(img image.Image, src, dst geometry.Rect) {
	if s.finished || img == nil {
		return
	}
	pdf := s.factory.pdf

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		// fpdf carries the first error; match that behavior
		pdf.SetError(fmt.Errorf("failed to encode bitmap: %w", err))
		return
	}

	s.factory.imageSeq++
	name := fmt.Sprintf("bitmap-%d", s.factory.imageSeq)
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(name, opts, &buf)
	pdf.ImageOptions(name, dst.X, dst.Y, dst.Width, dst.Height, false, opts, 0, "")
}

func (s *fpdfSurface) DrawText(text string, x, y float64, p TextPaint) {
	if s.finished || text == "" {
		return
	}
	pdf := s.factory.pdf

	pdf.SetTextColor(p.Color.R, p.Color.G, p.Color.B)
	pdf.SetFont(fontFamily(p.Family), p.Style, p.Size)

	// y is the top of the line box; approximate the baseline with a
	// 0.8em ascent
	pdf.Text(x, y+p.Size*0.8, text)
}

func (s *fpdfSurface) MeasureText(text string, p TextPaint) float64 {
	pdf := s.factory.pdf
	pdf.SetFont(fontFamily(p.Family), p.Style, p.Size)
	return pdf.GetStringWidth(text)
}

func (s *fpdfSurface) PageWidth() float64 { return s.factory.width }

func (s *fpdfSurface) PageHeight() float64 { return s.factory.height }

// fontFamily maps a requested family to one of the core fpdf fonts
func fontFamily(family string) string {
	switch family {
	case "", "Arial", "arial", "Helvetica", "helvetica", "sans-serif":
		return "Helvetica"
	case "Times", "times", "Times New Roman", "serif":
		return "Times"
	case "Courier", "courier", "monospace":
		return "Courier"
	default:
		return "Helvetica"
	}
}
