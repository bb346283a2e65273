package surface

import (
	"fmt"
	"image"
	"io"

	"github.com/MaxMyalkin/SimplyPDF/internal/geometry"
)

// Op is one recorded drawing operation
type Op struct {
	// Kind is one of "save", "restore", "translate", "rect", "bitmap", "text"
	Kind string
	Rect geometry.Rect
	Text string
	X    float64
	Y    float64
}

// Recorder is an in-memory Surface that records drawing operations.
// It is used by tests in place of a real PDF backend.
type Recorder struct {
	Width    float64
	Height   float64
	Ops      []Op
	Finished bool

	// CharWidth is the fixed glyph advance used by MeasureText,
	// expressed as a fraction of the font size. Defaults to 0.5.
	CharWidth float64
}

// NewRecorder creates a recording surface of the given page size
func NewRecorder(width, height float64) *Recorder {
	return &Recorder{Width: width, Height: height, CharWidth: 0.5}
}

func (r *Recorder) Save() {
	r.record(Op{Kind: "save"})
}

func (r *Recorder) Restore() {
	r.record(Op{Kind: "restore"})
}

func (r *Recorder) Translate(dx, dy float64) {
	r.record(Op{Kind: "translate", X: dx, Y: dy})
}

func (r *Recorder) DrawRect(rect geometry.Rect, p Paint) {
	r.record(Op{Kind: "rect", Rect: rect})
}

func (r *Recorder) DrawBitmap(img image.Image, src, dst geometry.Rect) {
	r.record(Op{Kind: "bitmap", Rect: dst})
}

func (r *Recorder) DrawText(s string, x, y float64, p TextPaint) {
	r.record(Op{Kind: "text", Text: s, X: x, Y: y})
}

func (r *Recorder) MeasureText(s string, p TextPaint) float64 {
	cw := r.CharWidth
	if cw <= 0 {
		cw = 0.5
	}
	return float64(len([]rune(s))) * p.Size * cw
}

func (r *Recorder) PageWidth() float64 { return r.Width }

func (r *Recorder) PageHeight() float64 { return r.Height }

func (r *Recorder) record(op Op) {
	if r.Finished {
		return
	}
	r.Ops = append(r.Ops, op)
}

// OpsOfKind returns the recorded operations with the given kind
func (r *Recorder) OpsOfKind(kind string) []Op {
	var ops []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			ops = append(ops, op)
		}
	}
	return ops
}

// RecorderFactory is a Factory producing Recorder surfaces
type RecorderFactory struct {
	Width  float64
	Height float64
	Pages  []*Recorder
	Writes int
	Closed bool
}

// NewRecorderFactory creates a factory producing recording pages of
// the given size
func NewRecorderFactory(width, height float64) *RecorderFactory {
	return &RecorderFactory{Width: width, Height: height}
}

func (f *RecorderFactory) StartPage(index int) (Surface, error) {
	page := NewRecorder(f.Width, f.Height)
	f.Pages = append(f.Pages, page)
	return page, nil
}

func (f *RecorderFactory) FinishPage(s Surface) error {
	rec, ok := s.(*Recorder)
	if !ok {
		return fmt.Errorf("surface does not belong to this factory")
	}
	rec.Finished = true
	return nil
}

func (f *RecorderFactory) WriteTo(w io.Writer) error {
	f.Writes++
	return nil
}

func (f *RecorderFactory) Close() error {
	f.Closed = true
	return nil
}
