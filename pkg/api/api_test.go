package api

import (
	"bytes"
	"errors"
	"image"
	"strings"
	"testing"

	"github.com/MaxMyalkin/SimplyPDF/internal/geometry"
	"github.com/MaxMyalkin/SimplyPDF/internal/surface"
)

func TestNewDocumentWritesPDF(t *testing.T) {
	var buf bytes.Buffer
	doc, err := NewDocument(&buf, WithTitle("smoke test"))
	if err != nil {
		t.Fatalf("NewDocument() error = %v", err)
	}

	if err := doc.DrawText("Hello, world", TextProperties{Size: 14}); err != nil {
		t.Fatalf("DrawText() error = %v", err)
	}
	if err := doc.DrawBitmap(image.NewRGBA(image.Rect(0, 0, 20, 10)), ImageProperties{}, 0, 0); err != nil {
		t.Fatalf("DrawBitmap() error = %v", err)
	}
	rows := [][]CellContent{{
		TextCell{Text: "a", Props: TextProperties{Size: 10}},
		TextCell{Text: "b", Props: TextProperties{Size: 10}},
	}}
	if err := doc.DrawTable(rows, TableProperties{BorderWidth: 0.5, CellPadding: 2}); err != nil {
		t.Fatalf("DrawTable() error = %v", err)
	}

	if err := doc.Finish(); err != nil {
		t.Fatalf("Finish() error = %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "%PDF") {
		t.Errorf("output starts with %q, want %%PDF header", out[:min(8, len(out))])
	}
	if !strings.Contains(out, "%%EOF") {
		t.Errorf("output missing %%EOF trailer")
	}
}

func TestFinishTwiceFails(t *testing.T) {
	var buf bytes.Buffer
	doc, err := NewDocument(&buf)
	if err != nil {
		t.Fatalf("NewDocument() error = %v", err)
	}

	if err := doc.Finish(); err != nil {
		t.Fatalf("Finish() error = %v", err)
	}
	size := buf.Len()

	if err := doc.Finish(); !errors.Is(err, ErrFinished) {
		t.Errorf("second Finish() error = %v, want ErrFinished", err)
	}
	if buf.Len() != size {
		t.Errorf("output grew from %d to %d after second Finish", size, buf.Len())
	}
	if err := doc.DrawText("late", TextProperties{Size: 10}); !errors.Is(err, ErrFinished) {
		t.Errorf("DrawText() after Finish error = %v, want ErrFinished", err)
	}
}

func TestDefaultOptionsResolve(t *testing.T) {
	var buf bytes.Buffer
	doc, err := NewDocument(&buf)
	if err != nil {
		t.Fatalf("NewDocument() error = %v", err)
	}
	defer doc.Finish()

	// A4 with one inch margins
	if got := doc.Margins(); got != (Margins{Start: 72, Top: 72, End: 72, Bottom: 72}) {
		t.Errorf("Margins() = %+v, want 72 everywhere", got)
	}
	if got := doc.UsableWidth(); got != geometry.PaperSizeA4.Width-144 {
		t.Errorf("UsableWidth() = %.2f, want %.2f", got, geometry.PaperSizeA4.Width-144)
	}
	if got := doc.ContentHeight(); got != 72 {
		t.Errorf("ContentHeight() = %.1f, want the top margin", got)
	}
	if got := doc.PageNumber(); got != 0 {
		t.Errorf("PageNumber() = %d, want 0", got)
	}
}

func TestWithPageOrientationLandscape(t *testing.T) {
	var buf bytes.Buffer
	doc, err := NewDocument(&buf,
		WithPageOrientation(PageOrientationLandscape),
		WithMargins(0, 0, 0, 0),
	)
	if err != nil {
		t.Fatalf("NewDocument() error = %v", err)
	}
	defer doc.Finish()

	if got := doc.UsableWidth(); got != geometry.PaperSizeA4.Height {
		t.Errorf("UsableWidth() = %.2f, want the long A4 edge %.2f", got, geometry.PaperSizeA4.Height)
	}
	if got := doc.UsableHeight(); got != geometry.PaperSizeA4.Width {
		t.Errorf("UsableHeight() = %.2f, want the short A4 edge %.2f", got, geometry.PaperSizeA4.Width)
	}
}

func TestDocumentPagination(t *testing.T) {
	// Recorder-backed document: 200 x 300 page, 10 point margins,
	// usable height 280
	factory := surface.NewRecorderFactory(200, 300)
	info := geometry.Resolve(geometry.Info{
		Paper:   geometry.PaperSize{Width: 200, Height: 300},
		Margins: geometry.Margins{Start: 10, Top: 10, End: 10, Bottom: 10},
	})
	options := DefaultOptions()
	options.LineHeight = 10

	var buf bytes.Buffer
	doc, err := newDocument(&buf, factory, info, options)
	if err != nil {
		t.Fatalf("newDocument() error = %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := doc.AddContentHeight(100); err != nil {
			t.Fatalf("AddContentHeight() error = %v", err)
		}
	}
	if got := doc.PageNumber(); got != 1 {
		t.Errorf("PageNumber() = %d, want 1 after overflow", got)
	}
	if got := doc.ContentHeight(); got != 10 {
		t.Errorf("ContentHeight() = %.1f, want 10 after rotation", got)
	}

	if err := doc.NewPage(White); err != nil {
		t.Fatalf("NewPage() error = %v", err)
	}
	if got := doc.PageNumber(); got != 2 {
		t.Errorf("PageNumber() = %d, want 2", got)
	}

	if err := doc.Finish(); err != nil {
		t.Fatalf("Finish() error = %v", err)
	}
	if factory.Writes != 1 || !factory.Closed {
		t.Errorf("factory writes=%d closed=%v, want 1/true", factory.Writes, factory.Closed)
	}
}

func TestWithModifierCoversFirstPage(t *testing.T) {
	factory := surface.NewRecorderFactory(200, 300)
	info := geometry.Resolve(geometry.Info{
		Paper:   geometry.PaperSize{Width: 200, Height: 300},
		Margins: geometry.Margins{Start: 10, Top: 30, End: 10, Bottom: 30},
	})
	options := DefaultOptions()
	options.Modifiers = []PageModifier{
		&HeaderModifier{Text: "acme corp", Paint: TextPaint{Size: 10}},
		&FooterModifier{Text: "page", Paint: TextPaint{Size: 8}},
	}

	var buf bytes.Buffer
	doc, err := newDocument(&buf, factory, info, options)
	if err != nil {
		t.Fatalf("newDocument() error = %v", err)
	}

	texts := factory.Pages[0].OpsOfKind("text")
	if len(texts) != 2 {
		t.Fatalf("page 0 text ops = %d, want header and footer", len(texts))
	}
	if texts[0].Text != "acme corp" || texts[1].Text != "page" {
		t.Errorf("modifier texts = %q / %q", texts[0].Text, texts[1].Text)
	}

	// A manual page break reapplies both
	if err := doc.NewPage(White); err != nil {
		t.Fatalf("NewPage() error = %v", err)
	}
	if got := len(factory.Pages[1].OpsOfKind("text")); got != 2 {
		t.Errorf("page 1 text ops = %d, want 2", got)
	}
}

func TestWithStrictImages(t *testing.T) {
	factory := surface.NewRecorderFactory(200, 300)
	info := geometry.Resolve(geometry.Info{
		Paper:   geometry.PaperSize{Width: 200, Height: 300},
		Margins: geometry.Margins{Start: 10, Top: 10, End: 10, Bottom: 10},
	})

	options := DefaultOptions()
	var buf bytes.Buffer
	doc, err := newDocument(&buf, factory, info, options)
	if err != nil {
		t.Fatalf("newDocument() error = %v", err)
	}
	if err := doc.DrawBitmap(nil, ImageProperties{}, 0, 0); err != nil {
		t.Errorf("lenient DrawBitmap(nil) error = %v, want nil", err)
	}

	options.StrictImages = true
	doc, err = newDocument(&buf, surface.NewRecorderFactory(200, 300), info, options)
	if err != nil {
		t.Fatalf("newDocument() error = %v", err)
	}
	if err := doc.DrawBitmap(nil, ImageProperties{}, 0, 0); !errors.Is(err, ErrInvalidBitmap) {
		t.Errorf("strict DrawBitmap(nil) error = %v, want ErrInvalidBitmap", err)
	}
}

func TestPaperSizeOptions(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
		want geometry.PaperSize
	}{
		{"A3", WithPaperSizeA3(), geometry.PaperSizeA3},
		{"A5", WithPaperSizeA5(), geometry.PaperSizeA5},
		{"Letter", WithPaperSizeLetter(), geometry.PaperSizeLetter},
		{"Legal", WithPaperSizeLegal(), geometry.PaperSizeLegal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := DefaultOptions()
			tt.opt(&o)
			if o.PageWidth != tt.want.Width || o.PageHeight != tt.want.Height {
				t.Errorf("page = %.2f x %.2f, want %.2f x %.2f",
					o.PageWidth, o.PageHeight, tt.want.Width, tt.want.Height)
			}
		})
	}
}
