package compose

import (
	"testing"

	"github.com/MaxMyalkin/SimplyPDF/internal/geometry"
	"github.com/MaxMyalkin/SimplyPDF/internal/session"
	"github.com/MaxMyalkin/SimplyPDF/internal/surface"
	"github.com/google/go-cmp/cmp"
)

func newComposers(t *testing.T, width, height float64) (*TableComposer, *surface.RecorderFactory, *session.Session) {
	t.Helper()
	s, factory := newTestSession(t, width, height, defaultMargins())
	text := NewTextComposer(s)
	img := NewImageComposer(s)
	return NewTableComposer(s, text, img), factory, s
}

func TestColumnWidths(t *testing.T) {
	tc, _, _ := newComposers(t, 200, 300)

	tests := []struct {
		name    string
		columns int
		weights []float64
		want    []float64
	}{
		{"equal split without weights", 3, nil, []float64{60, 60, 60}},
		{"weighted split", 2, []float64{1, 3}, []float64{45, 135}},
		{"too few weights fall back", 3, []float64{1, 2}, []float64{60, 60, 60}},
		{"non-positive weight falls back", 2, []float64{1, 0}, []float64{90, 90}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tc.columnWidths(tt.columns, TableProperties{ColumnWeights: tt.weights})
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("columnWidths() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDrawTableSingleRow(t *testing.T) {
	tc, factory, s := newComposers(t, 200, 300)

	rows := [][]CellContent{{
		TextCell{Text: "left", Props: TextProperties{Size: 10}},
		TextCell{Text: "right", Props: TextProperties{Size: 10, Alignment: geometry.AlignEnd}},
	}}
	props := TableProperties{BorderWidth: 1, BorderColor: surface.Black, CellPadding: 2}

	if err := tc.DrawTable(rows, props); err != nil {
		t.Fatalf("DrawTable() error = %v", err)
	}

	// One background fill plus two cell borders
	rects := factory.Pages[0].OpsOfKind("rect")
	if len(rects) != 3 {
		t.Fatalf("rect ops = %d, want 3", len(rects))
	}
	// Cells split the 180 point usable width equally at x=10 and x=100
	if rects[1].Rect.X != 10 || rects[1].Rect.Width != 90 {
		t.Errorf("first cell = %+v, want x=10 width=90", rects[1].Rect)
	}
	if rects[2].Rect.X != 100 || rects[2].Rect.Width != 90 {
		t.Errorf("second cell = %+v, want x=100 width=90", rects[2].Rect)
	}

	texts := factory.Pages[0].OpsOfKind("text")
	if len(texts) != 2 {
		t.Fatalf("text ops = %d, want 2", len(texts))
	}

	// Row height: one line height + 2*padding = 14, plus trailing
	// table spacing
	want := 10.0 + 14 + DefaultSpacing
	if got := s.ContentHeight(); got != want {
		t.Errorf("ContentHeight() = %.1f, want %.1f", got, want)
	}
}

func TestDrawTableRowHeightFromTallestCell(t *testing.T) {
	tc, factory, _ := newComposers(t, 120, 300)

	// Usable width 100, two equal 50 point columns with padding 2:
	// inner width 46 holds 9 runes at size 10, so the second cell
	// wraps onto four lines
	rows := [][]CellContent{{
		TextCell{Text: "x", Props: TextProperties{Size: 10}},
		TextCell{Text: "wraps across lines here", Props: TextProperties{Size: 10}},
	}}

	if err := tc.DrawTable(rows, TableProperties{BorderWidth: 1, CellPadding: 2}); err != nil {
		t.Fatalf("DrawTable() error = %v", err)
	}

	rects := factory.Pages[0].OpsOfKind("rect")
	if len(rects) != 3 {
		t.Fatalf("rect ops = %d, want 3", len(rects))
	}
	// Both cells share the row height of the tallest content:
	// 4 wrapped lines * 10 + 2*2 padding
	if rects[1].Rect.Height != 44 || rects[2].Rect.Height != 44 {
		t.Errorf("cell heights = %.1f / %.1f, want 44", rects[1].Rect.Height, rects[2].Rect.Height)
	}
}

func TestDrawTableRotatesBetweenRows(t *testing.T) {
	tc, factory, s := newComposers(t, 200, 300)

	// Each row is 30 points (line height 10 + 2*10 padding). Usable
	// height 280 starting at 10 holds 9 rows before the accumulator
	// reaches the limit and rotates; the tenth row lands on page 1.
	var rows [][]CellContent
	for i := 0; i < 10; i++ {
		rows = append(rows, []CellContent{TextCell{Text: "r", Props: TextProperties{Size: 10}}})
	}

	if err := tc.DrawTable(rows, TableProperties{BorderWidth: 1, CellPadding: 10}); err != nil {
		t.Fatalf("DrawTable() error = %v", err)
	}

	if got := s.PageNumber(); got != 1 {
		t.Errorf("PageNumber() = %d, want 1", got)
	}
	// 9 border rects on page 0 (plus background), 1 on page 1
	if got := len(factory.Pages[0].OpsOfKind("rect")); got != 10 {
		t.Errorf("page 0 rect ops = %d, want 10", got)
	}
	if got := len(factory.Pages[1].OpsOfKind("rect")); got != 2 {
		t.Errorf("page 1 rect ops = %d, want 2", got)
	}
}

func TestDrawTableImageCell(t *testing.T) {
	tc, factory, _ := newComposers(t, 200, 300)

	rows := [][]CellContent{{
		TextCell{Text: "logo", Props: TextProperties{Size: 10}},
		ImageCell{Image: testBitmap(40, 30)},
	}}

	if err := tc.DrawTable(rows, TableProperties{CellPadding: 2}); err != nil {
		t.Fatalf("DrawTable() error = %v", err)
	}

	bitmaps := factory.Pages[0].OpsOfKind("bitmap")
	if len(bitmaps) != 1 {
		t.Fatalf("bitmap ops = %d, want 1", len(bitmaps))
	}
	if bitmaps[0].Rect.Width != 40 || bitmaps[0].Rect.Height != 30 {
		t.Errorf("bitmap dst = %.1f x %.1f, want identity 40 x 30", bitmaps[0].Rect.Width, bitmaps[0].Rect.Height)
	}
}

func TestDrawTableEmpty(t *testing.T) {
	tc, _, s := newComposers(t, 200, 300)

	if err := tc.DrawTable(nil, TableProperties{}); err != nil {
		t.Fatalf("DrawTable(nil) error = %v", err)
	}
	if got := s.ContentHeight(); got != 10 {
		t.Errorf("ContentHeight() = %.1f, want 10", got)
	}
}

func TestCellContentKinds(t *testing.T) {
	if got := (TextCell{}).kind(); got != "text" {
		t.Errorf("TextCell kind = %q, want text", got)
	}
	if got := (ImageCell{}).kind(); got != "image" {
		t.Errorf("ImageCell kind = %q, want image", got)
	}
}
