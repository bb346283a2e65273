package compose

import (
	"image"

	"github.com/MaxMyalkin/SimplyPDF/internal/geometry"
	"github.com/MaxMyalkin/SimplyPDF/internal/session"
	"github.com/MaxMyalkin/SimplyPDF/internal/surface"
)

// Cell is a bounded sub-rectangle of a table acting as a nested
// placement context. Content drawn into a cell uses cell-relative
// coordinates; the presence of a cell context disables the page-fit
// pre-check and height reporting, because the table owns overflow
// decisions for its own bounds.
type Cell struct {
	Bounds  geometry.Rect
	Padding float64
}

// CellContent is anything a table cell can hold. The closed set is
// TextCell and ImageCell.
type CellContent interface {
	// contentHeight measures the content against the cell width
	contentHeight(t *TableComposer, width float64) float64
	// drawIn draws the content into the cell bounds
	drawIn(t *TableComposer, cell Cell) error
	// kind names the content type for diagnostics
	kind() string
}

// TextCell holds wrapped text inside a table cell
type TextCell struct {
	Text  string
	Props TextProperties
}

func (tc TextCell) contentHeight(t *TableComposer, width float64) float64 {
	return t.text.textHeight(tc.Text, tc.Props, width)
}

func (tc TextCell) drawIn(t *TableComposer, cell Cell) error {
	return t.text.DrawTextInCell(tc.Text, tc.Props, cell)
}

func (tc TextCell) kind() string { return "text" }

// ImageCell holds a bitmap inside a table cell
type ImageCell struct {
	Image image.Image
	Props ImageProperties
}

func (ic ImageCell) contentHeight(t *TableComposer, width float64) float64 {
	if ic.Image == nil || ic.Image.Bounds().Empty() {
		return 0
	}
	_, _, height := t.image.fit(ic.Image, ic.Props, width)
	return height
}

func (ic ImageCell) drawIn(t *TableComposer, cell Cell) error {
	return t.image.DrawBitmapInCell(ic.Image, ic.Props, cell.Padding, cell.Padding, cell)
}

func (ic ImageCell) kind() string { return "image" }

// TableProperties describes table sizing and decoration
type TableProperties struct {
	// ColumnWeights are relative column widths; empty means equal
	// columns per row
	ColumnWeights []float64
	// BorderWidth of zero draws no cell borders
	BorderWidth float64
	BorderColor surface.Color
	// CellPadding is the inner margin applied inside every cell
	CellPadding float64
}

// TableComposer draws tabular grids by delegating cell content to
// the text and image composers
type TableComposer struct {
	s     *session.Session
	text  *TextComposer
	image *ImageComposer
}

// NewTableComposer creates a table composer delegating cell content
// to the given composers
func NewTableComposer(s *session.Session, text *TextComposer, img *ImageComposer) *TableComposer {
	return &TableComposer{s: s, text: text, image: img}
}

// DrawTable draws the grid row by row. Each row is pre-checked
// against the remaining page height and rotates to a new page when
// it would not fit; a row taller than a whole page draws in full and
// overflows once. Row heights are reported to the session after
// drawing.
func (c *TableComposer) DrawTable(rows [][]CellContent, props TableProperties) error {
	if c.s.Finished() {
		return session.ErrFinished
	}
	if !c.s.Started() {
		return session.ErrNoPage
	}
	if len(rows) == 0 {
		return nil
	}

	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		if err := c.drawRow(row, props); err != nil {
			return err
		}
	}
	return c.s.AddContentHeight(DefaultSpacing)
}

func (c *TableComposer) drawRow(row []CellContent, props TableProperties) error {
	widths := c.columnWidths(len(row), props)

	rowHeight := c.s.LineHeight() + 2*props.CellPadding
	for i, content := range row {
		h := content.contentHeight(c, widths[i]-2*props.CellPadding) + 2*props.CellPadding
		if h > rowHeight {
			rowHeight = h
		}
	}

	// Per-row fit check; cells themselves never rotate the page
	if rowHeight > c.s.RemainingHeight() && !c.s.PageEmpty() {
		if err := c.s.NewPage(c.s.Background()); err != nil {
			return err
		}
	}

	x := c.s.Margins().Start
	y := c.s.ContentHeight()
	for i, content := range row {
		cell := Cell{
			Bounds:  geometry.Rect{X: x, Y: y, Width: widths[i], Height: rowHeight},
			Padding: props.CellPadding,
		}
		if props.BorderWidth > 0 {
			c.s.Surface().DrawRect(cell.Bounds, surface.Paint{
				Color:     props.BorderColor,
				Style:     surface.PaintStyleStroke,
				LineWidth: props.BorderWidth,
			})
		}
		if err := content.drawIn(c, cell); err != nil {
			return err
		}
		x += widths[i]
	}

	return c.s.AddContentHeight(rowHeight)
}

// columnWidths distributes the usable page width across columns
// according to the configured weights. Missing or non-positive
// weights fall back to equal columns.
func (c *TableComposer) columnWidths(columns int, props TableProperties) []float64 {
	usable := c.s.UsableWidth()
	widths := make([]float64, columns)

	weights := props.ColumnWeights
	valid := len(weights) >= columns
	total := 0.0
	for i := 0; i < columns && valid; i++ {
		if weights[i] <= 0 {
			valid = false
			break
		}
		total += weights[i]
	}
	if !valid {
		for i := range widths {
			widths[i] = usable / float64(columns)
		}
		return widths
	}

	for i := range widths {
		widths[i] = usable * weights[i] / total
	}
	return widths
}
