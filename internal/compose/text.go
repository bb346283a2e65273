package compose

import (
	"strings"

	"github.com/MaxMyalkin/SimplyPDF/internal/geometry"
	"github.com/MaxMyalkin/SimplyPDF/internal/session"
	"github.com/MaxMyalkin/SimplyPDF/internal/surface"
	"golang.org/x/text/unicode/bidi"
)

// TextProperties describes how a text run is drawn
type TextProperties struct {
	// Size is the font size in points; non-positive falls back to 12
	Size float64
	// Family is the font family name
	Family string
	// Style is the font style string: "" regular, "B" bold, "I" italic
	Style     string
	Color     surface.Color
	Alignment geometry.Alignment
	// Spacing is extra vertical space reported after the run
	Spacing float64
	// KeepTogether starts a new page when the whole wrapped run would
	// not fit on the remainder of the current one
	KeepTogether bool
}

func (p TextProperties) paint() surface.TextPaint {
	size := p.Size
	if size <= 0 {
		size = 12
	}
	return surface.TextPaint{
		Family: p.Family,
		Style:  p.Style,
		Size:   size,
		Color:  p.Color,
	}
}

// TextComposer draws wrapped text runs into a session
type TextComposer struct {
	s *session.Session
}

// NewTextComposer creates a text composer bound to the session
func NewTextComposer(s *session.Session) *TextComposer {
	return &TextComposer{s: s}
}

// DrawText wraps text against the usable page width and draws it at
// the current content height. The consumed height, line count times
// the configured line height plus the run's spacing, is reported to
// the session afterwards; a run taller than the remaining page space
// is drawn in full and forces a rotation for whatever comes next.
func (c *TextComposer) DrawText(text string, props TextProperties) error {
	if c.s.Finished() {
		return session.ErrFinished
	}
	if !c.s.Started() {
		return session.ErrNoPage
	}
	if strings.TrimSpace(text) == "" {
		return nil
	}

	surf := c.s.Surface()
	paint := props.paint()
	usable := c.s.UsableWidth()

	lines := wrapText(surf, text, paint, usable)
	if len(lines) == 0 {
		return nil
	}

	lineHeight := c.s.LineHeight()
	blockHeight := float64(len(lines)) * lineHeight

	if props.KeepTogether && blockHeight > c.s.RemainingHeight() && !c.s.PageEmpty() {
		if err := c.s.NewPage(c.s.Background()); err != nil {
			return err
		}
	}

	align := props.Alignment
	if isRightToLeft(text) {
		align = flipAlignment(align)
	}

	y := c.s.ContentHeight()
	for _, line := range lines {
		width := surf.MeasureText(line, paint)
		x := c.s.Margins().Start + geometry.HorizontalOffset(align, width, usable)
		surf.DrawText(line, x, y, paint)
		y += lineHeight
	}

	return c.s.AddContentHeight(blockHeight + props.Spacing)
}

// DrawTextInCell draws wrapped text into a table cell. Cell content
// uses cell-relative placement and never reports height or triggers
// page rotation; the table owns those decisions.
func (c *TextComposer) DrawTextInCell(text string, props TextProperties, cell Cell) error {
	if c.s.Finished() {
		return session.ErrFinished
	}
	if !c.s.Started() {
		return session.ErrNoPage
	}
	if strings.TrimSpace(text) == "" {
		return nil
	}

	surf := c.s.Surface()
	paint := props.paint()
	inner := cell.Bounds.Width - 2*cell.Padding

	lines := wrapText(surf, text, paint, inner)
	if len(lines) == 0 {
		return nil
	}

	lineHeight := c.s.LineHeight()
	blockHeight := float64(len(lines)) * lineHeight

	align := props.Alignment
	if isRightToLeft(text) {
		align = flipAlignment(align)
	}

	vy := geometry.CellVerticalOffset(blockHeight, cell.Bounds.Height, 0)
	if vy < cell.Padding {
		vy = cell.Padding
	}

	y := cell.Bounds.Y + vy
	for _, line := range lines {
		width := surf.MeasureText(line, paint)
		x := cell.Bounds.X + geometry.CellHorizontalOffset(align, width, cell.Bounds.Width, cell.Padding)
		surf.DrawText(line, x, y, paint)
		y += lineHeight
	}
	return nil
}

// textHeight returns the height the text will occupy when wrapped to
// the given width, without drawing anything
func (c *TextComposer) textHeight(text string, props TextProperties, width float64) float64 {
	lines := wrapText(c.s.Surface(), text, props.paint(), width)
	return float64(len(lines)) * c.s.LineHeight()
}

// wrapText performs greedy word wrapping against maxWidth. Words
// wider than a whole line are hard-split.
func wrapText(surf surface.Surface, text string, paint surface.TextPaint, maxWidth float64) []string {
	var lines []string

	for _, paragraph := range strings.Split(text, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		current := ""
		for _, word := range words {
			candidate := word
			if current != "" {
				candidate = current + " " + word
			}
			if surf.MeasureText(candidate, paint) <= maxWidth {
				current = candidate
				continue
			}
			if current != "" {
				lines = append(lines, current)
				current = ""
			}
			if surf.MeasureText(word, paint) <= maxWidth {
				current = word
				continue
			}
			// Word wider than the whole line
			parts := splitWord(surf, word, paint, maxWidth)
			lines = append(lines, parts[:len(parts)-1]...)
			current = parts[len(parts)-1]
		}
		if current != "" {
			lines = append(lines, current)
		}
	}

	return lines
}

// splitWord hard-splits a word that does not fit on one line
func splitWord(surf surface.Surface, word string, paint surface.TextPaint, maxWidth float64) []string {
	var parts []string
	runes := []rune(word)
	start := 0
	for start < len(runes) {
		end := start + 1
		for end < len(runes) && surf.MeasureText(string(runes[start:end+1]), paint) <= maxWidth {
			end++
		}
		parts = append(parts, string(runes[start:end]))
		start = end
	}
	return parts
}

// isRightToLeft reports whether the principal direction of the text
// is right-to-left
func isRightToLeft(text string) bool {
	if text == "" {
		return false
	}
	var p bidi.Paragraph
	if _, err := p.SetString(text); err != nil {
		return false
	}
	return !p.IsLeftToRight()
}

// flipAlignment mirrors start/end alignment for right-to-left runs
func flipAlignment(a geometry.Alignment) geometry.Alignment {
	switch a {
	case geometry.AlignStart:
		return geometry.AlignEnd
	case geometry.AlignEnd:
		return geometry.AlignStart
	default:
		return a
	}
}
