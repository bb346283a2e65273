package session

import (
	"github.com/MaxMyalkin/SimplyPDF/internal/geometry"
	"github.com/MaxMyalkin/SimplyPDF/internal/surface"
)

// PageModifier is a decoration applied to every new page immediately
// after the background fill and before any caller content. Modifiers
// run once per page, in registration order, with the top margin
// already reserved.
type PageModifier interface {
	Apply(s *Session)
}

// HeaderModifier draws a single line of text inside the top margin
// band of every page.
type HeaderModifier struct {
	Text      string
	Paint     surface.TextPaint
	Alignment geometry.Alignment
}

// Apply draws the header text on the current page
func (h *HeaderModifier) Apply(s *Session) {
	surf := s.Surface()
	width := surf.MeasureText(h.Text, h.Paint)

	x := s.Margins().Start + geometry.HorizontalOffset(h.Alignment, width, s.UsableWidth())
	y := (s.Margins().Top - h.Paint.Size) / 2
	if y < 0 {
		y = 0
	}
	surf.DrawText(h.Text, x, y, h.Paint)
}

// FooterModifier draws a single line of text inside the bottom margin
// band of every page.
type FooterModifier struct {
	Text      string
	Paint     surface.TextPaint
	Alignment geometry.Alignment
}

// Apply draws the footer text on the current page
func (f *FooterModifier) Apply(s *Session) {
	surf := s.Surface()
	width := surf.MeasureText(f.Text, f.Paint)

	x := s.Margins().Start + geometry.HorizontalOffset(f.Alignment, width, s.UsableWidth())
	y := surf.PageHeight() - s.Margins().Bottom + (s.Margins().Bottom-f.Paint.Size)/2
	surf.DrawText(f.Text, x, y, f.Paint)
}

// WatermarkModifier draws text centered on every page, behind the
// caller content drawn after it.
type WatermarkModifier struct {
	Text  string
	Paint surface.TextPaint
}

// Apply draws the watermark on the current page
func (w *WatermarkModifier) Apply(s *Session) {
	surf := s.Surface()
	width := surf.MeasureText(w.Text, w.Paint)

	x := geometry.HorizontalOffset(geometry.AlignCenter, width, surf.PageWidth())
	y := (surf.PageHeight() - w.Paint.Size) / 2
	surf.DrawText(w.Text, x, y, w.Paint)
}

// ModifierFunc adapts a plain function to the PageModifier interface
type ModifierFunc func(s *Session)

// Apply calls the wrapped function
func (f ModifierFunc) Apply(s *Session) { f(s) }
