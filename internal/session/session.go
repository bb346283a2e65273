// Package session owns the mutable state of one document under
// composition: the current page surface, the page index and the
// cumulative content height. Composers never hold this state
// themselves; they read and mutate it through the session.
package session

import (
	"errors"
	"fmt"
	"io"

	"github.com/MaxMyalkin/SimplyPDF/internal/geometry"
	"github.com/MaxMyalkin/SimplyPDF/internal/surface"
)

// DefaultLineHeight is used when the configured line height is not positive
const DefaultLineHeight = 10

var (
	// ErrFinished is returned by any mutating call after Finish
	ErrFinished = errors.New("document is finished")
	// ErrNoPage is returned when drawing is attempted before Start
	ErrNoPage = errors.New("document has no open page")
	// ErrStarted is returned when Start is called twice
	ErrStarted = errors.New("document already started")
)

// Session is the top-level mutable context of one document.
// It is not safe for concurrent use; composer calls must be issued
// sequentially (page rotation mid-call would corrupt offsets computed
// against the old page).
type Session struct {
	factory    surface.Factory
	info       geometry.Info
	background surface.Color
	lineHeight float64
	modifiers  []PageModifier

	surf          surface.Surface
	pageIndex     int
	contentHeight float64
	started       bool
	finished      bool

	// Debug enables verbose logging to stdout
	Debug bool
}

// New creates a session drawing pages through factory with the given
// resolved geometry. A non-positive lineHeight falls back to
// DefaultLineHeight.
func New(factory surface.Factory, info geometry.Info, lineHeight float64, background surface.Color) *Session {
	if lineHeight <= 0 {
		lineHeight = DefaultLineHeight
	}
	return &Session{
		factory:    factory,
		info:       info,
		background: background,
		lineHeight: lineHeight,
	}
}

// AddModifier registers a decoration applied to every page opened
// after the call, in registration order, before any caller content.
func (s *Session) AddModifier(m PageModifier) {
	s.modifiers = append(s.modifiers, m)
}

// Start opens page 0, reserves the top margin as initial content
// height, paints the background and applies the registered page
// modifiers. It must be called exactly once before any drawing.
func (s *Session) Start(background surface.Color) error {
	if s.finished {
		return ErrFinished
	}
	if s.started {
		return ErrStarted
	}
	s.started = true
	return s.openPage(background)
}

// NewPage finalizes the current page and opens a fresh one. The
// content height is reset to the top margin; this is the only way
// content height decreases mid-document.
func (s *Session) NewPage(background surface.Color) error {
	if s.finished {
		return ErrFinished
	}
	if !s.started {
		return ErrNoPage
	}

	if err := s.factory.FinishPage(s.surf); err != nil {
		return fmt.Errorf("failed to finish page %d: %w", s.pageIndex, err)
	}
	s.pageIndex++
	return s.openPage(background)
}

// openPage starts the page at the current index, paints the
// background and re-applies the page modifiers in order.
func (s *Session) openPage(background surface.Color) error {
	surf, err := s.factory.StartPage(s.pageIndex)
	if err != nil {
		return fmt.Errorf("failed to start page %d: %w", s.pageIndex, err)
	}
	s.surf = surf
	s.contentHeight = s.info.Margins.Top

	surf.DrawRect(geometry.Rect{
		Width:  surf.PageWidth(),
		Height: surf.PageHeight(),
	}, surface.Paint{Color: background, Style: surface.PaintStyleFill})

	for _, m := range s.modifiers {
		m.Apply(s)
	}

	if s.Debug {
		fmt.Printf("Opened page %d (usable %.2f x %.2f)\n", s.pageIndex, s.UsableWidth(), s.UsableHeight())
	}
	return nil
}

// AddContentHeight adds the vertical space consumed by a drawn
// content unit. When the running total reaches the usable page
// height a new page is started with the default background.
//
// The check runs after the unit has been drawn, so a unit taller
// than one page is drawn in full on the page it started on and the
// rotation only affects whatever comes next.
func (s *Session) AddContentHeight(delta float64) error {
	if s.finished {
		return ErrFinished
	}
	if !s.started {
		return ErrNoPage
	}

	s.contentHeight += delta
	if s.contentHeight >= s.UsableHeight() {
		return s.NewPage(s.background)
	}
	return nil
}

// InsertEmptySpace advances the content height by the given amount
func (s *Session) InsertEmptySpace(height float64) error {
	return s.AddContentHeight(height)
}

// InsertEmptyLines advances the content height by count line heights.
// A negative count is treated as zero.
func (s *Session) InsertEmptyLines(count int) error {
	if count < 0 {
		count = 0
	}
	return s.AddContentHeight(float64(count) * s.lineHeight)
}

// Finish finalizes the current page, serializes the document to w
// and seals the session. Any further mutating call, including a
// second Finish, fails with ErrFinished.
func (s *Session) Finish(w io.Writer) error {
	if s.finished {
		return ErrFinished
	}
	s.finished = true

	if s.started {
		if err := s.factory.FinishPage(s.surf); err != nil {
			return fmt.Errorf("failed to finish page %d: %w", s.pageIndex, err)
		}
	}
	if err := s.factory.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	if err := s.factory.Close(); err != nil {
		return fmt.Errorf("failed to close document: %w", err)
	}
	return nil
}

// Surface returns the current page surface
func (s *Session) Surface() surface.Surface { return s.surf }

// Info returns the resolved document geometry
func (s *Session) Info() geometry.Info { return s.info }

// Margins returns the resolved page margins
func (s *Session) Margins() geometry.Margins { return s.info.Margins }

// PageNumber returns the zero-based index of the current page
func (s *Session) PageNumber() int { return s.pageIndex }

// ContentHeight returns the running content height on the current
// page, measured from the page top and including the top margin.
func (s *Session) ContentHeight() float64 { return s.contentHeight }

// LineHeight returns the configured line height
func (s *Session) LineHeight() float64 { return s.lineHeight }

// Background returns the default page background used for
// overflow-triggered page rotations
func (s *Session) Background() surface.Color { return s.background }

// Finished reports whether the session has been sealed
func (s *Session) Finished() bool { return s.finished }

// Started reports whether the first page has been opened
func (s *Session) Started() bool { return s.started }

// UsableWidth returns the drawable width of the current page
func (s *Session) UsableWidth() float64 {
	if s.surf == nil {
		return s.info.UsableWidth(s.info.Paper.Width)
	}
	return s.info.UsableWidth(s.surf.PageWidth())
}

// UsableHeight returns the drawable height of the current page
func (s *Session) UsableHeight() float64 {
	if s.surf == nil {
		return s.info.UsableHeight(s.info.Paper.Height)
	}
	return s.info.UsableHeight(s.surf.PageHeight())
}

// RemainingHeight returns the vertical space left before the page is
// considered full
func (s *Session) RemainingHeight() float64 {
	return s.UsableHeight() - s.contentHeight
}

// PageEmpty reports whether nothing has been drawn on the current
// page (the content height still equals the reserved top margin)
func (s *Session) PageEmpty() bool {
	return s.contentHeight == s.info.Margins.Top
}
