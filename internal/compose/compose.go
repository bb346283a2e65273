// Package compose provides the content composers that draw text,
// images and tables into a document session. Each composer follows
// the same contract: measure against the current usable width,
// resolve placement, draw through the page surface and report the
// consumed height to the session, which rotates pages on overflow.
package compose

// DefaultSpacing is the vertical gap, in points, left after content
// units that carry implicit trailing space (images, tables).
const DefaultSpacing = 10
