package swipe

import "fmt"

// UsageError reports a control-surface accessor used outside a row scope.
// It marks a wiring mistake in the composition tree, not a runtime
// condition, so the accessors raise it as a panic.
type UsageError struct {
	what string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("swipe: %s called outside a row scope", e.what)
}

// Scope is the handle a row hands down to its presentation consumers.
// Underlay renderers receive a scope bound to their side; the overlay
// renderer receives a scope that follows the current open direction.
type Scope struct {
	row     *Row
	side    Direction
	overlay bool
}

// UnderlayScope returns the scope for one side's underlay renderer.
func (r *Row) UnderlayScope(side Direction) *Scope {
	return &Scope{row: r, side: side}
}

// OverlayScope returns the scope for the overlay renderer.
func (r *Row) OverlayScope() *Scope {
	return &Scope{row: r, overlay: true}
}

// UnderlayParams is the control surface visible to one side's underlay.
type UnderlayParams struct {
	row  *Row
	side Direction
}

// Open animates the row open toward this underlay's side.
func (p UnderlayParams) Open(snapPoint ...float64) <-chan struct{} {
	return p.row.Open(p.side, snapPoint...)
}

// Close animates the row closed.
func (p UnderlayParams) Close() <-chan struct{} { return p.row.Close() }

// PercentOpen reports this side's openness.
func (p UnderlayParams) PercentOpen() float64 {
	switch p.side {
	case Left:
		return p.row.PercentOpenLeft()
	case Right:
		return p.row.PercentOpenRight()
	default:
		return 0
	}
}

// IsGestureActive reports whether a drag is in progress on the row.
func (p UnderlayParams) IsGestureActive() bool { return p.row.GestureActive() }

// Direction returns the side the row is settled open toward.
func (p UnderlayParams) Direction() Direction { return p.row.Direction() }

// OverlayParams is the control surface visible to the overlay.
type OverlayParams struct {
	row *Row
}

// OpenLeft animates the row open toward the left underlay.
func (p OverlayParams) OpenLeft(snapPoint ...float64) <-chan struct{} {
	return p.row.Open(Left, snapPoint...)
}

// OpenRight animates the row open toward the right underlay.
func (p OverlayParams) OpenRight(snapPoint ...float64) <-chan struct{} {
	return p.row.Open(Right, snapPoint...)
}

// Close animates the row closed.
func (p OverlayParams) Close() <-chan struct{} { return p.row.Close() }

// OpenDirection returns the side the row is settled open toward.
func (p OverlayParams) OpenDirection() Direction { return p.row.Direction() }

// PercentOpenLeft reports left-side openness.
func (p OverlayParams) PercentOpenLeft() float64 { return p.row.PercentOpenLeft() }

// PercentOpenRight reports right-side openness.
func (p OverlayParams) PercentOpenRight() float64 { return p.row.PercentOpenRight() }

// Underlay resolves the scope as an underlay surface. Panics with
// *UsageError outside an underlay scope.
func (s *Scope) Underlay() UnderlayParams {
	if s == nil || s.row == nil || s.overlay || s.side == None {
		panic(&UsageError{what: "Scope.Underlay"})
	}
	return UnderlayParams{row: s.row, side: s.side}
}

// Overlay resolves the scope as the overlay surface. Panics with
// *UsageError outside the overlay scope.
func (s *Scope) Overlay() OverlayParams {
	if s == nil || s.row == nil || !s.overlay {
		panic(&UsageError{what: "Scope.Overlay"})
	}
	return OverlayParams{row: s.row}
}

// Bound resolves the surface relevant to the calling context: an underlay
// scope binds to its own side, the overlay scope to whichever side is
// currently open. Panics with *UsageError when no row scope is present.
func Bound(s *Scope) UnderlayParams {
	if s == nil || s.row == nil {
		panic(&UsageError{what: "Bound"})
	}
	side := s.side
	if s.overlay {
		side = s.row.Direction()
	}
	return UnderlayParams{row: s.row, side: side}
}
