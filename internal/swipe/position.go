package swipe

// position is an immutable snapshot of a row's live state. The executor
// goroutine replaces the snapshot wholesale; everyone else reads the latest
// pointer, so a consumer can never observe a torn offset.
type position struct {
	offset        float64
	gestureActive bool
	animating     bool
}

// percentOpenLeft reports how far open the left side is relative to its
// extreme snap point. 0 when the offset is on the other side or the left
// side has no snap points. Not clamped at 1: overswipe reads above it.
func (p position) percentOpenLeft(c catalog) float64 {
	if p.offset >= 0 || c.maxSnapLeft == 0 {
		return 0
	}
	return p.offset / c.maxSnapLeft
}

// percentOpenRight is the right-side counterpart of percentOpenLeft.
func (p position) percentOpenRight(c catalog) float64 {
	if p.offset <= 0 || c.maxSnapRight == 0 {
		return 0
	}
	return p.offset / c.maxSnapRight
}

func (p position) swipingLeft() bool  { return p.offset < 0 }
func (p position) swipingRight() bool { return p.offset > 0 }
