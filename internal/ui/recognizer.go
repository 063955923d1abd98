package ui

import (
	"time"

	"github.com/olivier-w/swiperow/internal/swipe"
)

// recognizer converts terminal mouse events into the drag stream a row
// consumes: start once the translation clears the row's activation
// thresholds, per-motion translation updates, and a smoothed release
// velocity in cells per second.
type recognizer struct {
	pressed bool
	started bool
	rowIdx  int
	pressX  int

	lastX    int
	lastTime time.Time
	vel      float64
}

// press records the press point over the given row.
func (g *recognizer) press(x, rowIdx int, now time.Time) {
	g.pressed = true
	g.started = false
	g.rowIdx = rowIdx
	g.pressX = x
	g.lastX = x
	g.lastTime = now
	g.vel = 0
}

// motion applies a drag sample. The drag only starts once the translation
// clears the row's asymmetric activation offsets, so a side with no snap
// points cannot be pulled open.
func (g *recognizer) motion(x int, now time.Time, row *swipe.Row) {
	if !g.pressed {
		return
	}
	tx := float64(x - g.pressX)
	if !g.started {
		left, right := row.ActiveOffsets()
		if tx > left && tx < right {
			return
		}
		g.started = true
		row.DragStart()
	}

	if dt := now.Sub(g.lastTime).Seconds(); dt > 0 {
		inst := float64(x-g.lastX) / dt
		g.vel = 0.6*inst + 0.4*g.vel
	}
	g.lastX = x
	g.lastTime = now

	row.DragUpdate(tx)
}

// release ends the gesture. Returns true when the press never turned into
// a drag, i.e. a plain click.
func (g *recognizer) release(x int, now time.Time, row *swipe.Row) (clicked bool) {
	if !g.pressed {
		return false
	}
	g.pressed = false
	if !g.started {
		return true
	}
	g.started = false
	row.DragEnd(float64(x-g.pressX), g.vel)
	return false
}
