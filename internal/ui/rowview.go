package ui

import (
	"math"

	"github.com/mattn/go-runewidth"

	"github.com/olivier-w/swiperow/internal/tasks"
)

// doneButtonWidth is the cell span of the done button inside the right
// underlay; the rest of the underlay is the copy button.
const doneButtonWidth = 8

// renderRow paints one task row: the overlay shifted by the live offset
// over whichever underlay the swipe exposes. Geometry derives only from
// the scope percent signals, so the view can never disagree with row state.
func renderRow(width int, t tasks.Task, selected bool, e *rowEntry, leftW, rightW int) string {
	lp := e.left.Underlay().PercentOpen()
	rp := e.right.Underlay().PercentOpen()

	// Swiping left exposes a gap at the right edge, and vice versa.
	exposeR := int(math.Round(lp * float64(leftW)))
	exposeL := int(math.Round(rp * float64(rightW)))
	if exposeR > width {
		exposeR = width
	}
	if exposeL > width {
		exposeL = width
	}

	overlay := overlayText(t, width)
	style := titleStyle
	if t.Status == tasks.Done {
		style = doneStyle
	}

	var line string
	switch {
	case exposeL > 0:
		line = rightUnderlay(exposeL) + style.Render(clipRight(overlay, width-exposeL))
	case exposeR > 0:
		line = style.Render(clipLeft(overlay, exposeR)) + leftUnderlay(exposeR, leftW)
	default:
		line = style.Render(overlay)
	}

	cursor := "  "
	if selected {
		cursor = cursorStyle.Render("▌ ")
	}
	return cursor + line
}

func overlayText(t tasks.Task, width int) string {
	icon := "○ "
	if t.Status == tasks.Done {
		icon = "✓ "
	}
	return runewidth.FillRight(runewidth.Truncate(icon+t.Title, width, ""), width)
}

// rightUnderlay renders the leftmost expose cells of the done/copy actions,
// revealed in the gap at the row's left edge.
func rightUnderlay(expose int) string {
	const (
		donePlain = " ✓ done "
		copyPlain = "  copy  "
	)
	doneCells := expose
	if doneCells > doneButtonWidth {
		doneCells = doneButtonWidth
	}
	out := underlayDoneStyle.Render(clipRight(donePlain, doneCells))
	if expose > doneButtonWidth {
		out += underlayCopyStyle.Render(clipRight(copyPlain, expose-doneButtonWidth))
	}
	return out
}

// leftUnderlay renders the rightmost expose cells of the delete action,
// revealed in the gap at the row's right edge.
func leftUnderlay(expose, leftW int) string {
	plain := runewidth.FillRight("  delete", leftW)
	return underlayDeleteStyle.Render(clipLeft(plain, leftW-expose))
}

// clipRight keeps the leftmost n cells of s.
func clipRight(s string, n int) string {
	if n <= 0 {
		return ""
	}
	return runewidth.Truncate(s, n, "")
}

// clipLeft drops the leftmost n cells of s.
func clipLeft(s string, n int) string {
	if n <= 0 {
		return s
	}
	w := 0
	for i, r := range s {
		if w >= n {
			return s[i:]
		}
		w += runewidth.RuneWidth(r)
	}
	return ""
}
