package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/olivier-w/swiperow/internal/swipe"
)

type tickMsg time.Time

// rowSettledMsg reports a row's natural settle, forwarded from the row's
// change notifier into the Bubbletea update loop.
type rowSettledMsg struct {
	row    *swipe.Row
	change swipe.Change
}

const (
	frameTick = 33 * time.Millisecond
	idleTick  = 200 * time.Millisecond
)

// tickCmd schedules the next redraw: frame cadence while a gesture or
// settle animation is live, a slow heartbeat otherwise.
func tickCmd(fast bool) tea.Cmd {
	d := idleTick
	if fast {
		d = frameTick
	}
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// watchSettles waits for the next settle on the shared feed. Re-armed after
// every received message.
func watchSettles(feed <-chan rowSettledMsg) tea.Cmd {
	return func() tea.Msg {
		return <-feed
	}
}
