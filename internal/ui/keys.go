package ui

import tea "github.com/charmbracelet/bubbletea"

func isQuit(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "q", "ctrl+c":
		return true
	}
	return false
}

func helpText() string {
	return "j/k select  h/l swipe  esc close  space done  a add  d delete  drag with mouse  q quit"
}
