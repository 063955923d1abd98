package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/olivier-w/swiperow/internal/config"
	"github.com/olivier-w/swiperow/internal/swipe"
	"github.com/olivier-w/swiperow/internal/tasks"
)

// rowTop is the screen line of the first task row: blank, header, blank.
const rowTop = 3

// rowLeftMargin is the column where a row's graphic starts: two cells of
// indent plus two cells of selection cursor.
const rowLeftMargin = 4

// rowEntry pairs a task row with the scopes its renderers consume.
type rowEntry struct {
	row     *swipe.Row
	left    *swipe.Scope
	right   *swipe.Scope
	overlay *swipe.Scope
}

// Model is the Bubbletea model for the swiperow demo: a task list where
// every row can be swiped open with the mouse or the keyboard.
type Model struct {
	list    *tasks.List
	entries []*rowEntry
	feed    chan rowSettledMsg
	rec     *recognizer
	rowCfg  swipe.Config
	logger  *zap.Logger

	openRow int // index of the settled-open row, -1 when none
	leftW   int // left underlay width, the extreme left snap distance
	rightW  int // right underlay width, the extreme right snap distance

	width      int
	height     int
	adding     bool
	input      textinput.Model
	status     string
	statusTime time.Time
	quitting   bool
}

var starterTasks = []string{
	"water the plants",
	"file March expenses",
	"reply to Sam about the offsite",
	"rotate the API keys",
	"book dentist appointment",
}

// New creates the demo model from loaded configuration.
func New(cfg config.Config, logger *zap.Logger) Model {
	return newModel(cfg.RowConfig(), starterTasks, logger)
}

func newModel(rowCfg swipe.Config, titles []string, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	rowCfg.Logger = logger

	ti := textinput.New()
	ti.Placeholder = "task title"
	ti.CharLimit = 120
	ti.Width = 40

	m := Model{
		list:    tasks.New(nil),
		feed:    make(chan rowSettledMsg, 64),
		rec:     &recognizer{},
		rowCfg:  rowCfg,
		logger:  logger,
		openRow: -1,
		leftW:   maxSnapCells(rowCfg.SnapPointsLeft),
		rightW:  maxSnapCells(rowCfg.SnapPointsRight),
		input:   ti,
	}
	for _, title := range titles {
		m.addTask(title)
	}
	return m
}

func maxSnapCells(points []float64) int {
	var max float64
	for _, p := range points {
		if p > max {
			max = p
		}
	}
	return int(max)
}

// addTask appends a task and builds its swipe row. Each row forwards its
// settles onto the shared feed; the send is best-effort so a slow UI can
// never block a row's notifier.
func (m *Model) addTask(title string) {
	m.list.Add(title)

	rc := m.rowCfg
	feed := m.feed
	e := &rowEntry{}
	rc.OnChange = func(c swipe.Change) {
		select {
		case feed <- rowSettledMsg{row: e.row, change: c}:
		default:
		}
	}
	e.row = swipe.NewRow(rc)
	e.left = e.row.UnderlayScope(swipe.Left)
	e.right = e.row.UnderlayScope(swipe.Right)
	e.overlay = e.row.OverlayScope()
	m.entries = append(m.entries, e)
}

func (m Model) removeTask(i int) Model {
	if i < 0 || i >= len(m.entries) {
		return m
	}
	m.entries[i].row.Stop()
	m.entries = append(m.entries[:i], m.entries[i+1:]...)
	m.list.Remove(i)
	switch {
	case m.openRow == i:
		m.openRow = -1
	case m.openRow > i:
		m.openRow--
	}
	return m
}

func (m Model) stopRows() {
	for _, e := range m.entries {
		e.row.Stop()
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(true), watchSettles(m.feed), tea.SetWindowTitle("swiperow"))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m.handleMsg(msg)
}

func (m Model) handleMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.adding {
			return m.handleAddInput(msg)
		}
		if isQuit(msg) {
			m.quitting = true
			m.stopRows()
			return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
		}
		switch msg.String() {
		case "j", "down":
			m.list.MoveSelection(1)
		case "k", "up":
			m.list.MoveSelection(-1)
		case "h", "left":
			if e := m.selectedEntry(); e != nil {
				e.row.Open(swipe.Left)
			}
		case "l", "right":
			if e := m.selectedEntry(); e != nil {
				e.row.Open(swipe.Right)
			}
		case "esc":
			if e := m.selectedEntry(); e != nil {
				e.row.Close()
			}
		case " ":
			if i := m.list.Selected(); i >= 0 {
				m.list.Toggle(i)
			}
		case "d":
			m = m.removeTask(m.list.Selected())
		case "a":
			m.adding = true
			m.input.Focus()
			return m, textinput.Blink
		}
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tickMsg:
		if m.status != "" && time.Since(m.statusTime) > 4*time.Second {
			m.status = ""
		}
		return m, tickCmd(m.anyActive())

	case rowSettledMsg:
		return m.handleSettled(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

func (m Model) handleAddInput(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		title := strings.TrimSpace(m.input.Value())
		if title != "" {
			m.addTask(title)
			m.setStatus(fmt.Sprintf("added %q", title))
		}
		m.adding = false
		m.input.Reset()
		m.input.Blur()
		return m, nil
	case "esc", "ctrl+c":
		m.adding = false
		m.input.Reset()
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleSettled reacts to a row coming to rest: it keeps at most one row
// open at a time and surfaces the settle in the status line.
func (m Model) handleSettled(msg rowSettledMsg) (Model, tea.Cmd) {
	idx := m.indexOf(msg.row)
	if idx < 0 {
		// Row was removed before its settle arrived.
		return m, watchSettles(m.feed)
	}

	if msg.change.Direction == swipe.None {
		if idx == m.openRow {
			m.openRow = -1
		}
		return m, watchSettles(m.feed)
	}

	if m.openRow >= 0 && m.openRow != idx && m.openRow < len(m.entries) {
		m.entries[m.openRow].row.Close()
	}
	m.openRow = idx
	if t := m.list.Task(idx); t != nil {
		m.setStatus(fmt.Sprintf("%q open %s", t.Title, msg.change.Direction))
	}
	return m, watchSettles(m.feed)
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		idx := m.rowAt(msg.Y)
		if idx < 0 {
			return m, nil
		}
		m.list.Select(idx)
		m.rec.press(msg.X, idx, time.Now())

	case tea.MouseActionMotion:
		if e := m.dragEntry(); e != nil {
			m.rec.motion(msg.X, time.Now(), e.row)
		}

	case tea.MouseActionRelease:
		e := m.dragEntry()
		if e == nil {
			return m, nil
		}
		idx := m.rec.rowIdx
		if m.rec.release(msg.X, time.Now(), e.row) {
			return m.handleClick(idx, msg.X)
		}
	}
	return m, nil
}

// handleClick performs the underlay action under a plain click: done/copy
// on the exposed right underlay, delete on the exposed left one.
func (m Model) handleClick(idx, x int) (Model, tea.Cmd) {
	if idx < 0 || idx >= len(m.entries) {
		return m, nil
	}
	e := m.entries[idx]
	gx := x - rowLeftMargin

	switch e.row.Direction() {
	case swipe.Right:
		if gx < 0 || gx >= m.rightW {
			break
		}
		if gx < doneButtonWidth {
			m.list.Toggle(idx)
			if t := m.list.Task(idx); t != nil && t.Status == tasks.Done {
				m.setStatus(fmt.Sprintf("done %q", t.Title))
			}
		} else if t := m.list.Task(idx); t != nil {
			if err := clipboard.WriteAll(t.Title); err != nil {
				m.setStatus(fmt.Sprintf("copy failed: %v", err))
			} else {
				m.setStatus(fmt.Sprintf("copied %q", t.Title))
			}
		}
		swipe.Bound(e.overlay).Close()

	case swipe.Left:
		rowW := m.rowWidth()
		if gx >= rowW-m.leftW && gx < rowW {
			title := ""
			if t := m.list.Task(idx); t != nil {
				title = t.Title
			}
			m = m.removeTask(idx)
			m.setStatus(fmt.Sprintf("deleted %q", title))
		}
	}
	return m, nil
}

func (m Model) rowAt(y int) int {
	i := y - rowTop
	if i < 0 || i >= len(m.entries) {
		return -1
	}
	return i
}

func (m Model) dragEntry() *rowEntry {
	if !m.rec.pressed {
		return nil
	}
	if m.rec.rowIdx < 0 || m.rec.rowIdx >= len(m.entries) {
		return nil
	}
	return m.entries[m.rec.rowIdx]
}

func (m Model) indexOf(r *swipe.Row) int {
	for i, e := range m.entries {
		if e.row == r {
			return i
		}
	}
	return -1
}

func (m Model) selectedEntry() *rowEntry {
	i := m.list.Selected()
	if i < 0 || i >= len(m.entries) {
		return nil
	}
	return m.entries[i]
}

func (m Model) anyActive() bool {
	if m.rec.pressed {
		return true
	}
	for _, e := range m.entries {
		if e.row.GestureActive() || e.row.Animating() {
			return true
		}
	}
	return false
}

func (m Model) rowWidth() int {
	w := m.width
	if w < 40 {
		w = 60
	}
	return w - 6
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusTime = time.Now()
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	rowW := m.rowWidth()

	s := "\n"
	s += "  " + headerStyle.Render("swiperow") + "\n"
	s += "\n"
	for i, e := range m.entries {
		t := m.list.Task(i)
		if t == nil {
			continue
		}
		s += "  " + renderRow(rowW, *t, i == m.list.Selected(), e, m.leftW, m.rightW) + "\n"
	}
	if len(m.entries) == 0 {
		s += "  " + helpStyle.Render("no tasks, press a to add one") + "\n"
	}
	s += "\n"
	if m.adding {
		s += "  " + statusStyle.Render("New task:") + " " + m.input.View() + "\n"
	} else if m.status != "" {
		s += "  " + statusStyle.Render(m.status) + "\n"
	}
	s += "\n"
	s += "  " + helpStyle.Render(helpText()) + "\n"
	return s
}
