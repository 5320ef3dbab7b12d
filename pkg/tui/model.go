// Package tui hosts the Bubble Tea program for the viewer. It is a thin
// projection of the view-state controller: key presses become transitions,
// controller change notifications become redraws.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"github.com/XolaniXAD/cosmic-calendar/pkg/bookmarks"
	"github.com/XolaniXAD/cosmic-calendar/pkg/dateutil"
	"github.com/XolaniXAD/cosmic-calendar/pkg/viewstate"
)

// Model contains renderer-local state; everything the viewer shows lives in
// the controller and is read back through Snapshot.
type Model struct {
	ctrl *viewstate.Controller

	changes <-chan struct{}
	watch   <-chan bookmarks.Event

	dateInput textinput.Model
	dateError string

	bmCursor int

	termWidth  int
	termHeight int

	theme Theme
}

// messages
type stateChangedMsg struct{}
type storeChangedMsg struct{}

// New creates the UI model. The controller must have been constructed with
// the change channel wired through ChangeNotifier.
func New(ctrl *viewstate.Controller, changes <-chan struct{}, watch <-chan bookmarks.Event) Model {
	ti := textinput.New()
	ti.Placeholder = "YYYY-MM-DD"
	ti.CharLimit = 10
	ti.Prompt = ""

	return Model{
		ctrl:      ctrl,
		changes:   changes,
		watch:     watch,
		dateInput: ti,
		theme:     DefaultTheme(),
	}
}

// ChangeNotifier returns an onChange hook and the channel it signals,
// coalescing bursts so a slow redraw never blocks a transition.
func ChangeNotifier() (func(), <-chan struct{}) {
	ch := make(chan struct{}, 1)
	return func() {
		select {
		case ch <- struct{}{}:
		default:
		}
	}, ch
}

// Init kicks off the first load when the controller has no seeded record.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.waitChange(), m.waitWatch()}
	if m.ctrl.Snapshot().Current == nil {
		ctrl := m.ctrl
		cmds = append(cmds, func() tea.Msg {
			ctrl.LoadDate("")
			return nil
		})
	}
	return tea.Batch(cmds...)
}

func (m Model) waitChange() tea.Cmd {
	ch := m.changes
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return stateChangedMsg{}
	}
}

func (m Model) waitWatch() tea.Cmd {
	ch := m.watch
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return storeChangedMsg{}
	}
}

// Update handles messages and keybindings.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
	case stateChangedMsg:
		cmds = append(cmds, m.waitChange())
	case storeChangedMsg:
		m.clampBookmarkCursor()
		cmds = append(cmds, m.waitWatch())
	case tea.KeyPressMsg:
		snap := m.ctrl.Snapshot()
		switch {
		case snap.DateModalOpen:
			return m.updateDateModal(msg, cmds)
		case snap.BookmarksModalOpen:
			return m.updateBookmarksModal(msg, cmds)
		default:
			return m.updateView(msg, snap, cmds)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m Model) updateView(msg tea.KeyPressMsg, snap viewstate.Snapshot, cmds []tea.Cmd) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		cmds = append(cmds, tea.Quit)
	case "h", "left":
		m.ctrl.Navigate(-1)
	case "l", "right":
		m.ctrl.Navigate(+1)
	case "b":
		m.ctrl.ToggleBookmark()
	case "f":
		m.ctrl.ToggleFocusMode()
	case "r":
		if snap.LastError != "" {
			m.ctrl.Retry()
		}
	case "d":
		m.ctrl.OpenDateModal()
		m.dateError = ""
		m.dateInput.SetValue(m.ctrl.Snapshot().SelectedDate)
		m.dateInput.CursorEnd()
		if cmd := m.dateInput.Focus(); cmd != nil {
			cmds = append(cmds, cmd)
		}
		cmds = append(cmds, textinput.Blink)
	case "B":
		m.bmCursor = 0
		m.ctrl.OpenBookmarksModal()
	}
	return m, tea.Batch(cmds...)
}

func (m Model) updateDateModal(msg tea.KeyPressMsg, cmds []tea.Cmd) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.dateError = ""
		m.dateInput.Blur()
		m.ctrl.CloseDateModal()
	case "enter":
		// Format and range problems are caught here; a doomed fetch is never
		// issued for user-typed dates.
		date := m.dateInput.Value()
		if _, err := dateutil.Parse(date); err != nil {
			m.dateError = "Enter a date as YYYY-MM-DD"
			break
		}
		if !dateutil.InValidRange(date) {
			m.dateError = "Pick a date between " + dateutil.Epoch + " and today"
			break
		}
		m.dateError = ""
		m.dateInput.Blur()
		m.ctrl.LoadDate(date)
	default:
		var cmd tea.Cmd
		m.dateInput, cmd = m.dateInput.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) updateBookmarksModal(msg tea.KeyPressMsg, cmds []tea.Cmd) (tea.Model, tea.Cmd) {
	list := m.ctrl.SortedBookmarks()
	switch msg.String() {
	case "esc", "q", "B":
		m.ctrl.CloseBookmarksModal()
	case "j", "down":
		if m.bmCursor < len(list)-1 {
			m.bmCursor++
		}
	case "k", "up":
		if m.bmCursor > 0 {
			m.bmCursor--
		}
	case "x", "delete":
		if m.bmCursor < len(list) {
			m.ctrl.RemoveBookmark(list[m.bmCursor].Date)
			m.clampBookmarkCursor()
		}
	case "enter":
		if m.bmCursor < len(list) {
			date := list[m.bmCursor].Date
			m.ctrl.CloseBookmarksModal()
			m.ctrl.LoadDate(date)
		}
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) clampBookmarkCursor() {
	n := len(m.ctrl.SortedBookmarks())
	if m.bmCursor >= n {
		m.bmCursor = n - 1
	}
	if m.bmCursor < 0 {
		m.bmCursor = 0
	}
}

// Run wires the controller, store watch, and program together and blocks
// until the user quits.
func Run(ctrl *viewstate.Controller, store bookmarks.Persistence, changes <-chan struct{}) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	watch, err := store.Watch(ctx)
	if err != nil {
		// The viewer still works without cross-process refresh.
		watch = nil
	}

	p := tea.NewProgram(New(ctrl, changes, watch), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

var _ tea.Model = Model{}

func centered(width, height int, s string) string {
	if width <= 0 || height <= 0 {
		return s
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, s)
}
