package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"github.com/XolaniXAD/cosmic-calendar/pkg/record"
)

const helpLine = "h/l prev/next day · d pick date · b bookmark · B bookmarks · f focus · r retry · q quit"

func (m Model) View() string {
	snap := m.ctrl.Snapshot()

	width := m.termWidth
	if width <= 0 {
		width = 80
	}

	if snap.FocusMode {
		// Focus mode: all overlay UI hidden, only the media reference shows.
		return centered(width, m.termHeight, m.mediaLine(snap.Current))
	}

	var b strings.Builder

	if snap.Current != nil {
		r := snap.Current
		star := " "
		if m.ctrl.IsBookmarked() {
			star = m.theme.Bookmark.Render("★")
		}
		b.WriteString(m.theme.Title.Render(r.Title) + " " + star + "\n")
		b.WriteString(m.theme.Meta.Render(fmt.Sprintf("%s · %s · %s", r.Date, r.MediaType, r.Attribution())) + "\n\n")
		b.WriteString(m.theme.Explanation.Render(wordwrap.String(r.Explanation, min(width-2, 100))) + "\n\n")
		b.WriteString(m.mediaLine(r) + "\n")
	} else if !snap.Loading && snap.LastError == "" {
		b.WriteString(m.theme.Meta.Render("No record loaded yet.") + "\n")
	}

	switch {
	case snap.DateModalOpen:
		b.WriteString("\n" + m.dateModalView())
	case snap.BookmarksModalOpen:
		b.WriteString("\n" + m.bookmarksModalView())
	}

	b.WriteString("\n" + m.footer(snap.Loading, snap.LastError))
	return b.String()
}

func (m Model) mediaLine(r *record.Record) string {
	if r == nil {
		return ""
	}
	if id, ok := record.VideoID(r.URL); r.IsVideo() && ok {
		return m.theme.Media.Render(fmt.Sprintf("▶ video %s (%s)", id, r.URL))
	}
	return m.theme.Media.Render(r.URL)
}

func (m Model) dateModalView() string {
	lines := []string{
		m.theme.ModalTitle.Render("Go to date"),
		"",
		m.dateInput.View(),
	}
	if m.dateError != "" {
		lines = append(lines, "", m.theme.Error.Render(m.dateError))
	}
	lines = append(lines, "", m.theme.Help.Render("enter load · esc cancel"))
	return m.theme.ModalFrame.Render(strings.Join(lines, "\n"))
}

func (m Model) bookmarksModalView() string {
	list := m.ctrl.SortedBookmarks()
	lines := []string{m.theme.ModalTitle.Render("Bookmarks"), ""}

	if len(list) == 0 {
		lines = append(lines, m.theme.Meta.Render("nothing saved yet"))
	}
	for i, r := range list {
		row := fmt.Sprintf("%s  %s", r.Date, r.Title)
		if i == m.bmCursor {
			row = m.theme.Selected.Render(row)
		}
		lines = append(lines, row)
	}

	lines = append(lines, "", m.theme.Help.Render("enter open · x remove · esc close"))
	return m.theme.ModalFrame.Render(strings.Join(lines, "\n"))
}

func (m Model) footer(loading bool, lastError string) string {
	var status string
	switch {
	case lastError != "":
		status = m.theme.Error.Render(lastError + "  (r to retry)")
	case loading:
		status = m.theme.Status.Render("loading…")
	default:
		status = m.theme.Status.Render("ready")
	}
	return lipgloss.JoinVertical(lipgloss.Left, status, m.theme.Help.Render(helpLine))
}
