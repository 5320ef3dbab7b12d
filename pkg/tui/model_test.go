package tui

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/ansi"

	"github.com/XolaniXAD/cosmic-calendar/pkg/bookmarks"
	"github.com/XolaniXAD/cosmic-calendar/pkg/record"
	"github.com/XolaniXAD/cosmic-calendar/pkg/viewstate"
)

// syncScheduler fires scheduled callbacks immediately so controller loads
// complete inline during tests.
type syncScheduler struct{}

func (syncScheduler) Schedule(d time.Duration, fn func()) func() {
	fn()
	return func() {}
}

type fakeGateway struct {
	mu    sync.Mutex
	calls []string
	err   error
}

func (g *fakeGateway) Fetch(ctx context.Context, date string) (*record.Record, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls = append(g.calls, date)
	if g.err != nil {
		return nil, g.err
	}
	if date == "" {
		date = "2020-06-15"
	}
	return &record.Record{
		Date:        date,
		Title:       "Title " + date,
		Explanation: "A field of distant galaxies.",
		URL:         "https://example.com/" + date + ".jpg",
		MediaType:   record.MediaTypeImage,
	}, nil
}

type memStore struct {
	mu  sync.Mutex
	set bookmarks.Set
}

func newMemStore() *memStore { return &memStore{set: make(bookmarks.Set)} }

func (f *memStore) Load() (bookmarks.Set, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.set.Clone(), nil
}

func (f *memStore) Save(s bookmarks.Set) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.set = s.Clone()
	return nil
}

func (f *memStore) Has(date string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.set.Has(date)
}

func (f *memStore) Add(r *record.Record) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.set[r.Date] = r.Clone()
	return nil
}

func (f *memStore) Remove(date string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.set, date)
	return nil
}

func (f *memStore) Watch(ctx context.Context) (<-chan bookmarks.Event, error) {
	ch := make(chan bookmarks.Event)
	go func() {
		<-ctx.Done()
		close(ch)
	}()
	return ch, nil
}

var _ bookmarks.Persistence = (*memStore)(nil)

func newTestModel(t *testing.T, gw *fakeGateway, store *memStore, initial *record.Record) Model {
	t.Helper()
	opts := []viewstate.Option{
		viewstate.WithScheduler(syncScheduler{}),
	}
	if initial != nil {
		opts = append(opts, viewstate.WithInitialRecord(initial))
	}
	ctrl := viewstate.New(gw, store, opts...)
	m := New(ctrl, nil, nil)
	m.termWidth = 100
	m.termHeight = 30
	return m
}

func press(t *testing.T, m Model, msg tea.KeyPressMsg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func key(s string) tea.KeyPressMsg {
	return tea.KeyPressMsg{Text: s, Code: rune(s[0])}
}

func stripANSI(s string) string {
	var b strings.Builder
	ansiSeq := false
	for _, r := range s {
		if r == ansi.Marker {
			ansiSeq = true
			continue
		}
		if ansiSeq {
			if ansi.IsTerminator(r) {
				ansiSeq = false
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func seed(date string) *record.Record {
	return &record.Record{
		Date:        date,
		Title:       "Seeded " + date,
		Explanation: "stars",
		URL:         "https://example.com/seed.jpg",
		MediaType:   record.MediaTypeImage,
	}
}

func TestNavigateKeysFetchNeighborDates(t *testing.T) {
	gw := &fakeGateway{}
	m := newTestModel(t, gw, newMemStore(), seed("2020-06-15"))

	m = press(t, m, key("l"))
	if len(gw.calls) != 1 || gw.calls[0] != "2020-06-16" {
		t.Fatalf("calls = %v", gw.calls)
	}

	m = press(t, m, key("h"))
	if len(gw.calls) != 2 || gw.calls[1] != "2020-06-15" {
		t.Fatalf("calls = %v", gw.calls)
	}
}

func TestViewRendersRecord(t *testing.T) {
	m := newTestModel(t, &fakeGateway{}, newMemStore(), seed("2020-06-15"))
	view := stripANSI(m.View())

	for _, want := range []string{"Seeded 2020-06-15", "2020-06-15", "stars", "example.com/seed.jpg", "q quit"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}

func TestFocusModeHidesChrome(t *testing.T) {
	m := newTestModel(t, &fakeGateway{}, newMemStore(), seed("2020-06-15"))
	m = press(t, m, key("f"))
	view := stripANSI(m.View())

	if strings.Contains(view, "q quit") {
		t.Fatalf("focus mode should hide the help footer:\n%s", view)
	}
	if strings.Contains(view, "stars") {
		t.Fatalf("focus mode should hide the explanation panel:\n%s", view)
	}
	if !strings.Contains(view, "example.com/seed.jpg") {
		t.Fatalf("focus mode should keep the media reference:\n%s", view)
	}

	m = press(t, m, key("f"))
	if !strings.Contains(stripANSI(m.View()), "q quit") {
		t.Fatalf("leaving focus mode should restore the footer")
	}
}

func TestDateModalValidatesBeforeFetch(t *testing.T) {
	gw := &fakeGateway{}
	m := newTestModel(t, gw, newMemStore(), seed("2020-06-15"))

	m = press(t, m, key("d"))
	if !m.ctrl.Snapshot().DateModalOpen {
		t.Fatalf("expected date modal open")
	}

	m.dateInput.SetValue("not-a-date")
	m = press(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if m.dateError == "" {
		t.Fatalf("expected validation error for malformed date")
	}
	if len(gw.calls) != 0 {
		t.Fatalf("malformed date must not fetch, calls = %v", gw.calls)
	}

	m.dateInput.SetValue("1990-01-01")
	m = press(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if m.dateError == "" {
		t.Fatalf("expected validation error for out-of-range date")
	}
	if len(gw.calls) != 0 {
		t.Fatalf("out-of-range date must not fetch, calls = %v", gw.calls)
	}

	m.dateInput.SetValue("2020-01-01")
	m = press(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if m.dateError != "" {
		t.Fatalf("unexpected validation error: %q", m.dateError)
	}
	if len(gw.calls) != 1 || gw.calls[0] != "2020-01-01" {
		t.Fatalf("calls = %v", gw.calls)
	}
	if m.ctrl.Snapshot().DateModalOpen {
		t.Fatalf("modal should close after a successful load")
	}
}

func TestFocusToggleIgnoredWhileModalOpen(t *testing.T) {
	m := newTestModel(t, &fakeGateway{}, newMemStore(), seed("2020-06-15"))
	m = press(t, m, key("d"))

	// "f" lands in the date input, not the focus toggle.
	m = press(t, m, key("f"))
	if m.ctrl.Snapshot().FocusMode {
		t.Fatalf("typing in the date modal must not toggle focus mode")
	}
}

func TestBookmarksModalRemoveAndOpen(t *testing.T) {
	gw := &fakeGateway{}
	store := newMemStore()
	m := newTestModel(t, gw, store, seed("2020-06-15"))

	// Save two dates, newest shown first.
	_ = store.Add(seed("2020-01-01"))
	_ = store.Add(seed("2021-01-01"))

	m = press(t, m, tea.KeyPressMsg{Text: "B", Code: 'B'})
	if !m.ctrl.Snapshot().BookmarksModalOpen {
		t.Fatalf("expected bookmarks modal open")
	}
	view := stripANSI(m.View())
	if !strings.Contains(view, "2021-01-01") || !strings.Contains(view, "2020-01-01") {
		t.Fatalf("bookmarks modal missing entries:\n%s", view)
	}

	// Remove the newest, cursor stays valid.
	m = press(t, m, key("x"))
	if store.Has("2021-01-01") {
		t.Fatalf("expected 2021-01-01 removed")
	}

	// Open the remaining one.
	m = press(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if m.ctrl.Snapshot().BookmarksModalOpen {
		t.Fatalf("modal should close when opening a bookmark")
	}
	if got := gw.calls[len(gw.calls)-1]; got != "2020-01-01" {
		t.Fatalf("expected fetch for opened bookmark, got %q", got)
	}
}

func TestErrorFooterOffersRetry(t *testing.T) {
	gw := &fakeGateway{}
	m := newTestModel(t, gw, newMemStore(), seed("2020-06-15"))
	m.ctrl = viewstate.New(gw, newMemStore(),
		viewstate.WithScheduler(syncScheduler{}),
		viewstate.WithInitialRecord(seed("2020-06-15")),
	)

	gw.err = context.DeadlineExceeded
	m.ctrl.LoadDate("2020-06-16")

	view := stripANSI(m.View())
	if !strings.Contains(view, "r to retry") {
		t.Fatalf("expected retry hint in footer:\n%s", view)
	}
	if !strings.Contains(view, "Seeded 2020-06-15") {
		t.Fatalf("last good record should remain on screen:\n%s", view)
	}
}
