// Package viewstate owns the live UI state of the viewer and is its single
// mutation surface. Renderers read state through Snapshot and the selector
// methods and feed user intents back in through the transition methods; no
// UI framework is needed to drive or test it.
package viewstate

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/XolaniXAD/cosmic-calendar/pkg/bookmarks"
	"github.com/XolaniXAD/cosmic-calendar/pkg/dateutil"
	"github.com/XolaniXAD/cosmic-calendar/pkg/gateway"
	"github.com/XolaniXAD/cosmic-calendar/pkg/record"
)

// Gateway is the slice of the record client the controller needs.
type Gateway interface {
	Fetch(ctx context.Context, date string) (*record.Record, error)
}

// Boundary and failure messages surfaced through LastError.
const (
	MsgBeforeEpoch = "no record before earliest date"
	MsgFutureDate  = "no record for future dates"

	msgAuthFailure    = "The feed rejected the request. Try again later."
	msgNetworkFailure = "Could not reach the feed. Check your connection and retry."
	msgBookmarkSave   = "Could not update bookmarks; the saved set is unchanged."
)

// DefaultDebounce bounds upstream request volume when a navigation control is
// held down: only the last load requested within the window is issued.
const DefaultDebounce = 300 * time.Millisecond

// Snapshot is a read-only copy of the controller's state at one instant.
type Snapshot struct {
	Current            *record.Record
	SelectedDate       string
	Loading            bool
	DateModalOpen      bool
	BookmarksModalOpen bool
	FocusMode          bool
	LastError          string
}

// Controller is the view-state machine. All mutation goes through its
// transition methods; each applied transition runs atomically with respect to
// the others and fires the change hook afterwards.
type Controller struct {
	gw    Gateway
	store bookmarks.Persistence
	sched Scheduler
	ctx   context.Context

	debounce time.Duration
	onChange func()

	mu                 sync.Mutex
	current            *record.Record
	selectedDate       string
	dateChosen         bool
	loading            bool
	dateModalOpen      bool
	bookmarksModalOpen bool
	focusMode          bool
	lastError          string

	// Request fencing: every issued fetch carries an id, and a completion is
	// discarded unless its id is still the most recently issued one. A burst
	// of loads therefore settles on the newest request even when responses
	// arrive out of order.
	reqSeq        uint64
	lastRequested string
	cancelPending func()
	pendingDate   string
	pendingValid  bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithScheduler substitutes the debounce scheduler, used by tests to control
// time.
func WithScheduler(s Scheduler) Option {
	return func(c *Controller) { c.sched = s }
}

// WithDebounce overrides the load coalescing window.
func WithDebounce(d time.Duration) Option {
	return func(c *Controller) { c.debounce = d }
}

// WithInitialRecord seeds the controller with a record supplied at startup so
// no first fetch is needed.
func WithInitialRecord(r *record.Record) Option {
	return func(c *Controller) { c.current = r }
}

// WithOnChange registers a hook fired after every applied transition. The
// hook runs outside the controller's lock and may call Snapshot.
func WithOnChange(fn func()) Option {
	return func(c *Controller) { c.onChange = fn }
}

// WithContext sets the context carried by fetches issued by the controller.
func WithContext(ctx context.Context) Option {
	return func(c *Controller) { c.ctx = ctx }
}

// New constructs a Controller over the given gateway and bookmark store.
func New(gw Gateway, store bookmarks.Persistence, opts ...Option) *Controller {
	c := &Controller{
		gw:       gw,
		store:    store,
		sched:    TimerScheduler{},
		ctx:      context.Background(),
		debounce: DefaultDebounce,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{
		Current:            c.current,
		SelectedDate:       c.selectedDate,
		Loading:            c.loading,
		DateModalOpen:      c.dateModalOpen,
		BookmarksModalOpen: c.bookmarksModalOpen,
		FocusMode:          c.focusMode,
		LastError:          c.lastError,
	}
}

func (c *Controller) changed() {
	if c.onChange != nil {
		c.onChange()
	}
}

// Navigate moves one day backward (-1) or forward (+1) from the current
// record. Past either end of the valid range it reports a boundary message
// and issues no fetch.
func (c *Controller) Navigate(direction int) {
	c.mu.Lock()
	if c.current == nil {
		c.mu.Unlock()
		return
	}
	newDate, err := dateutil.AddDays(c.current.Date, direction)
	if err != nil {
		c.lastError = err.Error()
		c.mu.Unlock()
		c.changed()
		return
	}
	if !dateutil.InValidRange(newDate) {
		if direction < 0 {
			c.lastError = MsgBeforeEpoch
		} else {
			c.lastError = MsgFutureDate
		}
		c.mu.Unlock()
		c.changed()
		return
	}
	c.mu.Unlock()
	c.LoadDate(newDate)
}

// LoadDate requests the record for the date (empty date means most recent).
// Bursts within the debounce window are coalesced so only the last requested
// date reaches the gateway. The current record stays on screen until a newer
// load succeeds.
func (c *Controller) LoadDate(date string) {
	c.mu.Lock()
	if c.cancelPending != nil {
		c.cancelPending()
		c.cancelPending = nil
	}
	c.loading = true
	c.lastError = ""
	c.lastRequested = date
	c.pendingDate = date
	c.pendingValid = true
	c.mu.Unlock()

	// Scheduled outside the lock so a scheduler that runs the callback
	// inline (as test schedulers do) can re-enter the controller.
	cancel := c.sched.Schedule(c.debounce, c.issuePending)

	c.mu.Lock()
	c.cancelPending = cancel
	c.mu.Unlock()
	c.changed()
}

// Retry re-issues the most recent load, falling back to the most-recent
// record when nothing was ever requested.
func (c *Controller) Retry() {
	c.mu.Lock()
	date := c.lastRequested
	c.mu.Unlock()
	c.LoadDate(date)
}

// issuePending runs when the debounce window closes. The fetch itself happens
// on the scheduler's goroutine without holding the lock, so other transitions
// stay responsive while a round-trip is in flight.
func (c *Controller) issuePending() {
	c.mu.Lock()
	if !c.pendingValid {
		c.mu.Unlock()
		return
	}
	date := c.pendingDate
	c.pendingValid = false
	c.cancelPending = nil
	c.reqSeq++
	id := c.reqSeq
	c.mu.Unlock()

	r, err := c.gw.Fetch(c.ctx, date)
	c.complete(id, date, r, err)
}

func (c *Controller) complete(id uint64, date string, r *record.Record, err error) {
	c.mu.Lock()
	if id != c.reqSeq {
		// Stale response: a newer load was issued while this one was in
		// flight. Discard it.
		c.mu.Unlock()
		return
	}
	c.loading = false
	if err != nil {
		c.lastError = messageFor(err)
		c.mu.Unlock()
		c.changed()
		return
	}
	c.current = r
	if date == "" {
		date = r.Date
	}
	c.selectedDate = date
	c.dateChosen = true
	c.dateModalOpen = false
	c.lastError = ""
	c.mu.Unlock()
	c.changed()
}

// messageFor folds every gateway failure into a single user-facing line.
func messageFor(err error) string {
	switch {
	case errors.Is(err, gateway.ErrInvalidDate):
		return gateway.ErrInvalidDate.Error()
	case errors.Is(err, gateway.ErrAuth):
		return msgAuthFailure
	}
	var ue *gateway.UpstreamError
	if errors.As(err, &ue) {
		return fmt.Sprintf("The feed returned an error (status %d).", ue.Status)
	}
	var ne *gateway.NetworkError
	if errors.As(err, &ne) {
		return msgNetworkFailure
	}
	return err.Error()
}

// ToggleBookmark adds the current record to the bookmark set, or removes it
// if its date is already saved. The current record itself is untouched and no
// fetch is triggered.
func (c *Controller) ToggleBookmark() {
	c.mu.Lock()
	cur := c.current
	c.mu.Unlock()
	if cur == nil {
		return
	}

	var err error
	if c.store.Has(cur.Date) {
		err = c.store.Remove(cur.Date)
	} else {
		err = c.store.Add(cur)
	}

	c.mu.Lock()
	if err != nil {
		c.lastError = msgBookmarkSave
	}
	c.mu.Unlock()
	c.changed()
}

// RemoveBookmark drops the snapshot for the date. If it matches the current
// record only the derived bookmark indicator changes.
func (c *Controller) RemoveBookmark(date string) {
	err := c.store.Remove(date)
	c.mu.Lock()
	if err != nil {
		c.lastError = msgBookmarkSave
	}
	c.mu.Unlock()
	c.changed()
}

// ToggleFocusMode flips the chrome-hidden display mode. Suppressed while any
// modal is open; a click on modal UI must never also toggle focus mode.
func (c *Controller) ToggleFocusMode() {
	c.mu.Lock()
	if c.dateModalOpen || c.bookmarksModalOpen {
		c.mu.Unlock()
		return
	}
	c.focusMode = !c.focusMode
	c.mu.Unlock()
	c.changed()
}

// OpenDateModal opens the date picker, seeding the selected date to today
// only when no date was chosen yet this session.
func (c *Controller) OpenDateModal() {
	c.mu.Lock()
	c.dateModalOpen = true
	if !c.dateChosen {
		c.selectedDate = dateutil.Today()
	}
	c.mu.Unlock()
	c.changed()
}

func (c *Controller) CloseDateModal() {
	c.mu.Lock()
	c.dateModalOpen = false
	c.mu.Unlock()
	c.changed()
}

func (c *Controller) OpenBookmarksModal() {
	c.mu.Lock()
	c.bookmarksModalOpen = true
	c.mu.Unlock()
	c.changed()
}

func (c *Controller) CloseBookmarksModal() {
	c.mu.Lock()
	c.bookmarksModalOpen = false
	c.mu.Unlock()
	c.changed()
}

// IsBookmarked reports whether the current record's date is in the saved set.
// Recomputed on every call, never stored.
func (c *Controller) IsBookmarked() bool {
	c.mu.Lock()
	cur := c.current
	c.mu.Unlock()
	if cur == nil {
		return false
	}
	return c.store.Has(cur.Date)
}

// SortedBookmarks returns the saved snapshots newest-date-first for display.
func (c *Controller) SortedBookmarks() []*record.Record {
	s, err := c.store.Load()
	if err != nil {
		return nil
	}
	return s.Sorted()
}
