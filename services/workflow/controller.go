// Package workflow implements the booking workflow controller: date
// selection, per-day availability, multi-slot selection, and booking
// submission for one (user, space) viewing context. The availability and
// booking collaborators are authoritative for everything; the controller
// only keeps the in-progress state coherent.
package workflow

import (
	"context"
	"fmt"
	"sync"
	"time"

	"infinity8/models"

	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// SlotLoadState tracks the availability grid lifecycle.
type SlotLoadState string

const (
	SlotsNotLoaded  SlotLoadState = "not_loaded"
	SlotsLoading    SlotLoadState = "loading"
	SlotsLoaded     SlotLoadState = "loaded"
	SlotsLoadFailed SlotLoadState = "load_failed"
)

// SubmissionState tracks the booking submission lifecycle.
type SubmissionState string

const (
	SubmissionIdle       SubmissionState = "idle"
	SubmissionSubmitting SubmissionState = "submitting"
	SubmissionSucceeded  SubmissionState = "succeeded"
	SubmissionFailed     SubmissionState = "failed"
)

// Controller owns the booking workflow state for one space. All state
// transitions happen under one lock in response to discrete events; the
// two collaborator calls are the only suspension points.
type Controller struct {
	mu sync.Mutex

	space      models.Space
	deps       Deps
	contiguity ContiguityPolicy
	now        func() time.Time

	selectedDate string
	slots        []models.TimeSlot
	slotState    SlotLoadState
	selection    SelectionSet
	submission   SubmissionState
	failReason   string

	// fetchSeq tags the most recently issued availability fetch. A
	// completion carrying an older tag is discarded wholesale: the grid
	// must always correspond to the last request, never the last response.
	fetchSeq uint64
}

// NewController builds a controller for the given space, defaulting the
// selected date to today in the clock's location. The grid is not loaded
// yet; call Refresh (or SetDate) to populate it.
func NewController(space models.Space, deps Deps, opts Options) *Controller {
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	contiguity := opts.Contiguity
	if contiguity == "" {
		contiguity = ContiguityAllowGaps
	}
	return &Controller{
		space:        space,
		deps:         deps,
		contiguity:   contiguity,
		now:          clock,
		selectedDate: clock().Format(dateLayout),
		slotState:    SlotsNotLoaded,
		submission:   SubmissionIdle,
	}
}

// Space returns the space this controller books.
func (c *Controller) Space() models.Space {
	return c.space
}

// SetDate switches the viewing date, clears the selection, and fetches the
// new day's availability. Dates strictly before today are refused; this is
// a soft UI constraint, the booking service independently rejects
// past-dated bookings. A fetch failure leaves the panel usable for date
// re-selection, just with no slots to pick.
func (c *Controller) SetDate(ctx context.Context, date string) error {
	day, err := time.ParseInLocation(dateLayout, date, c.now().Location())
	if err != nil {
		return &ValidationError{Reason: fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", date)}
	}
	nowDay := c.now()
	today := time.Date(nowDay.Year(), nowDay.Month(), nowDay.Day(), 0, 0, 0, 0, nowDay.Location())
	if day.Before(today) {
		return &ValidationError{Reason: "cannot select a date in the past"}
	}

	c.mu.Lock()
	c.selectedDate = date
	c.selection = nil
	c.slots = nil
	c.slotState = SlotsLoading
	c.resetSettledSubmissionLocked()
	c.fetchSeq++
	seq := c.fetchSeq
	c.mu.Unlock()

	return c.completeFetch(ctx, date, seq)
}

// Refresh re-fetches availability for the currently selected date. The
// selection is cleared on commit: availability is not stable across
// refreshes, so a stale selection must not survive a new grid.
func (c *Controller) Refresh(ctx context.Context) error {
	c.mu.Lock()
	date := c.selectedDate
	c.slotState = SlotsLoading
	c.fetchSeq++
	seq := c.fetchSeq
	c.mu.Unlock()

	return c.completeFetch(ctx, date, seq)
}

// completeFetch performs the availability call issued with the given tag
// and commits the result only if no newer fetch superseded it meanwhile.
func (c *Controller) completeFetch(ctx context.Context, date string, seq uint64) error {
	slots, err := c.deps.Availability.DayAvailability(ctx, c.space.ID, date)

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.fetchSeq {
		zap.L().Debug("discarding stale availability response",
			zap.Int64("spaceID", c.space.ID), zap.String("date", date))
		return nil
	}
	if err != nil {
		c.slots = nil
		c.selection = nil
		c.slotState = SlotsLoadFailed
		return mapCollaboratorError(err)
	}
	c.slots = slots
	c.selection = nil
	c.slotState = SlotsLoaded
	return nil
}

// ToggleSlot adds or removes one slot start from the selection. Unknown
// and unavailable starts are strict no-ops. The selection stays sorted
// ascending so the derived booking interval is well-defined regardless of
// click order.
func (c *Controller) ToggleSlot(start string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.slotState != SlotsLoaded {
		return
	}
	bookable := false
	for _, slot := range c.slots {
		if slot.Start == start {
			bookable = slot.Available
			break
		}
	}
	if !bookable {
		return
	}
	c.selection = c.selection.Toggle(start)
	c.resetSettledSubmissionLocked()
}

// Selection returns a copy of the current selection.
func (c *Controller) Selection() SelectionSet {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(SelectionSet, len(c.selection))
	copy(out, c.selection)
	return out
}

// Submit derives the booking draft from the current selection and sends it
// to the booking service. While a submission is in flight a second call is
// rejected without touching the network. On failure the selection is left
// untouched so the user can adjust and retry; on success the selection is
// cleared and availability for the same date is re-fetched so the grid
// reflects the upstream's view of the newly booked hours.
func (c *Controller) Submit(ctx context.Context, notes string) (*models.Booking, error) {
	c.mu.Lock()
	if c.submission == SubmissionSubmitting {
		c.mu.Unlock()
		return nil, ErrSubmissionInFlight
	}
	if c.deps.Auth == nil || !c.deps.Auth.Authenticated(ctx) {
		c.mu.Unlock()
		return nil, ErrAuthenticationRequired
	}
	if len(c.selection) == 0 {
		c.mu.Unlock()
		return nil, &ValidationError{Reason: "select at least one time slot"}
	}
	if c.contiguity == ContiguityReject {
		if after, before, gapped := c.selection.FirstGap(); gapped {
			c.mu.Unlock()
			return nil, &ValidationError{
				Reason: fmt.Sprintf("selected slots must be contiguous: gap between %s and %s", after, before),
			}
		}
	}
	draft := c.draftLocked(notes)
	c.submission = SubmissionSubmitting
	c.failReason = ""
	c.mu.Unlock()

	booking, err := c.deps.Booking.CreateBooking(ctx, draft.Input())
	if err != nil {
		mapped := mapCollaboratorError(err)
		c.mu.Lock()
		c.submission = SubmissionFailed
		c.failReason = userMessage(mapped)
		c.mu.Unlock()
		return nil, mapped
	}

	c.mu.Lock()
	c.submission = SubmissionSucceeded
	c.failReason = ""
	c.selection = nil
	date := c.selectedDate
	c.slotState = SlotsLoading
	c.fetchSeq++
	seq := c.fetchSeq
	c.mu.Unlock()

	// The just-booked hours should come back unavailable from upstream;
	// the controller never flips slots locally, the conflict rules there
	// may differ from a naive local guess.
	if err := c.completeFetch(ctx, date, seq); err != nil {
		zap.L().Warn("availability refresh after booking failed",
			zap.Int64("spaceID", c.space.ID), zap.Error(err))
	}
	return booking, nil
}

// resetSettledSubmissionLocked returns a settled submission (Succeeded or
// Failed) to Idle. Any user action after settling counts as the "next
// action" that leaves the terminal state.
func (c *Controller) resetSettledSubmissionLocked() {
	if c.submission == SubmissionSucceeded || c.submission == SubmissionFailed {
		c.submission = SubmissionIdle
		c.failReason = ""
	}
}

// userMessage renders an error for display. Upstream rejections pass
// through verbatim; transport failures get a generic retry prompt.
func userMessage(err error) string {
	switch e := err.(type) {
	case *RejectionError:
		return e.Message
	case *ValidationError:
		return e.Reason
	default:
		return "Something went wrong talking to the booking service. Please try again."
	}
}

// State is the JSON view of the controller handed to HTTP callers.
type State struct {
	SpaceID      int64             `json:"space_id"`
	SelectedDate string            `json:"selected_date"`
	SlotState    SlotLoadState     `json:"slot_state"`
	Slots        []models.TimeSlot `json:"slots"`
	Selection    []string          `json:"selection"`
	Submission   SubmissionState   `json:"submission"`
	FailReason   string            `json:"fail_reason,omitempty"`
	Draft        *BookingDraft     `json:"draft,omitempty"`
}

// State snapshots the controller for presentation. The draft is present
// only while at least one slot is selected.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	st := State{
		SpaceID:      c.space.ID,
		SelectedDate: c.selectedDate,
		SlotState:    c.slotState,
		Slots:        append([]models.TimeSlot(nil), c.slots...),
		Selection:    append([]string(nil), c.selection...),
		Submission:   c.submission,
		FailReason:   c.failReason,
	}
	if len(c.selection) > 0 {
		draft := c.draftLocked("")
		st.Draft = &draft
	}
	return st
}
