package workflow

import (
	"time"

	"infinity8/models"
)

// Snapshot is the serializable controller state persisted between
// requests. A snapshot taken while a submit is in flight may carry
// Submitting; Restore collapses that to Idle, since the request it
// described dies with the process that issued it.
type Snapshot struct {
	Space        models.Space      `json:"space"`
	SelectedDate string            `json:"selectedDate"`
	SlotState    SlotLoadState     `json:"slotState"`
	Slots        []models.TimeSlot `json:"slots"`
	Selection    []string          `json:"selection"`
	Submission   SubmissionState   `json:"submission"`
	FailReason   string            `json:"failReason,omitempty"`
	FetchSeq     uint64            `json:"fetchSeq"`
	Contiguity   ContiguityPolicy  `json:"contiguity"`
}

// Snapshot captures the controller state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{
		Space:        c.space,
		SelectedDate: c.selectedDate,
		SlotState:    c.slotState,
		Slots:        append([]models.TimeSlot(nil), c.slots...),
		Selection:    append([]string(nil), c.selection...),
		Submission:   c.submission,
		FailReason:   c.failReason,
		FetchSeq:     c.fetchSeq,
		Contiguity:   c.contiguity,
	}
}

// Restore rebuilds a controller from a snapshot with fresh collaborators.
// A Submitting state in an old snapshot collapses to Idle: the in-flight
// request died with the process that issued it.
func Restore(snap Snapshot, deps Deps, clock func() time.Time) *Controller {
	if clock == nil {
		clock = time.Now
	}
	contiguity := snap.Contiguity
	if contiguity == "" {
		contiguity = ContiguityAllowGaps
	}
	submission := snap.Submission
	if submission == "" || submission == SubmissionSubmitting {
		submission = SubmissionIdle
	}
	return &Controller{
		space:        snap.Space,
		deps:         deps,
		contiguity:   contiguity,
		now:          clock,
		selectedDate: snap.SelectedDate,
		slots:        append([]models.TimeSlot(nil), snap.Slots...),
		slotState:    snap.SlotState,
		selection:    append(SelectionSet(nil), snap.Selection...),
		submission:   submission,
		failReason:   snap.FailReason,
		fetchSeq:     snap.FetchSeq,
	}
}
