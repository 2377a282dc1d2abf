package workflow

import (
	"fmt"

	"infinity8/models"
)

// BookingDraft is the derived booking payload: a pure function of the
// current selection, the selected date, and the space's hourly price. It
// is never stored; the booking service recomputes the authoritative price.
type BookingDraft struct {
	SpaceID    int64   `json:"space_id"`
	StartTime  string  `json:"start_time"` // ISO-8601 local timestamp
	EndTime    string  `json:"end_time"`
	Hours      int     `json:"hours"`
	TotalPrice float64 `json:"total_price"`
	Notes      string  `json:"notes,omitempty"`
}

// Input converts the draft into the booking service payload.
func (d BookingDraft) Input() models.BookingInput {
	return models.BookingInput{
		SpaceID:   d.SpaceID,
		StartTime: d.StartTime,
		EndTime:   d.EndTime,
		Notes:     d.Notes,
	}
}

// draftLocked derives the booking payload from the current selection.
// Slots are exactly one hour wide: the interval runs from the earliest
// selected start to one hour past the latest selected start, and the total
// is hours-selected times the hourly price. With ContiguityAllowGaps an
// unselected hour between the bounds is silently spanned.
func (c *Controller) draftLocked(notes string) BookingDraft {
	earliest := c.selection.Earliest()
	latest := c.selection.Latest()
	endHour := slotHour(latest) + 1
	return BookingDraft{
		SpaceID:    c.space.ID,
		StartTime:  fmt.Sprintf("%sT%s:00", c.selectedDate, earliest),
		EndTime:    fmt.Sprintf("%sT%02d:00:00", c.selectedDate, endHour),
		Hours:      len(c.selection),
		TotalPrice: float64(len(c.selection)) * c.space.PricePerHour,
		Notes:      notes,
	}
}

// Draft derives the current booking payload, failing on an empty
// selection.
func (c *Controller) Draft(notes string) (BookingDraft, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.selection) == 0 {
		return BookingDraft{}, &ValidationError{Reason: "select at least one time slot"}
	}
	return c.draftLocked(notes), nil
}
