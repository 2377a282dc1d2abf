package models

// TimeSlot represents one bookable hour of a space on a given date.
// Immutable once fetched; a new availability fetch supersedes the whole list.
type TimeSlot struct {
	Start     string `json:"start"` // local time "HH:MM"
	End       string `json:"end"`   // local time "HH:MM"
	Available bool   `json:"available"`
}

// SpaceAvailability is the core API's per-day availability grid for a space.
type SpaceAvailability struct {
	SpaceID        int64      `json:"space_id"`
	Date           string     `json:"date"` // "YYYY-MM-DD"
	AvailableSlots []TimeSlot `json:"available_slots"`
}
