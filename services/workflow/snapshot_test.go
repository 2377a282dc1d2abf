package workflow

import (
	"context"
	"encoding/json"
	"testing"

	"infinity8/models"
)

func TestSnapshotRoundTripPreservesPanelState(t *testing.T) {
	avail := &fakeAvailability{grids: map[string][]models.TimeSlot{
		"2026-08-30": daySlots("09:00", "10:00"),
	}}
	deps := Deps{Availability: avail, Booking: &fakeBooking{}, Auth: fakeAuth{ok: true}}
	c := NewController(testSpace(), deps, Options{Clock: fixedClock})
	if err := c.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	c.ToggleSlot("10:00")

	data, err := json.Marshal(c.Snapshot())
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	restored := Restore(snap, deps, fixedClock)
	st := restored.State()
	if st.SelectedDate != "2026-08-30" || st.SlotState != SlotsLoaded {
		t.Fatalf("state = %s / %s", st.SelectedDate, st.SlotState)
	}
	if len(st.Selection) != 1 || st.Selection[0] != "10:00" {
		t.Fatalf("selection = %v", st.Selection)
	}

	// The restored controller keeps working against fresh collaborators.
	restored.ToggleSlot("09:00")
	if got := restored.Selection(); len(got) != 2 || got[0] != "09:00" {
		t.Fatalf("selection after restore = %v", got)
	}
}

func TestRestoreCollapsesInFlightSubmission(t *testing.T) {
	snap := Snapshot{
		Space:        testSpace(),
		SelectedDate: "2026-08-30",
		SlotState:    SlotsLoaded,
		Submission:   SubmissionSubmitting,
	}
	c := Restore(snap, Deps{}, fixedClock)
	if got := c.State().Submission; got != SubmissionIdle {
		t.Fatalf("submission = %s, want %s", got, SubmissionIdle)
	}
}
