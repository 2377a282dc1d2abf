package workflow

import (
	"sort"
	"testing"
)

func TestToggleRestoresOrderRegardlessOfClickOrder(t *testing.T) {
	var s SelectionSet
	for _, start := range []string{"14:00", "09:00", "11:00", "10:00"} {
		s = s.Toggle(start)
	}
	if !sort.StringsAreSorted(s) {
		t.Fatalf("selection not sorted: %v", s)
	}
	if len(s) != 4 {
		t.Fatalf("len = %d, want 4", len(s))
	}
}

func TestToggleRemovesWithoutDisturbingOrder(t *testing.T) {
	var s SelectionSet
	for _, start := range []string{"09:00", "10:00", "11:00"} {
		s = s.Toggle(start)
	}
	s = s.Toggle("10:00")
	if len(s) != 2 || s[0] != "09:00" || s[1] != "11:00" {
		t.Fatalf("selection = %v", s)
	}
}

func TestToggleDoesNotMutateReceiver(t *testing.T) {
	s := SelectionSet{"09:00", "10:00"}
	_ = s.Toggle("08:00")
	if s[0] != "09:00" || s[1] != "10:00" {
		t.Fatalf("receiver mutated: %v", s)
	}
}

func TestEarliestLatestEmpty(t *testing.T) {
	var s SelectionSet
	if s.Earliest() != "" || s.Latest() != "" {
		t.Fatal("empty set must report empty bounds")
	}
}

func TestFirstGap(t *testing.T) {
	tests := []struct {
		name       string
		set        SelectionSet
		wantGap    bool
		wantAfter  string
		wantBefore string
	}{
		{name: "empty", set: nil, wantGap: false},
		{name: "single", set: SelectionSet{"09:00"}, wantGap: false},
		{name: "contiguous", set: SelectionSet{"09:00", "10:00", "11:00"}, wantGap: false},
		{name: "one gap", set: SelectionSet{"09:00", "11:00"}, wantGap: true, wantAfter: "09:00", wantBefore: "11:00"},
		{name: "gap after run", set: SelectionSet{"09:00", "10:00", "14:00"}, wantGap: true, wantAfter: "10:00", wantBefore: "14:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			after, before, ok := tt.set.FirstGap()
			if ok != tt.wantGap {
				t.Fatalf("gap = %v, want %v", ok, tt.wantGap)
			}
			if ok && (after != tt.wantAfter || before != tt.wantBefore) {
				t.Fatalf("gap bounds = %s..%s, want %s..%s", after, before, tt.wantAfter, tt.wantBefore)
			}
		})
	}
}
