package workflow

import (
	"sort"
	"strconv"
	"strings"
)

// SelectionSet is the user's in-progress set of chosen slot starts
// ("HH:MM"), unique and always in ascending chronological order. Zero-padded
// 24h times sort chronologically as strings, so lexical order is temporal
// order.
type SelectionSet []string

// Contains reports whether start is selected.
func (s SelectionSet) Contains(start string) bool {
	for _, v := range s {
		if v == start {
			return true
		}
	}
	return false
}

// Toggle returns the set with start added or removed. Insertion restores
// ascending order regardless of click order, because the derived booking
// interval depends on the earliest and latest selected starts.
func (s SelectionSet) Toggle(start string) SelectionSet {
	if s.Contains(start) {
		out := make(SelectionSet, 0, len(s)-1)
		for _, v := range s {
			if v != start {
				out = append(out, v)
			}
		}
		return out
	}
	out := make(SelectionSet, len(s), len(s)+1)
	copy(out, s)
	out = append(out, start)
	sort.Strings(out)
	return out
}

// Earliest returns the first selected start, or "" when empty.
func (s SelectionSet) Earliest() string {
	if len(s) == 0 {
		return ""
	}
	return s[0]
}

// Latest returns the last selected start, or "" when empty.
func (s SelectionSet) Latest() string {
	if len(s) == 0 {
		return ""
	}
	return s[len(s)-1]
}

// FirstGap returns the bounds of the first hour gap inside the selection.
// ok is false when the selection is contiguous (or has fewer than two
// entries).
func (s SelectionSet) FirstGap() (after, before string, ok bool) {
	for i := 1; i < len(s); i++ {
		if slotHour(s[i]) != slotHour(s[i-1])+1 {
			return s[i-1], s[i], true
		}
	}
	return "", "", false
}

// slotHour parses the hour component of an "HH:MM" start.
func slotHour(start string) int {
	h, _ := strconv.Atoi(strings.SplitN(start, ":", 2)[0])
	return h
}
