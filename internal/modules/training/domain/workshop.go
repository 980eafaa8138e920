package domain

import (
	"slices"
	"strings"
	"time"
)

type Workshop struct {
	ID          string
	Title       string
	Description string
	Date        string
	Time        string
	// Duration is in minutes.
	Duration int
	Location string
	Author   string
}

// StartsAt combines Date and Time. ok is false when Date does not parse.
func (w Workshop) StartsAt() (time.Time, bool) {
	date := strings.TrimSpace(w.Date)
	if t, err := time.Parse(time.RFC3339Nano, date); err == nil {
		return t, true
	}
	if clock := strings.TrimSpace(w.Time); clock != "" {
		if t, err := time.Parse("2006-01-02 15:04", date+" "+clock); err == nil {
			return t, true
		}
	}
	if t, err := time.Parse("2006-01-02", date); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// SortChronological orders workshops soonest first; undated ones go last.
func SortChronological(workshops []Workshop) {
	slices.SortStableFunc(workshops, func(a, b Workshop) int {
		ta, okA := a.StartsAt()
		tb, okB := b.StartsAt()
		switch {
		case okA && okB:
			return ta.Compare(tb)
		case okA:
			return -1
		case okB:
			return 1
		default:
			return 0
		}
	})
}

// SortRecentFirst is the reverse order used for past workshops.
func SortRecentFirst(workshops []Workshop) {
	SortChronological(workshops)
	dated := 0
	for _, w := range workshops {
		if _, ok := w.StartsAt(); ok {
			dated++
		}
	}
	slices.Reverse(workshops[:dated])
}
