package conflict

import "time"

const dateLayout = "2006-01-02"

// Interval is a half-open stay [Start, End). The End date is free for the next
// guest to check in.
type Interval struct {
	Start time.Time `json:"check_in"`
	End   time.Time `json:"check_out"`
}

// Overlaps reports whether i and o share at least one night.
// Intervals that only touch at a boundary do not overlap.
func (i Interval) Overlaps(o Interval) bool {
	return i.Start.Before(o.End) && i.End.After(o.Start)
}

func (i Interval) String() string {
	return i.Start.Format(dateLayout) + " to " + i.End.Format(dateLayout)
}
