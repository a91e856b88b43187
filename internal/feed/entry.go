package feed

import "time"

// dateLayout is the calendar-day format used throughout the dataset.
const dateLayout = "2006-01-02"

// Entry is a single candidate item extracted from a search feed.
type Entry struct {
	Title     string
	Link      string
	Published *time.Time
	Updated   *time.Time
}

// Date returns the entry's calendar day anchored to UTC. It prefers the
// published timestamp, falls back to the updated one, and finally to now.
func (e Entry) Date(now time.Time) string {
	switch {
	case e.Published != nil:
		return e.Published.UTC().Format(dateLayout)
	case e.Updated != nil:
		return e.Updated.UTC().Format(dateLayout)
	default:
		return now.UTC().Format(dateLayout)
	}
}
