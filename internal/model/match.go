package model

import "time"

// MatchStatus is the lifecycle state of a match.
type MatchStatus string

const (
	// MatchUpcoming marks a match that has not been played yet.
	MatchUpcoming MatchStatus = "upcoming"
	// MatchFinished marks a match that is already over.
	MatchFinished MatchStatus = "finished"
)

// Valid reports whether s is one of the known match states.
func (s MatchStatus) Valid() bool {
	return s == MatchUpcoming || s == MatchFinished
}

// MatchDateLayout is the calendar-date format matches are stored with.
const MatchDateLayout = "2006-01-02"

// Match represents a scheduled or played match.
//
// Fields:
//  ID       – unique identifier, assigned once at creation.
//  Title    – match title, e.g. "Power Sharks vs Blue Waves" (required).
//  Date     – calendar date in YYYY-MM-DD form (required).
//  Location – venue description.
//  Status   – "upcoming" or "finished".  Derived from Date at save time
//             unless the caller sets it explicitly.
type Match struct {
	ID       int64       `json:"id"`
	Title    string      `json:"title"`
	Date     string      `json:"date"`
	Location string      `json:"location"`
	Status   MatchStatus `json:"status"`
}

// DateTime parses the match date.  An error means the stored date is not
// a valid calendar date.
func (m Match) DateTime() (time.Time, error) {
	return time.Parse(MatchDateLayout, m.Date)
}

// DeriveMatchStatus computes the status a match should carry when saved:
// upcoming when its date is after now, finished otherwise.  An
// unparseable date counts as finished.
func DeriveMatchStatus(date string, now time.Time) MatchStatus {
	t, err := time.Parse(MatchDateLayout, date)
	if err != nil {
		return MatchFinished
	}
	if t.After(now) {
		return MatchUpcoming
	}
	return MatchFinished
}
