// Package views computes read-only projections over the record
// collections.  Every function here is pure: projections are
// recomputed from the current collections on each call and are never
// stored, so they can never go stale against the data or the clock.
package views

import (
	"strings"
	"time"

	"github.com/poweracademy/academy-server/internal/model"
)

// UpcomingMatches returns the matches that still count as upcoming: a
// match is included when its status says so or its date is after now.
// A finished match dated in the future is therefore still shown, which
// mirrors how the console always treated rescheduled fixtures.  Order
// is preserved.
func UpcomingMatches(matches []model.Match, now time.Time) []model.Match {
	out := make([]model.Match, 0, len(matches))
	for _, m := range matches {
		if m.Status == model.MatchUpcoming {
			out = append(out, m)
			continue
		}
		if t, err := m.DateTime(); err == nil && t.After(now) {
			out = append(out, m)
		}
	}
	return out
}

// FilterPlayers narrows players by a free-text query and a sport
// filter.  The query matches as a case-sensitive literal substring of
// name, team or sport; the sport filter is an exact match.  Both
// conditions must hold; an empty condition always holds.
func FilterPlayers(players []model.Player, query, sport string) []model.Player {
	out := make([]model.Player, 0, len(players))
	for _, p := range players {
		if query != "" &&
			!strings.Contains(p.Name, query) &&
			!strings.Contains(p.Team, query) &&
			!strings.Contains(p.Sport, query) {
			continue
		}
		if sport != "" && p.Sport != sport {
			continue
		}
		out = append(out, p)
	}
	return out
}

// UniqueSports returns every distinct non-empty sport appearing across
// coaches, courses and players, in first-seen order.
func UniqueSports(coaches []model.Coach, courses []model.Course, players []model.Player) []string {
	seen := make(map[string]bool)
	out := []string{}
	add := func(sport string) {
		if sport == "" || seen[sport] {
			return
		}
		seen[sport] = true
		out = append(out, sport)
	}
	for _, c := range coaches {
		add(c.Sport)
	}
	for _, c := range courses {
		add(c.Sport)
	}
	for _, p := range players {
		add(p.Sport)
	}
	return out
}

// EnrollmentRow is one course's capacity snapshot.
type EnrollmentRow struct {
	Name     string `json:"name"`
	Enrolled int    `json:"enrolled"`
	Seats    int    `json:"seats"`
}

// EnrollmentSummary projects each course to its name and seat usage.
func EnrollmentSummary(courses []model.Course) []EnrollmentRow {
	out := make([]EnrollmentRow, 0, len(courses))
	for _, c := range courses {
		out = append(out, EnrollmentRow{Name: c.Title, Enrolled: c.Enrolled, Seats: c.Seats})
	}
	return out
}

// OverviewStats are the headline counts on the console's front tab.
type OverviewStats struct {
	Players         int `json:"players"`
	Courses         int `json:"courses"`
	Coaches         int `json:"coaches"`
	UpcomingMatches int `json:"upcomingMatches"`
}

// Overview computes the headline counts.
func Overview(coaches []model.Coach, courses []model.Course, players []model.Player, matches []model.Match, now time.Time) OverviewStats {
	return OverviewStats{
		Players:         len(players),
		Courses:         len(courses),
		Coaches:         len(coaches),
		UpcomingMatches: len(UpcomingMatches(matches, now)),
	}
}
