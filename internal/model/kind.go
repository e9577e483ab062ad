package model

// Kind names one of the five record collections the console manages.
// Kinds appear in route paths, edit-session state and change events, so
// the values are the plural, URL-friendly collection names.
type Kind string

const (
	KindCoaches Kind = "coaches"
	KindCourses Kind = "courses"
	KindPlayers Kind = "players"
	KindMatches Kind = "matches"
	KindVideos  Kind = "videos"
)

// Kinds lists every collection kind in display order.
var Kinds = []Kind{KindCoaches, KindCourses, KindPlayers, KindMatches, KindVideos}

// KindFromString maps a route parameter to a Kind.  The boolean is
// false for unknown names.
func KindFromString(s string) (Kind, bool) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}
