package model

// Player represents an athlete registered with the academy.  The Team
// field is display text, not a link to any roster or match record.
//
// Fields:
//  ID       – unique identifier, assigned once at creation.
//  Name     – player name (required).
//  Age      – player age in years, never negative.
//  Sport    – discipline the player trains in.
//  Team     – free-text team name.
//  Guardian – name of the player's guardian.
//  Phone    – guardian or player contact number.
//  Image    – inline-encoded photo (base64 data URL) or empty.
type Player struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Age      int    `json:"age"`
	Sport    string `json:"sport"`
	Team     string `json:"team"`
	Guardian string `json:"guardian"`
	Phone    string `json:"phone"`
	Image    string `json:"image"`
}
