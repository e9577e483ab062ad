package model

// Coach represents a member of the academy's training staff.  Coaches
// are free-standing records: the sport they teach is a plain string and
// is not a reference into any other collection.
//
// Fields:
//  ID     – unique identifier, assigned once at creation and immutable.
//  Name   – coach display name (required).
//  Sport  – discipline the coach teaches (required).
//  Phone  – contact phone number.
//  Bio    – short free-text biography.
//  Image  – inline-encoded portrait (base64 data URL) or empty.
//  Rating – staff rating; new coaches default to 4.5.
type Coach struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Sport  string  `json:"sport"`
	Phone  string  `json:"phone"`
	Bio    string  `json:"bio"`
	Image  string  `json:"image"`
	Rating float64 `json:"rating"`
}

// DefaultCoachRating is applied when a coach is created without an
// explicit rating.
const DefaultCoachRating = 4.5
