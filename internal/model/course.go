package model

// Course represents a training course offered by the academy.
//
// Fields:
//  ID            – unique identifier, assigned once at creation.
//  Title         – course name (required).
//  Sport         – discipline the course covers.
//  Level         – difficulty label (e.g. "Beginner").
//  Price         – course price in the academy's local currency.
//  DurationWeeks – length of the course in weeks.
//  Seats         – total capacity.
//  Enrolled      – number of students currently enrolled.  Enrolled
//                  staying within Seats is desired but nothing in the
//                  system enforces it; staff edit both fields freely.
type Course struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	Sport         string  `json:"sport"`
	Level         string  `json:"level"`
	Price         float64 `json:"price"`
	DurationWeeks int     `json:"durationWeeks"`
	Seats         int     `json:"seats"`
	Enrolled      int     `json:"enrolled"`
}
