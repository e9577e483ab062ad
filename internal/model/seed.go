package model

// Seed datasets returned by the store on first run, before anything has
// been persisted under a collection's key.  They mirror the sample
// records the academy console shipped with; videos start empty.

// SeedCoaches returns the initial coach records.
func SeedCoaches() []Coach {
	return []Coach{
		{ID: 1, Name: "Captain Ahmed", Sport: "Swimming", Phone: "+20 100 111 2222", Rating: 4.8, Bio: "10 years of experience with youth teams."},
		{ID: 2, Name: "Captain Salma", Sport: "Basketball", Phone: "+20 120 333 4444", Rating: 4.6, Bio: "Specialises in individual skill development."},
	}
}

// SeedCourses returns the initial course records.
func SeedCourses() []Course {
	return []Course{
		{ID: 1, Title: "Swimming Basics", Sport: "Swimming", Level: "Beginner", Price: 3000, DurationWeeks: 8, Seats: 20, Enrolled: 12},
	}
}

// SeedPlayers returns the initial player records.
func SeedPlayers() []Player {
	return []Player{
		{ID: 1, Name: "Mohamed Reda", Age: 16, Sport: "Swimming", Team: "Power Sharks", Guardian: "Reda Mohamed", Phone: "+20 101 777 8888"},
	}
}

// SeedMatches returns the initial match records.
func SeedMatches() []Match {
	return []Match{
		{ID: 1, Title: "Power Sharks vs Blue Waves", Date: "2025-09-10", Location: "Cairo", Status: MatchUpcoming},
	}
}

// SeedVideos returns the initial video records.  The academy starts
// with no videos.
func SeedVideos() []Video {
	return []Video{}
}
