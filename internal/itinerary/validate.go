package itinerary

import (
	"math"
	"strings"
	"time"

	"ITINERARY_BACK-END/internal/models"
)

const (
	// DateLayout is the ISO calendar date form used for Destination.Date
	DateLayout = "2006-01-02"
	// TimeLayout is the local time-of-day form used for Destination.Time
	TimeLayout = "15:04"
)

// Validate checks the fields a destination must carry before it is
// accepted into canonical state. The id is not checked; callers assign it.
func Validate(d models.Destination) error {
	verr := &ValidationError{}

	if strings.TrimSpace(d.Name) == "" {
		verr.add("name", "name is required")
	}
	if strings.TrimSpace(d.Location) == "" {
		verr.add("location", "location is required")
	}
	if strings.TrimSpace(d.Date) == "" {
		verr.add("date", "date is required")
	} else if _, err := time.Parse(DateLayout, d.Date); err != nil {
		verr.add("date", "date must be YYYY-MM-DD")
	}
	if strings.TrimSpace(d.Time) == "" {
		verr.add("time", "time is required")
	} else if _, err := time.Parse(TimeLayout, d.Time); err != nil {
		verr.add("time", "time must be HH:MM")
	}
	if !d.Type.Valid() {
		verr.add("type", "type must be attraction, restaurant, accommodation, or transport")
	}
	if math.IsNaN(d.Budget) || math.IsInf(d.Budget, 0) {
		verr.add("budget", "budget must be a number")
	} else if d.Budget < 0 {
		verr.add("budget", "budget cannot be negative")
	}
	if !finite(d.Lat) || d.Lat < -90 || d.Lat > 90 {
		verr.add("lat", "lat must be between -90 and 90")
	}
	if !finite(d.Lng) || d.Lng < -180 || d.Lng > 180 {
		verr.add("lng", "lng must be between -180 and 180")
	}
	if !d.TravelMode.Valid() {
		verr.add("travelMode", "travelMode must be DRIVING, WALKING, TRANSIT, or NONE")
	}
	if d.Rating != nil && (!finite(*d.Rating) || *d.Rating < 0) {
		verr.add("rating", "rating cannot be negative")
	}

	return verr.orNil()
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
