package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// TravelMode is the link from the previous destination in canonical order
// to this one. NONE marks the start of a new leg.
type TravelMode string

const (
	TravelModeDriving TravelMode = "DRIVING"
	TravelModeWalking TravelMode = "WALKING"
	TravelModeTransit TravelMode = "TRANSIT"
	TravelModeNone    TravelMode = "NONE"
)

// Valid reports whether m is one of the known travel modes
func (m TravelMode) Valid() bool {
	switch m {
	case TravelModeDriving, TravelModeWalking, TravelModeTransit, TravelModeNone:
		return true
	}
	return false
}

// ParseTravelMode upper-cases and trims s. The result may still be invalid.
func ParseTravelMode(s string) TravelMode {
	return TravelMode(strings.ToUpper(strings.TrimSpace(s)))
}

// DestinationType classifies a stop
type DestinationType string

const (
	TypeAttraction    DestinationType = "attraction"
	TypeRestaurant    DestinationType = "restaurant"
	TypeAccommodation DestinationType = "accommodation"
	TypeTransport     DestinationType = "transport"
)

// Valid reports whether t is one of the known destination types
func (t DestinationType) Valid() bool {
	switch t {
	case TypeAttraction, TypeRestaurant, TypeAccommodation, TypeTransport:
		return true
	}
	return false
}

// ParseDestinationType lower-cases and trims s. The result may still be invalid.
func ParseDestinationType(s string) DestinationType {
	return DestinationType(strings.ToLower(strings.TrimSpace(s)))
}

// Destination represents one stop in an itinerary
type Destination struct {
	ID          uuid.UUID       `json:"id" db:"id"`
	Name        string          `json:"name" db:"name"`
	Location    string          `json:"location" db:"location"`
	Lat         float64         `json:"lat" db:"lat"`
	Lng         float64         `json:"lng" db:"lng"`
	Date        string          `json:"date" db:"date"` // YYYY-MM-DD
	Time        string          `json:"time" db:"time"` // HH:MM
	Type        DestinationType `json:"type" db:"type"`
	Budget      float64         `json:"budget" db:"budget"`
	Description string          `json:"description" db:"description"`
	Notes       string          `json:"notes" db:"notes"`
	Photos      []string        `json:"photos" db:"photos"`
	TravelMode  TravelMode      `json:"travelMode" db:"travel_mode"`

	// Place lookup enrichment, filled in when available
	PlaceID     string   `json:"placeId,omitempty" db:"place_id"`
	Rating      *float64 `json:"rating,omitempty" db:"rating"`
	WebsiteURL  string   `json:"websiteUrl,omitempty" db:"website_url"`
	PhoneNumber string   `json:"phoneNumber,omitempty" db:"phone_number"`
}

// Clone returns a copy of d that shares no slices or pointers with it
func (d Destination) Clone() Destination {
	if d.Photos != nil {
		d.Photos = append([]string(nil), d.Photos...)
	}
	if d.Rating != nil {
		r := *d.Rating
		d.Rating = &r
	}
	return d
}

// Itinerary is the canonical ordered destination list owned by one user
type Itinerary struct {
	UserID       uuid.UUID     `json:"user_id" db:"user_id"`
	Destinations []Destination `json:"destinations"`
	Version      int64         `json:"version" db:"version"`
	UpdatedAt    time.Time     `json:"updated_at" db:"updated_at"`
}

// Clone returns a deep copy of the itinerary
func (it Itinerary) Clone() Itinerary {
	if it.Destinations == nil {
		return it
	}
	out := make([]Destination, len(it.Destinations))
	for i, d := range it.Destinations {
		out[i] = d.Clone()
	}
	it.Destinations = out
	return it
}
