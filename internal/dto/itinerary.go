package dto

import (
	"strings"

	"ITINERARY_BACK-END/internal/itinerary"
	"ITINERARY_BACK-END/internal/models"
	"ITINERARY_BACK-END/internal/routing"
)

// DestinationRequest is the payload to add a destination
type DestinationRequest struct {
	Name        string   `json:"name"`
	Location    string   `json:"location"`
	Lat         float64  `json:"lat"`
	Lng         float64  `json:"lng"`
	Date        string   `json:"date"` // YYYY-MM-DD
	Time        string   `json:"time"` // HH:MM
	Type        string   `json:"type"` // attraction | restaurant | accommodation | transport
	Budget      float64  `json:"budget"`
	Description string   `json:"description"`
	Notes       string   `json:"notes"`
	Photos      []string `json:"photos"`
	TravelMode  string   `json:"travelMode"` // DRIVING | WALKING | TRANSIT | NONE, default DRIVING
	PlaceID     string   `json:"placeId"`
	Rating      *float64 `json:"rating"`
	WebsiteURL  string   `json:"websiteUrl"`
	PhoneNumber string   `json:"phoneNumber"`
}

// ToDestination converts the payload into a record without an id
func (r DestinationRequest) ToDestination() models.Destination {
	photos := r.Photos
	if photos == nil {
		photos = []string{}
	}
	return models.Destination{
		Name:        strings.TrimSpace(r.Name),
		Location:    strings.TrimSpace(r.Location),
		Lat:         r.Lat,
		Lng:         r.Lng,
		Date:        strings.TrimSpace(r.Date),
		Time:        strings.TrimSpace(r.Time),
		Type:        models.ParseDestinationType(r.Type),
		Budget:      r.Budget,
		Description: r.Description,
		Notes:       r.Notes,
		Photos:      photos,
		TravelMode:  models.ParseTravelMode(r.TravelMode),
		PlaceID:     r.PlaceID,
		Rating:      r.Rating,
		WebsiteURL:  r.WebsiteURL,
		PhoneNumber: r.PhoneNumber,
	}
}

// UpdateDestinationRequest represents fields allowed to update a destination.
// All fields are optional; only provided ones will be updated.
// A travelMode sent here is ignored; use the travel-mode endpoint.
type UpdateDestinationRequest struct {
	itinerary.Patch
	TravelMode *string `json:"travelMode,omitempty" swaggerignore:"true"`
}

// ReplaceItineraryRequest is the bulk save payload
type ReplaceItineraryRequest struct {
	Destinations []models.Destination `json:"destinations"`
}

// TravelModeRequest changes one destination's travel mode
type TravelModeRequest struct {
	TravelMode string `json:"travelMode"`
}

// ReorderRequest moves one destination. Indexes refer to the canonical list
// unless view criteria are given, in which case they refer to that view.
type ReorderRequest struct {
	From   int      `json:"from"`
	To     *int     `json:"to"` // null: drag cancelled
	Search string   `json:"search,omitempty"`
	Type   string   `json:"type,omitempty"`
	Dates  []string `json:"dates,omitempty"`
	Sort   string   `json:"sort,omitempty"`
}

// HasView reports whether the indexes refer to a projected view
func (r ReorderRequest) HasView() bool {
	return strings.TrimSpace(r.Search) != "" || strings.TrimSpace(r.Type) != "" ||
		len(r.Dates) > 0 || strings.TrimSpace(r.Sort) != ""
}

// BudgetSummary reports totals in the local and display currency
type BudgetSummary struct {
	Total           float64            `json:"total"`
	Currency        string             `json:"currency"`
	Converted       float64            `json:"converted"`
	DisplayCurrency string             `json:"display_currency"`
	ExchangeRate    float64            `json:"exchange_rate"`
	ByDate          map[string]float64 `json:"by_date"`
}

// ViewResponse is a filtered, sorted projection with its own numbering
type ViewResponse struct {
	Search       string               `json:"search"`
	Type         string               `json:"type"`
	Dates        []string             `json:"dates"`
	Sort         string               `json:"sort"`
	Destinations []models.Destination `json:"destinations"`
	Derived      itinerary.Derived    `json:"derived"`
}

// ItineraryResponse represents the canonical itinerary and its derived state
type ItineraryResponse struct {
	UserID       string               `json:"user_id"`
	Version      int64                `json:"version"`
	UpdatedAt    string               `json:"updated_at,omitempty"`
	Dirty        bool                 `json:"dirty"`
	Destination  *models.Destination  `json:"destination,omitempty"`
	Destinations []models.Destination `json:"destinations"`
	Derived      itinerary.Derived    `json:"derived"`
	Days         []itinerary.DayGroup `json:"days"`
	Budget       BudgetSummary        `json:"budget"`
	View         *ViewResponse        `json:"view,omitempty"`
}

// RoutesResponse lists resolved legs and the legs that failed
type RoutesResponse struct {
	Scope    string             `json:"scope"` // canonical | view
	Version  int64              `json:"version"`
	Routes   []routing.LegRoute `json:"routes"`
	Warnings []routing.Warning  `json:"warnings"`
}
