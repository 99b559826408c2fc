// Package routing resolves itinerary legs into paths and travel times.
//
// The itinerary engine only decides which adjacent pairs need a route and
// with which mode; everything geographic happens here, behind Resolver.
package routing

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"ITINERARY_BACK-END/internal/itinerary"
	"ITINERARY_BACK-END/internal/models"
)

// LatLng is a coordinate pair
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Request asks for the route of one leg
type Request struct {
	Leg           itinerary.RouteLeg `json:"leg"`
	OriginID      uuid.UUID          `json:"origin_id"`
	DestinationID uuid.UUID          `json:"destination_id"`
	Origin        LatLng             `json:"origin"`
	Destination   LatLng             `json:"destination"`
	Mode          models.TravelMode  `json:"mode"`
}

// Key identifies the request by its endpoints, their coordinates and the
// mode. A route is only valid for a leg with the same key.
func (r Request) Key() string {
	return fmt.Sprintf("%s>%s:%s:%.6f,%.6f>%.6f,%.6f",
		r.OriginID, r.DestinationID, r.Mode,
		r.Origin.Lat, r.Origin.Lng, r.Destination.Lat, r.Destination.Lng)
}

// Route is a resolved leg
type Route struct {
	Path            []LatLng `json:"path"`
	DurationSeconds int      `json:"duration_seconds"`
	DistanceMeters  int      `json:"distance_meters"`
}

// Midpoint returns the middle point of the path, where the ETA label goes
func (r Route) Midpoint() (LatLng, bool) {
	if len(r.Path) == 0 {
		return LatLng{}, false
	}
	return r.Path[len(r.Path)/2], true
}

// Resolver turns one leg request into a route
type Resolver interface {
	Resolve(ctx context.Context, req Request) (Route, error)
}

// Requests builds one request per leg of destinations, in leg order
func Requests(destinations []models.Destination) []Request {
	legs := itinerary.BuildLegs(destinations)
	reqs := make([]Request, 0, len(legs))
	for _, leg := range legs {
		o := destinations[leg.OriginIndex]
		d := destinations[leg.DestinationIndex]
		reqs = append(reqs, Request{
			Leg:           leg,
			OriginID:      o.ID,
			DestinationID: d.ID,
			Origin:        LatLng{Lat: o.Lat, Lng: o.Lng},
			Destination:   LatLng{Lat: d.Lat, Lng: d.Lng},
			Mode:          leg.TravelMode,
		})
	}
	return reqs
}
