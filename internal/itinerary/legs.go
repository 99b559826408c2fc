package itinerary

import "ITINERARY_BACK-END/internal/models"

// RouteLeg is one adjacent pair that needs a routed connection
type RouteLeg struct {
	OriginIndex      int               `json:"origin_index"`
	DestinationIndex int               `json:"destination_index"`
	TravelMode       models.TravelMode `json:"travel_mode"`
}

// BuildLegs decides which adjacent pairs need route resolution and with
// which mode. A pair is skipped when the later destination's mode is NONE.
func BuildLegs(destinations []models.Destination) []RouteLeg {
	if len(destinations) < 2 {
		return []RouteLeg{}
	}
	legs := make([]RouteLeg, 0, len(destinations)-1)
	for i := 1; i < len(destinations); i++ {
		mode := destinations[i].TravelMode
		if mode == models.TravelModeNone {
			continue
		}
		legs = append(legs, RouteLeg{
			OriginIndex:      i - 1,
			DestinationIndex: i,
			TravelMode:       mode,
		})
	}
	return legs
}

// Segment is a maximal run of destinations connected by non-NONE modes,
// given as a half-open index range [Start, End).
type Segment struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns the number of destinations in the segment
func (s Segment) Len() int { return s.End - s.Start }

// Segments splits the list at every leg boundary
func Segments(destinations []models.Destination) []Segment {
	segs := []Segment{}
	for i := range destinations {
		if startsLeg(destinations, i) {
			if len(segs) > 0 {
				segs[len(segs)-1].End = i
			}
			segs = append(segs, Segment{Start: i})
		}
	}
	if len(segs) > 0 {
		segs[len(segs)-1].End = len(destinations)
	}
	return segs
}
