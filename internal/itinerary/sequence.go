package itinerary

import "ITINERARY_BACK-END/internal/models"

// SequenceNumbers returns the 1-based visit number of every destination.
// Numbering restarts at index 0 and at each destination whose travel mode
// is NONE. The result always has the same length as the input.
func SequenceNumbers(destinations []models.Destination) []int {
	seq := make([]int, len(destinations))
	n := 1
	for i := range destinations {
		if startsLeg(destinations, i) {
			n = 1
		}
		seq[i] = n
		n++
	}
	return seq
}

func startsLeg(destinations []models.Destination, i int) bool {
	return i == 0 || destinations[i].TravelMode == models.TravelModeNone
}
