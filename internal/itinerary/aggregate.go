package itinerary

import (
	"math"
	"sort"

	"ITINERARY_BACK-END/internal/models"
)

// DefaultExchangeRate converts the itinerary's local budget currency (JPY)
// into the display currency (USD).
const DefaultExchangeRate = 0.0058

// DayGroup is the slice of the canonical list that falls on one date
type DayGroup struct {
	Date            string               `json:"date"`
	Destinations    []models.Destination `json:"destinations"`
	SequenceNumbers []int                `json:"sequence_numbers"`
	Budget          float64              `json:"budget"`
}

// TotalBudget sums every destination's budget
func TotalBudget(destinations []models.Destination) float64 {
	var total float64
	for _, d := range destinations {
		total += d.Budget
	}
	return total
}

// BudgetByDate sums budgets per calendar date
func BudgetByDate(destinations []models.Destination) map[string]float64 {
	out := make(map[string]float64)
	for _, d := range destinations {
		out[d.Date] += d.Budget
	}
	return out
}

// UniqueDates returns the distinct dates in ascending order
func UniqueDates(destinations []models.Destination) []string {
	seen := make(map[string]bool)
	dates := []string{}
	for _, d := range destinations {
		if !seen[d.Date] {
			seen[d.Date] = true
			dates = append(dates, d.Date)
		}
	}
	sort.Strings(dates)
	return dates
}

// GroupByDate splits the list into day groups ordered by date. Each group
// keeps canonical order and carries the sequence numbers the whole list
// assigns to its members, so a timeline shows the same numbers as the list.
func GroupByDate(destinations []models.Destination) []DayGroup {
	seq := SequenceNumbers(destinations)
	index := make(map[string]int)
	groups := []DayGroup{}
	for i, d := range destinations {
		gi, ok := index[d.Date]
		if !ok {
			gi = len(groups)
			index[d.Date] = gi
			groups = append(groups, DayGroup{Date: d.Date, Destinations: []models.Destination{}, SequenceNumbers: []int{}})
		}
		groups[gi].Destinations = append(groups[gi].Destinations, d.Clone())
		groups[gi].SequenceNumbers = append(groups[gi].SequenceNumbers, seq[i])
		groups[gi].Budget += d.Budget
	}
	sort.SliceStable(groups, func(i, j int) bool { return groups[i].Date < groups[j].Date })
	return groups
}

// ConvertBudget converts amount at rate, rounded to cents
func ConvertBudget(amount, rate float64) float64 {
	return math.Round(amount*rate*100) / 100
}
