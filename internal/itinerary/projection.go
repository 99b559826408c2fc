package itinerary

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"ITINERARY_BACK-END/internal/models"
)

// SortKey selects the ordering of a projected view
type SortKey string

const (
	SortByDate   SortKey = "date"
	SortByName   SortKey = "name"
	SortByBudget SortKey = "budget"
)

// TypeAll disables the type filter
const TypeAll = "all"

// Criteria describes one display view over the canonical list
type Criteria struct {
	Search string
	Type   string   // "all", "" or a destination type
	Dates  []string // empty means every date
	Sort   SortKey  // defaults to date
}

// IsZero reports whether the criteria would leave the canonical list as is
// apart from sorting.
func (c Criteria) IsZero() bool {
	return strings.TrimSpace(c.Search) == "" && (c.Type == "" || c.Type == TypeAll) && len(c.Dates) == 0
}

// Project returns a filtered, sorted copy of destinations. The input is never
// modified. Sorting is stable, so entries equal under the sort key keep their
// canonical relative order.
func Project(destinations []models.Destination, c Criteria) []models.Destination {
	fold := cases.Fold()
	term := fold.String(strings.TrimSpace(c.Search))

	var dates map[string]bool
	if len(c.Dates) > 0 {
		dates = make(map[string]bool, len(c.Dates))
		for _, d := range c.Dates {
			dates[d] = true
		}
	}

	out := make([]models.Destination, 0, len(destinations))
	for _, d := range destinations {
		if term != "" &&
			!strings.Contains(fold.String(d.Name), term) &&
			!strings.Contains(fold.String(d.Location), term) {
			continue
		}
		if c.Type != "" && c.Type != TypeAll && string(d.Type) != c.Type {
			continue
		}
		if dates != nil && !dates[d.Date] {
			continue
		}
		out = append(out, d.Clone())
	}

	switch c.Sort {
	case SortByName:
		col := collate.New(language.Und)
		sort.SliceStable(out, func(i, j int) bool {
			return col.CompareString(out[i].Name, out[j].Name) < 0
		})
	case SortByBudget:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Budget < out[j].Budget
		})
	default:
		sortByDate(out)
	}
	return out
}

// ParseSortKey maps a query value to a SortKey; unknown values sort by date
func ParseSortKey(s string) SortKey {
	switch SortKey(strings.ToLower(strings.TrimSpace(s))) {
	case SortByName:
		return SortByName
	case SortByBudget:
		return SortByBudget
	}
	return SortByDate
}
