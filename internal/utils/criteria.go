package utils

import (
	"errors"
	"strings"

	"ITINERARY_BACK-END/internal/itinerary"
	"ITINERARY_BACK-END/internal/models"
)

// ParseCriteria validates raw view parameters into projection criteria.
// Dates may be repeated or comma separated.
func ParseCriteria(search, typ string, dates []string, sort string) (itinerary.Criteria, error) {
	t := models.ParseDestinationType(typ)
	if t != "" && string(t) != itinerary.TypeAll && !t.Valid() {
		return itinerary.Criteria{}, errors.New("type must be all, attraction, restaurant, accommodation, or transport")
	}
	parsed, err := ParseDateList(dates)
	if err != nil {
		return itinerary.Criteria{}, err
	}
	return itinerary.Criteria{
		Search: strings.TrimSpace(search),
		Type:   string(t),
		Dates:  parsed,
		Sort:   itinerary.ParseSortKey(sort),
	}, nil
}
