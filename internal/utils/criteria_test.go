package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ITINERARY_BACK-END/internal/itinerary"
)

func TestParseCriteria(t *testing.T) {
	c, err := ParseCriteria("  tower ", " Restaurant", []string{"2024-04-02,2024-04-01", "2024-04-03T00:00:00Z"}, "NAME")
	require.NoError(t, err)
	assert.Equal(t, itinerary.Criteria{
		Search: "tower",
		Type:   "restaurant",
		Dates:  []string{"2024-04-02", "2024-04-01", "2024-04-03"},
		Sort:   itinerary.SortByName,
	}, c)

	c, err = ParseCriteria("", "ALL", nil, "")
	require.NoError(t, err)
	assert.True(t, c.IsZero())
	assert.Equal(t, itinerary.SortByDate, c.Sort)
}

func TestParseCriteriaRejectsBadInput(t *testing.T) {
	_, err := ParseCriteria("", "museum", nil, "")
	assert.ErrorContains(t, err, "type must be all")

	_, err = ParseCriteria("", "", []string{"April 1st"}, "")
	assert.ErrorContains(t, err, "invalid date")
}
