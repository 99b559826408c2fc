package itinerary

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ITINERARY_BACK-END/internal/models"
)

func TestValidate(t *testing.T) {
	rating := -1.0

	tests := []struct {
		name   string
		mutate func(d *models.Destination)
		field  string
	}{
		{name: "valid", mutate: func(d *models.Destination) {}},
		{name: "blank name", mutate: func(d *models.Destination) { d.Name = "  " }, field: "name"},
		{name: "missing location", mutate: func(d *models.Destination) { d.Location = "" }, field: "location"},
		{name: "missing date", mutate: func(d *models.Destination) { d.Date = "" }, field: "date"},
		{name: "bad date", mutate: func(d *models.Destination) { d.Date = "2024-13-01" }, field: "date"},
		{name: "missing time", mutate: func(d *models.Destination) { d.Time = "" }, field: "time"},
		{name: "bad time", mutate: func(d *models.Destination) { d.Time = "9am" }, field: "time"},
		{name: "unknown type", mutate: func(d *models.Destination) { d.Type = "museum" }, field: "type"},
		{name: "negative budget", mutate: func(d *models.Destination) { d.Budget = -5 }, field: "budget"},
		{name: "nan budget", mutate: func(d *models.Destination) { d.Budget = math.NaN() }, field: "budget"},
		{name: "lat out of range", mutate: func(d *models.Destination) { d.Lat = 91 }, field: "lat"},
		{name: "lng infinite", mutate: func(d *models.Destination) { d.Lng = math.Inf(1) }, field: "lng"},
		{name: "unknown mode", mutate: func(d *models.Destination) { d.TravelMode = "FLYING" }, field: "travelMode"},
		{name: "negative rating", mutate: func(d *models.Destination) { d.Rating = &rating }, field: "rating"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := dest("Kinkaku-ji", models.TravelModeDriving)
			tt.mutate(&d)
			err := Validate(d)
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Contains(t, verr.Fields, tt.field)
			assert.Len(t, verr.Fields, 1)
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{"name": "name is required", "budget": "budget cannot be negative"}}
	assert.Equal(t, "validation failed: budget: budget cannot be negative; name: name is required", err.Error())
}
