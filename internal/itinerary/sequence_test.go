package itinerary

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"ITINERARY_BACK-END/internal/models"
)

func dest(name string, mode models.TravelMode) models.Destination {
	return models.Destination{
		ID:         uuid.New(),
		Name:       name,
		Location:   name + " station",
		Lat:        35.6762,
		Lng:        139.6503,
		Date:       "2024-04-01",
		Time:       "09:00",
		Type:       models.TypeAttraction,
		Budget:     1000,
		TravelMode: mode,
	}
}

func TestSequenceNumbers(t *testing.T) {
	D, W, T, N := models.TravelModeDriving, models.TravelModeWalking, models.TravelModeTransit, models.TravelModeNone

	tests := []struct {
		name  string
		modes []models.TravelMode
		want  []int
	}{
		{name: "empty", modes: nil, want: []int{}},
		{name: "single", modes: []models.TravelMode{D}, want: []int{1}},
		{name: "first none is still a start", modes: []models.TravelMode{N, D}, want: []int{1, 2}},
		{name: "continuous chain", modes: []models.TravelMode{D, W, T, D}, want: []int{1, 2, 3, 4}},
		{name: "break in the middle", modes: []models.TravelMode{D, D, N, W}, want: []int{1, 2, 1, 2}},
		{name: "all none", modes: []models.TravelMode{D, N, N, N}, want: []int{1, 1, 1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := make([]models.Destination, len(tt.modes))
			for i, m := range tt.modes {
				list[i] = dest("stop", m)
			}
			got := SequenceNumbers(list)
			assert.Equal(t, tt.want, got)
			assert.Len(t, got, len(list))
			for i := range list {
				if i == 0 || list[i].TravelMode == models.TravelModeNone {
					assert.Equal(t, 1, got[i], "index %d should restart numbering", i)
				}
			}
		})
	}
}

func TestBuildLegs(t *testing.T) {
	a := dest("A", models.TravelModeDriving)
	b := dest("B", models.TravelModeDriving)
	c := dest("C", models.TravelModeNone)
	d := dest("D", models.TravelModeWalking)

	list := []models.Destination{a, b, c, d}
	assert.Equal(t, []int{1, 2, 1, 2}, SequenceNumbers(list))
	assert.Equal(t, []RouteLeg{
		{OriginIndex: 0, DestinationIndex: 1, TravelMode: models.TravelModeDriving},
		{OriginIndex: 2, DestinationIndex: 3, TravelMode: models.TravelModeWalking},
	}, BuildLegs(list))

	for _, leg := range BuildLegs(list) {
		assert.NotEqual(t, models.TravelModeNone, list[leg.DestinationIndex].TravelMode)
	}
}

func TestBuildLegsDegenerate(t *testing.T) {
	assert.Empty(t, BuildLegs(nil))
	assert.Empty(t, BuildLegs([]models.Destination{dest("A", models.TravelModeDriving)}))

	chain := []models.Destination{
		dest("A", models.TravelModeNone),
		dest("B", models.TravelModeDriving),
		dest("C", models.TravelModeWalking),
		dest("D", models.TravelModeDriving),
	}
	assert.Len(t, BuildLegs(chain), len(chain)-1)
}

func TestSegments(t *testing.T) {
	list := []models.Destination{
		dest("A", models.TravelModeDriving),
		dest("B", models.TravelModeDriving),
		dest("C", models.TravelModeNone),
		dest("D", models.TravelModeWalking),
		dest("E", models.TravelModeNone),
	}
	segs := Segments(list)
	assert.Equal(t, []Segment{{Start: 0, End: 2}, {Start: 2, End: 4}, {Start: 4, End: 5}}, segs)
	assert.Equal(t, 2, segs[0].Len())
	assert.Empty(t, Segments(nil))
}
