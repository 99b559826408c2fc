package itinerary

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ITINERARY_BACK-END/internal/models"
)

func TestBudgetAggregates(t *testing.T) {
	trip := sampleTrip()

	assert.Equal(t, 34700.0, TotalBudget(trip))
	assert.Equal(t, map[string]float64{
		"2024-04-01": 17700,
		"2024-04-02": 14000,
		"2024-04-03": 3000,
	}, BudgetByDate(trip))
	assert.Equal(t, 0.0, TotalBudget(nil))
	assert.Equal(t, 201.26, ConvertBudget(34700, DefaultExchangeRate))
}

func TestUniqueDates(t *testing.T) {
	trip := sampleTrip()
	shuffled := []models.Destination{trip[5], trip[0], trip[3], trip[1]}
	assert.Equal(t, []string{"2024-04-01", "2024-04-02", "2024-04-03"}, UniqueDates(shuffled))
	assert.Equal(t, []string{}, UniqueDates(nil))
}

func TestGroupByDate(t *testing.T) {
	groups := GroupByDate(sampleTrip())
	require.Len(t, groups, 3)

	assert.Equal(t, "2024-04-01", groups[0].Date)
	assert.Equal(t, []string{"Tokyo Tower", "Ichiran", "Hotel Gracery"}, names(groups[0].Destinations))
	assert.Equal(t, []int{1, 2, 3}, groups[0].SequenceNumbers)
	assert.Equal(t, 17700.0, groups[0].Budget)

	assert.Equal(t, []int{1, 2}, groups[1].SequenceNumbers)
	assert.Equal(t, []int{3}, groups[2].SequenceNumbers)
}

func TestDerive(t *testing.T) {
	trip := sampleTrip()
	d := Derive(trip)
	assert.Equal(t, SequenceNumbers(trip), d.SequenceNumbers)
	assert.Equal(t, BuildLegs(trip), d.Legs)
	assert.Len(t, d.Segments, 2)
	assert.Equal(t, 34700.0, d.TotalBudget)
	assert.Equal(t, []string{"2024-04-01", "2024-04-02", "2024-04-03"}, d.Dates)
}

func TestDerivedCache(t *testing.T) {
	cache := NewDerivedCache(8)
	it := newItinerary(sampleTrip()...)

	first := cache.Get(it)
	assert.Equal(t, Derive(it.Destinations), first)

	// same owner and version answers from the cache
	sameVersion := it
	sameVersion.Destinations = it.Destinations[:1]
	assert.Equal(t, first, cache.Get(sameVersion))

	next, _, err := ChangeTravelMode(it, it.Destinations[1].ID, models.TravelModeNone)
	require.NoError(t, err)
	updated := cache.Get(next)
	assert.Equal(t, []int{1, 1, 2, 1, 2, 3}, updated.SequenceNumbers)
	assert.Equal(t, 1, cache.Len())

	cache.Invalidate(it.UserID)
	assert.Equal(t, 0, cache.Len())
	shrunk := next
	shrunk.Destinations = next.Destinations[:2]
	assert.Len(t, cache.Get(shrunk).SequenceNumbers, 2)
}

func TestDerivedCacheEvictsLeastRecentlyUsed(t *testing.T) {
	cache := NewDerivedCache(2)
	a := newItinerary(sampleTrip()...)
	b := newItinerary(sampleTrip()[:2]...)
	c := newItinerary(sampleTrip()[:1]...)

	cache.Get(a)
	cache.Get(b)
	cache.Get(a)
	cache.Get(c)
	assert.Equal(t, 2, cache.Len())

	// a survived
	staleA := a
	staleA.Destinations = nil
	assert.Len(t, cache.Get(staleA).SequenceNumbers, len(a.Destinations))

	// b was evicted, so a stale copy with the same version is recomputed
	staleB := b
	staleB.Destinations = b.Destinations[:1]
	assert.Len(t, cache.Get(staleB).SequenceNumbers, 1)
	assert.Equal(t, 2, cache.Len())
}

func TestDerivedCacheDefaultSize(t *testing.T) {
	cache := NewDerivedCache(0)
	for i := 0; i < DefaultDerivedCacheSize+1; i++ {
		cache.Get(newItinerary())
	}
	assert.Equal(t, DefaultDerivedCacheSize, cache.Len())
}

func TestDerivedCacheConcurrentUse(t *testing.T) {
	cache := NewDerivedCache(4)
	it := newItinerary(sampleTrip()...)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Len(t, cache.Get(it).SequenceNumbers, len(it.Destinations))
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, cache.Len())
}
