package itinerary

import (
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"ITINERARY_BACK-END/internal/models"
)

// Derived is everything computed from one list of destinations
type Derived struct {
	SequenceNumbers []int      `json:"sequence_numbers"`
	Legs            []RouteLeg `json:"legs"`
	Segments        []Segment  `json:"segments"`
	TotalBudget     float64    `json:"total_budget"`
	Dates           []string   `json:"dates"`
}

// Derive recomputes every derived value from scratch
func Derive(destinations []models.Destination) Derived {
	return Derived{
		SequenceNumbers: SequenceNumbers(destinations),
		Legs:            BuildLegs(destinations),
		Segments:        Segments(destinations),
		TotalBudget:     TotalBudget(destinations),
		Dates:           UniqueDates(destinations),
	}
}

type derivedEntry struct {
	version int64
	derived Derived
}

// DefaultDerivedCacheSize is used when NewDerivedCache gets a non-positive size
const DefaultDerivedCacheSize = 1024

// DerivedCache memoizes Derive for canonical itineraries, keyed by owner
// and version. A new version replaces the owner's entry; the least recently
// used owner is evicted once size owners are cached.
type DerivedCache struct {
	entries *lru.Cache[uuid.UUID, derivedEntry]
}

// NewDerivedCache creates an empty cache holding at most size owners
func NewDerivedCache(size int) *DerivedCache {
	if size <= 0 {
		size = DefaultDerivedCacheSize
	}
	entries, err := lru.New[uuid.UUID, derivedEntry](size)
	if err != nil {
		panic(err) // only fails for size <= 0
	}
	return &DerivedCache{entries: entries}
}

// Get returns the derived state of it, computing it when the cached entry
// belongs to another version.
func (c *DerivedCache) Get(it models.Itinerary) Derived {
	if e, ok := c.entries.Get(it.UserID); ok && e.version == it.Version {
		return e.derived
	}
	d := Derive(it.Destinations)
	c.entries.Add(it.UserID, derivedEntry{version: it.Version, derived: d})
	return d
}

// Invalidate drops the entry for one owner
func (c *DerivedCache) Invalidate(userID uuid.UUID) {
	c.entries.Remove(userID)
}

// Len returns the number of cached owners
func (c *DerivedCache) Len() int {
	return c.entries.Len()
}
