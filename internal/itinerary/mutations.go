package itinerary

import (
	"errors"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"ITINERARY_BACK-END/internal/models"
)

// Patch carries the content fields an edit may change.
// Nil fields keep the current value. Travel mode is deliberately absent:
// it only changes through ChangeTravelMode.
type Patch struct {
	Name        *string                 `json:"name"`
	Location    *string                 `json:"location"`
	Lat         *float64                `json:"lat"`
	Lng         *float64                `json:"lng"`
	Date        *string                 `json:"date"`
	Time        *string                 `json:"time"`
	Type        *models.DestinationType `json:"type"`
	Budget      *float64                `json:"budget"`
	Description *string                 `json:"description"`
	Notes       *string                 `json:"notes"`
	Photos      *[]string               `json:"photos"`
	PlaceID     *string                 `json:"placeId"`
	Rating      *float64                `json:"rating"`
	WebsiteURL  *string                 `json:"websiteUrl"`
	PhoneNumber *string                 `json:"phoneNumber"`
}

// Apply merges the patch onto d and returns the result
func (p Patch) Apply(d models.Destination) models.Destination {
	d = d.Clone()
	if p.Name != nil {
		d.Name = *p.Name
	}
	if p.Location != nil {
		d.Location = *p.Location
	}
	if p.Lat != nil {
		d.Lat = *p.Lat
	}
	if p.Lng != nil {
		d.Lng = *p.Lng
	}
	if p.Date != nil {
		d.Date = *p.Date
	}
	if p.Time != nil {
		d.Time = *p.Time
	}
	if p.Type != nil {
		d.Type = *p.Type
	}
	if p.Budget != nil {
		d.Budget = *p.Budget
	}
	if p.Description != nil {
		d.Description = *p.Description
	}
	if p.Notes != nil {
		d.Notes = *p.Notes
	}
	if p.Photos != nil {
		d.Photos = append([]string(nil), (*p.Photos)...)
	}
	if p.PlaceID != nil {
		d.PlaceID = *p.PlaceID
	}
	if p.Rating != nil {
		r := *p.Rating
		d.Rating = &r
	}
	if p.WebsiteURL != nil {
		d.WebsiteURL = *p.WebsiteURL
	}
	if p.PhoneNumber != nil {
		d.PhoneNumber = *p.PhoneNumber
	}
	return d
}

// Normalize folds the case of the travel mode and type of d and defaults an
// empty travel mode to DRIVING.
func Normalize(d models.Destination) models.Destination {
	d.Type = models.ParseDestinationType(string(d.Type))
	d.TravelMode = models.ParseTravelMode(string(d.TravelMode))
	if d.TravelMode == "" {
		d.TravelMode = models.TravelModeDriving
	}
	return d
}

// Add validates d, assigns it a fresh id and inserts it in date order.
// Destinations sharing a date keep their insertion order.
func Add(it models.Itinerary, d models.Destination) (models.Itinerary, models.Destination, error) {
	d = Normalize(d.Clone())
	d.ID = uuid.New()
	if err := Validate(d); err != nil {
		return it, models.Destination{}, err
	}

	next := it.Clone()
	next.Destinations = append(next.Destinations, d)
	sortByDate(next.Destinations)
	return touch(next), d, nil
}

// Edit merges patch onto the destination with the given id. The travel mode
// of the record is preserved. The itinerary is re-sorted by date.
func Edit(it models.Itinerary, id uuid.UUID, patch Patch) (models.Itinerary, error) {
	idx := indexOf(it.Destinations, id)
	if idx < 0 {
		return it, &NotFoundError{ID: id}
	}

	merged := patch.Apply(it.Destinations[idx])
	merged.ID = id
	merged.Type = models.ParseDestinationType(string(merged.Type))
	merged.TravelMode = it.Destinations[idx].TravelMode
	if err := Validate(merged); err != nil {
		return it, err
	}

	next := it.Clone()
	next.Destinations[idx] = merged
	sortByDate(next.Destinations)
	return touch(next), nil
}

// Delete removes the destination with the given id. Deleting an absent id
// returns the itinerary unchanged with dirty false.
func Delete(it models.Itinerary, id uuid.UUID) (models.Itinerary, bool) {
	idx := indexOf(it.Destinations, id)
	if idx < 0 {
		return it, false
	}
	next := it.Clone()
	next.Destinations = append(next.Destinations[:idx], next.Destinations[idx+1:]...)
	return touch(next), true
}

// ChangeTravelMode sets the travel mode of one destination. Neighbours are
// not affected. An absent id is a no-op.
func ChangeTravelMode(it models.Itinerary, id uuid.UUID, mode models.TravelMode) (models.Itinerary, bool, error) {
	mode = models.ParseTravelMode(string(mode))
	if !mode.Valid() {
		return it, false, fieldError("travelMode", "travelMode must be DRIVING, WALKING, TRANSIT, or NONE")
	}
	idx := indexOf(it.Destinations, id)
	if idx < 0 {
		return it, false, nil
	}
	if it.Destinations[idx].TravelMode == mode {
		return it, false, nil
	}
	next := it.Clone()
	next.Destinations[idx].TravelMode = mode
	return touch(next), true, nil
}

// Reorder moves the destination at from to position to. A nil target means
// the drag was cancelled and nothing changes. Travel modes are not touched,
// so links now apply to the new neighbours.
func Reorder(it models.Itinerary, from int, to *int) (models.Itinerary, bool, error) {
	if to == nil {
		return it, false, nil
	}
	n := len(it.Destinations)
	if err := checkIndexes(n, from, *to); err != nil {
		return it, false, err
	}
	if from == *to {
		return it, false, nil
	}
	next := it.Clone()
	next.Destinations = move(next.Destinations, from, *to)
	return touch(next), true, nil
}

// ReorderView performs a reorder inside a projected view and writes it back.
// The view's destinations are placed, in their new order, into the canonical
// slots they already occupied; hidden destinations keep their positions.
func ReorderView(it models.Itinerary, view []models.Destination, from int, to *int) (models.Itinerary, bool, error) {
	if to == nil {
		return it, false, nil
	}
	if err := checkIndexes(len(view), from, *to); err != nil {
		return it, false, err
	}
	if from == *to {
		return it, false, nil
	}

	slots := make([]int, 0, len(view))
	for _, v := range view {
		idx := indexOf(it.Destinations, v.ID)
		if idx < 0 {
			return it, false, &NotFoundError{ID: v.ID}
		}
		slots = append(slots, idx)
	}
	sort.Ints(slots)

	moved := move(append([]models.Destination(nil), view...), from, *to)
	next := it.Clone()
	for i, slot := range slots {
		// take the canonical record, not the view copy
		next.Destinations[slot] = it.Destinations[indexOf(it.Destinations, moved[i].ID)].Clone()
	}
	return touch(next), true, nil
}

// Replace swaps in a whole destination list, as the bulk save does.
// Every record is validated; missing ids and travel modes are filled in.
func Replace(it models.Itinerary, destinations []models.Destination) (models.Itinerary, error) {
	list := make([]models.Destination, len(destinations))
	seen := make(map[uuid.UUID]bool, len(destinations))
	verr := &ValidationError{}
	for i, d := range destinations {
		d = Normalize(d.Clone())
		if d.ID == uuid.Nil || seen[d.ID] {
			d.ID = uuid.New()
		}
		seen[d.ID] = true
		var ve *ValidationError
		if err := Validate(d); errors.As(err, &ve) {
			for f, msg := range ve.Fields {
				verr.add(destinationField(i, f), msg)
			}
		}
		list[i] = d
	}
	if err := verr.orNil(); err != nil {
		return it, err
	}

	next := it.Clone()
	next.Destinations = list
	return touch(next), nil
}

func destinationField(i int, field string) string {
	return "destinations[" + strconv.Itoa(i) + "]." + field
}

func checkIndexes(n, from, to int) error {
	verr := &ValidationError{}
	if from < 0 || from >= n {
		verr.add("from", "index out of range")
	}
	if to < 0 || to >= n {
		verr.add("to", "index out of range")
	}
	return verr.orNil()
}

func move(list []models.Destination, from, to int) []models.Destination {
	item := list[from]
	list = append(list[:from], list[from+1:]...)
	list = append(list, models.Destination{})
	copy(list[to+1:], list[to:])
	list[to] = item
	return list
}

func indexOf(destinations []models.Destination, id uuid.UUID) int {
	for i, d := range destinations {
		if d.ID == id {
			return i
		}
	}
	return -1
}

func sortByDate(destinations []models.Destination) {
	sort.SliceStable(destinations, func(i, j int) bool {
		return destinations[i].Date < destinations[j].Date
	})
}

func touch(it models.Itinerary) models.Itinerary {
	it.Version++
	it.UpdatedAt = time.Now()
	return it
}
