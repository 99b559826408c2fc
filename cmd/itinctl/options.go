package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ITINERARY_BACK-END/internal/itinerary"
	"ITINERARY_BACK-END/internal/models"
	"ITINERARY_BACK-END/internal/utils"
)

// FileOptions selects the itinerary file to read
type FileOptions struct {
	File string
}

// AddFileArgs wires the --file flag
func AddFileArgs(cmd *cobra.Command, o *FileOptions) {
	cmd.Flags().StringVarP(&o.File, "file", "f", "itinerary.json",
		"Itinerary JSON file: an object with a destinations array, or a bare array.")
}

// Load reads the canonical destination list from the file
func (o *FileOptions) Load() ([]models.Destination, error) {
	raw, err := os.ReadFile(o.File)
	if err != nil {
		return nil, fmt.Errorf("read itinerary: %w", err)
	}
	return parseDestinations(raw)
}

func parseDestinations(raw []byte) ([]models.Destination, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, errors.New("itinerary file is empty")
	}

	var list []models.Destination
	if raw[0] == '[' {
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, fmt.Errorf("parse itinerary: %w", err)
		}
	} else {
		var it models.Itinerary
		if err := json.Unmarshal(raw, &it); err != nil {
			return nil, fmt.Errorf("parse itinerary: %w", err)
		}
		list = it.Destinations
	}

	// Files written by hand often omit the mode of the first stop
	for i := range list {
		if list[i].TravelMode == "" {
			list[i].TravelMode = models.TravelModeDriving
		}
	}
	return list, nil
}

// ViewOptions describes an optional projection of the list
type ViewOptions struct {
	Search string
	Type   string
	Dates  []string
	Sort   string
}

// AddViewArgs wires the projection flags
func AddViewArgs(cmd *cobra.Command, o *ViewOptions) {
	cmd.Flags().StringVar(&o.Search, "search", "",
		"Only destinations whose name or location contains this text.")
	cmd.Flags().StringVar(&o.Type, "type", "",
		"Only destinations of this type (attraction, restaurant, accommodation, transport).")
	cmd.Flags().StringSliceVar(&o.Dates, "date", nil,
		"Only destinations on these dates (YYYY-MM-DD).")
	cmd.Flags().StringVar(&o.Sort, "sort", "",
		"Sort by date, name or budget.")
}

// Active reports whether any projection flag was given
func (o *ViewOptions) Active() bool {
	return o.Search != "" || o.Type != "" || len(o.Dates) > 0 || o.Sort != ""
}

// Criteria validates the flags into projection criteria
func (o *ViewOptions) Criteria() (itinerary.Criteria, error) {
	return utils.ParseCriteria(o.Search, o.Type, o.Dates, o.Sort)
}

// Apply returns the list to display. Without projection flags the
// canonical order is kept as is.
func (o *ViewOptions) Apply(list []models.Destination) ([]models.Destination, error) {
	if !o.Active() {
		return list, nil
	}
	c, err := o.Criteria()
	if err != nil {
		return nil, err
	}
	return itinerary.Project(list, c), nil
}
