package routing

import (
	"fmt"

	"github.com/twpayne/go-polyline"
)

// DecodePolyline decodes a Google encoded polyline string
func DecodePolyline(encoded string) ([]LatLng, error) {
	points := []LatLng{}
	if encoded == "" {
		return points, nil
	}
	coords, rest, err := polyline.DecodeCoords([]byte(encoded))
	if err != nil {
		return nil, err
	}
	if len(rest) > 0 {
		return nil, fmt.Errorf("polyline has %d trailing bytes", len(rest))
	}
	for _, c := range coords {
		points = append(points, LatLng{Lat: c[0], Lng: c[1]})
	}
	return points, nil
}
