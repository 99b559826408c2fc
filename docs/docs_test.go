package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestRegisteredDocument(t *testing.T) {
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var doc struct {
		Swagger string                     `json:"swagger"`
		Paths   map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	assert.Equal(t, "2.0", doc.Swagger)
	for _, path := range []string{
		"/api/v1/itinerary",
		"/api/v1/itinerary/destinations",
		"/api/v1/itinerary/destinations/{id}",
		"/api/v1/itinerary/destinations/{id}/travel-mode",
		"/api/v1/itinerary/reorder",
		"/api/v1/itinerary/routes",
	} {
		assert.Contains(t, doc.Paths, path)
	}
}
