package export

import (
	"encoding/json"
	"io"
	"time"

	"github.com/makmour/WasteBinTracker/internal/models"
)

// FeatureCollection follows the standard GeoJSON structure.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// Feature is one entry rendered as a point feature.
type Feature struct {
	Type       string            `json:"type"`
	Geometry   Geometry          `json:"geometry"`
	Properties FeatureProperties `json:"properties"`
}

// Geometry holds the point coordinates as [longitude, latitude].
type Geometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

// FeatureProperties carries the entry fields that are not part of the
// geometry.
type FeatureProperties struct {
	ID       uint     `json:"id"`
	Datetime string   `json:"datetime"`
	Street   string   `json:"street"`
	BinTypes []string `json:"binTypes"`
	Quantity int      `json:"quantity"`
	Comments *string  `json:"comments"`
	Synced   bool     `json:"synced"`
}

// BuildFeatureCollection converts the entry log to a GeoJSON feature
// collection, one point feature per entry.
func BuildFeatureCollection(entries []models.BinSurveyEntry) FeatureCollection {
	features := make([]Feature, 0, len(entries))
	for _, e := range entries {
		features = append(features, Feature{
			Type: "Feature",
			Geometry: Geometry{
				Type:        "Point",
				Coordinates: []float64{e.Longitude, e.Latitude},
			},
			Properties: FeatureProperties{
				ID:       e.ID,
				Datetime: e.Datetime.UTC().Format(time.RFC3339),
				Street:   e.Street,
				BinTypes: e.BinTypes,
				Quantity: e.Quantity,
				Comments: e.Comments,
				Synced:   e.Synced,
			},
		})
	}
	return FeatureCollection{Type: "FeatureCollection", Features: features}
}

// WriteGeoJSON serializes the entry log as a GeoJSON document.
func WriteGeoJSON(w io.Writer, entries []models.BinSurveyEntry) error {
	return json.NewEncoder(w).Encode(BuildFeatureCollection(entries))
}
