// Package geojson holds just enough of the GeoJSON structure to serialize
// circle rings as a downloadable FeatureCollection.
package geojson

import "github.com/a-bouts/globe-server/circle"

type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

type Feature struct {
	Type       string                 `json:"type"`
	Properties map[string]interface{} `json:"properties"`
	Geometry   Geometry               `json:"geometry"`
}

type Geometry struct {
	Type        string        `json:"type"`
	Coordinates [][][]float64 `json:"coordinates"`
}

// CircleCollection wraps a ring into a FeatureCollection with a single
// Polygon feature named after the rendered side (circle or antipodal_circle).
func CircleCollection(ring circle.Ring, name string) FeatureCollection {
	return FeatureCollection{
		Type: "FeatureCollection",
		Features: []Feature{
			{
				Type:       "Feature",
				Properties: map[string]interface{}{"name": name},
				Geometry: Geometry{
					Type:        "Polygon",
					Coordinates: [][][]float64{ring.Coords()},
				},
			},
		},
	}
}
