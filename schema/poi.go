package schema

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	POICollection = "pois"
)

// POI is external reference data, read-only to the engine. Categories map to
// fixed proximity weights through POIWeights.
type POI struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name     string             `bson:"name" json:"name"`
	Category string             `bson:"category" json:"category"`
	Location *GeoJSON           `bson:"location" json:"location"`
}

// POIWeights maps a POI category to its proximity weight. The table is
// closed: unknown categories contribute nothing.
type POIWeights map[string]int

func (w POIWeights) Weight(category string) int {
	return w[category]
}

// DefaultPOIWeights returns the standard category weight table.
func DefaultPOIWeights() POIWeights {
	return POIWeights{
		// health & emergency
		"hospital":          15,
		"ambulance_station": 15,
		"fire_station":      14,
		"police":            14,
		"clinic":            12,
		"dispensary":        12,
		"nursing_home":      12,
		"pharmacy":          12,

		// education & childcare
		"school":       10,
		"college":      10,
		"university":   10,
		"kindergarten": 10,

		// public spaces & recreation
		"playground":       8,
		"park":             7,
		"community_centre": 7,
		"library":          6,

		// culture & infrastructure
		"monument":       5,
		"museum":         5,
		"archaeological": 5,
		"water_tower":    4,
		"water_well":     4,
	}
}
