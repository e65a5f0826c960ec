package store

import (
	"context"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/civic-guardian/civic-api/schema"
)

const (
	// ProximityRadiusMeters is the fixed radius of the POI proximity lookup.
	ProximityRadiusMeters = 500
)

// POIIndex is the read-only geospatial lookup used by the score calculator.
// AddPOI exists for the ingestion pipeline and fixtures; the engine never
// writes POIs.
type POIIndex interface {
	AddPOI(name, category string, lon, lat float64) (*schema.POI, error)
	MaxWeightWithin(distance int, cords schema.Location) (int, error)
}

func (m *mongoDB) AddPOI(name, category string, lon, lat float64) (*schema.POI, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	poi := schema.POI{
		Name:     name,
		Category: category,
		Location: schema.NewPointGeoJSON(schema.Location{Latitude: lat, Longitude: lon}),
	}

	c := m.client.Database(m.database).Collection(schema.POICollection)
	result, err := c.InsertOne(ctx, poi)
	if err != nil {
		return nil, err
	}
	poi.ID = result.InsertedID.(primitive.ObjectID)

	return &poi, nil
}

// MaxWeightWithin returns the highest category weight among POIs within the
// given geodesic distance of a coordinate, 0 when none are in range. The
// query is fully parameterized; weight-table keys never reach query text.
func (m *mongoDB) MaxWeightWithin(distance int, cords schema.Location) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.POICollection)

	cur, err := c.Find(ctx, distanceQuery(distance, cords))
	if nil != err {
		log.WithField("prefix", mongoLogPrefix).Errorf("query poi proximity with error: %s", err)
		return 0, err
	}
	defer cur.Close(ctx)

	max := 0
	var record schema.POI
	for cur.Next(ctx) {
		if err := cur.Decode(&record); err != nil {
			return 0, err
		}
		if w := m.cfg.POIWeights.Weight(record.Category); w > max {
			max = w
		}
	}
	if err := cur.Err(); err != nil {
		return 0, err
	}

	log.WithField("prefix", mongoLogPrefix).Debugf("poi proximity query max weight %d near long:%v lat:%v",
		max, cords.Longitude, cords.Latitude)

	return max, nil
}

func distanceQuery(distance int, cords schema.Location) bson.D {
	return bson.D{{
		Key: "location",
		Value: bson.D{{
			Key: "$nearSphere",
			Value: bson.D{{
				Key: "$geometry",
				Value: bson.D{{
					Key:   "type",
					Value: "Point",
				}, {
					Key:   "coordinates",
					Value: bson.A{cords.Longitude, cords.Latitude},
				}},
			}, {
				Key:   "$maxDistance",
				Value: distance,
			}},
		}},
	}}
}
