package geo

import (
	"context"
	"fmt"
	"time"

	"googlemaps.github.io/maps"

	"github.com/civic-guardian/civic-api/schema"
)

var (
	ErrNoGeoInfoFound         = fmt.Errorf("no geo information found")
	ErrResolverNotInitialized = fmt.Errorf("location resolver is not initialized")
)

// LocationResolver resolves a coordinate into a human-readable place name.
// Used to fill the location name of a complaint when the submission omits
// one.
type LocationResolver interface {
	GetPlaceName(schema.Location) (string, error)
}

type GeocodingLocationResolver struct {
	client *maps.Client
}

func NewGeocodingLocationResolver(client *maps.Client) *GeocodingLocationResolver {
	return &GeocodingLocationResolver{
		client: client,
	}
}

func (g *GeocodingLocationResolver) GetPlaceName(loc schema.Location) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	geos, err := g.client.Geocode(ctx, &maps.GeocodingRequest{
		LatLng: &maps.LatLng{
			Lat: loc.Latitude,
			Lng: loc.Longitude,
		},
		Language: "en",
	})
	if nil != err {
		return "", err
	}

	if len(geos) == 0 {
		return "", ErrNoGeoInfoFound
	}

	return geos[0].FormattedAddress, nil
}
