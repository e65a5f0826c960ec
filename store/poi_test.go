package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/civic-guardian/civic-api/schema"
)

type POITestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
	store        MongoStore
}

func NewPOITestSuite(connURI, dbName string) *POITestSuite {
	return &POITestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *POITestSuite) SetupSuite() {
	if s.connURI == "" || s.testDBName == "" {
		s.T().Fatal("invalid test suite configuration")
	}

	opts := options.Client().ApplyURI(s.connURI)
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		s.T().Fatalf("create mongo client with error: %s", err)
	}

	if err = mongoClient.Connect(context.Background()); nil != err {
		s.T().Fatalf("connect mongo database with error: %s", err.Error())
	}

	s.mongoClient = mongoClient
	s.testDatabase = mongoClient.Database(s.testDBName)
	s.store = NewMongoStore(mongoClient, s.testDBName, DefaultEngineConfig(), nil)

	// make sure the test suite is run with a clean environment
	if err := s.CleanMongoDB(); err != nil {
		s.T().Fatal(err)
	}
	schema.NewMongoDBIndexer(s.connURI, s.testDBName).IndexAll()
	if err := s.LoadMongoDBFixtures(); err != nil {
		s.T().Fatal(err)
	}
}

func (s *POITestSuite) CleanMongoDB() error {
	return s.testDatabase.Drop(context.Background())
}

// LoadMongoDBFixtures will preload fixtures into test mongodb
func (s *POITestSuite) LoadMongoDBFixtures() error {
	pois := []struct {
		name     string
		category string
		lon, lat float64
	}{
		{"city hospital", "hospital", 121.5300, 25.0400},
		{"public library", "library", 121.5302, 25.0400},
		{"elementary school", "school", 121.5600, 25.0400},
		{"bus stop", "bus_stop", 121.4000, 25.0400},
	}

	for _, p := range pois {
		if _, err := s.store.AddPOI(p.name, p.category, p.lon, p.lat); err != nil {
			return err
		}
	}
	return nil
}

func (s *POITestSuite) TestMaxWeightPicksHighestInRange() {
	// hospital and library are both within 500m, hospital wins
	weight, err := s.store.MaxWeightWithin(ProximityRadiusMeters, schema.Location{
		Longitude: 121.5301,
		Latitude:  25.0400,
	})
	s.NoError(err)
	s.Equal(15, weight)
}

func (s *POITestSuite) TestMaxWeightIgnoresOutOfRange() {
	// only the school is near this point
	weight, err := s.store.MaxWeightWithin(ProximityRadiusMeters, schema.Location{
		Longitude: 121.5601,
		Latitude:  25.0401,
	})
	s.NoError(err)
	s.Equal(10, weight)
}

func (s *POITestSuite) TestMaxWeightUnknownCategoryContributesNothing() {
	// the bus stop is in range but not in the weight table
	weight, err := s.store.MaxWeightWithin(ProximityRadiusMeters, schema.Location{
		Longitude: 121.4001,
		Latitude:  25.0400,
	})
	s.NoError(err)
	s.Equal(0, weight)
}

func (s *POITestSuite) TestMaxWeightEmptyArea() {
	weight, err := s.store.MaxWeightWithin(ProximityRadiusMeters, schema.Location{
		Longitude: 120.9000,
		Latitude:  24.5000,
	})
	s.NoError(err)
	s.Equal(0, weight)
}

// In order for 'go test' to run this suite, we need to create
// a normal test function and pass our suite to s.Run
func TestPOITestSuite(t *testing.T) {
	suite.Run(t, NewPOITestSuite("mongodb://127.0.0.1:27017/?compressors=disabled", "test-poi-db"))
}
