package store

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/civic-guardian/civic-api/geo"
	"github.com/civic-guardian/civic-api/schema"
	"github.com/civic-guardian/civic-api/verify"
)

const (
	mongoLogPrefix = "mongo"
	defaultTimeout = 5 * time.Second

	// voteTimeout bounds the whole vote transaction, including driver
	// retries of transient errors.
	voteTimeout = 15 * time.Second
)

// MongoStore - interface for mongodb operations
type MongoStore interface {
	ComplaintStore
	VoteLedger
	VerifiedIssueStore
	POIIndex
	Closer
	Pinger
}

// Closer - close db connection
type Closer interface {
	Close()
}

// Pinger - ping database
type Pinger interface {
	Ping() error
}

// EngineConfig carries the immutable tables and thresholds the engine is
// wired with at startup.
type EngineConfig struct {
	Severities schema.SeverityTable
	POIWeights schema.POIWeights
	Params     schema.ScoreParams
	Thresholds verify.Thresholds
}

// DefaultEngineConfig returns the standard tables and thresholds.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		Severities: schema.DefaultSeverities(),
		POIWeights: schema.DefaultPOIWeights(),
		Params:     schema.DefaultScoreParams(),
		Thresholds: verify.DefaultThresholds(),
	}
}

type mongoDB struct {
	client   *mongo.Client
	database string
	cfg      EngineConfig
	resolver geo.LocationResolver
}

// Ping - ping mongo db
func (m *mongoDB) Ping() error {
	return m.client.Ping(context.Background(), nil)
}

// Close - close mongo db connections
func (m *mongoDB) Close() {
	log.WithField("prefix", mongoLogPrefix).Info("closing mongo db connections")
	_ = m.client.Disconnect(context.Background())
}

// NewMongoStore - return mongo db operations
func NewMongoStore(client *mongo.Client, database string, cfg EngineConfig, resolver geo.LocationResolver) MongoStore {
	return &mongoDB{
		client:   client,
		database: database,
		cfg:      cfg,
		resolver: resolver,
	}
}

// isDuplicateKeyError reports whether an insert hit a unique index.
func isDuplicateKeyError(err error) bool {
	if we, ok := err.(mongo.WriteException); ok {
		for _, e := range we.WriteErrors {
			if e.Code == 11000 {
				return true
			}
		}
	}
	if ce, ok := err.(mongo.CommandError); ok && ce.Code == 11000 {
		return true
	}
	return false
}
