package schema

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBIndexer struct {
	ctx      context.Context
	dbName   string
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongoDBIndexer(connectionString, dbName string) *MongoDBIndexer {
	ctx := context.Background()
	opts := options.Client().ApplyURI(connectionString)
	client, err := mongo.NewClient(opts)
	if err != nil {
		panic(err)
	}
	if err := client.Connect(ctx); err != nil {
		panic(err)
	}

	return &MongoDBIndexer{
		ctx:      ctx,
		dbName:   dbName,
		Client:   client,
		Database: client.Database(dbName),
	}
}

func (m *MongoDBIndexer) createIndex(collection string, index mongo.IndexModel) error {
	c := m.Database.Collection(collection)
	_, err := c.Indexes().CreateOne(m.ctx, index)
	return err
}

func panicIfError(err error) {
	if err != nil {
		panic(err)
	}
}

func (m *MongoDBIndexer) IndexAll() {
	panicIfError(m.IndexComplaintCollection())
	panicIfError(m.IndexVoteCollection())
	panicIfError(m.IndexVerifiedIssueCollection())
	panicIfError(m.IndexPOICollection())
}

func (m *MongoDBIndexer) IndexComplaintCollection() error {
	if err := m.createIndex(ComplaintCollection, mongo.IndexModel{
		Keys: bson.M{
			"location": "2dsphere",
		},
	}); err != nil {
		return err
	}

	if err := m.createIndex(ComplaintCollection, mongo.IndexModel{
		Keys: bson.M{
			"state": 1,
		},
	}); err != nil {
		return err
	}

	return m.createIndex(ComplaintCollection, mongo.IndexModel{
		Keys: bson.M{
			"score": -1,
		},
	})
}

// IndexVoteCollection backs the one-vote-per-voter-per-complaint invariant
// with a unique compound index so concurrent inserts cannot both pass the
// application-level duplicate check.
func (m *MongoDBIndexer) IndexVoteCollection() error {
	return m.createIndex(VoteCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "complaint_id", Value: 1},
			{Key: "voter_id", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
}

// IndexVerifiedIssueCollection makes the archival of a complaint idempotent.
func (m *MongoDBIndexer) IndexVerifiedIssueCollection() error {
	return m.createIndex(VerifiedIssueCollection, mongo.IndexModel{
		Keys: bson.M{
			"complaint_id": 1,
		},
		Options: options.Index().SetUnique(true),
	})
}

func (m *MongoDBIndexer) IndexPOICollection() error {
	if err := m.createIndex(POICollection, mongo.IndexModel{
		Keys: bson.M{
			"location": "2dsphere",
		},
	}); err != nil {
		return err
	}

	return m.createIndex(POICollection, mongo.IndexModel{
		Keys: bson.M{
			"category": 1,
		},
	})
}
