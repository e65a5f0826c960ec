package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/civic-guardian/civic-api/schema"
)

type VoteTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
	store        MongoStore
}

func NewVoteTestSuite(connURI, dbName string) *VoteTestSuite {
	return &VoteTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *VoteTestSuite) SetupSuite() {
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

	if err := s.testDatabase.Drop(context.Background()); err != nil {
		s.T().Fatal(err)
	}
	schema.NewMongoDBIndexer(s.connURI, s.testDBName).IndexAll()
}

func (s *VoteTestSuite) createComplaint(department string) *schema.Complaint {
	complaint, err := s.store.AddComplaint("reporter-test-vote", "broken thing",
		"it is broken", department, "somewhere", nil)
	s.Require().NoError(err)
	return complaint
}

// seedVotes inserts votes directly, bypassing the threshold evaluation that
// CastVote runs on every committed vote.
func (s *VoteTestSuite) seedVotes(complaintID primitive.ObjectID, kind schema.VoteKind, count int) {
	ctx := context.Background()
	for i := 0; i < count; i++ {
		_, err := s.testDatabase.Collection(schema.VoteCollection).InsertOne(ctx, schema.Vote{
			ComplaintID: complaintID,
			VoterID:     fmt.Sprintf("seed-voter-%s-%d", kind, i),
			Kind:        kind,
			Timestamp:   time.Now().UTC().Unix(),
		})
		s.Require().NoError(err)
	}
}

func (s *VoteTestSuite) activeVoteCount(complaintID primitive.ObjectID) int64 {
	count, err := s.testDatabase.Collection(schema.VoteCollection).
		CountDocuments(context.Background(), bson.M{"complaint_id": complaintID})
	s.Require().NoError(err)
	return count
}

func (s *VoteTestSuite) verifiedIssueCount(complaintID primitive.ObjectID) int64 {
	count, err := s.testDatabase.Collection(schema.VerifiedIssueCollection).
		CountDocuments(context.Background(), bson.M{"complaint_id": complaintID})
	s.Require().NoError(err)
	return count
}

func (s *VoteTestSuite) TestCastVoteUnknownComplaint() {
	_, err := s.store.CastVote("voter-1", primitive.NewObjectID(), schema.VoteResolved)
	s.EqualError(err, ErrComplaintNotFound.Error())
}

func (s *VoteTestSuite) TestCastVoteInvalidKind() {
	complaint := s.createComplaint("Roads")

	_, err := s.store.CastVote("voter-1", complaint.ID, schema.VoteKind("maybe"))
	s.EqualError(err, ErrInvalidVoteKind.Error())

	s.Equal(int64(0), s.activeVoteCount(complaint.ID))
}

func (s *VoteTestSuite) TestCastVoteDuplicateRejected() {
	complaint := s.createComplaint("Roads")

	updated, err := s.store.CastVote("voter-dup", complaint.ID, schema.VoteResolved)
	s.NoError(err)

	_, err = s.store.CastVote("voter-dup", complaint.ID, schema.VoteNotResolved)
	s.EqualError(err, ErrDuplicateVote.Error())

	// the rejected vote left everything untouched
	s.Equal(int64(1), s.activeVoteCount(complaint.ID))
	current, err := s.store.GetComplaint(complaint.ID)
	s.NoError(err)
	s.Equal(updated.Score, current.Score)
	s.Equal(updated.Priority, current.Priority)
	s.Equal(updated.State, current.State)
}

func (s *VoteTestSuite) TestUniqueIndexBackstopsDuplicateInsert() {
	complaint := s.createComplaint("Roads")
	votes := s.testDatabase.Collection(schema.VoteCollection)

	vote := schema.Vote{
		ComplaintID: complaint.ID,
		VoterID:     "voter-backstop",
		Kind:        schema.VoteResolved,
		Timestamp:   time.Now().UTC().Unix(),
	}
	_, err := votes.InsertOne(context.Background(), vote)
	s.Require().NoError(err)

	// a second writer racing past the application-level count check is
	// stopped by the unique (complaint_id, voter_id) index
	_, err = votes.InsertOne(context.Background(), vote)
	s.Require().Error(err)
	s.True(isDuplicateKeyError(err))

	// and the cast path reports the existing vote as a duplicate with
	// nothing changed
	_, err = s.store.CastVote("voter-backstop", complaint.ID, schema.VoteNotResolved)
	s.EqualError(err, ErrDuplicateVote.Error())
	s.Equal(int64(1), s.activeVoteCount(complaint.ID))

	current, err := s.store.GetComplaint(complaint.ID)
	s.NoError(err)
	s.Equal(complaint.Score, current.Score)
	s.Equal(complaint.Priority, current.Priority)
	s.Equal(complaint.State, current.State)
}

func (s *VoteTestSuite) TestScoreRecomputedAfterEachVote() {
	// Electricity severity 10, no POI nearby, zero votes
	complaint := s.createComplaint("Electricity")
	s.Equal(5.0, complaint.Score)
	s.Equal(schema.PriorityCritical, complaint.Priority)

	// 0.5*10 + 0.2*(2*1) = 5.4
	updated, err := s.store.CastVote("voter-score-1", complaint.ID, schema.VoteNotResolved)
	s.NoError(err)
	s.Equal(5.4, updated.Score)

	// 0.5*10 + 0.2*(2*2) = 5.8, and persisted
	updated, err = s.store.CastVote("voter-score-2", complaint.ID, schema.VoteNotResolved)
	s.NoError(err)
	s.Equal(5.8, updated.Score)

	current, err := s.store.GetComplaint(complaint.ID)
	s.NoError(err)
	s.Equal(5.8, current.Score)
}

func (s *VoteTestSuite) TestResolvedThresholdArchivesAndPurges() {
	complaint := s.createComplaint("Water")

	for i := 1; i <= 2; i++ {
		updated, err := s.store.CastVote(fmt.Sprintf("voter-res-%d", i), complaint.ID, schema.VoteResolved)
		s.NoError(err)
		s.Equal(schema.StatusUnresolved, updated.Status())
	}

	updated, err := s.store.CastVote("voter-res-3", complaint.ID, schema.VoteResolved)
	s.NoError(err)
	s.Equal(schema.StateVerifiedResolved, updated.State)
	s.Equal(schema.StatusResolved, updated.Status())

	s.Equal(int64(1), s.verifiedIssueCount(complaint.ID))
	s.Equal(int64(0), s.activeVoteCount(complaint.ID))

	issue, err := s.store.GetVerifiedIssue(complaint.ID)
	s.NoError(err)
	s.Equal(complaint.Title, issue.Title)
	s.Equal(complaint.Department, issue.Department)
}

func (s *VoteTestSuite) TestArchivalIsIdempotentAcrossRounds() {
	complaint := s.createComplaint("Water")

	for i := 1; i <= 3; i++ {
		_, err := s.store.CastVote(fmt.Sprintf("round1-voter-%d", i), complaint.ID, schema.VoteResolved)
		s.NoError(err)
	}
	s.Equal(int64(1), s.verifiedIssueCount(complaint.ID))

	// the ledger was purged, a second round of voters crosses the
	// threshold again without creating a second archive entry
	for i := 1; i <= 3; i++ {
		_, err := s.store.CastVote(fmt.Sprintf("round2-voter-%d", i), complaint.ID, schema.VoteResolved)
		s.NoError(err)
	}
	s.Equal(int64(1), s.verifiedIssueCount(complaint.ID))
	s.Equal(int64(0), s.activeVoteCount(complaint.ID))
}

func (s *VoteTestSuite) TestNotResolvedThresholdEscalatesAndPurges() {
	// Gardens is unlisted, severity fallback 3, initial priority medium
	complaint := s.createComplaint("Gardens")
	s.Equal(schema.PriorityMedium, complaint.Priority)

	for i := 1; i <= 2; i++ {
		_, err := s.store.CastVote(fmt.Sprintf("voter-nr-%d", i), complaint.ID, schema.VoteNotResolved)
		s.NoError(err)
	}

	updated, err := s.store.CastVote("voter-nr-3", complaint.ID, schema.VoteNotResolved)
	s.NoError(err)
	s.Equal(schema.PriorityHigh, updated.Priority)
	s.Equal(schema.StateCommunityVerified, updated.State)
	s.Equal(schema.StatusUnresolved, updated.Status())

	s.Equal(int64(0), s.activeVoteCount(complaint.ID))
	s.Equal(int64(0), s.verifiedIssueCount(complaint.ID))
}

func (s *VoteTestSuite) TestSixNotResolvedVotesEscalateToCritical() {
	complaint := s.createComplaint("Gardens")

	s.seedVotes(complaint.ID, schema.VoteNotResolved, 5)

	updated, err := s.store.CastVote("voter-crit", complaint.ID, schema.VoteNotResolved)
	s.NoError(err)
	s.Equal(schema.PriorityCritical, updated.Priority)
	s.Equal(schema.StateCommunityVerified, updated.State)
	s.Equal(int64(0), s.activeVoteCount(complaint.ID))
}

func (s *VoteTestSuite) TestVoteSummary() {
	complaint := s.createComplaint("Roads")

	s.seedVotes(complaint.ID, schema.VoteResolved, 2)
	s.seedVotes(complaint.ID, schema.VoteNotResolved, 1)

	summary, err := s.store.VoteSummary(complaint.ID)
	s.NoError(err)
	s.Equal(int64(2), summary.Resolved)
	s.Equal(int64(1), summary.NotResolved)
	s.Equal(int64(3), summary.Total)
}

func (s *VoteTestSuite) TestVoteSummaryUnknownComplaint() {
	_, err := s.store.VoteSummary(primitive.NewObjectID())
	s.EqualError(err, ErrComplaintNotFound.Error())
}

// In order for 'go test' to run this suite, we need to create
// a normal test function and pass our suite to s.Run
func TestVoteTestSuite(t *testing.T) {
	suite.Run(t, NewVoteTestSuite("mongodb://127.0.0.1:27017/?compressors=disabled", "test-vote-db"))
}
