package store

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readconcern"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"

	"github.com/civic-guardian/civic-api/schema"
	"github.com/civic-guardian/civic-api/score"
)

var (
	ErrInvalidVoteKind = fmt.Errorf("invalid vote kind")
	ErrDuplicateVote   = fmt.Errorf("voter has already voted on this complaint")
)

// VoteLedger holds one active vote per (voter, complaint) pair. The ledger
// is purged whenever a confirmation threshold fires, so it only ever covers
// the current verification round.
type VoteLedger interface {
	CastVote(voterID string, complaintID primitive.ObjectID, kind schema.VoteKind) (*schema.Complaint, error)
	VoteSummary(complaintID primitive.ObjectID) (*schema.VoteSummary, error)
}

// CastVote inserts a vote, recomputes the owning complaint's score and runs
// the verification evaluation. All writes commit as one transaction; a
// failure at any step leaves complaint, votes and archive untouched. The
// driver retries transient transaction errors within the vote timeout.
func (m *mongoDB) CastVote(voterID string, complaintID primitive.ObjectID, kind schema.VoteKind) (*schema.Complaint, error) {
	if !kind.Valid() {
		return nil, ErrInvalidVoteKind
	}

	ctx, cancel := context.WithTimeout(context.Background(), voteTimeout)
	defer cancel()

	// POIs are read-only reference data, so the proximity weight is looked
	// up outside the transaction ($nearSphere is not usable inside one).
	locationWeight := 0
	complaint, err := m.GetComplaint(complaintID)
	if err != nil {
		return nil, err
	}
	if loc := complaint.Location.ToLocation(); loc != nil {
		if locationWeight, err = m.MaxWeightWithin(ProximityRadiusMeters, *loc); err != nil {
			return nil, err
		}
	}

	session, err := m.client.StartSession()
	if err != nil {
		return nil, err
	}
	defer session.EndSession(ctx)

	txnOpts := options.Transaction().
		SetReadConcern(readconcern.Snapshot()).
		SetWriteConcern(writeconcern.New(writeconcern.WMajority()))

	result, err := session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return m.castVote(sc, voterID, complaintID, kind, locationWeight)
	}, txnOpts)
	if err != nil {
		return nil, err
	}

	return result.(*schema.Complaint), nil
}

func (m *mongoDB) castVote(sc mongo.SessionContext, voterID string, complaintID primitive.ObjectID, kind schema.VoteKind, locationWeight int) (*schema.Complaint, error) {
	complaints := m.client.Database(m.database).Collection(schema.ComplaintCollection)
	votes := m.client.Database(m.database).Collection(schema.VoteCollection)

	var complaint schema.Complaint
	if err := complaints.FindOne(sc, bson.M{"_id": complaintID}).Decode(&complaint); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrComplaintNotFound
		}
		return nil, err
	}

	count, err := votes.CountDocuments(sc, bson.M{
		"complaint_id": complaintID,
		"voter_id":     voterID,
	})
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateVote
	}

	// the unique (complaint_id, voter_id) index catches voters racing past
	// the check above
	if _, err := votes.InsertOne(sc, schema.Vote{
		ComplaintID: complaintID,
		VoterID:     voterID,
		Kind:        kind,
		Timestamp:   time.Now().UTC().Unix(),
	}); err != nil {
		if isDuplicateKeyError(err) {
			return nil, ErrDuplicateVote
		}
		return nil, err
	}

	resolved, err := votes.CountDocuments(sc, bson.M{
		"complaint_id": complaintID,
		"kind":         schema.VoteResolved,
	})
	if err != nil {
		return nil, err
	}
	notResolved, err := votes.CountDocuments(sc, bson.M{
		"complaint_id": complaintID,
		"kind":         schema.VoteNotResolved,
	})
	if err != nil {
		return nil, err
	}

	severity := m.cfg.Severities.Severity(complaint.Department)
	complaint.Score = score.PriorityScore(m.cfg.Params, severity, int(notResolved), locationWeight)

	decision := m.cfg.Thresholds.Evaluate(complaint.State, complaint.Priority, resolved, notResolved)
	complaint.Priority = decision.Priority
	complaint.State = decision.State

	if decision.Archive {
		if err := m.archiveVerifiedIssue(sc, &complaint); err != nil {
			return nil, err
		}
	}

	if decision.PurgeVotes {
		if _, err := votes.DeleteMany(sc, bson.M{"complaint_id": complaintID}); err != nil {
			return nil, err
		}
		log.WithFields(log.Fields{
			"prefix":       mongoLogPrefix,
			"complaint_id": complaintID.Hex(),
			"state":        complaint.State,
		}).Info("vote ledger purged after threshold crossing")
	}

	if _, err := complaints.UpdateOne(sc, bson.M{"_id": complaintID}, bson.M{"$set": bson.M{
		"score":    complaint.Score,
		"priority": complaint.Priority,
		"state":    complaint.State,
	}}); err != nil {
		return nil, err
	}

	return &complaint, nil
}

// VoteSummary returns the per-kind counts of the currently active votes.
func (m *mongoDB) VoteSummary(complaintID primitive.ObjectID) (*schema.VoteSummary, error) {
	if _, err := m.GetComplaint(complaintID); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	votes := m.client.Database(m.database).Collection(schema.VoteCollection)

	resolved, err := votes.CountDocuments(ctx, bson.M{
		"complaint_id": complaintID,
		"kind":         schema.VoteResolved,
	})
	if err != nil {
		return nil, err
	}
	notResolved, err := votes.CountDocuments(ctx, bson.M{
		"complaint_id": complaintID,
		"kind":         schema.VoteNotResolved,
	})
	if err != nil {
		return nil, err
	}

	return &schema.VoteSummary{
		ComplaintID: complaintID.Hex(),
		Resolved:    resolved,
		NotResolved: notResolved,
		Total:       resolved + notResolved,
	}, nil
}
