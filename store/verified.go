package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/civic-guardian/civic-api/schema"
)

var (
	ErrVerifiedIssueNotFound = fmt.Errorf("verified issue not found")
)

// VerifiedIssueStore reads the permanent archive. Writing happens only
// inside the vote transaction when the resolved threshold is crossed.
type VerifiedIssueStore interface {
	GetVerifiedIssue(complaintID primitive.ObjectID) (*schema.VerifiedIssue, error)
	ListVerifiedIssues() ([]schema.VerifiedIssue, error)
}

// archiveVerifiedIssue snapshots a complaint into the archive once.
// Check-then-insert runs under the caller's transaction; the unique
// complaint_id index absorbs any retry that slips through.
func (m *mongoDB) archiveVerifiedIssue(ctx context.Context, complaint *schema.Complaint) error {
	c := m.client.Database(m.database).Collection(schema.VerifiedIssueCollection)

	count, err := c.CountDocuments(ctx, bson.M{"complaint_id": complaint.ID})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if _, err := c.InsertOne(ctx, schema.VerifiedIssue{
		ComplaintID:  complaint.ID,
		Title:        complaint.Title,
		Description:  complaint.Description,
		Department:   complaint.Department,
		Priority:     complaint.Priority,
		Location:     complaint.Location,
		LocationName: complaint.LocationName,
		VerifiedAt:   time.Now().UTC(),
	}); err != nil {
		if isDuplicateKeyError(err) {
			return nil
		}
		return err
	}

	return nil
}

func (m *mongoDB) GetVerifiedIssue(complaintID primitive.ObjectID) (*schema.VerifiedIssue, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.VerifiedIssueCollection)

	var issue schema.VerifiedIssue
	if err := c.FindOne(ctx, bson.M{"complaint_id": complaintID}).Decode(&issue); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrVerifiedIssueNotFound
		}
		return nil, err
	}

	return &issue, nil
}

func (m *mongoDB) ListVerifiedIssues() ([]schema.VerifiedIssue, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.VerifiedIssueCollection)

	cur, err := c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	issues := make([]schema.VerifiedIssue, 0)
	if err := cur.All(ctx, &issues); err != nil {
		return nil, err
	}

	return issues, nil
}
