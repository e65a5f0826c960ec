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
	"github.com/civic-guardian/civic-api/verify"
)

var (
	ErrComplaintNotFound  = fmt.Errorf("complaint not found")
	ErrInvalidStateChange = fmt.Errorf("invalid workflow state change")
)

// ComplaintUpdate carries an administrator's partial edit. Nil fields keep
// their current value.
type ComplaintUpdate struct {
	Title        *string
	Description  *string
	Department   *string
	LocationName *string
	Priority     *schema.Priority
	State        *schema.ComplaintState
}

type ComplaintStore interface {
	AddComplaint(reporterID, title, description, department, locationName string, loc *schema.Location) (*schema.Complaint, error)
	GetComplaint(id primitive.ObjectID) (*schema.Complaint, error)
	ListComplaints() ([]schema.Complaint, error)
	ListUnresolvedByScore() ([]schema.Complaint, error)
	ListPendingVerification() ([]schema.Complaint, error)
	UpdateComplaint(id primitive.ObjectID, update ComplaintUpdate) (*schema.Complaint, error)
	DeleteComplaint(id primitive.ObjectID) error
}

// AddComplaint inserts a new complaint with its severity-derived initial
// priority and its initial score.
func (m *mongoDB) AddComplaint(reporterID, title, description, department, locationName string, loc *schema.Location) (*schema.Complaint, error) {
	severity := m.cfg.Severities.Severity(department)

	locationWeight := 0
	var geoPoint *schema.GeoJSON
	if loc != nil {
		geoPoint = schema.NewPointGeoJSON(*loc)

		w, err := m.MaxWeightWithin(ProximityRadiusMeters, *loc)
		if err != nil {
			return nil, err
		}
		locationWeight = w

		if locationName == "" && m.resolver != nil {
			name, err := m.resolver.GetPlaceName(*loc)
			if err != nil {
				log.WithField("prefix", mongoLogPrefix).WithError(err).Warn("resolve place name")
			} else {
				locationName = name
			}
		}
	}

	complaint := schema.Complaint{
		ReporterID:   reporterID,
		Title:        title,
		Description:  description,
		Department:   department,
		Priority:     score.PriorityFromSeverity(severity),
		State:        schema.StateUnassigned,
		Location:     geoPoint,
		LocationName: locationName,
		Score:        score.PriorityScore(m.cfg.Params, severity, 0, locationWeight),
		CreatedAt:    time.Now().UTC(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ComplaintCollection)
	result, err := c.InsertOne(ctx, complaint)
	if err != nil {
		return nil, err
	}
	complaint.ID = result.InsertedID.(primitive.ObjectID)

	return &complaint, nil
}

// GetComplaint finds a complaint by ID
func (m *mongoDB) GetComplaint(id primitive.ObjectID) (*schema.Complaint, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ComplaintCollection)

	var complaint schema.Complaint
	if err := c.FindOne(ctx, bson.M{"_id": id}).Decode(&complaint); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrComplaintNotFound
		}
		return nil, err
	}

	return &complaint, nil
}

func (m *mongoDB) ListComplaints() ([]schema.Complaint, error) {
	return m.findComplaints(bson.M{}, nil)
}

// ListUnresolvedByScore returns the unresolved complaints ordered by
// priority score, most urgent first. Recomputed per call, there is no
// cached ranking.
func (m *mongoDB) ListUnresolvedByScore() ([]schema.Complaint, error) {
	query := bson.M{"state": bson.M{"$ne": schema.StateVerifiedResolved}}
	return m.findComplaints(query, options.Find().SetSort(bson.M{"score": -1}))
}

func (m *mongoDB) ListPendingVerification() ([]schema.Complaint, error) {
	return m.findComplaints(bson.M{"state": schema.StatePendingVerification}, nil)
}

func (m *mongoDB) findComplaints(query bson.M, opts *options.FindOptions) ([]schema.Complaint, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ComplaintCollection)

	var cur *mongo.Cursor
	var err error
	if opts != nil {
		cur, err = c.Find(ctx, query, opts)
	} else {
		cur, err = c.Find(ctx, query)
	}
	if err != nil {
		return nil, err
	}

	complaints := make([]schema.Complaint, 0)
	if err := cur.All(ctx, &complaints); err != nil {
		return nil, err
	}

	return complaints, nil
}

// UpdateComplaint applies an administrator's partial edit and recomputes
// the priority score for the resulting department and current vote counts.
// The read, recount and write commit as one transaction so a vote landing
// concurrently cannot have its escalation or transition overwritten.
func (m *mongoDB) UpdateComplaint(id primitive.ObjectID, update ComplaintUpdate) (*schema.Complaint, error) {
	if update.State != nil && !update.State.Valid() {
		return nil, ErrInvalidStateChange
	}

	ctx, cancel := context.WithTimeout(context.Background(), voteTimeout)
	defer cancel()

	// the location is immutable, so the proximity weight can be looked up
	// before the transaction starts ($nearSphere is not usable inside one)
	locationWeight := 0
	current, err := m.GetComplaint(id)
	if err != nil {
		return nil, err
	}
	if loc := current.Location.ToLocation(); loc != nil {
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
		return m.updateComplaint(sc, id, update, locationWeight)
	}, txnOpts)
	if err != nil {
		return nil, err
	}

	return result.(*schema.Complaint), nil
}

func (m *mongoDB) updateComplaint(sc mongo.SessionContext, id primitive.ObjectID, update ComplaintUpdate, locationWeight int) (*schema.Complaint, error) {
	complaints := m.client.Database(m.database).Collection(schema.ComplaintCollection)
	votes := m.client.Database(m.database).Collection(schema.VoteCollection)

	var complaint schema.Complaint
	if err := complaints.FindOne(sc, bson.M{"_id": id}).Decode(&complaint); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrComplaintNotFound
		}
		return nil, err
	}

	if update.Title != nil {
		complaint.Title = *update.Title
	}
	if update.Description != nil {
		complaint.Description = *update.Description
	}
	if update.Department != nil {
		complaint.Department = *update.Department
	}
	if update.LocationName != nil {
		complaint.LocationName = *update.LocationName
	}
	if update.Priority != nil {
		complaint.Priority = *update.Priority
	}
	if update.State != nil && *update.State != complaint.State {
		if !verify.CanTransition(complaint.State, *update.State) {
			return nil, ErrInvalidStateChange
		}
		complaint.State = *update.State
	}

	notResolved, err := votes.CountDocuments(sc, bson.M{
		"complaint_id": id,
		"kind":         schema.VoteNotResolved,
	})
	if err != nil {
		return nil, err
	}

	severity := m.cfg.Severities.Severity(complaint.Department)
	complaint.Score = score.PriorityScore(m.cfg.Params, severity, int(notResolved), locationWeight)

	if _, err := complaints.UpdateOne(sc, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"title":         complaint.Title,
		"description":   complaint.Description,
		"department":    complaint.Department,
		"location_name": complaint.LocationName,
		"priority":      complaint.Priority,
		"state":         complaint.State,
		"score":         complaint.Score,
	}}); err != nil {
		return nil, err
	}

	return &complaint, nil
}

// DeleteComplaint removes a complaint and its active votes in one
// transaction, so a failure cannot leave orphaned votes behind. Admin only.
func (m *mongoDB) DeleteComplaint(id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), voteTimeout)
	defer cancel()

	session, err := m.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	txnOpts := options.Transaction().
		SetReadConcern(readconcern.Snapshot()).
		SetWriteConcern(writeconcern.New(writeconcern.WMajority()))

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		c := m.client.Database(m.database).Collection(schema.ComplaintCollection)
		result, err := c.DeleteOne(sc, bson.M{"_id": id})
		if err != nil {
			return nil, err
		}
		if result.DeletedCount == 0 {
			return nil, ErrComplaintNotFound
		}

		votes := m.client.Database(m.database).Collection(schema.VoteCollection)
		if _, err := votes.DeleteMany(sc, bson.M{"complaint_id": id}); err != nil {
			return nil, err
		}

		return nil, nil
	}, txnOpts)

	return err
}
