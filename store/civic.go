package store

import (
	"github.com/jinzhu/gorm"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/civic-guardian/civic-api/schema"
)

// civic main datastore
type CivicCore interface {
	Ping() error

	// Account
	CreateAccount(name, role string) (*schema.Account, error)
	GetAccount(id string) (*schema.Account, error)

	// Engine operations performed on behalf of a known account
	SubmitComplaint(reporterID, title, description, department, locationName string, loc *schema.Location) (*schema.Complaint, error)
	CastVote(voterID, complaintID string, kind schema.VoteKind) (*schema.Complaint, error)
}

// CivicStore is an implementation of CivicCore
type CivicStore struct {
	ormDB *gorm.DB
	mongo MongoStore
}

func NewCivicStore(ormDB *gorm.DB, mongo MongoStore) *CivicStore {
	return &CivicStore{
		ormDB: ormDB,
		mongo: mongo,
	}
}

// Ping is to check the storage health status
func (s *CivicStore) Ping() error {
	return s.ormDB.DB().Ping()
}

// SubmitComplaint registers a complaint for a known reporter and computes
// its initial priority and score.
func (s *CivicStore) SubmitComplaint(reporterID, title, description, department, locationName string, loc *schema.Location) (*schema.Complaint, error) {
	if _, err := s.GetAccount(reporterID); err != nil {
		return nil, err
	}

	return s.mongo.AddComplaint(reporterID, title, description, department, locationName, loc)
}

// CastVote records a vote for a known voter and runs the verification
// evaluation on the owning complaint.
func (s *CivicStore) CastVote(voterID, complaintID string, kind schema.VoteKind) (*schema.Complaint, error) {
	if _, err := s.GetAccount(voterID); err != nil {
		return nil, err
	}

	id, err := primitive.ObjectIDFromHex(complaintID)
	if err != nil {
		return nil, ErrComplaintNotFound
	}

	return s.mongo.CastVote(voterID, id, kind)
}
