package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	VerifiedIssueCollection = "verifiedIssues"
)

// VerifiedIssue is an immutable archival snapshot of a complaint whose
// resolution the community has confirmed. At most one exists per complaint.
type VerifiedIssue struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ComplaintID  primitive.ObjectID `bson:"complaint_id" json:"complaint_id"`
	Title        string             `bson:"title" json:"title"`
	Description  string             `bson:"description" json:"description"`
	Department   string             `bson:"department" json:"department"`
	Priority     Priority           `bson:"priority" json:"priority"`
	Location     *GeoJSON           `bson:"location,omitempty" json:"location,omitempty"`
	LocationName string             `bson:"location_name" json:"location_name"`
	VerifiedAt   time.Time          `bson:"verified_at" json:"verified_at"`
}
