package schema

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	VoteCollection = "votes"
)

// VoteKind is a citizen's assertion about a complaint.
type VoteKind string

const (
	VoteResolved    VoteKind = "resolved"
	VoteNotResolved VoteKind = "not_resolved"
)

func (k VoteKind) Valid() bool {
	return k == VoteResolved || k == VoteNotResolved
}

// Vote records one citizen's assertion about one complaint. The ledger is
// reset per verification round, it is not permanent history.
type Vote struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ComplaintID primitive.ObjectID `bson:"complaint_id" json:"complaint_id"`
	VoterID     string             `bson:"voter_id" json:"voter_id"`
	Kind        VoteKind           `bson:"kind" json:"kind"`
	Timestamp   int64              `bson:"ts" json:"ts"`
}

type VoteSummary struct {
	ComplaintID string `json:"complaint_id"`
	Resolved    int64  `json:"resolved_count"`
	NotResolved int64  `json:"not_resolved_count"`
	Total       int64  `json:"total_votes"`
}
