package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ComplaintCollection = "complaints"
)

// ComplaintState is the single workflow position of a complaint. The legacy
// resolved/unresolved status is derived from it and never stored separately.
type ComplaintState string

const (
	StateUnassigned          ComplaintState = "unassigned"
	StateAssigned            ComplaintState = "assigned"
	StateInProgress          ComplaintState = "in_progress"
	StatePendingVerification ComplaintState = "pending_verification"
	StateVerifiedResolved    ComplaintState = "verified_resolved"
	StateCommunityVerified   ComplaintState = "community_verified"
)

const (
	StatusUnresolved = "unresolved"
	StatusResolved   = "resolved"
)

// Valid reports whether s is a recognized workflow state.
func (s ComplaintState) Valid() bool {
	switch s {
	case StateUnassigned, StateAssigned, StateInProgress,
		StatePendingVerification, StateVerifiedResolved, StateCommunityVerified:
		return true
	}
	return false
}

// Terminal reports whether s ends the verification workflow.
func (s ComplaintState) Terminal() bool {
	return s == StateVerifiedResolved || s == StateCommunityVerified
}

// Status derives the coarse resolved/unresolved view of a state.
func (s ComplaintState) Status() string {
	if s == StateVerifiedResolved {
		return StatusResolved
	}
	return StatusUnresolved
}

type Priority string

const (
	PriorityNone     Priority = "none"
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// Rank orders priorities for escalation checks. A higher rank is more urgent.
func (p Priority) Rank() int {
	switch p {
	case PriorityLow:
		return 1
	case PriorityMedium:
		return 2
	case PriorityHigh:
		return 3
	case PriorityCritical:
		return 4
	}
	return 0
}

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type GeoJSON struct {
	Type        string    `bson:"type" json:"type"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates"`
}

// NewPointGeoJSON builds a GeoJSON point from a location. Coordinates are
// stored in mongo order, longitude first.
func NewPointGeoJSON(loc Location) *GeoJSON {
	return &GeoJSON{
		Type:        "Point",
		Coordinates: []float64{loc.Longitude, loc.Latitude},
	}
}

// ToLocation converts a GeoJSON point back to a latitude/longitude pair.
func (g *GeoJSON) ToLocation() *Location {
	if g == nil || len(g.Coordinates) < 2 {
		return nil
	}
	return &Location{
		Longitude: g.Coordinates[0],
		Latitude:  g.Coordinates[1],
	}
}

type Complaint struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ReporterID   string             `bson:"reporter_id" json:"reporter_id"`
	Title        string             `bson:"title" json:"title"`
	Description  string             `bson:"description" json:"description"`
	Department   string             `bson:"department" json:"department"`
	Priority     Priority           `bson:"priority" json:"priority"`
	State        ComplaintState     `bson:"state" json:"process"`
	Location     *GeoJSON           `bson:"location,omitempty" json:"location,omitempty"`
	LocationName string             `bson:"location_name" json:"location_name"`
	Score        float64            `bson:"score" json:"score"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
}

// Status is the legacy coarse view used by clients, derived from State.
func (c *Complaint) Status() string {
	return c.State.Status()
}
