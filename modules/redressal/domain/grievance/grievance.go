package grievance

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Status is the closed lifecycle state of a grievance. Free-text source
// values are mapped onto it by the seed normalizer.
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusInProgress Status = "IN_PROGRESS"
	StatusResolved   Status = "RESOLVED"
	StatusClosed     Status = "CLOSED"
)

type UrgencyLevel string

const (
	UrgencyLow      UrgencyLevel = "LOW"
	UrgencyMedium   UrgencyLevel = "MEDIUM"
	UrgencyHigh     UrgencyLevel = "HIGH"
	UrgencyCritical UrgencyLevel = "CRITICAL"
)

type PriorityLevel string

const (
	PriorityLow    PriorityLevel = "LOW"
	PriorityMedium PriorityLevel = "MEDIUM"
	PriorityHigh   PriorityLevel = "HIGH"
)

// Grievance always references exactly one department, user and location.
// All three must exist before the insert; the pipeline skips the row
// otherwise.
type Grievance struct {
	ID            uuid.UUID
	Title         string
	Complaint     string
	ComplaintType string
	Category      string
	Subcategory   string
	Status        Status
	UrgencyLevel  UrgencyLevel
	PriorityLevel PriorityLevel
	IsAnonymous   bool
	CurrentLevel  string

	EconomicImpact      string
	SocialImpact        string
	EnvironmentalImpact string
	Emotion             string
	RelatedPolicies     string

	ResolutionDays *int

	DepartmentID uuid.UUID
	UserID       uuid.UUID
	LocationID   uuid.UUID

	SubmissionDate  *time.Time
	LastUpdatedDate *time.Time
	CreatedAt       time.Time
}

type Repository interface {
	Create(ctx context.Context, g *Grievance) (*Grievance, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Grievance, error)
	Count(ctx context.Context) (int64, error)
}
