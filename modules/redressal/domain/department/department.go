package department

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Department groups grievances and staffing records. Name is the natural key.
type Department struct {
	ID             uuid.UUID
	Name           string
	Description    string
	HierarchyLevel string
	ResourceID     string
	AuthorityID    *uuid.UUID

	CreatedAt time.Time
}

type Repository interface {
	GetByName(ctx context.Context, name string) (*Department, error)
	Create(ctx context.Context, d *Department) (*Department, error)
	IDs(ctx context.Context) ([]uuid.UUID, error)
	All(ctx context.Context) ([]*Department, error)
	First(ctx context.Context) (*Department, error)
	Count(ctx context.Context) (int64, error)
}
