package user

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const RoleCitizen = "CITIZEN"

// User is a citizen filer. Email is the natural key.
type User struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Password  string
	Role      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Repository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, u *User) (*User, error)
	Count(ctx context.Context) (int64, error)
	// Names returns all user names in insertion order, for CSV export.
	Names(ctx context.Context) ([]string, error)
}
