package location

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Key is the canonical natural key of a location. GPS coordinates are
// deliberately excluded: two rows naming the same place with slightly
// different coordinates must resolve to one location.
type Key struct {
	Name     string
	District string
	Pincode  string
}

// Location is immutable once created; re-resolving the same key returns the
// existing row untouched.
type Location struct {
	ID       uuid.UUID
	Name     string
	District string
	Tehsil   string
	Ward     string
	Pincode  string
	GPSLat   *float64
	GPSLng   *float64

	CreatedAt time.Time
}

func (l *Location) Key() Key {
	return Key{Name: l.Name, District: l.District, Pincode: l.Pincode}
}

type Repository interface {
	GetByKey(ctx context.Context, key Key) (*Location, error)
	Create(ctx context.Context, l *Location) (*Location, error)
	Count(ctx context.Context) (int64, error)
}
