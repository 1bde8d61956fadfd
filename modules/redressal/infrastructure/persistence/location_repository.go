package persistence

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/vinit-solanki/BhashniHackathon-MHGRS/modules/redressal/domain/location"
	"github.com/vinit-solanki/BhashniHackathon-MHGRS/modules/redressal/infrastructure/persistence/models"
	"github.com/vinit-solanki/BhashniHackathon-MHGRS/pkg/composables"
)

var ErrLocationNotFound = errors.New("location not found")

const (
	locationFindByKeyQuery = `
		SELECT id, location, district, tehsil, ward, pincode, gps_lat, gps_lng, created_at
		FROM locations
		WHERE location = $1 AND district = $2 AND pincode = $3`

	locationInsertQuery = `
		INSERT INTO locations (id, location, district, tehsil, ward, pincode, gps_lat, gps_lng, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now())
		RETURNING created_at`

	locationCountQuery = `SELECT COUNT(id) FROM locations`
)

type PgLocationRepository struct{}

func NewLocationRepository() location.Repository {
	return &PgLocationRepository{}
}

func (r *PgLocationRepository) GetByKey(ctx context.Context, key location.Key) (*location.Location, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	var m models.Location
	if err := tx.QueryRow(ctx, locationFindByKeyQuery, key.Name, key.District, key.Pincode).Scan(
		&m.ID, &m.Location, &m.District, &m.Tehsil, &m.Ward, &m.Pincode, &m.GPSLat, &m.GPSLng, &m.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrLocationNotFound
		}
		return nil, errors.Wrap(err, "failed to get location by key")
	}
	return ToDomainLocation(&m), nil
}

func (r *PgLocationRepository) Create(ctx context.Context, l *location.Location) (*location.Location, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	created := *l
	if created.ID == uuid.Nil {
		created.ID = uuid.New()
	}
	if err := tx.QueryRow(ctx, locationInsertQuery,
		created.ID, created.Name, created.District, strOrNil(created.Tehsil), strOrNil(created.Ward),
		created.Pincode, created.GPSLat, created.GPSLng,
	).Scan(&created.CreatedAt); err != nil {
		return nil, errors.Wrapf(err, "failed to create location %s, %s", l.Name, l.District)
	}
	return &created, nil
}

func (r *PgLocationRepository) Count(ctx context.Context) (int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}
	var count int64
	if err := tx.QueryRow(ctx, locationCountQuery).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "failed to count locations")
	}
	return count, nil
}
