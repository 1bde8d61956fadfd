package seed

import (
	"context"
	"strings"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/vinit-solanki/BhashniHackathon-MHGRS/modules/redressal/domain/authority"
	"github.com/vinit-solanki/BhashniHackathon-MHGRS/modules/redressal/domain/department"
	"github.com/vinit-solanki/BhashniHackathon-MHGRS/modules/redressal/domain/location"
	"github.com/vinit-solanki/BhashniHackathon-MHGRS/modules/redressal/domain/user"
	"github.com/vinit-solanki/BhashniHackathon-MHGRS/modules/redressal/infrastructure/persistence"
)

// ErrNoAuthority aborts a dependent insert when a prerequisite authority is
// missing; the caller skips the row, not the run.
var ErrNoAuthority = errors.New("no authority found in database")

const defaultUserPassword = "abcd1234"

// Resolver find-or-creates entities by natural key. Rows found by key are
// returned untouched: re-running the same CSV yields the same ids and leaves
// existing rows unmodified. Authority seeding intentionally does NOT go
// through here; its upsert-by-email strategy lives in AuthoritySeeder.
type Resolver struct {
	users       user.Repository
	locations   location.Repository
	departments department.Repository
	authorities authority.Repository
	logger      logrus.FieldLogger
}

func NewResolver(
	users user.Repository,
	locations location.Repository,
	departments department.Repository,
	authorities authority.Repository,
	logger logrus.FieldLogger,
) *Resolver {
	return &Resolver{
		users:       users,
		locations:   locations,
		departments: departments,
		authorities: authorities,
		logger:      logger,
	}
}

// ResolveUser finds or creates the citizen filer for a grievance row.
// Email is the natural key; rows without one get a deterministic address
// derived from the cleaned citizen name, so re-runs resolve to the same user.
func (r *Resolver) ResolveUser(ctx context.Context, rec Record) (*user.User, error) {
	name := cleanNull(rec.Get("citizenName"))
	if name == "" {
		name = "Anonymous User"
	}
	email := strings.ToLower(cleanNull(rec.Get("email")))
	if email == "" {
		cleaned := strings.ToLower(strings.Join(strings.Fields(name), ""))
		if cleaned == "" {
			cleaned = "anonymous"
		}
		email = cleaned + "@gmail.com"
	}

	existing, err := r.users.GetByEmail(ctx, email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, persistence.ErrUserNotFound) {
		return nil, err
	}

	created, err := r.users.Create(ctx, &user.User{
		Name:     name,
		Email:    email,
		Password: defaultUserPassword,
		Role:     user.RoleCitizen,
	})
	if err != nil {
		return nil, err
	}
	r.logger.Infof("Created user %s (%s)", created.Name, created.Email)
	return created, nil
}

// ResolveLocation finds or creates a location by its canonical natural key
// (location, district, pincode). GPS fields are recorded on first creation
// only; later rows naming the same place with different coordinates resolve
// to the existing row.
func (r *Resolver) ResolveLocation(ctx context.Context, rec Record) (*location.Location, error) {
	name := strings.TrimSpace(strings.SplitN(cleanNull(rec.Get("location")), ",", 2)[0])
	if name == "" {
		name = "Unknown"
	}
	district := cleanNull(rec.Get("district"))
	if district == "" {
		district = name
	}
	key := location.Key{
		Name:     name,
		District: district,
		Pincode:  cleanNull(rec.Get("pincode")),
	}

	existing, err := r.locations.GetByKey(ctx, key)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, persistence.ErrLocationNotFound) {
		return nil, err
	}

	created, err := r.locations.Create(ctx, &location.Location{
		Name:     key.Name,
		District: key.District,
		Pincode:  key.Pincode,
		Tehsil:   cleanNull(rec.Get("tehsil")),
		Ward:     cleanNull(rec.Get("ward")),
		GPSLat:   parseFloatField(rec.Get("gpscoordinates_latitude")),
		GPSLng:   parseFloatField(rec.Get("gpscoordinates_longitude")),
	})
	if err != nil {
		return nil, err
	}
	r.logger.Infof("Created location %s, %s", created.Name, created.District)
	return created, nil
}

// ResolveDepartment finds or creates a department by name. Creation needs at
// least one existing authority to own the department; without one the
// dependent insert fails with ErrNoAuthority.
func (r *Resolver) ResolveDepartment(ctx context.Context, name string) (*department.Department, error) {
	name = cleanNull(name)
	if name == "" {
		name = "General Department"
	}

	existing, err := r.departments.GetByName(ctx, name)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, persistence.ErrDepartmentNotFound) {
		return nil, err
	}

	owner, err := r.authorities.First(ctx)
	if err != nil {
		if errors.Is(err, persistence.ErrAuthorityNotFound) {
			return nil, errors.Wrapf(ErrNoAuthority, "cannot create department %s", name)
		}
		return nil, err
	}

	created, err := r.departments.Create(ctx, &department.Department{
		Name:           name,
		Description:    "Department of " + name,
		HierarchyLevel: "DEPARTMENT",
		ResourceID:     uuid.NewString()[:8],
		AuthorityID:    &owner.ID,
	})
	if err != nil {
		return nil, err
	}
	r.logger.Infof("Created department %s", created.Name)
	return created, nil
}
