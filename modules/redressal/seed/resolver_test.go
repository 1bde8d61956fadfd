package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinit-solanki/BhashniHackathon-MHGRS/modules/redressal/domain/authority"
)

func record(fields map[string]string) Record {
	return Record{Line: 2, fields: fields}
}

func newTestResolver(authorities *memAuthorities) (*Resolver, *memUsers, *memLocations, *memDepartments) {
	users := &memUsers{}
	locations := &memLocations{}
	departments := &memDepartments{}
	return NewResolver(users, locations, departments, authorities, testLogger()), users, locations, departments
}

func TestResolveUserIdempotent(t *testing.T) {
	ctx := context.Background()
	r, users, _, _ := newTestResolver(&memAuthorities{})

	rec := record(map[string]string{"citizenName": "Priya Sharma", "email": "Priya@Example.com"})
	first, err := r.ResolveUser(ctx, rec)
	require.NoError(t, err)
	assert.Equal(t, "priya@example.com", first.Email)

	second, err := r.ResolveUser(ctx, rec)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, users.items, 1)
}

func TestResolveUserWithoutEmail(t *testing.T) {
	ctx := context.Background()
	r, users, _, _ := newTestResolver(&memAuthorities{})

	rec := record(map[string]string{"citizenName": "Priya Sharma"})
	first, err := r.ResolveUser(ctx, rec)
	require.NoError(t, err)
	assert.Equal(t, "priyasharma@gmail.com", first.Email)

	// The derived address is deterministic, so the same row resolves to the
	// same user on a re-run.
	second, err := r.ResolveUser(ctx, rec)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, users.items, 1)
}

func TestResolveUserAnonymousFallback(t *testing.T) {
	ctx := context.Background()
	r, _, _, _ := newTestResolver(&memAuthorities{})

	u, err := r.ResolveUser(ctx, record(map[string]string{"citizenName": "null"}))
	require.NoError(t, err)
	assert.Equal(t, "Anonymous User", u.Name)
	assert.Equal(t, "anonymoususer@gmail.com", u.Email)
}

func TestResolveLocationDeduplicatesGPSNoise(t *testing.T) {
	ctx := context.Background()
	r, _, locations, _ := newTestResolver(&memAuthorities{})

	first, err := r.ResolveLocation(ctx, record(map[string]string{
		"location":                 "Hazratganj, Lucknow",
		"district":                 "Lucknow",
		"pincode":                  "226001",
		"gpscoordinates_latitude":  "26.8500",
		"gpscoordinates_longitude": "80.9500",
	}))
	require.NoError(t, err)
	require.NotNil(t, first.GPSLat)
	assert.InDelta(t, 26.85, *first.GPSLat, 1e-9)

	// Same place, jittered coordinates: must resolve to the existing row.
	second, err := r.ResolveLocation(ctx, record(map[string]string{
		"location":                 "Hazratganj",
		"district":                 "Lucknow",
		"pincode":                  "226001",
		"gpscoordinates_latitude":  "26.8501",
		"gpscoordinates_longitude": "80.9499",
	}))
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, locations.items, 1)
	assert.InDelta(t, 26.85, *second.GPSLat, 1e-9)
}

func TestResolveLocationDistrictFallback(t *testing.T) {
	ctx := context.Background()
	r, _, _, _ := newTestResolver(&memAuthorities{})

	loc, err := r.ResolveLocation(ctx, record(map[string]string{"location": "Sitapur"}))
	require.NoError(t, err)
	assert.Equal(t, "Sitapur", loc.Name)
	assert.Equal(t, "Sitapur", loc.District)
	assert.Nil(t, loc.GPSLat)
}

func TestResolveDepartmentRequiresAuthority(t *testing.T) {
	ctx := context.Background()
	r, _, _, _ := newTestResolver(&memAuthorities{})

	_, err := r.ResolveDepartment(ctx, "Water Supply")
	require.ErrorIs(t, err, ErrNoAuthority)
}

func TestResolveDepartmentFindOrCreate(t *testing.T) {
	ctx := context.Background()
	authorities := &memAuthorities{}
	_, err := authorities.Upsert(ctx, &authority.Authority{
		Name:  "State Admin",
		Email: "state.admin.tadm@up.gov.in",
		Role:  authority.RoleAdministrator,
		Level: authority.LevelTop,
	})
	require.NoError(t, err)

	r, _, _, departments := newTestResolver(authorities)

	first, err := r.ResolveDepartment(ctx, "Water Supply")
	require.NoError(t, err)
	assert.Equal(t, "Water Supply", first.Name)
	assert.Equal(t, "Department of Water Supply", first.Description)
	require.NotNil(t, first.AuthorityID)

	second, err := r.ResolveDepartment(ctx, "Water Supply")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, departments.items, 1)

	blank, err := r.ResolveDepartment(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "General Department", blank.Name)
}
