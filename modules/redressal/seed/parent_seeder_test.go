package seed

import (
	"context"
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinit-solanki/BhashniHackathon-MHGRS/modules/redressal/domain/authority"
)

func seedHierarchy(t *testing.T, authorities *memAuthorities) {
	t.Helper()
	ctx := context.Background()
	add := func(name, role string) {
		_, err := authorities.Upsert(ctx, &authority.Authority{
			Name:  name,
			Email: authority.DeriveEmail(name, authority.LevelMid, role),
			Role:  role,
			Level: authority.LevelMid,
		})
		require.NoError(t, err)
	}
	add("Root Admin", authority.RoleAdministrator)
	add("Comm One", authority.RoleCommissioner)
	add("Comm Two", authority.RoleCommissioner)
	add("DM One", authority.RoleDistrictMagistrate)
	add("Block One", authority.RoleBlockOfficer)
	add("Block Two", authority.RoleBlockOfficer)
	add("Worker One", authority.RoleFieldWorker)
}

func TestParentSeederAssignsByRoleHierarchy(t *testing.T) {
	ctx := context.Background()
	authorities := &memAuthorities{}
	seedHierarchy(t, authorities)

	s := NewParentSeeder(authorities, rand.New(rand.NewSource(1)), testLogger())
	stats, err := s.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Failed)

	byRole := func(role string) []*authority.Authority {
		out, err := authorities.FindByRole(ctx, role)
		require.NoError(t, err)
		return out
	}
	roleOf := map[uuid.UUID]string{}
	for _, a := range authorities.items {
		roleOf[a.ID] = a.Role
	}

	// Root has no parent.
	root := byRole(authority.RoleAdministrator)[0]
	assert.Nil(t, root.ParentID)

	// Every non-root holder points at an authority holding its designated
	// parent role.
	expected := map[string]string{}
	for _, rel := range authority.RoleRelationships {
		expected[rel.Role] = rel.ParentRole
	}
	for _, a := range authorities.items {
		parentRole := expected[a.Role]
		if parentRole == "" {
			continue
		}
		if len(byRole(parentRole)) == 0 {
			assert.Nil(t, a.ParentID, "%s has no candidate parents", a.Name)
			continue
		}
		require.NotNil(t, a.ParentID, "%s should have a parent", a.Name)
		assert.Equal(t, parentRole, roleOf[*a.ParentID], "%s parent role", a.Name)
	}
}

func TestParentSeederNoCycles(t *testing.T) {
	ctx := context.Background()
	authorities := &memAuthorities{}
	seedHierarchy(t, authorities)

	s := NewParentSeeder(authorities, rand.New(rand.NewSource(7)), testLogger())
	_, err := s.Run(ctx)
	require.NoError(t, err)

	byID := map[uuid.UUID]*authority.Authority{}
	for _, a := range authorities.items {
		byID[a.ID] = a
	}
	for _, a := range authorities.items {
		seen := map[uuid.UUID]bool{a.ID: true}
		cur := a
		for cur.ParentID != nil {
			next := byID[*cur.ParentID]
			require.NotNil(t, next)
			require.False(t, seen[next.ID], "cycle through %s", next.Name)
			seen[next.ID] = true
			cur = next
		}
	}
}

func TestParentSeederReproducible(t *testing.T) {
	ctx := context.Background()

	run := func() map[string]string {
		authorities := &memAuthorities{}
		seedHierarchy(t, authorities)
		s := NewParentSeeder(authorities, rand.New(rand.NewSource(42)), testLogger())
		_, err := s.Run(ctx)
		require.NoError(t, err)

		nameOf := map[uuid.UUID]string{}
		for _, a := range authorities.items {
			nameOf[a.ID] = a.Name
		}
		out := map[string]string{}
		for _, a := range authorities.items {
			if a.ParentID != nil {
				out[a.Name] = nameOf[*a.ParentID]
			}
		}
		return out
	}

	assert.Equal(t, run(), run())
}

func TestParentSeederSkipsWhenNoCandidates(t *testing.T) {
	ctx := context.Background()
	authorities := &memAuthorities{}
	// Field workers exist but no block officers do.
	_, err := authorities.Upsert(ctx, &authority.Authority{
		Name:  "Worker One",
		Email: authority.DeriveEmail("Worker One", authority.LevelOperational, authority.RoleFieldWorker),
		Role:  authority.RoleFieldWorker,
		Level: authority.LevelOperational,
	})
	require.NoError(t, err)

	s := NewParentSeeder(authorities, rand.New(rand.NewSource(1)), testLogger())
	stats, err := s.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Skipped)
	assert.Nil(t, authorities.items[0].ParentID)
}
