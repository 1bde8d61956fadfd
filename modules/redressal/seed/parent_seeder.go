package seed

import (
	"context"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/vinit-solanki/BhashniHackathon-MHGRS/modules/redressal/domain/authority"
)

// ParentSeeder rewrites parent links across the authority hierarchy using
// the fixed role-relationship table. For each role tier it picks one parent
// uniform-randomly among authorities holding the parent role.
//
// This is a synthetic-data policy for demo volume, not relationship
// resolution: CSV-declared parents are handled deterministically by
// AuthoritySeeder's second pass. The RNG is injected so runs are
// reproducible under a fixed seed.
type ParentSeeder struct {
	authorities authority.Repository
	rng         *rand.Rand
	logger      logrus.FieldLogger
}

func NewParentSeeder(authorities authority.Repository, rng *rand.Rand, logger logrus.FieldLogger) *ParentSeeder {
	return &ParentSeeder{authorities: authorities, rng: rng, logger: logger}
}

func (s *ParentSeeder) Run(ctx context.Context) (Stats, error) {
	var stats Stats

	for _, rel := range authority.RoleRelationships {
		holders, err := s.authorities.FindByRole(ctx, rel.Role)
		if err != nil {
			return stats, err
		}

		if rel.ParentRole == "" {
			for _, a := range holders {
				if err := s.authorities.SetParent(ctx, a.ID, nil); err != nil {
					s.logger.WithError(err).Errorf("Failed to clear parent for %s", a.Name)
					stats.Failed++
					continue
				}
				stats.Updated++
			}
			continue
		}

		candidates, err := s.authorities.FindByRole(ctx, rel.ParentRole)
		if err != nil {
			return stats, err
		}
		if len(candidates) == 0 {
			s.logger.Warnf("No %s found for %s; leaving parents unset", rel.ParentRole, rel.Role)
			stats.Skipped += len(holders)
			continue
		}

		parent := candidates[s.rng.Intn(len(candidates))]
		s.logger.Infof(
			"Assigning parent %s (%s) to %d %s authorities",
			parent.Name, rel.ParentRole, len(holders), rel.Role,
		)
		for _, a := range holders {
			if err := s.authorities.SetParent(ctx, a.ID, &parent.ID); err != nil {
				s.logger.WithError(err).Errorf("Failed to set parent for %s", a.Name)
				stats.Failed++
				continue
			}
			stats.Updated++
		}
	}

	s.logger.Info("Parent assignment completed")
	return stats, nil
}
