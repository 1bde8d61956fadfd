package seed

import (
	"context"
	"fmt"
	"math/rand"
	"path/filepath"

	"github.com/go-faster/errors"
	"github.com/sirupsen/logrus"

	"github.com/vinit-solanki/BhashniHackathon-MHGRS/modules/redressal/domain/authority"
	"github.com/vinit-solanki/BhashniHackathon-MHGRS/modules/redressal/domain/department"
	"github.com/vinit-solanki/BhashniHackathon-MHGRS/modules/redressal/infrastructure/persistence"
)

// DepartmentSeeder creates one department per distinct departmentAssigned
// value in the grievance dataset. Each department is linked to the
// DEPARTMENT_HEAD authority whose jurisdiction matches the department name;
// departments without a matching head are created unowned.
type DepartmentSeeder struct {
	departments department.Repository
	authorities authority.Repository
	rnd         *rand.Rand
	dataDir     string
	logger      logrus.FieldLogger
}

func NewDepartmentSeeder(
	departments department.Repository,
	authorities authority.Repository,
	rnd *rand.Rand,
	dataDir string,
	logger logrus.FieldLogger,
) *DepartmentSeeder {
	return &DepartmentSeeder{
		departments: departments,
		authorities: authorities,
		rnd:         rnd,
		dataDir:     dataDir,
		logger:      logger,
	}
}

func (s *DepartmentSeeder) Run(ctx context.Context) (Stats, error) {
	var stats Stats

	records, err := ReadRecords(filepath.Join(s.dataDir, grievanceCSV))
	if err != nil {
		return stats, err
	}

	heads, err := s.authorities.FindByRole(ctx, authority.RoleDepartmentHead)
	if err != nil {
		return stats, err
	}
	headByJurisdiction := make(map[string]*authority.Authority, len(heads))
	for _, h := range heads {
		if h.Jurisdiction != "" {
			headByJurisdiction[h.Jurisdiction] = h
		}
	}

	seen := map[string]bool{}
	for _, rec := range records {
		name := cleanNull(rec.Get("departmentAssigned"))
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		if _, err := s.departments.GetByName(ctx, name); err == nil {
			stats.Skipped++
			continue
		} else if !errors.Is(err, persistence.ErrDepartmentNotFound) {
			return stats, err
		}

		d := &department.Department{
			Name:           name,
			Description:    "Department of " + name,
			HierarchyLevel: "MID",
			ResourceID:     fmt.Sprintf("%d", s.rnd.Intn(1000)),
		}
		if head, ok := headByJurisdiction[name]; ok {
			d.AuthorityID = &head.ID
			s.logger.Infof("Linking department %s to head %s", name, head.Name)
		}

		created, err := s.departments.Create(ctx, d)
		if err != nil {
			s.logger.WithError(err).Errorf("Failed to create department %s", name)
			stats.Failed++
			continue
		}
		stats.Created++
		s.logger.Infof("Created department %s (%s)", created.Name, created.ID)
	}

	s.logger.Infof("Seeded %d departments (%d existing, %d failed)", stats.Created, stats.Skipped, stats.Failed)
	return stats, nil
}
