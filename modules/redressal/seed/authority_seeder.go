package seed

import (
	"context"
	"path/filepath"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/vinit-solanki/BhashniHackathon-MHGRS/modules/redressal/domain/authority"
	"github.com/vinit-solanki/BhashniHackathon-MHGRS/modules/redressal/domain/department"
	"github.com/vinit-solanki/BhashniHackathon-MHGRS/modules/redressal/infrastructure/persistence"
)

const authorityCSV = "Authority_Merged.csv"

// AuthoritySeeder ingests the merged authority dataset in two passes:
// the first upserts base rows keyed by derived email, the second connects
// parent and department references by natural key. Relationship targets may
// not exist during the first pass, hence the split.
type AuthoritySeeder struct {
	authorities authority.Repository
	departments department.Repository
	dataDir     string
	logger      logrus.FieldLogger
}

func NewAuthoritySeeder(
	authorities authority.Repository,
	departments department.Repository,
	dataDir string,
	logger logrus.FieldLogger,
) *AuthoritySeeder {
	return &AuthoritySeeder{
		authorities: authorities,
		departments: departments,
		dataDir:     dataDir,
		logger:      logger,
	}
}

func (s *AuthoritySeeder) Run(ctx context.Context) (Stats, error) {
	var stats Stats

	records, err := ReadRecords(filepath.Join(s.dataDir, authorityCSV))
	if err != nil {
		return stats, err
	}
	s.logger.Infof("Found %d authority records to process", len(records))

	// First pass: base rows, no relationships.
	for _, rec := range records {
		name := cleanNull(rec.Get("name"))
		if name == "" {
			s.logger.Warnf("Line %d: skipping authority without a name", rec.Line)
			stats.Skipped++
			continue
		}
		level := MapAuthorityLevel(rec.Get("level"))
		role := cleanNull(rec.Get("role"))
		email := authority.DeriveEmail(name, level, role)

		existing, err := s.authorities.GetByEmail(ctx, email)
		if err != nil && !errors.Is(err, persistence.ErrAuthorityNotFound) {
			return stats, err
		}

		a := &authority.Authority{
			SourceID:          cleanNull(rec.Get("id")),
			Name:              name,
			Email:             email,
			Role:              role,
			Level:             level,
			IsActive:          parseBool(rec.Get("isActive")),
			AssignedRegion:    cleanNull(rec.Get("assignedRegion")),
			Jurisdiction:      cleanNull(rec.Get("jurisdiction")),
			Designation:       cleanNull(rec.Get("designation")),
			ContactNumber:     cleanNull(rec.Get("contactNumber")),
			OfficeAddress:     cleanNull(rec.Get("officeAddress")),
			BlockJurisdiction: cleanNull(rec.Get("blockJurisdiction")),
			PanchayatArea:     cleanNull(rec.Get("panchayatArea")),
			WardNumber:        cleanNull(rec.Get("wardNumber")),
			Specialization:    cleanNull(rec.Get("specialization")),
			FieldArea:         cleanNull(rec.Get("fieldArea")),
			GramSabhaArea:     cleanNull(rec.Get("gramSabhaArea")),
			VillageCount:      parseIntField(rec.Get("villageCount")),
			PanchayatDetails:  cleanNull(rec.Get("panchayatDetails")),
			PanchayatWorkers:  cleanNull(rec.Get("panchayatWorkers")),
			PanchayatOfficers: cleanNull(rec.Get("panchayatOfficers")),
		}

		if _, err := s.authorities.Upsert(ctx, a); err != nil {
			s.logger.WithError(err).Errorf("Line %d: failed to upsert authority %s", rec.Line, email)
			stats.Failed++
			continue
		}
		if existing != nil {
			stats.Updated++
		} else {
			stats.Created++
		}
		s.logger.Infof("Processed authority %s (%s)", name, email)
	}

	// Second pass: relationships, resolved by natural key.
	for _, rec := range records {
		name := cleanNull(rec.Get("name"))
		if name == "" {
			continue
		}
		parentRef := cleanNull(rec.Get("parentId"))
		departmentRef := cleanNull(rec.Get("departmentId"))
		if parentRef == "" && departmentRef == "" {
			continue
		}

		email := authority.DeriveEmail(name, MapAuthorityLevel(rec.Get("level")), cleanNull(rec.Get("role")))
		self, err := s.authorities.GetByEmail(ctx, email)
		if err != nil {
			s.logger.WithError(err).Errorf("Line %d: failed to load authority %s for relationship pass", rec.Line, email)
			stats.Failed++
			continue
		}

		var parentID, departmentID *uuid.UUID
		if parentRef != "" {
			parent, err := s.authorities.GetBySourceID(ctx, parentRef)
			if err == nil {
				parentID = &parent.ID
			} else if !errors.Is(err, persistence.ErrAuthorityNotFound) {
				return stats, err
			}
		}
		if departmentRef != "" {
			dept, err := s.departments.GetByName(ctx, departmentRef)
			if err == nil {
				departmentID = &dept.ID
			} else if !errors.Is(err, persistence.ErrDepartmentNotFound) {
				return stats, err
			}
		}
		if parentID == nil && departmentID == nil {
			continue
		}

		if err := s.authorities.SetRelations(ctx, self.ID, parentID, departmentID); err != nil {
			s.logger.WithError(err).Errorf("Line %d: failed to update relationships for %s", rec.Line, email)
			stats.Failed++
		}
	}

	s.logger.Info("Authority seeding completed")
	return stats, nil
}
