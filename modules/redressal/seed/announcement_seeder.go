package seed

import (
	"context"
	"math/rand"
	"path/filepath"

	"github.com/go-faster/errors"
	"github.com/sirupsen/logrus"

	"github.com/vinit-solanki/BhashniHackathon-MHGRS/modules/redressal/domain/authority"
	"github.com/vinit-solanki/BhashniHackathon-MHGRS/modules/redressal/domain/department"
	"github.com/vinit-solanki/BhashniHackathon-MHGRS/modules/redressal/domain/messaging"
	"github.com/vinit-solanki/BhashniHackathon-MHGRS/modules/redressal/infrastructure/persistence"
)

const announcementsCSV = "Announcements.csv"

var audienceRoles = []string{
	"DISTRICT_MAGISTRATE", "COMMISSIONER", "ADMINISTRATOR", "DEPARTMENT_HEAD",
	"NAGAR_SEVAK", "CITIZEN", "DEPARTMENT_OFFICER", "PANCHAYAT_OFFICER",
	"FIELD_WORKER", "BLOCK_OFFICER",
}

// AnnouncementSeeder ingests Announcements.csv. Each announcement is
// attributed to the first authority on record and targeted at a random
// subset of at least two audience roles.
type AnnouncementSeeder struct {
	announcements messaging.AnnouncementRepository
	authorities   authority.Repository
	departments   department.Repository
	rnd           *rand.Rand
	dataDir       string
	logger        logrus.FieldLogger
}

func NewAnnouncementSeeder(
	announcements messaging.AnnouncementRepository,
	authorities authority.Repository,
	departments department.Repository,
	rnd *rand.Rand,
	dataDir string,
	logger logrus.FieldLogger,
) *AnnouncementSeeder {
	return &AnnouncementSeeder{
		announcements: announcements,
		authorities:   authorities,
		departments:   departments,
		rnd:           rnd,
		dataDir:       dataDir,
		logger:        logger,
	}
}

func (s *AnnouncementSeeder) Run(ctx context.Context) (Stats, error) {
	var stats Stats

	auth, err := s.authorities.First(ctx)
	if err != nil {
		if errors.Is(err, persistence.ErrAuthorityNotFound) {
			return stats, ErrNoAuthority
		}
		return stats, err
	}

	dept, err := s.departments.First(ctx)
	if err != nil && !errors.Is(err, persistence.ErrDepartmentNotFound) {
		return stats, err
	}

	records, err := ReadRecords(filepath.Join(s.dataDir, announcementsCSV))
	if err != nil {
		return stats, err
	}

	for _, rec := range records {
		title := cleanNull(rec.Get("title"))
		description := cleanNull(rec.Get("description"))
		if title == "" || description == "" {
			s.logger.Warnf("Skipping announcement row %d with missing title or description", rec.Line)
			stats.Skipped++
			continue
		}

		a := &messaging.Announcement{
			Title:            title,
			Description:      description,
			AnnounceForRoles: s.randomRoles(),
			Channels:         []string{},
			Attachments:      []string{},
			CitizenReactions: fallback(cleanNull(rec.Get("citizenReactions")), "{}"),
			Comments:         fallback(cleanNull(rec.Get("comments")), "[]"),
			AuthorityID:      auth.ID,
		}
		if dept != nil {
			a.DepartmentID = &dept.ID
		}

		if _, err := s.announcements.Create(ctx, a); err != nil {
			s.logger.WithError(err).Errorf("Failed to insert announcement %q (line %d)", title, rec.Line)
			stats.Failed++
			continue
		}
		stats.Created++
		s.logger.Infof("Created announcement: %s", title)
	}

	s.logger.Infof("Seeded %d announcements (%d skipped, %d failed)", stats.Created, stats.Skipped, stats.Failed)
	return stats, nil
}

// randomRoles returns a shuffled subset of the audience roles, never fewer
// than two.
func (s *AnnouncementSeeder) randomRoles() []string {
	roles := make([]string, len(audienceRoles))
	copy(roles, audienceRoles)
	s.rnd.Shuffle(len(roles), func(i, j int) {
		roles[i], roles[j] = roles[j], roles[i]
	})
	n := 2 + s.rnd.Intn(len(roles)-1)
	if n > len(roles) {
		n = len(roles)
	}
	return roles[:n]
}
