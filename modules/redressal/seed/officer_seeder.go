package seed

import (
	"context"
	"math/rand"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/vinit-solanki/BhashniHackathon-MHGRS/modules/redressal/domain/department"
	"github.com/vinit-solanki/BhashniHackathon-MHGRS/modules/redressal/domain/staffing"
)

const officersCSV = "departmentofficers.csv"

var officerRanks = []string{
	"Junior Officer",
	"Senior Officer",
	"Deputy Officer",
	"Assistant Officer",
	"Chief Officer",
	"Principal Officer",
	"Associate Officer",
	"Executive Officer",
	"Head Officer",
	"Technical Officer",
}

var officerQualifications = []string{
	"BTech", "MTech", "PhD", "MSc", "MBA",
	"BBA", "MCA", "MA Public Administration",
	"MSc Environmental Science", "BTech Civil",
	"MTech Environmental", "BSc", "MSc Urban Planning",
}

var officerSpecializations = []string{
	"Civil Engineering",
	"Environmental Engineering",
	"Urban Planning",
	"Public Administration",
	"Infrastructure Management",
	"Water Resources",
	"Transportation",
	"Waste Management",
	"Rural Development",
	"Urban Development",
	"Public Health",
	"Smart City Planning",
	"Disaster Management",
	"Environmental Impact Assessment",
	"Geographic Information Systems",
}

// OfficerSeeder generates ranked officers across all departments up to the
// configured target, guaranteeing every department at least two. Real rows
// from departmentofficers.csv contribute qualification and specialization
// values to the generated records.
type OfficerSeeder struct {
	officers    staffing.OfficerRepository
	departments department.Repository
	rnd         *rand.Rand
	dataDir     string
	target      int
	logger      logrus.FieldLogger
}

func NewOfficerSeeder(
	officers staffing.OfficerRepository,
	departments department.Repository,
	rnd *rand.Rand,
	dataDir string,
	target int,
	logger logrus.FieldLogger,
) *OfficerSeeder {
	return &OfficerSeeder{
		officers:    officers,
		departments: departments,
		rnd:         rnd,
		dataDir:     dataDir,
		target:      target,
		logger:      logger,
	}
}

func (s *OfficerSeeder) Run(ctx context.Context) (Stats, error) {
	var stats Stats

	departments, err := s.departments.All(ctx)
	if err != nil {
		return stats, err
	}
	if len(departments) == 0 {
		return stats, ErrNoDepartments
	}

	pool, err := loadRoster(s.dataDir)
	if err != nil {
		return stats, err
	}
	existing, err := ReadRecords(filepath.Join(s.dataDir, officersCSV))
	if err != nil {
		return stats, err
	}

	perDepartment := s.target / len(departments)
	if s.target%len(departments) != 0 {
		perDepartment++
	}
	if perDepartment < 2 {
		perDepartment = 2
	}
	s.logger.Infof("Creating %d officers across %d departments", s.target, len(departments))

	total := 0
	for _, dept := range departments {
		ranks := s.shuffledRanks()
		if len(ranks) > perDepartment {
			ranks = ranks[:perDepartment]
		}
		for _, rank := range ranks {
			o := s.generateOfficer(pool, existing, dept.ID, rank)
			if _, err := s.officers.Create(ctx, o); err != nil {
				s.logger.WithError(err).Errorf(
					"Failed to insert officer %q for department %s", o.Name, dept.Name,
				)
				stats.Failed++
			} else {
				stats.Created++
			}
			total++
			if total >= s.target {
				break
			}
		}
		if total >= s.target {
			break
		}
	}

	s.logger.Infof("Seeded %d department officers (%d failed)", stats.Created, stats.Failed)
	return stats, nil
}

func (s *OfficerSeeder) shuffledRanks() []string {
	ranks := make([]string, len(officerRanks))
	copy(ranks, officerRanks)
	s.rnd.Shuffle(len(ranks), func(i, j int) {
		ranks[i], ranks[j] = ranks[j], ranks[i]
	})
	return ranks
}

func (s *OfficerSeeder) generateOfficer(
	pool *roster,
	existing []Record,
	departmentID uuid.UUID,
	rank string,
) *staffing.Officer {
	name := pool.randomName(s.rnd)

	// Senior ranks skew older.
	baseAge, ageRange := 25, 35
	if strings.Contains(rank, "Senior") || strings.Contains(rank, "Chief") {
		baseAge, ageRange = 35, 25
	}

	gender := "Male"
	if s.rnd.Float64() > 0.7 {
		gender = "Female"
	}

	qualification := officerQualifications[s.rnd.Intn(len(officerQualifications))]
	specialization := officerSpecializations[s.rnd.Intn(len(officerSpecializations))]
	if len(existing) > 0 {
		sample := existing[s.rnd.Intn(len(existing))]
		if v := cleanNull(sample.Get("qualification")); v != "" {
			qualification = v
		}
		if v := cleanNull(sample.Get("specialization")); v != "" {
			specialization = v
		}
	}

	return &staffing.Officer{
		Name:           name,
		Email:          syntheticEmail(name, s.rnd),
		Age:            baseAge + s.rnd.Intn(ageRange),
		Gender:         gender,
		Address:        pool.randomAddress(s.rnd),
		Rank:           rank,
		DateAssigned:   randomDate(s.rnd, 2018, 7),
		ContactNumber:  syntheticContact(s.rnd),
		AadharNumber:   syntheticAadhar(s.rnd),
		Qualification:  qualification,
		Specialization: specialization,
		DepartmentID:   departmentID,
	}
}
