package seed

import (
	"context"
	"math/rand"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/vinit-solanki/BhashniHackathon-MHGRS/modules/redressal/domain/department"
	"github.com/vinit-solanki/BhashniHackathon-MHGRS/modules/redressal/domain/staffing"
)

const workersCSV = "workers.csv"

var workerPositions = []string{"first", "second", "third"}

// WorkerSeeder loads the real worker roster from workers.csv and then
// generates synthetic workers from the name and address pools until the
// configured target headcount is reached. Every worker lands in a randomly
// chosen existing department.
type WorkerSeeder struct {
	workers     staffing.WorkerRepository
	departments department.Repository
	rnd         *rand.Rand
	dataDir     string
	target      int
	logger      logrus.FieldLogger
}

func NewWorkerSeeder(
	workers staffing.WorkerRepository,
	departments department.Repository,
	rnd *rand.Rand,
	dataDir string,
	target int,
	logger logrus.FieldLogger,
) *WorkerSeeder {
	return &WorkerSeeder{
		workers:     workers,
		departments: departments,
		rnd:         rnd,
		dataDir:     dataDir,
		target:      target,
		logger:      logger,
	}
}

func (s *WorkerSeeder) Run(ctx context.Context) (Stats, error) {
	var stats Stats

	deptIDs, err := s.departments.IDs(ctx)
	if err != nil {
		return stats, err
	}
	if len(deptIDs) == 0 {
		return stats, ErrNoDepartments
	}

	records, err := ReadRecords(filepath.Join(s.dataDir, workersCSV))
	if err != nil {
		return stats, err
	}

	for _, rec := range records {
		w := s.workerFromRecord(rec, deptIDs)
		if w.Name == "" {
			s.logger.Warnf("Skipping nameless worker row at line %d", rec.Line)
			stats.Skipped++
			continue
		}
		if _, err := s.workers.Create(ctx, w); err != nil {
			s.logger.WithError(err).Errorf("Failed to insert worker %q (line %d)", w.Name, rec.Line)
			stats.Failed++
			continue
		}
		stats.Created++
	}

	remaining := s.target - stats.Created
	if remaining <= 0 {
		s.logger.Infof("Worker roster already holds %d records, nothing to generate", stats.Created)
		return stats, nil
	}

	pool, err := loadRoster(s.dataDir)
	if err != nil {
		return stats, err
	}
	s.logger.Infof("Generating %d synthetic workers", remaining)
	for i := 0; i < remaining; i++ {
		w := s.generateWorker(pool, deptIDs)
		if _, err := s.workers.Create(ctx, w); err != nil {
			s.logger.WithError(err).Errorf("Failed to insert generated worker %q", w.Name)
			stats.Failed++
			continue
		}
		stats.Created++
	}

	s.logger.Infof("Seeded %d workers (%d skipped, %d failed)", stats.Created, stats.Skipped, stats.Failed)
	return stats, nil
}

func (s *WorkerSeeder) workerFromRecord(rec Record, deptIDs []uuid.UUID) *staffing.Worker {
	age := 0
	if v := parseIntField(rec.Get("age")); v != nil {
		age = *v
	}
	joined := randomDate(s.rnd, 2020, 3)
	if v := parseDateField(rec.Get("date_joined")); v != nil {
		joined = *v
	}
	return &staffing.Worker{
		Name:             cleanNull(rec.Get("name")),
		Email:            cleanNull(rec.Get("email")),
		Age:              age,
		Gender:           cleanNull(rec.Get("gender")),
		Address:          cleanNull(rec.Get("address")),
		Position:         cleanNull(rec.Get("position")),
		DateJoined:       joined,
		ContactNumber:    cleanNull(rec.Get("contact_number")),
		EmergencyContact: cleanNull(rec.Get("emergency_contact")),
		BloodGroup:       cleanNull(rec.Get("blood_group")),
		AadharNumber:     cleanNull(rec.Get("aadhar_number")),
		DepartmentID:     deptIDs[s.rnd.Intn(len(deptIDs))],
	}
}

func (s *WorkerSeeder) generateWorker(pool *roster, deptIDs []uuid.UUID) *staffing.Worker {
	name := pool.randomName(s.rnd)
	gender := "Male"
	if s.rnd.Float64() >= 0.8 {
		gender = "Female"
	}
	return &staffing.Worker{
		Name:          name,
		Email:         syntheticEmail(name, s.rnd),
		Age:           20 + s.rnd.Intn(40),
		Gender:        gender,
		Address:       pool.randomAddress(s.rnd),
		Position:      workerPositions[s.rnd.Intn(len(workerPositions))],
		DateJoined:    randomDate(s.rnd, 2020, 3),
		ContactNumber: syntheticContact(s.rnd),
		AadharNumber:  syntheticAadhar(s.rnd),
		DepartmentID:  deptIDs[s.rnd.Intn(len(deptIDs))],
	}
}
