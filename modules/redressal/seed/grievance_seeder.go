package seed

import (
	"context"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/vinit-solanki/BhashniHackathon-MHGRS/modules/redressal/domain/grievance"
)

const grievanceCSV = "combined_data.csv"

// TxRunner wraps one row's multi-entity write so a failing grievance insert
// never leaves a half-created user or location behind.
type TxRunner func(ctx context.Context, fn func(context.Context) error) error

// Passthrough is a TxRunner without transactional semantics, for stores that
// do not need them.
func Passthrough(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

// GrievanceSeeder ingests combined_data.csv. Each row resolves its
// department, user and location before the grievance insert; a row whose
// references cannot be resolved is logged and skipped, never inserted
// dangling.
type GrievanceSeeder struct {
	resolver   *Resolver
	grievances grievance.Repository
	inTx       TxRunner
	dataDir    string
	logger     logrus.FieldLogger
}

func NewGrievanceSeeder(
	resolver *Resolver,
	grievances grievance.Repository,
	inTx TxRunner,
	dataDir string,
	logger logrus.FieldLogger,
) *GrievanceSeeder {
	return &GrievanceSeeder{
		resolver:   resolver,
		grievances: grievances,
		inTx:       inTx,
		dataDir:    dataDir,
		logger:     logger,
	}
}

func (s *GrievanceSeeder) Run(ctx context.Context) (Stats, error) {
	var stats Stats

	records, err := ReadRecords(filepath.Join(s.dataDir, grievanceCSV))
	if err != nil {
		return stats, err
	}
	s.logger.Infof("Starting migration of %d grievance records", len(records))

	for _, rec := range records {
		if err := s.inTx(ctx, func(txCtx context.Context) error {
			return s.processRow(txCtx, rec)
		}); err != nil {
			s.logger.WithError(err).WithFields(logrus.Fields{
				"line":     rec.Line,
				"email":    rec.Get("email"),
				"location": rec.Get("location"),
			}).Error("Failed to process grievance row")
			stats.Failed++
			continue
		}
		stats.Created++
		if stats.Created%10 == 0 {
			s.logger.Infof("Processed %d records successfully", stats.Created)
		}
	}

	s.logger.Infof("Migration completed: %d succeeded, %d failed", stats.Created, stats.Failed)
	return stats, nil
}

func (s *GrievanceSeeder) processRow(ctx context.Context, rec Record) error {
	dept, err := s.resolver.ResolveDepartment(ctx, rec.Get("departmentAssigned"))
	if err != nil {
		return err
	}
	usr, err := s.resolver.ResolveUser(ctx, rec)
	if err != nil {
		return err
	}
	loc, err := s.resolver.ResolveLocation(ctx, rec)
	if err != nil {
		return err
	}

	title := cleanNull(rec.Get("title"))
	if title == "" {
		title = GenerateTitle(rec)
	}

	submission := parseDateField(rec.Get("submissionDate"))
	if submission == nil {
		submission = parseDateField(rec.Get("date"))
	}
	if submission == nil {
		submission = parseDateField(rec.Get("CreatedAt"))
	}
	lastUpdated := parseDateField(rec.Get("lastUpdatedDate"))
	if lastUpdated == nil {
		lastUpdated = parseDateField(rec.Get("updatedAt"))
	}

	g := &grievance.Grievance{
		Title:               title,
		Complaint:           cleanNull(rec.Get("complaint")),
		ComplaintType:       fallback(cleanNull(rec.Get("complaintType")), "General"),
		Category:            fallback(cleanNull(rec.Get("category")), "General"),
		Subcategory:         fallback(cleanNull(rec.Get("subcategory")), "General"),
		Status:              MapStatus(rec.Get("status")),
		UrgencyLevel:        MapUrgencyLevel(rec.Get("urgencyLevel")),
		PriorityLevel:       MapPriorityLevel(rec.Get("priorityLevel")),
		IsAnonymous:         parseBool(rec.Get("isAnonymous")),
		CurrentLevel:        "INITIAL",
		EconomicImpact:      cleanNull(rec.Get("economicImpact")),
		SocialImpact:        cleanNull(rec.Get("socialImpact")),
		EnvironmentalImpact: cleanNull(rec.Get("environmentalImpact")),
		Emotion:             cleanNull(rec.Get("emotion")),
		RelatedPolicies:     cleanNull(rec.Get("relatedPolicies")),
		ResolutionDays:      parseIntField(rec.Get("ResolutionTime")),
		DepartmentID:        dept.ID,
		UserID:              usr.ID,
		LocationID:          loc.ID,
		SubmissionDate:      submission,
		LastUpdatedDate:     lastUpdated,
	}

	created, err := s.grievances.Create(ctx, g)
	if err != nil {
		return err
	}
	s.logger.Infof("Created grievance %q for %s in %s", created.Title, usr.Name, loc.Name)
	return nil
}

func fallback(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
