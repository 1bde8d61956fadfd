package seed

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/sirupsen/logrus"

	"github.com/vinit-solanki/BhashniHackathon-MHGRS/modules/redressal/domain/authority"
	"github.com/vinit-solanki/BhashniHackathon-MHGRS/modules/redressal/domain/department"
)

// ErrNoDepartments aborts staffing and messaging stages when no department
// rows exist yet.
var ErrNoDepartments = errors.New("no departments found; seed authorities first")

// Stats accumulates per-row outcomes of a pipeline stage.
type Stats struct {
	Created int
	Updated int
	Skipped int
	Failed  int
}

func (s Stats) Add(o Stats) Stats {
	return Stats{
		Created: s.Created + o.Created,
		Updated: s.Updated + o.Updated,
		Skipped: s.Skipped + o.Skipped,
		Failed:  s.Failed + o.Failed,
	}
}

// Stage is one dependency-ordered step of the seeding pipeline. Prereq runs
// before the stage; a prereq failure is fatal for the whole run, unlike
// row-level errors, which the stage counts and skips past.
type Stage struct {
	Name   string
	Prereq func(ctx context.Context) error
	Run    func(ctx context.Context) (Stats, error)
}

// Runner executes stages in order. Rows are processed one at a time to
// completion; resolution of a not-yet-existing natural key must never race
// with itself, so no parallel row processing.
type Runner struct {
	logger logrus.FieldLogger
	stages []Stage
}

func NewRunner(logger logrus.FieldLogger, stages ...Stage) *Runner {
	return &Runner{logger: logger, stages: stages}
}

func (r *Runner) Run(ctx context.Context) (Stats, error) {
	var total Stats
	for _, stage := range r.stages {
		if stage.Prereq != nil {
			if err := stage.Prereq(ctx); err != nil {
				return total, errors.Wrapf(err, "stage %s: prerequisite not met", stage.Name)
			}
		}
		r.logger.Infof("Running stage %s", stage.Name)
		stats, err := stage.Run(ctx)
		total = total.Add(stats)
		if err != nil {
			return total, errors.Wrapf(err, "stage %s", stage.Name)
		}
		r.logger.Infof(
			"Stage %s completed: created=%d updated=%d skipped=%d failed=%d",
			stage.Name, stats.Created, stats.Updated, stats.Skipped, stats.Failed,
		)
	}
	return total, nil
}

// RequireAuthorities is the prereq for stages that attach records to the
// authority hierarchy.
func RequireAuthorities(repo authority.Repository) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		n, err := repo.Count(ctx)
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrNoAuthority
		}
		return nil
	}
}

// RequireDepartments is the prereq for staffing and messaging stages.
func RequireDepartments(repo department.Repository) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		n, err := repo.Count(ctx)
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrNoDepartments
		}
		return nil
	}
}
