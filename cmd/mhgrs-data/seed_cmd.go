package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"math/rand"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vinit-solanki/BhashniHackathon-MHGRS/modules/redressal/infrastructure/persistence"
	"github.com/vinit-solanki/BhashniHackathon-MHGRS/modules/redressal/seed"
	"github.com/vinit-solanki/BhashniHackathon-MHGRS/pkg/composables"
	"github.com/vinit-solanki/BhashniHackathon-MHGRS/pkg/configuration"
)

type seedOptions struct {
	dataDir       string
	randomSeed    int64
	workerTarget  int
	officerTarget int
}

// Stage order matters: every later dataset references rows the earlier ones
// create.
var datasetOrder = []string{
	"authorities",
	"parents",
	"departments",
	"grievances",
	"workers",
	"officers",
	"announcements",
	"communications",
}

func newSeedCmd() *cobra.Command {
	conf := configuration.Use()
	var opts seedOptions

	cmd := &cobra.Command{
		Use:   "seed [dataset...]",
		Short: "Seed the database from the CSV data directory",
		Long: "Runs the named seed datasets in dependency order. " +
			"Datasets: " + strings.Join(datasetOrder, ", ") + ", or \"all\".",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd.Context(), opts, args)
		},
	}
	cmd.Flags().StringVar(&opts.dataDir, "data", conf.Seed.DataDir, "directory holding the CSV sources")
	cmd.Flags().Int64Var(&opts.randomSeed, "seed", conf.Seed.RandomSeed, "RNG seed for synthetic data")
	cmd.Flags().IntVar(&opts.workerTarget, "workers", conf.Seed.WorkerTarget, "target worker headcount")
	cmd.Flags().IntVar(&opts.officerTarget, "officers", conf.Seed.OfficerTarget, "target officer headcount")
	return cmd
}

func runSeed(ctx context.Context, opts seedOptions, datasets []string) error {
	selected, err := selectDatasets(datasets)
	if err != nil {
		return err
	}

	conf := configuration.Use()
	logger := conf.Logger()

	pool, err := connectDB(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()
	ctx = composables.WithPool(ctx, pool)

	users := persistence.NewUserRepository()
	locations := persistence.NewLocationRepository()
	departments := persistence.NewDepartmentRepository()
	authorities := persistence.NewAuthorityRepository()
	grievances := persistence.NewGrievanceRepository()
	workers := persistence.NewWorkerRepository()
	officers := persistence.NewOfficerRepository()
	announcements := persistence.NewAnnouncementRepository()
	communications := persistence.NewCommunicationRepository()

	resolver := seed.NewResolver(users, locations, departments, authorities, logger)
	rnd := rand.New(rand.NewSource(opts.randomSeed))

	stages := map[string]seed.Stage{
		"authorities": {
			Name: "authorities",
			Run:  seed.NewAuthoritySeeder(authorities, departments, opts.dataDir, logger).Run,
		},
		"parents": {
			Name:   "parents",
			Prereq: seed.RequireAuthorities(authorities),
			Run:    seed.NewParentSeeder(authorities, rnd, logger).Run,
		},
		"departments": {
			Name:   "departments",
			Prereq: seed.RequireAuthorities(authorities),
			Run:    seed.NewDepartmentSeeder(departments, authorities, rnd, opts.dataDir, logger).Run,
		},
		"grievances": {
			Name:   "grievances",
			Prereq: seed.RequireAuthorities(authorities),
			Run:    seed.NewGrievanceSeeder(resolver, grievances, composables.InTx, opts.dataDir, logger).Run,
		},
		"workers": {
			Name:   "workers",
			Prereq: seed.RequireDepartments(departments),
			Run:    seed.NewWorkerSeeder(workers, departments, rnd, opts.dataDir, opts.workerTarget, logger).Run,
		},
		"officers": {
			Name:   "officers",
			Prereq: seed.RequireDepartments(departments),
			Run:    seed.NewOfficerSeeder(officers, departments, rnd, opts.dataDir, opts.officerTarget, logger).Run,
		},
		"announcements": {
			Name:   "announcements",
			Prereq: seed.RequireAuthorities(authorities),
			Run:    seed.NewAnnouncementSeeder(announcements, authorities, departments, rnd, opts.dataDir, logger).Run,
		},
		"communications": {
			Name:   "communications",
			Prereq: seed.RequireDepartments(departments),
			Run:    seed.NewCommunicationSeeder(communications, departments, authorities, rnd, opts.dataDir, logger).Run,
		},
	}

	ordered := make([]seed.Stage, 0, len(selected))
	for _, name := range datasetOrder {
		if selected[name] {
			ordered = append(ordered, stages[name])
		}
	}

	runner := seed.NewRunner(logger, ordered...)
	stats, err := runner.Run(ctx)
	if err != nil {
		return stageError(err)
	}
	logger.Infof(
		"Seeding finished: created=%d updated=%d skipped=%d failed=%d",
		stats.Created, stats.Updated, stats.Skipped, stats.Failed,
	)
	return nil
}

// stageError classifies a failed run. Setup problems the operator can fix
// before touching the database (a missing CSV source, an unmet stage
// prerequisite) are validation failures; everything else is a write failure.
func stageError(err error) error {
	if errors.Is(err, fs.ErrNotExist) ||
		errors.Is(err, seed.ErrNoAuthority) ||
		errors.Is(err, seed.ErrNoDepartments) {
		return withCode(exitValidation, err)
	}
	return withCode(exitDBWrite, err)
}

func selectDatasets(args []string) (map[string]bool, error) {
	valid := map[string]bool{}
	for _, name := range datasetOrder {
		valid[name] = true
	}

	selected := map[string]bool{}
	for _, arg := range args {
		name := strings.ToLower(strings.TrimSpace(arg))
		if name == "all" {
			for _, n := range datasetOrder {
				selected[n] = true
			}
			continue
		}
		if !valid[name] {
			return nil, withCode(exitUsage, fmt.Errorf(
				"unknown dataset %q (valid: %s, all)", arg, strings.Join(datasetOrder, ", "),
			))
		}
		selected[name] = true
	}
	return selected, nil
}
