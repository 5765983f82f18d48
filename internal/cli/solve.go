package cli

import (
	"context"
	"runtime"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/katalvlaran/cvrp/cluster"
	"github.com/katalvlaran/cvrp/config"
	"github.com/katalvlaran/cvrp/cover"
	"github.com/katalvlaran/cvrp/history"
	"github.com/katalvlaran/cvrp/instance"
	"github.com/katalvlaran/cvrp/internal/logging"
	"github.com/katalvlaran/cvrp/metrics"
	"github.com/katalvlaran/cvrp/parallel"
	"github.com/katalvlaran/cvrp/report"
	"github.com/katalvlaran/cvrp/routes"
)

// progressInterval throttles progress log lines.
const progressInterval = 2 * time.Second

func newSolveCommand(input *Input) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve <instance>",
		Short: "Solve an instance and print the cheapest route combination.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := input.resolve(cmd)
			if err != nil {
				return err
			}

			return runSolve(cmd, input, cfg, args[0])
		},
	}

	def := config.Default()
	f := cmd.Flags()
	f.IntVar(&input.flags.Capacity, "capacity", def.Capacity, "vehicle capacity")
	f.StringVar(&input.flags.Validity, "validity", def.Validity, "route validity policy (tour, pair)")
	f.StringVarP(&input.flags.Strategy, "strategy", "s", def.Strategy, "search strategy (sequential, range, tasks, cluster)")
	f.IntVarP(&input.flags.Workers, "workers", "w", 0, "ranks or pool size (0 = number of CPUs)")
	f.IntVar(&input.flags.SpawnDepth, "spawn-depth", def.SpawnDepth, "inclusions seeded before a task is spawned")
	f.BoolVar(&input.flags.Disjoint, "disjoint", false, "restrict each rank's first route to its own range")
	f.BoolVar(&input.flags.Sentinel, "sentinel", false, "report infeasibility as cost 2147483647")
	f.BoolVar(&input.flags.Bounded, "bounded", false, "prune branches that cannot beat the incumbent (sequential only)")
	f.IntVar(&input.flags.MaxLocations, "max-locations", 0, "refuse instances with more locations (0 = no limit)")
	f.IntVar(&input.flags.MaxCandidates, "max-candidates", 0, "refuse more candidate routes (0 = no limit)")
	f.DurationVar(&input.flags.TimeLimit, "time-limit", 0, "stop searching after this duration")
	f.DurationVar(&input.flags.CollectTimeout, "collect-timeout", 0, "cluster: give up on missing rank results after this duration")
	f.StringVar(&input.flags.RedisURL, "redis-url", "", "redis URL for the cluster strategy")
	f.StringVarP(&input.flags.Output, "output", "o", def.Output, "report format (text, yaml)")
	f.StringVar(&input.flags.TimingDir, "timing-dir", "", "write elapsed_<instance>.txt into this directory")
	f.StringVar(&input.flags.History, "history", "", "record the run in this history file")
	f.StringVar(&input.flags.MetricsFile, "metrics-file", "", "write Prometheus metrics to this file")
	f.IntVar(&input.localRanks, "local-ranks", -1, "cluster ranks run in this process (-1 = all)")
	f.StringVar(&input.jobID, "job-id", "", "cluster job id (default: random)")

	return cmd
}

func runSolve(cmd *cobra.Command, input *Input, cfg config.Config, path string) error {
	ctx := logging.WithFields(cmd.Context(), logrus.Fields{"strategy": cfg.Strategy})
	log := logging.FromContext(ctx)
	if cfg.MetricsFile != "" {
		metrics.RegisterDefault()
	}

	inst, err := instance.Load(path)
	if err != nil {
		return err
	}
	if err := inst.Validate(); err != nil {
		log.WithError(err).Warn("instance failed validation, solving anyway")
	}

	started := time.Now()
	set, err := routes.Generate(inst.Locations(), inst.Demand, inst.Graph(), cfg.RouteOptions())
	if err != nil {
		return errors.WithMessage(err, "generate routes")
	}
	log.WithFields(logrus.Fields{"locations": len(set.Locations), "candidates": set.Len()}).Info("candidate routes generated")

	spec := cfg.Spec()
	spec.Search.Progress = progressLogger(log)
	spec.Search.OnImprove = func(s cover.Solution) {
		log.WithField("cost", s.Cost).Debug("new incumbent")
	}

	searchStarted := time.Now()
	var res cover.Result
	if cfg.Strategy == config.StrategyCluster {
		res, err = solveCluster(ctx, input, cfg, set)
	} else {
		res, err = parallel.SearchPartitioned(ctx, set, spec)
	}
	searchElapsed := time.Since(searchStarted)
	elapsed := time.Since(started)

	switch {
	case err == nil, errors.Is(err, cover.ErrNoFeasibleCover):
		err = nil
	case errors.Is(err, cover.ErrCanceled), errors.Is(err, cover.ErrTimeLimit):
		log.WithError(err).Warn("search stopped early, reporting the incumbent")
	default:
		return err
	}

	workers := spec.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if spec.Strategy == parallel.Sequential && cfg.Strategy != config.StrategyCluster {
		workers = 1
	}
	rep := report.Report{
		Instance:   inst.Name,
		Locations:  len(set.Locations),
		Candidates: set.Len(),
		Strategy:   cfg.Strategy,
		Workers:    workers,
		Result:     res,
		Elapsed:    elapsed,
		Sentinel:   cfg.Sentinel,
	}
	var werr error
	if cfg.Output == config.OutputYAML {
		werr = report.WriteYAML(cmd.OutOrStdout(), rep)
	} else {
		werr = report.WriteText(cmd.OutOrStdout(), rep)
	}
	if werr != nil {
		return werr
	}

	if cfg.TimingDir != "" {
		p, terr := report.WriteElapsed(cfg.TimingDir, path, elapsed)
		if terr != nil {
			return terr
		}
		log.Debugf("timing written to %s", p)
	}
	if cfg.History != "" {
		if herr := recordRun(cfg, rep); herr != nil {
			return herr
		}
	}
	if cfg.MetricsFile != "" {
		metrics.ObserveSearch(cfg.Strategy, set.Len(), res.Stats, searchElapsed)
		if merr := metrics.WriteTextfile(cfg.MetricsFile); merr != nil {
			return merr
		}
	}

	return err
}

// progressLogger logs search statistics at most once per progressInterval.
func progressLogger(log logrus.FieldLogger) func(cover.Stats) {
	sometimes := &rate.Sometimes{Interval: progressInterval}

	return func(st cover.Stats) {
		sometimes.Do(func() {
			log.WithFields(logrus.Fields{"nodes": st.Nodes, "leaves": st.Leaves, "improvements": st.Improvements}).Info("searching")
		})
	}
}

func solveCluster(ctx context.Context, input *Input, cfg config.Config, set *routes.Set) (cover.Result, error) {
	log := logging.FromContext(ctx)

	var (
		tr    cluster.Transport
		local = input.localRanks
	)
	if cfg.RedisURL != "" {
		rt, err := cluster.NewRedisTransport(cfg.RedisURL, cluster.DefaultJobTTL)
		if err != nil {
			return cover.Result{Solution: cover.Empty()}, err
		}
		defer rt.Close()
		tr = rt
	} else {
		tr = cluster.NewMemoryTransport()
		local = -1
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	coord := &cluster.Coordinator{
		Transport: tr,
		OnResult: func(t cluster.Transport, r cluster.WorkerResult) {
			if cfg.MetricsFile != "" {
				metrics.ObserveWorkerResult(t.Name(), r.Status())
			}
			log.WithFields(logrus.Fields{"rank": r.Rank, "status": r.Status(), "cost": r.Cost}).Info("worker result")
		},
	}
	res, job, err := coord.Run(ctx, set, cluster.Options{
		Workers:        workers,
		LocalRanks:     local,
		Disjoint:       cfg.Disjoint,
		Search:         cfg.SearchOptions(),
		JobID:          input.jobID,
		CollectTimeout: cfg.CollectTimeout,
	})
	if job != nil {
		log.WithField("job", job.ID).Info("cluster job finished")
	}

	return res, err
}

func recordRun(cfg config.Config, rep report.Report) error {
	store, err := history.Open(cfg.History)
	if err != nil {
		return err
	}
	defer store.Close()

	run := history.FromResult(rep.Instance, rep.Strategy, rep.Workers, rep.Candidates, rep.Result, rep.Elapsed)
	run.Capacity = cfg.Capacity
	run.Validity = cfg.Validity
	_, err = store.Record(run)

	return err
}
