package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/cvrp/config"
)

// Input contains the raw flag values of every command.
type Input struct {
	configPath string
	envFile    string

	// flags holds config-backed flag values; only flags the user set are
	// applied over the loaded configuration.
	flags config.Config

	localRanks int
	jobID      string
	rank       int

	genLocations int
	genSeed      int64
	genDensity   float64
	genTopology  string
	genMaxCost   int
	genMaxDemand int
	genOutput    string

	best bool
}

// resolve loads the layered configuration and applies explicitly set flags.
func (i *Input) resolve(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(i.envFile, i.configPath)
	if err != nil {
		return cfg, err
	}

	cmd.Flags().Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "capacity":
			cfg.Capacity = i.flags.Capacity
		case "validity":
			cfg.Validity = i.flags.Validity
		case "strategy":
			cfg.Strategy = i.flags.Strategy
		case "workers":
			cfg.Workers = i.flags.Workers
		case "spawn-depth":
			cfg.SpawnDepth = i.flags.SpawnDepth
		case "disjoint":
			cfg.Disjoint = i.flags.Disjoint
		case "sentinel":
			cfg.Sentinel = i.flags.Sentinel
		case "bounded":
			cfg.Bounded = i.flags.Bounded
		case "max-locations":
			cfg.MaxLocations = i.flags.MaxLocations
		case "max-candidates":
			cfg.MaxCandidates = i.flags.MaxCandidates
		case "time-limit":
			cfg.TimeLimit = i.flags.TimeLimit
		case "collect-timeout":
			cfg.CollectTimeout = i.flags.CollectTimeout
		case "redis-url":
			cfg.RedisURL = i.flags.RedisURL
		case "output":
			cfg.Output = i.flags.Output
		case "timing-dir":
			cfg.TimingDir = i.flags.TimingDir
		case "history":
			cfg.History = i.flags.History
		case "metrics-file":
			cfg.MetricsFile = i.flags.MetricsFile
		case "log-level":
			cfg.LogLevel = i.flags.LogLevel
		case "log-format":
			cfg.LogFormat = i.flags.LogFormat
		}
	})

	return cfg, cfg.Validate()
}
