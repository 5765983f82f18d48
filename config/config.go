// Package config resolves solver settings from defaults, a .env file,
// CVRP_* environment variables and an optional YAML file, in that order of
// increasing precedence. Command-line flags override the result.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cvrp/cover"
	"github.com/katalvlaran/cvrp/parallel"
	"github.com/katalvlaran/cvrp/routes"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "CVRP_"

// StrategyCluster selects the Redis-backed distributed strategy.
const StrategyCluster = "cluster"

// Output formats.
const (
	OutputText = "text"
	OutputYAML = "yaml"
)

// ErrInvalid is returned by Validate.
var ErrInvalid = errors.New("config: invalid configuration")

// Config holds every tunable of a solver run.
type Config struct {
	Capacity       int           `yaml:"capacity"`
	Validity       string        `yaml:"validity"`
	Strategy       string        `yaml:"strategy"`
	Workers        int           `yaml:"workers"`
	SpawnDepth     int           `yaml:"spawn_depth"`
	Disjoint       bool          `yaml:"disjoint"`
	Sentinel       bool          `yaml:"sentinel"`
	Bounded        bool          `yaml:"bounded"`
	MaxLocations   int           `yaml:"max_locations"`
	MaxCandidates  int           `yaml:"max_candidates"`
	TimeLimit      time.Duration `yaml:"time_limit"`
	CollectTimeout time.Duration `yaml:"collect_timeout"`
	RedisURL       string        `yaml:"redis_url"`
	Output         string        `yaml:"output"`
	TimingDir      string        `yaml:"timing_dir"`
	History        string        `yaml:"history"`
	MetricsFile    string        `yaml:"metrics_file"`
	LogLevel       string        `yaml:"log_level"`
	LogFormat      string        `yaml:"log_format"`
}

// Default returns the classic configuration: capacity 10, tour validity,
// sequential search, text output.
func Default() Config {
	opts := routes.DefaultOptions()

	return Config{
		Capacity:   opts.Capacity,
		Validity:   opts.Validity.String(),
		Strategy:   parallel.Sequential.String(),
		SpawnDepth: 1,
		Output:     OutputText,
		LogLevel:   "info",
		LogFormat:  "text",
	}
}

// Load resolves the configuration. dotenv and yamlPath may be empty; a
// missing dotenv file is not an error, a missing YAML file is.
func Load(dotenv, yamlPath string) (Config, error) {
	cfg := Default()

	env := map[string]string{}
	if dotenv != "" {
		vals, err := godotenv.Read(dotenv)
		switch {
		case err == nil:
			env = vals
		case !os.IsNotExist(errors.Cause(err)):
			return cfg, errors.Wrapf(err, "read %s", dotenv)
		}
	}
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok && strings.HasPrefix(k, EnvPrefix) {
			env[k] = v
		}
	}
	if err := cfg.applyEnv(env); err != nil {
		return cfg, err
	}

	if yamlPath != "" {
		body, err := os.ReadFile(yamlPath)
		if err != nil {
			return cfg, errors.Wrap(err, "read config")
		}
		if err := yaml.Unmarshal(body, &cfg); err != nil {
			return cfg, errors.Wrapf(err, "parse %s", yamlPath)
		}
	}

	return cfg, cfg.Validate()
}

func (c *Config) applyEnv(env map[string]string) error {
	ints := map[string]*int{
		"CAPACITY":       &c.Capacity,
		"WORKERS":        &c.Workers,
		"SPAWN_DEPTH":    &c.SpawnDepth,
		"MAX_LOCATIONS":  &c.MaxLocations,
		"MAX_CANDIDATES": &c.MaxCandidates,
	}
	bools := map[string]*bool{
		"DISJOINT": &c.Disjoint,
		"SENTINEL": &c.Sentinel,
		"BOUNDED":  &c.Bounded,
	}
	strs := map[string]*string{
		"VALIDITY":     &c.Validity,
		"STRATEGY":     &c.Strategy,
		"REDIS_URL":    &c.RedisURL,
		"OUTPUT":       &c.Output,
		"TIMING_DIR":   &c.TimingDir,
		"HISTORY":      &c.History,
		"METRICS_FILE": &c.MetricsFile,
		"LOG_LEVEL":    &c.LogLevel,
		"LOG_FORMAT":   &c.LogFormat,
	}

	for name, dst := range ints {
		if v, ok := env[EnvPrefix+name]; ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return errors.Wrapf(err, "%s%s", EnvPrefix, name)
			}
			*dst = n
		}
	}
	for name, dst := range bools {
		if v, ok := env[EnvPrefix+name]; ok {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return errors.Wrapf(err, "%s%s", EnvPrefix, name)
			}
			*dst = b
		}
	}
	for name, dst := range strs {
		if v, ok := env[EnvPrefix+name]; ok {
			*dst = v
		}
	}
	durations := map[string]*time.Duration{
		"TIME_LIMIT":      &c.TimeLimit,
		"COLLECT_TIMEOUT": &c.CollectTimeout,
	}
	for name, dst := range durations {
		if v, ok := env[EnvPrefix+name]; ok {
			d, err := time.ParseDuration(v)
			if err != nil {
				return errors.Wrapf(err, "%s%s", EnvPrefix, name)
			}
			*dst = d
		}
	}

	return nil
}

// Validate rejects negative numeric settings and unknown names.
func (c Config) Validate() error {
	switch {
	case c.Capacity < 0:
		return errors.Wrapf(ErrInvalid, "capacity %d", c.Capacity)
	case c.Workers < 0:
		return errors.Wrapf(ErrInvalid, "workers %d", c.Workers)
	case c.SpawnDepth < 0:
		return errors.Wrapf(ErrInvalid, "spawn depth %d", c.SpawnDepth)
	case c.MaxLocations < 0 || c.MaxCandidates < 0:
		return errors.Wrap(ErrInvalid, "negative search limit")
	case c.TimeLimit < 0:
		return errors.Wrapf(ErrInvalid, "time limit %s", c.TimeLimit)
	case c.CollectTimeout < 0:
		return errors.Wrapf(ErrInvalid, "collect timeout %s", c.CollectTimeout)
	case c.Bounded && !isSequential(c.Strategy):
		return fmt.Errorf("%w: strategy %q: %w", ErrInvalid, c.Strategy, parallel.ErrBoundedStrategy)
	}
	if _, ok := routes.ParseValidity(c.Validity); !ok {
		return errors.Wrapf(ErrInvalid, "validity %q", c.Validity)
	}
	if c.Strategy != StrategyCluster {
		if _, err := parallel.ParseStrategy(c.Strategy); err != nil {
			return errors.Wrapf(ErrInvalid, "strategy %q", c.Strategy)
		}
	}
	if c.Output != OutputText && c.Output != OutputYAML {
		return errors.Wrapf(ErrInvalid, "output %q", c.Output)
	}

	return nil
}

func isSequential(strategy string) bool {
	st, err := parallel.ParseStrategy(strategy)

	return err == nil && st == parallel.Sequential
}

// RouteOptions maps the configuration onto candidate generation options.
func (c Config) RouteOptions() routes.Options {
	v, _ := routes.ParseValidity(c.Validity)

	return routes.Options{
		Capacity:      c.Capacity,
		Validity:      v,
		MaxLocations:  c.MaxLocations,
		MaxCandidates: c.MaxCandidates,
	}
}

// SearchOptions maps the configuration onto cover options.
func (c Config) SearchOptions() cover.Options {
	return cover.Options{Sentinel: c.Sentinel, TimeLimit: c.TimeLimit}
}

// Spec maps the configuration onto a parallel.Spec. The cluster strategy
// yields an IndexRange spec describing the rank layout.
func (c Config) Spec() parallel.Spec {
	st, err := parallel.ParseStrategy(c.Strategy)
	if err != nil {
		st = parallel.IndexRange
	}

	return parallel.Spec{
		Strategy:   st,
		Workers:    c.Workers,
		Disjoint:   c.Disjoint,
		SpawnDepth: c.SpawnDepth,
		Bounded:    c.Bounded,
		Search:     c.SearchOptions(),
	}
}
