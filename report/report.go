package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cvrp/cover"
)

// Report is the outcome of one solver run.
type Report struct {
	// Instance is the instance name, usually its file base name.
	Instance string `yaml:"instance"`

	// Locations is the number of locations to serve.
	Locations int `yaml:"locations"`

	// Candidates is the number of routes that passed the filters.
	Candidates int `yaml:"candidates"`

	// Strategy names the search strategy.
	Strategy string `yaml:"strategy"`

	// Workers is the worker count used by parallel strategies.
	Workers int `yaml:"workers,omitempty"`

	// Result is the best solution with its search statistics.
	Result cover.Result `yaml:"-"`

	// Elapsed is the wall-clock duration of generation plus search.
	Elapsed time.Duration `yaml:"-"`

	// Sentinel prints the raw sentinel total for an infeasible instance.
	Sentinel bool `yaml:"-"`
}

// document is the YAML shape of a Report.
type document struct {
	Instance   string      `yaml:"instance"`
	Locations  int         `yaml:"locations"`
	Candidates int         `yaml:"candidates"`
	Strategy   string      `yaml:"strategy"`
	Workers    int         `yaml:"workers,omitempty"`
	Found      bool        `yaml:"found"`
	Cost       int         `yaml:"cost"`
	Routes     []yamlRoute `yaml:"routes"`
	Stats      cover.Stats `yaml:"stats"`
	Elapsed    float64     `yaml:"elapsed_seconds"`
}

type yamlRoute struct {
	Stops []int `yaml:"stops,flow"`
	Cost  int   `yaml:"cost"`
}

// WriteText prints the console report: location and candidate counts, each
// chosen route with its cost, then the total, or a "no feasible cover" line.
func WriteText(w io.Writer, r Report) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Locations: %d\n", r.Locations)
	fmt.Fprintf(bw, "Candidates: %d\n", r.Candidates)
	if !r.Result.Found {
		fmt.Fprintln(bw, "No feasible cover")
		if r.Sentinel {
			fmt.Fprintf(bw, "Total cost: %d\n", cover.SentinelCost)
		}
	} else {
		fmt.Fprintln(bw, "Best route combination:")
		for _, rt := range r.Result.Routes {
			fmt.Fprintf(bw, "{ %s} cost: %d\n", joinStops(rt.Stops), rt.Cost)
		}
		fmt.Fprintf(bw, "Total cost: %d\n", r.Result.Cost)
	}
	if r.Elapsed > 0 {
		fmt.Fprintf(bw, "Elapsed: %.3f seconds\n", r.Elapsed.Seconds())
	}

	return errors.Wrap(bw.Flush(), "write report")
}

func joinStops(stops []int) string {
	var sb strings.Builder
	for _, s := range stops {
		fmt.Fprintf(&sb, "%d ", s)
	}

	return sb.String()
}

// WriteYAML encodes r as a YAML document.
func WriteYAML(w io.Writer, r Report) error {
	doc := document{
		Instance:   r.Instance,
		Locations:  r.Locations,
		Candidates: r.Candidates,
		Strategy:   r.Strategy,
		Workers:    r.Workers,
		Found:      r.Result.Found,
		Cost:       r.Result.Cost,
		Routes:     make([]yamlRoute, 0, len(r.Result.Routes)),
		Stats:      r.Result.Stats,
		Elapsed:    r.Elapsed.Seconds(),
	}
	for _, rt := range r.Result.Routes {
		doc.Routes = append(doc.Routes, yamlRoute{Stops: rt.Stops, Cost: rt.Cost})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return errors.Wrap(err, "encode report")
	}

	return errors.Wrap(enc.Close(), "encode report")
}

// ElapsedFileName returns "elapsed_<base>.txt" for instancePath.
func ElapsedFileName(instancePath string) string {
	return "elapsed_" + filepath.Base(instancePath) + ".txt"
}

// WriteElapsed writes the timing line for instancePath into dir and returns
// the written path.
func WriteElapsed(dir, instancePath string, elapsed time.Duration) (string, error) {
	path := filepath.Join(dir, ElapsedFileName(instancePath))
	line := fmt.Sprintf("Elapsed: %.3f seconds\n", elapsed.Seconds())
	if err := os.WriteFile(path, []byte(line), 0o644); err != nil {
		return "", errors.Wrapf(err, "write timing file %s", path)
	}

	return path, nil
}
