package instance

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cvrp/core"
)

// Sentinel errors.
var (
	// ErrMalformed is returned for unreadable or inconsistent instance data.
	ErrMalformed = errors.New("instance: malformed input")

	// ErrInvalid is returned by Validate.
	ErrInvalid = errors.New("instance: invalid instance")
)

// Instance is a parsed problem: node count, demands and directed edges.
type Instance struct {
	// Name is the base name of the file the instance was loaded from.
	Name string `yaml:"name,omitempty"`

	// Nodes is N, the node count including the depot.
	Nodes int `yaml:"nodes"`

	// Demand maps location id to its demand.
	Demand map[int]int `yaml:"demand"`

	// Edges in file order.
	Edges []core.Edge `yaml:"edges"`
}

// Locations returns 1..N−1.
func (in *Instance) Locations() []int {
	if in.Nodes <= 1 {
		return nil
	}
	out := make([]int, in.Nodes-1)
	for i := range out {
		out[i] = i + 1
	}

	return out
}

// Graph builds a core.Graph from the edges in file order.
func (in *Instance) Graph() *core.Graph { return core.FromEdges(in.Edges) }

// Validate checks demands and costs: every location has a non-negative
// demand and every edge cost is non-negative. Instances that fail still
// load; the solver treats a missing demand as zero.
func (in *Instance) Validate() error {
	for _, id := range in.Locations() {
		d, ok := in.Demand[id]
		if !ok {
			return errors.Wrapf(ErrInvalid, "location %d has no demand", id)
		}
		if d < 0 {
			return errors.Wrapf(ErrInvalid, "location %d demand %d", id, d)
		}
	}
	for _, e := range in.Edges {
		if e.Cost < 0 {
			return errors.Wrapf(ErrInvalid, "edge %d->%d cost %d", e.From, e.To, e.Cost)
		}
	}

	return nil
}

// tokenReader yields whitespace separated integers with their position.
type tokenReader struct {
	sc  *bufio.Scanner
	pos int
}

func (t *tokenReader) next(what string) (int, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return 0, errors.Wrapf(err, "reading %s", what)
		}

		return 0, errors.Wrapf(ErrMalformed, "unexpected end of input, want %s", what)
	}
	t.pos++
	v, err := strconv.Atoi(t.sc.Text())
	if err != nil {
		return 0, errors.Wrapf(ErrMalformed, "token %d (%s): %q is not an integer", t.pos, what, t.sc.Text())
	}

	return v, nil
}

// Read parses the text format.
func Read(r io.Reader) (*Instance, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	t := &tokenReader{sc: sc}

	n, err := t.next("node count")
	if err != nil {
		return nil, err
	}
	if n < 1 {
		return nil, errors.Wrapf(ErrMalformed, "node count %d", n)
	}
	in := &Instance{Nodes: n, Demand: make(map[int]int, n-1)}
	for i := 0; i < n-1; i++ {
		id, err := t.next("location id")
		if err != nil {
			return nil, err
		}
		d, err := t.next("demand")
		if err != nil {
			return nil, err
		}
		in.Demand[id] = d
	}

	k, err := t.next("edge count")
	if err != nil {
		return nil, err
	}
	if k < 0 {
		return nil, errors.Wrapf(ErrMalformed, "edge count %d", k)
	}
	in.Edges = make([]core.Edge, 0, k)
	for i := 0; i < k; i++ {
		var e core.Edge
		if e.From, err = t.next("edge origin"); err != nil {
			return nil, err
		}
		if e.To, err = t.next("edge destination"); err != nil {
			return nil, err
		}
		if e.Cost, err = t.next("edge cost"); err != nil {
			return nil, err
		}
		in.Edges = append(in.Edges, e)
	}

	return in, nil
}

// Write emits in the text format. Demand lines are written in ascending id order.
func Write(w io.Writer, in *Instance) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, in.Nodes)
	ids := make([]int, 0, len(in.Demand))
	for id := range in.Demand {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		fmt.Fprintf(bw, "%d %d\n", id, in.Demand[id])
	}
	fmt.Fprintln(bw, len(in.Edges))
	for _, e := range in.Edges {
		fmt.Fprintf(bw, "%d %d %d\n", e.From, e.To, e.Cost)
	}

	return errors.Wrap(bw.Flush(), "write instance")
}

// Load reads path, choosing the format from its extension.
func Load(path string) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open instance")
	}
	defer f.Close()

	var in *Instance
	if isYAML(path) {
		in = &Instance{}
		if err := yaml.NewDecoder(f).Decode(in); err != nil {
			return nil, errors.Wrapf(ErrMalformed, "%s: %v", path, err)
		}
	} else if in, err = Read(f); err != nil {
		return nil, errors.WithMessage(err, path)
	}
	if in.Demand == nil {
		in.Demand = map[int]int{}
	}
	in.Name = filepath.Base(path)

	return in, nil
}

// Save writes in to path, choosing the format from its extension.
func Save(path string, in *Instance) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create instance")
	}
	defer f.Close()

	if isYAML(path) {
		enc := yaml.NewEncoder(f)
		enc.SetIndent(2)
		if err := enc.Encode(in); err != nil {
			return errors.Wrapf(err, "encode %s", path)
		}

		return errors.Wrap(enc.Close(), "encode")
	}

	return Write(f, in)
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
