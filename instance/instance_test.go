package instance_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cvrp/core"
	"github.com/katalvlaran/cvrp/instance"
)

const tinyText = `4
1 5
2 5
3 5
12
0 1 10
1 0 10
0 2 10
2 0 10
0 3 10
3 0 10
1 2 5
2 1 5
2 3 5
3 2 5
1 3 20
3 1 20
`

func TestRead(t *testing.T) {
	in, err := instance.Read(strings.NewReader(tinyText))
	require.NoError(t, err)
	require.Equal(t, 4, in.Nodes)
	require.Equal(t, []int{1, 2, 3}, in.Locations())
	require.Equal(t, map[int]int{1: 5, 2: 5, 3: 5}, in.Demand)
	require.Len(t, in.Edges, 12)
	require.Equal(t, core.Edge{From: 1, To: 3, Cost: 20}, in.Edges[10])
	require.NoError(t, in.Validate())

	g := in.Graph()
	c, err := g.RouteCost([]int{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, 30, c)
}

func TestRead_FreeFormWhitespace(t *testing.T) {
	in, err := instance.Read(strings.NewReader("2 1 4 1\n0\t1 3"))
	require.NoError(t, err)
	require.Equal(t, []core.Edge{{From: 0, To: 1, Cost: 3}}, in.Edges)
}

func TestRead_Malformed(t *testing.T) {
	for name, text := range map[string]string{
		"empty":          "",
		"not a number":   "x",
		"zero nodes":     "0 0",
		"short demands":  "3 1 5",
		"missing k":      "2 1 5",
		"negative k":     "2 1 5 -1",
		"short edges":    "2 1 5 2 0 1 3 1 0",
		"bad edge token": "2 1 5 1 0 one 3",
	} {
		_, err := instance.Read(strings.NewReader(text))
		require.ErrorIs(t, err, instance.ErrMalformed, name)
	}
}

func TestValidate(t *testing.T) {
	in := &instance.Instance{Nodes: 3, Demand: map[int]int{1: 2}}
	require.ErrorIs(t, in.Validate(), instance.ErrInvalid)

	in.Demand[2] = -1
	require.ErrorIs(t, in.Validate(), instance.ErrInvalid)

	in.Demand[2] = 1
	in.Edges = []core.Edge{{From: 0, To: 1, Cost: -3}}
	require.ErrorIs(t, in.Validate(), instance.ErrInvalid)

	in.Edges[0].Cost = 3
	require.NoError(t, in.Validate())
}

func TestWriteRead(t *testing.T) {
	in, err := instance.Read(strings.NewReader(tinyText))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, instance.Write(&buf, in))
	require.Equal(t, tinyText, buf.String())
}

func TestLoadSave(t *testing.T) {
	dir := t.TempDir()
	in, err := instance.Read(strings.NewReader(tinyText))
	require.NoError(t, err)

	for _, name := range []string{"tiny.txt", "tiny.yaml"} {
		path := filepath.Join(dir, name)
		require.NoError(t, instance.Save(path, in))

		got, err := instance.Load(path)
		require.NoError(t, err, name)
		require.Equal(t, name, got.Name)
		require.Equal(t, in.Nodes, got.Nodes)
		require.Equal(t, in.Demand, got.Demand)
		require.Equal(t, in.Edges, got.Edges)
	}
}

func TestLoad_Errors(t *testing.T) {
	_, err := instance.Load(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yml")
	require.NoError(t, os.WriteFile(path, []byte("nodes: [1"), 0o600))
	_, err = instance.Load(path)
	require.ErrorIs(t, err, instance.ErrMalformed)
}
