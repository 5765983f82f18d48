package cli

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/cvrp/builder"
	"github.com/katalvlaran/cvrp/instance"
	"github.com/katalvlaran/cvrp/internal/logging"
)

// Topology names accepted by generate.
const (
	topologySparse    = "sparse"
	topologyComplete  = "complete"
	topologyEuclidean = "euclidean"
	topologyStar      = "star"
	topologyPath      = "path"
)

func newGenerateCommand(input *Input) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a random instance.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := generateInstance(input)
			if err != nil {
				return err
			}
			if input.genOutput == "" {
				return instance.Write(cmd.OutOrStdout(), in)
			}
			if err := instance.Save(input.genOutput, in); err != nil {
				return err
			}
			logging.FromContext(cmd.Context()).Infof("wrote %s (%d locations, %d edges)", input.genOutput, in.Nodes-1, len(in.Edges))

			return nil
		},
	}
	f := cmd.Flags()
	f.IntVarP(&input.genLocations, "locations", "n", 8, "number of locations besides the depot")
	f.Int64Var(&input.genSeed, "seed", 1, "random seed")
	f.Float64Var(&input.genDensity, "density", 0.5, "edge probability for the sparse topology")
	f.StringVar(&input.genTopology, "topology", topologySparse, "sparse, complete, euclidean, star or path")
	f.IntVar(&input.genMaxCost, "max-cost", 50, "largest edge cost (euclidean: square size)")
	f.IntVar(&input.genMaxDemand, "max-demand", 5, "largest location demand")
	f.StringVarP(&input.genOutput, "out-file", "o", "", "output file (.yaml for YAML, default stdout)")

	return cmd
}

func generateInstance(input *Input) (*instance.Instance, error) {
	if input.genMaxCost < 1 || input.genMaxDemand < 1 {
		return nil, errors.New("generate: --max-cost and --max-demand must be positive")
	}
	opts := []builder.BuilderOption{
		builder.WithSeed(input.genSeed),
		builder.WithUniformCost(1, input.genMaxCost),
		builder.WithUniformDemand(1, input.genMaxDemand),
	}
	if input.genOutput != "" {
		opts = append(opts, builder.WithName(input.genOutput))
	}

	var con builder.Constructor
	switch input.genTopology {
	case topologySparse:
		con = builder.RandomSparse(input.genDensity)
	case topologyComplete:
		con = builder.Complete(false)
	case topologyEuclidean:
		con = builder.Euclidean(input.genMaxCost)
	case topologyStar:
		con = builder.Star()
	case topologyPath:
		con = builder.Path()
	default:
		return nil, errors.Errorf("generate: unknown topology %q", input.genTopology)
	}

	return builder.BuildInstance(input.genLocations, opts, con)
}
