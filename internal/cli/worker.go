package cli

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/cvrp/cluster"
	"github.com/katalvlaran/cvrp/internal/logging"
)

func newWorkerCommand(input *Input) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "worker",
		Short: "Run one rank of a distributed search published on redis.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := input.resolve(cmd)
			if err != nil {
				return err
			}
			if cfg.RedisURL == "" {
				return errors.New("worker: --redis-url is required")
			}
			if input.jobID == "" {
				return errors.New("worker: --job is required")
			}

			tr, err := cluster.NewRedisTransport(cfg.RedisURL, cluster.DefaultJobTTL)
			if err != nil {
				return err
			}
			defer tr.Close()

			ctx := logging.WithFields(cmd.Context(), logrus.Fields{"job": input.jobID, "rank": input.rank})
			w := &cluster.Worker{Transport: tr, Rank: input.rank}
			res, err := w.Run(ctx, input.jobID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "rank %d: %s cost=%d nodes=%d\n", res.Rank, res.Status(), res.Cost, res.Stats.Nodes)

			return nil
		},
	}
	cmd.Flags().StringVar(&input.flags.RedisURL, "redis-url", "", "redis URL shared with the coordinator")
	cmd.Flags().StringVarP(&input.jobID, "job", "j", "", "job id to work on")
	cmd.Flags().IntVarP(&input.rank, "rank", "r", 0, "rank of this worker")

	return cmd
}
