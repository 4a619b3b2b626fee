package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/decider/internal/app"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve [targets...]",
		Short: "Compute the plan for the given package specs or the world and system sets",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Help()
				return nil
			}
			flags := cmd.Flags()
			noCache, _ := flags.GetBool("no-cache")
			keepGoing, _ := flags.GetBool("keep-going")
			verbose, _ := flags.GetBool("verbose")
			metricsFile, _ := flags.GetString("metrics-file")
			jsonLogs, _ := flags.GetBool("json-logs")
			debug, _ := flags.GetBool("debug")
			return c.app.Resolve(cmd.Context(), args, app.ResolveOptions{
				NoCache:     noCache,
				KeepGoing:   keepGoing,
				MetricsFile: metricsFile,
				Verbose:     verbose,
				JSONLogs:    jsonLogs,
				Debug:       debug,
			})
		},
	}
	cmd.Flags().BoolP("no-cache", "n", false, "Ignore and do not store cached plans")
	cmd.Flags().BoolP("keep-going", "k", false, "Drop targets that cannot be resolved instead of failing")
	cmd.Flags().BoolP("verbose", "v", false, "Also show kept packages and the reason for every step")
	cmd.Flags().String("metrics-file", "", "Write Prometheus metrics for the run to this file")
	return cmd
}
