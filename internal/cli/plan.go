package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/slidertrack/pkg/pipeline"
	"github.com/matzehuels/slidertrack/pkg/render/sink"
)

// planOpts holds the command-line flags for the plan command.
type planOpts struct {
	width   int
	json    bool
	noCache bool
	refresh bool
}

// planCommand creates the plan command.
func (c *CLI) planCommand() *cobra.Command {
	var opts planOpts
	settings := newSettingsFlags()

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Print the segment plan of a slider",
		Long: `Plan computes how the slider track splits into empty, filled, handle and
jump segments and prints them as a table followed by a text bar.`,
		Example: `  slidertrack plan --value 0.25 --fill min
  slidertrack plan --allow-jump --jump 0.8 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := settings.resolve(cmd)
			if err != nil {
				return err
			}
			return c.runPlan(cmd.Context(), pipeline.Options{Settings: s, Refresh: opts.refresh}, opts)
		},
	}

	settings.bind(cmd)
	cmd.Flags().IntVar(&opts.width, "width", pipeline.DefaultWidth, "text bar width in cells")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print the plan as JSON")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the plan cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore a cached plan")

	return cmd
}

func (c *CLI) runPlan(ctx context.Context, popts pipeline.Options, opts planOpts) error {
	logger := loggerFromContext(ctx)
	popts.Logger = logger

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	res, err := runner.Plan(ctx, popts)
	if err != nil {
		return err
	}
	logger.Debug("Planned slider", "hash", res.SettingsHash[:12], "cached", res.CacheInfo.PlanHit)

	if opts.json {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res.Plan)
	}

	fmt.Println(planTable(res.Plan))
	fmt.Println("  " + sink.RenderTerminal(res.Plan, opts.width))
	printNewline()
	printStats(res.Stats.Segments, res.Stats.PlanTime, res.CacheInfo.PlanHit)
	return nil
}
