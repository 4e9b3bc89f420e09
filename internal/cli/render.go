package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/slidertrack/pkg/pipeline"
	"github.com/matzehuels/slidertrack/pkg/render/sink"
)

// defaultOutput is the base path used when --output is not given.
const defaultOutput = "slider"

// formatExt maps output formats to file extensions.
var formatExt = map[string]string{
	pipeline.FormatSVG:  ".svg",
	pipeline.FormatJSON: ".json",
	pipeline.FormatDOT:  ".dot",
	pipeline.FormatTree: ".tree.svg",
	pipeline.FormatTerm: ".txt",
}

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string // output file path, base path for several formats, or "-" for stdout
	formats  string // comma-separated output formats
	scale    float64
	theme    string
	labels   bool
	width    int
	detailed bool
	noCache  bool
	refresh  bool
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{output: defaultOutput}
	settings := newSettingsFlags()

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a slider to SVG, JSON, Graphviz or text",
		Long: `Render builds the slider described by the settings and writes one file per format.

Formats: svg (track drawing), json (plan and element tree), dot (Graphviz
source of the element tree), tree (the element tree rendered to SVG) and
term (a one-line text bar).`,
		Example: `  slidertrack render --value 0.8 --fill min
  slidertrack render -c slider.toml -f svg,json -o out/slider
  slidertrack render -f term -o -`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := settings.resolve(cmd)
			if err != nil {
				return err
			}
			return c.runRender(cmd.Context(), pipeline.Options{
				Settings: s,
				Formats:  parseFormats(opts.formats),
				Scale:    opts.scale,
				Theme:    opts.theme,
				Labels:   opts.labels,
				Width:    opts.width,
				Detailed: opts.detailed,
				Refresh:  opts.refresh,
			}, opts)
		},
	}

	settings.bind(cmd)
	fl := cmd.Flags()
	fl.StringVarP(&opts.output, "output", "o", opts.output, "output path (extension added per format, - for stdout)")
	fl.StringVarP(&opts.formats, "format", "f", pipeline.FormatSVG, "output formats: "+strings.Join(pipeline.FormatNames(), ", "))
	fl.Float64Var(&opts.scale, "scale", pipeline.DefaultScale, "SVG pixels per slider unit")
	fl.StringVar(&opts.theme, "theme", pipeline.DefaultTheme, "color theme")
	fl.BoolVar(&opts.labels, "labels", false, "draw value labels in the SVG")
	fl.IntVar(&opts.width, "width", pipeline.DefaultWidth, "terminal bar width in cells")
	fl.BoolVar(&opts.detailed, "detailed", false, "show positions and controls in tree labels")
	fl.BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	fl.BoolVar(&opts.refresh, "refresh", false, "ignore cached artifacts")
	_ = cmd.RegisterFlagCompletionFunc("format", fixedCompletion(pipeline.FormatNames()...))
	_ = cmd.RegisterFlagCompletionFunc("theme", fixedCompletion(sink.ThemeNames()...))

	return cmd
}

func (c *CLI) runRender(ctx context.Context, popts pipeline.Options, opts renderOpts) error {
	logger := loggerFromContext(ctx)
	popts.Logger = logger
	if err := popts.ValidateAndSetDefaults(); err != nil {
		return err
	}
	if opts.output == "-" && len(popts.Formats) > 1 {
		return fmt.Errorf("cannot write %d formats to stdout", len(popts.Formats))
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(logger)
	spinner := newSpinnerWithContext(ctx, "Rendering slider...")
	spinner.Start()
	res, err := runner.Render(ctx, popts)
	spinner.Stop()
	if err != nil {
		if spinner.Cancelled() {
			return ctx.Err()
		}
		return err
	}

	if opts.output == "-" {
		_, err := os.Stdout.Write(res.Artifacts[popts.Formats[0]])
		return err
	}

	paths := make([]string, 0, len(popts.Formats))
	for _, format := range popts.Formats {
		path := outputPath(opts.output, format, len(popts.Formats))
		if err := writeArtifact(path, res.Artifacts[format]); err != nil {
			return err
		}
		logger.Debug("Wrote artifact", "format", format, "bytes", len(res.Artifacts[format]))
		paths = append(paths, path)
	}
	prog.done(fmt.Sprintf("Rendered %d files", len(paths)))

	printSuccess("Rendered slider")
	printStats(res.Stats.Segments, res.Stats.PlanTime+res.Stats.RenderTime, res.CacheInfo.RenderHit)
	for _, p := range paths {
		printFile(p)
	}
	return nil
}

// outputPath derives the file for format from output. A single format keeps
// an output that already has an extension.
func outputPath(output, format string, count int) string {
	if output == "" {
		output = defaultOutput
	}
	if count == 1 && filepath.Ext(output) != "" {
		return output
	}
	return output + formatExt[format]
}

func writeArtifact(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
