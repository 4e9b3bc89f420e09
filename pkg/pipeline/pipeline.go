// Package pipeline turns slider settings into plans and rendered artifacts.
//
// The CLI and the HTTP server both go through a [Runner] so caching, logging
// and observability behave the same from every entry point.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	res, err := runner.Render(ctx, pipeline.Options{
//	    Settings: config.Default(),
//	    Formats:  []string{"svg", "json"},
//	})
//	if err != nil {
//	    return err
//	}
//	svg := res.Artifacts["svg"]
//
// [Runner.Plan] stops after planning and caches the segment list on its own.
package pipeline

import (
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/slidertrack/pkg/cache"
	"github.com/matzehuels/slidertrack/pkg/config"
	"github.com/matzehuels/slidertrack/pkg/errors"
	"github.com/matzehuels/slidertrack/pkg/render/sink"
	"github.com/matzehuels/slidertrack/pkg/segment"
	"github.com/matzehuels/slidertrack/pkg/widget"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatJSON = "json"
	FormatDOT  = "dot"
	FormatTree = "tree"
	FormatTerm = "term"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatJSON: true,
	FormatDOT:  true,
	FormatTree: true,
	FormatTerm: true,
}

// ContentTypes maps each format to its MIME type.
var ContentTypes = map[string]string{
	FormatSVG:  "image/svg+xml",
	FormatJSON: "application/json",
	FormatDOT:  "text/vnd.graphviz",
	FormatTree: "image/svg+xml",
	FormatTerm: "text/plain; charset=utf-8",
}

// Defaults applied by ValidateAndSetDefaults.
const (
	DefaultScale = sink.DefaultScale
	DefaultTheme = "light"
	DefaultWidth = sink.DefaultTerminalWidth
)

// DefaultFormats is used when Options.Formats is empty.
var DefaultFormats = []string{FormatSVG}

// Options configures a pipeline run. It supports JSON for API requests.
type Options struct {
	Settings config.Settings `json:"settings"`

	// Render options
	Formats  []string `json:"formats,omitempty"`
	Scale    float64  `json:"scale,omitempty"`
	Theme    string   `json:"theme,omitempty"`
	Labels   bool     `json:"labels,omitempty"`
	Width    int      `json:"width,omitempty"`    // terminal bar cells
	Detailed bool     `json:"detailed,omitempty"` // DOT node labels
	Refresh  bool     `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	validated bool
}

// Result holds the outputs of a pipeline run.
type Result struct {
	// Slider is the updated widget. It is nil when Plan was served from the
	// cache.
	Slider *widget.RectangleSlider

	// Plan is the segment list of the slider's track.
	Plan segment.Plan

	// SettingsHash is the content hash of the settings.
	SettingsHash string

	// Artifacts holds rendered outputs keyed by format.
	Artifacts map[string][]byte

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains timing and size information.
type Stats struct {
	Segments   int
	PlanTime   time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks which stages hit the cache.
type CacheInfo struct {
	PlanHit   bool
	RenderHit bool // every requested artifact came from the cache
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: %s)",
			format, strings.Join(FormatNames(), ", "))
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// FormatNames returns the supported formats, sorted.
func FormatNames() []string {
	names := make([]string, 0, len(ValidFormats))
	for f := range ValidFormats {
		names = append(names, f)
	}
	slices.Sort(names)
	return names
}

// ValidateAndSetDefaults checks the options and fills in defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.Settings.Validate(); err != nil {
		return err
	}

	if len(o.Formats) == 0 {
		o.Formats = slices.Clone(DefaultFormats)
	}
	o.Formats = dedupe(o.Formats)
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}

	if o.Scale < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be positive, got %g", o.Scale)
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Theme == "" {
		o.Theme = DefaultTheme
	}
	if _, err := sink.ParseTheme(o.Theme); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidStyle, err, "invalid theme")
	}
	if o.Width < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "width must be positive, got %d", o.Width)
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}

	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// ArtifactKeyOpts returns the cache key options for one format. Options that
// do not affect the format's bytes are left out so they share entries.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{Format: format}
	switch format {
	case FormatSVG:
		k.Scale = float32(o.Scale)
		k.Theme = o.Theme
		k.Labels = o.Labels
	case FormatJSON:
		k.Theme = o.Theme
	case FormatDOT, FormatTree:
		k.Labels = o.Detailed
	case FormatTerm:
		k.Width = o.Width
	}
	return k
}

func dedupe(formats []string) []string {
	seen := make(map[string]bool, len(formats))
	out := formats[:0:0]
	for _, f := range formats {
		f = strings.ToLower(strings.TrimSpace(f))
		if seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, f)
	}
	return out
}

// renderFormat produces one artifact from an updated slider.
func renderFormat(s *widget.RectangleSlider, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatSVG:
		theme, _ := sink.ParseTheme(opts.Theme)
		svgOpts := []sink.SVGOption{sink.WithScale(opts.Scale), sink.WithTheme(theme)}
		if opts.Labels {
			svgOpts = append(svgOpts, sink.WithLabels())
		}
		return sink.RenderSVG(s, svgOpts...), nil
	case FormatJSON:
		return sink.RenderJSON(s, sink.WithJSONTheme(opts.Theme), sink.WithJSONRegions(), sink.WithJSONSettings(opts.Settings))
	case FormatDOT:
		return []byte(sink.ToDOT(s, sink.DOTOptions{Detailed: opts.Detailed})), nil
	case FormatTerm:
		return []byte(sink.RenderTerminal(s.Plan(), opts.Width) + "\n"), nil
	}
	return nil, errors.New(errors.ErrCodeUnsupported, "unsupported format: %s", format)
}
