package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/slidertrack/pkg/cache"
	"github.com/matzehuels/slidertrack/pkg/observability"
	"github.com/matzehuels/slidertrack/pkg/render/sink"
	"github.com/matzehuels/slidertrack/pkg/segment"
	"github.com/matzehuels/slidertrack/pkg/widget"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner holds no per-run state, so multiple goroutines can share one
// with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Build creates a slider from the options' settings and runs one update.
// Planner fallbacks are logged and reported to the pipeline hooks.
func (r *Runner) Build(ctx context.Context, opts Options) (*widget.RectangleSlider, time.Duration, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, 0, err
	}

	s := widget.NewRectangleSlider()
	if err := opts.Settings.Apply(s); err != nil {
		return nil, 0, err
	}
	s.SetFallbackHandler(func(cfg segment.Config, err error) {
		opts.Logger.Warn("segment plan fell back to empty track", "err", err,
			"handle", cfg.HandleValue, "jump", cfg.JumpValue, "fill", cfg.FillRule)
		observability.Pipeline().OnInvariantFallback(ctx, err)
	})

	start := time.Now()
	s.TreeUpdate()
	elapsed := time.Since(start)
	observability.Pipeline().OnPlan(ctx, len(s.Plan()), elapsed)
	return s, elapsed, nil
}

// Plan computes the segment plan for the options' settings, using the cache
// unless opts.Refresh is set.
func (r *Runner) Plan(ctx context.Context, opts Options) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	hash, err := cache.HashJSON(opts.Settings)
	if err != nil {
		return nil, err
	}
	key := r.Keyer.PlanKey(hash)

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			var plan segment.Plan
			if err := json.Unmarshal(data, &plan); err == nil {
				observability.Cache().OnCacheHit(ctx, "plan")
				opts.Logger.Debug("plan cache hit", "hash", hash[:12])
				return &Result{
					Plan:         plan,
					SettingsHash: hash,
					Stats:        Stats{Segments: len(plan)},
					CacheInfo:    CacheInfo{PlanHit: true},
				}, nil
			}
		}
		observability.Cache().OnCacheMiss(ctx, "plan")
	}

	s, elapsed, err := r.Build(ctx, opts)
	if err != nil {
		return nil, err
	}
	plan := s.Plan().Clone()

	if data, err := json.Marshal(plan); err == nil {
		if err := r.Cache.Set(ctx, key, data, cache.TTLPlan); err == nil {
			observability.Cache().OnCacheSet(ctx, "plan", len(data))
		}
	}

	opts.Logger.Info("planned slider", "segments", len(plan), "duration", elapsed)
	return &Result{
		Slider:       s,
		Plan:         plan,
		SettingsHash: hash,
		Stats:        Stats{Segments: len(plan), PlanTime: elapsed},
	}, nil
}

// Render produces every requested format. When all formats are cached the
// slider is not rebuilt.
func (r *Runner) Render(ctx context.Context, opts Options) (res *Result, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	hash, err := cache.HashJSON(opts.Settings)
	if err != nil {
		return nil, err
	}
	res = &Result{SettingsHash: hash, Artifacts: make(map[string][]byte, len(opts.Formats))}

	if !opts.Refresh && r.fromCache(ctx, hash, opts, res.Artifacts) {
		res.CacheInfo.RenderHit = true
		opts.Logger.Debug("artifacts cache hit", "formats", opts.Formats)
		return res, nil
	}

	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	start := time.Now()
	defer func() {
		observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	}()

	s, elapsed, err := r.Build(ctx, opts)
	if err != nil {
		return nil, err
	}
	res.Slider = s
	res.Plan = s.Plan().Clone()
	res.Stats.Segments = len(res.Plan)
	res.Stats.PlanTime = elapsed

	renderStart := time.Now()
	for _, format := range opts.Formats {
		data, err := r.renderOne(ctx, s, format, opts)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		res.Artifacts[format] = data

		key := r.Keyer.ArtifactKey(hash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err == nil {
			observability.Cache().OnCacheSet(ctx, "artifact", len(data))
		}
	}
	res.Stats.RenderTime = time.Since(renderStart)

	opts.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"segments", res.Stats.Segments,
		"duration", res.Stats.RenderTime)
	return res, nil
}

// fromCache fills artifacts and reports whether every format was cached.
func (r *Runner) fromCache(ctx context.Context, hash string, opts Options, artifacts map[string][]byte) bool {
	for _, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(hash, opts.ArtifactKeyOpts(format))
		data, hit, err := r.Cache.Get(ctx, key)
		if err != nil || !hit {
			observability.Cache().OnCacheMiss(ctx, "artifact")
			clear(artifacts)
			return false
		}
		observability.Cache().OnCacheHit(ctx, "artifact")
		artifacts[format] = data
	}
	return true
}

func (r *Runner) renderOne(ctx context.Context, s *widget.RectangleSlider, format string, opts Options) ([]byte, error) {
	if format == FormatTree {
		return sink.RenderTreeSVG(ctx, sink.ToDOT(s, sink.DOTOptions{Detailed: opts.Detailed}))
	}
	return renderFormat(s, format, opts)
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
