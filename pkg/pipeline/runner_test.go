package pipeline

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/matzehuels/slidertrack/pkg/config"
	"github.com/matzehuels/slidertrack/pkg/observability"
	"github.com/matzehuels/slidertrack/pkg/segment"
)

type memCache struct {
	mu   sync.Mutex
	data map[string][]byte
	sets int
}

func newMemCache() *memCache { return &memCache{data: map[string][]byte{}} }

func (c *memCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	d, ok := c.data[key]
	return d, ok, nil
}

func (c *memCache) Set(_ context.Context, key string, data []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
	c.sets++
	return nil
}

func (c *memCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

func (c *memCache) Close() error { return nil }

type recordingHooks struct {
	observability.NoopPipelineHooks
	mu        sync.Mutex
	plans     int
	renders   int
	fallbacks int
}

func (h *recordingHooks) OnPlan(context.Context, int, time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.plans++
}

func (h *recordingHooks) OnInvariantFallback(context.Context, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.fallbacks++
}

func (h *recordingHooks) OnRenderComplete(context.Context, []string, time.Duration, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.renders++
}

func TestRunnerPlan(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetPipelineHooks(hooks)
	t.Cleanup(observability.Reset)

	ctx := context.Background()
	c := newMemCache()
	r := NewRunner(c, nil, nil)

	want := segment.Plan{
		{Kind: segment.Empty, Start: -5, End: -1},
		{Kind: segment.Handle, Start: -1, End: 1},
		{Kind: segment.Empty, Start: 1, End: 5},
	}

	res, err := r.Plan(ctx, Options{Settings: config.Default()})
	if err != nil {
		t.Fatalf("Plan() error: %v", err)
	}
	if res.CacheInfo.PlanHit {
		t.Error("first Plan() reported a cache hit")
	}
	if res.Slider == nil {
		t.Error("computed Plan() returned no slider")
	}
	if res.Plan.String() != want.String() {
		t.Errorf("Plan() = %v, want %v", res.Plan, want)
	}

	res, err = r.Plan(ctx, Options{Settings: config.Default()})
	if err != nil {
		t.Fatalf("Plan() error: %v", err)
	}
	if !res.CacheInfo.PlanHit {
		t.Error("second Plan() missed the cache")
	}
	if res.Plan.String() != want.String() {
		t.Errorf("cached Plan() = %v, want %v", res.Plan, want)
	}

	res, err = r.Plan(ctx, Options{Settings: config.Default(), Refresh: true})
	if err != nil {
		t.Fatalf("Plan() error: %v", err)
	}
	if res.CacheInfo.PlanHit {
		t.Error("Plan() with Refresh hit the cache")
	}
	if hooks.plans != 2 {
		t.Errorf("OnPlan calls = %d, want 2", hooks.plans)
	}
}

func TestRunnerPlanSettingsChangeKey(t *testing.T) {
	ctx := context.Background()
	r := NewRunner(newMemCache(), nil, nil)

	a, err := r.Plan(ctx, Options{Settings: config.Default()})
	if err != nil {
		t.Fatal(err)
	}
	s := config.Default()
	s.HandleValue = 1
	b, err := r.Plan(ctx, Options{Settings: s})
	if err != nil {
		t.Fatal(err)
	}
	if a.SettingsHash == b.SettingsHash {
		t.Error("different settings produced the same hash")
	}
	if b.CacheInfo.PlanHit {
		t.Error("changed settings hit the cache")
	}
}

func TestRunnerPlanInvalid(t *testing.T) {
	s := config.Default()
	s.Fill = "sideways"
	if _, err := NewRunner(nil, nil, nil).Plan(context.Background(), Options{Settings: s}); err == nil {
		t.Error("Plan() expected error for invalid fill")
	}
}

func TestRunnerPlanCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewRunner(nil, nil, nil).Plan(ctx, Options{Settings: config.Default()}); err == nil {
		t.Error("Plan() expected error for canceled context")
	}
}

func TestRunnerRender(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetPipelineHooks(hooks)
	t.Cleanup(observability.Reset)

	ctx := context.Background()
	c := newMemCache()
	r := NewRunner(c, nil, nil)
	opts := Options{Settings: config.Default(), Formats: []string{"svg", "json", "dot", "term"}, Width: 10}

	res, err := r.Render(ctx, opts)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if res.CacheInfo.RenderHit {
		t.Error("first Render() reported a cache hit")
	}
	checks := map[string]string{
		"svg":  "<svg",
		"json": `"segments"`,
		"dot":  "digraph G",
		"term": "┃",
	}
	for format, want := range checks {
		if !strings.Contains(string(res.Artifacts[format]), want) {
			t.Errorf("Artifacts[%q] missing %q", format, want)
		}
	}
	if c.sets != 4 {
		t.Errorf("cache sets = %d, want 4", c.sets)
	}

	res, err = r.Render(ctx, opts)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !res.CacheInfo.RenderHit {
		t.Error("second Render() missed the cache")
	}
	if res.Slider != nil {
		t.Error("cached Render() rebuilt the slider")
	}
	if len(res.Artifacts) != 4 {
		t.Errorf("cached artifacts = %d, want 4", len(res.Artifacts))
	}
	if hooks.renders != 1 {
		t.Errorf("OnRenderComplete calls = %d, want 1", hooks.renders)
	}

	opts.Theme = "dark"
	res, err = r.Render(ctx, opts)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if res.CacheInfo.RenderHit {
		t.Error("Render() with a new theme hit the cache")
	}
}

func TestRunnerRenderTree(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	res, err := r.Render(context.Background(), Options{Settings: config.Default(), Formats: []string{"tree"}})
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !strings.Contains(string(res.Artifacts["tree"]), "<svg") {
		t.Error("tree artifact is not SVG")
	}
}
