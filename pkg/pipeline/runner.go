package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/barchart/pkg/cache"
	"github.com/matzehuels/barchart/pkg/chart"
	"github.com/matzehuels/barchart/pkg/observability"
	"github.com/matzehuels/barchart/pkg/render"
	"github.com/matzehuels/barchart/pkg/render/sink"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can safely use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner. A nil cache disables caching, a nil keyer
// uses [cache.DefaultKeyer] and a nil logger discards output.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Execute runs the layout and render stages. Each format is looked up in
// the cache first unless opts.Refresh is set. Every requested canvas is
// checked with [sink.Check] before layout.
//
// Chart construction errors keep their INVALID_CONFIG or INVALID_DATA code
// through the wrapping.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	// Canvas requests are checked before the chart is built, so an
	// unusable container or size never reaches layout.
	for _, f := range opts.Formats {
		if err := sink.Check(f.Container(), opts.Config.Width, opts.Config.Height); err != nil {
			return nil, fmt.Errorf("provision %s: %w", f, err)
		}
	}

	layoutStart := time.Now()
	c, err := r.build(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result := &Result{
		Chart:     c,
		Artifacts: make(map[render.Format][]byte, len(opts.Formats)),
	}
	result.Stats.ItemCount = c.Layout().ItemCount
	result.Stats.LayoutTime = time.Since(layoutStart)

	if result.ChartHash, err = opts.ChartHash(); err != nil {
		return nil, err
	}

	r.Logger.Info("computed layout",
		"items", result.Stats.ItemCount,
		"upper_bound", c.Layout().VerticalUpperBound,
		"duration", result.Stats.LayoutTime)

	renderStart := time.Now()
	for _, f := range opts.Formats {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, hit, err := r.renderCached(ctx, c, result.ChartHash, f, opts.Refresh)
		if err != nil {
			return nil, fmt.Errorf("render: %w", err)
		}
		if hit {
			result.CacheInfo.Hits = append(result.CacheInfo.Hits, f)
		}
		result.Artifacts[f] = data
		result.Stats.Bytes += len(data)
	}
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = len(result.CacheInfo.Hits) == len(opts.Formats)

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"bytes", result.Stats.Bytes,
		"cached", len(result.CacheInfo.Hits),
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Build runs the layout stage only: it applies defaults and constructs the
// chart.
func (r *Runner) Build(ctx context.Context, opts Options) (*chart.Chart, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	return r.build(ctx, opts)
}

func (r *Runner) build(ctx context.Context, opts Options) (*chart.Chart, error) {
	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, len(opts.Data))
	start := time.Now()

	c, err := chart.New(opts.Config, opts.Data)
	hooks.OnLayoutComplete(ctx, len(opts.Data), time.Since(start), err)
	return c, err
}

func (r *Runner) renderCached(ctx context.Context, c *chart.Chart, chartHash string, f render.Format, refresh bool) ([]byte, bool, error) {
	key := r.Keyer.ArtifactKey(chartHash, string(f))
	cacheHooks := observability.Cache()

	if !refresh {
		data, hit, err := r.Cache.Get(ctx, key)
		switch {
		case err != nil:
			r.Logger.Warn("cache read failed", "format", f, "err", err)
		case hit:
			cacheHooks.OnCacheHit(ctx, "artifact")
			r.Logger.Debug("artifact from cache", "format", f)
			return data, true, nil
		default:
			cacheHooks.OnCacheMiss(ctx, "artifact")
		}
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, string(f))
	start := time.Now()
	data, err := Render(ctx, c, f)
	hooks.OnRenderComplete(ctx, string(f), len(data), time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err != nil {
		r.Logger.Warn("cache write failed", "format", f, "err", err)
	} else {
		cacheHooks.OnCacheSet(ctx, "artifact", len(data))
	}
	return data, false, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
