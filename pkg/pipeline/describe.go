package pipeline

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/matzehuels/barchart/pkg/cache"
	"github.com/matzehuels/barchart/pkg/chart"
	"github.com/matzehuels/barchart/pkg/observability"
)

// Description is the computed geometry and resolved style of a chart,
// without any drawing.
type Description struct {
	ChartHash string       `json:"chart_hash"`
	Layout    chart.Layout `json:"layout"`
	Style     chart.Style  `json:"style"`
	Bars      []chart.Bar  `json:"bars"`
}

// Describe builds the chart for opts and returns its description. The
// encoded description is cached under the chart's layout key for
// [cache.TTLLayout]; the returned bool reports a cache hit.
func (r *Runner) Describe(ctx context.Context, opts Options) (*Description, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, fmt.Errorf("invalid options: %w", err)
	}
	hash, err := opts.ChartHash()
	if err != nil {
		return nil, false, err
	}
	key := r.Keyer.LayoutKey(hash)
	cacheHooks := observability.Cache()

	if !opts.Refresh {
		data, hit, err := r.Cache.Get(ctx, key)
		switch {
		case err != nil:
			r.Logger.Warn("cache read failed", "key", "layout", "err", err)
		case hit:
			var d Description
			if err := json.Unmarshal(data, &d); err == nil {
				cacheHooks.OnCacheHit(ctx, "layout")
				return &d, true, nil
			}
			r.Logger.Warn("discarding corrupt layout entry", "hash", hash)
		default:
			cacheHooks.OnCacheMiss(ctx, "layout")
		}
	}

	c, err := r.build(ctx, opts)
	if err != nil {
		return nil, false, fmt.Errorf("layout: %w", err)
	}
	d := &Description{
		ChartHash: hash,
		Layout:    c.Layout(),
		Style:     c.Style(),
		Bars:      c.Bars(),
	}

	data, err := json.Marshal(d)
	if err != nil {
		return nil, false, fmt.Errorf("encode layout: %w", err)
	}
	if err := r.Cache.Set(ctx, key, data, cache.TTLLayout); err != nil {
		r.Logger.Warn("cache write failed", "key", "layout", "err", err)
	} else {
		cacheHooks.OnCacheSet(ctx, "layout", len(data))
	}
	return d, false, nil
}
