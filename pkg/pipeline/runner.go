package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/textcal/pkg/cache"
	"github.com/matzehuels/textcal/pkg/calendar"
	"github.com/matzehuels/textcal/pkg/observability"
)

// Runner executes renders with optional caching.
//
// The Runner holds no per-render state. Multiple goroutines can safely use
// the same Runner with different options as long as the cache is safe for
// concurrent use.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Logger: logger,
	}
}

// cachedRender is the cache entry for one render.
type cachedRender struct {
	Text  string `json:"text"`
	Stats Stats  `json:"stats"`
}

// Execute validates opts, builds the calendar and renders it.
func (r *Runner) Execute(ctx context.Context, opts Options) (result *Result, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	hooks := observability.Render()
	hooks.OnRenderStart(ctx, opts.Kind)
	start := time.Now()
	defer func() {
		rows := 0
		if result != nil {
			rows = result.Stats.Rows
		}
		hooks.OnRenderComplete(ctx, opts.Kind, rows, time.Since(start), err)
	}()

	key := cache.Key("render", opts)
	if res, ok := r.lookup(ctx, key, opts.Kind); ok {
		opts.Logger.Debug("render cache hit", "kind", opts.Kind, "year", opts.Year)
		return res, nil
	}

	buildStart := time.Now()
	block, err := r.Build(opts)
	if err != nil {
		return nil, err
	}
	result = &Result{Block: block}
	result.Stats.BuildTime = time.Since(buildStart)
	result.Stats.Marks = countMarked(block, opts.Marks)

	renderStart := time.Now()
	result.Text = block.String()
	result.Stats.RenderTime = time.Since(renderStart)
	result.Stats.Rows = block.Rows()
	result.Stats.Width = block.Width()

	opts.Logger.Debug("rendered calendar",
		"kind", opts.Kind,
		"rows", result.Stats.Rows,
		"width", result.Stats.Width,
		"duration", result.Stats.BuildTime+result.Stats.RenderTime)

	r.store(ctx, key, opts.Kind, result)
	return result, nil
}

// Build constructs the block described by opts and applies its marks.
func (r *Runner) Build(opts Options) (calendar.Block, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	var (
		block calendar.Block
		err   error
	)
	switch opts.Kind {
	case KindMonth:
		block, err = calendar.NewMonthGrid(opts.Year, time.Month(opts.Month), opts.start, opts.CellWidth, opts.marker, opts.monthOptions()...)
	case KindYear:
		block, err = calendar.NewYearGrid(opts.Year, opts.start, opts.CellWidth, opts.marker, opts.monthOptions()...)
	case KindGrid:
		block, err = buildGrid(&opts)
	default:
		err = ValidateKind(opts.Kind)
	}
	if err != nil {
		return nil, err
	}

	for _, d := range opts.Marks {
		block.Mark(d)
	}
	return block, nil
}

// buildGrid lays out opts.Months consecutive months starting at Year-Month.
func buildGrid(opts *Options) (*calendar.Collection, error) {
	blocks := make([]calendar.Block, 0, opts.Months)
	for i := range opts.Months {
		y, m := addMonths(opts.Year, opts.Month, i)
		g, err := calendar.NewMonthGrid(y, m, opts.start, opts.CellWidth, opts.marker, opts.monthOptions()...)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, g)
	}
	return calendar.NewCollection(opts.GridTitle(), opts.Columns, blocks...)
}

// countMarked returns the number of distinct dates in marks that block shows
// as marked.
func countMarked(block calendar.Block, marks []time.Time) int {
	seen := make(map[string]bool, len(marks))
	for _, d := range marks {
		day := d.Format(DateLayout)
		if !seen[day] && block.IsMarked(d) {
			seen[day] = true
		}
	}
	return len(seen)
}

func (r *Runner) lookup(ctx context.Context, key, kind string) (*Result, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("render cache read failed", "error", err)
		return nil, false
	}
	if !hit {
		observability.Cache().OnCacheMiss(ctx, kind)
		return nil, false
	}

	var entry cachedRender
	if err := json.Unmarshal(data, &entry); err != nil {
		_ = r.Cache.Delete(ctx, key)
		observability.Cache().OnCacheMiss(ctx, kind)
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, kind)
	return &Result{Text: entry.Text, Stats: entry.Stats, Cached: true}, true
}

func (r *Runner) store(ctx context.Context, key, kind string, res *Result) {
	data, err := json.Marshal(cachedRender{Text: res.Text, Stats: res.Stats})
	if err != nil {
		return
	}
	if err := r.Cache.Set(ctx, key, data, cache.DefaultTTL); err != nil {
		r.Logger.Warn("render cache write failed", "error", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, kind, len(data))
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

// Describe summarizes opts for status output.
func Describe(opts Options) string {
	switch opts.Kind {
	case KindYear:
		return fmt.Sprintf("year %d", opts.Year)
	case KindGrid:
		return fmt.Sprintf("%d months from %04d-%02d", opts.Months, opts.Year, opts.Month)
	default:
		return fmt.Sprintf("%04d-%02d", opts.Year, opts.Month)
	}
}
