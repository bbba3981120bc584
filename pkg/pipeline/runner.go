package pipeline

import (
	"context"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/grzegorzj/easel/pkg/cache"
	"github.com/grzegorzj/easel/pkg/errors"
	"github.com/grzegorzj/easel/pkg/layout"
	"github.com/grzegorzj/easel/pkg/observability"
	"github.com/grzegorzj/easel/pkg/render/depgraph"
	"github.com/grzegorzj/easel/pkg/render/svg"
	"github.com/grzegorzj/easel/pkg/scene"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't store
// pipeline results, so one Runner can serve many runs.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// TTL bounds cached artifact lifetime. Zero means DefaultTTL.
	TTL time.Duration
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
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Execute runs the complete parse → resolve → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	logger := r.Logger
	if opts.Logger != nil {
		logger = opts.Logger
	}

	result := &Result{
		Artifacts: make(map[string][]byte),
		CacheInfo: CacheInfo{Hits: make(map[string]bool)},
	}

	// Stage 1: Parse
	parseStart := time.Now()
	data := opts.SceneData
	if opts.ScenePath != "" {
		var err error
		if data, err = os.ReadFile(opts.ScenePath); err != nil {
			if os.IsNotExist(err) {
				return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "scene file %s", opts.ScenePath)
			}
			return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "reading scene file %s", opts.ScenePath)
		}
	}
	result.SceneHash = cache.Hash(data)

	a, err := scene.Parse(data)
	if err != nil {
		return nil, err
	}
	result.Artboard = a
	result.Stats.ParseTime = time.Since(parseStart)
	result.Stats.ElementCount = countElements(a)

	logger.Info("parsed scene",
		"artboard", a.ID(),
		"elements", result.Stats.ElementCount,
		"duration", result.Stats.ParseTime)

	// Stage 2: Resolve
	resolveStart := time.Now()
	if err := a.Resolve(); err != nil {
		return nil, err
	}
	result.Layout, err = scene.Export(a)
	if err != nil {
		return nil, err
	}
	result.Stats.ResolveTime = time.Since(resolveStart)

	logger.Info("resolved layout",
		"artboard", a.ID(),
		"duration", result.Stats.ResolveTime)

	// Stage 3: Render, per format, with caching.
	renderStart := time.Now()
	for _, format := range opts.Formats {
		artifact, hit, err := r.renderFormat(ctx, a, result, format, opts)
		if err != nil {
			return nil, err
		}
		result.Artifacts[format] = artifact
		result.CacheInfo.Hits[format] = hit
	}
	result.Stats.RenderTime = time.Since(renderStart)

	logger.Info("rendered artifacts",
		"formats", opts.Formats,
		"cached", result.CacheInfo.AllHit(),
		"duration", result.Stats.RenderTime)

	return result, nil
}

// artifactKeyOpts narrows the run options to the ones that change the
// artifact for the given format. Unrelated flags must not fragment keys or
// collide distinct artifacts on one key.
func artifactKeyOpts(format string, opts Options) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{Format: format}
	switch format {
	case FormatSVG:
		k.Background = opts.Background
		k.DebugBoxes = opts.DebugBoxes
	case FormatDOT:
		k.Detailed = opts.Detailed
	}
	return k
}

// renderFormat produces one artifact, consulting the cache first.
func (r *Runner) renderFormat(ctx context.Context, a *layout.Artboard, result *Result, format string, opts Options) ([]byte, bool, error) {
	key := r.Keyer.ArtifactKey(result.SceneHash, artifactKeyOpts(format, opts))

	if !opts.Refresh {
		if data, ok, err := r.Cache.Get(ctx, key); err == nil && ok {
			observability.Cache().OnCacheHit(ctx, format)
			return data, true, nil
		}
		observability.Cache().OnCacheMiss(ctx, format)
	}

	var artifact []byte
	var err error
	switch format {
	case FormatSVG:
		artifact, err = svg.Render(a, svg.Options{
			Background: opts.Background,
			DebugBoxes: opts.DebugBoxes,
		})
	case FormatJSON:
		artifact, err = scene.MarshalLayout(result.Layout)
	case FormatDOT:
		var dot string
		dot, err = depgraph.ToDOT(a, depgraph.Options{Detailed: opts.Detailed})
		artifact = []byte(dot)
	default:
		err = ValidateFormat(format)
	}
	if err != nil {
		return nil, false, err
	}

	ttl := r.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}
	if err := r.Cache.Set(ctx, key, artifact, ttl); err != nil {
		// A broken cache degrades to uncached operation.
		r.Logger.Warn("cache write failed", "format", format, "err", err)
	} else {
		observability.Cache().OnCacheSet(ctx, format, len(artifact))
	}
	return artifact, false, nil
}

func countElements(a *layout.Artboard) int {
	n := 0
	a.Walk(func(*layout.Element) bool {
		n++
		return true
	})
	return n
}
