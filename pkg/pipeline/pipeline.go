// Package pipeline provides the parse → resolve → render pipeline for easel.
//
// This package centralizes what every entry point does with a scene file:
// parse the TOML into an artboard, resolve the layout, and render the
// requested artifact formats, with artifact caching keyed by scene content.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    ScenePath: "poster.toml",
//	    Formats:   []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/grzegorzj/easel/pkg/errors"
	"github.com/grzegorzj/easel/pkg/layout"
	"github.com/grzegorzj/easel/pkg/scene"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatJSON = "json"
	FormatDOT  = "dot"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatJSON: true,
	FormatDOT:  true,
}

// DefaultTTL is how long cached artifacts stay valid. Artifacts are keyed by
// content hash, so the TTL only bounds disk growth, not staleness.
const DefaultTTL = 30 * 24 * time.Hour

// Options contains all configuration for one pipeline run.
type Options struct {
	// ScenePath is the TOML scene file to render. Exactly one of ScenePath
	// and SceneData must be set.
	ScenePath string `json:"scene_path,omitempty"`
	// SceneData is raw scene content, for callers that already read it.
	SceneData []byte `json:"-"`

	// Formats selects the artifacts to produce. Defaults to ["svg"].
	Formats []string `json:"formats,omitempty"`

	// Background fills the SVG artboard, empty for none.
	Background string `json:"background,omitempty"`
	// DebugBoxes outlines border and content boxes in the SVG.
	DebugBoxes bool `json:"debug_boxes,omitempty"`
	// Detailed includes kinds and boxes in DOT labels.
	Detailed bool `json:"detailed,omitempty"`

	// Refresh bypasses cache reads (results are still written back).
	Refresh bool `json:"refresh,omitempty"`

	// Logger overrides the runner's logger for this run.
	Logger *log.Logger `json:"-"`
}

// ValidateAndSetDefaults checks the options and fills defaults in place.
func (o *Options) ValidateAndSetDefaults() error {
	if o.ScenePath == "" && len(o.SceneData) == 0 {
		return errors.New(errors.ErrCodeInvalidScene, "pipeline needs a scene path or scene data")
	}
	if o.ScenePath != "" && len(o.SceneData) > 0 {
		return errors.New(errors.ErrCodeInvalidScene, "scene path and scene data are mutually exclusive")
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	return ValidateFormats(o.Formats)
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format %q (must be one of: svg, json, dot)", format)
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

// Result contains the outputs of a pipeline run.
type Result struct {
	// Artboard is the parsed, resolved layout tree.
	Artboard *layout.Artboard

	// SceneHash is the content hash of the scene file.
	SceneHash string

	// Layout is the exported final-box surface.
	Layout scene.Layout

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing information.
	Stats Stats

	// CacheInfo tracks which artifacts came from cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ElementCount int
	ParseTime    time.Duration
	ResolveTime  time.Duration
	RenderTime   time.Duration
}

// CacheInfo tracks cache hits per artifact format.
type CacheInfo struct {
	// Hits maps each requested format to whether it came from cache.
	Hits map[string]bool
}

// AllHit reports whether every requested artifact came from cache.
func (c CacheInfo) AllHit() bool {
	if len(c.Hits) == 0 {
		return false
	}
	for _, hit := range c.Hits {
		if !hit {
			return false
		}
	}
	return true
}
