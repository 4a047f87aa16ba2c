// Package orchestrator coordinates the collage and post composers for
// one ad submission.
package orchestrator

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/user/adposter/pkg/pipeline"
	"github.com/user/adposter/pkg/ports"
)

// Config contains all configuration for one ad submission.
type Config struct {
	// Photos is the ordered sequence of source photo paths.
	Photos []string

	// OutDir receives the collage and the three post variants.
	OutDir string

	// CollageFile is the collage file name inside OutDir (or an absolute
	// path). Unknown extensions are normalized to .jpg.
	CollageFile string

	// Text holds the ad attributes drawn on the posts.
	Text pipeline.AdText

	// CanvasSize is the square collage canvas side in pixels.
	CanvasSize int

	// Quality is the JPEG quality for all outputs.
	Quality int

	// Background is the gradient behind the post variants.
	Background pipeline.Gradient

	// QR draws a contact QR badge on the wide banner.
	QR bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		CollageFile: "collage.jpg",
		CanvasSize:  1080,
		Quality:     90,
		Background:  pipeline.DefaultGradient(),
	}
}

// Result aggregates the outputs of one ad submission.
type Result struct {
	Collage pipeline.CollageResult
	Posts   pipeline.PostResult
}

// Orchestrator runs the collage and post stages for one ad.
type Orchestrator struct {
	collageStage pipeline.Stage[pipeline.CollageInput, pipeline.CollageResult]
	postStage    pipeline.Stage[pipeline.PostInput, pipeline.PostResult]
	fs           ports.FileSystem
	logger       ports.Logger
}

// New creates a new Orchestrator.
func New(
	collageStage pipeline.Stage[pipeline.CollageInput, pipeline.CollageResult],
	postStage pipeline.Stage[pipeline.PostInput, pipeline.PostResult],
	fs ports.FileSystem,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		collageStage: collageStage,
		postStage:    postStage,
		fs:           fs,
		logger:       logger,
	}
}

// Run composes the collage and the post variants. Stages run
// sequentially; callers wanting concurrency dispatch whole submissions
// to separate workers with distinct output directories.
func (o *Orchestrator) Run(ctx context.Context, cfg Config) (Result, error) {
	result := Result{}

	if len(cfg.Photos) == 0 {
		return result, pipeline.ErrNoImages
	}

	o.logger.Info("Generating ad imagery for %d photos", len(cfg.Photos))

	if err := o.fs.MkdirAll(cfg.OutDir); err != nil {
		return result, fmt.Errorf("create output directory: %w", err)
	}

	collagePath := cfg.CollageFile
	if collagePath == "" {
		collagePath = DefaultConfig().CollageFile
	}
	if !filepath.IsAbs(collagePath) {
		collagePath = filepath.Join(cfg.OutDir, collagePath)
	}
	collagePath = NormalizeOutputPath(collagePath)

	collageResult, err := o.collageStage.Execute(ctx, pipeline.CollageInput{
		Paths:      cfg.Photos,
		OutputPath: collagePath,
		Canvas:     pipeline.Dimension{Width: cfg.CanvasSize, Height: cfg.CanvasSize},
		Quality:    cfg.Quality,
	})
	if err != nil {
		return result, fmt.Errorf("collage: %w", err)
	}
	result.Collage = collageResult

	postResult, err := o.postStage.Execute(ctx, pipeline.PostInput{
		Paths:      cfg.Photos,
		OutDir:     cfg.OutDir,
		Text:       cfg.Text,
		Background: cfg.Background,
		Quality:    cfg.Quality,
		QR:         cfg.QR,
	})
	if err != nil {
		return result, fmt.Errorf("posts: %w", err)
	}
	result.Posts = postResult

	o.logger.Info("Done: collage and %d post variants", len(postResult.Outputs))
	return result, nil
}

// NormalizeOutputPath forces an output path to carry a JPEG extension.
// Unknown or missing extensions silently become .jpg; this is the named
// replacement of the submission service's historical fallback.
func NormalizeOutputPath(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".jpg" || ext == ".jpeg" {
		return path
	}
	return strings.TrimSuffix(path, filepath.Ext(path)) + ".jpg"
}
