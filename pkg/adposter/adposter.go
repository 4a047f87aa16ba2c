// Package adposter provides a high-level API over the composition engine.
package adposter

import (
	"context"

	"github.com/user/adposter/pkg/adapters/fontdir"
	"github.com/user/adposter/pkg/adapters/ggrenderer"
	"github.com/user/adposter/pkg/adapters/logger"
	"github.com/user/adposter/pkg/adapters/nullsink"
	"github.com/user/adposter/pkg/adapters/osfilesystem"
	"github.com/user/adposter/pkg/adapters/qrbadge"
	"github.com/user/adposter/pkg/pipeline"
	"github.com/user/adposter/pkg/ports"
	"github.com/user/adposter/pkg/stages/collage"
	"github.com/user/adposter/pkg/stages/post"
)

// Engine bundles the two composers with a shared set of adapters.
// A zero-configuration engine is obtained with NewEngine(nil, nil).
type Engine struct {
	collageStage pipeline.Stage[pipeline.CollageInput, pipeline.CollageResult]
	postStage    pipeline.Stage[pipeline.PostInput, pipeline.PostResult]
}

// NewEngine creates an Engine with default adapters. log and sink may be
// nil; a no-op logger and a discarding sink are used then.
func NewEngine(log ports.Logger, sink ports.DebugSink) *Engine {
	if log == nil {
		log = logger.NewNoop()
	}
	if sink == nil {
		sink = nullsink.New()
	}

	fs := osfilesystem.New()
	renderer := ggrenderer.New()
	fonts := fontdir.New()
	badges := qrbadge.New()

	return &Engine{
		collageStage: collage.NewStage(renderer, fs, sink, log),
		postStage:    post.NewStage(renderer, fs, fonts, badges, sink, log),
	}
}

// MakeCollage composes a 3x3 collage of the photos into outputPath.
func (e *Engine) MakeCollage(ctx context.Context, imagePaths []string, outputPath string) (pipeline.CollageResult, error) {
	input := pipeline.DefaultCollageInput()
	input.Paths = imagePaths
	input.OutputPath = outputPath
	return e.collageStage.Execute(ctx, input)
}

// GeneratePostImages composes the three branded post variants into
// outDir. fields uses the submission service's key names (model,
// manufacture_year, price, price_type, condition, location, phone,
// site_name), all optional.
func (e *Engine) GeneratePostImages(ctx context.Context, imagePaths []string, outDir string, fields map[string]string) (pipeline.PostResult, error) {
	input := pipeline.DefaultPostInput()
	input.Paths = imagePaths
	input.OutDir = outDir
	input.Text = pipeline.NewAdText(fields)
	return e.postStage.Execute(ctx, input)
}

// MakeCollage composes a collage with a default engine.
func MakeCollage(ctx context.Context, imagePaths []string, outputPath string) (pipeline.CollageResult, error) {
	return NewEngine(nil, nil).MakeCollage(ctx, imagePaths, outputPath)
}

// GeneratePostImages composes the post variants with a default engine.
func GeneratePostImages(ctx context.Context, imagePaths []string, outDir string, fields map[string]string) (pipeline.PostResult, error) {
	return NewEngine(nil, nil).GeneratePostImages(ctx, imagePaths, outDir, fields)
}
