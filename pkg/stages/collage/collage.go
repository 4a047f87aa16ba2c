// Package collage implements the 3x3 photo grid composer.
package collage

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"path/filepath"

	"github.com/disintegration/imaging"

	"github.com/user/adposter/pkg/imagefx"
	"github.com/user/adposter/pkg/pipeline"
	"github.com/user/adposter/pkg/ports"
)

const gridSlots = 9

// placeholderGray is the tile color substituted for photos that fail to decode.
var placeholderGray = color.NRGBA{R: 240, G: 240, B: 240, A: 255}

// Stage composes up to nine photos into a fixed 3x3 grid collage.
type Stage struct {
	renderer ports.Renderer
	fs       ports.FileSystem
	sink     ports.DebugSink
	logger   ports.Logger
}

// NewStage creates a new collage stage.
func NewStage(renderer ports.Renderer, fs ports.FileSystem, sink ports.DebugSink, logger ports.Logger) *Stage {
	return &Stage{
		renderer: renderer,
		fs:       fs,
		sink:     sink,
		logger:   logger.WithComponent("collage"),
	}
}

// Execute composes the collage and writes it as a JPEG to the output path.
// One undecodable photo does not block the ad: its grid slot gets a flat
// gray placeholder tile, reported in CollageResult.PlaceholderSlots.
func (s *Stage) Execute(ctx context.Context, input pipeline.CollageInput) (pipeline.CollageResult, error) {
	result := pipeline.CollageResult{}

	if len(input.Paths) == 0 {
		return result, pipeline.ErrNoImages
	}

	canvas := input.Canvas
	if canvas.Width <= 0 || canvas.Height <= 0 {
		canvas = pipeline.DefaultCollageInput().Canvas
	}
	quality := input.Quality
	if quality <= 0 {
		quality = pipeline.DefaultCollageInput().Quality
	}

	s.logger.Debug("Composing %dx%d collage from %d photos", canvas.Width, canvas.Height, len(input.Paths))

	slots := scheduleSlots(input.Paths)

	// Tile dimensions use integer division; when the canvas is not evenly
	// divisible by 3 the remainder pixels stay as an unfilled white margin
	// on the right and bottom.
	tileW := canvas.Width / 3
	tileH := canvas.Height / 3

	grid := imaging.New(canvas.Width, canvas.Height, color.NRGBA{R: 255, G: 255, B: 255, A: 255})

	for i, path := range slots {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		tile := s.loadTile(path, tileW, tileH)
		if tile == nil {
			s.logger.Warn("Photo %d could not be decoded, using placeholder tile: %s", i, path)
			result.PlaceholderSlots = append(result.PlaceholderSlots, i)
			tile = imaging.New(tileW, tileH, placeholderGray)
		}

		if s.sink.Enabled() {
			s.sink.SaveCollageTile(i, tile)
		}

		row := i / 3
		col := i % 3
		grid = imaging.Paste(grid, tile, image.Pt(col*tileW, row*tileH))
	}

	data, err := s.renderer.EncodeImage(grid, ports.FormatJPEG, quality)
	if err != nil {
		return result, fmt.Errorf("encode collage: %w", err)
	}
	if err := s.fs.WriteFileAtomic(input.OutputPath, data); err != nil {
		return result, fmt.Errorf("write collage: %w", err)
	}

	abs, err := filepath.Abs(input.OutputPath)
	if err != nil {
		abs = input.OutputPath
	}
	result.OutputPath = abs

	s.logger.Debug("Collage saved to %s", abs)
	return result, nil
}

// scheduleSlots truncates paths to nine and, when fewer are supplied,
// repeats them cyclically from index 0 until all nine slots are filled.
func scheduleSlots(paths []string) []string {
	if len(paths) > gridSlots {
		paths = paths[:gridSlots]
	}
	slots := make([]string, gridSlots)
	for i := range slots {
		slots[i] = paths[i%len(paths)]
	}
	return slots
}

// loadTile reads, decodes and fits one photo into a tile.
// Returns nil when the photo cannot be read or decoded.
func (s *Stage) loadTile(path string, tileW, tileH int) image.Image {
	data, err := s.fs.ReadFile(path)
	if err != nil {
		return nil
	}
	img, err := s.renderer.DecodeImage(data)
	if err != nil {
		return nil
	}
	square := imagefx.CenterCropSquare(img)
	return imagefx.ResizeTo(square, tileW, tileH)
}
