// Package post implements the branded social post composer.
//
// One hero photo is fitted into a rounded, drop-shadowed card over a
// vertical gradient, with the ad text drawn at fixed positions. Three
// output geometries are produced per call, driven by variantSpecs.
package post

import (
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"path/filepath"

	"github.com/disintegration/imaging"

	"github.com/user/adposter/pkg/imagefx"
	"github.com/user/adposter/pkg/pipeline"
	"github.com/user/adposter/pkg/ports"
)

// placeholderSlate is the hero substitute when the photo fails to decode.
var placeholderSlate = color.NRGBA{R: 30, G: 35, B: 45, A: 255}

// Stage composes the three post variants for one ad.
type Stage struct {
	renderer ports.Renderer
	fs       ports.FileSystem
	fonts    ports.FontResolver
	badges   ports.BadgeMaker
	sink     ports.DebugSink
	logger   ports.Logger
}

// NewStage creates a new post stage. badges may be nil, in which case
// QR slots are never drawn.
func NewStage(
	renderer ports.Renderer,
	fs ports.FileSystem,
	fonts ports.FontResolver,
	badges ports.BadgeMaker,
	sink ports.DebugSink,
	logger ports.Logger,
) *Stage {
	return &Stage{
		renderer: renderer,
		fs:       fs,
		fonts:    fonts,
		badges:   badges,
		sink:     sink,
		logger:   logger.WithComponent("post"),
	}
}

// Execute composes all variants into input.OutDir and returns the
// mapping from variant name to the absolute output path.
//
// A hero decode failure degrades to a solid placeholder canvas; any
// other failure aborts the remaining variants.
func (s *Stage) Execute(ctx context.Context, input pipeline.PostInput) (pipeline.PostResult, error) {
	result := pipeline.PostResult{}

	if len(input.Paths) == 0 {
		return result, pipeline.ErrNoImages
	}

	background := input.Background
	if background == (pipeline.Gradient{}) {
		background = pipeline.DefaultGradient()
	}
	quality := input.Quality
	if quality <= 0 {
		quality = pipeline.DefaultPostInput().Quality
	}

	if err := s.fs.MkdirAll(input.OutDir); err != nil {
		return result, fmt.Errorf("create output directory: %w", err)
	}

	hero := s.loadHero(input.Paths[0], &result)

	if s.sink.Enabled() {
		if data, err := json.Marshal(summarizeVariants()); err == nil {
			s.sink.SaveVariantJSON(data)
		}
	}

	result.Outputs = make(map[string]string, len(variantSpecs))
	for _, spec := range variantSpecs {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		s.logger.Debug("Composing %s (%dx%d)", spec.Name, spec.Canvas.Width, spec.Canvas.Height)

		img := s.composeVariant(spec, hero, background, input)

		data, err := s.renderer.EncodeImage(img, ports.FormatJPEG, quality)
		if err != nil {
			return result, fmt.Errorf("encode %s: %w", spec.Name, err)
		}

		path := filepath.Join(input.OutDir, spec.Name+".jpg")
		if err := s.fs.WriteFileAtomic(path, data); err != nil {
			return result, fmt.Errorf("write %s: %w", spec.Name, err)
		}

		abs, err := filepath.Abs(path)
		if err != nil {
			abs = path
		}
		result.Outputs[spec.Name] = abs
	}

	s.logger.Debug("Post images saved to %s", input.OutDir)
	return result, nil
}

// loadHero decodes the hero photo, degrading to a solid placeholder
// canvas. Synthesis cannot fail, so the hero never aborts a post batch.
func (s *Stage) loadHero(path string, result *pipeline.PostResult) image.Image {
	data, err := s.fs.ReadFile(path)
	if err == nil {
		var img image.Image
		if img, err = s.renderer.DecodeImage(data); err == nil {
			return img
		}
	}
	s.logger.Warn("Hero photo could not be decoded, using solid placeholder: %s", path)
	result.HeroFallback = true
	return imaging.New(1600, 1200, placeholderSlate)
}

// composeVariant assembles one output: gradient, shadow, hero card,
// branding rectangles, text, and the optional QR badge.
func (s *Stage) composeVariant(
	spec variantSpec,
	hero image.Image,
	background pipeline.Gradient,
	input pipeline.PostInput,
) image.Image {
	gradient := imagefx.VerticalGradient(spec.Canvas.Width, spec.Canvas.Height, background.Start, background.End)

	card := imagefx.FitToBox(hero, spec.HeroBox.Width, spec.HeroBox.Height)
	card = imagefx.RoundCorners(card, spec.CornerRadius)
	shadow := imagefx.DropShadow(card, spec.Shadow.OffsetX, spec.Shadow.OffsetY, spec.Shadow.Blur, spec.Shadow.Opacity)

	if s.sink.Enabled() {
		s.sink.SaveLayer(spec.Name, "gradient", gradient)
		s.sink.SaveLayer(spec.Name, "card", card)
		s.sink.SaveLayer(spec.Name, "shadow", shadow)
	}

	canvas := s.renderer.CreateCanvas(spec.Canvas.Width, spec.Canvas.Height, nil)
	canvas.DrawImage(gradient, 0, 0)
	canvas.DrawImage(shadow, spec.ShadowAt.X, spec.ShadowAt.Y)
	canvas.DrawImage(card, spec.HeroAt.X, spec.HeroAt.Y)

	for _, r := range spec.Rects {
		canvas.DrawRoundedRect(r.X, r.Y, r.W, r.H, r.Radius, r.Fill)
	}

	for _, entry := range spec.Entries {
		canvas.DrawText(entry.Render(input.Text), entry.X, entry.Y, ports.TextStyle{
			Face:  s.fonts.Resolve(entry.Points),
			Color: entry.Color,
		})
	}

	if input.QR && spec.QRSize > 0 && input.Text.Phone != "" && s.badges != nil {
		qr, err := s.badges.QRCode("tel:"+input.Text.Phone, spec.QRSize)
		if err != nil {
			s.logger.Warn("QR badge skipped: %s", err)
		} else {
			canvas.DrawImage(qr, spec.QRAt.X, spec.QRAt.Y)
		}
	}

	return canvas.ToImage()
}
