// Package main provides the CLI entry point for adposter.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/adposter/pkg/adapters/filesink"
	"github.com/user/adposter/pkg/adapters/fontdir"
	"github.com/user/adposter/pkg/adapters/ggrenderer"
	"github.com/user/adposter/pkg/adapters/logger"
	"github.com/user/adposter/pkg/adapters/nullsink"
	"github.com/user/adposter/pkg/adapters/osfilesystem"
	"github.com/user/adposter/pkg/adapters/qrbadge"
	"github.com/user/adposter/pkg/config"
	"github.com/user/adposter/pkg/orchestrator"
	"github.com/user/adposter/pkg/pipeline"
	"github.com/user/adposter/pkg/ports"
	"github.com/user/adposter/pkg/stages/collage"
	"github.com/user/adposter/pkg/stages/post"
)

var version = "dev"

func main() {
	app := &cli.App{
		Name:    "adposter",
		Usage:   l10n.T("Compose classified ad imagery: a 3x3 collage and branded social posts"),
		Version: version,
		Commands: []*cli.Command{
			generateCommand(),
			collageCommand(),
			postsCommand(),
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loggingFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "log-level", Aliases: []string{"l"}, Value: "info", Usage: l10n.T("Log level (debug, info, warn, error)")},
		&cli.BoolFlag{Name: "quiet", Aliases: []string{"Q"}, Usage: l10n.T("Suppress all log output")},
		&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: l10n.T("Enable debug output of intermediate layers")},
		&cli.StringFlag{Name: "debug-dir", Value: "./debug", Usage: l10n.T("Directory for debug output")},
	}
}

func textFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "model", Usage: l10n.T("Vehicle model")},
		&cli.StringFlag{Name: "year", Usage: l10n.T("Manufacture year")},
		&cli.StringFlag{Name: "price", Usage: l10n.T("Asking price")},
		&cli.StringFlag{Name: "price-type", Usage: l10n.T("Price type (e.g. Negotiable)")},
		&cli.StringFlag{Name: "condition", Usage: l10n.T("Vehicle condition")},
		&cli.StringFlag{Name: "location", Usage: l10n.T("Seller location")},
		&cli.StringFlag{Name: "phone", Usage: l10n.T("Contact phone number")},
		&cli.StringFlag{Name: "site", Usage: l10n.T("Site name shown on the branding badge")},
	}
}

func newLogger(c *cli.Context) ports.Logger {
	if c.Bool("quiet") {
		return logger.NewNoop()
	}
	return logger.NewConsole(ports.ParseLogLevel(c.String("log-level")))
}

func newSink(c *cli.Context, fs ports.FileSystem, renderer ports.Renderer) (ports.DebugSink, error) {
	if !c.Bool("debug") {
		return nullsink.New(), nil
	}
	dir := c.String("debug-dir")
	if err := fs.MkdirAll(dir); err != nil {
		return nil, fmt.Errorf("create debug directory: %w", err)
	}
	return filesink.New(dir, fs, renderer), nil
}

func adTextFromFlags(c *cli.Context) pipeline.AdText {
	return pipeline.AdText{
		Model:     c.String("model"),
		Year:      c.String("year"),
		Price:     c.String("price"),
		PriceType: c.String("price-type"),
		Condition: c.String("condition"),
		Location:  c.String("location"),
		Phone:     c.String("phone"),
		SiteName:  c.String("site"),
	}
}

// generateCommand composes the collage and all post variants in one run.
func generateCommand() *cli.Command {
	flags := []cli.Flag{
		&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: l10n.T("YAML configuration file")},
		&cli.StringFlag{Name: "out-dir", Aliases: []string{"o"}, Usage: l10n.T("Output directory for the ad imagery")},
		&cli.IntFlag{Name: "quality", Aliases: []string{"q"}, Usage: l10n.T("JPEG quality (1-100)")},
		&cli.BoolFlag{Name: "qr", Usage: l10n.T("Draw a contact QR badge on the wide banner")},
	}
	flags = append(flags, textFlags()...)
	flags = append(flags, loggingFlags()...)

	return &cli.Command{
		Name:      "generate",
		Usage:     l10n.T("Compose the collage and all post variants for one ad"),
		ArgsUsage: "PHOTO...",
		Flags:     flags,
		Action: func(c *cli.Context) error {
			photos := c.Args().Slice()
			if len(photos) == 0 {
				return cli.Exit(l10n.T("At least one photo argument is required"), 1)
			}

			cfg := config.Defaults()
			if path := c.String("config"); path != "" {
				var err error
				cfg, err = config.LoadFromFile(path)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
			}
			if c.IsSet("out-dir") {
				cfg.OutDir = c.String("out-dir")
			}
			if c.IsSet("quality") {
				cfg.Quality = c.Int("quality")
			}
			if c.IsSet("qr") {
				cfg.QR = c.Bool("qr")
			}

			log := newLogger(c)
			fs := osfilesystem.New()
			renderer := ggrenderer.New()
			sink, err := newSink(c, fs, renderer)
			if err != nil {
				return err
			}

			orchCfg := cfg.ToOrchestratorConfig(photos)
			if text := adTextFromFlags(c); text != (pipeline.AdText{}) {
				orchCfg.Text = text
			}

			orch := orchestrator.New(
				collage.NewStage(renderer, fs, sink, log),
				post.NewStage(renderer, fs, fontdir.New(), qrbadge.New(), sink, log),
				fs,
				log,
			)
			result, err := orch.Run(c.Context, orchCfg)
			if err != nil {
				return err
			}

			log.Info("Output saved to %s", result.Collage.OutputPath)
			for _, path := range result.Posts.Outputs {
				log.Info("Output saved to %s", path)
			}
			return nil
		},
	}
}

// collageCommand composes only the 3x3 collage.
func collageCommand() *cli.Command {
	flags := []cli.Flag{
		&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Required: true, Usage: l10n.T("Output JPEG file path")},
		&cli.IntFlag{Name: "canvas", Value: 1080, Usage: l10n.T("Square canvas side in pixels")},
		&cli.IntFlag{Name: "quality", Aliases: []string{"q"}, Value: 90, Usage: l10n.T("JPEG quality (1-100)")},
	}
	flags = append(flags, loggingFlags()...)

	return &cli.Command{
		Name:      "collage",
		Usage:     l10n.T("Compose a 3x3 photo collage"),
		ArgsUsage: "PHOTO...",
		Flags:     flags,
		Action: func(c *cli.Context) error {
			photos := c.Args().Slice()
			if len(photos) == 0 {
				return cli.Exit(l10n.T("At least one photo argument is required"), 1)
			}

			log := newLogger(c)
			fs := osfilesystem.New()
			renderer := ggrenderer.New()
			sink, err := newSink(c, fs, renderer)
			if err != nil {
				return err
			}

			stage := collage.NewStage(renderer, fs, sink, log)
			side := c.Int("canvas")
			result, err := stage.Execute(c.Context, pipeline.CollageInput{
				Paths:      photos,
				OutputPath: orchestrator.NormalizeOutputPath(c.String("out")),
				Canvas:     pipeline.Dimension{Width: side, Height: side},
				Quality:    c.Int("quality"),
			})
			if err != nil {
				return err
			}

			log.Info("Output saved to %s", result.OutputPath)
			return nil
		},
	}
}

// postsCommand composes only the three branded post variants.
func postsCommand() *cli.Command {
	flags := []cli.Flag{
		&cli.StringFlag{Name: "out-dir", Aliases: []string{"o"}, Required: true, Usage: l10n.T("Output directory for the post variants")},
		&cli.IntFlag{Name: "quality", Aliases: []string{"q"}, Value: 90, Usage: l10n.T("JPEG quality (1-100)")},
		&cli.BoolFlag{Name: "qr", Usage: l10n.T("Draw a contact QR badge on the wide banner")},
	}
	flags = append(flags, textFlags()...)
	flags = append(flags, loggingFlags()...)

	return &cli.Command{
		Name:      "posts",
		Usage:     l10n.T("Compose the three branded social post variants"),
		ArgsUsage: "PHOTO...",
		Flags:     flags,
		Action: func(c *cli.Context) error {
			photos := c.Args().Slice()
			if len(photos) == 0 {
				return cli.Exit(l10n.T("At least one photo argument is required"), 1)
			}

			log := newLogger(c)
			fs := osfilesystem.New()
			renderer := ggrenderer.New()
			sink, err := newSink(c, fs, renderer)
			if err != nil {
				return err
			}

			stage := post.NewStage(renderer, fs, fontdir.New(), qrbadge.New(), sink, log)
			input := pipeline.DefaultPostInput()
			input.Paths = photos
			input.OutDir = c.String("out-dir")
			input.Text = adTextFromFlags(c)
			input.Quality = c.Int("quality")
			input.QR = c.Bool("qr")

			result, err := stage.Execute(c.Context, input)
			if err != nil {
				return err
			}

			for _, path := range result.Outputs {
				log.Info("Output saved to %s", path)
			}
			return nil
		},
	}
}
