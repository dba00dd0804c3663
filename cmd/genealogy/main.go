// Genealogy - Content Relation Inference and Post Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/genealogy

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/tomtom215/genealogy/internal/config"
	"github.com/tomtom215/genealogy/internal/genealogy"
	"github.com/tomtom215/genealogy/internal/logging"
	"github.com/tomtom215/genealogy/internal/pipeline"
	"github.com/tomtom215/genealogy/internal/supervisor"
	"github.com/tomtom215/genealogy/internal/supervisor/services"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		stop()
		logging.Fatal().Err(err).Msg("genealogy failed")
	}
}

// run parses arguments, loads configuration and either runs the pipeline
// once or supervises periodic runs until ctx is canceled.
func run(ctx context.Context, args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("genealogy", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { usage(stderr) }
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.LoadWithKoanf(fs.Args())
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})
	logging.LogProcessDetails(logging.Logger(), logging.CurrentProcess())

	registry, err := newRegistry(cfg)
	if err != nil {
		return err
	}

	logging.Info().
		Str("content_dir", cfg.Content.Dir).
		Str("output_file", outputName(cfg.Output.File)).
		Strs("genealogists", cfg.Genealogy.Genealogists).
		Int("per_post", cfg.Recommend.PerPost).
		Bool("watch", cfg.Watch.Enabled).
		Msg("Configuration loaded")

	p := pipeline.New(cfg, registry, logging.Logger())

	if !cfg.Watch.Enabled {
		_, err := p.Run(ctx)
		return err
	}
	return watch(ctx, cfg, p)
}

// watch regenerates the recommendations every watch.interval under a
// supervisor tree until ctx is canceled.
func watch(ctx context.Context, cfg *config.Config, p *pipeline.Pipeline) error {
	tree, err := supervisor.NewSupervisorTree(
		logging.NewSlogLogger(logging.WithComponent("supervisor")),
		supervisor.DefaultTreeConfig(),
	)
	if err != nil {
		return fmt.Errorf("failed to create supervisor tree: %w", err)
	}

	tree.AddPipelineService(services.NewPipelineService(p, services.PipelineServiceConfig{
		Interval: cfg.Watch.Interval,
	}, logging.Logger()))

	logging.Info().Dur("interval", cfg.Watch.Interval).Msg("Watching content, press Ctrl+C to stop")
	errCh := tree.ServeBackground(ctx)

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	// Report any services that failed to stop within timeout
	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
	}

	logging.Info().Msg("Stopped watching")
	return nil
}

func outputName(path string) string {
	if path == "" {
		return "stdout"
	}
	return path
}

func usage(w io.Writer) {
	fmt.Fprintf(w, `Usage: genealogy [content-dir [output-file]]

Infers relations between the posts in content-dir and writes the top
recommendations per post as JSON to output-file (default: stdout).

Available genealogists: %s

Configuration is read from CONFIG_PATH, genealogy.yaml, genealogy.yml or
.recs.yaml in the working directory, then ~/.recs.yaml. Environment
variables override the file:

  %s
`, strings.Join(builtinNames(), ", "), strings.Join(config.EnvVars(), "\n  "))
}

// builtinNames lists the names a default registry knows.
func builtinNames() []string {
	reg := genealogy.NewRegistry()
	if err := registerGenealogists(reg, 0); err != nil {
		return nil
	}
	return reg.Names()
}
