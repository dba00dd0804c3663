// Genealogy - Content Relation Inference and Post Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/genealogy

/*
Package supervisor provides process supervision for watch mode using suture v4.

In watch mode the recommendations are regenerated periodically until the
process receives SIGINT or SIGTERM. The work runs under a small supervisor
tree:

	root ("genealogy")
	└── pipeline ("pipeline-layer")
	    └── PipelineService

A service that returns an error or panics is restarted by suture, with
backoff once FailureThreshold is exceeded. A failed pipeline run is not a
service failure: PipelineService logs it and tries again on the next tick.

# Usage Example

	tree, err := supervisor.NewSupervisorTree(
	    logging.NewSlogLogger(logging.Logger()),
	    supervisor.DefaultTreeConfig(),
	)
	if err != nil {
	    return err
	}
	tree.AddPipelineService(services.NewPipelineService(p, services.PipelineServiceConfig{
	    Interval: cfg.Watch.Interval,
	}, logger))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	err = tree.Serve(ctx)

# Logging

Supervisor events (service failures, restarts, backoff) are logged through
sutureslog. The slog logger is usually the zerolog adapter from
internal/logging, so supervisor events share the application's format.
*/
package supervisor
