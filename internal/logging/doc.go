// Genealogy - Content Relation Inference and Post Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/genealogy

// Package logging provides centralized zerolog-based structured logging.
//
// # Overview
//
// The package provides:
//   - A global zerolog logger configured once from main via Init
//   - JSON output for machine consumption, console output for terminals
//   - Component loggers (WithComponent) handed to the engine, loader and recommender
//   - Run-scoped correlation IDs carried in context.Context
//   - An slog adapter so sutureslog reports supervisor events through zerolog
//   - Process details (PID, Go runtime version) logged at startup
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logging.Info().Int("posts", 42).Msg("Content loaded")
//
//	ctx = logging.ContextWithNewCorrelationID(ctx)
//	logging.Ctx(ctx).Info().Msg("Pipeline run started")
//
// # Configuration
//
// The configuration keys logging.level, logging.format and logging.caller
// (environment LOG_LEVEL, LOG_FORMAT, LOG_CALLER) map onto Config.
//
// Logs always go to stderr by default: stdout is reserved for the rendered
// recommendations when no output file is configured.
//
// # Best Practices
//
// Always terminate log chains with .Msg() or .Send():
//
//	logging.Info().Str("key", "value").Msg("message")  // Correct
//	logging.Info().Str("key", "value")                 // WRONG - log not emitted
package logging
