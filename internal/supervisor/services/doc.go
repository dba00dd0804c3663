// Genealogy - Content Relation Inference and Post Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/genealogy

// Package services provides Suture service wrappers for long-running work.
//
// PipelineService regenerates recommendations periodically in watch mode:
//
//	svc := services.NewPipelineService(p, services.PipelineServiceConfig{
//	    Interval: cfg.Watch.Interval,
//	}, logger)
//	tree.AddPipelineService(svc)
package services
