// Genealogy - Content Relation Inference and Post Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/genealogy

package logging

import (
	"os"
	"runtime"

	"github.com/rs/zerolog"
)

// ProcessDetails describes the running process.
type ProcessDetails struct {
	PID       int
	GoVersion string
	OS        string
	Arch      string
	NumCPU    int
}

// CurrentProcess returns the details of the running process.
func CurrentProcess() ProcessDetails {
	return ProcessDetails{
		PID:       os.Getpid(),
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		NumCPU:    runtime.NumCPU(),
	}
}

// LogProcessDetails writes the process details at info level.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func LogProcessDetails(logger zerolog.Logger, details ProcessDetails) {
	logger.Info().
		Int("pid", details.PID).
		Str("go_version", details.GoVersion).
		Str("os", details.OS).
		Str("arch", details.Arch).
		Int("num_cpu", details.NumCPU).
		Msg("Process details")
}
