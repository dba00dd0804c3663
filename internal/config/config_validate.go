// Genealogy - Content Relation Inference and Post Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/genealogy

package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tomtom215/genealogy/internal/validation"
)

// MinWatchInterval is the shortest allowed regeneration interval.
const MinWatchInterval = time.Second

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c).Err(); err != nil {
		return err
	}

	if err := c.validateContent(); err != nil {
		return err
	}

	if err := c.validateOutput(); err != nil {
		return err
	}

	if err := c.validateGenealogy(); err != nil {
		return err
	}

	return c.validateWatch()
}

// validateContent requires the content root to be an existing directory.
func (c *Config) validateContent() error {
	info, err := os.Stat(c.Content.Dir)
	if err != nil {
		return fmt.Errorf("content directory %s: %w", c.Content.Dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("content directory %s is not a directory", c.Content.Dir)
	}
	return nil
}

// validateOutput requires the output file's directory to exist and an
// existing output file to be a writable regular file.
func (c *Config) validateOutput() error {
	if c.Output.File == "" {
		return nil
	}

	dir := filepath.Dir(c.Output.File)
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return fmt.Errorf("output directory %s does not exist", dir)
	}

	info, err := os.Stat(c.Output.File)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("output file %s: %w", c.Output.File, err)
	}
	if info.IsDir() {
		return fmt.Errorf("output file %s is a directory", c.Output.File)
	}
	if info.Mode().Perm()&0o222 == 0 {
		return fmt.Errorf("output file %s is not writable", c.Output.File)
	}
	return nil
}

// validateGenealogy checks the weight table. Genealogist names are resolved
// against the registry when the pipeline runs.
func (c *Config) validateGenealogy() error {
	if math.IsInf(c.Genealogy.DefaultWeight, 0) || math.IsNaN(c.Genealogy.DefaultWeight) {
		return fmt.Errorf("genealogy.default_weight must be finite")
	}
	for relType, weight := range c.Genealogy.Weights {
		if strings.TrimSpace(relType) == "" {
			return fmt.Errorf("genealogy.weights contains a blank relation type")
		}
		if weight < 0 || math.IsInf(weight, 0) || math.IsNaN(weight) {
			return fmt.Errorf("genealogy.weights.%s must be a finite, non-negative number", relType)
		}
	}
	return nil
}

// validateWatch requires a sensible interval when watch mode is enabled.
func (c *Config) validateWatch() error {
	if !c.Watch.Enabled {
		return nil
	}
	if c.Watch.Interval < MinWatchInterval {
		return fmt.Errorf("watch.interval must be at least %s when watch mode is enabled, got %s",
			MinWatchInterval, c.Watch.Interval)
	}
	return nil
}
