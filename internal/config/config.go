// Genealogy - Content Relation Inference and Post Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/genealogy

package config

import (
	"time"
)

// Config holds all application configuration
type Config struct {
	Content   ContentConfig   `koanf:"content"`
	Output    OutputConfig    `koanf:"output"`
	Genealogy GenealogyConfig `koanf:"genealogy"`
	Recommend RecommendConfig `koanf:"recommend"`
	Watch     WatchConfig     `koanf:"watch"`
	Metrics   MetricsConfig   `koanf:"metrics"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ContentConfig locates the markdown posts.
type ContentConfig struct {
	Dir         string `koanf:"dir" validate:"required,notblank"`
	ArticlesDir string `koanf:"articles_dir"`
	VideosDir   string `koanf:"videos_dir"`
	TalksDir    string `koanf:"talks_dir"`
}

// OutputConfig controls where recommendations are written.
type OutputConfig struct {
	File string `koanf:"file"` // Empty writes to stdout
}

// GenealogyConfig controls relation inference.
type GenealogyConfig struct {
	Genealogists  []string           `koanf:"genealogists" validate:"min=1,dive,notblank"`
	Weights       map[string]float64 `koanf:"weights"`
	DefaultWeight float64            `koanf:"default_weight" validate:"gte=0"`
	Workers       int                `koanf:"workers" validate:"gte=0"` // 0 = use runtime.NumCPU()
	Timeout       time.Duration      `koanf:"timeout" validate:"gte=0"` // 0 = no deadline
	Seed          int64              `koanf:"seed"`                     // 0 = seed the random baseline from the clock
}

// RecommendConfig controls the recommender.
type RecommendConfig struct {
	PerPost int `koanf:"per_post" validate:"min=1"`
}

// WatchConfig enables periodic regeneration.
type WatchConfig struct {
	Enabled  bool          `koanf:"enabled"`
	Interval time.Duration `koanf:"interval"`
}

// MetricsConfig holds metrics export settings.
type MetricsConfig struct {
	Textfile string `koanf:"textfile"` // Prometheus text exposition written after each run
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error"`
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`
}
