// Genealogy - Content Relation Inference and Post Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/genealogy

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"genealogy.yaml",
	"genealogy.yml",
	UserConfigFile,
}

// UserConfigFile is looked up in the working directory and then in the
// user's home directory.
const UserConfigFile = ".recs.yaml"

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// DefaultGenealogists are the genealogists used when none are configured.
var DefaultGenealogists = []string{"tag", "type", "repo", "silly", "random"}

// defaultConfig returns a Config struct with all sensible default values.
// These defaults are applied first, then overridden by config file, env vars and arguments.
func defaultConfig() *Config {
	return &Config{
		Content: ContentConfig{
			Dir:         "", // Required: from file, GENEALOGY_CONTENT_DIR or the first argument
			ArticlesDir: "articles",
			VideosDir:   "videos",
			TalksDir:    "talks",
		},
		Output: OutputConfig{
			File: "",
		},
		Genealogy: GenealogyConfig{
			Genealogists:  append([]string(nil), DefaultGenealogists...),
			Weights:       map[string]float64{},
			DefaultWeight: 1.0,
			Workers:       0,
			Timeout:       5 * time.Minute,
			Seed:          0,
		},
		Recommend: RecommendConfig{
			PerPost: 3,
		},
		Watch: WatchConfig{
			Enabled:  false,
			Interval: 5 * time.Minute,
		},
		Metrics: MetricsConfig{
			Textfile: "",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			Caller: false,
		},
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults: Built-in sensible defaults
//  2. Config File: Optional YAML config file (if exists)
//  3. Environment Variables: Override any mapped setting
//  4. Arguments: [content-dir [output-file]]
//
// The resulting configuration is validated before it is returned.
func LoadWithKoanf(args []string) (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Load environment variables
	if err := k.Load(env.ProviderWithValue("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}
	if err := processMapFields(k); err != nil {
		return nil, fmt.Errorf("failed to process map fields: %w", err)
	}

	// Layer 4: Positional arguments (highest priority)
	if err := applyArgs(k, args); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file in the default paths, then in
// the home directory. Returns the path to the first file found, or empty
// string if none found.
func findConfigFile() string {
	// Check environment variable first
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		path := filepath.Join(home, UserConfigFile)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// applyArgs maps the positional arguments onto content.dir and output.file.
// The output file is resolved against the working directory.
func applyArgs(k *koanf.Koanf, args []string) error {
	if len(args) > 2 {
		return fmt.Errorf("too many arguments: want at most [content-dir [output-file]], got %d", len(args))
	}
	if len(args) > 0 {
		if err := k.Set("content.dir", args[0]); err != nil {
			return fmt.Errorf("failed to set content.dir: %w", err)
		}
	}
	if len(args) > 1 {
		out, err := filepath.Abs(args[1])
		if err != nil {
			return fmt.Errorf("resolving output file %s: %w", args[1], err)
		}
		if err := k.Set("output.file", out); err != nil {
			return fmt.Errorf("failed to set output.file: %w", err)
		}
	}
	return nil
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"genealogy.genealogists",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
// This is necessary because env vars come in as strings, but the config expects slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok {
			continue
		}
		if err := k.Set(path, splitList(strVal)); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// mapConfigPaths defines which config paths hold "key=number" lists when set from env vars
var mapConfigPaths = []string{
	"genealogy.weights",
}

// processMapFields converts "tag=1.5,repo=0.5" strings into weight maps.
func processMapFields(k *koanf.Koanf) error {
	for _, path := range mapConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok {
			continue
		}
		weights, err := parseWeightList(strVal)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		k.Delete(path)
		if err := k.Set(path, weights); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseWeightList(s string) (map[string]interface{}, error) {
	out := make(map[string]interface{})
	for _, entry := range splitList(s) {
		name, raw, found := strings.Cut(entry, "=")
		if !found {
			return nil, fmt.Errorf("entry %q is not of the form type=weight", entry)
		}
		weight, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, fmt.Errorf("entry %q: %w", entry, err)
		}
		out[strings.TrimSpace(name)] = weight
	}
	return out, nil
}

// envMappings maps environment variable names (lower-cased) to koanf paths.
var envMappings = map[string]string{
	// Content
	"genealogy_content_dir":  "content.dir",
	"genealogy_articles_dir": "content.articles_dir",
	"genealogy_videos_dir":   "content.videos_dir",
	"genealogy_talks_dir":    "content.talks_dir",
	"genealogy_output_file":  "output.file",

	// Inference
	"genealogy_genealogists":   "genealogy.genealogists",
	"genealogy_weights":        "genealogy.weights",
	"genealogy_default_weight": "genealogy.default_weight",
	"genealogy_workers":        "genealogy.workers",
	"genealogy_timeout":        "genealogy.timeout",
	"genealogy_seed":           "genealogy.seed",

	// Recommendations
	"recommend_per_post": "recommend.per_post",

	// Watch mode
	"watch_enabled":  "watch.enabled",
	"watch_interval": "watch.interval",

	// Metrics
	"metrics_textfile": "metrics.textfile",

	// Logging mappings
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc transforms environment variable names to koanf config paths.
//
// Examples:
//   - GENEALOGY_CONTENT_DIR -> content.dir
//   - RECOMMEND_PER_POST -> recommend.per_post
//   - LOG_LEVEL -> logging.level
//
// Unmapped and empty variables are skipped so unrelated environment
// variables never pollute the config.
func envTransformFunc(key, value string) (string, interface{}) {
	mapped, ok := envMappings[strings.ToLower(key)]
	if !ok || value == "" {
		return "", nil
	}
	return mapped, value
}

// EnvVars returns the supported environment variable names, sorted.
func EnvVars() []string {
	names := make([]string, 0, len(envMappings))
	for name := range envMappings {
		names = append(names, strings.ToUpper(name))
	}
	sort.Strings(names)
	return names
}
