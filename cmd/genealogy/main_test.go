// Genealogy - Content Relation Inference and Post Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/genealogy

package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/genealogy/internal/config"
	"github.com/tomtom215/genealogy/internal/genealogy"
	"github.com/tomtom215/genealogy/internal/render"
)

// isolate runs the test in an empty working directory with no config
// file and no genealogy environment variables.
func isolate(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv(config.ConfigPathEnvVar, "")
	for _, name := range config.EnvVars() {
		t.Setenv(name, "")
	}
	t.Setenv("LOG_LEVEL", "error")
}

func writePost(t *testing.T, path, title, slug, tags string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	content := "---\n" +
		"title: " + title + "\n" +
		"tags: [" + tags + "]\n" +
		"date: 2024-03-01\n" +
		"description: About " + title + "\n" +
		"slug: " + slug + "\n" +
		"---\n\nBody.\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestRun_Help(t *testing.T) {
	isolate(t)

	var stderr bytes.Buffer
	err := run(context.Background(), []string{"-h"}, &stderr)
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("run(-h) error = %v, want flag.ErrHelp", err)
	}

	out := stderr.String()
	for _, want := range []string{"Usage: genealogy", "GENEALOGY_CONTENT_DIR", "tag, type"} {
		if !strings.Contains(out, want) {
			t.Errorf("usage output missing %q:\n%s", want, out)
		}
	}
}

func TestRun_WritesRecommendations(t *testing.T) {
	isolate(t)

	content := t.TempDir()
	writePost(t, filepath.Join(content, "articles", "go.md"), "Go", "go", "go, testing")
	writePost(t, filepath.Join(content, "articles", "fuzz.md"), "Fuzzing", "fuzz", "go, fuzzing")
	writePost(t, filepath.Join(content, "articles", "rust.md"), "Rust", "rust", "rust")
	out := filepath.Join(t.TempDir(), "recs.json")

	if err := run(context.Background(), []string{content, out}, &bytes.Buffer{}); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	var doc []render.RecommendationJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, data)
	}
	if len(doc) != 3 {
		t.Fatalf("got %d entries, want 3", len(doc))
	}
	for _, entry := range doc {
		if len(entry.Recommendations) != 2 {
			t.Errorf("%s has %d recommendations, want 2", entry.Slug, len(entry.Recommendations))
		}
	}
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{name: "too many arguments", args: []string{"a", "b", "c"}},
		{name: "missing content dir", args: []string{"/does/not/exist"}},
		{name: "unknown flag", args: []string{"-nope"}},
		{
			name: "unknown genealogist",
			args: []string{"."},
			env:  map[string]string{"GENEALOGY_GENEALOGISTS": "tag,astrology"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			if err := run(context.Background(), tt.args, &bytes.Buffer{}); err == nil {
				t.Fatal("run() error = nil, want error")
			}
		})
	}
}

func TestNewRegistry(t *testing.T) {
	isolate(t)

	cfg, err := config.LoadWithKoanf([]string{"."})
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	reg, err := newRegistry(cfg)
	if err != nil {
		t.Fatalf("newRegistry() error = %v", err)
	}
	if got := len(reg.Names()); got != len(config.DefaultGenealogists) {
		t.Errorf("registered %d genealogists, want %d", got, len(config.DefaultGenealogists))
	}

	cfg.Genealogy.Genealogists = []string{"tag", "horoscope"}
	if _, err := newRegistry(cfg); !errors.Is(err, genealogy.ErrUnknownGenealogist) {
		t.Errorf("newRegistry() error = %v, want ErrUnknownGenealogist", err)
	}
}
