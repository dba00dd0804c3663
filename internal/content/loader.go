// Genealogy - Content Relation Inference and Post Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/genealogy

package content

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/genealogy/internal/post"
)

// ErrDuplicateSlug is returned when two files declare the same slug.
var ErrDuplicateSlug = errors.New("duplicate slug")

// Config describes where posts live.
type Config struct {
	// Dir is the content root. Markdown files directly in it are articles.
	Dir string

	// Subdirectories of Dir holding posts of one kind. Empty disables the kind.
	ArticlesDir string
	VideosDir   string
	TalksDir    string
}

// DefaultConfig returns the conventional layout rooted at dir.
func DefaultConfig(dir string) Config {
	return Config{
		Dir:         dir,
		ArticlesDir: "articles",
		VideosDir:   "videos",
		TalksDir:    "talks",
	}
}

// source is one markdown file and the kind its location implies.
type source struct {
	path string
	kind post.Kind
}

// Loader reads posts from a content directory.
type Loader struct {
	cfg     Config
	workers int
	logger  zerolog.Logger
}

// NewLoader creates a loader for the given layout.
func NewLoader(cfg Config, logger zerolog.Logger) *Loader {
	return &Loader{
		cfg:     cfg,
		workers: runtime.NumCPU(),
		logger:  logger.With().Str("component", "content").Logger(),
	}
}

// Load parses every post under the content root. Files are returned in
// lexical path order. Any unreadable or invalid file fails the load.
func (l *Loader) Load(ctx context.Context) ([]post.Post, error) {
	sources, err := l.discover()
	if err != nil {
		return nil, err
	}

	posts := make([]post.Post, len(sources))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(l.workers)
	for i, src := range sources {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			p, err := ParseFile(src.path, src.kind)
			if err != nil {
				return err
			}
			posts[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	seen := make(map[string]string, len(posts))
	for i, p := range posts {
		if first, dup := seen[p.Slug()]; dup {
			return nil, fmt.Errorf("%w %q in %s and %s", ErrDuplicateSlug, p.Slug(), first, sources[i].path)
		}
		seen[p.Slug()] = sources[i].path
	}

	l.logger.Debug().
		Str("dir", l.cfg.Dir).
		Int("posts", len(posts)).
		Msg("Content loaded")

	return posts, nil
}

// ParseFile parses a single markdown file. Errors name the file.
func ParseFile(path string, kind post.Kind) (post.Post, error) {
	f, err := os.Open(path)
	if err != nil {
		return post.Post{}, fmt.Errorf("creating %s failed: %s: %w", kind, path, err)
	}
	defer f.Close()

	p, err := Parse(f, kind)
	if err != nil {
		return post.Post{}, fmt.Errorf("creating %s failed: %s: %w", kind, path, err)
	}
	return p, nil
}

func (l *Loader) discover() ([]source, error) {
	info, err := os.Stat(l.cfg.Dir)
	if err != nil {
		return nil, fmt.Errorf("content directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("content directory %s is not a directory", l.cfg.Dir)
	}

	sources, err := markdownFiles(l.cfg.Dir, post.KindArticle)
	if err != nil {
		return nil, err
	}

	kinds := []struct {
		dir  string
		kind post.Kind
	}{
		{l.cfg.ArticlesDir, post.KindArticle},
		{l.cfg.VideosDir, post.KindVideo},
		{l.cfg.TalksDir, post.KindTalk},
	}
	for _, k := range kinds {
		if k.dir == "" {
			continue
		}
		dir := filepath.Join(l.cfg.Dir, k.dir)
		found, err := markdownFiles(dir, k.kind)
		if errors.Is(err, fs.ErrNotExist) {
			l.logger.Debug().Str("dir", dir).Msg("Kind directory missing, skipping")
			continue
		}
		if err != nil {
			return nil, err
		}
		sources = append(sources, found...)
	}

	sort.Slice(sources, func(i, j int) bool {
		return sources[i].path < sources[j].path
	})
	return sources, nil
}

// markdownFiles lists the *.md regular files directly inside dir.
func markdownFiles(dir string, kind post.Kind) ([]source, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}

	var sources []source
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".md") {
			continue
		}
		sources = append(sources, source{
			path: filepath.Join(dir, entry.Name()),
			kind: kind,
		})
	}
	return sources, nil
}
