// Genealogy - Content Relation Inference and Post Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/genealogy

package content

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/tomtom215/genealogy/internal/post"
)

// Front matter keys.
const (
	KeyTitle       = "title"
	KeyTags        = "tags"
	KeyDate        = "date"
	KeyDescription = "description"
	KeySlug        = "slug"
	KeyRepository  = "repo"
	KeyVideoSlug   = "videoSlug"
	KeySlides      = "slides"
)

// DateLayout is the layout of the date key.
const DateLayout = "2006-01-02"

const separator = "---"

var (
	// ErrNoFrontMatter is returned when a file has fewer than two separator lines.
	ErrNoFrontMatter = errors.New("front matter not found")

	// ErrMissingKey is returned when a required front matter key is absent.
	ErrMissingKey = errors.New("missing front matter key")
)

// requiredKeys lists the keys every post must carry. Kind specific keys
// (videoSlug, slides) are enforced by post.New.
var requiredKeys = []string{KeyTitle, KeyTags, KeyDate, KeyDescription, KeySlug}

// document is a markdown file split at its front matter separators.
type document struct {
	frontMatter []string
	body        []string
}

// split separates the front matter block from the body. The block is
// delimited by the first two lines whose trimmed value is "---"; lines
// before the first separator are ignored.
func split(r io.Reader) (document, error) {
	var doc document
	seen := 0

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case seen < 2 && strings.TrimSpace(line) == separator:
			seen++
		case seen == 1:
			doc.frontMatter = append(doc.frontMatter, line)
		case seen == 2:
			doc.body = append(doc.body, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return document{}, fmt.Errorf("reading: %w", err)
	}
	if seen < 2 {
		return document{}, ErrNoFrontMatter
	}
	return doc, nil
}

// frontMatter holds the raw values of the known keys.
type frontMatter struct {
	values map[string]string
	tags   []string
}

func (fm frontMatter) value(key string) (string, bool) {
	v, ok := fm.values[key]
	return v, ok
}

// parseFrontMatter reads the block as YAML. Blocks that are not valid
// YAML, typically an unquoted title containing a colon, fall back to
// plain "key: value" lines split at the first colon.
func parseFrontMatter(lines []string) (frontMatter, error) {
	fm, err := parseYAML(strings.Join(lines, "\n"))
	if err == nil {
		return fm, nil
	}
	return parseLines(lines)
}

func parseYAML(block string) (frontMatter, error) {
	fm := frontMatter{values: make(map[string]string)}

	var nodes map[string]yaml.Node
	if err := yaml.Unmarshal([]byte(block), &nodes); err != nil {
		return fm, err
	}

	for key, node := range nodes {
		if key == KeyTags {
			tags, err := tagsFromNode(&node)
			if err != nil {
				return fm, err
			}
			fm.tags = tags
			fm.values[key] = ""
			continue
		}
		if node.Kind != yaml.ScalarNode {
			return fm, fmt.Errorf("key %q: expected a scalar value", key)
		}
		fm.values[key] = node.Value
	}
	return fm, nil
}

func tagsFromNode(node *yaml.Node) ([]string, error) {
	switch node.Kind {
	case yaml.SequenceNode:
		tags := make([]string, 0, len(node.Content))
		for _, item := range node.Content {
			if item.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("key %q: expected a list of strings", KeyTags)
			}
			tags = append(tags, item.Value)
		}
		return tags, nil
	case yaml.ScalarNode:
		return ParseTags(node.Value), nil
	default:
		return nil, fmt.Errorf("key %q: expected a list or a string", KeyTags)
	}
}

func parseLines(lines []string) (frontMatter, error) {
	fm := frontMatter{values: make(map[string]string)}
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		key, value, found := strings.Cut(line, ":")
		if !found {
			return fm, fmt.Errorf("front matter line without a key: %q", line)
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if key == KeyTags {
			fm.tags = ParseTags(value)
		}
		fm.values[key] = value
	}
	return fm, nil
}

// ParseTags splits a "[a, b]" tag string. Brackets are optional and
// blank entries are dropped.
func ParseTags(s string) []string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")

	var tags []string
	for _, tag := range strings.Split(s, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// Parse reads a markdown document of the given kind into a Post.
func Parse(r io.Reader, kind post.Kind) (post.Post, error) {
	doc, err := split(r)
	if err != nil {
		return post.Post{}, err
	}

	fm, err := parseFrontMatter(doc.frontMatter)
	if err != nil {
		return post.Post{}, fmt.Errorf("parsing front matter: %w", err)
	}

	for _, key := range requiredKeys {
		if _, ok := fm.value(key); !ok {
			return post.Post{}, fmt.Errorf("%w %q", ErrMissingKey, key)
		}
	}

	rawDate, _ := fm.value(KeyDate)
	date, err := time.Parse(DateLayout, strings.TrimSpace(rawDate))
	if err != nil {
		return post.Post{}, fmt.Errorf("key %q: %w", KeyDate, err)
	}

	attrs := post.Attributes{
		Kind:        kind,
		Date:        date,
		Tags:        fm.tags,
		Title:       fm.values[KeyTitle],
		Description: fm.values[KeyDescription],
		Slug:        fm.values[KeySlug],
		Repository:  fm.values[KeyRepository],
		VideoSlug:   fm.values[KeyVideoSlug],
		Slides:      fm.values[KeySlides],
	}
	if kind == post.KindArticle {
		attrs.Content = strings.Join(doc.body, "\n")
	}

	return post.New(attrs)
}
