// Genealogy - Content Relation Inference and Post Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/genealogy

package post

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/tomtom215/genealogy/internal/validation"
)

// Kind identifies what sort of content a post is.
type Kind string

const (
	KindArticle Kind = "article"
	KindVideo   Kind = "video"
	KindTalk    Kind = "talk"

	// KindUnknown is a kind no built-in genealogist knows about.
	KindUnknown Kind = "unknown"
)

// ParseKind maps a kind name to a Kind, case-insensitively.
// Unrecognised names yield KindUnknown.
func ParseKind(s string) Kind {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindArticle:
		return KindArticle
	case KindVideo:
		return KindVideo
	case KindTalk:
		return KindTalk
	default:
		return KindUnknown
	}
}

// String returns the kind name.
func (k Kind) String() string {
	return string(k)
}

// Attributes carries the raw values a Post is built from.
// Content loaders fill it from front matter; tests fill it directly.
type Attributes struct {
	Kind        Kind      `validate:"required,oneof=article video talk unknown"`
	Slug        string    `validate:"required,notblank"`
	Title       string    `validate:"required,notblank"`
	Description string    `validate:"required,notblank"`
	Date        time.Time `validate:"required"`
	Tags        []string

	// Repository is optional for articles and videos and forbidden for talks.
	Repository string `validate:"excluded_if=Kind talk"`

	// VideoSlug is required for videos and optional for talks.
	VideoSlug string `validate:"required_if=Kind video"`

	// Slides is required for talks and must be an absolute URL.
	Slides string `validate:"required_if=Kind talk,omitempty,url"`

	// Content is the markdown body after the front matter.
	Content string
}

// Post is an immutable content item. Its identity is the slug.
type Post struct {
	kind        Kind
	slug        string
	title       string
	description string
	date        time.Time
	tags        []string
	repository  string
	videoSlug   string
	slides      string
	content     string
}

// New validates the attributes and builds a Post.
//
// Title and description lose one pair of surrounding double quotes and
// outer whitespace. Tags are trimmed, deduplicated and sorted; blank tags
// are dropped.
func New(attrs Attributes) (Post, error) {
	attrs.Slug = strings.TrimSpace(attrs.Slug)
	attrs.Title = unquote(attrs.Title)
	attrs.Description = unquote(attrs.Description)
	attrs.Repository = strings.TrimSpace(attrs.Repository)
	attrs.VideoSlug = strings.TrimSpace(attrs.VideoSlug)
	attrs.Slides = strings.TrimSpace(attrs.Slides)

	if verr := validation.ValidateStruct(&attrs); verr != nil {
		return Post{}, fmt.Errorf("invalid %s %q: %w", attrs.Kind, attrs.Slug, verr)
	}

	return Post{
		kind:        attrs.Kind,
		slug:        attrs.Slug,
		title:       attrs.Title,
		description: attrs.Description,
		date:        attrs.Date,
		tags:        normalizeTags(attrs.Tags),
		repository:  attrs.Repository,
		videoSlug:   attrs.VideoSlug,
		slides:      attrs.Slides,
		content:     attrs.Content,
	}, nil
}

// Kind returns the post kind.
func (p Post) Kind() Kind { return p.kind }

// Slug returns the unique, stable identifier of the post.
func (p Post) Slug() string { return p.slug }

// Title returns the post title.
func (p Post) Title() string { return p.title }

// Description returns the post description.
func (p Post) Description() string { return p.description }

// Date returns the publication date.
func (p Post) Date() time.Time { return p.date }

// Content returns the markdown body.
func (p Post) Content() string { return p.content }

// Tags returns a copy of the sorted tag set.
func (p Post) Tags() []string {
	out := make([]string, len(p.tags))
	copy(out, p.tags)
	return out
}

// Repository returns the source repository identifier, if any.
func (p Post) Repository() (string, bool) {
	return p.repository, p.repository != ""
}

// VideoSlug returns the video reference, if any.
func (p Post) VideoSlug() (string, bool) {
	return p.videoSlug, p.videoSlug != ""
}

// Slides returns the slides URL, if any.
func (p Post) Slides() (string, bool) {
	return p.slides, p.slides != ""
}

// Equal reports whether both posts have the same slug.
//
//nolint:gocritic // Post is a small immutable value
func (p Post) Equal(other Post) bool {
	return p.slug == other.slug
}

// String returns the slug.
func (p Post) String() string {
	return p.slug
}

// unquote trims whitespace and strips one pair of surrounding double quotes.
func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	return s
}

func normalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}
