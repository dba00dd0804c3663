// Genealogy - Content Relation Inference and Post Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/genealogy

// Package render serializes recommendations as JSON.
package render

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"

	"github.com/tomtom215/genealogy/internal/recommend"
)

// PostJSON is a recommended post in the output document.
type PostJSON struct {
	Title string `json:"title"`
	Slug  string `json:"slug"`
	Score int    `json:"score"`
}

// RecommendationJSON lists the recommendations for one post.
type RecommendationJSON struct {
	Title           string     `json:"title"`
	Slug            string     `json:"slug"`
	Recommendations []PostJSON `json:"recommendations"`
}

// Document converts recommendations into their output shape, keeping order.
func Document(recs []recommend.Recommendation) []RecommendationJSON {
	doc := make([]RecommendationJSON, 0, len(recs))
	for _, rec := range recs {
		entry := RecommendationJSON{
			Title:           rec.Post.Title(),
			Slug:            rec.Post.Slug(),
			Recommendations: make([]PostJSON, 0, len(rec.Recommended)),
		}
		for _, sp := range rec.Recommended {
			entry.Recommendations = append(entry.Recommendations, PostJSON{
				Title: sp.Post.Title(),
				Slug:  sp.Post.Slug(),
				Score: sp.Score,
			})
		}
		doc = append(doc, entry)
	}
	return doc
}

// Write encodes recommendations as a tab indented JSON array.
func Write(w io.Writer, recs []recommend.Recommendation) error {
	data, err := json.MarshalIndent(Document(recs), "", "\t")
	if err != nil {
		return fmt.Errorf("encoding recommendations: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing recommendations: %w", err)
	}
	return nil
}

// WriteFile writes recommendations to path, or to stdout when path is empty.
// The file is created or truncated; its directory must exist.
func WriteFile(path string, recs []recommend.Recommendation) error {
	if path == "" {
		return Write(os.Stdout, recs)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	if err := Write(f, recs); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing output file: %w", err)
	}
	return nil
}
