// Package recommend picks a handful of books matching the current weather:
// one genre tag is drawn from a fixed per-category list and fed to the
// metadata API.
package recommend

import (
	"context"
	"math/rand"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/atasoy/shelfmate/internal/metadata"
	"github.com/atasoy/shelfmate/internal/weather"
)

const (
	maxPicks     = 3
	langRestrict = "en"

	// Label used when the metadata call fails.
	fallbackLabel = "General"
)

// genreTags maps a weather category to its candidate search tags. The
// Clouds row doubles as the fallback for unrecognized categories.
var genreTags = map[weather.Category][]string{
	weather.Clear:  {"subject:adventure", "subject:travel"},
	weather.Clouds: {"subject:fiction", "subject:philosophy", "subject:essays"},
	weather.Rain:   {"subject:mystery", "subject:thriller", "subject:poetry"},
	weather.Snow:   {"subject:fantasy", "subject:history"},
}

// Pick is one recommended book.
type Pick struct {
	Title         string
	Author        string
	CoverImageURL string
	PreviewLink   string
}

// Searcher is the slice of the metadata client the selector needs.
type Searcher interface {
	SearchLimited(ctx context.Context, query string, max int, lang string) ([]metadata.VolumeResult, error)
}

type Selector struct {
	search Searcher
	intn   func(n int) int
}

func NewSelector(s Searcher) *Selector {
	return &Selector{search: s, intn: rand.Intn}
}

// NewSelectorWithRand injects the random source so tag selection is
// deterministic in tests.
func NewSelectorWithRand(s Searcher, intn func(n int) int) *Selector {
	return &Selector{search: s, intn: intn}
}

// Recommend returns up to three picks for the category plus the
// human-readable genre label that was searched. On any metadata failure it
// returns (nil, "General").
func (s *Selector) Recommend(ctx context.Context, cat weather.Category) ([]Pick, string) {
	tags, ok := genreTags[cat]
	if !ok {
		tags = genreTags[weather.Clouds]
	}
	tag := tags[s.intn(len(tags))]

	results, err := s.search.SearchLimited(ctx, tag, maxPicks, langRestrict)
	if err != nil {
		return nil, fallbackLabel
	}
	if len(results) > maxPicks {
		results = results[:maxPicks]
	}

	picks := make([]Pick, 0, len(results))
	for _, r := range results {
		picks = append(picks, Pick{
			Title:         r.Title,
			Author:        r.Author,
			CoverImageURL: r.CoverImageURL,
			PreviewLink:   r.PreviewLink,
		})
	}
	return picks, labelFromTag(tag)
}

// labelFromTag turns "subject:mystery" into "Mystery".
func labelFromTag(tag string) string {
	_, after, found := strings.Cut(tag, ":")
	if !found || after == "" {
		return fallbackLabel
	}
	return cases.Title(language.English).String(after)
}
