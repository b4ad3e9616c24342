// Package metadata talks to the Google Books volumes API and reshapes its
// responses into the small result types the rest of the app consumes.
package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	defaultBaseURL = "https://www.googleapis.com/books/v1"

	// Shown when a volume carries no cover image.
	placeholderCover = "https://via.placeholder.com/128x196?text=No+Cover"

	unknownAuthor = "Unknown"
)

// SearchResult is what the search page renders. Not persisted; a book only
// enters the store when the user explicitly adds it.
type SearchResult struct {
	Title         string
	Author        string
	PageCount     int
	CoverImageURL string
}

// VolumeResult is the richer shape the recommendation selector needs.
type VolumeResult struct {
	Title         string
	Author        string
	CoverImageURL string
	PreviewLink   string
}

type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    defaultBaseURL,
	}
}

// NewClientWithBaseURL exists for tests pointed at a local server.
func NewClientWithBaseURL(base string, hc *http.Client) *Client {
	if hc == nil {
		hc = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{httpClient: hc, baseURL: base}
}

// Search runs a free-text volume search. Any transport, HTTP or decode
// failure degrades to an empty result list; the caller never sees an error
// from this boundary.
func (c *Client) Search(ctx context.Context, query string) []SearchResult {
	raw, err := c.fetchVolumes(ctx, c.baseURL+"/volumes?q="+url.QueryEscape(query))
	if err != nil {
		return nil
	}

	out := make([]SearchResult, 0, len(raw.Items))
	for _, it := range raw.Items {
		vi := it.VolumeInfo
		out = append(out, SearchResult{
			Title:         vi.Title,
			Author:        firstAuthor(vi.Authors),
			PageCount:     vi.PageCount,
			CoverImageURL: coverOrPlaceholder(vi),
		})
	}
	return out
}

// SearchLimited is the capped, language-restricted variant used by the
// recommendation selector. Unlike Search it reports failures; the selector
// owns the fallback policy.
func (c *Client) SearchLimited(ctx context.Context, query string, max int, lang string) ([]VolumeResult, error) {
	u := c.baseURL + "/volumes?q=" + url.QueryEscape(query) +
		"&maxResults=" + strconv.Itoa(max) +
		"&langRestrict=" + url.QueryEscape(lang)

	raw, err := c.fetchVolumes(ctx, u)
	if err != nil {
		return nil, err
	}

	out := make([]VolumeResult, 0, len(raw.Items))
	for _, it := range raw.Items {
		vi := it.VolumeInfo
		preview := vi.PreviewLink
		if preview == "" {
			preview = "#"
		}
		out = append(out, VolumeResult{
			Title:         vi.Title,
			Author:        firstAuthor(vi.Authors),
			CoverImageURL: coverOrPlaceholder(vi),
			PreviewLink:   preview,
		})
	}
	return out, nil
}

type volumesResponse struct {
	Items []volumeItem `json:"items"`
}

type volumeItem struct {
	VolumeInfo volumeInfo `json:"volumeInfo"`
}

type volumeInfo struct {
	Title       string   `json:"title"`
	Authors     []string `json:"authors"`
	PageCount   int      `json:"pageCount"`
	PreviewLink string   `json:"previewLink"`
	ImageLinks  struct {
		Thumbnail      string `json:"thumbnail"`
		SmallThumbnail string `json:"smallThumbnail"`
	} `json:"imageLinks"`
}

func (c *Client) fetchVolumes(ctx context.Context, u string) (volumesResponse, error) {
	var raw volumesResponse

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return raw, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return raw, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return raw, fmt.Errorf("volumes: status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return raw, err
	}
	return raw, nil
}

func firstAuthor(authors []string) string {
	if len(authors) == 0 {
		return unknownAuthor
	}
	return authors[0]
}

func coverOrPlaceholder(vi volumeInfo) string {
	cover := vi.ImageLinks.Thumbnail
	if cover == "" {
		cover = vi.ImageLinks.SmallThumbnail
	}
	if cover == "" {
		return placeholderCover
	}
	return cover
}
