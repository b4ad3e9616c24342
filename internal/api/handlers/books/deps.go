package books

import (
	"context"
	"net/http"
	"strconv"

	"github.com/atasoy/shelfmate/internal/metadata"
	"github.com/atasoy/shelfmate/internal/recommend"
	"github.com/atasoy/shelfmate/internal/weather"
)

// The handlers consume the external clients through these interfaces so
// tests can stub them.

type MetadataSearcher interface {
	Search(ctx context.Context, query string) []metadata.SearchResult
}

type WeatherSource interface {
	Current(ctx context.Context) (weather.Category, float64)
}

type Recommender interface {
	Recommend(ctx context.Context, cat weather.Category) ([]recommend.Pick, string)
}

// pathID parses the {id} path value. ok is false for anything non-numeric,
// which the caller turns into a 404.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// formInt coerces a form field best-effort: malformed input becomes 0,
// never a rejection.
func formInt(r *http.Request, field string) int {
	n, err := strconv.Atoi(r.FormValue(field))
	if err != nil {
		return 0
	}
	return n
}
