package books

import (
	"database/sql"
	"net/http"

	"github.com/atasoy/shelfmate/internal/api/httpx"
	"github.com/atasoy/shelfmate/internal/recommend"
	"github.com/atasoy/shelfmate/internal/repo/bookrepo"
	"github.com/atasoy/shelfmate/internal/view"
	"github.com/atasoy/shelfmate/internal/weather"
)

type weatherPanel struct {
	Category weather.Category
	TempC    float64
}

type indexData struct {
	Books   []bookrepo.Book
	Status  string
	Weather weatherPanel
	Picks   []recommend.Pick
	Genre   string
}

// List renders the shelf, optionally filtered by ?status=, together with
// the weather-based recommendation panel. Weather and recommendations are
// best-effort; only a store fault is a server error.
func List(db *sql.DB, ws WeatherSource, rec Recommender, v *view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := r.URL.Query().Get("status")

		all, err := bookrepo.List(r.Context(), db, status)
		if err != nil {
			httpx.ServerError(w, r, err)
			return
		}

		cat, temp := ws.Current(r.Context())
		picks, genre := rec.Recommend(r.Context(), cat)

		v.Render(w, "index", indexData{
			Books:   all,
			Status:  status,
			Weather: weatherPanel{Category: cat, TempC: temp},
			Picks:   picks,
			Genre:   genre,
		})
	}
}
