package router

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/atasoy/shelfmate/internal/api/handlers/books"
	"github.com/atasoy/shelfmate/internal/view"
)

// Deps carries everything the handlers need; there is no hidden global
// state.
type Deps struct {
	DB            *sql.DB
	View          *view.Renderer
	Metadata      books.MetadataSearcher
	Weather       books.WeatherSource
	Recommend     books.Recommender
	PublicBaseURL string
}

func New(d Deps) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		if err := d.DB.PingContext(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	// Shelf + recommendation panel
	mux.Handle("GET /{$}", books.List(d.DB, d.Weather, d.Recommend, d.View))

	// Metadata search
	search := books.Search(d.Metadata, d.View)
	mux.Handle("GET /search", search)
	mux.Handle("POST /search", search)

	// Book CRUD
	mux.Handle("POST /books", books.Create(d.DB))
	detail := books.Detail(d.DB, d.View)
	mux.Handle("GET /books/{id}", detail)
	mux.Handle("POST /books/{id}", detail)
	mux.Handle("GET /books/{id}/delete", books.Delete(d.DB))

	// Sharing
	mux.Handle("GET /books/{id}/share-code", books.ShareCode(d.PublicBaseURL))
	mux.Handle("GET /books/{id}/share", books.Share(d.DB, d.View))

	return mux
}
