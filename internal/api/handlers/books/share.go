package books

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/atasoy/shelfmate/internal/api/httpx"
	"github.com/atasoy/shelfmate/internal/repo/bookrepo"
	"github.com/atasoy/shelfmate/internal/sharecode"
	"github.com/atasoy/shelfmate/internal/view"
)

// ShareCode streams the QR PNG for a book's share URL. The id is not
// checked against the store; scanning an unknown id lands on the share
// page's 404 instead.
func ShareCode(publicBaseURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			httpx.NotFound(w)
			return
		}

		png, err := sharecode.PNG(publicBaseURL, id)
		if err != nil {
			httpx.ServerError(w, r, err)
			return
		}
		httpx.PNG(w, png)
	}
}

// Share renders the public detail page a share link points at.
func Share(db *sql.DB, v *view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			httpx.NotFound(w)
			return
		}

		b, err := bookrepo.GetByID(r.Context(), db, id)
		switch {
		case errors.Is(err, bookrepo.ErrNotFound):
			httpx.NotFound(w)
		case err != nil:
			httpx.ServerError(w, r, err)
		default:
			v.Render(w, "share", detailData{Book: b})
		}
	}
}
