package books

import (
	"database/sql"
	"net/http"

	"github.com/atasoy/shelfmate/internal/api/httpx"
	"github.com/atasoy/shelfmate/internal/repo/bookrepo"
)

// Create adds a book from the add form (manual entry or a search result)
// and bounces back to the shelf.
func Create(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		nb := bookrepo.NewBook{
			Title:         r.FormValue("title"),
			Author:        r.FormValue("author"),
			PageCount:     formInt(r, "pageCount"),
			CoverImageURL: r.FormValue("coverImageUrl"),
		}

		if _, err := bookrepo.Create(r.Context(), db, nb); err != nil {
			httpx.ServerError(w, r, err)
			return
		}
		httpx.SeeOther(w, r, "/")
	}
}
