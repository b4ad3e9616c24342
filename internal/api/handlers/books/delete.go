package books

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/atasoy/shelfmate/internal/api/httpx"
	"github.com/atasoy/shelfmate/internal/repo/bookrepo"
)

func Delete(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			httpx.NotFound(w)
			return
		}

		err := bookrepo.Delete(r.Context(), db, id)
		switch {
		case errors.Is(err, bookrepo.ErrNotFound):
			httpx.NotFound(w)
		case err != nil:
			httpx.ServerError(w, r, err)
		default:
			httpx.SeeOther(w, r, "/")
		}
	}
}
