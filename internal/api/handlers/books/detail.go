package books

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/atasoy/shelfmate/internal/api/httpx"
	"github.com/atasoy/shelfmate/internal/repo/bookrepo"
	"github.com/atasoy/shelfmate/internal/view"
)

type detailData struct {
	Book bookrepo.Book
}

// Detail shows one book on GET and overwrites status/rating/notes on POST.
// Status and rating are stored as submitted; the store is the only
// validator here.
func Detail(db *sql.DB, v *view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			httpx.NotFound(w)
			return
		}

		if r.Method == http.MethodPost {
			_, err := bookrepo.Update(r.Context(), db, id,
				r.FormValue("status"), formInt(r, "rating"), r.FormValue("notes"))
			switch {
			case errors.Is(err, bookrepo.ErrNotFound):
				httpx.NotFound(w)
			case err != nil:
				httpx.ServerError(w, r, err)
			default:
				httpx.SeeOther(w, r, "/")
			}
			return
		}

		b, err := bookrepo.GetByID(r.Context(), db, id)
		switch {
		case errors.Is(err, bookrepo.ErrNotFound):
			httpx.NotFound(w)
		case err != nil:
			httpx.ServerError(w, r, err)
		default:
			v.Render(w, "detail", detailData{Book: b})
		}
	}
}
