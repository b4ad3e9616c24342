package books

import (
	"net/http"

	"github.com/atasoy/shelfmate/internal/metadata"
	"github.com/atasoy/shelfmate/internal/view"
)

type searchData struct {
	Query   string
	Results []metadata.SearchResult
}

// Search renders the metadata search page. GET shows the empty form; POST
// runs the query. A failing metadata call already degrades to no results
// inside the client, so the page always renders.
func Search(ms MetadataSearcher, v *view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var data searchData
		if r.Method == http.MethodPost {
			data.Query = r.FormValue("query")
			data.Results = ms.Search(r.Context(), data.Query)
		}
		v.Render(w, "search", data)
	}
}
