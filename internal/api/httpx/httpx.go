package httpx

import (
	"log"
	"net/http"
)

func NotFound(w http.ResponseWriter) {
	http.Error(w, "not found", http.StatusNotFound)
}

// ServerError logs the fault with the request id and hides the detail from
// the client.
func ServerError(w http.ResponseWriter, r *http.Request, err error) {
	rid := r.Header.Get("X-Request-ID")
	if rid == "" {
		rid = "unknown"
	}
	log.Printf("[ERROR] RequestID=%s %s %s: %v", rid, r.Method, r.URL.Path, err)
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// SeeOther is the post-form redirect used after every mutation.
func SeeOther(w http.ResponseWriter, r *http.Request, location string) {
	http.Redirect(w, r, location, http.StatusSeeOther)
}

func PNG(w http.ResponseWriter, data []byte) {
	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(data)
}
