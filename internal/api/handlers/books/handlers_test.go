package books_test

import (
	"bytes"
	"context"
	"database/sql"
	"image/png"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/atasoy/shelfmate/internal/api/router"
	"github.com/atasoy/shelfmate/internal/metadata"
	"github.com/atasoy/shelfmate/internal/recommend"
	"github.com/atasoy/shelfmate/internal/view"
	"github.com/atasoy/shelfmate/internal/weather"
)

var bookCols = []string{"id", "title", "author", "page_count", "cover_image_url", "status", "rating", "notes"}

type stubWeather struct{}

func (stubWeather) Current(context.Context) (weather.Category, float64) {
	return weather.Rain, 7.5
}

type stubRecommender struct{}

func (stubRecommender) Recommend(context.Context, weather.Category) ([]recommend.Pick, string) {
	return []recommend.Pick{{Title: "Gone Girl", Author: "Gillian Flynn", PreviewLink: "#"}}, "Mystery"
}

type stubSearcher struct {
	results []metadata.SearchResult
}

func (s stubSearcher) Search(context.Context, string) []metadata.SearchResult {
	return s.results
}

func newApp(t *testing.T, db *sql.DB, ms stubSearcher) http.Handler {
	t.Helper()
	v, err := view.New()
	if err != nil {
		t.Fatal(err)
	}
	return router.New(router.Deps{
		DB:            db,
		View:          v,
		Metadata:      ms,
		Weather:       stubWeather{},
		Recommend:     stubRecommender{},
		PublicBaseURL: "http://localhost:3000",
	})
}

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func postForm(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestList_RendersBooksAndRecommendations(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT (.+) FROM books ORDER BY id`).
		WillReturnRows(sqlmock.NewRows(bookCols).
			AddRow(1, "Dune", "Frank Herbert", 412, "", "ToRead", 0, ""))

	app := newApp(t, db, stubSearcher{})
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{"Dune", "Mystery", "Gone Girl", "Rain"} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestList_StatusFilter(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT (.+) FROM books WHERE status = \$1 ORDER BY id`).
		WithArgs("Done").
		WillReturnRows(sqlmock.NewRows(bookCols))

	app := newApp(t, db, stubSearcher{})
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/?status=Done", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestSearch_GetShowsEmptyForm(t *testing.T) {
	db, _ := newMockDB(t)
	app := newApp(t, db, stubSearcher{})

	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/search", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestSearch_PostRendersResults(t *testing.T) {
	db, _ := newMockDB(t)
	app := newApp(t, db, stubSearcher{results: []metadata.SearchResult{
		{Title: "Solaris", Author: "Stanislaw Lem", PageCount: 204},
	}})

	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, postForm("/search", url.Values{"query": {"solaris"}}))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Solaris") {
		t.Error("body missing search result")
	}
}

func TestCreate_RedirectsToShelf(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`INSERT INTO books`).
		WithArgs("Dune", "Frank Herbert", 412, "").
		WillReturnRows(sqlmock.NewRows(bookCols).
			AddRow(1, "Dune", "Frank Herbert", 412, "", "ToRead", 0, ""))

	app := newApp(t, db, stubSearcher{})
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, postForm("/books", url.Values{
		"title":     {"Dune"},
		"author":    {"Frank Herbert"},
		"pageCount": {"412"},
	}))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Errorf("Location = %q, want /", loc)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestCreate_MalformedPageCountBecomesZero(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`INSERT INTO books`).
		WithArgs("Dune", "", 0, "").
		WillReturnRows(sqlmock.NewRows(bookCols).
			AddRow(1, "Dune", "", 0, "", "ToRead", 0, ""))

	app := newApp(t, db, stubSearcher{})
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, postForm("/books", url.Values{
		"title":     {"Dune"},
		"pageCount": {"lots"},
	}))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestDetail_Get(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT (.+) FROM books WHERE id = \$1`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(bookCols).
			AddRow(1, "Dune", "Frank Herbert", 412, "", "Reading", 3, "spice"))

	app := newApp(t, db, stubSearcher{})
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/books/1", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "spice") {
		t.Error("body missing notes")
	}
}

func TestDetail_GetUnknownID(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT (.+) FROM books WHERE id = \$1`).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(bookCols))

	app := newApp(t, db, stubSearcher{})
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/books/99", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestDetail_NonNumericID(t *testing.T) {
	db, _ := newMockDB(t)
	app := newApp(t, db, stubSearcher{})

	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/books/abc", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestDetail_PostUpdatesAndRedirects(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`UPDATE books SET status = \$1, rating = \$2, notes = \$3`).
		WithArgs("Done", 5, "finished on the train", int64(1)).
		WillReturnRows(sqlmock.NewRows(bookCols).
			AddRow(1, "Dune", "Frank Herbert", 412, "", "Done", 5, "finished on the train"))

	app := newApp(t, db, stubSearcher{})
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, postForm("/books/1", url.Values{
		"status": {"Done"},
		"rating": {"5"},
		"notes":  {"finished on the train"},
	}))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestDelete_RedirectsToShelf(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(`DELETE FROM books WHERE id = \$1`).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	app := newApp(t, db, stubSearcher{})
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/books/1/delete", nil))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
}

func TestDelete_UnknownID(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(`DELETE FROM books WHERE id = \$1`).
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	app := newApp(t, db, stubSearcher{})
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/books/99/delete", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestShareCode_NoExistenceCheck(t *testing.T) {
	// No store expectation set: generation never touches the database.
	db, mock := newMockDB(t)
	app := newApp(t, db, stubSearcher{})

	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/books/424242/share-code", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Content-Type = %q, want image/png", ct)
	}
	if _, err := png.Decode(bytes.NewReader(rec.Body.Bytes())); err != nil {
		t.Errorf("body is not a valid PNG: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestShare_UnknownID(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT (.+) FROM books WHERE id = \$1`).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(bookCols))

	app := newApp(t, db, stubSearcher{})
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/books/5/share", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestShare_RendersPublicPage(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT (.+) FROM books WHERE id = \$1`).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(bookCols).
			AddRow(5, "Kindred", "Octavia Butler", 264, "", "Done", 5, ""))

	app := newApp(t, db, stubSearcher{})
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/books/5/share", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Kindred") {
		t.Error("body missing book title")
	}
}

func TestHealthz(t *testing.T) {
	db, _ := newMockDB(t)
	app := newApp(t, db, stubSearcher{})

	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}
