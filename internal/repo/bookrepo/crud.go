package bookrepo

import (
	"context"
	"database/sql"
	"errors"
)

const bookColumns = `id, title, author, page_count, cover_image_url, status, rating, notes`

func Create(ctx context.Context, db *sql.DB, nb NewBook) (Book, error) {
	var b Book
	err := db.QueryRowContext(ctx, `
		INSERT INTO books (title, author, page_count, cover_image_url)
		VALUES ($1, $2, $3, $4)
		RETURNING `+bookColumns,
		nb.Title, nb.Author, nb.PageCount, nb.CoverImageURL,
	).Scan(&b.ID, &b.Title, &b.Author, &b.PageCount, &b.CoverImageURL, &b.Status, &b.Rating, &b.Notes)
	if err != nil {
		return Book{}, classify(err)
	}
	return b, nil
}

// List returns all books in insertion order. A non-empty statusFilter
// restricts the result to that status value.
func List(ctx context.Context, db *sql.DB, statusFilter string) ([]Book, error) {
	q := `SELECT ` + bookColumns + ` FROM books ORDER BY id`
	args := []any{}
	if statusFilter != "" {
		q = `SELECT ` + bookColumns + ` FROM books WHERE status = $1 ORDER BY id`
		args = append(args, statusFilter)
	}

	rows, err := db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	var books []Book
	for rows.Next() {
		var b Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.PageCount, &b.CoverImageURL, &b.Status, &b.Rating, &b.Notes); err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	return books, rows.Err()
}

func GetByID(ctx context.Context, db *sql.DB, id int64) (Book, error) {
	var b Book
	err := db.QueryRowContext(ctx,
		`SELECT `+bookColumns+` FROM books WHERE id = $1`, id,
	).Scan(&b.ID, &b.Title, &b.Author, &b.PageCount, &b.CoverImageURL, &b.Status, &b.Rating, &b.Notes)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, classify(err)
	}
	return b, nil
}

// Update overwrites exactly status, rating and notes. Title, author and
// cover are immutable after creation.
func Update(ctx context.Context, db *sql.DB, id int64, status string, rating int, notes string) (Book, error) {
	var b Book
	err := db.QueryRowContext(ctx, `
		UPDATE books SET status = $1, rating = $2, notes = $3
		WHERE id = $4
		RETURNING `+bookColumns,
		status, rating, notes, id,
	).Scan(&b.ID, &b.Title, &b.Author, &b.PageCount, &b.CoverImageURL, &b.Status, &b.Rating, &b.Notes)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, classify(err)
	}
	return b, nil
}

func Delete(ctx context.Context, db *sql.DB, id int64) error {
	res, err := db.ExecContext(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return classify(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
