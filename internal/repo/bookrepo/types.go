package bookrepo

// Reading statuses. The store does not reject other values; these are the
// ones the UI offers.
const (
	StatusToRead  = "ToRead"
	StatusReading = "Reading"
	StatusDone    = "Done"
)

type Book struct {
	ID            int64
	Title         string
	Author        string
	PageCount     int
	CoverImageURL string
	Status        string
	Rating        int
	Notes         string
}

// NewBook carries the creatable fields. Status, rating and notes always
// start from their column defaults.
type NewBook struct {
	Title         string
	Author        string
	PageCount     int
	CoverImageURL string
}
