// Package sharecode builds public share URLs and renders them as QR codes.
package sharecode

import (
	"strconv"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

const pngSize = 256

// ShareURL returns the absolute public URL of a book's share page.
func ShareURL(base string, id int64) string {
	return strings.TrimRight(base, "/") + "/books/" + strconv.FormatInt(id, 10) + "/share"
}

// PNG renders the share URL for id as a QR code. It deliberately does not
// check that the book exists; the share page itself 404s for unknown ids.
func PNG(base string, id int64) ([]byte, error) {
	return qrcode.Encode(ShareURL(base, id), qrcode.Medium, pngSize)
}
