package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"
)

var errInvalidPagination = errors.New("invalid pagination parameters")

// taskIDFromRequest parses the {id} URL parameter.
func taskIDFromRequest(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// titleLengthOK checks the 1-255 character bound on task titles.
// Lengths count characters, not bytes, so multibyte input is not
// penalized.
func titleLengthOK(title string) bool {
	n := utf8.RuneCountInString(title)
	return n >= 1 && n <= 255
}
