// Package pagination normalizes limit/offset query input and assembles page
// metadata for every list endpoint.
//
// The count and the fetch behind a page are two separate store reads, not a
// snapshot-isolated transaction; under concurrent writes the reported count
// and totalPages can momentarily disagree with the fetched rows. That is
// accepted behavior, not a bug.
package pagination

import (
	"math"
	"strconv"

	"github.com/docmanpro/docman/internal"
)

// DefaultLimit is the page size used when the caller does not specify one.
const DefaultLimit = 8

// Ids and offsets are bound to the backing store's 32-bit integer columns.
const maxInteger = math.MaxInt32

// Window is a normalized page request.
type Window struct {
	Limit  int
	Offset int
	Query  string
}

// PageData is the metadata block returned beside every page of results.
// PageSize is the number of rows actually returned, not the requested limit;
// callers detect the last page by PageSize < Limit. Offset and Query are
// carried internally but are not part of the wire shape.
type PageData struct {
	Count      int64  `json:"count"`
	PageSize   int    `json:"pageSize"`
	PageNumber int    `json:"pageNumber"`
	TotalPages int    `json:"totalPages"`
	Offset     int    `json:"-"`
	Query      string `json:"-"`
}

// ParseWindow validates limit/offset/query string input into a Window.
// Values outside the 32-bit range fail with the literal echoed in the
// message; non-numeric input fails the way the database would report it.
func ParseWindow(limitStr, offsetStr, query string) (Window, error) {
	w := Window{Limit: DefaultLimit, Offset: 0, Query: query}

	if limitStr != "" {
		limit, err := parseParam(limitStr)
		if err != nil {
			return Window{}, err
		}
		if limit > 0 {
			w.Limit = int(limit)
		}
	}

	if offsetStr != "" {
		offset, err := parseParam(offsetStr)
		if err != nil {
			return Window{}, err
		}
		if offset > 0 {
			w.Offset = int(offset)
		}
	}

	return w, nil
}

// ParseID validates a path id the same way window parameters are validated.
func ParseID(literal string) (int64, error) {
	return parseParam(literal)
}

func parseParam(literal string) (int64, error) {
	value, err := strconv.ParseInt(literal, 10, 64)
	if err != nil {
		if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange {
			return 0, internal.NewIntegerOutOfRangeError(literal)
		}
		return 0, internal.NewInvalidIntegerError(literal)
	}
	if value > maxInteger || value < math.MinInt32 {
		return 0, internal.NewIntegerOutOfRangeError(literal)
	}
	return value, nil
}

// BuildPageData assembles the metadata for a fetched page.
func BuildPageData(w Window, count int64, returned int) PageData {
	totalPages := 0
	if w.Limit > 0 {
		totalPages = int(math.Ceil(float64(count) / float64(w.Limit)))
	}

	pageNumber := 1
	if w.Limit > 0 {
		pageNumber = w.Offset/w.Limit + 1
	}

	return PageData{
		Count:      count,
		PageSize:   returned,
		PageNumber: pageNumber,
		TotalPages: totalPages,
		Offset:     w.Offset,
		Query:      w.Query,
	}
}
