package common

import (
	"net/http"
	"strconv"
)

// Page represents limit/offset pagination parameters
type Page struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// DefaultPage returns default pagination parameters
func DefaultPage() Page {
	return Page{
		Limit:  10,
		Offset: 0,
	}
}

// ExtractPage extracts pagination parameters from request query
func ExtractPage(r *http.Request, maxLimit int) Page {
	page := DefaultPage()

	if limit := r.URL.Query().Get("limit"); limit != "" {
		if l, err := strconv.Atoi(limit); err == nil && l > 0 {
			if maxLimit > 0 && l > maxLimit {
				l = maxLimit
			}
			page.Limit = l
		}
	}

	if offset := r.URL.Query().Get("offset"); offset != "" {
		if o, err := strconv.Atoi(offset); err == nil && o >= 0 {
			page.Offset = o
		}
	}

	return page
}

// Slice applies [offset, offset+limit) slicing to items. A negative limit
// means no limit; an offset past the end yields an empty page.
func Slice[T any](items []T, limit, offset int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return []T{}
	}
	end := len(items)
	if limit >= 0 && offset+limit < end {
		end = offset + limit
	}
	return items[offset:end]
}
