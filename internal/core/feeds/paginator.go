package feeds

// Page is one fixed-size window over an ordered sequence
type Page[T any] struct {
	Items      []T  `json:"items"`
	Number     int  `json:"number"`
	TotalPages int  `json:"totalPages"`
	TotalItems int  `json:"totalItems"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

// Paginate splits an ordered slice into fixed-size pages and returns the
// requested one. Page numbers are 1-indexed; out-of-range numbers clamp
// to the nearest valid page instead of erroring. An empty input yields a
// single empty page so callers always get a renderable page object.
//
// The result is deterministic given identical input ordering; the caller
// supplies a stably ordered sequence (feeds order by created_at with id
// as tie-break).
func Paginate[T any](items []T, pageSize, pageNumber int) Page[T] {
	if pageSize < 1 {
		pageSize = 1
	}

	total := len(items)
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages == 0 {
		totalPages = 1
	}

	if pageNumber < 1 {
		pageNumber = 1
	}
	if pageNumber > totalPages {
		pageNumber = totalPages
	}

	start := (pageNumber - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Page[T]{
		Items:      items[start:end],
		Number:     pageNumber,
		TotalPages: totalPages,
		TotalItems: total,
		HasNext:    pageNumber < totalPages,
		HasPrev:    pageNumber > 1,
	}
}
