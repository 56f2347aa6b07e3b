package filter

type Page[T any] struct {
	Items      []T
	Total      int
	TotalPages int
}

// Paginate slices items into the 1-indexed page of size limit. An
// out-of-range page yields an empty Items slice, never an error.
func Paginate[T any](items []T, page, limit int) Page[T] {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}

	total := len(items)
	totalPages := (total + limit - 1) / limit

	start := (page - 1) * limit
	if start >= total {
		return Page[T]{Items: []T{}, Total: total, TotalPages: totalPages}
	}
	end := start + limit
	if end > total {
		end = total
	}

	return Page[T]{Items: items[start:end], Total: total, TotalPages: totalPages}
}
