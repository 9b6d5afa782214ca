package query

import "alcyxob/fitlog/internal/domain"

// DefaultPageSize is the number of workouts on one admin list page.
const DefaultPageSize = 10

// Page is one slice of a sorted workout listing.
type Page struct {
	Items      []domain.Workout
	Number     int
	Size       int
	TotalPages int
	TotalItems int
}

// TotalPages returns ceil(count/size), never less than 1. A size below 1
// is replaced by DefaultPageSize.
func TotalPages(count, size int) int {
	if size < 1 {
		size = DefaultPageSize
	}
	pages := (count + size - 1) / size
	if pages < 1 {
		return 1
	}
	return pages
}

// Paginate returns page number page (1-based) of sorted. Out of range pages
// yield an empty Items slice, never an error; clamping is the caller's job.
func Paginate(sorted []domain.Workout, page, size int) Page {
	if size < 1 {
		size = DefaultPageSize
	}
	p := Page{
		Items:      []domain.Workout{},
		Number:     page,
		Size:       size,
		TotalPages: TotalPages(len(sorted), size),
		TotalItems: len(sorted),
	}
	if page < 1 || page > p.TotalPages {
		return p
	}

	start := (page - 1) * size
	if start >= len(sorted) {
		return p
	}
	end := min(start+size, len(sorted))
	p.Items = sorted[start:end]
	return p
}

// ClampPage forces page into [1, totalPages].
func ClampPage(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}
