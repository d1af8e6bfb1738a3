// internal/app/system/paging/paging.go
package paging

import (
	"net/http"
	"strconv"

	"github.com/dalemusser/waffle/pantry/query"
)

// PageSize is the number of rows shown in paged lists. The whole
// document lives in memory, so offset paging over a filtered slice is
// exact; no look-ahead fetching is needed.
const PageSize = 20

// ParsePage extracts the 1-based "page" query parameter. Returns 1 if
// absent or invalid.
func ParsePage(r *http.Request) int {
	s := query.Get(r, "page")
	if s == "" {
		return 1
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// TotalPages returns how many pages total rows occupy. Zero rows still
// report one (empty) page so page numbers always have a valid range.
func TotalPages(total int) int {
	if total <= 0 {
		return 1
	}
	return (total + PageSize - 1) / PageSize
}

// Clamp pins page into [1, TotalPages(total)]. Out-of-range requests
// land on the nearest valid page rather than erroring.
func Clamp(page, total int) int {
	if page < 1 {
		return 1
	}
	if max := TotalPages(total); page > max {
		return max
	}
	return page
}

// Slice returns the rows belonging to the (already clamped) page.
func Slice[T any](rows []T, page int) []T {
	start := (page - 1) * PageSize
	if start >= len(rows) {
		return []T{}
	}
	end := start + PageSize
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end]
}

// Ellipsis marks a gap in a PageNumbers sequence.
const Ellipsis = -1

// PageNumbers returns the page-number strip for a pager: always the
// first and last page, the current page with two neighbors on each
// side, and Ellipsis where pages are skipped.
func PageNumbers(current, totalPages int) []int {
	if totalPages <= 7 {
		nums := make([]int, 0, totalPages)
		for i := 1; i <= totalPages; i++ {
			nums = append(nums, i)
		}
		return nums
	}

	nums := []int{1}
	lo := current - 2
	if lo < 2 {
		lo = 2
	}
	hi := current + 2
	if hi > totalPages-1 {
		hi = totalPages - 1
	}
	if lo > 2 {
		nums = append(nums, Ellipsis)
	}
	for i := lo; i <= hi; i++ {
		nums = append(nums, i)
	}
	if hi < totalPages-1 {
		nums = append(nums, Ellipsis)
	}
	return append(nums, totalPages)
}

// Meta is the pagination envelope included in list responses.
type Meta struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int   `json:"total"`
	TotalPages int   `json:"total_pages"`
	Numbers    []int `json:"numbers"` // Ellipsis (-1) marks gaps
}

// MetaFor computes the envelope for a clamped page over total rows.
func MetaFor(page, total int) Meta {
	tp := TotalPages(total)
	return Meta{
		Page:       page,
		PageSize:   PageSize,
		Total:      total,
		TotalPages: tp,
		Numbers:    PageNumbers(page, tp),
	}
}
