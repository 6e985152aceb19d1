package models

import "strconv"

// DefaultPageSize is the fixed page size used by every resource unless a
// caller passes an explicit limit.
const DefaultPageSize = 10

// ListParams is the listing/search contract shared by every collection:
// 1-based pagination, optional free-text search, and optional exact-match
// filters. All bypasses pagination entirely.
type ListParams struct {
	Page     int
	PageSize int
	All      bool

	Search   string
	Status   string
	FormType string
	Category string
	Tag      string
	Featured *bool
}

// ParsePage coerces a raw query value to a 1-based page; malformed or
// non-positive input degrades to page 1 rather than erroring.
func ParsePage(raw string) int {
	p, err := strconv.Atoi(raw)
	if err != nil || p < 1 {
		return 1
	}
	return p
}

// ParseLimit coerces a raw query value to a page size, falling back to the
// resource default.
func ParseLimit(raw string, def int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return def
	}
	return n
}

// Normalize returns params with the page and page size coerced into range.
func (p ListParams) Normalize() ListParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	return p
}

// Offset is the row offset for the normalized page; zero in fetch-all mode.
func (p ListParams) Offset() int {
	if p.All {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}

// TotalPages computes ceil(total/pageSize), or 1 in fetch-all mode. An empty
// result still reports one page so clients always have a valid page range.
func (p ListParams) TotalPages(total int) int {
	if p.All || total == 0 {
		return 1
	}
	return (total + p.PageSize - 1) / p.PageSize
}
