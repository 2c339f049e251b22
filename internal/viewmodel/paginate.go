package viewmodel

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jacksmith/adminui/internal/model"
)

// DefaultPageSize is the number of rows per page when none is configured.
const DefaultPageSize = 10

// Window is one page of the filtered view.
type Window struct {
	Items      []model.Record
	Page       int // clamped, 1-based
	TotalPages int // at least 1
	Filtered   int // size of the filtered view
}

// TotalPages returns max(1, ceil(count/pageSize)).
func TotalPages(count, pageSize int) int {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if count <= 0 {
		return 1
	}
	return (count + pageSize - 1) / pageSize
}

// ClampPage limits page to [1, totalPages].
func ClampPage(page, totalPages int) int {
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}
	return page
}

// Paginate returns the window for requestedPage after clamping it against
// the page count of filtered. A non-positive pageSize uses DefaultPageSize.
func Paginate(filtered []model.Record, pageSize, requestedPage int) Window {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	total := TotalPages(len(filtered), pageSize)
	page := ClampPage(requestedPage, total)

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}
	items := make([]model.Record, end-start)
	copy(items, filtered[start:end])

	return Window{
		Items:      items,
		Page:       page,
		TotalPages: total,
		Filtered:   len(filtered),
	}
}

// Recompute derives the current page from the store: filter first, then
// paginate against the fresh filter result.
func Recompute(store Store, term string, page, pageSize int) Window {
	return Paginate(Filter(store.records, term), pageSize, page)
}

// PageKind enumerates the page navigation requests.
type PageKind int

const (
	PageFirst PageKind = iota
	PagePrevious
	PageNext
	PageLast
	PageSpecific
)

// PageTarget is a page navigation request. It is resolved against the
// current page and page count, never trusted as a raw page number.
type PageTarget struct {
	Kind PageKind
	N    int // only for PageSpecific
}

// FirstPage requests page 1.
func FirstPage() PageTarget { return PageTarget{Kind: PageFirst} }

// PreviousPage requests the page before the current one.
func PreviousPage() PageTarget { return PageTarget{Kind: PagePrevious} }

// NextPage requests the page after the current one.
func NextPage() PageTarget { return PageTarget{Kind: PageNext} }

// LastPage requests the last page.
func LastPage() PageTarget { return PageTarget{Kind: PageLast} }

// SpecificPage requests page n.
func SpecificPage(n int) PageTarget { return PageTarget{Kind: PageSpecific, N: n} }

// Resolve returns the clamped page the target designates.
func (t PageTarget) Resolve(current, totalPages int) int {
	var page int
	switch t.Kind {
	case PageFirst:
		page = 1
	case PagePrevious:
		page = current - 1
	case PageNext:
		page = current + 1
	case PageLast:
		page = totalPages
	default:
		page = t.N
	}
	return ClampPage(page, totalPages)
}

func (t PageTarget) String() string {
	switch t.Kind {
	case PageFirst:
		return "first"
	case PagePrevious:
		return "previous"
	case PageNext:
		return "next"
	case PageLast:
		return "last"
	default:
		return strconv.Itoa(t.N)
	}
}

// ParsePageTarget parses "first", "prev"/"previous", "next", "last" or a
// page number.
func ParsePageTarget(s string) (PageTarget, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "first", "<<":
		return FirstPage(), nil
	case "prev", "previous", "<":
		return PreviousPage(), nil
	case "next", ">":
		return NextPage(), nil
	case "last", ">>":
		return LastPage(), nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return PageTarget{}, fmt.Errorf("invalid page %q: expected first, prev, next, last or a number", s)
	}
	return SpecificPage(n), nil
}
