package domain

import (
	"math"
	"strings"
)

type SortField string

const (
	SortByName    SortField = "name"
	SortByAcronym SortField = "acronym"
	SortByBudget  SortField = "budget"
)

// ParseSortField maps a client value onto the sortable columns. Unknown values fall back to SortByName.
func ParseSortField(raw string) SortField {
	switch SortField(raw) {
	case SortByName, SortByAcronym, SortByBudget:
		return SortField(raw)
	default:
		return SortByName
	}
}

func (f SortField) Valid() bool {
	switch f {
	case SortByName, SortByAcronym, SortByBudget:
		return true
	}
	return false
}

type SortDirection string

const (
	Asc  SortDirection = "asc"
	Desc SortDirection = "desc"
)

// ParseSortDirection treats anything other than "desc" (any case) as ascending.
func ParseSortDirection(raw string) SortDirection {
	if strings.EqualFold(raw, string(Desc)) {
		return Desc
	}
	return Asc
}

type Sort struct {
	Field     SortField
	Direction SortDirection
}

type PageRequest struct {
	Page int
	Size int
	Sort Sort
}

const (
	DefaultPage = 0
	DefaultSize = 10
)

// Offset saturates at math.MaxInt instead of wrapping to a negative value.
func (r PageRequest) Offset() int {
	if r.Size > 0 && r.Page > math.MaxInt/r.Size {
		return math.MaxInt
	}
	return r.Page * r.Size
}

type Page[T any] struct {
	Content       []T
	Number        int
	Size          int
	TotalElements int64
	TotalPages    int
}

func NewPage[T any](content []T, req PageRequest, total int64) *Page[T] {
	if content == nil {
		content = []T{}
	}
	totalPages := 0
	if req.Size > 0 {
		totalPages = int((total + int64(req.Size) - 1) / int64(req.Size))
	}
	return &Page[T]{
		Content:       content,
		Number:        req.Page,
		Size:          req.Size,
		TotalElements: total,
		TotalPages:    totalPages,
	}
}

func (p *Page[T]) First() bool {
	return p.Number == 0
}

func (p *Page[T]) Last() bool {
	return p.Number+1 >= p.TotalPages
}
