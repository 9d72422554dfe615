package models

import (
	"math"

	dErrors "personnel/pkg/domain-errors"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Page is a validated pagination window.
type Page struct {
	Number int
	Size   int
}

// NewPage validates page (>= 1) and size (1..100). Callers apply
// DefaultPage and DefaultPageSize for omitted parameters.
func NewPage(number, size int) (Page, error) {
	if number < 1 {
		return Page{}, dErrors.New(dErrors.CodeInvalidRequest, "page must be at least 1")
	}
	if size < 1 || size > MaxPageSize {
		return Page{}, dErrors.New(dErrors.CodeInvalidRequest, "pageSize must be between 1 and 100")
	}
	return Page{Number: number, Size: size}, nil
}

// Offset saturates at math.MaxInt so a page far past the end still reads as
// an empty page rather than a negative offset.
func (p Page) Offset() int {
	if p.Number-1 > math.MaxInt/p.Size {
		return math.MaxInt
	}
	return (p.Number - 1) * p.Size
}

func (p Page) Limit() int {
	return p.Size
}

// PageResult pairs one page of rows with the total row count, both read from
// the same snapshot.
type PageResult[T any] struct {
	Data  []T `json:"data"`
	Count int `json:"count"`
}
