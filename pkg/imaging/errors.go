package imaging

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoCategories is returned when an image is constructed with an
// empty category list.
var ErrNoCategories = errors.New("categories list cannot be empty")

// ShapeError reports a grid whose extents are degenerate or whose
// nested representation is not rectangular.
type ShapeError struct {
	// Width, Height, Depth are the extents as determined before the
	// problem was found; zero for an axis that was never reached
	Width, Height, Depth int

	// Detail describes what was wrong with the grid
	Detail string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("invalid volume shape %dx%dx%d: %s", e.Width, e.Height, e.Depth, e.Detail)
}

// DuplicateCategoryError reports a repeated name in a category list.
type DuplicateCategoryError struct {
	// Name is the category name that appears more than once
	Name string
}

func (e *DuplicateCategoryError) Error() string {
	return fmt.Sprintf("duplicate category %q: category names must be unique", e.Name)
}

// CodeRangeError reports a voxel code outside the valid range implied
// by the declared category list.
type CodeRangeError struct {
	// Code is the offending voxel value
	Code int32

	// Count is the number of declared categories; valid codes are [0, Count)
	Count int
}

func (e *CodeRangeError) Error() string {
	return fmt.Sprintf("voxel code %d outside valid range [0,%d) for %d declared categories",
		e.Code, e.Count, e.Count)
}

// UnknownCategoryError reports a requested category name that is absent
// from an image's declared categories or a supplied category map.
type UnknownCategoryError struct {
	// Name is the requested category
	Name string

	// Available lists the categories that are declared
	Available []string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("category %q not found (available: %s)",
		e.Name, strings.Join(e.Available, ", "))
}

// MissingMappingError reports an adjacency check on a raw volume
// without the category map needed to resolve names to codes.
type MissingMappingError struct{}

func (e *MissingMappingError) Error() string {
	return "category map is required when checking adjacency on a raw volume"
}
