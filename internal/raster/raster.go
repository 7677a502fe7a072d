// Package raster holds the in-memory pixel grid that the codec fills and the
// filters mutate. Pixels are plain values: readers get a copy, writers store
// a copy, and the grid is the only owner of cell state.
package raster

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is returned by At, Set and Row for coordinates outside the
// image grid. It signals a logic error in the caller, not bad input.
var ErrOutOfBounds = errors.New("coordinate out of bounds")

// Color is one pixel's red, green and blue channels. The type itself imposes
// no range: filters clamp computed values into [0, 255] before storing, and
// the codec only ever stores decoded values that are already in range.
type Color struct {
	R, G, B int
}

// Image is a width×height grid of Color cells indexed by zero-based (x, y),
// stored row-major. Dimensions are fixed at construction; every cell starts
// at black (0, 0, 0).
type Image struct {
	width  int
	height int
	cells  []Color // len = width * height
}

// New creates an all-black image. Dimensions must be non-negative; a zero
// dimension yields a valid image with no cells.
func New(width, height int) (*Image, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("invalid image dimensions %dx%d", width, height)
	}
	return &Image{
		width:  width,
		height: height,
		cells:  make([]Color, width*height),
	}, nil
}

// Width returns the number of columns.
func (m *Image) Width() int { return m.width }

// Height returns the number of rows.
func (m *Image) Height() int { return m.height }

// At returns a copy of the pixel at (x, y).
func (m *Image) At(x, y int) (Color, error) {
	if !m.inBounds(x, y) {
		return Color{}, fmt.Errorf("at (%d, %d) in %dx%d image: %w", x, y, m.width, m.height, ErrOutOfBounds)
	}
	return m.cells[y*m.width+x], nil
}

// Set overwrites the pixel at (x, y).
func (m *Image) Set(x, y int, c Color) error {
	if !m.inBounds(x, y) {
		return fmt.Errorf("set (%d, %d) in %dx%d image: %w", x, y, m.width, m.height, ErrOutOfBounds)
	}
	m.cells[y*m.width+x] = c
	return nil
}

// Row returns a copy of row y. Mutating the returned slice does not affect
// the image, which makes Row the snapshot primitive for filters that must
// read pre-write values while overwriting the same row.
func (m *Image) Row(y int) ([]Color, error) {
	if y < 0 || y >= m.height {
		return nil, fmt.Errorf("row %d in %dx%d image: %w", y, m.width, m.height, ErrOutOfBounds)
	}
	row := make([]Color, m.width)
	copy(row, m.cells[y*m.width:(y+1)*m.width])
	return row, nil
}

func (m *Image) inBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}
