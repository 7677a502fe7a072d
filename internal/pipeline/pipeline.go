// Package pipeline runs the full filter flow over an in-memory PPM blob.
package pipeline

import (
	"fmt"
	"log/slog"

	"github.com/hstohl/image-editor/internal/filter"
	"github.com/hstohl/image-editor/internal/ppm"
)

// Result holds the output of a pipeline run.
type Result struct {
	Data   []byte // encoded P3 text
	Width  int
	Height int
}

// Run executes decode → filter → encode on a single image. Nothing is
// produced unless both decode and the filter succeed, so a failed run never
// yields partial output.
func Run(input []byte, f filter.Filter) (*Result, error) {
	img, err := ppm.Decode(input)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	slog.Debug("decoded image", "width", img.Width(), "height", img.Height())

	if err := f.Apply(img); err != nil {
		return nil, fmt.Errorf("filter %s: %w", f, err)
	}
	slog.Debug("applied filter", "filter", f.String())

	out, err := ppm.Encode(img)
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}

	return &Result{
		Data:   out,
		Width:  img.Width(),
		Height: img.Height(),
	}, nil
}
