// Package filter implements the four in-place image filters. A filter is
// selected and validated once at the boundary into a Filter value, so the
// engine itself never sees an unrecognized name or a bad blur length.
package filter

import (
	"fmt"

	"github.com/hstohl/image-editor/internal/raster"
)

// Kind identifies one of the supported filter algorithms.
type Kind int

const (
	Grayscale Kind = iota
	Invert
	Emboss
	MotionBlur
)

// String returns the canonical CLI name of the kind.
func (k Kind) String() string {
	switch k {
	case Grayscale:
		return "grayscale"
	case Invert:
		return "invert"
	case Emboss:
		return "emboss"
	case MotionBlur:
		return "motionblur"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps a CLI filter name to its Kind. "greyscale" is accepted as
// an alias for "grayscale".
func ParseKind(name string) (Kind, error) {
	switch name {
	case "grayscale", "greyscale":
		return Grayscale, nil
	case "invert":
		return Invert, nil
	case "emboss":
		return Emboss, nil
	case "motionblur":
		return MotionBlur, nil
	default:
		return 0, fmt.Errorf("unknown filter: %q", name)
	}
}

// Filter is a fully validated filter selection. Construct one with New or
// NewMotionBlur; the zero value is a plain grayscale filter.
type Filter struct {
	kind   Kind
	length int
}

// New builds a Filter for a kind that takes no parameters. MotionBlur is
// rejected here because it requires a length; use NewMotionBlur.
func New(k Kind) (Filter, error) {
	switch k {
	case Grayscale, Invert, Emboss:
		return Filter{kind: k}, nil
	case MotionBlur:
		return Filter{}, fmt.Errorf("motionblur requires a length, use NewMotionBlur")
	default:
		return Filter{}, fmt.Errorf("unknown filter kind %d", int(k))
	}
}

// NewMotionBlur builds a horizontal motion blur over length pixels.
// Length must be at least 1; a length of 1 leaves the image unchanged.
func NewMotionBlur(length int) (Filter, error) {
	if length < 1 {
		return Filter{}, fmt.Errorf("motion blur length must be >= 1, got %d", length)
	}
	return Filter{kind: MotionBlur, length: length}, nil
}

// Kind reports which algorithm this filter runs.
func (f Filter) Kind() Kind { return f.kind }

func (f Filter) String() string {
	if f.kind == MotionBlur {
		return fmt.Sprintf("motionblur(%d)", f.length)
	}
	return f.kind.String()
}

// Apply mutates the image in place. Errors can only arise from grid access
// and indicate a logic bug, not bad pixel data.
func (f Filter) Apply(img *raster.Image) error {
	switch f.kind {
	case Grayscale:
		return grayscale(img)
	case Invert:
		return invert(img)
	case Emboss:
		return emboss(img)
	case MotionBlur:
		return motionBlur(img, f.length)
	default:
		return fmt.Errorf("unknown filter kind %d", int(f.kind))
	}
}
