package main

import (
	"testing"

	"github.com/hstohl/image-editor/internal/filter"
)

func TestParseFilterArgs(t *testing.T) {
	cases := []struct {
		name string
		args []string
		kind filter.Kind
		ok   bool
	}{
		{"grayscale", []string{"in.ppm", "out.ppm", "grayscale"}, filter.Grayscale, true},
		{"greyscale alias", []string{"in.ppm", "out.ppm", "greyscale"}, filter.Grayscale, true},
		{"invert", []string{"in.ppm", "out.ppm", "invert"}, filter.Invert, true},
		{"emboss", []string{"in.ppm", "out.ppm", "emboss"}, filter.Emboss, true},
		{"motionblur", []string{"in.ppm", "out.ppm", "motionblur", "5"}, filter.MotionBlur, true},
		{"too few args", []string{"in.ppm", "out.ppm"}, 0, false},
		{"unknown filter", []string{"in.ppm", "out.ppm", "sharpen"}, 0, false},
		{"extra arg for invert", []string{"in.ppm", "out.ppm", "invert", "5"}, 0, false},
		{"motionblur missing length", []string{"in.ppm", "out.ppm", "motionblur"}, 0, false},
		{"motionblur non-numeric length", []string{"in.ppm", "out.ppm", "motionblur", "five"}, 0, false},
		{"motionblur zero length", []string{"in.ppm", "out.ppm", "motionblur", "0"}, 0, false},
		{"motionblur negative length", []string{"in.ppm", "out.ppm", "motionblur", "-3"}, 0, false},
		{"motionblur extra args", []string{"in.ppm", "out.ppm", "motionblur", "5", "6"}, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f, ok := parseFilterArgs(tc.args)
			if ok != tc.ok {
				t.Fatalf("ok = %v, want %v", ok, tc.ok)
			}
			if ok && f.Kind() != tc.kind {
				t.Errorf("kind = %v, want %v", f.Kind(), tc.kind)
			}
		})
	}
}
