package pipeline

import (
	"errors"
	"testing"

	"github.com/hstohl/image-editor/internal/filter"
	"github.com/hstohl/image-editor/internal/ppm"
)

func mustFilter(t *testing.T, k filter.Kind) filter.Filter {
	t.Helper()
	f, err := filter.New(k)
	if err != nil {
		t.Fatalf("filter.New(%v): %v", k, err)
	}
	return f
}

func TestRunGrayscale(t *testing.T) {
	input := "P3\n2 1\n255\n10 20 30 60 60 60\n"

	result, err := Run([]byte(input), mustFilter(t, filter.Grayscale))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := "P3\n2 1\n255\n20 20 20 60 60 60\n"
	if string(result.Data) != want {
		t.Errorf("output:\ngot  %q\nwant %q", result.Data, want)
	}
	if result.Width != 2 || result.Height != 1 {
		t.Errorf("dimensions: got %dx%d, want 2x1", result.Width, result.Height)
	}
}

func TestRunMotionBlur(t *testing.T) {
	input := "P3\n3 1\n255\n10 10 10 20 20 20 30 30 30\n"

	f, err := filter.NewMotionBlur(2)
	if err != nil {
		t.Fatalf("NewMotionBlur: %v", err)
	}
	result, err := Run([]byte(input), f)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := "P3\n3 1\n255\n15 15 15 25 25 25 30 30 30\n"
	if string(result.Data) != want {
		t.Errorf("output:\ngot  %q\nwant %q", result.Data, want)
	}
}

func TestRunInvertTwiceRestoresInput(t *testing.T) {
	canonical := "P3\n2 2\n255\n0 128 255 13 37 240\n99 1 2 200 200 200\n"
	f := mustFilter(t, filter.Invert)

	first, err := Run([]byte(canonical), f)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	second, err := Run(first.Data, f)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if string(second.Data) != canonical {
		t.Errorf("double invert:\ngot  %q\nwant %q", second.Data, canonical)
	}
}

func TestRunRejectsBadInput(t *testing.T) {
	result, err := Run([]byte("P6\n1 1\n255\n"), mustFilter(t, filter.Invert))
	if !errors.Is(err, ppm.ErrInvalidFormat) {
		t.Fatalf("Run: got %v, want ErrInvalidFormat", err)
	}
	if result != nil {
		t.Error("Run returned a result alongside an error")
	}
}
