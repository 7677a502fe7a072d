// Package ppm implements the plain-text PPM ("P3") image format: decode
// parses a whitespace-delimited token stream into a raster.Image, encode
// produces the exact canonical text layout (one row per line, single spaces).
package ppm

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/hstohl/image-editor/internal/raster"
)

// MaxVal is the only color depth this codec supports (8-bit channels).
const MaxVal = 255

// ErrInvalidFormat is returned when the input is not a P3 image this codec
// can handle: wrong magic token, bad dimensions, or an unsupported max
// color value.
var ErrInvalidFormat = errors.New("invalid PPM format")

// tokens walks a pre-split token stream. The P3 format uses lines for
// structure but parsing is whitespace-insensitive, so decoding works on
// flat tokens regardless of the original layout.
type tokens struct {
	fields []string
	pos    int
}

func (t *tokens) next() (string, error) {
	if t.pos >= len(t.fields) {
		return "", errors.New("unexpected end of input")
	}
	s := t.fields[t.pos]
	t.pos++
	return s, nil
}

func (t *tokens) nextInt() (int, error) {
	s, err := t.next()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("expected integer token: %w", err)
	}
	return n, nil
}

// Decode parses P3 text into an image. The token count is not checked
// against width*height*3 up front; a short or malformed pixel section
// surfaces as a parse error on the offending token.
func Decode(data []byte) (*raster.Image, error) {
	toks := &tokens{fields: strings.Fields(string(data))}

	magic, err := toks.next()
	if err != nil || magic != "P3" {
		return nil, fmt.Errorf("%w: missing P3 header", ErrInvalidFormat)
	}

	width, err := toks.nextInt()
	if err != nil {
		return nil, fmt.Errorf("image width: %w", err)
	}
	height, err := toks.nextInt()
	if err != nil {
		return nil, fmt.Errorf("image height: %w", err)
	}
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: negative dimensions %dx%d", ErrInvalidFormat, width, height)
	}

	maxVal, err := toks.nextInt()
	if err != nil {
		return nil, fmt.Errorf("max color value: %w", err)
	}
	if maxVal != MaxVal {
		return nil, fmt.Errorf("%w: unsupported max color value %d", ErrInvalidFormat, maxVal)
	}

	img, err := raster.New(width, height)
	if err != nil {
		return nil, err
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var c raster.Color
			if c.R, err = toks.nextInt(); err != nil {
				return nil, fmt.Errorf("pixel (%d, %d) red: %w", x, y, err)
			}
			if c.G, err = toks.nextInt(); err != nil {
				return nil, fmt.Errorf("pixel (%d, %d) green: %w", x, y, err)
			}
			if c.B, err = toks.nextInt(); err != nil {
				return nil, fmt.Errorf("pixel (%d, %d) blue: %w", x, y, err)
			}
			if err := img.Set(x, y, c); err != nil {
				return nil, err
			}
		}
	}

	return img, nil
}

// Encode renders the image as canonical P3 text: the three header lines
// followed by one line per row, channel values separated by single spaces.
// Encoding a well-formed image never fails.
func Encode(img *raster.Image) ([]byte, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "P3\n%d %d\n%d\n", img.Width(), img.Height(), MaxVal)

	for y := 0; y < img.Height(); y++ {
		row, err := img.Row(y)
		if err != nil {
			return nil, err
		}
		for x, c := range row {
			if x > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%d %d %d", c.R, c.G, c.B)
		}
		b.WriteByte('\n')
	}

	return []byte(b.String()), nil
}
