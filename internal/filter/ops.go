package filter

import "github.com/hstohl/image-editor/internal/raster"

// grayscale sets every pixel's channels to the floor of their average.
// Pixel-local, so traversal order does not matter.
func grayscale(img *raster.Image) error {
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			c, err := img.At(x, y)
			if err != nil {
				return err
			}
			level := clamp((c.R + c.G + c.B) / 3)
			if err := img.Set(x, y, raster.Color{R: level, G: level, B: level}); err != nil {
				return err
			}
		}
	}
	return nil
}

// invert replaces every channel with 255 - channel. Applying invert twice
// restores the original image.
func invert(img *raster.Image) error {
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			c, err := img.At(x, y)
			if err != nil {
				return err
			}
			inverted := raster.Color{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B}
			if err := img.Set(x, y, inverted); err != nil {
				return err
			}
		}
	}
	return nil
}

// emboss sets each pixel to gray 128 offset by the signed channel difference
// of largest magnitude against the up-left neighbor. Traversal runs columns
// right-to-left with rows bottom-to-top inside each column, and neighbor
// reads see live grid state: a neighbor already overwritten by this pass is
// read at its new value. That traversal and the live reads are part of the
// filter's defined output, so they must not be reordered or snapshotted.
// Pixels on the left or top edge have no up-left neighbor and come out as
// flat gray 128.
func emboss(img *raster.Image) error {
	for x := img.Width() - 1; x >= 0; x-- {
		for y := img.Height() - 1; y >= 0; y-- {
			diff := 0
			if x > 0 && y > 0 {
				cur, err := img.At(x, y)
				if err != nil {
					return err
				}
				upLeft, err := img.At(x-1, y-1)
				if err != nil {
					return err
				}
				// Strict > keeps the first channel (R before G before B)
				// on magnitude ties.
				for _, d := range [3]int{cur.R - upLeft.R, cur.G - upLeft.G, cur.B - upLeft.B} {
					if abs(d) > abs(diff) {
						diff = d
					}
				}
			}
			level := clamp(128 + diff)
			if err := img.Set(x, y, raster.Color{R: level, G: level, B: level}); err != nil {
				return err
			}
		}
	}
	return nil
}

// motionBlur averages each pixel with up to length-1 pixels to its right in
// the same row, clamped at the right edge. Reads must see the row's
// pre-filter values, so each row is snapshotted before any of it is
// overwritten; otherwise computing x would read values already blurred
// while computing smaller columns' neighbors.
func motionBlur(img *raster.Image, length int) error {
	for y := 0; y < img.Height(); y++ {
		row, err := img.Row(y)
		if err != nil {
			return err
		}
		for x := 0; x < img.Width(); x++ {
			maxX := x + length - 1
			if maxX > img.Width()-1 {
				maxX = img.Width() - 1
			}
			var r, g, b int
			for i := x; i <= maxX; i++ {
				r += row[i].R
				g += row[i].G
				b += row[i].B
			}
			n := maxX - x + 1
			blurred := raster.Color{R: r / n, G: g / n, B: b / n}
			if err := img.Set(x, y, blurred); err != nil {
				return err
			}
		}
	}
	return nil
}

// clamp restricts a computed channel value to the storable [0, 255] range.
func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
