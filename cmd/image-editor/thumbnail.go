package main

import (
	"bytes"
	"fmt"
	"image"
	"os"

	"github.com/nfnt/resize"
	"github.com/spf13/cobra"

	"github.com/hstohl/image-editor/internal/ppm"
	"github.com/hstohl/image-editor/internal/raster"
)

var thumbnailCmd = &cobra.Command{
	Use:   "thumbnail",
	Short: "Downscale a PNM image to a P3 thumbnail",
	RunE:  runThumbnail,
}

func init() {
	thumbnailCmd.Flags().StringP("input", "i", "", "Input PNM file")
	thumbnailCmd.Flags().StringP("output", "o", "", "Output P3 file")
	thumbnailCmd.Flags().Int("max", 128, "Largest output dimension in pixels")
	thumbnailCmd.MarkFlagRequired("input")
	thumbnailCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(thumbnailCmd)
}

func runThumbnail(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")
	max, _ := cmd.Flags().GetInt("max")
	if max < 1 {
		return fmt.Errorf("max dimension must be >= 1, got %d", max)
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decoding: %w", err)
	}

	thumb := resize.Thumbnail(uint(max), uint(max), src, resize.NearestNeighbor)

	img, err := fromImage(thumb)
	if err != nil {
		return err
	}
	out, err := ppm.Encode(img)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, out, 0644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	fmt.Printf("Thumbnail %dx%d → %s (%d bytes)\n", img.Width(), img.Height(), outputPath, len(out))
	return nil
}

// fromImage copies a decoded stdlib image into the editor's pixel grid,
// reducing 16-bit stdlib channels to the 8-bit range P3 stores.
func fromImage(src image.Image) (*raster.Image, error) {
	bounds := src.Bounds()
	img, err := raster.New(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}
	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			r, g, b, _ := src.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			c := raster.Color{R: int(r >> 8), G: int(g >> 8), B: int(b >> 8)}
			if err := img.Set(x, y, c); err != nil {
				return nil, err
			}
		}
	}
	return img, nil
}
