package main

import (
	"bytes"
	"fmt"
	"image"
	"os"

	// Registers pbm/pgm/ppm (binary and plain) with image.Decode.
	_ "github.com/jbuchbinder/gopnm"

	"github.com/spf13/cobra"
)

var identifyCmd = &cobra.Command{
	Use:   "identify [file]",
	Short: "Inspect a PNM image",
	Args:  cobra.ExactArgs(1),
	RunE:  runIdentify,
}

func init() {
	rootCmd.AddCommand(identifyCmd)
}

func runIdentify(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	fmt.Printf("File:       %s\n", path)
	fmt.Printf("Format:     %s\n", format)
	fmt.Printf("Dimensions: %d x %d\n", cfg.Width, cfg.Height)
	fmt.Printf("File size:  %d bytes\n", len(data))

	return nil
}
