package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/hstohl/image-editor/internal/filter"
	"github.com/hstohl/image-editor/internal/pipeline"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "image-editor <in-file> <out-file> <filter> [motion-blur-length]",
	Short: "Apply a spatial filter to a plain-text PPM (P3) image",
	Long: `Apply a spatial filter to a plain-text PPM (P3) image.

Filters:
  grayscale   average each pixel's channels (greyscale is accepted too)
  invert      replace each channel with 255 - channel
  emboss      relief effect from diagonal neighbor differences
  motionblur  horizontal smear; takes one extra argument, the blur
              length in pixels (an integer >= 1)`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})))
		}
	},
	RunE: runFilter,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging to stderr")
}

func runFilter(cmd *cobra.Command, args []string) error {
	// Argument problems are usage mode, not failures: print the help text
	// and exit cleanly. Only file and format problems are hard errors.
	f, ok := parseFilterArgs(args)
	if !ok {
		return cmd.Usage()
	}
	inPath, outPath := args[0], args[1]

	input, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	result, err := pipeline.Run(input, f)
	if err != nil {
		return fmt.Errorf("filtering: %w", err)
	}

	if err := os.WriteFile(outPath, result.Data, 0644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	fmt.Printf("Applied %s to %dx%d image\n", f, result.Width, result.Height)
	fmt.Printf("Input:  %s (%d bytes)\n", inPath, len(input))
	fmt.Printf("Output: %s (%d bytes)\n", outPath, len(result.Data))

	return nil
}

// parseFilterArgs validates the positional contract: input, output and a
// filter name, plus exactly one length argument for motionblur and none for
// anything else.
func parseFilterArgs(args []string) (filter.Filter, bool) {
	if len(args) < 3 {
		return filter.Filter{}, false
	}
	kind, err := filter.ParseKind(args[2])
	if err != nil {
		return filter.Filter{}, false
	}

	if kind == filter.MotionBlur {
		if len(args) != 4 {
			return filter.Filter{}, false
		}
		length, err := strconv.Atoi(args[3])
		if err != nil {
			return filter.Filter{}, false
		}
		f, err := filter.NewMotionBlur(length)
		if err != nil {
			return filter.Filter{}, false
		}
		return f, true
	}

	if len(args) != 3 {
		return filter.Filter{}, false
	}
	f, err := filter.New(kind)
	if err != nil {
		return filter.Filter{}, false
	}
	return f, true
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
