package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/carve/internal/image"
)

func newReplayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay <input> <output-dir>",
		Short: "Replay a sequence of window sizes through one carver",
		Long: `Replay feeds each size in --steps to the same carver, the way a window
being resized would. Shrinking continues from the previous frame; growing
either side restarts from the original image. One PNG is written per step.`,
		Args: cobra.ExactArgs(2),
		RunE: runReplay,
	}
	cmd.Flags().String("steps", "", "Comma-separated sizes, e.g. 400x300,380x300,420x290")
	_ = cmd.MarkFlagRequired("steps")
	return cmd
}

func runReplay(cmd *cobra.Command, args []string) error {
	inputPath, outDir := args[0], args[1]
	stepsFlag, _ := cmd.Flags().GetString("steps")

	var steps [][2]int
	for _, s := range strings.Split(stepsFlag, ",") {
		w, h, err := parseSize(s)
		if err != nil {
			return err
		}
		steps = append(steps, [2]int{w, h})
	}

	buf, err := load(cmd, inputPath)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", outDir, err)
	}

	c, cleanup, err := newCarver(cmd, buf)
	if err != nil {
		return err
	}
	defer cleanup()

	for i, step := range steps {
		fmt.Fprintf(cmd.OutOrStdout(), "Resizing to %d, %d\n", step[0], step[1])
		out, err := c.ResizeTo(step[0], step[1])
		if err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
		path := filepath.Join(outDir, fmt.Sprintf("frame-%03d-%dx%d.png", i+1, out.Width(), out.Height()))
		if err := image.Save(path, out); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d frames to %s\n", len(steps), outDir)
	return nil
}
