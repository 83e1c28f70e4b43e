package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/carve/internal/image"
)

func newResizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resize <input> <output>",
		Short: "Carve an image down to a target size",
		Args:  cobra.ExactArgs(2),
		RunE:  runResize,
	}
	cmd.Flags().Int("width", 0, "Target width (0 keeps the current width)")
	cmd.Flags().Int("height", 0, "Target height (0 keeps the current height)")
	cmd.Flags().String("compare", "", "Also write a uniformly scaled image of the same size to this path")
	return cmd
}

func runResize(cmd *cobra.Command, args []string) error {
	inputPath, outputPath := args[0], args[1]
	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")
	comparePath, _ := cmd.Flags().GetString("compare")

	buf, err := load(cmd, inputPath)
	if err != nil {
		return err
	}
	if width == 0 {
		width = buf.Width()
	}
	if height == 0 {
		height = buf.Height()
	}

	c, cleanup, err := newCarver(cmd, buf)
	if err != nil {
		return err
	}
	defer cleanup()

	out, err := c.ResizeTo(width, height)
	if err != nil {
		return fmt.Errorf("resizing: %w", err)
	}
	if err := image.Save(outputPath, out); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Carved %dx%d -> %dx%d: %s\n", buf.Width(), buf.Height(), out.Width(), out.Height(), outputPath)

	if comparePath != "" {
		scaled, err := image.Scale(buf, width, height)
		if err != nil {
			return fmt.Errorf("scaling: %w", err)
		}
		if err := image.Save(comparePath, scaled); err != nil {
			return fmt.Errorf("writing comparison: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Scaled %dx%d -> %dx%d: %s\n", buf.Width(), buf.Height(), width, height, comparePath)
	}

	return nil
}
