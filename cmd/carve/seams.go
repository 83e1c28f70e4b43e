package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/carve"
	"github.com/gogpu/carve/internal/image"
)

func newSeamsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seams <input> <output>",
		Short: "Paint the cheapest seams of an image",
		Args:  cobra.ExactArgs(2),
		RunE:  runSeams,
	}
	cmd.Flags().String("axis", "both", "Seams to paint: vertical, horizontal or both")
	return cmd
}

func runSeams(cmd *cobra.Command, args []string) error {
	inputPath, outputPath := args[0], args[1]
	axis, _ := cmd.Flags().GetString("axis")

	buf, err := load(cmd, inputPath)
	if err != nil {
		return err
	}

	workers, _ := cmd.Flags().GetInt("workers")
	var opts []carve.FinderOption
	if workers > 0 {
		opts = append(opts, carve.WithWorkers(workers))
	}
	f := carve.NewFinder(opts...)
	defer f.Close()

	var seams []carve.Seam
	switch axis {
	case "vertical":
		seams = append(seams, f.Vertical(buf))
	case "horizontal":
		seams = append(seams, f.Horizontal(buf))
	case "both":
		seams = append(seams, f.Vertical(buf), f.Horizontal(buf))
	default:
		return fmt.Errorf("unknown axis %q", axis)
	}

	marked, err := image.MarkSeams(buf, image.SeamColor, seams...)
	if err != nil {
		return err
	}
	if err := image.Save(outputPath, marked); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	for _, s := range seams {
		fmt.Fprintf(cmd.OutOrStdout(), "%s seam: cost %d\n", s.Axis, s.Cost)
	}
	return nil
}
