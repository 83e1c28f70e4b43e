package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/carve"
	"github.com/gogpu/carve/internal/image"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "carve",
		Short:         "Content-aware image shrinking by seam carving",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			verbose, _ := cmd.Flags().GetBool("verbose")
			if verbose {
				carve.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
		},
	}

	root.PersistentFlags().BoolP("verbose", "v", false, "Log every resize request and seam")
	root.PersistentFlags().Int("workers", 0, "Workers per DP layer and seam removal (0 splits each layer in two)")

	root.AddCommand(newResizeCmd(), newReplayCmd(), newSeamsCmd())
	return root
}

// load decodes path and reports its size like the interactive viewer did.
func load(cmd *cobra.Command, path string) (*carve.Buffer, error) {
	buf, format, err := image.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Loaded %s: %dx%d (%s)\n", path, buf.Width(), buf.Height(), format)
	return buf, nil
}

// newCarver builds a Carver honoring --workers. The returned func releases
// the worker pool.
func newCarver(cmd *cobra.Command, buf *carve.Buffer, opts ...carve.Option) (*carve.Carver, func(), error) {
	workers, _ := cmd.Flags().GetInt("workers")
	cleanup := func() {}
	if workers > 0 {
		f := carve.NewFinder(carve.WithWorkers(workers))
		cleanup = f.Close
		opts = append(opts, carve.WithFinder(f), carve.WithRemovalWorkers(workers))
	}

	c, err := carve.NewCarver(buf, opts...)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return c, cleanup, nil
}

// parseSize parses "WxH".
func parseSize(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return 0, 0, fmt.Errorf("size %q: want WIDTHxHEIGHT", s)
	}
	w, err := strconv.Atoi(ws)
	if err != nil {
		return 0, 0, fmt.Errorf("size %q: width: %w", s, err)
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return 0, 0, fmt.Errorf("size %q: height: %w", s, err)
	}
	if w < 1 || h < 1 {
		return 0, 0, fmt.Errorf("size %q: dimensions must be positive", s)
	}
	return w, h, nil
}
