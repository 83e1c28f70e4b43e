// Package carve implements content-aware image shrinking by seam carving.
//
// # Overview
//
// A seam is a connected path of pixels, one per row (vertical seam) or one
// per column (horizontal seam), where neighbouring entries move at most one
// pixel sideways. Removing the seam with the lowest total cost narrows or
// shortens an image by one pixel while keeping high-contrast structure
// intact, which uniform scaling and cropping do not.
//
// # Quick Start
//
//	buf, err := carve.NewBuffer(w, h, pixels)
//	if err != nil {
//	    return err
//	}
//
//	c, err := carve.NewCarver(buf)
//	if err != nil {
//	    return err
//	}
//	small, err := c.ResizeTo(w-40, h-20)
//
// # Cost Model
//
// The cost of stepping between two pixels is [Dissimilarity], the squared
// Euclidean distance of their RGB channels. Alpha is carried through but
// never priced.
//
// # Seam Search
//
// [Finder] fills a cumulative-cost table one layer (row or column) at a
// time. Every cell considers the three neighbours of the previous layer in
// the order lower index, same index, higher index and keeps the first
// strictly cheaper one, so equal costs resolve toward the lower index. The
// seam ends at the first cheapest cell of the last layer.
//
// Each layer is split in two halves computed concurrently, with a join
// before the next layer starts. The split point never changes the result.
//
// # Growing
//
// Seam insertion is not supported. A [Carver] asked to grow either axis
// restarts from the original image and shrinks from there.
//
// # Logging
//
// carve is silent by default. Use [SetLogger] to route diagnostics to a
// [log/slog] logger.
package carve
