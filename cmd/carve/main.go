// Command carve shrinks images with content-aware seam carving.
//
// Usage:
//
//	carve resize in.png out.png --width 320 --height 200
//	carve replay in.bmp frames/ --steps 400x300,350x300,500x280
//	carve seams in.png marked.png
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
