// Package image converts between standard library images and carve
// buffers, and handles file I/O for the carve command.
//
// Decoding supports PNG, JPEG and GIF from the standard library and BMP
// and WebP from golang.org/x/image. Encoding picks PNG, JPEG or BMP from
// the file extension.
package image
