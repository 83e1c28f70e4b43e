package carve

// Dissimilarity returns the squared Euclidean distance between the RGB
// channels of a and b. Alpha is ignored.
//
// The square root is omitted: it is monotonic, so seam ordering is
// unchanged and the DP stays in integers. The result is at most 195075.
func Dissimilarity(a, b Pixel) uint32 {
	dr := int32(a.R) - int32(b.R)
	dg := int32(a.G) - int32(b.G)
	db := int32(a.B) - int32(b.B)
	return uint32(dr*dr + dg*dg + db*db)
}
