package core

// CopyInto copies as much of src as fits into dst and returns the count.
func CopyInto(dst, src []float64) int {
	return copy(dst, src)
}
