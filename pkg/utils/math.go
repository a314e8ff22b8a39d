package utils

const (
	bitSize       = 32 << (^uint(0) >> 63)
	maxIntHeadBit = 1 << (bitSize - 2)
)

// IsPowerOfTwo reports whether the given n is a power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// CeilToPowerOfTwo returns n if it is a power-of-two, otherwise the next-highest power-of-two.
// Values below 2 are rounded up to 2.
func CeilToPowerOfTwo(n int) int {
	if n&maxIntHeadBit != 0 && n > maxIntHeadBit {
		panic("argument is too large")
	}

	if n <= 2 {
		return 2
	}

	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	n++

	return n
}

// WrapIndex maps idx into [0, size) using a bit mask. size must be a power of two.
func WrapIndex(idx, size int) int {
	return idx & (size - 1)
}

// GrowCapacity returns the next power-of-two capacity able to hold minCap items,
// starting from current. An empty current yields at least initial; otherwise the
// capacity at least doubles.
func GrowCapacity(current, minCap, initial int) int {
	if current == 0 {
		return CeilToPowerOfTwo(max(minCap, initial))
	}
	return CeilToPowerOfTwo(max(minCap, current*2))
}
