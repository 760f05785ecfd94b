// Package util provides pooled buffers shared by the parser internals.
package util

import (
	"math"
	"math/bits"
	"sync"
)

// Byte slices are pooled in power-of-two size classes from 64 bytes up to 64 KiB.
const (
	minClassBits = 6
	maxClassBits = 16
)

var bytesPools [maxClassBits - minClassBits + 1]sync.Pool

func sizeClass(n int) int {
	if n <= 1<<minClassBits {
		return 0
	}
	return bits.Len(uint(n-1)) - minClassBits
}

// GetBytes returns a slice of length n.
// Slices larger than 64 KiB are allocated directly and never pooled.
func GetBytes(n int) []byte {
	if n > math.MaxUint16+1 {
		return make([]byte, n)
	}
	cl := sizeClass(n)
	if p, ok := bytesPools[cl].Get().(*[]byte); ok {
		return (*p)[:n]
	}
	return make([]byte, n, 1<<(cl+minClassBits))
}

// FreeBytes returns b obtained from [GetBytes] to the pool.
func FreeBytes(b []byte) {
	c := cap(b)
	if c < 1<<minClassBits || c > math.MaxUint16+1 || c&(c-1) != 0 {
		return
	}
	b = b[:0]
	bytesPools[sizeClass(c)].Put(&b)
}
