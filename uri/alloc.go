package uri

//go:generate go tool mockgen -destination ../internal/testutil/allocmock/allocator.go -package allocmock . Allocator

import "github.com/ghettovoice/uriparse/internal/util"

// Allocator provides buffers for decoded spans.
//
// Every buffer returned by Alloc is passed back to Free exactly once,
// after the hook that observed it returns.
type Allocator interface {
	// Alloc returns a buffer of length n.
	Alloc(n int) []byte
	// Free releases a buffer obtained from Alloc.
	Free(b []byte)
}

// DefaultAllocator is the [Allocator] used when [Settings.Allocator] is nil.
// It is backed by size-class pools and is safe for concurrent use.
var DefaultAllocator Allocator = poolAllocator{}

type poolAllocator struct{}

func (poolAllocator) Alloc(n int) []byte { return util.GetBytes(n) }

func (poolAllocator) Free(b []byte) { util.FreeBytes(b) }
