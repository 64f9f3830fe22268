package pool

import "sync"

// Slice pools for two numeric shapes: values (uint64) and packed words
// (uint32). PFor's block decoder takes its packed-word scratch from the
// uint32 pool instead of allocating it on every block it decodes.
var (
	uint64SlicePool = sync.Pool{
		New: func() any { return &[]uint64{} },
	}
	uint32SlicePool = sync.Pool{
		New: func() any { return &[]uint32{} },
	}
)

// GetUint64Slice retrieves a uint64 slice of the given length from the pool.
// The caller must call the returned cleanup function (typically via defer)
// to return the slice to the pool.
func GetUint64Slice(size int) ([]uint64, func()) {
	ptr, _ := uint64SlicePool.Get().(*[]uint64)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]uint64, size)
	} else {
		slice = slice[:size]
	}
	*ptr = slice

	return slice, func() { uint64SlicePool.Put(ptr) }
}

// GetUint32Slice retrieves a uint32 slice of the given length from the pool.
// The caller must call the returned cleanup function (typically via defer)
// to return the slice to the pool.
func GetUint32Slice(size int) ([]uint32, func()) {
	ptr, _ := uint32SlicePool.Get().(*[]uint32)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]uint32, size)
	} else {
		slice = slice[:size]
	}
	*ptr = slice

	return slice, func() { uint32SlicePool.Put(ptr) }
}
