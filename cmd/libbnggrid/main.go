// Command libbnggrid builds the C-callable conversion library:
//
//	go build -buildmode=c-shared -o libbnggrid.so ./cmd/libbnggrid
//
// The exported surface is four entry points: convert_single for one
// coordinate, convert_batch and convert_batch_parallel for bulk input
// passed as (pointer, length) float buffers, and release_result to free a
// returned buffer. Each result buffer is allocated with malloc, handed to
// the caller as a contiguous array of uint32 easting/northing pairs, and
// must be released exactly once through release_result.
package main

/*
#include <stdint.h>
#include <stdlib.h>

// A result buffer handle. data points to len easting/northing pairs laid
// out contiguously as 2*len uint32 values. err is 0 on success,
// 1 on input length mismatch, 2 on allocation failure; data is NULL and
// len is 0 unless err is 0.
typedef struct {
	uint32_t *data;
	size_t    len;
	int32_t   err;
} result_buffer;
*/
import "C"

import (
	"sync"
	"unsafe"

	"github.com/kailas-cloud/bnggrid"
)

// Error codes surfaced through result_buffer.err.
const (
	errOK             = 0
	errLengthMismatch = 1
	errAllocFailed    = 2
)

// issued tracks live result buffers so release_result can reject a double
// or foreign free deterministically instead of corrupting the allocator.
var issued = struct {
	sync.Mutex
	ptrs map[unsafe.Pointer]struct{}
}{ptrs: make(map[unsafe.Pointer]struct{})}

//export convert_single
func convert_single(lon, lat C.double) (C.int32_t, C.int32_t) {
	p := bnggrid.Convert(float64(lon), float64(lat))
	return C.int32_t(p.Easting), C.int32_t(p.Northing)
}

//export convert_batch
func convert_batch(lons *C.float, lonsLen C.size_t, lats *C.float, latsLen C.size_t) C.result_buffer {
	return convertBatch(lons, lonsLen, lats, latsLen, bnggrid.ConvertBatch)
}

//export convert_batch_parallel
func convert_batch_parallel(lons *C.float, lonsLen C.size_t, lats *C.float, latsLen C.size_t) C.result_buffer {
	return convertBatch(lons, lonsLen, lats, latsLen, bnggrid.ConvertBatchParallel)
}

//export release_result
func release_result(buf C.result_buffer) {
	ptr := unsafe.Pointer(buf.data)
	if ptr == nil {
		return
	}

	issued.Lock()
	_, ok := issued.ptrs[ptr]
	if ok {
		delete(issued.ptrs, ptr)
	}
	issued.Unlock()

	// Unknown pointer: either already released or never issued by this
	// library. Freeing it would be undefined behavior, so drop it.
	if !ok {
		return
	}
	C.free(ptr)
}

func convertBatch(
	lons *C.float, lonsLen C.size_t,
	lats *C.float, latsLen C.size_t,
	fn func([]float64, []float64) ([]bnggrid.GridPoint, error),
) C.result_buffer {
	if lonsLen != latsLen {
		return C.result_buffer{err: errLengthMismatch}
	}
	n := int(lonsLen)
	if n == 0 {
		return C.result_buffer{err: errOK}
	}
	if lons == nil || lats == nil {
		return C.result_buffer{err: errLengthMismatch}
	}

	lonSrc := unsafe.Slice((*float32)(unsafe.Pointer(lons)), n)
	latSrc := unsafe.Slice((*float32)(unsafe.Pointer(lats)), n)

	lonF := make([]float64, n)
	latF := make([]float64, n)
	for i := 0; i < n; i++ {
		lonF[i] = float64(lonSrc[i])
		latF[i] = float64(latSrc[i])
	}

	points, err := fn(lonF, latF)
	if err != nil {
		return C.result_buffer{err: errLengthMismatch}
	}

	out := C.malloc(C.size_t(n) * 2 * C.size_t(unsafe.Sizeof(C.uint32_t(0))))
	if out == nil {
		return C.result_buffer{err: errAllocFailed}
	}

	dst := unsafe.Slice((*uint32)(out), 2*n)
	for i, p := range points {
		dst[2*i] = uint32(p.Easting)
		dst[2*i+1] = uint32(p.Northing)
	}

	issued.Lock()
	issued.ptrs[out] = struct{}{}
	issued.Unlock()

	return C.result_buffer{
		data: (*C.uint32_t)(out),
		len:  C.size_t(n),
		err:  errOK,
	}
}

func main() {}
