//go:build cgo

package main

/*
#include <stdlib.h>
*/
import "C"

import (
	"unsafe"

	"github.com/fastio/fastio/internal/loader"
)

var version = C.CString("fastio " + loader.Version)

//export fastio_read_file_direct
func fastio_read_file_direct(path *C.char, sizeOut *C.size_t) *C.char {
	return export(path, sizeOut, false)
}

//export fastio_read_text
func fastio_read_text(path *C.char, sizeOut *C.size_t) *C.char {
	return export(path, sizeOut, true)
}

//export fastio_free_direct
func fastio_free_direct(buf *C.char) {
	if buf != nil {
		C.free(unsafe.Pointer(buf))
	}
}

//export fastio_version
func fastio_version() *C.char {
	return version
}

func export(path *C.char, sizeOut *C.size_t, asText bool) *C.char {
	if path == nil {
		return nil
	}
	data, ok := readDirect(C.GoString(path), asText)
	if !ok {
		return nil
	}
	return cCopy(data, sizeOut)
}

// cCopy copies data to the C heap with a trailing NUL.
func cCopy(data []byte, sizeOut *C.size_t) *C.char {
	n := len(data)
	out := (*C.char)(C.malloc(C.size_t(n + 1)))
	if out == nil {
		return nil
	}

	dst := unsafe.Slice((*byte)(unsafe.Pointer(out)), n+1)
	copy(dst, data)
	dst[n] = 0

	if sizeOut != nil {
		*sizeOut = C.size_t(n)
	}
	return out
}

func main() {}
