//go:build linux || darwin

package ffi

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/ebitengine/purego"
)

type nativeAllocator struct {
	malloc func(uintptr) uintptr
	free   func(uintptr)
}

func (n *nativeAllocator) Alloc(size int) (uintptr, error) {
	if size <= 0 {
		return 0, fmt.Errorf("alloc: invalid size %d", size)
	}
	p := n.malloc(uintptr(size))
	if p == 0 {
		return 0, fmt.Errorf("alloc: out of native memory (%d bytes)", size)
	}
	buf := sliceOf(p, size)
	for i := range buf {
		buf[i] = 0
	}
	return p, nil
}

func (n *nativeAllocator) Free(ptr uintptr) {
	if ptr != 0 {
		n.free(ptr)
	}
}

var (
	nativeOnce sync.Once
	native     *nativeAllocator
	nativeErr  error
)

func libcName() string {
	if runtime.GOOS == "darwin" {
		return "/usr/lib/libSystem.B.dylib"
	}
	return "libc.so.6"
}

// Native returns the process allocator, backed by libc malloc and free.
// The library handle is loaded once on first use.
func Native() Allocator {
	nativeOnce.Do(func() {
		handle, err := purego.Dlopen(libcName(), purego.RTLD_LAZY|purego.RTLD_GLOBAL)
		if err != nil {
			nativeErr = err
			return
		}
		native = &nativeAllocator{}
		purego.RegisterLibFunc(&native.malloc, handle, "malloc")
		purego.RegisterLibFunc(&native.free, handle, "free")
	})
	if nativeErr != nil {
		panic(fmt.Sprintf("ffi: load libc: %v", nativeErr))
	}
	return native
}
