//go:build windows

package ffi

import (
	"fmt"
	"sync"

	"golang.org/x/sys/windows"
)

var (
	msvcrt = windows.NewLazySystemDLL("msvcrt.dll")

	procMalloc = msvcrt.NewProc("malloc")
	procFree   = msvcrt.NewProc("free")
)

type nativeAllocator struct{}

func (nativeAllocator) Alloc(size int) (uintptr, error) {
	if size <= 0 {
		return 0, fmt.Errorf("alloc: invalid size %d", size)
	}
	p, _, _ := procMalloc.Call(uintptr(size))
	if p == 0 {
		return 0, fmt.Errorf("alloc: out of native memory (%d bytes)", size)
	}
	buf := sliceOf(p, size)
	for i := range buf {
		buf[i] = 0
	}
	return p, nil
}

func (nativeAllocator) Free(ptr uintptr) {
	if ptr != 0 {
		procFree.Call(ptr)
	}
}

var (
	nativeOnce sync.Once
	native     nativeAllocator
	nativeErr  error
)

// Native returns the process allocator, backed by msvcrt malloc and free.
func Native() Allocator {
	nativeOnce.Do(func() {
		nativeErr = msvcrt.Load()
		if nativeErr == nil {
			nativeErr = procMalloc.Find()
		}
		if nativeErr == nil {
			nativeErr = procFree.Find()
		}
	})
	if nativeErr != nil {
		panic(fmt.Sprintf("ffi: load msvcrt: %v", nativeErr))
	}
	return native
}
