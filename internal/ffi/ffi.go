// Package ffi holds the marshaling helpers shared by the binding packages.
//
// Native APIs that take arrays of C strings (shader sources, program
// fragments, build options) need a native array of NUL-terminated buffers.
// StringArray owns such a buffer for the duration of exactly one native
// call: it is allocated immediately before the call, may be mutated in
// place by the native side, is copied back element by element afterwards,
// and is released before control returns to the caller.
package ffi

import (
	"fmt"
	"unsafe"
)

// Allocator provides native heap memory for marshaled arguments.
//
// The default implementation is the process allocator (Native). Tests
// substitute a counting allocator to check alloc/free balance.
type Allocator interface {
	// Alloc returns the address of a zeroed native block of the given size.
	Alloc(size int) (uintptr, error)

	// Free releases a block previously returned by Alloc.
	Free(ptr uintptr)
}

const ptrSize = unsafe.Sizeof(uintptr(0))

func sliceOf(p uintptr, n int) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(p)), n)
}

// CString copies s into a freshly allocated NUL-terminated native buffer
// and returns its address. The caller owns the buffer and must release it
// with a.Free.
func CString(a Allocator, s string) (uintptr, error) {
	p, err := a.Alloc(len(s) + 1)
	if err != nil {
		return 0, err
	}
	buf := unsafe.Slice((*byte)(unsafe.Pointer(p)), len(s)+1)
	copy(buf, s)
	buf[len(s)] = 0
	return p, nil
}

// GoString decodes a NUL-terminated native string. A zero pointer decodes
// to the empty string.
func GoString(ptr uintptr) string {
	if ptr == 0 {
		return ""
	}
	var bytes []byte
	for p := (*byte)(unsafe.Pointer(ptr)); *p != 0; p = (*byte)(unsafe.Pointer(uintptr(unsafe.Pointer(p)) + 1)) {
		bytes = append(bytes, *p)
	}
	return string(bytes)
}

// GoStringN decodes at most n bytes of a native buffer, stopping at the
// first NUL.
func GoStringN(ptr uintptr, n int) string {
	if ptr == 0 || n <= 0 {
		return ""
	}
	buf := unsafe.Slice((*byte)(unsafe.Pointer(ptr)), n)
	for i, b := range buf {
		if b == 0 {
			return string(buf[:i])
		}
	}
	return string(buf)
}

// StringArray is a native array of string pointers built from a Go slice.
//
// The array has exactly one slot per input element. The native side may
// overwrite the string contents or the slot pointers themselves; CopyBack
// reads whatever the slots point at after the call. Free releases the
// per-element buffers this package allocated together with the slot array,
// exactly once.
type StringArray struct {
	a     Allocator
	base  uintptr
	elems []uintptr
	freed bool
}

// NewStringArray encodes each element of ss into a native NUL-terminated
// buffer and stores the addresses in a native pointer array. On error every
// allocation made so far is released before returning.
func NewStringArray(a Allocator, ss []string) (*StringArray, error) {
	sa := &StringArray{a: a}
	if len(ss) == 0 {
		return sa, nil
	}

	base, err := a.Alloc(len(ss) * int(ptrSize))
	if err != nil {
		return nil, fmt.Errorf("alloc pointer array: %w", err)
	}
	sa.base = base
	sa.elems = make([]uintptr, 0, len(ss))

	slots := unsafe.Slice((*uintptr)(unsafe.Pointer(base)), len(ss))
	for i, s := range ss {
		p, err := CString(a, s)
		if err != nil {
			sa.Free()
			return nil, fmt.Errorf("alloc element %d: %w", i, err)
		}
		sa.elems = append(sa.elems, p)
		slots[i] = p
	}
	return sa, nil
}

// Addr returns the address of the native pointer array, suitable for
// passing as a char** argument. It is zero for an empty input.
func (sa *StringArray) Addr() uintptr {
	return sa.base
}

// Len returns the number of slots in the native array.
func (sa *StringArray) Len() int {
	return len(sa.elems)
}

// CopyBack decodes the current slot values, in order, into dst. The native
// call may have rewritten string contents or whole slot pointers; either
// way dst ends up with what the slots point at now. dst must have at least
// Len elements.
func (sa *StringArray) CopyBack(dst []string) {
	if sa.base == 0 {
		return
	}
	slots := unsafe.Slice((*uintptr)(unsafe.Pointer(sa.base)), len(sa.elems))
	for i, slot := range slots {
		dst[i] = GoString(slot)
	}
}

// Free releases the per-element buffers allocated by NewStringArray and the
// slot array itself. Only the buffers this package allocated are released;
// pointers the native side swapped into the slots are left alone. A second
// call is a no-op.
func (sa *StringArray) Free() {
	if sa.freed {
		return
	}
	sa.freed = true
	for _, p := range sa.elems {
		sa.a.Free(p)
	}
	if sa.base != 0 {
		sa.a.Free(sa.base)
	}
}

// CallStrings adapts a Go string slice to a native char** argument for the
// duration of one native call.
//
// It allocates the native array, invokes call with its address, copies the
// possibly mutated slots back into ss in place, and returns call's result
// unchanged. The native buffer is released on every exit path, including a
// panic out of call. The only error CallStrings itself produces is an
// allocation failure; native status codes pass through in the return value
// and are never interpreted here.
func CallStrings(a Allocator, ss []string, call func(argv uintptr) uintptr) (uintptr, error) {
	sa, err := NewStringArray(a, ss)
	if err != nil {
		return 0, err
	}
	defer sa.Free()

	ret := call(sa.Addr())
	sa.CopyBack(ss)
	return ret, nil
}
