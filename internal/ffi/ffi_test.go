package ffi

import (
	"errors"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// arena is a counting allocator backed by Go memory. Blocks stay referenced
// in the map so their addresses remain valid for the duration of a test.
type arena struct {
	blocks     map[uintptr][]byte
	allocs     int
	frees      int
	failAfter  int // fail once this many allocations have succeeded; 0 means never
	doubleFree bool
}

func newArena() *arena {
	return &arena{blocks: map[uintptr][]byte{}}
}

func (a *arena) Alloc(size int) (uintptr, error) {
	if a.failAfter > 0 && a.allocs >= a.failAfter {
		return 0, errors.New("arena: allocation refused")
	}
	if size <= 0 {
		return 0, errors.New("arena: invalid size")
	}
	b := make([]byte, size)
	p := uintptr(unsafe.Pointer(&b[0]))
	a.blocks[p] = b
	a.allocs++
	return p, nil
}

func (a *arena) Free(ptr uintptr) {
	if _, ok := a.blocks[ptr]; !ok {
		a.doubleFree = true
		return
	}
	delete(a.blocks, ptr)
	a.frees++
}

func (a *arena) balanced() bool {
	return a.allocs == a.frees && !a.doubleFree
}

// slotsOf views a native char** argument as its pointer slots.
func slotsOf(argv uintptr, n int) []uintptr {
	return unsafe.Slice((*uintptr)(unsafe.Pointer(argv)), n)
}

// overwrite rewrites the NUL-terminated string at p in place. Only valid
// when the replacement fits in the original allocation.
func overwrite(p uintptr, s string) {
	buf := unsafe.Slice((*byte)(unsafe.Pointer(p)), len(s)+1)
	copy(buf, s)
	buf[len(s)] = 0
}

func TestStringArraySlotCount(t *testing.T) {
	a := newArena()
	ss := []string{"one", "two", "three"}

	sa, err := NewStringArray(a, ss)
	require.NoError(t, err)
	defer sa.Free()

	assert.Equal(t, 3, sa.Len())
	assert.Len(t, ss, 3)

	// One block per element plus the slot array itself.
	assert.Equal(t, 4, a.allocs)
	require.NotZero(t, sa.Addr())
	assert.Len(t, a.blocks[sa.Addr()], 3*int(ptrSize))
}

func TestCallStringsRoundTrip(t *testing.T) {
	a := newArena()
	ss := []string{"a", "bb", ""}

	ret, err := CallStrings(a, ss, func(argv uintptr) uintptr {
		for i, slot := range slotsOf(argv, 3) {
			assert.Equal(t, ss[i], GoString(slot))
		}
		return 42
	})
	require.NoError(t, err)

	assert.Equal(t, uintptr(42), ret)
	assert.Equal(t, []string{"a", "bb", ""}, ss)
	assert.True(t, a.balanced())
}

func TestCallStringsCopiesBackMutations(t *testing.T) {
	a := newArena()
	ss := []string{"a", "bb"}

	ret, err := CallStrings(a, ss, func(argv uintptr) uintptr {
		slots := slotsOf(argv, 2)
		overwrite(slots[0], "x")
		overwrite(slots[1], "yy")
		return 0
	})
	require.NoError(t, err)

	assert.Equal(t, uintptr(0), ret)
	assert.Equal(t, []string{"x", "yy"}, ss)
	assert.True(t, a.balanced())
}

func TestCallStringsErrorStatusPassesThrough(t *testing.T) {
	a := newArena()
	ss := []string{"kernel void k() {}"}
	status := ^uintptr(0) // -1 in the native convention

	ret, err := CallStrings(a, ss, func(uintptr) uintptr {
		return status
	})
	require.NoError(t, err)

	assert.Equal(t, status, ret)
	assert.True(t, a.balanced(), "buffer must be released on native failure too")
}

func TestCallStringsReleasesOnPanic(t *testing.T) {
	a := newArena()
	ss := []string{"a", "bb"}

	require.Panics(t, func() {
		CallStrings(a, ss, func(uintptr) uintptr {
			panic("native trap")
		})
	})
	assert.True(t, a.balanced(), "buffer must be released when the call panics")
}

func TestCallStringsAllocFailure(t *testing.T) {
	a := newArena()
	a.failAfter = 2 // slot array and first element succeed, second element fails
	ss := []string{"a", "bb", "ccc"}

	_, err := CallStrings(a, ss, func(uintptr) uintptr {
		t.Fatal("native call must not run after an allocation failure")
		return 0
	})
	require.Error(t, err)

	assert.Equal(t, []string{"a", "bb", "ccc"}, ss)
	assert.True(t, a.balanced(), "partial allocations must be released")
}

func TestStringArrayFreeIsIdempotent(t *testing.T) {
	a := newArena()
	sa, err := NewStringArray(a, []string{"a", "bb"})
	require.NoError(t, err)

	sa.Free()
	sa.Free()

	assert.True(t, a.balanced())
	assert.False(t, a.doubleFree)
}

func TestCallStringsRepeatedNoLeak(t *testing.T) {
	a := newArena()
	ss := []string{"a", "bb"}

	for i := 0; i < 10; i++ {
		_, err := CallStrings(a, ss, func(uintptr) uintptr { return 0 })
		require.NoError(t, err)
	}
	assert.Equal(t, a.allocs, a.frees)
	assert.Empty(t, a.blocks)
}

func TestCallStringsNativePointerSwap(t *testing.T) {
	a := newArena()
	ss := []string{"old"}

	swapped, err := CString(a, "new")
	require.NoError(t, err)

	ret, err := CallStrings(a, ss, func(argv uintptr) uintptr {
		slotsOf(argv, 1)[0] = swapped
		return 0
	})
	require.NoError(t, err)
	assert.Equal(t, uintptr(0), ret)
	assert.Equal(t, []string{"new"}, ss)

	// The wrapper frees its own element buffer, not the swapped-in one.
	a.Free(swapped)
	assert.True(t, a.balanced())
}

func TestCallStringsEmpty(t *testing.T) {
	a := newArena()
	var ss []string

	ret, err := CallStrings(a, ss, func(argv uintptr) uintptr {
		assert.Zero(t, argv)
		return 7
	})
	require.NoError(t, err)
	assert.Equal(t, uintptr(7), ret)
	assert.Zero(t, a.allocs)
}

func TestCString(t *testing.T) {
	a := newArena()

	p, err := CString(a, "abc")
	require.NoError(t, err)
	defer a.Free(p)

	assert.Len(t, a.blocks[p], 4)
	assert.Equal(t, "abc", GoString(p))
}

func TestGoString(t *testing.T) {
	assert.Equal(t, "", GoString(0))

	b := []byte{'h', 'i', 0, 'x'}
	p := uintptr(unsafe.Pointer(&b[0]))
	assert.Equal(t, "hi", GoString(p))
	assert.Equal(t, "hi", GoStringN(p, 4))
	assert.Equal(t, "h", GoStringN(p, 1))
	assert.Equal(t, "", GoStringN(0, 4))
}
