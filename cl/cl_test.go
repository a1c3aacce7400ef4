package cl

import (
	"errors"
	"fmt"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinyrange/gpubind/internal/ffi"
)

// stubInit marks the package as initialized so tests can install fake raw
// bindings without loading a native OpenCL runtime.
func stubInit(t *testing.T) {
	t.Helper()
	initOnce.Do(func() {})
	require.NoError(t, initErr)
}

// testArena is a counting allocator backed by Go memory, mirroring the
// native allocator's contract.
type testArena struct {
	blocks map[uintptr][]byte
	allocs int
	frees  int
}

func newTestArena() *testArena {
	return &testArena{blocks: map[uintptr][]byte{}}
}

func (a *testArena) Alloc(size int) (uintptr, error) {
	if size <= 0 {
		return 0, errors.New("invalid size")
	}
	b := make([]byte, size)
	p := uintptr(unsafe.Pointer(&b[0]))
	a.blocks[p] = b
	a.allocs++
	return p, nil
}

func (a *testArena) Free(ptr uintptr) {
	delete(a.blocks, ptr)
	a.frees++
}

func withArena(t *testing.T) *testArena {
	t.Helper()
	arena := newTestArena()
	old := alloc
	alloc = func() ffi.Allocator { return arena }
	t.Cleanup(func() { alloc = old })
	return arena
}

func writeInfoString(value unsafe.Pointer, s string) {
	buf := unsafe.Slice((*byte)(value), len(s)+1)
	copy(buf, s)
	buf[len(s)] = 0
}

func TestErr(t *testing.T) {
	assert.NoError(t, Err(Success))
	assert.Equal(t, Error(BuildProgramFailure), Err(BuildProgramFailure))
	assert.EqualError(t, Err(DeviceNotFound), "cl: device not found")
	assert.EqualError(t, Err(-999), "cl: error -999")
}

func TestErrorNamesComplete(t *testing.T) {
	codes := []int32{
		DeviceNotFound, DeviceNotAvailable, CompilerNotAvailable,
		MemObjectAllocationFailure, OutOfResources, OutOfHostMemory,
		BuildProgramFailure, MapFailure, InvalidValue, InvalidDevice,
		InvalidContext, InvalidCommandQueue, InvalidProgram,
		InvalidKernelName, InvalidKernel, InvalidWorkDimension,
		InvalidWorkGroupSize, InvalidGlobalWorkSize, InvalidProperty,
	}
	for _, code := range codes {
		assert.Contains(t, errNames, Error(code), "code %d has no name", code)
	}
}

func TestPlatforms(t *testing.T) {
	stubInit(t)

	fake := []uintptr{0x10, 0x20}
	clGetPlatformIDs = func(numEntries uint32, platforms *uintptr, numPlatforms *uint32) int32 {
		if platforms == nil {
			*numPlatforms = uint32(len(fake))
			return Success
		}
		copy(unsafe.Slice(platforms, numEntries), fake)
		return Success
	}

	platforms, err := Platforms()
	require.NoError(t, err)
	assert.Equal(t, []Platform{0x10, 0x20}, platforms)
}

func TestPlatformInfoString(t *testing.T) {
	stubInit(t)

	clGetPlatformInfo = func(platform uintptr, name uint32, size uintptr, value unsafe.Pointer, sizeRet *uintptr) int32 {
		assert.Equal(t, uintptr(0x10), platform)
		if value == nil {
			*sizeRet = uintptr(len("Test Platform") + 1)
			return Success
		}
		writeInfoString(value, "Test Platform")
		return Success
	}

	assert.Equal(t, "Test Platform", Platform(0x10).Name())
}

func TestPlatformDevicesNotFound(t *testing.T) {
	stubInit(t)

	clGetDeviceIDs = func(platform uintptr, deviceType uint64, numEntries uint32, devices *uintptr, numDevices *uint32) int32 {
		return DeviceNotFound
	}

	devices, err := Platform(0x10).Devices(DeviceTypeGPU)
	require.NoError(t, err)
	assert.Empty(t, devices)
}

func TestPlatformDevicesDriverErrorSurfaces(t *testing.T) {
	stubInit(t)

	clGetDeviceIDs = func(platform uintptr, deviceType uint64, numEntries uint32, devices *uintptr, numDevices *uint32) int32 {
		return InvalidPlatform
	}

	_, err := Platform(0xBAD).Devices(DeviceTypeAll)
	assert.Equal(t, Error(InvalidPlatform), err)
}

func TestPlatformDevicesZeroCount(t *testing.T) {
	stubInit(t)

	clGetDeviceIDs = func(platform uintptr, deviceType uint64, numEntries uint32, devices *uintptr, numDevices *uint32) int32 {
		*numDevices = 0
		return Success
	}

	devices, err := Platform(0x10).Devices(DeviceTypeAll)
	require.NoError(t, err)
	assert.Empty(t, devices)
}

func TestCreateBufferEmptyHost(t *testing.T) {
	stubInit(t)

	clCreateBuffer = func(ctx uintptr, flags uint64, size uintptr, hostPtr unsafe.Pointer, errRet *int32) uintptr {
		assert.Nil(t, hostPtr, "empty host slice must marshal as a null pointer")
		*errRet = Success
		return 0x40
	}

	var mem Mem
	var err error
	assert.NotPanics(t, func() {
		mem, err = Context(0x1).CreateBuffer(MemReadWrite, 16, []byte{})
	})
	require.NoError(t, err)
	assert.Equal(t, Mem(0x40), mem)
}

func TestCreateBufferWithHostData(t *testing.T) {
	stubInit(t)

	host := []byte{1, 2, 3, 4}
	clCreateBuffer = func(ctx uintptr, flags uint64, size uintptr, hostPtr unsafe.Pointer, errRet *int32) uintptr {
		assert.Equal(t, unsafe.Pointer(&host[0]), hostPtr)
		assert.Equal(t, uintptr(4), size)
		*errRet = Success
		return 0x41
	}

	mem, err := Context(0x1).CreateBuffer(MemReadWrite|MemCopyHostPtr, len(host), host)
	require.NoError(t, err)
	assert.Equal(t, Mem(0x41), mem)
}

func TestBindSymbolsStopsOnMissingExport(t *testing.T) {
	var seen []string
	err := bindSymbols(func(dst interface{}, name string) error {
		seen = append(seen, name)
		if name == "clBuildProgram" {
			return fmt.Errorf("cl: symbol %s: not found", name)
		}
		return nil
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "clBuildProgram")
	assert.Equal(t, "clBuildProgram", seen[len(seen)-1], "binding must stop at the missing symbol")
}

func TestBindSymbolsCoversSurface(t *testing.T) {
	var seen []string
	err := bindSymbols(func(dst interface{}, name string) error {
		require.NotNil(t, dst)
		seen = append(seen, name)
		return nil
	})
	require.NoError(t, err)

	assert.Len(t, seen, 21)
	assert.Contains(t, seen, "clCreateProgramWithSource")
	assert.Contains(t, seen, "clEnqueueNDRangeKernel")
	assert.Contains(t, seen, "clFinish")
}

func TestCreateProgramWithSource(t *testing.T) {
	stubInit(t)
	arena := withArena(t)

	var got []string
	clCreateProgramWithSource = func(ctx uintptr, count uint32, strings uintptr, lengths *uintptr, errRet *int32) uintptr {
		assert.Equal(t, uintptr(0x1), ctx)
		assert.Nil(t, lengths)
		slots := unsafe.Slice((*uintptr)(unsafe.Pointer(strings)), count)
		for _, slot := range slots {
			got = append(got, ffi.GoString(slot))
		}
		*errRet = Success
		return 0x1234
	}

	srcs := []string{"kernel void a() {}\n", "kernel void b() {}\n"}
	prog, err := Context(0x1).CreateProgramWithSource(srcs)
	require.NoError(t, err)

	assert.Equal(t, Program(0x1234), prog)
	assert.Equal(t, srcs, got)
	assert.Equal(t, arena.allocs, arena.frees, "marshaling buffer must be released")
	assert.Empty(t, arena.blocks)
}

func TestCreateProgramWithSourceDriverError(t *testing.T) {
	stubInit(t)
	arena := withArena(t)

	clCreateProgramWithSource = func(ctx uintptr, count uint32, strings uintptr, lengths *uintptr, errRet *int32) uintptr {
		*errRet = InvalidValue
		return 0
	}

	_, err := Context(0x1).CreateProgramWithSource([]string{"x"})
	assert.Equal(t, Error(InvalidValue), err)
	assert.Equal(t, arena.allocs, arena.frees, "buffer must be released on driver failure")
}

func TestProgramBuild(t *testing.T) {
	stubInit(t)

	var gotOptions string
	var gotDevices []uintptr
	clBuildProgram = func(program uintptr, numDevices uint32, devices *uintptr, options *byte, notify uintptr, userData uintptr) int32 {
		gotOptions = goStringFromPtr(options)
		gotDevices = append([]uintptr(nil), unsafe.Slice(devices, numDevices)...)
		return Success
	}

	err := Program(0x99).Build([]Device{0x30}, "-cl-fast-relaxed-math")
	require.NoError(t, err)
	assert.Equal(t, "-cl-fast-relaxed-math", gotOptions)
	assert.Equal(t, []uintptr{0x30}, gotDevices)
}

func TestProgramBuildFailureSurfacesCode(t *testing.T) {
	stubInit(t)

	clBuildProgram = func(program uintptr, numDevices uint32, devices *uintptr, options *byte, notify uintptr, userData uintptr) int32 {
		return BuildProgramFailure
	}
	clGetProgramBuildInfo = func(program uintptr, device uintptr, name uint32, size uintptr, value unsafe.Pointer, sizeRet *uintptr) int32 {
		const log = "error: expected ';'"
		if value == nil {
			*sizeRet = uintptr(len(log) + 1)
			return Success
		}
		writeInfoString(value, log)
		return Success
	}

	err := Program(0x99).Build([]Device{0x30}, "")
	assert.Equal(t, Error(BuildProgramFailure), err)

	log, err := Program(0x99).BuildLog(Device(0x30))
	require.NoError(t, err)
	assert.Equal(t, "error: expected ';'", log)
}

func goStringFromPtr(p *byte) string {
	if p == nil {
		return ""
	}
	return ffi.GoString(uintptr(unsafe.Pointer(p)))
}

func TestClen(t *testing.T) {
	assert.Equal(t, 3, clen([]byte("abc\x00def")))
	assert.Equal(t, 3, clen([]byte("abc")))
	assert.Equal(t, 0, clen(nil))
}
