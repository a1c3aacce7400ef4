// Package cl binds a subset of the OpenCL API by loading the platform's
// OpenCL runtime at runtime. Each raw binding corresponds 1:1 to a clXxx
// entry point; the handle types add a thin convenience layer on top
// (info-string queries, program building, buffer transfer) without
// interpreting driver behavior.
//
// Objects created through this package (contexts, queues, programs,
// kernels, buffers) hold native references and must be released with their
// Release method when no longer needed.
package cl

import (
	"sync"
	"unsafe"

	"github.com/tinyrange/gpubind/internal/ffi"
)

// Handle types. Values are opaque native object handles.
type (
	Platform     uintptr
	Device       uintptr
	Context      uintptr
	CommandQueue uintptr
	Program      uintptr
	Kernel       uintptr
	Mem          uintptr
	Event        uintptr
)

// Raw bindings, populated by the platform loader in Init. Pointer
// parameters marked out are written by the driver.
var (
	clGetPlatformIDs          func(numEntries uint32, platforms *uintptr, numPlatforms *uint32) int32 // platforms, numPlatforms out
	clGetPlatformInfo         func(platform uintptr, name uint32, size uintptr, value unsafe.Pointer, sizeRet *uintptr) int32
	clGetDeviceIDs            func(platform uintptr, deviceType uint64, numEntries uint32, devices *uintptr, numDevices *uint32) int32
	clGetDeviceInfo           func(device uintptr, name uint32, size uintptr, value unsafe.Pointer, sizeRet *uintptr) int32
	clCreateContext           func(properties *uintptr, numDevices uint32, devices *uintptr, notify uintptr, userData uintptr, errRet *int32) uintptr
	clReleaseContext          func(ctx uintptr) int32
	clCreateCommandQueue      func(ctx uintptr, device uintptr, properties uint64, errRet *int32) uintptr
	clReleaseCommandQueue     func(queue uintptr) int32
	clCreateProgramWithSource func(ctx uintptr, count uint32, strings uintptr, lengths *uintptr, errRet *int32) uintptr
	clReleaseProgram          func(program uintptr) int32
	clBuildProgram            func(program uintptr, numDevices uint32, devices *uintptr, options *byte, notify uintptr, userData uintptr) int32
	clGetProgramBuildInfo     func(program uintptr, device uintptr, name uint32, size uintptr, value unsafe.Pointer, sizeRet *uintptr) int32
	clCreateKernel            func(program uintptr, name *byte, errRet *int32) uintptr
	clReleaseKernel           func(kernel uintptr) int32
	clSetKernelArg            func(kernel uintptr, index uint32, size uintptr, value unsafe.Pointer) int32
	clCreateBuffer            func(ctx uintptr, flags uint64, size uintptr, hostPtr unsafe.Pointer, errRet *int32) uintptr
	clReleaseMemObject        func(mem uintptr) int32
	clEnqueueWriteBuffer      func(queue uintptr, mem uintptr, blocking uint32, offset uintptr, size uintptr, ptr unsafe.Pointer, numWait uint32, waitList *uintptr, event *uintptr) int32
	clEnqueueReadBuffer       func(queue uintptr, mem uintptr, blocking uint32, offset uintptr, size uintptr, ptr unsafe.Pointer, numWait uint32, waitList *uintptr, event *uintptr) int32
	clEnqueueNDRangeKernel    func(queue uintptr, kernel uintptr, workDim uint32, globalOffset *uintptr, globalSize *uintptr, localSize *uintptr, numWait uint32, waitList *uintptr, event *uintptr) int32
	clFinish                  func(queue uintptr) int32
)

var (
	initOnce sync.Once
	initErr  error
)

// alloc provides native memory for string marshaling. Tests substitute a
// counting allocator.
var alloc = ffi.Native

type symbol struct {
	dst  interface{}
	name string
}

func symbols() []symbol {
	return []symbol{
		{&clGetPlatformIDs, "clGetPlatformIDs"},
		{&clGetPlatformInfo, "clGetPlatformInfo"},
		{&clGetDeviceIDs, "clGetDeviceIDs"},
		{&clGetDeviceInfo, "clGetDeviceInfo"},
		{&clCreateContext, "clCreateContext"},
		{&clReleaseContext, "clReleaseContext"},
		{&clCreateCommandQueue, "clCreateCommandQueue"},
		{&clReleaseCommandQueue, "clReleaseCommandQueue"},
		{&clCreateProgramWithSource, "clCreateProgramWithSource"},
		{&clReleaseProgram, "clReleaseProgram"},
		{&clBuildProgram, "clBuildProgram"},
		{&clGetProgramBuildInfo, "clGetProgramBuildInfo"},
		{&clCreateKernel, "clCreateKernel"},
		{&clReleaseKernel, "clReleaseKernel"},
		{&clSetKernelArg, "clSetKernelArg"},
		{&clCreateBuffer, "clCreateBuffer"},
		{&clReleaseMemObject, "clReleaseMemObject"},
		{&clEnqueueWriteBuffer, "clEnqueueWriteBuffer"},
		{&clEnqueueReadBuffer, "clEnqueueReadBuffer"},
		{&clEnqueueNDRangeKernel, "clEnqueueNDRangeKernel"},
		{&clFinish, "clFinish"},
	}
}

// bindSymbols registers every entry point through reg, stopping at the
// first symbol the runtime does not export. A runtime with a partial
// export table fails Init instead of crashing on first use.
func bindSymbols(reg func(dst interface{}, name string) error) error {
	for _, s := range symbols() {
		if err := reg(s.dst, s.name); err != nil {
			return err
		}
	}
	return nil
}

// Init loads the OpenCL runtime and binds every entry point. It is safe to
// call from multiple goroutines; the library is loaded once. Init is called
// implicitly by Platforms.
func Init() error {
	initOnce.Do(func() {
		handle, err := openLibrary()
		if err != nil {
			initErr = err
			return
		}
		initErr = bindSymbols(func(dst interface{}, name string) error {
			return register(dst, handle, name)
		})
	})
	return initErr
}

func cstring(s string) *byte {
	b := append([]byte(s), 0)
	return &b[0]
}

// clen returns the index of the first NUL in b, or len(b).
func clen(b []byte) int {
	for i, c := range b {
		if c == 0 {
			return i
		}
	}
	return len(b)
}
