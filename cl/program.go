package cl

import (
	"unsafe"

	"github.com/tinyrange/gpubind/internal/ffi"
)

// CreateProgramWithSource creates a program from source fragments. The
// fragments are marshaled to a native string array for the duration of the
// call and released before returning; the driver concatenates them in
// order.
func (c Context) CreateProgramWithSource(srcs []string) (Program, error) {
	var status int32
	prog, err := ffi.CallStrings(alloc(), srcs, func(argv uintptr) uintptr {
		return clCreateProgramWithSource(uintptr(c), uint32(len(srcs)), argv, nil, &status)
	})
	if err != nil {
		return 0, err
	}
	if status != Success {
		return 0, Error(status)
	}
	return Program(prog), nil
}

func (p Program) Release() error {
	return Err(clReleaseProgram(uintptr(p)))
}

// Build compiles and links the program for the given devices. options uses
// the native compiler option syntax and may be empty. On BuildProgramFailure
// consult BuildLog for the compiler output.
func (p Program) Build(devices []Device, options string) error {
	var opts *byte
	if options != "" {
		opts = cstring(options)
	}

	var devPtr *uintptr
	ids := deviceIDs(devices)
	if len(ids) > 0 {
		devPtr = &ids[0]
	}
	return Err(clBuildProgram(uintptr(p), uint32(len(ids)), devPtr, opts, 0, 0))
}

// BuildLog returns the compiler output of the last Build for the device.
func (p Program) BuildLog(device Device) (string, error) {
	return getInfoString(func(size uintptr, value unsafe.Pointer, sizeRet *uintptr) int32 {
		return clGetProgramBuildInfo(uintptr(p), uintptr(device), programBuildLog, size, value, sizeRet)
	})
}

// BuildOptions returns the options string of the last Build for the device.
func (p Program) BuildOptions(device Device) (string, error) {
	return getInfoString(func(size uintptr, value unsafe.Pointer, sizeRet *uintptr) int32 {
		return clGetProgramBuildInfo(uintptr(p), uintptr(device), programBuildOptions, size, value, sizeRet)
	})
}

// CreateKernel looks up a kernel function in a built program.
func (p Program) CreateKernel(name string) (Kernel, error) {
	var status int32
	k := clCreateKernel(uintptr(p), cstring(name), &status)
	if status != Success {
		return 0, Error(status)
	}
	return Kernel(k), nil
}
