package cl

import "unsafe"

func (k Kernel) Release() error {
	return Err(clReleaseKernel(uintptr(k)))
}

// SetArgBuffer binds a device buffer to a kernel argument slot.
func (k Kernel) SetArgBuffer(index int, mem Mem) error {
	m := uintptr(mem)
	return Err(clSetKernelArg(uintptr(k), uint32(index), unsafe.Sizeof(m), unsafe.Pointer(&m)))
}

// SetArgInt32 binds an int argument.
func (k Kernel) SetArgInt32(index int, v int32) error {
	return Err(clSetKernelArg(uintptr(k), uint32(index), unsafe.Sizeof(v), unsafe.Pointer(&v)))
}

// SetArgUint32 binds a uint argument.
func (k Kernel) SetArgUint32(index int, v uint32) error {
	return Err(clSetKernelArg(uintptr(k), uint32(index), unsafe.Sizeof(v), unsafe.Pointer(&v)))
}

// SetArgFloat32 binds a float argument.
func (k Kernel) SetArgFloat32(index int, v float32) error {
	return Err(clSetKernelArg(uintptr(k), uint32(index), unsafe.Sizeof(v), unsafe.Pointer(&v)))
}

// SetArgLocal reserves local memory of the given size for an argument slot.
func (k Kernel) SetArgLocal(index int, size int) error {
	return Err(clSetKernelArg(uintptr(k), uint32(index), uintptr(size), nil))
}
