package cl

import "unsafe"

// CreateContext creates a context covering the given devices.
func CreateContext(devices []Device) (Context, error) {
	if len(devices) == 0 {
		return 0, Error(InvalidValue)
	}
	ids := deviceIDs(devices)

	var status int32
	ctx := clCreateContext(nil, uint32(len(ids)), &ids[0], 0, 0, &status)
	if status != Success {
		return 0, Error(status)
	}
	return Context(ctx), nil
}

func deviceIDs(devices []Device) []uintptr {
	ids := make([]uintptr, len(devices))
	for i, d := range devices {
		ids[i] = uintptr(d)
	}
	return ids
}

func (c Context) Release() error {
	return Err(clReleaseContext(uintptr(c)))
}

// CreateCommandQueue creates an in-order command queue on the device.
func (c Context) CreateCommandQueue(device Device) (CommandQueue, error) {
	var status int32
	q := clCreateCommandQueue(uintptr(c), uintptr(device), 0, &status)
	if status != Success {
		return 0, Error(status)
	}
	return CommandQueue(q), nil
}

// CreateBuffer allocates a device buffer of the given size. With
// MemCopyHostPtr or MemUseHostPtr, host supplies the initial contents.
func (c Context) CreateBuffer(flags MemFlag, size int, host []byte) (Mem, error) {
	var hostPtr unsafe.Pointer
	if len(host) > 0 {
		hostPtr = unsafe.Pointer(&host[0])
	}

	var status int32
	mem := clCreateBuffer(uintptr(c), uint64(flags), uintptr(size), hostPtr, &status)
	if status != Success {
		return 0, Error(status)
	}
	return Mem(mem), nil
}

func (m Mem) Release() error {
	return Err(clReleaseMemObject(uintptr(m)))
}
