package cl

import "unsafe"

// Platforms returns every OpenCL platform the runtime reports. This is the
// entry point of the package; it loads the runtime on first use.
func Platforms() ([]Platform, error) {
	if err := Init(); err != nil {
		return nil, err
	}

	var count uint32
	if st := clGetPlatformIDs(0, nil, &count); st != Success {
		return nil, Error(st)
	}
	if count == 0 {
		return nil, nil
	}

	ids := make([]uintptr, count)
	if st := clGetPlatformIDs(count, &ids[0], nil); st != Success {
		return nil, Error(st)
	}

	platforms := make([]Platform, count)
	for i, id := range ids {
		platforms[i] = Platform(id)
	}
	return platforms, nil
}

// getInfoString runs the usual two-call size query against an info getter
// and decodes the result, dropping the trailing NUL.
func getInfoString(get func(size uintptr, value unsafe.Pointer, sizeRet *uintptr) int32) (string, error) {
	var size uintptr
	if st := get(0, nil, &size); st != Success {
		return "", Error(st)
	}
	if size == 0 {
		return "", nil
	}
	buf := make([]byte, size)
	if st := get(size, unsafe.Pointer(&buf[0]), nil); st != Success {
		return "", Error(st)
	}
	return string(buf[:clen(buf)]), nil
}

func (p Platform) getInfoString(name uint32) (string, error) {
	return getInfoString(func(size uintptr, value unsafe.Pointer, sizeRet *uintptr) int32 {
		return clGetPlatformInfo(uintptr(p), name, size, value, sizeRet)
	})
}

func (p Platform) Name() string {
	s, _ := p.getInfoString(platformName)
	return s
}

func (p Platform) Vendor() string {
	s, _ := p.getInfoString(platformVendor)
	return s
}

func (p Platform) Version() string {
	s, _ := p.getInfoString(platformVersion)
	return s
}

func (p Platform) Profile() string {
	s, _ := p.getInfoString(platformProfile)
	return s
}

func (p Platform) Extensions() string {
	s, _ := p.getInfoString(platformExtensions)
	return s
}

// Devices returns the platform's devices of the given type. A platform
// with no matching devices returns an empty slice, not an error.
func (p Platform) Devices(deviceType DeviceType) ([]Device, error) {
	var count uint32
	st := clGetDeviceIDs(uintptr(p), uint64(deviceType), 0, nil, &count)
	if st == DeviceNotFound {
		return nil, nil
	}
	if st != Success {
		return nil, Error(st)
	}
	if count == 0 {
		return nil, nil
	}

	ids := make([]uintptr, count)
	if st := clGetDeviceIDs(uintptr(p), uint64(deviceType), count, &ids[0], nil); st != Success {
		return nil, Error(st)
	}

	devices := make([]Device, count)
	for i, id := range ids {
		devices[i] = Device(id)
	}
	return devices, nil
}
