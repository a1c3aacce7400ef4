package cl

import "unsafe"

func (d Device) getInfoString(name uint32) (string, error) {
	return getInfoString(func(size uintptr, value unsafe.Pointer, sizeRet *uintptr) int32 {
		return clGetDeviceInfo(uintptr(d), name, size, value, sizeRet)
	})
}

func (d Device) getInfoUint32(name uint32) (uint32, error) {
	var v uint32
	if st := clGetDeviceInfo(uintptr(d), name, unsafe.Sizeof(v), unsafe.Pointer(&v), nil); st != Success {
		return 0, Error(st)
	}
	return v, nil
}

func (d Device) getInfoUint64(name uint32) (uint64, error) {
	var v uint64
	if st := clGetDeviceInfo(uintptr(d), name, unsafe.Sizeof(v), unsafe.Pointer(&v), nil); st != Success {
		return 0, Error(st)
	}
	return v, nil
}

func (d Device) Name() string {
	s, _ := d.getInfoString(deviceInfoName)
	return s
}

func (d Device) Vendor() string {
	s, _ := d.getInfoString(deviceInfoVendor)
	return s
}

func (d Device) Version() string {
	s, _ := d.getInfoString(deviceInfoVersion)
	return s
}

func (d Device) DriverVersion() string {
	s, _ := d.getInfoString(driverVersion)
	return s
}

func (d Device) Profile() string {
	s, _ := d.getInfoString(deviceInfoProfile)
	return s
}

func (d Device) Extensions() string {
	s, _ := d.getInfoString(deviceInfoExtensions)
	return s
}

func (d Device) Type() DeviceType {
	var v uint64
	clGetDeviceInfo(uintptr(d), deviceInfoType, unsafe.Sizeof(v), unsafe.Pointer(&v), nil)
	return DeviceType(v)
}

func (d Device) MaxComputeUnits() int {
	v, _ := d.getInfoUint32(deviceInfoMaxComputeUnits)
	return int(v)
}

func (d Device) MaxClockFrequency() int {
	v, _ := d.getInfoUint32(deviceInfoMaxClockFrequency)
	return int(v)
}

// MaxWorkGroupSize is the largest work-group this device accepts for a
// kernel with no further constraints.
func (d Device) MaxWorkGroupSize() int {
	var v uintptr
	if st := clGetDeviceInfo(uintptr(d), deviceInfoMaxWorkGroupSize, unsafe.Sizeof(v), unsafe.Pointer(&v), nil); st != Success {
		return 0
	}
	return int(v)
}

func (d Device) GlobalMemSize() uint64 {
	v, _ := d.getInfoUint64(deviceInfoGlobalMemSize)
	return v
}

func (d Device) LocalMemSize() uint64 {
	v, _ := d.getInfoUint64(deviceInfoLocalMemSize)
	return v
}
