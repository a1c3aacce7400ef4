package cl

// Status codes returned by OpenCL entry points. Values match the native
// CL_* constants; they are surfaced to callers unchanged.
const (
	Success                      = 0
	DeviceNotFound               = -1
	DeviceNotAvailable           = -2
	CompilerNotAvailable         = -3
	MemObjectAllocationFailure   = -4
	OutOfResources               = -5
	OutOfHostMemory              = -6
	ProfilingInfoNotAvailable    = -7
	MemCopyOverlap               = -8
	ImageFormatMismatch          = -9
	ImageFormatNotSupported      = -10
	BuildProgramFailure          = -11
	MapFailure                   = -12
	InvalidValue                 = -30
	InvalidDeviceType            = -31
	InvalidPlatform              = -32
	InvalidDevice                = -33
	InvalidContext               = -34
	InvalidQueueProperties       = -35
	InvalidCommandQueue          = -36
	InvalidHostPtr               = -37
	InvalidMemObject             = -38
	InvalidImageFormatDescriptor = -39
	InvalidImageSize             = -40
	InvalidSampler               = -41
	InvalidBinary                = -42
	InvalidBuildOptions          = -43
	InvalidProgram               = -44
	InvalidProgramExecutable     = -45
	InvalidKernelName            = -46
	InvalidKernelDefinition      = -47
	InvalidKernel                = -48
	InvalidArgIndex              = -49
	InvalidArgValue              = -50
	InvalidArgSize               = -51
	InvalidKernelArgs            = -52
	InvalidWorkDimension         = -53
	InvalidWorkGroupSize         = -54
	InvalidWorkItemSize          = -55
	InvalidGlobalOffset          = -56
	InvalidEventWaitList         = -57
	InvalidEvent                 = -58
	InvalidOperation             = -59
	InvalidGLObject              = -60
	InvalidBufferSize            = -61
	InvalidMipLevel              = -62
	InvalidGlobalWorkSize        = -63
	InvalidProperty              = -64
)

// DeviceType selects device classes for GetDevices (CL_DEVICE_TYPE_*).
type DeviceType uint64

const (
	DeviceTypeDefault     DeviceType = 1 << 0
	DeviceTypeCPU         DeviceType = 1 << 1
	DeviceTypeGPU         DeviceType = 1 << 2
	DeviceTypeAccelerator DeviceType = 1 << 3
	DeviceTypeAll         DeviceType = 0xFFFFFFFF
)

// Platform info parameter names (CL_PLATFORM_*).
const (
	platformProfile    = 0x0900
	platformVersion    = 0x0901
	platformName       = 0x0902
	platformVendor     = 0x0903
	platformExtensions = 0x0904
)

// Device info parameter names (CL_DEVICE_* / CL_DRIVER_VERSION).
const (
	deviceInfoType              = 0x1000
	deviceInfoVendorID          = 0x1001
	deviceInfoMaxComputeUnits   = 0x1002
	deviceInfoMaxWorkGroupSize  = 0x1004
	deviceInfoMaxClockFrequency = 0x100C
	deviceInfoGlobalMemSize     = 0x101F
	deviceInfoLocalMemSize      = 0x1023
	deviceInfoName              = 0x102B
	deviceInfoVendor            = 0x102C
	driverVersion               = 0x102D
	deviceInfoProfile           = 0x102E
	deviceInfoVersion           = 0x102F
	deviceInfoExtensions        = 0x1030
)

// MemFlag controls buffer allocation and host access (CL_MEM_*).
type MemFlag uint64

const (
	MemReadWrite    MemFlag = 1 << 0
	MemWriteOnly    MemFlag = 1 << 1
	MemReadOnly     MemFlag = 1 << 2
	MemUseHostPtr   MemFlag = 1 << 3
	MemAllocHostPtr MemFlag = 1 << 4
	MemCopyHostPtr  MemFlag = 1 << 5
)

// Program build info parameter names (CL_PROGRAM_BUILD_*).
const (
	programBuildStatus  = 0x1181
	programBuildOptions = 0x1182
	programBuildLog     = 0x1183
)

const (
	blockingTrue  = 1
	blockingFalse = 0
)
