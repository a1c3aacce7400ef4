package cl

import "fmt"

// Error is a native OpenCL status code. Codes are never reinterpreted:
// whatever the driver reported is what the caller sees.
type Error int32

var errNames = map[Error]string{
	DeviceNotFound:               "device not found",
	DeviceNotAvailable:           "device not available",
	CompilerNotAvailable:         "compiler not available",
	MemObjectAllocationFailure:   "mem object allocation failure",
	OutOfResources:               "out of resources",
	OutOfHostMemory:              "out of host memory",
	ProfilingInfoNotAvailable:    "profiling info not available",
	MemCopyOverlap:               "mem copy overlap",
	ImageFormatMismatch:          "image format mismatch",
	ImageFormatNotSupported:      "image format not supported",
	BuildProgramFailure:          "build program failure",
	MapFailure:                   "map failure",
	InvalidValue:                 "invalid value",
	InvalidDeviceType:            "invalid device type",
	InvalidPlatform:              "invalid platform",
	InvalidDevice:                "invalid device",
	InvalidContext:               "invalid context",
	InvalidQueueProperties:       "invalid queue properties",
	InvalidCommandQueue:          "invalid command queue",
	InvalidHostPtr:               "invalid host ptr",
	InvalidMemObject:             "invalid mem object",
	InvalidImageFormatDescriptor: "invalid image format descriptor",
	InvalidImageSize:             "invalid image size",
	InvalidSampler:               "invalid sampler",
	InvalidBinary:                "invalid binary",
	InvalidBuildOptions:          "invalid build options",
	InvalidProgram:               "invalid program",
	InvalidProgramExecutable:     "invalid program executable",
	InvalidKernelName:            "invalid kernel name",
	InvalidKernelDefinition:      "invalid kernel definition",
	InvalidKernel:                "invalid kernel",
	InvalidArgIndex:              "invalid arg index",
	InvalidArgValue:              "invalid arg value",
	InvalidArgSize:               "invalid arg size",
	InvalidKernelArgs:            "invalid kernel args",
	InvalidWorkDimension:         "invalid work dimension",
	InvalidWorkGroupSize:         "invalid work group size",
	InvalidWorkItemSize:          "invalid work item size",
	InvalidGlobalOffset:          "invalid global offset",
	InvalidEventWaitList:         "invalid event wait list",
	InvalidEvent:                 "invalid event",
	InvalidOperation:             "invalid operation",
	InvalidGLObject:              "invalid GL object",
	InvalidBufferSize:            "invalid buffer size",
	InvalidMipLevel:              "invalid mip level",
	InvalidGlobalWorkSize:        "invalid global work size",
	InvalidProperty:              "invalid property",
}

func (e Error) Error() string {
	if name, ok := errNames[e]; ok {
		return "cl: " + name
	}
	return fmt.Sprintf("cl: error %d", int32(e))
}

// Err converts a native status code to an error. Success maps to nil;
// everything else is returned verbatim as an Error.
func Err(status int32) error {
	if status == Success {
		return nil
	}
	return Error(status)
}
