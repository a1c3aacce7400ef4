package cl

import "unsafe"

func (q CommandQueue) Release() error {
	return Err(clReleaseCommandQueue(uintptr(q)))
}

// EnqueueWriteBuffer copies data from host memory into a device buffer.
// The call blocks until the copy completes.
func (q CommandQueue) EnqueueWriteBuffer(mem Mem, offset int, data []byte) error {
	if len(data) == 0 {
		return nil
	}
	return Err(clEnqueueWriteBuffer(
		uintptr(q), uintptr(mem), blockingTrue,
		uintptr(offset), uintptr(len(data)), unsafe.Pointer(&data[0]),
		0, nil, nil,
	))
}

// EnqueueReadBuffer copies a device buffer into host memory (out). The
// call blocks until the copy completes.
func (q CommandQueue) EnqueueReadBuffer(mem Mem, offset int, data []byte) error {
	if len(data) == 0 {
		return nil
	}
	return Err(clEnqueueReadBuffer(
		uintptr(q), uintptr(mem), blockingTrue,
		uintptr(offset), uintptr(len(data)), unsafe.Pointer(&data[0]),
		0, nil, nil,
	))
}

// EnqueueNDRangeKernel submits a kernel over the given global work size.
// local may be nil to let the driver pick a work-group size. global and
// local must have the same length when local is given.
func (q CommandQueue) EnqueueNDRangeKernel(kernel Kernel, global, local []int) error {
	if len(global) == 0 {
		return Error(InvalidWorkDimension)
	}

	g := make([]uintptr, len(global))
	for i, v := range global {
		g[i] = uintptr(v)
	}
	var l *uintptr
	if local != nil {
		ls := make([]uintptr, len(local))
		for i, v := range local {
			ls[i] = uintptr(v)
		}
		l = &ls[0]
	}
	return Err(clEnqueueNDRangeKernel(
		uintptr(q), uintptr(kernel), uint32(len(global)),
		nil, &g[0], l,
		0, nil, nil,
	))
}

// Finish blocks until every command queued so far has completed.
func (q CommandQueue) Finish() error {
	return Err(clFinish(uintptr(q)))
}
