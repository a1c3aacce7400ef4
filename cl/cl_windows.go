//go:build windows

package cl

import (
	"fmt"

	"github.com/ebitengine/purego"
	"golang.org/x/sys/windows"
)

var opencl *windows.LazyDLL

func openLibrary() (uintptr, error) {
	opencl = windows.NewLazySystemDLL("OpenCL.dll")
	if err := opencl.Load(); err != nil {
		return 0, err
	}
	return uintptr(opencl.Handle()), nil
}

func register(dst interface{}, _ uintptr, name string) error {
	p := opencl.NewProc(name)
	if err := p.Find(); err != nil {
		return fmt.Errorf("cl: symbol %s: %w", name, err)
	}
	purego.RegisterFunc(dst, p.Addr())
	return nil
}
