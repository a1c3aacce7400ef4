//go:build linux || darwin

package cl

import (
	"fmt"
	"runtime"

	"github.com/ebitengine/purego"
)

func libraryPath() string {
	if runtime.GOOS == "darwin" {
		return "/System/Library/Frameworks/OpenCL.framework/OpenCL"
	}
	return "libOpenCL.so.1"
}

func openLibrary() (uintptr, error) {
	return purego.Dlopen(libraryPath(), purego.RTLD_LAZY|purego.RTLD_GLOBAL)
}

func register(dst interface{}, handle uintptr, name string) error {
	addr, err := purego.Dlsym(handle, name)
	if err != nil {
		return fmt.Errorf("cl: symbol %s: %w", name, err)
	}
	purego.RegisterFunc(dst, addr)
	return nil
}
