package gl

import (
	"runtime"
	"syscall"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

// The name lookups pass a freshly built C string through proc.call. The
// callback forces a collection before reading the buffer to check the
// pointer stays alive across the native call.
func TestLocationLookupsKeepNameAlive(t *testing.T) {
	var got string
	cb := syscall.NewCallback(func(program, name uintptr) uintptr {
		runtime.GC()
		got = gostring((*byte)(unsafe.Pointer(name)))
		return 77
	})

	gl := &openGL{
		getUniformLocation: proc{name: "glGetUniformLocation", addr: cb},
		getAttribLocation:  proc{name: "glGetAttribLocation", addr: cb},
	}

	assert.Equal(t, int32(77), gl.GetUniformLocation(3, "u_color"))
	assert.Equal(t, "u_color", got)

	assert.Equal(t, int32(77), gl.GetAttribLocation(3, "a_position"))
	assert.Equal(t, "a_position", got)
}
