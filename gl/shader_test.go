package gl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGL implements the parts of OpenGL the shader helpers touch. The
// embedded interface panics on anything a test did not expect to be called.
type fakeGL struct {
	OpenGL

	sources      map[uint32]string
	compiled     map[uint32]bool
	deleted      []uint32
	failCompile  bool
	failLink     bool
	nextShader   uint32
	programLinks []uint32
}

func newFakeGL() *fakeGL {
	return &fakeGL{
		sources:  map[uint32]string{},
		compiled: map[uint32]bool{},
	}
}

func (f *fakeGL) CreateShader(xtype uint32) uint32 {
	f.nextShader++
	return f.nextShader
}

func (f *fakeGL) DeleteShader(shader uint32) {
	f.deleted = append(f.deleted, shader)
}

func (f *fakeGL) ShaderSource(shader uint32, srcs []string) error {
	f.sources[shader] = strings.Join(srcs, "")
	return nil
}

func (f *fakeGL) CompileShader(shader uint32) {
	f.compiled[shader] = true
}

func (f *fakeGL) GetShaderiv(shader, pname uint32, params *int32) {
	if pname == CompileStatus {
		if f.failCompile {
			*params = False
		} else {
			*params = True
		}
	}
}

func (f *fakeGL) GetShaderInfoLog(shader uint32) string {
	return "0:1: syntax error"
}

func (f *fakeGL) CreateProgram() uint32 {
	return 100
}

func (f *fakeGL) DeleteProgram(program uint32) {
	f.deleted = append(f.deleted, program)
}

func (f *fakeGL) AttachShader(program, shader uint32) {}

func (f *fakeGL) LinkProgram(program uint32) {
	f.programLinks = append(f.programLinks, program)
}

func (f *fakeGL) GetProgramiv(program, pname uint32, params *int32) {
	if pname == LinkStatus {
		if f.failLink {
			*params = False
		} else {
			*params = True
		}
	}
}

func (f *fakeGL) GetProgramInfoLog(program uint32) string {
	return "link failed"
}

func TestCompileShaderSource(t *testing.T) {
	f := newFakeGL()

	shader, err := CompileShaderSource(f, VertexShader, "#version 120\n", "void main() {}\n")
	require.NoError(t, err)

	assert.Equal(t, "#version 120\nvoid main() {}\n", f.sources[shader])
	assert.True(t, f.compiled[shader])
	assert.Empty(t, f.deleted)
}

func TestCompileShaderSourceFailure(t *testing.T) {
	f := newFakeGL()
	f.failCompile = true

	_, err := CompileShaderSource(f, FragmentShader, "not glsl")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "syntax error")
	assert.Len(t, f.deleted, 1, "failed shader must be deleted")
}

func TestLinkShaders(t *testing.T) {
	f := newFakeGL()

	program, err := LinkShaders(f, "void main() {}", "void main() {}")
	require.NoError(t, err)

	assert.Equal(t, uint32(100), program)
	assert.Equal(t, []uint32{100}, f.programLinks)
	// Both shaders are deleted after linking.
	assert.Len(t, f.deleted, 2)
}

func TestLinkShadersFailure(t *testing.T) {
	f := newFakeGL()
	f.failLink = true

	_, err := LinkShaders(f, "void main() {}", "void main() {}")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "link failed")
	// Both shaders and the failed program are deleted.
	assert.Len(t, f.deleted, 3)
}

func TestErrorString(t *testing.T) {
	assert.Equal(t, "no error", ErrorString(NoError))
	assert.Equal(t, "invalid enum", ErrorString(InvalidEnum))
	assert.Equal(t, "out of memory", ErrorString(OutOfMemory))
	assert.Equal(t, "unknown error 0x0000ABCD", ErrorString(0xABCD))
}

func TestCStringHelpers(t *testing.T) {
	p := cstring("abc")
	assert.Equal(t, "abc", gostring(p))
	assert.Equal(t, "", gostring(nil))

	assert.Equal(t, 2, clen([]byte{'h', 'i', 0, 'x'}))
	assert.Equal(t, 3, clen([]byte{'h', 'i', 'x'}))
}
