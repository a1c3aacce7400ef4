// Package gl binds a subset of the OpenGL API by loading the platform's
// native GL library at runtime. Every method of OpenGL corresponds to one
// native entry point; no GL state is kept on the Go side.
//
// All calls operate on whatever GL context is current on the calling
// thread. Creating and binding a context is the embedding program's job.
package gl

import "unsafe"

const (
	// ColorBufferBit is a mask used with Clear to clear the color buffer.
	ColorBufferBit = 0x00004000
	// DepthBufferBit is a mask used with Clear to clear the depth buffer.
	DepthBufferBit = 0x00000100

	// Texture2D is the texture target for 2D textures.
	Texture2D = 0x0DE1

	// UnpackAlignment specifies the alignment requirements for pixel data
	// when uploading textures (PixelStorei).
	UnpackAlignment = 0x0CF5

	// TextureWrapS selects the wrapping function for texture coordinate S.
	TextureWrapS = 0x2802
	// TextureWrapT selects the wrapping function for texture coordinate T.
	TextureWrapT = 0x2803

	// TextureMinFilter selects the texture minification filter.
	TextureMinFilter = 0x2801
	// TextureMagFilter selects the texture magnification filter.
	TextureMagFilter = 0x2800

	// Nearest selects nearest-neighbor filtering.
	Nearest = 0x2600
	// Linear selects linear filtering.
	Linear = 0x2601

	// ClampToEdge clamps texture coordinates to the edge of the texture.
	ClampToEdge = 0x812F

	// RGB and RGBA are pixel formats.
	RGB  = 0x1907
	RGBA = 0x1908

	// Pixel and index data types.
	UnsignedByte  = 0x1401
	UnsignedShort = 0x1403
	UnsignedInt   = 0x1405
	Float         = 0x1406

	// Primitive types for DrawArrays and DrawElements.
	Points        = 0x0000
	Lines         = 0x0001
	Triangles     = 0x0004
	TriangleStrip = 0x0005
	TriangleFan   = 0x0006

	// Capabilities for Enable and Disable.
	Blend     = 0x0BE2
	DepthTest = 0x0B71
	CullFace  = 0x0B44

	// Blend factors.
	SrcAlpha         = 0x0302
	OneMinusSrcAlpha = 0x0303

	// Buffer targets.
	ArrayBuffer        = 0x8892
	ElementArrayBuffer = 0x8893

	// Buffer usage hints.
	StaticDraw  = 0x88E4
	DynamicDraw = 0x88E8
	StreamDraw  = 0x88E0

	// Shader types.
	FragmentShader = 0x8B30
	VertexShader   = 0x8B31

	// Shader and program query parameters.
	CompileStatus = 0x8B81
	LinkStatus    = 0x8B82
	InfoLogLength = 0x8B84

	// ActiveTexture units.
	Texture0 = 0x84C0

	// GetString parameters.
	//
	// Vendor returns the company responsible for the GL implementation.
	Vendor = 0x1F00
	// Renderer returns the name of the renderer.
	Renderer = 0x1F01
	// Version returns the GL version string of the current context.
	Version = 0x1F02
	// Extensions returns the space-separated extension list.
	Extensions = 0x1F03
	// ShadingLanguageVersion returns the GLSL version string.
	ShadingLanguageVersion = 0x8B8C

	// Error codes returned by GetError.
	NoError                     = 0
	InvalidEnum                 = 0x0500
	InvalidValue                = 0x0501
	InvalidOperation            = 0x0502
	StackOverflow               = 0x0503
	StackUnderflow              = 0x0504
	OutOfMemory                 = 0x0505
	InvalidFramebufferOperation = 0x0506

	// True and False are the GL boolean values returned by integer queries.
	False = 0
	True  = 1
)

// OpenGL describes the subset of OpenGL entry points bound by this package.
//
// Each method invokes exactly one native function. Pointer parameters
// written by the native side are documented as out parameters; everything
// else is input only.
type OpenGL interface {
	// ClearColor sets the clear color used by Clear when clearing the color buffer.
	ClearColor(r, g, b, a float32)

	// Clear clears buffers to preset values (e.g., ColorBufferBit).
	Clear(mask uint32)

	// Viewport sets the affine transformation of x and y from normalized device
	// coordinates to window coordinates.
	Viewport(x, y, width, height int32)

	// Enable enables a server-side GL capability (e.g., Blend).
	Enable(cap uint32)

	// Disable disables a server-side GL capability.
	Disable(cap uint32)

	// GetError returns the first error recorded since the last call, or NoError.
	GetError() uint32

	// GetString returns a string describing a GL property for the current
	// context. Common names are Vendor, Renderer and Version. If the name is
	// not recognized or no context is current the result is the empty string.
	GetString(name uint32) string

	// GetIntegerv writes the value of the named parameter to data (out).
	GetIntegerv(name uint32, data *int32)

	// GenTextures generates n texture object names into textures (out).
	GenTextures(n int32, textures *uint32)

	// DeleteTextures deletes n texture object names read from textures.
	DeleteTextures(n int32, textures *uint32)

	// BindTexture binds a named texture to a texturing target (e.g., Texture2D).
	BindTexture(target, texture uint32)

	// TexImage2D specifies a two-dimensional texture image.
	//
	// The pixels pointer may be nil to allocate storage without uploading data.
	TexImage2D(
		target uint32,
		level int32,
		internalformat int32,
		width int32,
		height int32,
		border int32,
		format uint32,
		xtype uint32,
		pixels unsafe.Pointer,
	)

	// TexParameteri sets texture parameters for the currently bound texture.
	TexParameteri(target, pname uint32, param int32)

	// PixelStorei sets pixel storage modes (e.g., UnpackAlignment).
	PixelStorei(pname uint32, param int32)

	// ActiveTexture selects the active texture unit (Texture0 + i).
	ActiveTexture(texture uint32)

	// GenBuffers generates n buffer object names into buffers (out).
	GenBuffers(n int32, buffers *uint32)

	// DeleteBuffers deletes n buffer object names read from buffers.
	DeleteBuffers(n int32, buffers *uint32)

	// BindBuffer binds a buffer object to a target (e.g., ArrayBuffer).
	BindBuffer(target, buffer uint32)

	// BufferData creates the data store of the bound buffer. data may be nil.
	BufferData(target uint32, size int, data unsafe.Pointer, usage uint32)

	// BufferSubData replaces a region of the bound buffer's data store.
	BufferSubData(target uint32, offset, size int, data unsafe.Pointer)

	// CreateShader creates a shader object of the given type and returns its name.
	CreateShader(xtype uint32) uint32

	// DeleteShader deletes a shader object.
	DeleteShader(shader uint32)

	// ShaderSource replaces the source code of a shader object with the
	// concatenation of srcs. The slice is marshaled to a native string array
	// for the duration of the call and released before returning. The only
	// error is a native allocation failure.
	ShaderSource(shader uint32, srcs []string) error

	// CompileShader compiles a shader object. Query CompileStatus afterwards.
	CompileShader(shader uint32)

	// GetShaderiv writes a shader object parameter to params (out).
	GetShaderiv(shader, pname uint32, params *int32)

	// GetShaderInfoLog returns the information log of a shader object.
	GetShaderInfoLog(shader uint32) string

	// CreateProgram creates a program object and returns its name.
	CreateProgram() uint32

	// DeleteProgram deletes a program object.
	DeleteProgram(program uint32)

	// AttachShader attaches a shader object to a program object.
	AttachShader(program, shader uint32)

	// LinkProgram links a program object. Query LinkStatus afterwards.
	LinkProgram(program uint32)

	// GetProgramiv writes a program object parameter to params (out).
	GetProgramiv(program, pname uint32, params *int32)

	// GetProgramInfoLog returns the information log of a program object.
	GetProgramInfoLog(program uint32) string

	// UseProgram installs a program object as part of current rendering state.
	UseProgram(program uint32)

	// GetUniformLocation returns the location of a uniform variable, or -1.
	GetUniformLocation(program uint32, name string) int32

	// GetAttribLocation returns the location of an attribute variable, or -1.
	GetAttribLocation(program uint32, name string) int32

	// Uniform1i sets an int uniform at the given location.
	Uniform1i(location, v0 int32)

	// Uniform1f sets a float uniform at the given location.
	Uniform1f(location int32, v0 float32)

	// Uniform4f sets a vec4 uniform at the given location.
	Uniform4f(location int32, v0, v1, v2, v3 float32)

	// VertexAttribPointer defines the layout of a vertex attribute array.
	// offset is a byte offset into the bound ArrayBuffer.
	VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr)

	// EnableVertexAttribArray enables a vertex attribute array.
	EnableVertexAttribArray(index uint32)

	// DisableVertexAttribArray disables a vertex attribute array.
	DisableVertexAttribArray(index uint32)

	// DrawArrays renders primitives from the bound array data.
	DrawArrays(mode uint32, first, count int32)

	// DrawElements renders primitives from the bound element array buffer.
	// offset is a byte offset into the bound ElementArrayBuffer.
	DrawElements(mode uint32, count int32, xtype uint32, offset uintptr)

	// BlendFunc specifies the pixel arithmetic for blending (e.g., SrcAlpha
	// and OneMinusSrcAlpha).
	BlendFunc(sfactor, dfactor uint32)

	// ReadPixels reads a block of pixels from the framebuffer into pixels (out).
	ReadPixels(
		x int32,
		y int32,
		width int32,
		height int32,
		format uint32,
		xtype uint32,
		pixels unsafe.Pointer,
	)

	// Finish blocks until all previously issued GL commands complete.
	Finish()

	// Flush forces execution of previously issued GL commands.
	Flush()
}

// ErrorString names a GetError code. Unknown codes are reported numerically.
func ErrorString(code uint32) string {
	switch code {
	case NoError:
		return "no error"
	case InvalidEnum:
		return "invalid enum"
	case InvalidValue:
		return "invalid value"
	case InvalidOperation:
		return "invalid operation"
	case StackOverflow:
		return "stack overflow"
	case StackUnderflow:
		return "stack underflow"
	case OutOfMemory:
		return "out of memory"
	case InvalidFramebufferOperation:
		return "invalid framebuffer operation"
	}
	return "unknown error 0x" + hex32(code)
}

func hex32(v uint32) string {
	const digits = "0123456789ABCDEF"
	var b [8]byte
	for i := range b {
		b[7-i] = digits[v&0xF]
		v >>= 4
	}
	return string(b[:])
}

func gostring(ptr *byte) string {
	if ptr == nil {
		return ""
	}
	var bytes []byte
	for p := ptr; *p != 0; p = (*byte)(unsafe.Pointer(uintptr(unsafe.Pointer(p)) + 1)) {
		bytes = append(bytes, *p)
	}
	return string(bytes)
}

func cstring(s string) *byte {
	b := append([]byte(s), 0)
	return &b[0]
}

// clen returns the index of the first NUL in b, or len(b).
func clen(b []byte) int {
	for i, c := range b {
		if c == 0 {
			return i
		}
	}
	return len(b)
}

func glbool(v bool) uint8 {
	if v {
		return True
	}
	return False
}
