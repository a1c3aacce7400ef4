//go:build linux || darwin

package gl

import (
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/tinyrange/gpubind/internal/ffi"
)

type openGL struct {
	clearColor               func(float32, float32, float32, float32)
	clear                    func(uint32)
	viewport                 func(int32, int32, int32, int32)
	enable                   func(uint32)
	disable                  func(uint32)
	getError                 func() uint32
	getString                func(uint32) *byte
	getIntegerv              func(uint32, *int32)
	genTextures              func(int32, *uint32)
	deleteTextures           func(int32, *uint32)
	bindTexture              func(uint32, uint32)
	texImage2D               func(uint32, int32, int32, int32, int32, int32, uint32, uint32, unsafe.Pointer)
	texParameteri            func(uint32, uint32, int32)
	pixelStorei              func(uint32, int32)
	activeTexture            func(uint32)
	genBuffers               func(int32, *uint32)
	deleteBuffers            func(int32, *uint32)
	bindBuffer               func(uint32, uint32)
	bufferData               func(uint32, uintptr, unsafe.Pointer, uint32)
	bufferSubData            func(uint32, uintptr, uintptr, unsafe.Pointer)
	createShader             func(uint32) uint32
	deleteShader             func(uint32)
	shaderSource             func(uint32, int32, uintptr, *int32)
	compileShader            func(uint32)
	getShaderiv              func(uint32, uint32, *int32)
	getShaderInfoLog         func(uint32, int32, *int32, *byte)
	createProgram            func() uint32
	deleteProgram            func(uint32)
	attachShader             func(uint32, uint32)
	linkProgram              func(uint32)
	getProgramiv             func(uint32, uint32, *int32)
	getProgramInfoLog        func(uint32, int32, *int32, *byte)
	useProgram               func(uint32)
	getUniformLocation       func(uint32, *byte) int32
	getAttribLocation        func(uint32, *byte) int32
	uniform1i                func(int32, int32)
	uniform1f                func(int32, float32)
	uniform4f                func(int32, float32, float32, float32, float32)
	vertexAttribPointer      func(uint32, int32, uint32, uint8, int32, uintptr)
	enableVertexAttribArray  func(uint32)
	disableVertexAttribArray func(uint32)
	drawArrays               func(uint32, int32, int32)
	drawElements             func(uint32, int32, uint32, uintptr)
	blendFunc                func(uint32, uint32)
	readPixels               func(int32, int32, int32, int32, uint32, uint32, unsafe.Pointer)
	finish                   func()
	flush                    func()
}

func (gl *openGL) ClearColor(r, g, b, a float32) {
	gl.clearColor(r, g, b, a)
}

func (gl *openGL) Clear(mask uint32) {
	gl.clear(mask)
}

func (gl *openGL) Viewport(x, y, width, height int32) {
	gl.viewport(x, y, width, height)
}

func (gl *openGL) Enable(cap uint32) {
	gl.enable(cap)
}

func (gl *openGL) Disable(cap uint32) {
	gl.disable(cap)
}

func (gl *openGL) GetError() uint32 {
	return gl.getError()
}

func (gl *openGL) GetString(name uint32) string {
	return gostring(gl.getString(name))
}

func (gl *openGL) GetIntegerv(name uint32, data *int32) {
	gl.getIntegerv(name, data)
}

func (gl *openGL) GenTextures(n int32, textures *uint32) {
	gl.genTextures(n, textures)
}

func (gl *openGL) DeleteTextures(n int32, textures *uint32) {
	gl.deleteTextures(n, textures)
}

func (gl *openGL) BindTexture(target, texture uint32) {
	gl.bindTexture(target, texture)
}

func (gl *openGL) TexImage2D(target uint32, level, internalFormat, width, height, border int32, format, xtype uint32, pixels unsafe.Pointer) {
	gl.texImage2D(target, level, internalFormat, width, height, border, format, xtype, pixels)
}

func (gl *openGL) TexParameteri(target, pname uint32, param int32) {
	gl.texParameteri(target, pname, param)
}

func (gl *openGL) PixelStorei(pname uint32, param int32) {
	gl.pixelStorei(pname, param)
}

func (gl *openGL) ActiveTexture(texture uint32) {
	gl.activeTexture(texture)
}

func (gl *openGL) GenBuffers(n int32, buffers *uint32) {
	gl.genBuffers(n, buffers)
}

func (gl *openGL) DeleteBuffers(n int32, buffers *uint32) {
	gl.deleteBuffers(n, buffers)
}

func (gl *openGL) BindBuffer(target, buffer uint32) {
	gl.bindBuffer(target, buffer)
}

func (gl *openGL) BufferData(target uint32, size int, data unsafe.Pointer, usage uint32) {
	gl.bufferData(target, uintptr(size), data, usage)
}

func (gl *openGL) BufferSubData(target uint32, offset, size int, data unsafe.Pointer) {
	gl.bufferSubData(target, uintptr(offset), uintptr(size), data)
}

func (gl *openGL) CreateShader(xtype uint32) uint32 {
	return gl.createShader(xtype)
}

func (gl *openGL) DeleteShader(shader uint32) {
	gl.deleteShader(shader)
}

func (gl *openGL) ShaderSource(shader uint32, srcs []string) error {
	_, err := ffi.CallStrings(ffi.Native(), srcs, func(argv uintptr) uintptr {
		gl.shaderSource(shader, int32(len(srcs)), argv, nil)
		return 0
	})
	return err
}

func (gl *openGL) CompileShader(shader uint32) {
	gl.compileShader(shader)
}

func (gl *openGL) GetShaderiv(shader, pname uint32, params *int32) {
	gl.getShaderiv(shader, pname, params)
}

func (gl *openGL) GetShaderInfoLog(shader uint32) string {
	var length int32
	gl.getShaderiv(shader, InfoLogLength, &length)
	if length <= 0 {
		return ""
	}
	buf := make([]byte, length)
	gl.getShaderInfoLog(shader, length, nil, &buf[0])
	return string(buf[:clen(buf)])
}

func (gl *openGL) CreateProgram() uint32 {
	return gl.createProgram()
}

func (gl *openGL) DeleteProgram(program uint32) {
	gl.deleteProgram(program)
}

func (gl *openGL) AttachShader(program, shader uint32) {
	gl.attachShader(program, shader)
}

func (gl *openGL) LinkProgram(program uint32) {
	gl.linkProgram(program)
}

func (gl *openGL) GetProgramiv(program, pname uint32, params *int32) {
	gl.getProgramiv(program, pname, params)
}

func (gl *openGL) GetProgramInfoLog(program uint32) string {
	var length int32
	gl.getProgramiv(program, InfoLogLength, &length)
	if length <= 0 {
		return ""
	}
	buf := make([]byte, length)
	gl.getProgramInfoLog(program, length, nil, &buf[0])
	return string(buf[:clen(buf)])
}

func (gl *openGL) UseProgram(program uint32) {
	gl.useProgram(program)
}

func (gl *openGL) GetUniformLocation(program uint32, name string) int32 {
	return gl.getUniformLocation(program, cstring(name))
}

func (gl *openGL) GetAttribLocation(program uint32, name string) int32 {
	return gl.getAttribLocation(program, cstring(name))
}

func (gl *openGL) Uniform1i(location, v0 int32) {
	gl.uniform1i(location, v0)
}

func (gl *openGL) Uniform1f(location int32, v0 float32) {
	gl.uniform1f(location, v0)
}

func (gl *openGL) Uniform4f(location int32, v0, v1, v2, v3 float32) {
	gl.uniform4f(location, v0, v1, v2, v3)
}

func (gl *openGL) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
	gl.vertexAttribPointer(index, size, xtype, glbool(normalized), stride, offset)
}

func (gl *openGL) EnableVertexAttribArray(index uint32) {
	gl.enableVertexAttribArray(index)
}

func (gl *openGL) DisableVertexAttribArray(index uint32) {
	gl.disableVertexAttribArray(index)
}

func (gl *openGL) DrawArrays(mode uint32, first, count int32) {
	gl.drawArrays(mode, first, count)
}

func (gl *openGL) DrawElements(mode uint32, count int32, xtype uint32, offset uintptr) {
	gl.drawElements(mode, count, xtype, offset)
}

func (gl *openGL) BlendFunc(sfactor, dfactor uint32) {
	gl.blendFunc(sfactor, dfactor)
}

func (gl *openGL) ReadPixels(x, y, width, height int32, format, xtype uint32, pixels unsafe.Pointer) {
	gl.readPixels(x, y, width, height, format, xtype, pixels)
}

func (gl *openGL) Finish() {
	gl.finish()
}

func (gl *openGL) Flush() {
	gl.flush()
}

func Load() (OpenGL, error) {
	handle, err := purego.Dlopen(glLibPath, purego.RTLD_LAZY|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, err
	}
	register := func(dst interface{}, name string) {
		purego.RegisterLibFunc(dst, handle, name)
	}

	gl := &openGL{}
	register(&gl.clearColor, "glClearColor")
	register(&gl.clear, "glClear")
	register(&gl.viewport, "glViewport")
	register(&gl.enable, "glEnable")
	register(&gl.disable, "glDisable")
	register(&gl.getError, "glGetError")
	register(&gl.getString, "glGetString")
	register(&gl.getIntegerv, "glGetIntegerv")
	register(&gl.genTextures, "glGenTextures")
	register(&gl.deleteTextures, "glDeleteTextures")
	register(&gl.bindTexture, "glBindTexture")
	register(&gl.texImage2D, "glTexImage2D")
	register(&gl.texParameteri, "glTexParameteri")
	register(&gl.pixelStorei, "glPixelStorei")
	register(&gl.activeTexture, "glActiveTexture")
	register(&gl.genBuffers, "glGenBuffers")
	register(&gl.deleteBuffers, "glDeleteBuffers")
	register(&gl.bindBuffer, "glBindBuffer")
	register(&gl.bufferData, "glBufferData")
	register(&gl.bufferSubData, "glBufferSubData")
	register(&gl.createShader, "glCreateShader")
	register(&gl.deleteShader, "glDeleteShader")
	register(&gl.shaderSource, "glShaderSource")
	register(&gl.compileShader, "glCompileShader")
	register(&gl.getShaderiv, "glGetShaderiv")
	register(&gl.getShaderInfoLog, "glGetShaderInfoLog")
	register(&gl.createProgram, "glCreateProgram")
	register(&gl.deleteProgram, "glDeleteProgram")
	register(&gl.attachShader, "glAttachShader")
	register(&gl.linkProgram, "glLinkProgram")
	register(&gl.getProgramiv, "glGetProgramiv")
	register(&gl.getProgramInfoLog, "glGetProgramInfoLog")
	register(&gl.useProgram, "glUseProgram")
	register(&gl.getUniformLocation, "glGetUniformLocation")
	register(&gl.getAttribLocation, "glGetAttribLocation")
	register(&gl.uniform1i, "glUniform1i")
	register(&gl.uniform1f, "glUniform1f")
	register(&gl.uniform4f, "glUniform4f")
	register(&gl.vertexAttribPointer, "glVertexAttribPointer")
	register(&gl.enableVertexAttribArray, "glEnableVertexAttribArray")
	register(&gl.disableVertexAttribArray, "glDisableVertexAttribArray")
	register(&gl.drawArrays, "glDrawArrays")
	register(&gl.drawElements, "glDrawElements")
	register(&gl.blendFunc, "glBlendFunc")
	register(&gl.readPixels, "glReadPixels")
	register(&gl.finish, "glFinish")
	register(&gl.flush, "glFlush")
	return gl, nil
}
