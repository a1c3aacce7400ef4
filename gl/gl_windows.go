//go:build windows

package gl

import (
	"fmt"
	"math"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/tinyrange/gpubind/internal/ffi"
)

// opengl32.dll only exports the GL 1.1 entry points. Anything newer has to
// be resolved through wglGetProcAddress, which needs a current GL context
// on the calling thread. Load therefore requires a current context.
type proc struct {
	name string
	addr uintptr
}

// call invokes the native entry point. Pointers must be converted to
// uintptr in call's own argument list; the directive keeps such pointers
// alive and pinned until the native call returns.
//
//go:uintptrescapes
func (p *proc) call(args ...uintptr) uintptr {
	r, _, _ := syscall.SyscallN(p.addr, args...)
	return r
}

type openGL struct {
	clearColor               proc
	clear                    proc
	viewport                 proc
	enable                   proc
	disable                  proc
	getError                 proc
	getString                proc
	getIntegerv              proc
	genTextures              proc
	deleteTextures           proc
	bindTexture              proc
	texImage2D               proc
	texParameteri            proc
	pixelStorei              proc
	activeTexture            proc
	genBuffers               proc
	deleteBuffers            proc
	bindBuffer               proc
	bufferData               proc
	bufferSubData            proc
	createShader             proc
	deleteShader             proc
	shaderSource             proc
	compileShader            proc
	getShaderiv              proc
	getShaderInfoLog         proc
	createProgram            proc
	deleteProgram            proc
	attachShader             proc
	linkProgram              proc
	getProgramiv             proc
	getProgramInfoLog        proc
	useProgram               proc
	getUniformLocation       proc
	getAttribLocation        proc
	uniform1i                proc
	uniform1f                proc
	uniform4f                proc
	vertexAttribPointer      proc
	enableVertexAttribArray  proc
	disableVertexAttribArray proc
	drawArrays               proc
	drawElements             proc
	blendFunc                proc
	readPixels               proc
	finish                   proc
	flush                    proc
}

func f32(v float32) uintptr {
	return uintptr(math.Float32bits(v))
}

func (gl *openGL) ClearColor(r, g, b, a float32) {
	gl.clearColor.call(f32(r), f32(g), f32(b), f32(a))
}

func (gl *openGL) Clear(mask uint32) {
	gl.clear.call(uintptr(mask))
}

func (gl *openGL) Viewport(x, y, width, height int32) {
	gl.viewport.call(uintptr(x), uintptr(y), uintptr(width), uintptr(height))
}

func (gl *openGL) Enable(cap uint32) {
	gl.enable.call(uintptr(cap))
}

func (gl *openGL) Disable(cap uint32) {
	gl.disable.call(uintptr(cap))
}

func (gl *openGL) GetError() uint32 {
	return uint32(gl.getError.call())
}

func (gl *openGL) GetString(name uint32) string {
	return gostring((*byte)(unsafe.Pointer(gl.getString.call(uintptr(name)))))
}

func (gl *openGL) GetIntegerv(name uint32, data *int32) {
	gl.getIntegerv.call(uintptr(name), uintptr(unsafe.Pointer(data)))
}

func (gl *openGL) GenTextures(n int32, textures *uint32) {
	gl.genTextures.call(uintptr(n), uintptr(unsafe.Pointer(textures)))
}

func (gl *openGL) DeleteTextures(n int32, textures *uint32) {
	gl.deleteTextures.call(uintptr(n), uintptr(unsafe.Pointer(textures)))
}

func (gl *openGL) BindTexture(target, texture uint32) {
	gl.bindTexture.call(uintptr(target), uintptr(texture))
}

func (gl *openGL) TexImage2D(target uint32, level, internalFormat, width, height, border int32, format, xtype uint32, pixels unsafe.Pointer) {
	gl.texImage2D.call(uintptr(target), uintptr(level), uintptr(internalFormat), uintptr(width), uintptr(height), uintptr(border), uintptr(format), uintptr(xtype), uintptr(pixels))
}

func (gl *openGL) TexParameteri(target, pname uint32, param int32) {
	gl.texParameteri.call(uintptr(target), uintptr(pname), uintptr(param))
}

func (gl *openGL) PixelStorei(pname uint32, param int32) {
	gl.pixelStorei.call(uintptr(pname), uintptr(param))
}

func (gl *openGL) ActiveTexture(texture uint32) {
	gl.activeTexture.call(uintptr(texture))
}

func (gl *openGL) GenBuffers(n int32, buffers *uint32) {
	gl.genBuffers.call(uintptr(n), uintptr(unsafe.Pointer(buffers)))
}

func (gl *openGL) DeleteBuffers(n int32, buffers *uint32) {
	gl.deleteBuffers.call(uintptr(n), uintptr(unsafe.Pointer(buffers)))
}

func (gl *openGL) BindBuffer(target, buffer uint32) {
	gl.bindBuffer.call(uintptr(target), uintptr(buffer))
}

func (gl *openGL) BufferData(target uint32, size int, data unsafe.Pointer, usage uint32) {
	gl.bufferData.call(uintptr(target), uintptr(size), uintptr(data), uintptr(usage))
}

func (gl *openGL) BufferSubData(target uint32, offset, size int, data unsafe.Pointer) {
	gl.bufferSubData.call(uintptr(target), uintptr(offset), uintptr(size), uintptr(data))
}

func (gl *openGL) CreateShader(xtype uint32) uint32 {
	return uint32(gl.createShader.call(uintptr(xtype)))
}

func (gl *openGL) DeleteShader(shader uint32) {
	gl.deleteShader.call(uintptr(shader))
}

func (gl *openGL) ShaderSource(shader uint32, srcs []string) error {
	_, err := ffi.CallStrings(ffi.Native(), srcs, func(argv uintptr) uintptr {
		gl.shaderSource.call(uintptr(shader), uintptr(int32(len(srcs))), argv, 0)
		return 0
	})
	return err
}

func (gl *openGL) CompileShader(shader uint32) {
	gl.compileShader.call(uintptr(shader))
}

func (gl *openGL) GetShaderiv(shader, pname uint32, params *int32) {
	gl.getShaderiv.call(uintptr(shader), uintptr(pname), uintptr(unsafe.Pointer(params)))
}

func (gl *openGL) GetShaderInfoLog(shader uint32) string {
	var length int32
	gl.GetShaderiv(shader, InfoLogLength, &length)
	if length <= 0 {
		return ""
	}
	buf := make([]byte, length)
	gl.getShaderInfoLog.call(uintptr(shader), uintptr(length), 0, uintptr(unsafe.Pointer(&buf[0])))
	return string(buf[:clen(buf)])
}

func (gl *openGL) CreateProgram() uint32 {
	return uint32(gl.createProgram.call())
}

func (gl *openGL) DeleteProgram(program uint32) {
	gl.deleteProgram.call(uintptr(program))
}

func (gl *openGL) AttachShader(program, shader uint32) {
	gl.attachShader.call(uintptr(program), uintptr(shader))
}

func (gl *openGL) LinkProgram(program uint32) {
	gl.linkProgram.call(uintptr(program))
}

func (gl *openGL) GetProgramiv(program, pname uint32, params *int32) {
	gl.getProgramiv.call(uintptr(program), uintptr(pname), uintptr(unsafe.Pointer(params)))
}

func (gl *openGL) GetProgramInfoLog(program uint32) string {
	var length int32
	gl.GetProgramiv(program, InfoLogLength, &length)
	if length <= 0 {
		return ""
	}
	buf := make([]byte, length)
	gl.getProgramInfoLog.call(uintptr(program), uintptr(length), 0, uintptr(unsafe.Pointer(&buf[0])))
	return string(buf[:clen(buf)])
}

func (gl *openGL) UseProgram(program uint32) {
	gl.useProgram.call(uintptr(program))
}

func (gl *openGL) GetUniformLocation(program uint32, name string) int32 {
	return int32(gl.getUniformLocation.call(uintptr(program), uintptr(unsafe.Pointer(cstring(name)))))
}

func (gl *openGL) GetAttribLocation(program uint32, name string) int32 {
	return int32(gl.getAttribLocation.call(uintptr(program), uintptr(unsafe.Pointer(cstring(name)))))
}

func (gl *openGL) Uniform1i(location, v0 int32) {
	gl.uniform1i.call(uintptr(location), uintptr(v0))
}

func (gl *openGL) Uniform1f(location int32, v0 float32) {
	gl.uniform1f.call(uintptr(location), f32(v0))
}

func (gl *openGL) Uniform4f(location int32, v0, v1, v2, v3 float32) {
	gl.uniform4f.call(uintptr(location), f32(v0), f32(v1), f32(v2), f32(v3))
}

func (gl *openGL) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
	gl.vertexAttribPointer.call(uintptr(index), uintptr(size), uintptr(xtype), uintptr(glbool(normalized)), uintptr(stride), offset)
}

func (gl *openGL) EnableVertexAttribArray(index uint32) {
	gl.enableVertexAttribArray.call(uintptr(index))
}

func (gl *openGL) DisableVertexAttribArray(index uint32) {
	gl.disableVertexAttribArray.call(uintptr(index))
}

func (gl *openGL) DrawArrays(mode uint32, first, count int32) {
	gl.drawArrays.call(uintptr(mode), uintptr(first), uintptr(count))
}

func (gl *openGL) DrawElements(mode uint32, count int32, xtype uint32, offset uintptr) {
	gl.drawElements.call(uintptr(mode), uintptr(count), uintptr(xtype), offset)
}

func (gl *openGL) BlendFunc(sfactor, dfactor uint32) {
	gl.blendFunc.call(uintptr(sfactor), uintptr(dfactor))
}

func (gl *openGL) ReadPixels(x, y, width, height int32, format, xtype uint32, pixels unsafe.Pointer) {
	gl.readPixels.call(uintptr(x), uintptr(y), uintptr(width), uintptr(height), uintptr(format), uintptr(xtype), uintptr(pixels))
}

func (gl *openGL) Finish() {
	gl.finish.call()
}

func (gl *openGL) Flush() {
	gl.flush.call()
}

// Load binds the GL entry points from opengl32.dll. Symbols newer than GL
// 1.1 are resolved through wglGetProcAddress, so a GL context must be
// current on the calling thread.
func Load() (OpenGL, error) {
	opengl32 := windows.NewLazySystemDLL("opengl32.dll")
	if err := opengl32.Load(); err != nil {
		return nil, err
	}
	wglGetProcAddress := opengl32.NewProc("wglGetProcAddress")
	if err := wglGetProcAddress.Find(); err != nil {
		return nil, err
	}

	lookup := func(name string) (uintptr, error) {
		p := opengl32.NewProc(name)
		if p.Find() == nil {
			return p.Addr(), nil
		}
		addr, _, _ := wglGetProcAddress.Call(uintptr(unsafe.Pointer(cstring(name))))
		// wglGetProcAddress reports failure with a handful of sentinel values.
		switch addr {
		case 0, 1, 2, 3, ^uintptr(0):
			return 0, fmt.Errorf("gl: symbol %s not found (is a GL context current?)", name)
		}
		return addr, nil
	}

	gl := &openGL{}
	var firstErr error
	register := func(dst *proc, name string) {
		addr, err := lookup(name)
		if err != nil && firstErr == nil {
			firstErr = err
		}
		*dst = proc{name: name, addr: addr}
	}

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

	if firstErr != nil {
		return nil, firstErr
	}
	return gl, nil
}
