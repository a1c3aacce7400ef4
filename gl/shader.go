package gl

import "fmt"

// CompileShaderSource creates a shader of the given type, uploads srcs and
// compiles it. On failure the shader is deleted and the error carries the
// info log.
func CompileShaderSource(g OpenGL, xtype uint32, srcs ...string) (uint32, error) {
	shader := g.CreateShader(xtype)
	if shader == 0 {
		return 0, fmt.Errorf("create shader: %s", ErrorString(g.GetError()))
	}

	if err := g.ShaderSource(shader, srcs); err != nil {
		g.DeleteShader(shader)
		return 0, fmt.Errorf("upload shader source: %w", err)
	}
	g.CompileShader(shader)

	var status int32
	g.GetShaderiv(shader, CompileStatus, &status)
	if status == False {
		log := g.GetShaderInfoLog(shader)
		g.DeleteShader(shader)
		return 0, fmt.Errorf("compile shader: %s", log)
	}
	return shader, nil
}

// LinkShaders compiles a vertex and a fragment shader and links them into a
// program. The shaders are deleted once linked (or on failure).
func LinkShaders(g OpenGL, vertexSrc, fragmentSrc string) (uint32, error) {
	vs, err := CompileShaderSource(g, VertexShader, vertexSrc)
	if err != nil {
		return 0, err
	}
	defer g.DeleteShader(vs)

	fs, err := CompileShaderSource(g, FragmentShader, fragmentSrc)
	if err != nil {
		return 0, err
	}
	defer g.DeleteShader(fs)

	program := g.CreateProgram()
	if program == 0 {
		return 0, fmt.Errorf("create program: %s", ErrorString(g.GetError()))
	}
	g.AttachShader(program, vs)
	g.AttachShader(program, fs)
	g.LinkProgram(program)

	var status int32
	g.GetProgramiv(program, LinkStatus, &status)
	if status == False {
		log := g.GetProgramInfoLog(program)
		g.DeleteProgram(program)
		return 0, fmt.Errorf("link program: %s", log)
	}
	return program, nil
}
