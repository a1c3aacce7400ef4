//go:build darwin

package gl

const glLibPath = "/System/Library/Frameworks/OpenGL.framework/Versions/Current/OpenGL"
