//go:build linux

package gl

const glLibPath = "libGL.so.1"
