//go:build amd64 && !noasm

package streamvbyte64

import "golang.org/x/sys/cpu"

// On x86_64 acceleration is optional: Coder1234 wants SSSE3, Coder0124 and
// Coder1248 want SSE4.1. Probing happens once, at construction, and the
// result is cached in the returned coder.

func selectKernel1234() (groupKernel[uint32], string) {
	if cpu.X86.HasSSSE3 {
		return accelKernel[uint32](&descriptor1234, tables1234), "ssse3"
	}
	return scalarKernel[uint32](&descriptor1234), "scalar"
}

func selectKernel0124() (groupKernel[uint32], string) {
	if cpu.X86.HasSSE41 {
		return accelKernel[uint32](&descriptor0124, tables0124), "sse41"
	}
	return scalarKernel[uint32](&descriptor0124), "scalar"
}

func selectKernel1248() (groupKernel[uint64], string) {
	if cpu.X86.HasSSE41 {
		return accelKernel[uint64](&descriptor1248, tables1248), "sse41"
	}
	return scalarKernel[uint64](&descriptor1248), "scalar"
}
