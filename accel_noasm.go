//go:build noasm

package streamvbyte64

// The noasm build tag forces the scalar reference backend on every
// architecture, useful for isolating bugs to the accelerated kernels during
// testing.

func selectKernel1234() (groupKernel[uint32], string) {
	return scalarKernel[uint32](&descriptor1234), "scalar"
}

func selectKernel0124() (groupKernel[uint32], string) {
	return scalarKernel[uint32](&descriptor0124), "scalar"
}

func selectKernel1248() (groupKernel[uint64], string) {
	return scalarKernel[uint64](&descriptor1248), "scalar"
}
