//go:build (!amd64 && !arm64) && !noasm

package streamvbyte64

// Every other architecture falls back to the scalar reference backend, the
// conformant baseline for every parameterization.

func selectKernel1234() (groupKernel[uint32], string) {
	return scalarKernel[uint32](&descriptor1234), "scalar"
}

func selectKernel0124() (groupKernel[uint32], string) {
	return scalarKernel[uint32](&descriptor0124), "scalar"
}

func selectKernel1248() (groupKernel[uint64], string) {
	return scalarKernel[uint64](&descriptor1248), "scalar"
}
