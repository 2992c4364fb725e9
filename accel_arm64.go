//go:build arm64 && !noasm

package streamvbyte64

// NEON is always present on little-endian aarch64, so the accelerated
// kernel is selected unconditionally here, with no runtime feature probe.

func selectKernel1234() (groupKernel[uint32], string) {
	return accelKernel[uint32](&descriptor1234, tables1234), "neon"
}

func selectKernel0124() (groupKernel[uint32], string) {
	return accelKernel[uint32](&descriptor0124, tables0124), "neon"
}

func selectKernel1248() (groupKernel[uint64], string) {
	return accelKernel[uint64](&descriptor1248, tables1248), "neon"
}
