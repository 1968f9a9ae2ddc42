package aosoa

import (
	"github.com/viterin/vek/vek32"
	"golang.org/x/sys/cpu"
)

// RuntimeInfo describes the host a population is packed on.
type RuntimeInfo struct {
	// LaneWidth is the compiled batch width.
	LaneWidth int
	// PreferredLaneWidth is how many 64-bit values the host's widest SIMD
	// registers hold.
	PreferredLaneWidth int
	// Features lists the CPU features accelerated kernels can use
	Features []string
	// Accelerated indicates whether SIMD kernels are available
	Accelerated bool
}

// Info reports the compiled lane width next to what the host prefers.
//
// Example:
//
//	info := aosoa.Info()
//	if info.PreferredLaneWidth > info.LaneWidth {
//	    fmt.Printf("host could pack %d lanes\n", info.PreferredLaneWidth)
//	}
func Info() RuntimeInfo {
	kernels := vek32.Info()
	return RuntimeInfo{
		LaneWidth:          LaneWidth,
		PreferredLaneWidth: preferredLaneWidth(),
		Features:           kernels.CPUFeatures,
		Accelerated:        kernels.Acceleration,
	}
}

func preferredLaneWidth() int {
	switch {
	case cpu.X86.HasAVX512F:
		return 8
	case cpu.X86.HasAVX2, cpu.X86.HasAVX:
		return 4
	case cpu.X86.HasSSE2, cpu.ARM64.HasASIMD:
		return 2
	}
	return 1
}
