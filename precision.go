package strnum

import (
	"sync"

	mu "github.com/avdva/strnum/internal/mathutil"
)

// PrecisionLimits describes how many decimal digits fit into the
// platform's widest native signed integer without overflow. It is
// computed once per process and never changes afterwards.
type PrecisionLimits struct {
	MaxSafeDigits int
}

var (
	precOnce   sync.Once
	precLimits PrecisionLimits
	nativeMax  uint64
)

// Precision returns the process-wide precision limits.
// On a 64-bit platform MaxSafeDigits is 18.
func Precision() PrecisionLimits {
	precOnce.Do(probe)
	return precLimits
}

func maxSafeDigits() int {
	return Precision().MaxSafeDigits
}

// maxNative returns the largest positive value of the widest native
// signed integer found by the probe.
func maxNative() uint64 {
	precOnce.Do(probe)
	return nativeMax
}

// probe finds the widest signed width whose boundary value survives a
// round trip through the native int type, then derives the digit count:
// floor(log10(2^(width-1))).
func probe() {
	for _, width := range []uint{64, 32, 16} {
		boundary := uint64(1)<<(width-1) - 1
		if v := int(boundary); v > 0 && uint64(v) == boundary {
			nativeMax = boundary
			precLimits = PrecisionLimits{MaxSafeDigits: mu.DecimalDigits(boundary) - 1}
			return
		}
	}
	// unreachable on any supported platform
	nativeMax = 1<<15 - 1
	precLimits = PrecisionLimits{MaxSafeDigits: 4}
}
