package meta

import "sync"

// ResUnit says whether resolution (and lengths fed to ToPixels) are
// expressed per inch or per centimetre.
type ResUnit int

const (
	DPI ResUnit = iota
	DPCM
)

// DefaultResolution is the dots-per-inch used before any RESOLUTION
// directive has been seen.
const DefaultResolution = 150.0

var (
	resolutionMu   sync.RWMutex
	resolutionVal  float32 = DefaultResolution
	resolutionUnit ResUnit = DPI
)

// Resolution returns the current document resolution in dots per unit.
func Resolution() float32 {
	resolutionMu.RLock()
	defer resolutionMu.RUnlock()
	return resolutionVal
}

// SetResolution changes the document resolution. Meta values holding
// physical lengths are unaffected; only their pixel projections change.
func SetResolution(res float32) {
	resolutionMu.Lock()
	defer resolutionMu.Unlock()
	resolutionVal = res
}

// ResolutionUnit returns the unit the current resolution is expressed in.
func ResolutionUnit() ResUnit {
	resolutionMu.RLock()
	defer resolutionMu.RUnlock()
	return resolutionUnit
}

// SetResolutionUnit changes the resolution unit.
func SetResolutionUnit(u ResUnit) {
	resolutionMu.Lock()
	defer resolutionMu.Unlock()
	resolutionUnit = u
}

// ResetResolution restores the default 150 DPI. Primarily useful for
// tests that exercise RESOLUTION directives.
func ResetResolution() {
	resolutionMu.Lock()
	defer resolutionMu.Unlock()
	resolutionVal = DefaultResolution
	resolutionUnit = DPI
}

// ToPixels converts a physical length expressed in the given unit to
// pixels at the current resolution.
func ToPixels(length float32, u ResUnit) float32 {
	if u == DPCM {
		length /= 2.54
	}
	return length * Resolution()
}

// ToInches converts a length in the given unit to inches.
func ToInches(length float32, u ResUnit) float32 {
	if u == DPCM {
		return length / 2.54
	}
	return length
}
