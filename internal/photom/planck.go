// Package photom implements the dust coma photometric model: black-body
// emission, an approximate solar spectrum, the dust phase function, and the
// combined thermal + scattered flux estimator.
package photom

import "math"

// Composite Planck constants for wavelengths in micron.
const (
	planck2hc = 3.972891e19 // 2hc, Jy sr^-1 um^3
	planckHCK = 14387.769   // hc/k, um K
)

// Planck returns the black-body spectral radiance in Jy/sr for a wavelength
// in micron and a temperature in Kelvin.
func Planck(wave, temp float64) float64 {
	return planck2hc / (wave * wave * wave) / math.Expm1(planckHCK/(wave*temp))
}

// solarSegment is one black-body piece of the solar spectrum approximation.
// The segment applies to wavelengths strictly below Upper.
type solarSegment struct {
	Upper float64 // um
	Temp  float64 // K
	Scale float64
}

// solarSegments approximate the solar spectrum at 1 AU as a sum of
// black-body components with disjoint validity ranges. Fit per segment to a
// smoothed reference spectrum in Jy (see support/fitsolarflux2.py in the
// project history); the scale absorbs the solar solid angle in units of
// 1e-6 sr. The last entry is the long-wavelength catch-all.
var solarSegments = []solarSegment{
	{0.25, 5888.8, 21.9218},
	{0.3, 5654.7, 53.6937},
	{0.4, 4871.1, 206.5974},
	{0.6, 5714.7, 69.9873},
	{1.0, 5795.6, 65.5812},
	{3.0, 5708.3, 67.7621},
	{15.0, 5397.9, 74.2170},
	{math.MaxFloat64, 5767.1, 69.0714},
}

// Solarflux returns the solar spectral flux density at 1 AU in Jy for a
// wavelength in micron. The first segment whose upper breakpoint exceeds
// the wavelength wins; the model is discontinuous at the breakpoints.
func Solarflux(wave float64) float64 {
	for _, seg := range solarSegments {
		if wave < seg.Upper {
			return Planck(wave, seg.Temp) * seg.Scale * 1e-6
		}
	}
	// Unreachable: the catch-all segment accepts any finite wavelength.
	return 0
}
