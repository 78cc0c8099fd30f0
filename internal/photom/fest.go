package photom

import "math"

const (
	// CmPerAU converts AU to centimeters.
	CmPerAU = 1.49597870691e13

	// ArcsecPerRad converts radians to arcseconds.
	ArcsecPerRad = 206264.806247

	// baseGrainTemp is the equilibrium grain temperature at 1 AU, Kelvin.
	baseGrainTemp = 278.0
)

// Params are the photometric model parameters for one run.
type Params struct {
	Tscale float64 `json:"tscale"`    // grain temperature scale factor relative to equilibrium
	Ef2af  float64 `json:"ef2af"`     // emissivity / (albedo * filling factor) ratio
	Rap    float64 `json:"rap_as"`    // aperture radius, arcsec
	Afrho1 float64 `json:"afrho1_cm"` // Afrho at 1 AU, cm
	Slope  float64 `json:"slope"`     // Afrho power-law slope in heliocentric distance
}

// Fest estimates the dust coma brightness for one epoch: rh and delta in
// AU, phase in degrees, wave in micron. It returns the Afrho quantity in cm
// and the combined thermal + scattered flux density in Jy.
//
// No validation is performed; non-physical inputs (zero distances, negative
// wavelengths) surface as NaN or Inf in the results.
func Fest(rh, delta, phase, wave float64, p Params) (afrho, flux float64) {
	afrho = p.Afrho1 * math.Pow(rh, -p.Slope)
	temp := baseGrainTemp * p.Tscale / math.Sqrt(rh)

	deltaCm := delta * CmPerAU
	rho := p.Rap / ArcsecPerRad * deltaCm // aperture radius at the comet, cm
	geom := rho / (deltaCm * deltaCm)

	thermal := p.Ef2af * afrho * math.Pi * Planck(wave, temp) * geom
	scattered := afrho * Phi(phase) / 4 * geom * Solarflux(wave) / (rh * rh)

	return afrho, thermal + scattered
}
