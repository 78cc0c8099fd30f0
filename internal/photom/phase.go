package photom

import "math"

// phaseCoef are the coefficients, highest power first, of a degree-15
// polynomial in phase angle (degrees) modeling the natural log of a
// composite cometary dust phase function (forward and back scattering
// lobes), normalized to unity at zero phase. The order is load-bearing:
// Phi evaluates them with Horner's scheme.
var phaseCoef = []float64{
	-4.34356600027324178e-28,
	5.56279261541336472e-25,
	-3.20728674110486712e-22,
	1.09999003312497501e-19,
	-2.49807778280873736e-17,
	3.95727613786787245e-15,
	-4.48755059458941236e-13,
	3.67982320350691028e-11,
	-2.17834251047871999e-09,
	9.19474198394818675e-08,
	-2.69987648642194419e-06,
	5.26642735695449023e-05,
	-6.05435264582781445e-04,
	2.24781840496397420e-03,
	-1.07182886600294923e-02,
	7.17611036578147399e-03,
}

// Phi evaluates the dust phase function at a phase angle in degrees.
func Phi(phase float64) float64 {
	var p float64
	for _, c := range phaseCoef {
		p = p*phase + c
	}
	return math.Exp(p)
}
