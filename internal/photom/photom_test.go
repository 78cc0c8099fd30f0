package photom

import (
	"math"
	"testing"
)

func relDiff(a, b float64) float64 {
	if b == 0 {
		return math.Abs(a)
	}
	return math.Abs(a-b) / math.Abs(b)
}

func TestPlanck(t *testing.T) {
	tests := []struct {
		wave, temp float64
		want       float64 // Jy/sr
	}{
		{10.0, 249.68465444769865, 1.252869666102e+14},
		{11.7, 300.0, 4.184137342631e+14},
	}

	for _, tc := range tests {
		got := Planck(tc.wave, tc.temp)
		if relDiff(got, tc.want) > 1e-9 {
			t.Errorf("Planck(%v, %v) = %v, want %v", tc.wave, tc.temp, got, tc.want)
		}
	}
}

func TestPlanckWienLimit(t *testing.T) {
	// Far short of the peak the radiance must collapse toward zero but
	// stay finite and positive.
	got := Planck(0.1, 300.0)
	if got <= 0 || math.IsInf(got, 0) || math.IsNaN(got) {
		t.Errorf("Planck(0.1, 300) = %v, want small positive", got)
	}
	if got > 1e-100 {
		t.Errorf("Planck(0.1, 300) = %v, expected deep Wien cutoff", got)
	}
}

func TestSolarfluxReference(t *testing.T) {
	tests := []struct {
		wave float64
		want float64 // Jy at 1 AU
	}{
		{0.55, 1.735806099120e+14},
		{10.0, 9.653333602229e+12},
	}

	for _, tc := range tests {
		got := Solarflux(tc.wave)
		if relDiff(got, tc.want) > 1e-9 {
			t.Errorf("Solarflux(%v) = %v, want %v", tc.wave, got, tc.want)
		}
	}
}

func TestSolarfluxSegments(t *testing.T) {
	// Within one segment the (temperature, scale) pair is constant, so the
	// ratio to a raw Planck evaluation at the segment temperature is the
	// same for any two wavelengths in the segment.
	const temp = 5795.6 // segment (0.6, 1.0)
	r1 := Solarflux(0.65) / Planck(0.65, temp)
	r2 := Solarflux(0.95) / Planck(0.95, temp)
	if relDiff(r1, r2) > 1e-12 {
		t.Errorf("segment scale not constant: %v vs %v", r1, r2)
	}
}

func TestSolarfluxBreakpointDiscontinuity(t *testing.T) {
	// Crossing a breakpoint switches (temperature, scale) pairs; the jump
	// is part of the model and must not be smoothed away.
	below := Solarflux(0.9999)
	above := Solarflux(1.0001)
	if relDiff(below, above) < 1e-4 {
		t.Errorf("expected discontinuity at 1.0 um: below=%v above=%v", below, above)
	}

	wantBelow := 2.374819491750e+14
	wantAbove := 2.354253895788e+14
	if relDiff(below, wantBelow) > 1e-9 {
		t.Errorf("Solarflux(0.9999) = %v, want %v", below, wantBelow)
	}
	if relDiff(above, wantAbove) > 1e-9 {
		t.Errorf("Solarflux(1.0001) = %v, want %v", above, wantAbove)
	}
}

func TestPhiZeroPhase(t *testing.T) {
	// Horner evaluation at phase 0 reduces to the constant term.
	want := math.Exp(phaseCoef[len(phaseCoef)-1])
	got := Phi(0)
	if got != want {
		t.Errorf("Phi(0) = %v, want exp(constant term) = %v", got, want)
	}
}

func TestPhiShape(t *testing.T) {
	tests := []struct {
		phase float64
		want  float64
	}{
		{0, 1.007201920347},
		{35.2, 3.179266222197e-01},
		{90, 1.794955312838e-01},
	}

	for _, tc := range tests {
		got := Phi(tc.phase)
		if relDiff(got, tc.want) > 1e-9 {
			t.Errorf("Phi(%v) = %v, want %v", tc.phase, got, tc.want)
		}
	}

	// Backscattering: the curve must turn up again toward opposition of
	// the scattering angle.
	if Phi(175) <= Phi(120) {
		t.Errorf("expected backscattering upturn: Phi(175)=%v Phi(120)=%v", Phi(175), Phi(120))
	}
}

func TestFestReference(t *testing.T) {
	p := Params{Tscale: 1.1, Ef2af: 3.5, Rap: 0.5, Afrho1: 100, Slope: 2.3}

	tests := []struct {
		rh, delta, phase, wave float64
		wantAfrho, wantFlux    float64
	}{
		{1.5, 0.9, 35.2, 10.0, 3.935411081314e+01, 9.763338694599e-03},
		{1.5, 0.9, 35.2, 0.55, 3.935411081314e+01, 4.344628536372e-05},
		{2.25, 1.8, 22.6, 10.0, 1.548746037893e+01, 5.251838842443e-04},
		{2.25, 1.8, 22.6, 0.55, 1.548746037893e+01, 6.371439187104e-06},
	}

	for _, tc := range tests {
		afrho, flux := Fest(tc.rh, tc.delta, tc.phase, tc.wave, p)
		if relDiff(afrho, tc.wantAfrho) > 1e-6 {
			t.Errorf("Fest(rh=%v, wave=%v) afrho = %v, want %v", tc.rh, tc.wave, afrho, tc.wantAfrho)
		}
		if relDiff(flux, tc.wantFlux) > 1e-6 {
			t.Errorf("Fest(rh=%v, wave=%v) flux = %v, want %v", tc.rh, tc.wave, flux, tc.wantFlux)
		}
	}
}

func TestFestMonotonicInRh(t *testing.T) {
	// With a positive slope Afrho must fall as the comet recedes from the
	// Sun, and so must the flux for fixed geometry.
	p := Params{Tscale: 1.0, Ef2af: 3.5, Rap: 0.5, Afrho1: 100, Slope: 2.3}

	rhs := []float64{0.8, 1.0, 1.5, 2.0, 3.0, 5.0}
	prevAfrho := math.Inf(1)
	prevFlux := math.Inf(1)
	for _, rh := range rhs {
		afrho, flux := Fest(rh, 1.0, 30.0, 10.0, p)
		if afrho >= prevAfrho {
			t.Errorf("afrho not decreasing at rh=%v: %v >= %v", rh, afrho, prevAfrho)
		}
		if flux >= prevFlux {
			t.Errorf("flux not decreasing at rh=%v: %v >= %v", rh, flux, prevFlux)
		}
		prevAfrho = afrho
		prevFlux = flux
	}
}

func TestFestNonPhysicalInputs(t *testing.T) {
	p := Params{Tscale: 1.0, Ef2af: 3.5, Rap: 0.5, Afrho1: 100, Slope: 2.3}

	// Zero heliocentric distance is never produced by real ephemerides;
	// the model propagates the domain error instead of masking it.
	afrho, flux := Fest(0, 1.0, 30.0, 10.0, p)
	if !math.IsInf(afrho, 1) {
		t.Errorf("Fest(rh=0) afrho = %v, want +Inf", afrho)
	}
	if !math.IsInf(flux, 1) && !math.IsNaN(flux) {
		t.Errorf("Fest(rh=0) flux = %v, want Inf or NaN", flux)
	}
}
