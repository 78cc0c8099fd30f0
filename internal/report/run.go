// Package report evaluates the photometric model over an ephemeris and
// renders the results as a text report or JSON export.
package report

import (
	"math"
	"time"

	"github.com/litescript/ls-comaflux/internal/ephem"
	"github.com/litescript/ls-comaflux/internal/photom"
)

// Options configure one report run.
type Options struct {
	Waves             []float64 // wavelengths, micron
	Params            photom.Params
	ElongMin          float64 // inclusive solar elongation filter, degrees
	ElongMax          float64
	SurfaceBrightness bool // report Jy/arcsec^2 instead of Jy
}

// Epoch is one retained ephemeris row with its computed quantities.
// Afrho and Flux are indexed by wavelength, in Options.Waves order.
type Epoch struct {
	Date  string    `json:"date"`
	RA    string    `json:"ra"`
	Dec   string    `json:"dec"`
	RDot  float64   `json:"rdot_km_s"`
	RH    float64   `json:"rh_au"`
	Delta float64   `json:"delta_au"`
	Phase float64   `json:"phase_deg"`
	Elong float64   `json:"elong_deg"`
	TMag  float64   `json:"tmag"`
	NMag  *float64  `json:"nmag,omitempty"`
	Afrho []float64 `json:"afrho_cm"`
	Flux  []float64 `json:"flux"`
}

// Run is a fully computed report, ready for rendering.
type Run struct {
	Target            string        `json:"target"`
	GeneratedAt       time.Time     `json:"generated_at"`
	Provenance        []string      `json:"provenance"`
	Waves             []float64     `json:"waves_um"`
	Params            photom.Params `json:"params"`
	SurfaceBrightness bool          `json:"surface_brightness"`
	ElongMin          float64       `json:"elong_min_deg"`
	ElongMax          float64       `json:"elong_max_deg"`
	HasNMag           bool          `json:"has_nmag"`
	Epochs            []Epoch       `json:"epochs"`
	Dropped           int           `json:"dropped_rows"`
}

// Build applies the photometric model to every ephemeris row within the
// elongation filter. Rows outside the inclusive [ElongMin, ElongMax] range
// are dropped entirely, not flagged. Missing physical values carry the
// ephem.MissingValue sentinel through the model; the resulting flux is
// nonsensical but finite, and the report header documents the sentinel.
func Build(target string, e *ephem.Ephemeris, opts Options, now time.Time) *Run {
	r := &Run{
		Target:            target,
		GeneratedAt:       now,
		Provenance:        e.Provenance,
		Waves:             opts.Waves,
		Params:            opts.Params,
		SurfaceBrightness: opts.SurfaceBrightness,
		ElongMin:          opts.ElongMin,
		ElongMax:          opts.ElongMax,
		HasNMag:           e.NMag != nil,
	}

	// Aperture solid angle in arcsec^2 for the surface-brightness mode.
	apArea := math.Pi * opts.Params.Rap * opts.Params.Rap

	for i := 0; i < e.Len(); i++ {
		if e.Elong[i] < opts.ElongMin || e.Elong[i] > opts.ElongMax {
			r.Dropped++
			continue
		}

		ep := Epoch{
			Date:  e.Date[i],
			RA:    e.RA[i],
			Dec:   e.Dec[i],
			RDot:  e.RDot[i],
			RH:    e.RH[i],
			Delta: e.Delta[i],
			Phase: e.Phase[i],
			Elong: e.Elong[i],
			TMag:  e.TMag[i],
			Afrho: make([]float64, len(opts.Waves)),
			Flux:  make([]float64, len(opts.Waves)),
		}
		if e.NMag != nil {
			v := e.NMag[i]
			ep.NMag = &v
		}

		for j, wave := range opts.Waves {
			afrho, flux := photom.Fest(e.RH[i], e.Delta[i], e.Phase[i], wave, opts.Params)
			if opts.SurfaceBrightness {
				flux /= apArea
			}
			ep.Afrho[j] = afrho
			ep.Flux[j] = flux
		}

		r.Epochs = append(r.Epochs, ep)
	}

	return r
}
