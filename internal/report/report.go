package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/litescript/ls-comaflux/internal/ephem"
	"github.com/litescript/ls-comaflux/internal/version"
)

// WriteText renders the run as a commented header block followed by one
// fixed-width row per retained epoch.
func (r *Run) WriteText(w io.Writer) {
	fluxUnit := "Jy"
	if r.SurfaceBrightness {
		fluxUnit = "Jy/arcsec^2"
	}

	fmt.Fprintf(w, "# ls-comaflux %s\n", version.Version)
	fmt.Fprintf(w, "# generated: %s\n", r.GeneratedAt.UTC().Format(time.RFC3339))
	fmt.Fprintf(w, "# target: %s\n", r.Target)
	for _, p := range r.Provenance {
		fmt.Fprintf(w, "# source: %s\n", p)
	}
	fmt.Fprintf(w, "# wavelengths (um): %s\n", joinFloats(r.Waves, "%g"))
	fmt.Fprintf(w, "# tscale=%g ef2af=%g rap=%g\" afrho(1AU)=%g cm slope=%g\n",
		r.Params.Tscale, r.Params.Ef2af, r.Params.Rap, r.Params.Afrho1, r.Params.Slope)
	fmt.Fprintf(w, "# elongation filter: %g to %g deg inclusive (%d rows dropped)\n",
		r.ElongMin, r.ElongMax, r.Dropped)
	fmt.Fprintf(w, "# flux unit: %s; distances in AU, rdot in km/s, angles in deg\n", fluxUnit)
	fmt.Fprintf(w, "# missing values flagged as %.1f\n", ephem.MissingValue)

	// Column header and underline.
	var h strings.Builder
	fmt.Fprintf(&h, "%-17s %-12s %-13s %8s %8s %8s %7s %7s %7s",
		"date (UT)", "RA", "Dec", "rdot", "rh", "delta", "phase", "elong", "tmag")
	if r.HasNMag {
		fmt.Fprintf(&h, " %7s", "nmag")
	}
	for _, wave := range r.Waves {
		fmt.Fprintf(&h, " %10s %12s", fmt.Sprintf("afrho@%g", wave), fmt.Sprintf("flux@%g", wave))
	}
	fmt.Fprintln(w, h.String())
	fmt.Fprintln(w, strings.Repeat("-", len(h.String())))

	for _, ep := range r.Epochs {
		var b strings.Builder
		fmt.Fprintf(&b, "%-17s %-12s %-13s %8.3f %8.4f %8.4f %7.2f %7.2f %7.2f",
			ep.Date, ep.RA, ep.Dec, ep.RDot, ep.RH, ep.Delta, ep.Phase, ep.Elong, ep.TMag)
		if r.HasNMag {
			nmag := ephem.MissingValue
			if ep.NMag != nil {
				nmag = *ep.NMag
			}
			fmt.Fprintf(&b, " %7.2f", nmag)
		}
		for j := range r.Waves {
			fmt.Fprintf(&b, " %10.2f %12.4e", ep.Afrho[j], ep.Flux[j])
		}
		fmt.Fprintln(w, b.String())
	}
}

func joinFloats(vals []float64, format string) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = fmt.Sprintf(format, v)
	}
	return strings.Join(parts, ", ")
}
