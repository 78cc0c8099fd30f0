package ephem

// Column names produced by the Horizons CSV observer table for the
// quantities this tool requests.
const (
	colRA    = "R.A._(ICRF)"
	colDec   = "DEC_(ICRF)"
	colTMag  = "T-mag"
	colAPMag = "APmag"
	colNMag  = "N-mag"
	colR     = "r"
	colRDot  = "rdot"
	colDelta = "delta"
	colElong = "S-O-T"
	colPhase = "S-T-O"
)

// Ephemeris is a parsed observer ephemeris with aligned per-epoch columns.
// All slices have equal length; NMag is nil when the source table carries
// no N-mag column at all.
type Ephemeris struct {
	Date  []string // UT, numeric month
	RA    []string // formatted right ascension, as served
	Dec   []string // formatted declination, as served
	RDot  []float64 // d(rh)/dt, km/s as served by Horizons
	RH    []float64 // heliocentric distance, AU
	Delta []float64 // observer distance, AU
	Phase []float64 // Sun-target-observer angle, degrees
	Elong []float64 // solar elongation, degrees
	TMag  []float64 // total visual magnitude estimate, MissingValue when absent
	NMag  []float64 // nuclear magnitude estimate, nil when the column is absent

	// Provenance records where the raw table came from (URL, cache file,
	// or local file), for the report header.
	Provenance []string
}

// Len returns the number of epochs.
func (e *Ephemeris) Len() int { return len(e.Date) }

// FromTable extracts the typed ephemeris columns from a parsed table.
// The visual magnitude falls back from T-mag to APmag (comet vs asteroid
// and small-body naming) and degrades to a MissingValue column when neither
// is present. N-mag is read only when its header exists.
func FromTable(t *Table) (*Ephemeris, error) {
	e := &Ephemeris{}

	var err error
	if e.Date, err = t.Dates(DateColumn); err != nil {
		return nil, err
	}
	if e.RA, err = t.Strings(colRA); err != nil {
		return nil, err
	}
	if e.Dec, err = t.Strings(colDec); err != nil {
		return nil, err
	}
	if e.RDot, err = t.Floats(colRDot); err != nil {
		return nil, err
	}
	if e.RH, err = t.Floats(colR); err != nil {
		return nil, err
	}
	if e.Delta, err = t.Floats(colDelta); err != nil {
		return nil, err
	}
	if e.Phase, err = t.Floats(colPhase); err != nil {
		return nil, err
	}
	if e.Elong, err = t.Floats(colElong); err != nil {
		return nil, err
	}

	switch {
	case t.Has(colTMag):
		if e.TMag, err = t.Floats(colTMag); err != nil {
			return nil, err
		}
	case t.Has(colAPMag):
		if e.TMag, err = t.Floats(colAPMag); err != nil {
			return nil, err
		}
	default:
		e.TMag = make([]float64, t.Len())
		for i := range e.TMag {
			e.TMag[i] = MissingValue
		}
	}

	if t.Has(colNMag) {
		if e.NMag, err = t.Floats(colNMag); err != nil {
			return nil, err
		}
	}

	return e, nil
}
