package ephem

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"time"
)

const (
	// HorizonsAPIURL is the JPL Horizons API endpoint.
	HorizonsAPIURL = "https://ssd.jpl.nasa.gov/api/horizons.api"

	// RequestTimeout is the HTTP request timeout.
	RequestTimeout = 30 * time.Second

	// quantities selects the observer-table columns: 1=RA/Dec,
	// 9=magnitudes, 19=r/rdot, 20=delta/deldot, 23=S-O-T, 24=S-T-O.
	quantities = "1,9,19,20,23,24"
)

// Query describes one ephemeris request.
type Query struct {
	Target string // designation, e.g. "C/2023 A3" or "2P"
	Start  string // e.g. "2024-01-01"
	Stop   string // e.g. "2024-03-01"
	Step   string // e.g. "1d", "6h"
}

// cometDesignation matches periodic comet numbers ("1P", "73P-C") and
// provisional comet designations ("C/2023 A3", "P/2010 A2").
var cometDesignation = regexp.MustCompile(`^([1-9][0-9]*[PD](-[A-Z]+)?$|[CPD]/)`)

// command builds the Horizons COMMAND value for a target. Cometary
// designations get the DES= lookup with the fragment and close-approach
// modifiers so the latest apparition is selected and fragments are not
// matched by prefix.
func command(target string) string {
	if cometDesignation.MatchString(target) {
		return fmt.Sprintf("DES=%s;NOFRAG;CAP;", target)
	}
	return target + ";"
}

// requestQuery builds the encoded Horizons query string. Values must be
// single-quoted per the API convention.
func requestQuery(q Query) string {
	params := url.Values{}
	params.Set("format", "text")
	params.Set("COMMAND", fmt.Sprintf("'%s'", command(q.Target)))
	params.Set("OBJ_DATA", "NO")
	params.Set("MAKE_EPHEM", "YES")
	params.Set("EPHEM_TYPE", "OBSERVER")
	params.Set("CENTER", "'500'") // geocenter
	params.Set("START_TIME", fmt.Sprintf("'%s'", q.Start))
	params.Set("STOP_TIME", fmt.Sprintf("'%s'", q.Stop))
	params.Set("STEP_SIZE", fmt.Sprintf("'%s'", q.Step))
	params.Set("QUANTITIES", fmt.Sprintf("'%s'", quantities))
	params.Set("CSV_FORMAT", "YES")
	return params.Encode()
}

// fetch performs the Horizons request and returns the raw text response.
func fetch(ctx context.Context, client *http.Client, reqURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", fmt.Errorf("build horizons request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("horizons request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read horizons response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("horizons returned status %d: %s", resp.StatusCode, string(body))
	}

	return string(body), nil
}
