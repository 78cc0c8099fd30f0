// Command ls-comaflux estimates the infrared/visible brightness of a
// comet's dust coma over time from a JPL Horizons ephemeris and a thermal +
// scattered-light photometric model.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/litescript/ls-comaflux/internal/ephem"
	"github.com/litescript/ls-comaflux/internal/logging"
	"github.com/litescript/ls-comaflux/internal/photom"
	"github.com/litescript/ls-comaflux/internal/report"
	"github.com/litescript/ls-comaflux/internal/ui"
	"github.com/litescript/ls-comaflux/internal/version"
)

func main() {
	target := flag.String("target", "", "Target designation, e.g. 'C/2023 A3' or '2P'")
	file := flag.String("file", "", "Local Horizons ephemeris file instead of a live fetch")
	start := flag.String("start", "", "Window start, e.g. 2024-01-01")
	stop := flag.String("stop", "", "Window stop, e.g. 2024-03-01")
	step := flag.String("step", "1d", "Step size, e.g. 1d, 6h")
	waveList := flag.String("wave", "10", "Comma-separated wavelengths in micron")
	tscale := flag.Float64("tscale", 1.0, "Grain temperature scale factor")
	ef2af := flag.Float64("ef2af", 3.5, "Emissivity to albedo-filling-factor ratio")
	rap := flag.Float64("rap", 1.0, "Aperture radius, arcsec")
	afrho1 := flag.Float64("afrho", 100.0, "Afrho at 1 AU, cm")
	slope := flag.Float64("slope", 2.3, "Afrho power-law slope in rh")
	elongMin := flag.Float64("elong-min", 0, "Minimum solar elongation, deg (inclusive)")
	elongMax := flag.Float64("elong-max", 180, "Maximum solar elongation, deg (inclusive)")
	sb := flag.Bool("sb", false, "Report surface brightness (Jy/arcsec^2) instead of flux")
	outPath := flag.String("o", "", "Also write the text report to a file")
	jsonPath := flag.String("json", "", "Export JSON to file (use - for stdout)")
	cacheDir := flag.String("cache-dir", ".", "Directory for raw ephemeris cache files")
	noCache := flag.Bool("no-cache", false, "Bypass the ephemeris cache")
	tuiMode := flag.Bool("tui", false, "Open the interactive light-curve viewer")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("ls-comaflux " + version.Version)
		return
	}

	logger := logging.New(logging.ParseLevel(*logLevel))

	// Configuration errors are reported before any network or parse work.
	if *target == "" && *file == "" {
		fatal("either -target or -file is required")
	}
	if *file == "" && (*start == "" || *stop == "") {
		fatal("-start and -stop are required for a live fetch")
	}
	waves, err := parseWaves(*waveList)
	if err != nil {
		fatal("invalid -wave: %v", err)
	}
	if *elongMin > *elongMax {
		fatal("-elong-min exceeds -elong-max")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	opts := []ephem.SourceOption{
		ephem.WithCacheDir(*cacheDir),
		ephem.WithLogger(logger),
	}
	if *noCache {
		opts = append(opts, ephem.WithoutCache())
	}
	source := ephem.NewSource(opts...)

	var eph *ephem.Ephemeris
	if *file != "" {
		eph, err = source.FromFile(*file)
	} else {
		eph, err = source.Fetch(ctx, ephem.Query{
			Target: *target, Start: *start, Stop: *stop, Step: *step,
		})
	}
	if err != nil {
		fatal("%v", err)
	}
	logger.Info("Ephemeris has %d epochs", eph.Len())

	name := *target
	if name == "" {
		name = *file
	}
	run := report.Build(name, eph, report.Options{
		Waves: waves,
		Params: photom.Params{
			Tscale: *tscale,
			Ef2af:  *ef2af,
			Rap:    *rap,
			Afrho1: *afrho1,
			Slope:  *slope,
		},
		ElongMin:          *elongMin,
		ElongMax:          *elongMax,
		SurfaceBrightness: *sb,
	}, time.Now())

	if *jsonPath != "" {
		if err := exportJSON(run, *jsonPath); err != nil {
			fatal("%v", err)
		}
	}

	if *tuiMode {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fatal("-tui requires a terminal")
		}
		if err := ui.Show(run); err != nil {
			fatal("viewer: %v", err)
		}
		return
	}

	if *jsonPath != "-" {
		run.WriteText(os.Stdout)
	}
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			fatal("create report file: %v", err)
		}
		run.WriteText(f)
		if err := f.Close(); err != nil {
			fatal("write report file: %v", err)
		}
	}
}

// exportJSON writes the run to a file or stdout when path is "-".
func exportJSON(run *report.Run, path string) error {
	if path == "-" {
		return run.WriteJSON(os.Stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create JSON file: %w", err)
	}
	defer f.Close()
	if err := run.WriteJSON(f); err != nil {
		return fmt.Errorf("write JSON: %w", err)
	}
	return nil
}

// parseWaves parses the comma-separated wavelength list.
func parseWaves(s string) ([]float64, error) {
	var waves []float64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		w, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, err
		}
		if w <= 0 {
			return nil, fmt.Errorf("wavelength must be positive, got %g", w)
		}
		waves = append(waves, w)
	}
	if len(waves) == 0 {
		return nil, fmt.Errorf("no wavelengths given")
	}
	return waves, nil
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
