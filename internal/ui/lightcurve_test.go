package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/litescript/ls-comaflux/internal/ephem"
	"github.com/litescript/ls-comaflux/internal/photom"
	"github.com/litescript/ls-comaflux/internal/report"
)

func testRun() *report.Run {
	e := &ephem.Ephemeris{
		Date:  []string{"2023-08-15 00:00", "2023-08-16 00:00", "2023-08-17 00:00"},
		RA:    []string{"03 12 44.18", "03 15 02.61", "03 17 21.30"},
		Dec:   []string{"+18 22 31.9", "+18 30 05.2", "+18 37 39.1"},
		RDot:  []float64{-10.5, -10.4, -10.3},
		RH:    []float64{1.50, 1.49, 1.48},
		Delta: []float64{0.90, 0.89, 0.88},
		Phase: []float64{35.2, 35.0, 34.8},
		Elong: []float64{120.3, 121.0, 121.7},
		TMag:  []float64{12.5, 12.4, 12.3},
	}
	return report.Build("C/2023 A3", e, report.Options{
		Waves:    []float64{10, 0.55},
		Params:   photom.Params{Tscale: 1.0, Ef2af: 3.5, Rap: 0.5, Afrho1: 100, Slope: 2.3},
		ElongMin: 0,
		ElongMax: 180,
	}, time.Now())
}

func TestViewRendersRun(t *testing.T) {
	m := New(testRun())
	m.width = 100
	m.height = 30

	view := m.View()
	for _, want := range []string{
		"C/2023 A3",
		"wave 10 um",
		"2023-08-15 00:00",
		"date (UT)",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestViewEmptyRun(t *testing.T) {
	run := testRun()
	run.Epochs = nil
	m := New(run)

	if view := m.View(); !strings.Contains(view, "No epochs") {
		t.Errorf("empty view = %q", view)
	}
}

func TestUpdateNavigation(t *testing.T) {
	m := New(testRun())
	m.width = 100
	m.height = 30

	press := func(m Model, key string) Model {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
		return next.(Model)
	}

	m = press(m, "j")
	if m.cursor != 1 {
		t.Errorf("cursor = %d after j, want 1", m.cursor)
	}
	m = press(m, "k")
	if m.cursor != 0 {
		t.Errorf("cursor = %d after k, want 0", m.cursor)
	}
	m = press(m, "G")
	if m.cursor != 2 {
		t.Errorf("cursor = %d after G, want 2", m.cursor)
	}
	m = press(m, "g")
	if m.cursor != 0 {
		t.Errorf("cursor = %d after g, want 0", m.cursor)
	}

	m = press(m, "]")
	if m.waveIdx != 1 {
		t.Errorf("waveIdx = %d after ], want 1", m.waveIdx)
	}
	if !strings.Contains(m.View(), "wave 0.55 um") {
		t.Error("view does not reflect wavelength switch")
	}
	m = press(m, "]")
	if m.waveIdx != 1 {
		t.Errorf("waveIdx = %d, must clamp at last wavelength", m.waveIdx)
	}
	m = press(m, "[")
	if m.waveIdx != 0 {
		t.Errorf("waveIdx = %d after [, want 0", m.waveIdx)
	}
}

func TestUpdateQuit(t *testing.T) {
	m := New(testRun())
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestResample(t *testing.T) {
	vals := []float64{1, 2, 3, 4, 5}

	out := resample(vals, 10)
	if len(out) != 10 {
		t.Fatalf("len = %d, want 10", len(out))
	}
	if out[0] != 1 || out[9] != 5 {
		t.Errorf("endpoints = %v, %v, want 1, 5", out[0], out[9])
	}

	out = resample(vals, 2)
	if len(out) != 2 || out[0] != 1 || out[1] != 5 {
		t.Errorf("downsample = %v, want [1 5]", out)
	}

	if resample(nil, 5) != nil {
		t.Error("resample(nil) should be nil")
	}
}
