package viz

import (
	"strings"
	"testing"

	"github.com/lmarques/relmet/internal/frame"
	"github.com/lmarques/relmet/internal/sweep"
)

func TestPlotTau(t *testing.T) {
	body, _ := frame.Lookup("stellar-bh")
	result, err := sweep.Run(body, sweep.Config{Kind: sweep.Radius, Start: 1.5, Stop: 20, Points: 40})
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}

	chart := PlotTau(result.Samples, "tau vs r")
	if !strings.Contains(chart, "tau vs r") {
		t.Error("expected caption in chart")
	}
	if len(strings.Split(chart, "\n")) < plotHeight {
		t.Error("chart shorter than configured height")
	}
}

func TestExplorerNavigation(t *testing.T) {
	e := NewExplorer()

	if len(e.bodies) == 0 {
		t.Fatal("explorer has no bodies")
	}

	e.observe()
	if e.lastErr != nil {
		t.Fatalf("initial observation failed: %v", e.lastErr)
	}
	if len(e.tauHistory) != 1 {
		t.Errorf("expected one history point, got %d", len(e.tauHistory))
	}

	start := e.rFactor
	e.rFactor *= 1.05
	e.observe()
	if e.lastErr != nil {
		t.Fatalf("observation failed after move: %v", e.lastErr)
	}
	if e.tauHistory[1] <= e.tauHistory[0] {
		t.Error("tau should grow when moving outward")
	}
	if e.rFactor <= start {
		t.Error("rFactor should have increased")
	}
}
