package storage

import (
	"encoding/json"
	"io"

	"github.com/lmarques/relmet/internal/sweep"
)

type ExportData struct {
	ID      string             `json:"id"`
	Body    string             `json:"body"`
	Kind    string             `json:"kind"`
	Xs      []float64          `json:"xs"`
	TauGrav []float64          `json:"tau_grav"`
	TauKin  []float64          `json:"tau_kin"`
	Tau     []float64          `json:"tau"`
	VApp    []float64          `json:"v_app"`
	Metrics map[string]float64 `json:"metrics"`
}

// ExportJSON writes a run as column-oriented JSON.
func ExportJSON(w io.Writer, meta *RunMetadata, samples []sweep.Sample) error {
	data := ExportData{
		ID:      meta.ID,
		Body:    meta.Body,
		Kind:    meta.Kind,
		Xs:      make([]float64, len(samples)),
		TauGrav: make([]float64, len(samples)),
		TauKin:  make([]float64, len(samples)),
		Tau:     make([]float64, len(samples)),
		VApp:    make([]float64, len(samples)),
		Metrics: meta.Metrics,
	}

	for i, s := range samples {
		data.Xs[i] = s.X
		data.TauGrav[i] = s.TauGrav
		data.TauKin[i] = s.TauKin
		data.Tau[i] = s.Tau
		data.VApp[i] = s.Apparent
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
