package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/lmarques/relmet/internal/sweep"
)

// Store persists sweep runs as one directory per run: metadata.json plus
// samples.csv.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Body      string             `json:"body"`
	Mass      float64            `json:"mass"`
	Kind      string             `json:"kind"`
	Start     float64            `json:"start"`
	Stop      float64            `json:"stop"`
	Points    int                `json:"points"`
	Log       bool               `json:"log"`
	RFactor   float64            `json:"r_factor,omitempty"`
	Timestamp time.Time          `json:"timestamp"`
	Samples   int                `json:"samples"`
	Truncated string             `json:"truncated,omitempty"`
	Metrics   map[string]float64 `json:"metrics"`
}

var csvHeader = []string{"x", "tau_grav", "tau_kin", "tau", "v_app"}

func (s *Store) Save(result *sweep.Result) (string, error) {
	if err := s.Init(); err != nil {
		return "", err
	}

	// IDs carry the body name, and a numeric suffix disambiguates saves
	// landing in the same second, so one run never truncates another.
	base := fmt.Sprintf("%s_%s_%d", result.Body.Name, result.Config.Kind, time.Now().Unix())
	runID := base
	var runDir string
	for n := 1; ; n++ {
		runDir = filepath.Join(s.baseDir, runID)
		err := os.Mkdir(runDir, 0755)
		if err == nil {
			break
		}
		if !os.IsExist(err) {
			return "", err
		}
		runID = fmt.Sprintf("%s_%d", base, n)
	}

	meta := RunMetadata{
		ID:        runID,
		Body:      result.Body.Name,
		Mass:      result.Body.Mass,
		Kind:      string(result.Config.Kind),
		Start:     result.Config.Start,
		Stop:      result.Config.Stop,
		Points:    result.Config.Points,
		Log:       result.Config.Log,
		RFactor:   result.Config.RFactor,
		Timestamp: time.Now(),
		Samples:   len(result.Samples),
		Metrics:   result.Metrics,
	}
	if result.Truncated != nil {
		meta.Truncated = result.Truncated.Error()
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "samples.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write(csvHeader); err != nil {
		return "", err
	}
	for _, sample := range result.Samples {
		row := make([]string, 0, len(csvHeader))
		for _, v := range []float64{sample.X, sample.TauGrav, sample.TauKin, sample.Tau, sample.Apparent} {
			row = append(row, strconv.FormatFloat(v, 'g', 12, 64))
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var runs []RunMetadata
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})

	return runs, nil
}

// LoadSamples reads back the sampled curve of a run.
func (s *Store) LoadSamples(runID string) ([]sweep.Sample, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "samples.csv"))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}

	samples := make([]sweep.Sample, 0, len(records)-1)
	for _, rec := range records[1:] {
		if len(rec) != len(csvHeader) {
			return nil, fmt.Errorf("storage: malformed row in %s", runID)
		}
		vals := make([]float64, len(rec))
		for i, field := range rec {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, err
			}
			vals[i] = v
		}
		samples = append(samples, sweep.Sample{
			X:        vals[0],
			TauGrav:  vals[1],
			TauKin:   vals[2],
			Tau:      vals[3],
			Apparent: vals[4],
		})
	}

	return samples, nil
}
