// Package store persists computed Floquet spectra under a data directory,
// one run per subdirectory with JSON metadata and a CSV spectrum.
package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math/cmplx"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/floq/internal/floquet"
)

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
	ID         string    `json:"id"`
	System     string    `json:"system"`
	Method     string    `json:"method"`
	Solver     string    `json:"solver"`
	Slices     int       `json:"slices"`
	K          int       `json:"k"`
	Timestamp  time.Time `json:"timestamp"`
	Converged  bool      `json:"converged"`
	Iterations int       `json:"iterations"`
	Unstable   int       `json:"unstable"`
}

func (s *Store) Save(system, method, solver string, slices int, res *floquet.Result) (string, error) {
	runID := fmt.Sprintf("%s_%d", system, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:         runID,
		System:     system,
		Method:     method,
		Solver:     solver,
		Slices:     slices,
		K:          len(res.Exponents),
		Timestamp:  time.Now(),
		Converged:  res.Converged,
		Iterations: res.Stats.Iterations,
		Unstable:   res.Unstable(1e-8),
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

	csvFile, err := os.Create(filepath.Join(runDir, "spectrum.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"index", "re_exponent", "im_exponent", "modulus"}); err != nil {
		return "", err
	}
	for i, e := range res.Exponents {
		row := []string{
			strconv.Itoa(i),
			strconv.FormatFloat(real(e), 'g', 17, 64),
			strconv.FormatFloat(imag(e), 'g', 17, 64),
			strconv.FormatFloat(cmplx.Abs(cmplx.Exp(e)), 'g', 17, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		meta, err := s.Load(e.Name())
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

// Spectrum reads back a stored run's exponents.
func (s *Store) Spectrum(runID string) ([]complex128, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "spectrum.csv"))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < 1 {
		return nil, nil
	}

	out := make([]complex128, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) < 3 {
			continue
		}
		re, err1 := strconv.ParseFloat(row[1], 64)
		im, err2 := strconv.ParseFloat(row[2], 64)
		if err1 != nil || err2 != nil {
			continue
		}
		out = append(out, complex(re, im))
	}
	return out, nil
}
