package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/chebsolve/internal/bvp"
	"github.com/san-kum/chebsolve/internal/cheb"
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
	ID            string    `json:"id"`
	Problem       string    `json:"problem"`
	Timestamp     time.Time `json:"timestamp"`
	Tolerance     float64   `json:"tolerance"`
	MaxIterations int       `json:"max_iterations"`
	Damping       string    `json:"damping"`
	Degree        int       `json:"degree"`
	Iterations    int       `json:"iterations"`
	Residual      float64   `json:"residual"`
	Params        []float64 `json:"params,omitempty"`
}

// Save writes one run directory holding metadata.json and solution.csv. The
// CSV samples the solution and its derivative on a uniform grid of the given
// size.
func (s *Store) Save(problem string, cfg bvp.Config, res *bvp.Result, samples int) (string, error) {
	runID := fmt.Sprintf("%s_%d", problem, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:            runID,
		Problem:       problem,
		Timestamp:     time.Now(),
		Tolerance:     cfg.Tolerance,
		MaxIterations: cfg.MaxIterations,
		Damping:       cfg.Damping.String(),
		Degree:        res.Degree,
		Iterations:    res.Iterations,
		Residual:      res.Residual,
		Params:        res.Params,
	}

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvPath := filepath.Join(runDir, "solution.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"x", "u", "du"}); err != nil {
		return "", err
	}

	if samples < 2 {
		samples = 2
	}
	a, b := res.Solution.Domain()
	du := res.Solution.Deriv()
	for i := 0; i < samples; i++ {
		x := a + (b-a)*float64(i)/float64(samples-1)
		row := []string{
			strconv.FormatFloat(x, 'g', 17, 64),
			strconv.FormatFloat(res.Solution.At(x), 'g', 17, 64),
			strconv.FormatFloat(du.At(x), 'g', 17, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	coeffPath := filepath.Join(runDir, "coefficients.csv")
	if err := writeCoeffs(coeffPath, res.Solution); err != nil {
		return "", err
	}

	return runID, nil
}

func writeCoeffs(path string, u *cheb.Func) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	if err := w.Write([]string{"k", "c"}); err != nil {
		return err
	}
	for k, c := range u.Coeffs() {
		row := []string{strconv.Itoa(k), strconv.FormatFloat(c, 'g', 17, 64)}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadSolution rebuilds the stored expansion from coefficients.csv. The
// metadata records the collocation domain only through the samples, so the
// domain comes from the first and last rows of solution.csv.
func (s *Store) LoadSolution(runID string) (*cheb.Func, error) {
	xs, _, _, err := s.LoadSamples(runID)
	if err != nil {
		return nil, err
	}
	if len(xs) < 2 {
		return nil, fmt.Errorf("storage: run %s has no samples", runID)
	}
	a, b := xs[0], xs[len(xs)-1]

	coeffPath := filepath.Join(s.baseDir, runID, "coefficients.csv")
	file, err := os.Open(coeffPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	coeffs := make([]float64, 0, len(records))
	for i := 1; i < len(records); i++ {
		c, err := strconv.ParseFloat(records[i][1], 64)
		if err != nil {
			return nil, fmt.Errorf("storage: bad coefficient in run %s: %w", runID, err)
		}
		coeffs = append(coeffs, c)
	}

	return cheb.NewFromCoeffs(coeffs, a, b)
}

// LoadSamples reads the sampled solution values from solution.csv.
func (s *Store) LoadSamples(runID string) (xs, us, dus []float64, err error) {
	csvPath := filepath.Join(s.baseDir, runID, "solution.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, nil, err
	}

	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) < 3 {
			continue
		}
		x, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		u, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			continue
		}
		du, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			continue
		}
		xs = append(xs, x)
		us = append(us, u)
		dus = append(dus, du)
	}

	return xs, us, dus, nil
}
