package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/chebsolve/internal/bvp"
)

type ExportData struct {
	Problem    string    `json:"problem"`
	Tolerance  float64   `json:"tolerance"`
	Damping    string    `json:"damping"`
	Degree     int       `json:"degree"`
	Iterations int       `json:"iterations"`
	Residual   float64   `json:"residual"`
	Params     []float64 `json:"params,omitempty"`
	X          []float64 `json:"x"`
	U          []float64 `json:"u"`
	DU         []float64 `json:"du"`
	Coeffs     []float64 `json:"coefficients"`
}

func exportData(problem string, cfg bvp.Config, res *bvp.Result, samples int) ExportData {
	if samples < 2 {
		samples = 2
	}
	a, b := res.Solution.Domain()
	du := res.Solution.Deriv()

	data := ExportData{
		Problem:    problem,
		Tolerance:  cfg.Tolerance,
		Damping:    cfg.Damping.String(),
		Degree:     res.Degree,
		Iterations: res.Iterations,
		Residual:   res.Residual,
		Params:     res.Params,
		X:          make([]float64, samples),
		U:          make([]float64, samples),
		DU:         make([]float64, samples),
		Coeffs:     res.Solution.Coeffs(),
	}
	for i := 0; i < samples; i++ {
		x := a + (b-a)*float64(i)/float64(samples-1)
		data.X[i] = x
		data.U[i] = res.Solution.At(x)
		data.DU[i] = du.At(x)
	}
	return data
}

func ExportJSON(path, problem string, cfg bvp.Config, res *bvp.Result, samples int) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return writeJSON(file, problem, cfg, res, samples)
}

func ExportJSONStdout(problem string, cfg bvp.Config, res *bvp.Result, samples int) error {
	return writeJSON(os.Stdout, problem, cfg, res, samples)
}

func writeJSON(w io.Writer, problem string, cfg bvp.Config, res *bvp.Result, samples int) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(exportData(problem, cfg, res, samples))
}
