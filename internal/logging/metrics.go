// Package logging writes per-generation statistics to CSV and JSONL
// artifacts and mirrors a one-line summary to the console.
package logging

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	gologging "github.com/op/go-logging"

	"evocore/internal/stat"
)

var log = gologging.MustGetLogger("evocore")

// Logger handles generation output and artifact saving
type Logger struct {
	csvPath     string
	jsonPath    string
	csvFile     *os.File
	csvWriter   *csv.Writer
	jsonFile    *os.File
	initialized bool
}

// NewLogger creates a new logger
func NewLogger(csvPath, jsonPath string) (*Logger, error) {
	l := &Logger{
		csvPath:  csvPath,
		jsonPath: jsonPath,
	}

	// Ensure directories exist
	if err := os.MkdirAll(filepath.Dir(csvPath), 0755); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(jsonPath), 0755); err != nil {
		return nil, err
	}

	return l, nil
}

// Init initializes the log files
func (l *Logger) Init() error {
	var err error

	l.csvFile, err = os.Create(l.csvPath)
	if err != nil {
		return err
	}
	l.csvWriter = csv.NewWriter(l.csvFile)

	header := []string{
		"generation", "count", "min", "max", "mean", "variance", "median", "mutations",
	}
	if err := l.csvWriter.Write(header); err != nil {
		return err
	}

	l.jsonFile, err = os.OpenFile(l.jsonPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}

	l.initialized = true
	return nil
}

// Close closes all log files
func (l *Logger) Close() {
	if l.csvWriter != nil {
		l.csvWriter.Flush()
	}
	if l.csvFile != nil {
		l.csvFile.Close()
	}
	if l.jsonFile != nil {
		l.jsonFile.Close()
	}
}

// GenerationSummary holds one generation's statistics record
type GenerationSummary struct {
	Generation int     `json:"generation"`
	Count      int     `json:"count"`
	Min        float64 `json:"min"`
	Max        float64 `json:"max"`
	Mean       float64 `json:"mean"`
	Variance   float64 `json:"variance"`
	Median     float64 `json:"median"`
	Mutations  int     `json:"mutations"`
}

// LogGeneration logs a generation's statistic snapshot
func (l *Logger) LogGeneration(gen int, s stat.Statistic, mutations int) {
	if !l.initialized {
		return
	}

	summary := GenerationSummary{
		Generation: gen,
		Count:      s.Count,
		Min:        s.Min,
		Max:        s.Max,
		Mean:       s.Mean,
		Variance:   s.Variance,
		Median:     s.Median,
		Mutations:  mutations,
	}

	row := []string{
		fmt.Sprintf("%d", gen),
		fmt.Sprintf("%d", s.Count),
		fmt.Sprintf("%.4f", s.Min),
		fmt.Sprintf("%.4f", s.Max),
		fmt.Sprintf("%.4f", s.Mean),
		fmt.Sprintf("%.4f", s.Variance),
		fmt.Sprintf("%.4f", s.Median),
		fmt.Sprintf("%d", mutations),
	}
	l.csvWriter.Write(row)
	l.csvWriter.Flush()

	jsonLine, _ := json.Marshal(summary)
	l.jsonFile.WriteString(string(jsonLine) + "\n")

	log.Infof("gen %4d | n=%d best=%.2f mean=%.2f median=%.2f var=%.2f mutations=%d",
		gen, s.Count, s.Max, s.Mean, s.Median, s.Variance, mutations)
}
