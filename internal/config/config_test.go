package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadAppliesValues(t *testing.T) {
	path := writeConfig(t, `
seed: 99
ga:
  population: 50
  genotype_len: 8
  gene_min: -1.5
  gene_max: 1.5
  mutation_probability: 0.2
  workers: 4
dist:
  x1: 0
  x2: 10
  y1: 0.1
logging:
  every_gen_summary: true
  csv_path: out/run.csv
  json_path: out/run.jsonl
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, int64(99), cfg.Seed)
	require.Equal(t, 50, cfg.GA.Population)
	require.Equal(t, 8, cfg.GA.GenotypeLen)
	require.Equal(t, -1.5, cfg.GA.GeneMin)
	require.Equal(t, 1.5, cfg.GA.GeneMax)
	require.Equal(t, 0.2, cfg.GA.MutationProbability)
	require.Equal(t, 4, cfg.GA.Workers)
	require.Equal(t, 10.0, cfg.Dist.X2)
	require.True(t, cfg.Logging.EveryGenSummary)
	require.Equal(t, "out/run.csv", cfg.Logging.CSVPath)
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, "seed: 5\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, int64(5), cfg.Seed)
	require.Equal(t, 200, cfg.GA.Population)
	require.Equal(t, 32, cfg.GA.GenotypeLen)
	require.Equal(t, -10.0, cfg.GA.GeneMin)
	require.Equal(t, 10.0, cfg.GA.GeneMax)
	require.Equal(t, 0.15, cfg.GA.MutationProbability)
	require.Equal(t, 10.0, cfg.Dist.X2)
	require.Equal(t, 0.1, cfg.Dist.Y1)
	require.Equal(t, "runs/run.csv", cfg.Logging.CSVPath)
	require.Equal(t, "runs/run.jsonl", cfg.Logging.JSONPath)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeConfig(t, "seed: [not a number\n")
	_, err := Load(path)
	require.Error(t, err)
}
