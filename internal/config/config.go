package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure
type Config struct {
	Seed    int64      `yaml:"seed"`
	GA      GAConfig   `yaml:"ga"`
	Dist    DistConfig `yaml:"dist"`
	Logging LogConfig  `yaml:"logging"`
}

// GAConfig defines population and mutation parameters
type GAConfig struct {
	Population          int     `yaml:"population"`
	GenotypeLen         int     `yaml:"genotype_len"`
	GeneMin             float64 `yaml:"gene_min"`
	GeneMax             float64 `yaml:"gene_max"`
	MutationProbability float64 `yaml:"mutation_probability"`
	Workers             int     `yaml:"workers"`
}

// DistConfig defines the synthetic sampling distribution
type DistConfig struct {
	X1 float64 `yaml:"x1"`
	X2 float64 `yaml:"x2"`
	Y1 float64 `yaml:"y1"`
}

// LogConfig defines logging parameters
type LogConfig struct {
	EveryGenSummary bool   `yaml:"every_gen_summary"`
	CSVPath         string `yaml:"csv_path"`
	JSONPath        string `yaml:"json_path"`
}

// Load reads a YAML config file and returns a Config
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	// Apply defaults
	applyDefaults(cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Seed == 0 {
		cfg.Seed = 1337
	}
	if cfg.GA.Population == 0 {
		cfg.GA.Population = 200
	}
	if cfg.GA.GenotypeLen == 0 {
		cfg.GA.GenotypeLen = 32
	}
	if cfg.GA.GeneMin == 0 && cfg.GA.GeneMax == 0 {
		cfg.GA.GeneMin = -10
		cfg.GA.GeneMax = 10
	}
	if cfg.GA.MutationProbability == 0 {
		cfg.GA.MutationProbability = 0.15
	}
	if cfg.Dist.X1 == 0 && cfg.Dist.X2 == 0 {
		cfg.Dist.X2 = 10
	}
	if cfg.Dist.Y1 == 0 {
		cfg.Dist.Y1 = 0.1
	}
	if cfg.Logging.CSVPath == "" {
		cfg.Logging.CSVPath = "runs/run.csv"
	}
	if cfg.Logging.JSONPath == "" {
		cfg.Logging.JSONPath = "runs/run.jsonl"
	}
}
