package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	gologging "github.com/op/go-logging"

	"evocore/internal/config"
	"evocore/internal/ga"
	"evocore/internal/logging"
	"evocore/internal/rng"
	"evocore/internal/stat"
)

var log = gologging.MustGetLogger("evocore")

func main() {
	configPath := flag.String("config", "configs/default.yaml", "path to config file")
	generations := flag.Int("generations", 100, "number of generations to run")
	flag.Parse()

	format := gologging.MustStringFormatter(`%{time:15:04:05.000} %{level:.4s} %{message}`)
	gologging.SetBackend(gologging.NewBackendFormatter(
		gologging.NewLogBackend(os.Stderr, "", 0), format))

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	log.Infof("evocore - population=%d genotype=%d bounds=[%g,%g] p=%g seed=%d",
		cfg.GA.Population, cfg.GA.GenotypeLen, cfg.GA.GeneMin, cfg.GA.GeneMax,
		cfg.GA.MutationProbability, cfg.Seed)

	src := rng.New(cfg.Seed)

	pop, err := ga.NewRandomPopulation(
		cfg.GA.Population, cfg.GA.GenotypeLen, cfg.GA.GeneMin, cfg.GA.GeneMax, src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building population: %v\n", err)
		os.Exit(1)
	}

	mutator, err := ga.NewGaussianMutation(cfg.GA.MutationProbability)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building mutator: %v\n", err)
		os.Exit(1)
	}

	dist, err := stat.NewLinearDistribution(cfg.Dist.X1, cfg.Dist.X2, cfg.Dist.Y1)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building distribution: %v\n", err)
		os.Exit(1)
	}
	log.Infof("sampling model: %s", dist)

	logger, err := logging.NewLogger(cfg.Logging.CSVPath, cfg.Logging.JSONPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	startTime := time.Now()

	for gen := 1; gen <= *generations; gen++ {
		genSeed := cfg.Seed + int64(gen)

		// 1. Mutate the whole population in parallel
		mutations, err := mutator.MutatePopulation(pop, genSeed, cfg.GA.Workers)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error mutating population: %v\n", err)
			os.Exit(1)
		}

		// 2. Re-evaluate fitness (sum-of-genes objective for the demo)
		for _, ind := range pop.Individuals {
			ind.Fitness = sumOfGenes(ind.Genotype)
		}

		// 3. Log the generation statistics
		s := stat.Evaluate(pop)
		if cfg.Logging.EveryGenSummary {
			logger.LogGeneration(gen, s, mutations)
		}
	}

	elapsed := time.Since(startTime)
	final := stat.Evaluate(pop)
	log.Infof("done: %d generations in %v", *generations, elapsed)
	log.Infof("final: best=%.4f mean=%.4f median=%.4f", final.Max, final.Mean, final.Median)
}

func sumOfGenes(gt ga.Genotype) float64 {
	sum := 0.0
	for _, g := range gt {
		sum += g.Value
	}
	return sum
}
