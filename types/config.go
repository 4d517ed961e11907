package types

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"text2crisis.com/drc/logger"
)

const (
	DefaultFolds     = 5
	DefaultBeta      = 1.0
	DefaultTestRatio = 0.2
)

// Grid holds the candidate value lists for every searched hyperparameter.
// The search expands their cartesian product. An omitted list falls back to
// a single default value.
type Grid struct {
	NEstimators  []int     `yaml:"n_estimators" json:"n_estimators"`
	LearningRate []float64 `yaml:"learning_rate" json:"learning_rate"`
	MaxFeatures  []int     `yaml:"max_features" json:"max_features"`
	MaxDF        []float64 `yaml:"max_df" json:"max_df"`
}

// Candidate is one point of the grid.
type Candidate struct {
	NEstimators  int     `json:"n_estimators"`
	LearningRate float64 `json:"learning_rate"`
	MaxFeatures  int     `json:"max_features"`
	MaxDF        float64 `json:"max_df"`
}

type TrainingConfig struct {
	Folds     int     `yaml:"folds" json:"folds"`
	Beta      float64 `yaml:"beta" json:"beta"`
	TestRatio float64 `yaml:"test_ratio" json:"test_ratio"`
	Seed      uint64  `yaml:"seed" json:"seed"`
	Grid      Grid    `yaml:"grid" json:"grid"`
}

// DefaultTrainingConfig mirrors the grid the trainer uses when no config
// file is given: a single AdaBoost candidate with 10 estimators.
func DefaultTrainingConfig() TrainingConfig {
	cfg := TrainingConfig{
		Folds:     DefaultFolds,
		Beta:      DefaultBeta,
		TestRatio: DefaultTestRatio,
		Grid: Grid{
			NEstimators: []int{10},
		},
	}
	cfg.applyGridDefaults()
	return cfg
}

func (cfg *TrainingConfig) applyGridDefaults() {
	if len(cfg.Grid.NEstimators) == 0 {
		cfg.Grid.NEstimators = []int{10}
	}
	if len(cfg.Grid.LearningRate) == 0 {
		cfg.Grid.LearningRate = []float64{1.0}
	}
	if len(cfg.Grid.MaxFeatures) == 0 {
		cfg.Grid.MaxFeatures = []int{0}
	}
	if len(cfg.Grid.MaxDF) == 0 {
		cfg.Grid.MaxDF = []float64{1.0}
	}
}

func (cfg TrainingConfig) Validate() error {
	if cfg.Folds < 2 {
		return fmt.Errorf("folds must be at least 2, got %d", cfg.Folds)
	}
	if cfg.Beta <= 0 {
		return fmt.Errorf("beta must be positive, got %v", cfg.Beta)
	}
	if cfg.TestRatio <= 0 || cfg.TestRatio >= 1 {
		return fmt.Errorf("test_ratio must be in (0,1), got %v", cfg.TestRatio)
	}
	for _, n := range cfg.Grid.NEstimators {
		if n < 1 {
			return fmt.Errorf("n_estimators values must be positive, got %d", n)
		}
	}
	for _, lr := range cfg.Grid.LearningRate {
		if lr <= 0 {
			return fmt.Errorf("learning_rate values must be positive, got %v", lr)
		}
	}
	for _, mf := range cfg.Grid.MaxFeatures {
		if mf < 0 {
			return fmt.Errorf("max_features values must be non-negative, got %d", mf)
		}
	}
	for _, df := range cfg.Grid.MaxDF {
		if df <= 0 || df > 1 {
			return errors.New("max_df values must be in (0,1]")
		}
	}
	return nil
}

func LoadTrainingConfig(filePath string) (TrainingConfig, error) {
	fdlLogger := logger.NewLogger("LoadTrainingConfig")

	cfg := TrainingConfig{
		Folds:     DefaultFolds,
		Beta:      DefaultBeta,
		TestRatio: DefaultTestRatio,
	}

	buf, err := os.ReadFile(filePath)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(buf, &cfg); err != nil {
		fdlLogger.Err(err).Str("file_path", filePath).Msg("Failed to parse training config")
		return cfg, err
	}
	cfg.applyGridDefaults()

	if err := cfg.Validate(); err != nil {
		fdlLogger.Err(err).Str("file_path", filePath).Msg("Invalid training config")
		return cfg, err
	}
	return cfg, nil
}
