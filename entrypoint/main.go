package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"

	"text2crisis.com/drc/artifact"
	"text2crisis.com/drc/logger"
	"text2crisis.com/drc/metrics"
	"text2crisis.com/drc/pipeline"
	"text2crisis.com/drc/types"
)

type Config struct {
	ConfigPath string `envconfig:"DRC_CONFIG_PATH"`
	Workers    int    `envconfig:"DRC_WORKERS" default:"0"`
}

const usage = `Usage: drc [-config training.yaml] CORPUS_DB MODEL_FILE

Please provide the filepath of the disaster messages database as the first
argument and the filepath of the model artifact to save as the second
argument.

Example: drc ../data/DisasterResponse.db classifier.json.gz`

func main() {
	logger.SetupLogging()
	fdlLogger := logger.NewLogger("Main")

	configPath := flag.String("config", "", "path to the yaml training config")
	flag.Parse()

	var config Config
	if err := envconfig.Process("", &config); err != nil {
		fdlLogger.Fatal().Caller().Err(err).Msg("Failed to read environment")
		os.Exit(1)
	}
	if *configPath == "" {
		*configPath = config.ConfigPath
	}

	args := flag.Args()
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(1)
	}
	corpusPath, modelPath := args[0], args[1]

	trainingConfig := types.DefaultTrainingConfig()
	if *configPath != "" {
		var err error
		trainingConfig, err = types.LoadTrainingConfig(*configPath)
		if err != nil {
			fdlLogger.Fatal().Caller().Err(err).
				Str("config_path", *configPath).
				Msg("Failed to load training config")
			os.Exit(1)
		}
	}

	fdlLogger.Info().
		Str("corpus_path", corpusPath).
		Str("model_path", modelPath).
		Interface("training_config", trainingConfig).
		Msg("Starting training run")

	out, err := pipeline.Train(pipeline.TrainParams{
		CorpusPath: corpusPath,
		Config:     trainingConfig,
		Workers:    config.Workers,
	})
	if err != nil {
		fdlLogger.Fatal().Caller().Err(err).Msg("Training run failed")
		os.Exit(1)
	}

	renderReport(out.Report, fdlLogger)

	doc, err := out.Model.Export()
	if err != nil {
		fdlLogger.Fatal().Caller().Err(err).Msg("Failed to export model")
		os.Exit(1)
	}
	if err := artifact.Save(modelPath, doc); err != nil {
		fdlLogger.Fatal().Caller().Err(err).Msg("Failed to save model artifact")
		os.Exit(1)
	}

	s3Store, err := artifact.NewS3Store()
	if err != nil {
		fdlLogger.Fatal().Caller().Err(err).Msg("Failed to configure S3 store")
		os.Exit(1)
	}
	if s3Store != nil {
		if err := s3Store.UploadFile(modelPath, filepath.Base(modelPath)); err != nil {
			fdlLogger.Fatal().Caller().Err(err).Msg("Failed to mirror model artifact")
			os.Exit(1)
		}
	}

	fdlLogger.Info().
		Interface("selected_candidate", out.Search.BestCandidate).
		Float64("cv_score", out.Search.BestScore).
		Msg("Trained model saved")
}

// renderReport logs the evaluator's structured bundle: one line per
// category plus the two aggregates.
func renderReport(report metrics.Report, fdlLogger zerolog.Logger) {
	for _, cat := range report.Categories {
		event := fdlLogger.Info().Str("category", cat.Category)
		for _, cls := range cat.Classes {
			prefix := fmt.Sprintf("class_%d_", cls.Class)
			event = event.
				Float64(prefix+"precision", cls.Precision).
				Float64(prefix+"recall", cls.Recall).
				Float64(prefix+"f1", cls.F1).
				Int(prefix+"support", cls.Support)
		}
		event.Float64("fbeta_weighted", cat.FBeta).Msg("Category report")
	}
	fdlLogger.Info().
		Float64("overall_accuracy", report.OverallAccuracy).
		Float64("aggregate_score", report.AggregateScore).
		Msg("Evaluation summary")
}
