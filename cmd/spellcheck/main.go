// Command spellcheck drives the domain-aware spelling correction engine
// from the command line, with train/check/evaluate/stats subcommands.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/rrvrs/spell-checker/internal/config"
	"github.com/rrvrs/spell-checker/internal/editdistance"
	"github.com/rrvrs/spell-checker/internal/pipeline"
	"github.com/rrvrs/spell-checker/pkg/spellcheck"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	logger := buildLogger()
	defer logger.Sync()

	switch os.Args[1] {
	case "train":
		runTrain(logger, os.Args[2:])
	case "check":
		runCheck(logger, os.Args[2:])
	case "evaluate":
		runEvaluate(logger, os.Args[2:])
	case "stats":
		runStats(logger, os.Args[2:])
	default:
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "usage: spellcheck <train|check|evaluate|stats> [flags]")
}

// buildLogger mirrors the teacher's zap bootstrap
// (zap.NewProductionConfig + explicit level), with a rotating file sink
// added via lumberjack the way fulmenhq-gofulmen wires its file output.
func buildLogger() *zap.Logger {
	cfgZap := zap.NewProductionConfig()
	cfgZap.Level.SetLevel(zapcore.InfoLevel)

	encoder := zapcore.NewJSONEncoder(cfgZap.EncoderConfig)

	rotator := &lumberjack.Logger{
		Filename:   "spellcheck.log",
		MaxSize:    50,
		MaxAge:     14,
		MaxBackups: 5,
		Compress:   true,
	}

	core := zapcore.NewTee(
		zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), cfgZap.Level),
		zapcore.NewCore(encoder, zapcore.AddSync(rotator), cfgZap.Level),
	)

	return zap.New(core)
}

func loadConfigOrExit(logger *zap.Logger, path string) *config.Config {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}
	return cfg
}

func runTrain(logger *zap.Logger, args []string) {
	fs := flag.NewFlagSet("train", flag.ExitOnError)
	configPath := fs.String("config", "config.yaml", "path to configuration file")
	modelPath := fs.String("model", "model.gob", "path to write the trained model")
	fs.Parse(args)

	cfg := loadConfigOrExit(logger, *configPath)

	engine, err := spellcheck.NewEngine(cfg, logger)
	if err != nil {
		logger.Fatal("failed to construct engine", zap.Error(err))
	}
	if err := engine.Train(); err != nil {
		logger.Fatal("failed to train model", zap.Error(err))
	}
	if err := engine.Save(*modelPath); err != nil {
		logger.Fatal("failed to save model", zap.Error(err))
	}

	logger.Info("training complete",
		zap.Int("vocabulary_size", engine.VocabularySize()),
		zap.String("model_path", *modelPath))
}

func runCheck(logger *zap.Logger, args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	configPath := fs.String("config", "config.yaml", "path to configuration file")
	modelPath := fs.String("model", "model.gob", "path to a trained model")
	text := fs.String("text", "", "text to check")
	modelType := fs.String("model-type", "bigram", "language model to use: bigram or trigram")
	fs.Parse(args)

	if *text == "" {
		logger.Fatal("check requires -text")
	}

	cfg := loadConfigOrExit(logger, *configPath)

	engine, err := spellcheck.NewEngine(cfg, logger)
	if err != nil {
		logger.Fatal("failed to construct engine", zap.Error(err))
	}
	if err := engine.Load(*modelPath); err != nil {
		logger.Fatal("failed to load model", zap.Error(err))
	}

	result, err := engine.CheckText(*text, *modelType)
	if err != nil {
		logger.Fatal("check_text failed", zap.Error(err))
	}

	printJSON(result)
}

func runEvaluate(logger *zap.Logger, args []string) {
	fs := flag.NewFlagSet("evaluate", flag.ExitOnError)
	configPath := fs.String("config", "config.yaml", "path to configuration file")
	modelPath := fs.String("model", "model.gob", "path to a trained model")
	testSetPath := fs.String("test-set", "", "path to a tab-separated original\\texpected test file")
	fs.Parse(args)

	if *testSetPath == "" {
		logger.Fatal("evaluate requires -test-set")
	}

	cfg := loadConfigOrExit(logger, *configPath)

	engine, err := spellcheck.NewEngine(cfg, logger)
	if err != nil {
		logger.Fatal("failed to construct engine", zap.Error(err))
	}
	if err := engine.Load(*modelPath); err != nil {
		logger.Fatal("failed to load model", zap.Error(err))
	}

	pairs, err := readTestSet(*testSetPath)
	if err != nil {
		logger.Fatal("failed to read test set", zap.Error(err))
	}

	result, err := engine.Evaluate(pairs)
	if err != nil {
		logger.Fatal("evaluate failed", zap.Error(err))
	}

	printJSON(result)

	if len(pairs) > 0 {
		analyzePairs := make([]editdistance.CorrectionPair, len(pairs))
		for i, p := range pairs {
			analyzePairs[i] = editdistance.CorrectionPair{Original: p.Original, Corrected: p.Expected}
		}
		printJSON(engine.AnalyzeErrorPatterns(analyzePairs))
	}
}

func runStats(logger *zap.Logger, args []string) {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	configPath := fs.String("config", "config.yaml", "path to configuration file")
	modelPath := fs.String("model", "model.gob", "path to a trained model")
	fs.Parse(args)

	cfg := loadConfigOrExit(logger, *configPath)

	engine, err := spellcheck.NewEngine(cfg, logger)
	if err != nil {
		logger.Fatal("failed to construct engine", zap.Error(err))
	}
	if err := engine.Load(*modelPath); err != nil {
		logger.Fatal("failed to load model", zap.Error(err))
	}

	printJSON(engine.Statistics())
}

func readTestSet(path string) ([]pipeline.CorrectionPair, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var pairs []pipeline.CorrectionPair
	line := ""
	for _, r := range string(data) {
		if r == '\n' {
			if p, ok := parseTestLine(line); ok {
				pairs = append(pairs, p)
			}
			line = ""
			continue
		}
		line += string(r)
	}
	if p, ok := parseTestLine(line); ok {
		pairs = append(pairs, p)
	}
	return pairs, nil
}

func parseTestLine(line string) (pipeline.CorrectionPair, bool) {
	for i := 0; i < len(line); i++ {
		if line[i] == '\t' {
			return pipeline.CorrectionPair{Original: line[:i], Expected: line[i+1:]}, true
		}
	}
	return pipeline.CorrectionPair{}, false
}

func printJSON(v interface{}) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		log.Fatalf("failed to encode output: %v", err)
	}
}
