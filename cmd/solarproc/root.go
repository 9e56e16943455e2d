package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"solarproc/internal/config"
)

var (
	cfgFile   string
	outputDir string
)

var rootCmd = &cobra.Command{
	Use:   "solarproc",
	Short: "Process solar panel telemetry batches into metrics summaries",
	Long: `SolarProc validates solar panel sensor CSVs, filters out physically
impossible readings, and writes one JSON metrics summary per input batch.
It also ships a synthetic data generator and an MQTT result publisher.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&outputDir, "output-dir", "", "directory for result JSON files (default from config)")
}

// getConfigPath returns the config file path
func getConfigPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	return config.DefaultConfigPath()
}

// loadConfig loads the configuration file
func loadConfig() (*config.Config, error) {
	return config.Load(getConfigPath())
}

// getOutputDir returns the result directory, flag overriding config
func getOutputDir(cfg *config.Config) string {
	if outputDir != "" {
		return outputDir
	}
	return cfg.GetOutputDir()
}

// newLogger builds the diagnostic logger shared by the internal packages
func newLogger() *zap.SugaredLogger {
	logger, _ := zap.NewProduction(zap.AddStacktrace(zap.FatalLevel))
	return logger.Sugar()
}
