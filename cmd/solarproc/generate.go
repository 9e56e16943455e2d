package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"solarproc/internal/generator"
)

var (
	genHours       int
	genInterval    int
	genNoAnomalies bool
	genOut         string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate synthetic solar panel sensor data",
	Long: `Writes a CSV of simulated solar panel readings with sunrise-to-sunset
intensity patterns and a small share of anomalous readings, for exercising
the processing pipeline.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().IntVar(&genHours, "hours", 0, "hours to simulate (default from config, 24)")
	generateCmd.Flags().IntVar(&genInterval, "interval", 0, "minutes between readings (default from config, 5)")
	generateCmd.Flags().BoolVar(&genNoAnomalies, "no-anomalies", false, "disable anomaly injection")
	generateCmd.Flags().StringVar(&genOut, "out", "", "output CSV path (default <incoming_dir>/solar_data_<timestamp>.csv)")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	out := genOut
	if out == "" {
		name := fmt.Sprintf("solar_data_%s.csv", time.Now().Format("20060102_150405"))
		out = filepath.Join(cfg.GetIncomingDir(), name)
	}

	hours := cfg.GetHours()
	if genHours > 0 {
		hours = genHours
	}
	interval := cfg.GetIntervalMinutes()
	if genInterval > 0 {
		interval = genInterval
	}

	fmt.Printf("=== Data Generation started at %s ===\n", time.Now().Format("2006-01-02 15:04:05 MST"))
	fmt.Printf("Simulation period: %d hours with %d-minute intervals\n", hours, interval)

	stats, err := generator.Generate(out, generator.Options{
		Hours:           hours,
		IntervalMinutes: interval,
		Anomalies:       !genNoAnomalies,
		AnomalyRate:     cfg.GetAnomalyRate(),
	})
	if err != nil {
		return fmt.Errorf("generating data: %w", err)
	}

	info, err := os.Stat(out)
	if err != nil {
		return fmt.Errorf("reading output file info: %w", err)
	}

	fmt.Printf("✓ Generated %d records\n", stats.Records)
	fmt.Printf("  - Output file: %s (%s)\n", out, humanize.Bytes(uint64(info.Size())))
	fmt.Printf("  - Voltage: %.2fV - %.2fV\n", stats.MinVoltage, stats.MaxVoltage)
	fmt.Printf("  - Current: %.2fA - %.2fA\n", stats.MinCurrent, stats.MaxCurrent)
	fmt.Printf("  - Temperature: %.1f°C - %.1f°C\n", stats.MinTemperature, stats.MaxTemperature)

	return nil
}
