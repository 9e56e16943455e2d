package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"solarproc/internal/pipeline"
	"solarproc/pkg/models"
)

var processCmd = &cobra.Command{
	Use:   "process [file-or-dir]",
	Short: "Process sensor CSV batches into metrics results",
	Long: `Validates each CSV batch, aggregates metrics over the valid readings, and
writes one result JSON per input file. With a directory argument every *.csv
file in it is processed; a single batch's failure never stops the run.
Without an argument the configured incoming directory is scanned.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runProcess,
}

func init() {
	rootCmd.AddCommand(processCmd)
}

func runProcess(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	target := cfg.GetIncomingDir()
	if len(args) > 0 {
		target = args[0]
	}

	logger := newLogger()
	defer logger.Sync()

	p := pipeline.New(getOutputDir(cfg), logger)

	// A missing single file still goes through the pipeline so it produces
	// its error result; only directories are expanded here.
	files := []string{target}
	if info, err := os.Stat(target); err == nil && info.IsDir() {
		files, err = filepath.Glob(filepath.Join(target, "*.csv"))
		if err != nil {
			return fmt.Errorf("scanning %s: %w", target, err)
		}
		if len(files) == 0 {
			fmt.Printf("No CSV files found in %s\n", target)
			fmt.Println("Run: solarproc generate")
			return nil
		}
		sort.Strings(files)
	}

	fmt.Printf("=== Processing started at %s ===\n", time.Now().Format("2006-01-02 15:04:05 MST"))

	succeeded := 0
	for _, file := range files {
		fmt.Printf("Processing: %s\n", filepath.Base(file))

		result := p.Process(file)
		if result.Status == models.StatusSuccess {
			succeeded++
			fmt.Printf("  ✓ %d records processed, %d invalid\n", result.RecordsProcessed, result.RecordsInvalid)
		} else {
			fmt.Printf("  ✗ %s\n", result.Error)
		}
	}

	fmt.Println("----------------------------------------")
	fmt.Printf("Done: %d/%d batches succeeded\n", succeeded, len(files))

	return nil
}
