package pipeline

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"solarproc/internal/metrics"
	"solarproc/internal/validator"
	"solarproc/pkg/models"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Pipeline processes one CSV batch at a time. The output directory and the
// clock are explicit so runs are deterministic under test. Batches are
// independent: concurrent pipelines against different source files are safe,
// the same source/destination pair is last-write-wins.
type Pipeline struct {
	OutputDir string
	Now       func() time.Time

	log *zap.SugaredLogger
}

// New creates a pipeline writing results into outputDir.
func New(outputDir string, logger *zap.SugaredLogger) *Pipeline {
	return &Pipeline{
		OutputDir: outputDir,
		Now:       time.Now,
		log:       logger,
	}
}

// Process runs the full validate-aggregate-emit pipeline for one input file.
// It never returns a Go error: every outcome, including a missing source, is
// reported through the returned Result, and the same Result is written as
// <source-stem>_result.json in the output directory. Exactly one write per
// invocation, success or error.
func (p *Pipeline) Process(inputFile string) models.Result {
	result := models.Result{
		InputFile:   filepath.Base(inputFile),
		ProcessedAt: p.Now().UTC().Format(time.RFC3339),
		Status:      models.StatusPending,
		Metrics:     struct{}{},
	}

	outputName := resultName(inputFile)
	outputPath := filepath.Join(p.OutputDir, outputName)

	if err := os.MkdirAll(p.OutputDir, 0755); err != nil {
		p.fail(&result, models.KindSinkUnavailable, fmt.Sprintf("creating output directory: %v", err))
		return result
	}

	valid := p.ingest(inputFile, &result)
	if result.Status == models.StatusPending {
		if len(valid) == 0 {
			p.fail(&result, models.KindAllRecordsInvalid, "no valid records found in CSV")
		} else {
			result.Status = models.StatusSuccess
			result.RecordsProcessed = len(valid)
			result.Metrics = metrics.Compute(valid)
			result.OutputFile = &outputName
		}
	}

	p.write(outputPath, result)
	return result
}

// ingest streams the source CSV through the validator. Invalid rows are
// counted on the result and never abort the batch; structural faults
// (missing file, inconsistent row width) mark the whole batch failed.
func (p *Pipeline) ingest(inputFile string, result *models.Result) []models.Reading {
	src, err := os.Open(inputFile)
	if err != nil {
		if os.IsNotExist(err) {
			p.fail(result, models.KindSourceNotFound, fmt.Sprintf("input file not found: %s", inputFile))
		} else {
			p.fail(result, models.KindSourceNotFound, fmt.Sprintf("opening input file: %v", err))
		}
		return nil
	}
	defer src.Close()

	reader := csv.NewReader(src)

	header, err := reader.Read()
	if err == io.EOF {
		return nil
	}
	if err != nil {
		p.fail(result, models.KindMalformedInput, fmt.Sprintf("reading CSV header: %v", err))
		return nil
	}

	// Header names are exact; column order is irrelevant.
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}

	var valid []models.Reading
	row := 1
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			// Rows consumed before the structural fault stay counted.
			result.RecordsProcessed = len(valid)
			p.fail(result, models.KindMalformedInput, fmt.Sprintf("reading CSV row %d: %v", row, err))
			return nil
		}

		record := make(map[string]string, len(columns))
		for name, i := range columns {
			if i < len(fields) {
				record[name] = fields[i]
			}
		}

		reading, ok := validator.Validate(record)
		if !ok {
			result.RecordsInvalid++
			p.log.Debugw("rejected record", "file", result.InputFile, "row", row)
			continue
		}
		valid = append(valid, reading)
	}

	return valid
}

func (p *Pipeline) fail(result *models.Result, kind models.ErrorKind, msg string) {
	result.Status = models.StatusError
	result.Kind = kind
	result.Error = msg
	p.log.Warnw("batch failed", "file", result.InputFile, "error", msg)
}

// write persists the result JSON. A sink failure is logged, not raised; the
// in-memory Result stays the caller's source of truth.
func (p *Pipeline) write(path string, result models.Result) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		p.log.Errorw("encoding result", "file", result.InputFile, "error", err)
		return
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		p.log.Errorw("writing result", "path", path, "error", err)
	}
}

// resultName derives the deterministic output file name from the source's
// base name, e.g. solar_data_1.csv -> solar_data_1_result.json.
func resultName(inputFile string) string {
	base := filepath.Base(inputFile)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return stem + "_result.json"
}
