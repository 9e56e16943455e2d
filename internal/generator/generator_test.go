package generator

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"solarproc/internal/validator"
)

func fixedStart() time.Time {
	return time.Date(2026, 8, 27, 6, 0, 0, 0, time.UTC)
}

func readRows(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestGenerateRecordCountAndHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batch.csv")
	stats, err := Generate(path, Options{
		Hours:           2,
		IntervalMinutes: 5,
		Start:           fixedStart(),
		Seed:            1,
	})
	require.NoError(t, err)
	require.Equal(t, 24, stats.Records)

	rows := readRows(t, path)
	require.Len(t, rows, 25) // header + 24 samples
	require.Equal(t, Header, rows[0])
	require.Equal(t, "2026-08-27T06:00:00", rows[1][0])
	require.Equal(t, "2026-08-27T07:55:00", rows[24][0])
}

func TestGenerateDeterministicWithSeed(t *testing.T) {
	dir := t.TempDir()
	opts := Options{Hours: 3, IntervalMinutes: 5, Anomalies: true, Start: fixedStart(), Seed: 42}

	a := filepath.Join(dir, "a.csv")
	b := filepath.Join(dir, "b.csv")
	_, err := Generate(a, opts)
	require.NoError(t, err)
	_, err = Generate(b, opts)
	require.NoError(t, err)

	dataA, err := os.ReadFile(a)
	require.NoError(t, err)
	dataB, err := os.ReadFile(b)
	require.NoError(t, err)
	require.Equal(t, dataA, dataB)
}

func TestGenerateCleanDataPassesValidation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clean.csv")
	_, err := Generate(path, Options{
		Hours:           24,
		IntervalMinutes: 5,
		Anomalies:       false,
		Start:           fixedStart(),
		Seed:            7,
	})
	require.NoError(t, err)

	rows := readRows(t, path)
	header := rows[0]
	for _, row := range rows[1:] {
		record := make(map[string]string, len(header))
		for i, name := range header {
			record[name] = row[i]
		}
		_, ok := validator.Validate(record)
		require.True(t, ok, "row %v should validate", row)
	}
}

func TestGenerateStatsTrackRanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ranged.csv")
	stats, err := Generate(path, Options{
		Hours:           12,
		IntervalMinutes: 5,
		Start:           fixedStart(),
		Seed:            3,
	})
	require.NoError(t, err)
	require.LessOrEqual(t, stats.MinVoltage, stats.MaxVoltage)
	require.LessOrEqual(t, stats.MinCurrent, stats.MaxCurrent)
	require.LessOrEqual(t, stats.MinTemperature, stats.MaxTemperature)
	require.GreaterOrEqual(t, stats.MinCurrent, 0.0)
}
