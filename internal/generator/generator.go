package generator

import (
	"encoding/csv"
	"fmt"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Header is the canonical column set produced for the processing pipeline.
var Header = []string{"timestamp", "voltage", "current", "temperature", "power"}

// Options controls one synthetic run. Zero values fall back to a full day of
// 5-minute samples starting at 6 AM today.
type Options struct {
	Hours           int
	IntervalMinutes int
	Anomalies       bool
	AnomalyRate     float64   // default 0.02
	Start           time.Time // default 06:00 local today
	Seed            int64     // 0 seeds from the clock
}

// Stats summarizes a generated batch for operator output.
type Stats struct {
	Records        int
	MinVoltage     float64
	MaxVoltage     float64
	MinCurrent     float64
	MaxCurrent     float64
	MinTemperature float64
	MaxTemperature float64
}

// Generate writes a CSV of simulated solar panel readings. The simulation
// follows a sine-wave sun intensity peaking at noon on a 24V nominal system,
// with panel temperature tracking intensity and P = V*I. When anomalies are
// enabled, roughly AnomalyRate of the rows get an out-of-range fault
// (over-voltage spike, sensor disconnect, or an impossible temperature) so
// downstream validation has something to reject.
func Generate(path string, opts Options) (Stats, error) {
	hours := opts.Hours
	if hours <= 0 {
		hours = 24
	}
	interval := opts.IntervalMinutes
	if interval <= 0 {
		interval = 5
	}
	rate := opts.AnomalyRate
	if rate <= 0 {
		rate = 0.02
	}
	start := opts.Start
	if start.IsZero() {
		now := time.Now()
		start = time.Date(now.Year(), now.Month(), now.Day(), 6, 0, 0, 0, now.Location())
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return Stats{}, fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return Stats{}, fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(Header); err != nil {
		return Stats{}, fmt.Errorf("writing header: %w", err)
	}

	var stats Stats
	count := hours * 60 / interval
	for i := 0; i < count; i++ {
		ts := start.Add(time.Duration(i*interval) * time.Minute)

		// Sun intensity maps 6 AM - 6 PM onto a sine curve peaking at noon.
		intensity := math.Max(0, math.Sin(float64(ts.Hour()-6)*math.Pi/12))

		voltage := 24.0 + intensity*4.0 + uniform(rng, -0.5, 0.5)
		current := math.Max(0, intensity*10.0+uniform(rng, -0.3, 0.3))
		temp := 20.0 + intensity*25.0 + uniform(rng, -2, 2)
		power := voltage * current

		if opts.Anomalies && rng.Float64() < rate {
			switch rng.Intn(3) {
			case 0: // over-voltage spike
				voltage = uniform(rng, 35, 40)
			case 1: // sensor disconnect
				current = 0
				voltage = uniform(rng, 10, 15)
			case 2: // impossible panel temperature
				temp = uniform(rng, -50, -20)
			}
		}

		row := []string{
			ts.Format("2006-01-02T15:04:05"),
			strconv.FormatFloat(voltage, 'f', 2, 64),
			strconv.FormatFloat(current, 'f', 2, 64),
			strconv.FormatFloat(temp, 'f', 1, 64),
			strconv.FormatFloat(power, 'f', 2, 64),
		}
		if err := w.Write(row); err != nil {
			return Stats{}, fmt.Errorf("writing row %d: %w", i+1, err)
		}

		if stats.Records == 0 {
			stats.MinVoltage, stats.MaxVoltage = voltage, voltage
			stats.MinCurrent, stats.MaxCurrent = current, current
			stats.MinTemperature, stats.MaxTemperature = temp, temp
		} else {
			stats.MinVoltage = math.Min(stats.MinVoltage, voltage)
			stats.MaxVoltage = math.Max(stats.MaxVoltage, voltage)
			stats.MinCurrent = math.Min(stats.MinCurrent, current)
			stats.MaxCurrent = math.Max(stats.MaxCurrent, current)
			stats.MinTemperature = math.Min(stats.MinTemperature, temp)
			stats.MaxTemperature = math.Max(stats.MaxTemperature, temp)
		}
		stats.Records++
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return Stats{}, fmt.Errorf("flushing output: %w", err)
	}

	return stats, nil
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
