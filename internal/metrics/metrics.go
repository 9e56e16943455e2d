package metrics

import (
	"math"
	"time"

	"solarproc/pkg/models"
)

// IntervalMinutes is the fixed sampling interval each reading represents.
// Energy is derived from this assumption, never from timestamp deltas.
const IntervalMinutes = 5

// peakHourLayout matches the zone-less ISO-8601 form the readings use.
const peakHourLayout = "2006-01-02T15:04:05"

// Compute reduces a set of validated readings to a per-batch Summary.
// The caller guarantees len(readings) > 0.
func Compute(readings []models.Reading) models.Summary {
	first := readings[0]
	minV, maxV := first.Voltage, first.Voltage
	minC, maxC := first.Current, first.Current
	minT, maxT := first.Temperature, first.Temperature

	var sumV, sumC, sumT, sumP float64
	for _, r := range readings {
		sumV += r.Voltage
		sumC += r.Current
		sumT += r.Temperature
		sumP += r.Power
		minV = math.Min(minV, r.Voltage)
		maxV = math.Max(maxV, r.Voltage)
		minC = math.Min(minC, r.Current)
		maxC = math.Max(maxC, r.Current)
		minT = math.Min(minT, r.Temperature)
		maxT = math.Max(maxT, r.Temperature)
	}

	n := float64(len(readings))
	avgV := sumV / n

	// Sample standard deviation (n-1 denominator); defined as 0.0 for a
	// single reading so a lone sample never divides by zero.
	std := 0.0
	if len(readings) > 1 {
		var ss float64
		for _, r := range readings {
			d := r.Voltage - avgV
			ss += d * d
		}
		std = math.Sqrt(ss / (n - 1))
	}

	totalEnergyKWh := sumP * (float64(IntervalMinutes) / 60.0) / 1000.0

	return models.Summary{
		Voltage: models.VoltageStats{
			Avg: round2(avgV),
			Min: minV,
			Max: maxV,
			Std: round2(std),
		},
		Current: models.FieldStats{
			Avg: round2(sumC / n),
			Min: minC,
			Max: maxC,
		},
		Temperature: models.FieldStats{
			Avg: round2(sumT / n),
			Min: minT,
			Max: maxT,
		},
		TotalEnergyKWh: round2(totalEnergyKWh),
		PeakPowerHour:  peakPowerHour(readings),
	}
}

// peakPowerHour buckets readings by hour-truncated timestamp and returns the
// hour with the highest mean power. Readings without a timestamp are
// skipped; a tie keeps the first hour seen in input order. Returns nil when
// no reading carries a timestamp.
func peakPowerHour(readings []models.Reading) *string {
	type bucket struct {
		sum float64
		n   int
	}
	buckets := make(map[time.Time]*bucket)
	var order []time.Time

	for _, r := range readings {
		if r.Timestamp.IsZero() {
			continue
		}
		t := r.Timestamp
		hour := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
		b, ok := buckets[hour]
		if !ok {
			b = &bucket{}
			buckets[hour] = b
			order = append(order, hour)
		}
		b.sum += r.Power
		b.n++
	}

	if len(order) == 0 {
		return nil
	}

	peak := order[0]
	best := buckets[peak].sum / float64(buckets[peak].n)
	for _, hour := range order[1:] {
		b := buckets[hour]
		if mean := b.sum / float64(b.n); mean > best {
			best = mean
			peak = hour
		}
	}

	s := peak.Format(peakHourLayout)
	return &s
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
