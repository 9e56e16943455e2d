package validator

import (
	"math"
	"strconv"
	"strings"
	"time"

	"solarproc/pkg/models"
)

// Acceptable physical ranges for a 24V nominal solar panel installation.
// All bounds are inclusive.
const (
	MinVoltage     = 18.0
	MaxVoltage     = 32.0
	MinCurrent     = 0.0
	MaxCurrent     = 12.0
	MinTemperature = -10.0
	MaxTemperature = 80.0
)

// Timestamps arrive either as RFC 3339 or as bare ISO-8601 without a zone.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// Validate coerces one raw CSV row into a typed Reading and checks it
// against the physical sensor ranges. A missing, non-numeric, or
// out-of-range field rejects the row; rejection is the normal path for bad
// data, never an error. The timestamp is optional: a row without a
// parseable timestamp is still valid and carries a zero Timestamp, so it
// participates in the statistics but not in the peak-hour computation.
func Validate(record map[string]string) (models.Reading, bool) {
	voltage, ok := numField(record, "voltage")
	if !ok {
		return models.Reading{}, false
	}
	current, ok := numField(record, "current")
	if !ok {
		return models.Reading{}, false
	}
	temperature, ok := numField(record, "temperature")
	if !ok {
		return models.Reading{}, false
	}
	power, ok := numField(record, "power")
	if !ok {
		return models.Reading{}, false
	}

	if !(voltage >= MinVoltage && voltage <= MaxVoltage) {
		return models.Reading{}, false
	}
	if !(current >= MinCurrent && current <= MaxCurrent) {
		return models.Reading{}, false
	}
	if !(temperature >= MinTemperature && temperature <= MaxTemperature) {
		return models.Reading{}, false
	}
	if power < 0 {
		return models.Reading{}, false
	}

	reading := models.Reading{
		Voltage:     voltage,
		Current:     current,
		Temperature: temperature,
		Power:       power,
	}
	if ts, ok := ParseTimestamp(record["timestamp"]); ok {
		reading.Timestamp = ts
	}
	return reading, true
}

// ParseTimestamp parses an ISO-8601 timestamp, with or without a zone.
func ParseTimestamp(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// numField coerces a named field to a finite float64.
func numField(record map[string]string, name string) (float64, bool) {
	raw, ok := record[name]
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
