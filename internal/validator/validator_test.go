package validator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func goodRecord() map[string]string {
	return map[string]string{
		"timestamp":   "2026-08-27T12:05:00",
		"voltage":     "24.5",
		"current":     "5.2",
		"temperature": "35.0",
		"power":       "127.4",
	}
}

func TestValidateAcceptsInRangeRecord(t *testing.T) {
	reading, ok := Validate(goodRecord())
	require.True(t, ok)
	require.Equal(t, 24.5, reading.Voltage)
	require.Equal(t, 5.2, reading.Current)
	require.Equal(t, 35.0, reading.Temperature)
	require.Equal(t, 127.4, reading.Power)
	require.Equal(t, time.Date(2026, 8, 27, 12, 5, 0, 0, time.UTC), reading.Timestamp)
}

func TestValidateBoundariesInclusive(t *testing.T) {
	record := goodRecord()
	record["voltage"] = "18.0"
	record["current"] = "12.0"
	record["temperature"] = "-10.0"
	record["power"] = "0"
	_, ok := Validate(record)
	require.True(t, ok)

	record["voltage"] = "32.0"
	record["current"] = "0"
	record["temperature"] = "80.0"
	_, ok = Validate(record)
	require.True(t, ok)
}

func TestValidateRejectsOutOfRange(t *testing.T) {
	cases := []struct {
		name  string
		field string
		value string
	}{
		{"over-voltage", "voltage", "50"},
		{"under-voltage", "voltage", "12.3"},
		{"excess current", "current", "12.1"},
		{"negative current", "current", "-0.5"},
		{"too cold", "temperature", "-35"},
		{"too hot", "temperature", "80.5"},
		{"negative power", "power", "-1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			record := goodRecord()
			record[tc.field] = tc.value
			_, ok := Validate(record)
			require.False(t, ok)
		})
	}
}

func TestValidateRejectsMissingOrNonNumericField(t *testing.T) {
	record := goodRecord()
	delete(record, "current")
	_, ok := Validate(record)
	require.False(t, ok)

	record = goodRecord()
	record["voltage"] = "not-a-number"
	_, ok = Validate(record)
	require.False(t, ok)

	record = goodRecord()
	record["power"] = ""
	_, ok = Validate(record)
	require.False(t, ok)
}

func TestValidateSingleBadFieldFlipsVerdict(t *testing.T) {
	record := map[string]string{
		"voltage":     "50",
		"current":     "5",
		"temperature": "30",
		"power":       "250",
	}
	_, ok := Validate(record)
	require.False(t, ok)

	record["voltage"] = "25"
	_, ok = Validate(record)
	require.True(t, ok)
}

func TestValidateKeepsRecordWithoutTimestamp(t *testing.T) {
	record := goodRecord()
	delete(record, "timestamp")
	reading, ok := Validate(record)
	require.True(t, ok)
	require.True(t, reading.Timestamp.IsZero())

	record["timestamp"] = "yesterday at noon"
	reading, ok = Validate(record)
	require.True(t, ok)
	require.True(t, reading.Timestamp.IsZero())
}

func TestParseTimestampLayouts(t *testing.T) {
	ts, ok := ParseTimestamp("2026-08-27T06:00:00Z")
	require.True(t, ok)
	require.Equal(t, 6, ts.Hour())

	ts, ok = ParseTimestamp("2026-08-27T06:00:00")
	require.True(t, ok)
	require.Equal(t, 6, ts.Hour())

	_, ok = ParseTimestamp("")
	require.False(t, ok)
}
