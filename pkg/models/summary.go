package models

// FieldStats holds the basic statistics for one sensor channel. Avg is
// rounded to 2 decimal places; Min and Max are reported unrounded.
type FieldStats struct {
	Avg float64 `json:"avg"`
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// VoltageStats adds the sample standard deviation, which is 0.0 when the
// batch holds a single reading.
type VoltageStats struct {
	Avg float64 `json:"avg"`
	Min float64 `json:"min"`
	Max float64 `json:"max"`
	Std float64 `json:"std"`
}

// Summary is the per-batch metrics aggregate. It is computed fresh for each
// batch and never mutated after construction.
type Summary struct {
	Voltage        VoltageStats `json:"voltage"`
	Current        FieldStats   `json:"current"`
	Temperature    FieldStats   `json:"temperature"`
	TotalEnergyKWh float64      `json:"total_energy_kwh"`
	// PeakPowerHour is the hour-truncated timestamp with the highest mean
	// power, or null when no reading in the batch carried a timestamp.
	PeakPowerHour *string `json:"peak_power_hour"`
}
