package models

import "time"

// Reading is a single validated sensor sample from a solar panel. Timestamp
// is the zero value when the source row carried no parseable timestamp.
type Reading struct {
	Timestamp   time.Time `json:"timestamp"`
	Voltage     float64   `json:"voltage"`     // volts
	Current     float64   `json:"current"`     // amperes
	Temperature float64   `json:"temperature"` // degrees Celsius
	Power       float64   `json:"power"`       // watts
}
