package models

// Processing statuses.
const (
	StatusPending = "pending"
	StatusSuccess = "success"
	StatusError   = "error"
)

// ErrorKind classifies a failed batch so callers can branch on the failure
// mode instead of matching message text. It is not serialized; the JSON
// result carries the human-readable message only.
type ErrorKind int

const (
	KindNone ErrorKind = iota
	KindSourceNotFound
	KindAllRecordsInvalid
	KindMalformedInput
	KindSinkUnavailable
)

// Result is the single structured output produced per input batch. Exactly
// one Result is written per pipeline invocation, success or error.
type Result struct {
	InputFile        string  `json:"input_file"`
	OutputFile       *string `json:"output_file"` // null until success
	ProcessedAt      string  `json:"processed_at"`
	Status           string  `json:"status"`
	RecordsProcessed int     `json:"records_processed"`
	RecordsInvalid   int     `json:"records_invalid"`
	// Metrics is a Summary on success and an empty object on error.
	Metrics any    `json:"metrics"`
	Error   string `json:"error,omitempty"`

	Kind ErrorKind `json:"-"`
}
