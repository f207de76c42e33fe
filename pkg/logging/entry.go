package logging

// Entry represents a single formatted log record on its way to an output.
type Entry struct {
	// Time is the record timestamp in nanoseconds since the Unix epoch.
	Time int64

	// Severity is the resolved level of the record.
	Severity Severity

	// Logger names the sink that produced the record; the file format pads
	// it to a fixed width so interleaved streams stay aligned.
	Logger string

	// Message is the fully formatted message text.
	Message string
}
