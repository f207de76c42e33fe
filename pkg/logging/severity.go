package logging

// Severity represents log levels. The numeric values mirror the external
// geoprocessing runtime's message-severity vocabulary so relayed tool
// messages and ordinary workflow logs share one scale.
type Severity int32

const (
	// NOTSET is reserved: it marks "no threshold set" on a logger and must
	// never be the level of an emitted message. Raw tool codes that would
	// land on or below it are shifted before use (see LevelTable.Resolve).
	NOTSET Severity = 0

	DEBUG      Severity = 10
	INFO       Severity = 20
	DEFINITION Severity = 21
	START      Severity = 22
	STOP       Severity = 23
	WARNING    Severity = 50
	ERROR      Severity = 100
	EMPTY      Severity = 101
	GDBError   Severity = 102
	ABORT      Severity = 200
)

// String provides the human-readable level name from the process level table.
func (s Severity) String() string {
	return Levels().Name(s)
}

// ParseSeverity converts a level name to a Severity.
// Returns INFO for unknown strings.
func ParseSeverity(level string) Severity {
	switch level {
	case "NOTSET":
		return NOTSET
	case "DEBUG":
		return DEBUG
	case "INFO":
		return INFO
	case "DEFINITION":
		return DEFINITION
	case "START":
		return START
	case "STOP":
		return STOP
	case "WARNING":
		return WARNING
	case "ERROR":
		return ERROR
	case "EMPTY":
		return EMPTY
	case "GDB_ERROR":
		return GDBError
	case "ABORT":
		return ABORT
	default:
		return INFO
	}
}
