package logging

import (
	"fmt"
	"sync"
)

// DefaultLevelShift is the amount added to raw tool codes that collide with
// the reserved NOTSET sentinel. The external runtime reports some message
// classes at code 0, which a leveled logger cannot represent; shifting moves
// them into the informational band.
const DefaultLevelShift = 20

// toolLevelNames is the fixed mapping between the external runtime's numeric
// severity codes and their display names.
// https://pro.arcgis.com/en/pro-app/latest/arcpy/functions/getallmessages.htm
var toolLevelNames = map[Severity]string{
	DEBUG:      "DEBUG",
	INFO:       "INFO",
	DEFINITION: "DEFINITION",
	START:      "START",
	STOP:       "STOP",
	WARNING:    "WARNING",
	ERROR:      "ERROR",
	EMPTY:      "EMPTY",
	GDBError:   "GDB_ERROR",
	ABORT:      "ABORT",
}

// LevelTable is the bidirectional registry between raw tool severity codes
// and named logging levels. It is write-once, read-many: built at logging
// setup and immutable afterward apart from idempotent re-registration.
type LevelTable struct {
	mu    sync.RWMutex
	names map[Severity]string
	shift Severity
}

// NewLevelTable creates an empty table using the given collision shift.
func NewLevelTable(shift Severity) *LevelTable {
	return &LevelTable{
		names: make(map[Severity]string),
		shift: shift,
	}
}

// RegisterToolLevels installs the full tool severity mapping. Calling it
// multiple times is harmless and leaves the table identical to one call.
func (t *LevelTable) RegisterToolLevels() {
	t.mu.Lock()
	defer t.mu.Unlock()
	for code, name := range toolLevelNames {
		t.names[t.resolveLocked(int32(code))] = name
	}
}

// Register installs a single code→name pair, shifting the code first if it
// would collide with the NOTSET sentinel.
func (t *LevelTable) Register(code Severity, name string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.names[t.resolveLocked(int32(code))] = name
}

// Resolve maps a raw tool code to its logging level. Codes on or below the
// NOTSET sentinel are shifted into a disjoint band; everything else passes
// through unchanged. Resolve is the identity on its own output.
func (t *LevelTable) Resolve(raw int32) Severity {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.resolveLocked(raw)
}

func (t *LevelTable) resolveLocked(raw int32) Severity {
	if Severity(raw) <= NOTSET {
		return Severity(raw) + t.shift
	}
	return Severity(raw)
}

// Name returns the display name for a level. Unregistered levels are still
// valid; they render as LEVEL_<code>.
func (t *LevelTable) Name(s Severity) string {
	if s == NOTSET {
		return "NOTSET"
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	if name, ok := t.names[s]; ok {
		return name
	}
	return fmt.Sprintf("LEVEL_%d", int32(s))
}

// Shift reports the collision shift the table applies in Resolve.
func (t *LevelTable) Shift() Severity {
	return t.shift
}

var (
	defaultTable     *LevelTable
	defaultTableOnce sync.Once
)

// Levels returns the process-wide level table, creating it with the default
// shift and the full tool mapping on first use.
func Levels() *LevelTable {
	defaultTableOnce.Do(func() {
		defaultTable = NewLevelTable(DefaultLevelShift)
		defaultTable.RegisterToolLevels()
	})
	return defaultTable
}
