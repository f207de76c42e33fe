package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveShiftsCollidingCodes(t *testing.T) {
	table := NewLevelTable(DefaultLevelShift)

	tests := []struct {
		name     string
		raw      int32
		expected Severity
	}{
		{"SentinelShifts", 0, Severity(DefaultLevelShift)},
		{"NegativeShifts", -1, Severity(DefaultLevelShift) - 1},
		{"AboveSentinelUnchanged", 1, Severity(1)},
		{"InfoUnchanged", 20, INFO},
		{"WarningUnchanged", 50, WARNING},
		{"ErrorUnchanged", 100, ERROR},
		{"AbortUnchanged", 200, ABORT},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, table.Resolve(tt.raw))
		})
	}
}

func TestResolveIdempotent(t *testing.T) {
	table := NewLevelTable(DefaultLevelShift)

	for raw := int32(-5); raw <= 210; raw++ {
		once := table.Resolve(raw)
		assert.Equal(t, once, table.Resolve(int32(once)), "raw code %d", raw)
	}
}

func TestResolveCustomShift(t *testing.T) {
	table := NewLevelTable(10)

	assert.Equal(t, Severity(10), table.Resolve(0))
	assert.Equal(t, Severity(10), table.Shift())
}

func TestRegisterToolLevelsIdempotent(t *testing.T) {
	table := NewLevelTable(DefaultLevelShift)
	table.RegisterToolLevels()

	before := make(map[Severity]string, len(table.names))
	for code, name := range table.names {
		before[code] = name
	}

	table.RegisterToolLevels()
	assert.Equal(t, before, table.names)
}

func TestName(t *testing.T) {
	table := NewLevelTable(DefaultLevelShift)
	table.RegisterToolLevels()

	assert.Equal(t, "INFO", table.Name(INFO))
	assert.Equal(t, "GDB_ERROR", table.Name(GDBError))
	assert.Equal(t, "NOTSET", table.Name(NOTSET))
	assert.Equal(t, "LEVEL_42", table.Name(Severity(42)))
}

func TestRegisterShiftsCollidingCode(t *testing.T) {
	table := NewLevelTable(DefaultLevelShift)
	table.Register(Severity(-3), "CUSTOM")

	assert.Equal(t, "CUSTOM", table.Name(Severity(DefaultLevelShift)-3))
}

func TestLevelsReturnsSharedTable(t *testing.T) {
	assert.Same(t, Levels(), Levels())
	assert.Equal(t, "ABORT", Levels().Name(ABORT))
}
