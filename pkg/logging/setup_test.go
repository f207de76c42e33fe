package logging

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupSharedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")

	workflow, messages, closeLogs, err := Setup(SetupConfig{
		LogFile:       path,
		WorkflowName:  "gpbridge",
		WorkflowLevel: INFO,
		MessageLevel:  NOTSET,
	})
	require.NoError(t, err)

	ctx := context.Background()
	workflow.Info(ctx, "Starting workflow")
	messages.Log(ctx, START, "Executing: Buffer")
	workflow.Debug(ctx, "below the workflow threshold")

	require.NoError(t, closeLogs())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")

	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "[gpbridge        ] [INFO       ]  Starting workflow")
	assert.Contains(t, lines[1], "[ToolMessages    ] [START      ]  Executing: Buffer")
}

func TestSetupInstallsGlobalPair(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")

	workflow, messages, closeLogs, err := Setup(SetupConfig{
		LogFile:       path,
		WorkflowLevel: WARNING,
	})
	require.NoError(t, err)
	defer closeLogs()

	assert.Equal(t, workflow, GetLogger())
	assert.Equal(t, messages, GetMessageLogger())
	assert.Equal(t, "workflow", workflow.Name())
}

func TestSetupBadLogFile(t *testing.T) {
	_, _, _, err := Setup(SetupConfig{
		LogFile: filepath.Join(t.TempDir(), "missing", "run.log"),
	})
	assert.Error(t, err)
}
