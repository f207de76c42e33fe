package logging

// SetupConfig describes the process-wide logging wiring: one shared log
// file, an optional console echo, and independent capture thresholds for the
// workflow stream and the relayed tool-message stream.
type SetupConfig struct {
	// LogFile is the path of the shared log file.
	LogFile string

	// WorkflowName names the workflow narration logger.
	WorkflowName string

	// WorkflowLevel is the capture threshold for workflow narration.
	WorkflowLevel Severity

	// MessageLevel is the capture threshold for relayed tool messages.
	// NOTSET captures everything, which is the default.
	MessageLevel Severity

	// Console duplicates both streams to stdout.
	Console bool
}

// Setup builds the workflow and tool-message logger pair sharing a single
// file destination, installs them as the global instances, and ensures the
// tool level names are registered. The returned cleanup func closes the
// file output.
func Setup(cfg SetupConfig) (workflow, messages *Logger, cleanup func() error, err error) {
	Levels().RegisterToolLevels()

	file, err := NewFileOutput(cfg.LogFile)
	if err != nil {
		return nil, nil, nil, err
	}

	outputs := []Output{file}
	if cfg.Console {
		outputs = append(outputs, NewConsoleOutput(false))
	}

	name := cfg.WorkflowName
	if name == "" {
		name = "workflow"
	}

	workflow = NewLogger(Config{
		Name:     name,
		Severity: cfg.WorkflowLevel,
		Outputs:  outputs,
	})
	messages = NewLogger(Config{
		Name:     "ToolMessages",
		Severity: cfg.MessageLevel,
		Outputs:  outputs,
	})

	SetLoggers(workflow, messages)

	return workflow, messages, file.Close, nil
}
