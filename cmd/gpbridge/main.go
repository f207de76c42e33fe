// Command gpbridge is a starter workflow for invoking external
// geoprocessing tools through the diagnostic bridge. The workflow body is a
// placeholder; the logging, severity, and relay wiring around it is the
// part meant to be kept.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/openterra/gpbridge/pkg/bridge"
	"github.com/openterra/gpbridge/pkg/config"
	"github.com/openterra/gpbridge/pkg/gp"
	"github.com/openterra/gpbridge/pkg/logging"
)

var (
	flagVerbose     bool
	flagVeryVerbose bool
	flagWorkspace   string
	flagOverwrite   bool
	flagConsole     bool
	flagConfig      string
)

var rootCmd = &cobra.Command{
	Use:   "gpbridge",
	Short: "Starter workflow wrapping external geoprocessing tools",
	Long: `gpbridge runs a geoprocessing workflow through the diagnostic bridge:
every wrapped tool call is logged, its severity threshold is scoped, and all
tool messages are relayed in order to the run's log file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := buildConfig()
		if err != nil {
			return err
		}
		return run(cmd.Context(), cfg)
	},
}

func init() {
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "set logger level to info")
	rootCmd.Flags().BoolVar(&flagVeryVerbose, "very-verbose", false, "set logger level to debug")
	rootCmd.Flags().StringVarP(&flagWorkspace, "workspace", "w", "", "workspace path for the external runtime (defaults to the current directory)")
	rootCmd.Flags().BoolVarP(&flagOverwrite, "overwrite", "o", false, "disable output overwriting in the external runtime")
	rootCmd.Flags().BoolVar(&flagConsole, "console", false, "echo both log streams to the console")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "path to a YAML config file")
}

// buildConfig layers the CLI flags over the file (or default) configuration.
func buildConfig() (*config.Config, error) {
	cfg := config.Default()
	if flagConfig != "" {
		loaded, err := config.Load(flagConfig)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	switch {
	case flagVeryVerbose:
		cfg.LogLevel = "DEBUG"
	case flagVerbose:
		cfg.LogLevel = "INFO"
	}
	if flagWorkspace != "" {
		cfg.Workspace = flagWorkspace
	}
	if flagOverwrite {
		cfg.Overwrite = false
	}
	if flagConsole {
		cfg.Console = true
	}

	return cfg, cfg.Validate()
}

// run wires logging, the runtime environment, and the bridge, then executes
// the workflow body.
func run(ctx context.Context, cfg *config.Config) error {
	logger, _, closeLogs, err := logging.Setup(logging.SetupConfig{
		LogFile:       cfg.LogFile,
		WorkflowName:  "gpbridge",
		WorkflowLevel: logging.ParseSeverity(cfg.LogLevel),
		MessageLevel:  logging.ParseSeverity(cfg.MessageLevel),
		Console:       cfg.Console,
	})
	if err != nil {
		return err
	}
	defer closeLogs()

	PrintHeader("Program Started")
	logger.Info(ctx, "Starting workflow")

	rt := gp.NewStubRuntime()
	rt.SetWorkspace(cfg.Workspace)
	rt.SetOverwriteOutput(cfg.Overwrite)
	b := bridge.New(rt)

	// Workflow body: replace with real tool invocations.
	if _, err := b.Invoke(ctx, "CheckEnvironment", cfg.Severity,
		rt.Tool("CheckEnvironment", gp.Message{Code: 0, Text: "environment ready"}),
	); err != nil {
		return err
	}

	logger.Info(ctx, "Success. Exiting...")
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
