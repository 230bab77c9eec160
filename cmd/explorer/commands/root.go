// Package commands implements the explorer command line.
package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/GriffinCanCode/explorer/internal/app"
	"github.com/GriffinCanCode/explorer/internal/cli/output"
	"github.com/GriffinCanCode/explorer/internal/infrastructure/config"
	"github.com/GriffinCanCode/explorer/internal/types"
	"github.com/spf13/cobra"
)

// Flags holds the global flag values.
var Flags struct {
	Dir      string
	Output   string
	LogLevel string
	NoColor  bool
}

// session is built once per invocation by the root command.
var session *app.App

var rootCmd = &cobra.Command{
	Use:   "explorer",
	Short: "Browse and manage files from the terminal",
	Long: `explorer lists, searches and manages files relative to a current directory.

Every command runs against the directory given by --dir (or EXPLORER_START_DIR,
or the process working directory). Use "explorer shell" for an interactive
session in which cd persists between commands.

Use "explorer [command] --help" for more information about a command.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if session != nil {
			_ = session.Close()
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

// GetRootCmd returns the root command for testing purposes.
func GetRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.PersistentFlags().StringVar(&Flags.Dir, "dir", "", "Start directory (default: working directory)")
	rootCmd.PersistentFlags().StringVarP(&Flags.Output, "output", "o", "", "Output format (table|json|yaml|toml)")
	rootCmd.PersistentFlags().StringVar(&Flags.LogLevel, "log-level", "", "Log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().BoolVar(&Flags.NoColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(lsCmd)
	rootCmd.AddCommand(touchCmd)
	rootCmd.AddCommand(mkdirCmd)
	rootCmd.AddCommand(cpCmd)
	rootCmd.AddCommand(mvCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(globCmd)
	rootCmd.AddCommand(duCmd)
	rootCmd.AddCommand(statCmd)
	rootCmd.AddCommand(chmodCmd)
	rootCmd.AddCommand(shellCmd)

	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// setup loads configuration, applies flag overrides and builds the session.
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if Flags.Dir != "" {
		cfg.Explorer.StartDir = Flags.Dir
	}
	if Flags.Output != "" {
		cfg.Explorer.Output = Flags.Output
	}
	if Flags.LogLevel != "" {
		cfg.Logging.Level = Flags.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	session, err = app.New(cfg)
	return err
}

func printer(cmd *cobra.Command) *output.Printer {
	format, err := output.ParseFormat(session.Config.Explorer.Output)
	if err != nil {
		format = output.FormatTable
	}
	return output.NewPrinter(cmd.OutOrStdout(), format, !Flags.NoColor)
}

// run executes a tool and prints its result with view. A failed operation
// is reported as an error so the process exits non-zero.
func run(cmd *cobra.Command, toolID string, params map[string]interface{}, view func(*types.Result) output.TableRenderer) error {
	result, err := session.Execute(cmdContext(cmd), toolID, params)
	if err != nil {
		return err
	}

	var renderer output.TableRenderer
	if result.Success && view != nil {
		renderer = view(result)
	}
	if err := printer(cmd).Result(result, renderer); err != nil {
		return err
	}
	if !result.Success {
		return errFailed
	}
	return nil
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// errFailed marks a failure that has already been printed.
var errFailed = errors.New("operation failed")

// Reported reports whether err was already printed as a result.
func Reported(err error) bool {
	return errors.Is(err, errFailed)
}

// PrintErr prints an error message to stderr.
func PrintErr(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
