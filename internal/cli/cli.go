// Package cli implements the validate-layout command-line interface.
//
// The root command reads one LayoutSpec JSON document, from a file or from
// stdin, and writes every rule violation to stderr, one per line. The exit
// status tells callers whether the layout passed (see [ExitCode]).
//
// # Commands
//
//   - validate-layout [path]: validate a layout (stdin when path is omitted or "-")
//   - profiles: print the platform profiles and thresholds in effect
//   - completion: generate shell completion scripts
//
// # Logging
//
// --verbose (-v) enables debug logging through charmbracelet/log. Debug
// output goes to stderr next to the violations, so it is off by default and
// a passing layout produces no output at all.
package cli

import (
	"context"
	stderrors "errors"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/layoutrail/pkg/buildinfo"
	"github.com/matzehuels/layoutrail/pkg/errors"
	"github.com/matzehuels/layoutrail/pkg/observability"
	"github.com/matzehuels/layoutrail/pkg/rules"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "validate-layout"

	// rulesFileName is looked up in the config directory when --rules is not given.
	rulesFileName = "rules.toml"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// Exit statuses returned by [ExitCode].
const (
	ExitValid       = 0
	ExitViolations  = 1
	ExitError       = 2
	ExitInterrupted = 130
)

// ErrViolations is returned when a layout was read and validated
// successfully but broke at least one rule. The violations themselves have
// already been written to stderr.
var ErrViolations = stderrors.New("layout has rule violations")

// ExitCode maps the result of a command to a process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitValid
	case stderrors.Is(err, ErrViolations):
		return ExitViolations
	case stderrors.Is(err, context.Canceled):
		return ExitInterrupted
	default:
		return ExitError
	}
}

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	In  io.Reader
	Out io.Writer
	Err io.Writer

	rulesPath string
}

// New creates a new CLI instance whose logger and violation output go to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		In:     os.Stdin,
		Out:    os.Stdout,
		Err:    w,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// EnableDebug switches to debug logging and registers the logging
// validation hooks, so each run also reports its format and timing.
func (c *CLI) EnableDebug() {
	c.SetLogLevel(LogDebug)
	observability.SetValidationHooks(logHooks{})
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName + " [layout.json]",
		Short: "Check a social creative layout against platform safe zones",
		Long: `Check a LayoutSpec JSON document against the hard rails of its platform:
safe-zone margins for the format's aspect ratio, minimum CTA size and minimum
legal text scale.

The layout is read from the given file, or from stdin when no file (or "-")
is given. Each violation is written to stderr on its own line. The exit
status is 0 when the layout passes, 1 when it has violations and 2 when it
could not be read.`,
		Example: `  validate-layout creative.json
  cat creative.json | validate-layout
  validate-layout --rules team-rules.toml creative.json`,
		Version:       buildinfo.Version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			input := ""
			if len(args) == 1 {
				input = args[0]
			}
			return c.runValidate(cmd.Context(), input)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.SetIn(c.In)
	root.SetOut(c.Out)
	root.SetErr(c.Err)

	root.PersistentFlags().StringVar(&c.rulesPath, "rules", "", "TOML rules file (default: $XDG_CONFIG_HOME/"+appName+"/"+rulesFileName+" if present)")

	root.AddCommand(c.profilesCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Rules
// =============================================================================

// loadRules returns the ruleset selected by --rules, the rules file in the
// config directory if one exists, or the built-in defaults.
//
// The config directory file is picked up without being named on the command
// line, so it may only add profiles. Threshold overrides there are rejected
// rather than applied to every run.
func (c *CLI) loadRules() (*rules.Ruleset, error) {
	path := c.rulesPath
	if path == "" {
		path = defaultRulesPath()
		if path == "" {
			c.Logger.Debug("Using built-in rules")
			return rules.Default(), nil
		}
	}

	rs, err := rules.LoadFile(path)
	if err != nil {
		return nil, err
	}
	if c.rulesPath == "" && !rs.DefaultThresholds() {
		return nil, errors.New(errors.ErrCodeInvalidConfig,
			"%s overrides the CTA or legal thresholds; pass it with --rules to apply them", path)
	}
	c.Logger.Debug("Loaded rules", "path", path)
	return rs, nil
}

// defaultRulesPath returns the rules file in the config directory, or ""
// when there is none.
func defaultRulesPath() string {
	dir, err := configDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(dir, rulesFileName)
	if info, err := os.Stat(path); err != nil || info.IsDir() {
		return ""
	}
	return path
}

// =============================================================================
// Paths
// =============================================================================

// configDir returns the config directory using XDG standard (~/.config/validate-layout/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}
