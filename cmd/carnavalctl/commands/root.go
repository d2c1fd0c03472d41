// Package commands implements carnavalctl's Cobra command tree.
//
// Grounded on marmos91-dittofs/cmd/dittofs/commands/root.go's rootCmd +
// Execute() pattern (SilenceUsage/SilenceErrors, persistent --verbose flag,
// subcommands registered from init()).
package commands

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/ubiqx-org/carnaval"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "carnavalctl",
	Short: "Exercise the carnaval NBT/SMB wire-format codecs from the command line",
	Long: `carnavalctl is a demonstration harness over the carnaval module's
NetBIOS-over-TCP/IP and early-SMB codec packages. Each invocation is tagged
with a correlation ID for its log lines; it performs no network I/O of its
own — it only composes and parses the byte strings these protocols exchange.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the command tree. Called once from main.main.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug-level logging")

	rootCmd.AddCommand(nameCmd)
	rootCmd.AddCommand(dgramCmd)
	rootCmd.AddCommand(smb1Cmd)
	rootCmd.AddCommand(urlCmd)
}

// newLogger returns a per-invocation Logger tagged with a fresh correlation
// ID, quiet unless --verbose was given.
func newLogger(component string) carnaval.Logger {
	id := uuid.New().String()
	log := carnaval.NewLogger(component + " " + id[:8])
	if !verbose {
		return quietLogger{}
	}
	return log
}

// quietLogger discards everything below Error, so a plain invocation isn't
// drowned in trace output; -v switches to the real golog-backed logger.
type quietLogger struct{}

func (quietLogger) Debug(string, ...any) {}
func (quietLogger) Info(string, ...any)  {}
func (quietLogger) Warn(string, ...any)  {}
func (quietLogger) Error(format string, args ...any) {
	carnaval.NewLogger("carnavalctl").Error(format, args...)
}
