package cli

import (
	"github.com/spf13/cobra"

	"github.com/specialistvlad/genealogy/internal/app"
)

// globalOptions are the flags shared by every subcommand.
type globalOptions struct {
	logLevel  string
	logFormat string
}

// NewRootCmd creates the root cobra command
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "genealogy",
		Short: "Genealogy replays lineage scripts into a virus genealogy and renders it",
		Long: `Genealogy replays lineage scripts into an in-memory virus genealogy.

A lineage script is an HCL file declaring a stem and a sequence of virus,
connect and remove blocks. Every operation is atomic: one that fails leaves
the genealogy exactly as it was.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	rootCmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "text", "Log output format. Options: 'text' or 'json'.")

	// Add subcommands
	rootCmd.AddCommand(newRunCmd(opts))
	rootCmd.AddCommand(newValidateCmd(opts))

	return rootCmd
}

// newConfig validates the command line into an app.Config.
func (o *globalOptions) newConfig(cfg app.Config) (*app.Config, error) {
	cfg.LogLevel = o.logLevel
	cfg.LogFormat = o.logFormat
	validated, err := app.NewConfig(cfg)
	if err != nil {
		return nil, usageError(err)
	}
	return validated, nil
}
