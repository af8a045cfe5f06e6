package cli

import (
	"github.com/spf13/cobra"

	"github.com/specialistvlad/genealogy/internal/app"
	"github.com/specialistvlad/genealogy/internal/render"
)

// newRunCmd creates the run command
func newRunCmd(global *globalOptions) *cobra.Command {
	var (
		output      string
		color       bool
		checkCycles bool
		keepGoing   bool
		maxViruses  int
		trace       bool
	)

	cmd := &cobra.Command{
		Use:   "run SCRIPT...",
		Short: "Replay lineage scripts and print the resulting genealogy",
		Long: `Replay lineage scripts and print the resulting genealogy.

SCRIPT is a .hcl file or a directory of .hcl files. Files are replayed in the
order given; a directory contributes its files in lexical order.

Examples:
  genealogy run lineage.hcl
  genealogy run --output yaml --keep-going scripts/
  genealogy run --check-cycles --max-viruses 1000 --trace base.hcl more/`,
		Args: scriptArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := global.newConfig(app.Config{
				ScriptPaths: args,
				Output:      render.Format(output),
				Color:       color,
				CheckCycles: checkCycles,
				KeepGoing:   keepGoing,
				MaxViruses:  maxViruses,
				Trace:       trace,
			})
			if err != nil {
				return err
			}

			a := app.NewApp(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg)
			_, err = a.Run(cmd.Context())
			return failure(err)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", string(render.FormatText), "Output format. Options: 'text', 'json' or 'yaml'.")
	cmd.Flags().BoolVar(&color, "color", false, "Style the text output for a terminal.")
	cmd.Flags().BoolVar(&checkCycles, "check-cycles", false, "Reject connections that would make a virus its own ancestor.")
	cmd.Flags().BoolVar(&keepGoing, "keep-going", false, "Continue replaying after a failed operation.")
	cmd.Flags().IntVar(&maxViruses, "max-viruses", 0, "Maximum number of live viruses, stem included. 0 is unlimited.")
	cmd.Flags().BoolVar(&trace, "trace", false, "Print the journal of committed structural events to stderr.")

	return cmd
}
