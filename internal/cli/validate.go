package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/specialistvlad/genealogy/internal/app"
)

// newValidateCmd creates the validate command
func newValidateCmd(global *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate SCRIPT...",
		Short: "Check that lineage scripts parse, without replaying them",
		Args:  scriptArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := global.newConfig(app.Config{ScriptPaths: args})
			if err != nil {
				return err
			}

			a := app.NewApp(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg)
			s, err := a.Load(cmd.Context())
			if err != nil {
				return failure(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: stem %s, %d operation(s) in %d file(s)\n", s.Stem, len(s.Ops), len(s.Files))
			return nil
		},
	}
}
