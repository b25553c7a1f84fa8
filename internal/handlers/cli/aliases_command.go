package cli

import (
	"fmt"

	"github.com/AntonioJCosta/ign/internal/core/ports"
	"github.com/AntonioJCosta/ign/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewAliasesCommand creates the 'aliases' subcommand.
func NewAliasesCommand(lookupService ports.TemplateLookupService) *cobra.Command {
	return &cobra.Command{
		Use:   "aliases",
		Short: "Show the built-in filetype short names.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			aliases := lookupService.Aliases()
			if len(aliases) == 0 {
				fmt.Fprintln(out, ui.InfoColor("No filetype aliases configured."))
				return nil
			}

			fmt.Fprintln(out, ui.HeaderColor("Filetype aliases:"))
			rows := make([][]string, 0, len(aliases))
			for _, a := range aliases {
				rows = append(rows, []string{a.Token, a.Filetype})
			}
			renderTable(out, []string{"Token", "Filetype"}, rows)
			return nil
		},
	}
}
