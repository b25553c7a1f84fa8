package cli

import (
	"errors"
	"fmt"

	"github.com/AntonioJCosta/ign/internal/core/domain/template"
	"github.com/AntonioJCosta/ign/internal/core/ports"
	"github.com/spf13/cobra"
)

// NewWhereCommand creates the 'where' subcommand.
func NewWhereCommand(lookupService ports.TemplateLookupService) *cobra.Command {
	return &cobra.Command{
		Use:   "where",
		Short: "Print the gitignore repository directory in use.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := lookupService.RepoRoot()
			if errors.Is(err, template.ErrRepoNotFound) {
				printRepoNotFound(cmd.ErrOrStderr())
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), root)
			return nil
		},
	}
}
