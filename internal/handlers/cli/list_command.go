package cli

import (
	"errors"
	"fmt"

	"github.com/AntonioJCosta/ign/internal/core/domain/template"
	"github.com/AntonioJCosta/ign/internal/core/ports"
	"github.com/AntonioJCosta/ign/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewListCommand creates the 'list' subcommand.
func NewListCommand(lookupService ports.TemplateLookupService) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the templates available in the gitignore repository.",
		Long:  `Walks the gitignore repository and shows every *.gitignore template with the directory it lives in.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runListCmd(cmd, args, lookupService)
		},
	}
	return cmd
}

// runListCmd contains the core logic for the 'list' command.
func runListCmd(
	cmd *cobra.Command,
	_ []string,
	lookupService ports.TemplateLookupService,
) error {
	root, templates, err := lookupService.ListTemplates()
	if err != nil {
		if errors.Is(err, template.ErrRepoNotFound) {
			printRepoNotFound(cmd.ErrOrStderr())
			return nil
		}
		return fmt.Errorf("could not list templates: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(templates) == 0 {
		fmt.Fprintln(out, ui.InfoColor(fmt.Sprintf("No templates found in %s.", root)))
		return nil
	}

	fmt.Fprintln(out, ui.HeaderColor(fmt.Sprintf("Templates in %s:", root)))
	rows := make([][]string, 0, len(templates))
	for _, t := range templates {
		rows = append(rows, []string{t.Name, t.Dir})
	}
	renderTable(out, []string{"Name", "Directory"}, rows)
	return nil
}
