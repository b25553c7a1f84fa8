package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/AntonioJCosta/ign/internal/core/domain/template"
	"github.com/AntonioJCosta/ign/internal/core/ports"
	"github.com/AntonioJCosta/ign/internal/logging"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// NewRootCommand creates the 'ign [filetype]' command and its subcommands.
func NewRootCommand(version string, lookupService ports.TemplateLookupService) *cobra.Command {
	var (
		appendMode bool
		debug      bool
		envFile    string
	)

	rootCmd := &cobra.Command{
		Use:   "ign [filetype]",
		Short: "ign prints or appends a .gitignore template for a filetype.",
		Long: `ign looks up <filetype>.gitignore in a local clone of github/gitignore
and prints it to standard output. Short names such as py or rb are expanded
first and file names are matched case-insensitively.`,
		Version:      version,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.Setup(cmd.ErrOrStderr(), debug)
			if lookupService == nil {
				return fmt.Errorf("template lookup service not initialized for command %s", cmd.Name())
			}
			if envFile != "" {
				if err := godotenv.Load(envFile); err != nil {
					return fmt.Errorf("could not load env file %s: %w", envFile, err)
				}
				slog.Debug("env file loaded", "path", envFile)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRootCmd(cmd, args, lookupService, appendMode)
		},
	}

	rootCmd.Flags().BoolVarP(&appendMode, "append", "a", false, "Append the template to ./.gitignore instead of printing it.")
	_ = rootCmd.Flags().MarkHidden("append")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Log each lookup step to standard error.")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "Load environment variables from a dotenv file; variables already set win.")

	rootCmd.AddCommand(NewListCommand(lookupService))
	rootCmd.AddCommand(NewAliasesCommand(lookupService))
	rootCmd.AddCommand(NewWhereCommand(lookupService))

	return rootCmd
}

// runRootCmd contains the core logic for 'ign [filetype]'.
// A missing collection or template is reported and treated as success.
func runRootCmd(
	cmd *cobra.Command,
	args []string,
	lookupService ports.TemplateLookupService,
	appendMode bool,
) error {
	if len(args) == 0 {
		return cmd.Help()
	}
	token := args[0]
	stderr := cmd.ErrOrStderr()

	mode := template.Print
	if appendMode {
		mode = template.Append
	}

	result, err := lookupService.Apply(token, mode, cmd.OutOrStdout(), func(r ports.LookupResult) {
		printSearching(stderr, r.Token, r.Filetype, r.RepoRoot)
	})
	switch {
	case errors.Is(err, template.ErrRepoNotFound):
		slog.Debug("gitignore repository not found", "err", err)
		printRepoNotFound(stderr)
		return nil
	case errors.Is(err, template.ErrTemplateNotFound):
		slog.Debug("template lookup missed", "err", err)
		printTemplateNotFound(stderr, result.Filetype)
		return nil
	case errors.Is(err, template.ErrSearchAborted):
		return fmt.Errorf("could not search %s for %s: %w", result.RepoRoot, template.FileName(result.Filetype), err)
	case err != nil:
		return err
	}

	if result.Mode == template.Append {
		printAppended(stderr, result.TemplatePath, result.Destination, result.BytesWritten)
	}
	return nil
}
