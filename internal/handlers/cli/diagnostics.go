package cli

import (
	"fmt"
	"io"

	"github.com/AntonioJCosta/ign/internal/handlers/ui"
	"github.com/AntonioJCosta/ign/internal/repositories/templaterepo"
	"github.com/olekukonko/tablewriter"
)

const upstreamRepoURL = "https://github.com/github/gitignore"

// repoNotFoundMessage explains how to make a template collection available.
var repoNotFoundMessage = "The directory where .gitignore-s are stored is not found:\n" +
	"(0) You have to manually clone it somewhere:\n" +
	"    `git clone " + upstreamRepoURL + "`\n" +
	"(1) Use the default '~/.local/share/gitignore', or\n" +
	"(2) Specify the location with " + templaterepo.RepoDirEnv + "\n"

func printRepoNotFound(w io.Writer) {
	fmt.Fprint(w, ui.WarningColor(repoNotFoundMessage))
}

func printSearching(w io.Writer, token, filetype, root string) {
	fmt.Fprintf(w, "by %s, searching for %s from %s\n",
		ui.TokenColor(token), ui.FiletypeColor(filetype), ui.PathColor(root))
}

func printTemplateNotFound(w io.Writer, filetype string) {
	fmt.Fprintln(w, ui.ErrorColor(fmt.Sprintf("gitignore not found for %s: aborting", filetype)))
}

func printAppended(w io.Writer, templatePath, dest string, n int) {
	fmt.Fprintf(w, "%s %s %s\n",
		ui.SuccessColor(fmt.Sprintf("appended %d bytes to", n)),
		ui.PathColor(dest),
		ui.DetailColor(fmt.Sprintf("(from %s)", templatePath)))
}

// renderTable writes rows as a bordered, left aligned table.
func renderTable(w io.Writer, header []string, rows [][]string) {
	alignment := make([]int, len(header))
	for i := range alignment {
		alignment[i] = tablewriter.ALIGN_LEFT
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetBorder(true)
	table.SetColumnAlignment(alignment)
	table.AppendBulk(rows)
	table.Render()
}
