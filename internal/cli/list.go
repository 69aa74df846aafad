package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"quizbank/internal/catalog"
	"quizbank/internal/question"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	indexStyle  = cellStyle.Foreground(lipgloss.Color("8"))
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func (a *app) newListCommand() *cobra.Command {
	var plain bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print every record in the catalog",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := a.settings("")
			if err != nil {
				return err
			}
			records, err := catalog.Load(settings.CatalogPath)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Fprintf(a.stdout, "Catalog %s is empty\n", settings.CatalogPath)
				return nil
			}
			if !plain && isTerminal(a.stdout) {
				fmt.Fprintln(a.stdout, renderTable(records))
				return nil
			}
			renderPlain(a.stdout, records)
			return nil
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "Disable table output even on a terminal")
	return cmd
}

// renderPlain writes one block per record.
func renderPlain(w io.Writer, records []question.Record) {
	for i, record := range records {
		fmt.Fprintf(w, "%d. %s", i+1, record.Title)
		if len(record.Tags) > 0 {
			fmt.Fprintf(w, " [%s]", strings.Join(record.Tags, ", "))
		}
		fmt.Fprintln(w)
		fmt.Fprintf(w, "   %s\n", record.Prompt)
		for _, hint := range record.Hints {
			fmt.Fprintf(w, "   - %s\n", hint)
		}
	}
}

// renderTable renders records as a bordered lipgloss table.
func renderTable(records []question.Record) string {
	rows := make([][]string, 0, len(records))
	for i, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			record.Title,
			record.Prompt,
			strings.Join(record.Hints, "\n"),
			strings.Join(record.Tags, ", "),
		})
	}
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return indexStyle
			default:
				return cellStyle
			}
		}).
		Headers("#", "Title", "Prompt", "Hints", "Tags").
		Rows(rows...).
		String()
}
