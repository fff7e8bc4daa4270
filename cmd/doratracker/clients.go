package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"github.com/jask/doratracker/internal/catalog"
)

func newClientsCmd(gf *globalFlags) *cobra.Command {
	var query string
	cmd := &cobra.Command{
		Use:   "clients",
		Short: "List client engagements",
		Long: `List the tracked client engagements with their GenAI status,
team usage and DORA cadence.

Examples:
  doratracker clients
  doratracker clients --search federal`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(gf)
			if err != nil {
				return err
			}
			defer func() { _ = e.logger.Sync() }()

			rows := e.catalog.Search(query)
			out := cmd.OutOrStdout()
			if len(rows) == 0 {
				_, err := fmt.Fprintln(out, "No engagements match.")
				return err
			}
			s := clientsTable(e.catalog, rows)
			if !isTerminal(out) {
				s = ansi.Strip(s)
			}
			_, err = fmt.Fprintln(out, s)
			return err
		},
	}
	cmd.Flags().StringVarP(&query, "search", "s", "", "Filter by name, engagement or sector")
	return cmd
}

func clientsTable(cat *catalog.Catalog, rows []catalog.Client) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "CLIENT", "ENGAGEMENT", "SECTOR", "GENAI", "USAGE", "DORA", "CADENCE")
	for _, cl := range rows {
		m, _ := cat.Metrics(cl.ID)
		t.Row(
			strconv.Itoa(cl.ID),
			cl.Name,
			cl.Engagement,
			cl.Sector,
			cl.GenAIStatus.String(),
			fmt.Sprintf("%d%%", cl.Usage),
			cl.DoraImplemented,
			m.Cadence,
		)
	}
	return t.String()
}
