package main

import (
	"fmt"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/doratracker/internal/tui"
)

type renderFlags struct {
	client int
	tab    string
	width  int
}

func newRenderCmd(gf *globalFlags) *cobra.Command {
	rf := &renderFlags{}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print one dashboard frame and exit",
		Long: `Render a single frame of the dashboard without starting the event loop.

Defaults come from the ui.* config keys. Colors are dropped when stdout
is not a terminal.

Examples:
  # Overview of XYZ Corporation
  doratracker render --client 3

  # DORA placeholder tab, wide
  doratracker render --client 1 --tab dora --width 140`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(gf)
			if err != nil {
				return err
			}
			defer func() { _ = e.logger.Sync() }()

			if !cmd.Flags().Changed("client") {
				rf.client = e.cfg.UI.InitialClient
			}
			if !cmd.Flags().Changed("tab") {
				rf.tab = e.cfg.UI.DefaultTab
			}
			if !cmd.Flags().Changed("width") {
				rf.width = e.cfg.UI.Width
			}
			return runRender(cmd, e, rf)
		},
	}
	cmd.Flags().IntVarP(&rf.client, "client", "c", 0, "Client id to select (0 for none)")
	cmd.Flags().StringVarP(&rf.tab, "tab", "t", "", "Tab: overview, genai, dora or feedback")
	cmd.Flags().IntVarP(&rf.width, "width", "w", 0, "Frame width in cells")
	return cmd
}

func runRender(cmd *cobra.Command, e *env, rf *renderFlags) error {
	tab, err := tui.ParseTab(rf.tab)
	if err != nil {
		return err
	}
	if rf.client != 0 {
		if _, ok := e.catalog.Client(rf.client); !ok {
			return fmt.Errorf("unknown client %d", rf.client)
		}
	}

	out := cmd.OutOrStdout()
	color := isTerminal(out)
	style := e.cfg.UI.MarkdownStyle
	if !color {
		style = "notty"
	}

	app := tui.New(e.catalog, tui.Options{
		DefaultTab:    tab,
		InitialClient: rf.client,
		MarkdownStyle: style,
		Logger:        e.logger,
	})
	frame := app.Snapshot(rf.width)
	if !color {
		frame = ansi.Strip(frame)
	}
	e.logger.Debug("frame rendered", zap.Int("client", rf.client), zap.String("tab", tab.ID()), zap.Int("width", rf.width))
	_, err = fmt.Fprintln(out, frame)
	return err
}
