package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/doratracker/internal/catalog"
	"github.com/jask/doratracker/internal/config"
	"github.com/jask/doratracker/internal/logging"
	"github.com/jask/doratracker/internal/tui"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	verbose    bool
}

// env is what a command needs once config and logging are set up.
type env struct {
	cfg     config.Config
	logger  *zap.Logger
	catalog *catalog.Catalog
}

func newRootCmd() *cobra.Command {
	gf := &globalFlags{}
	root := &cobra.Command{
		Use:   "doratracker",
		Short: "GenAI adoption and DORA metrics dashboard",
		Long: `doratracker shows GenAI adoption and DORA delivery metrics for each
client engagement in a two-pane terminal dashboard.

Run without arguments to start the interactive dashboard.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if gf.configPath != "" {
				return os.Setenv("DORATRACKER_CONFIG", gf.configPath)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(gf)
			if err != nil {
				return err
			}
			defer func() { _ = e.logger.Sync() }()
			return runDashboard(e)
		},
	}
	root.PersistentFlags().StringVar(&gf.configPath, "config", "", "Config file (default: $DORATRACKER_CONFIG or ~/.config/doratracker/config.toml)")
	root.PersistentFlags().BoolVarP(&gf.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(newRenderCmd(gf))
	root.AddCommand(newClientsCmd(gf))
	root.AddCommand(newConfigCmd())
	return root
}

func setup(gf *globalFlags) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	logger, err := logging.New(cfg.Log, gf.verbose)
	if err != nil {
		return nil, err
	}
	cat := catalog.Default()
	if err := cat.Validate(); err != nil {
		logger.Warn("catalog validation", zap.Error(err))
	}
	return &env{cfg: cfg, logger: logger, catalog: cat}, nil
}

func runDashboard(e *env) error {
	tab, err := tui.ParseTab(e.cfg.UI.DefaultTab)
	if err != nil {
		return fmt.Errorf("ui.default_tab: %w", err)
	}
	app := tui.New(e.catalog, tui.Options{
		DefaultTab:    tab,
		InitialClient: e.cfg.UI.InitialClient,
		MarkdownStyle: e.cfg.UI.MarkdownStyle,
		Logger:        e.logger,
	})

	var opts []tea.ProgramOption
	if e.cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if e.cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	e.logger.Info("dashboard starting", zap.String("tab", tab.ID()), zap.Int("client", e.cfg.UI.InitialClient))
	if _, err := tea.NewProgram(app, opts...).Run(); err != nil {
		return fmt.Errorf("run dashboard: %w", err)
	}
	e.logger.Info("dashboard stopped")
	return nil
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
