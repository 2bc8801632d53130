package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gravitrone/finance-app/cli/internal/cmd"
	"github.com/gravitrone/finance-app/cli/internal/config"
	"github.com/gravitrone/finance-app/cli/internal/ui"
)

// isTerminal is swapped in tests so the TUI never starts there.
var isTerminal = isInteractiveTerminal

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Force truecolor so hex colors render correctly
	// Must be set before any lipgloss style initialization
	os.Setenv("COLORTERM", "truecolor")
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "finance",
		Short: "Finance App - API status",
		Long:  "Finance CLI: shows whether the Finance App API is up.",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runTUI(c)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(cmd.StatusCmd())
	root.AddCommand(cmd.ConfigCmd())
	return root
}

func runTUI(c *cobra.Command) error {
	cfg, logger, err := cmd.Setup(c)
	if err != nil {
		return err
	}
	defer logger.Sync()

	client := cmd.NewClient(cfg)
	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		logger.Debug("no terminal attached, printing status line")
		return cmd.RunStatus(c.Context(), client, cfg.Locale, c.OutOrStdout())
	}

	logger.Info("tui started", zap.String("api_url", cfg.APIURL), zap.String("locale", cfg.Locale))
	p := tea.NewProgram(ui.NewApp(client, cfg), tea.WithAltScreen(), tea.WithContext(c.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	logger.Info("tui exited")
	return nil
}

func isInteractiveTerminal(file *os.File) bool {
	if file == nil {
		return false
	}
	info, err := file.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
