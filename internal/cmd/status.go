package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gravitrone/finance-app/cli/internal/api"
	"github.com/gravitrone/finance-app/cli/internal/ui"
)

// RunStatus drives one mount of the status view without a terminal and
// prints the settled status line. A failed health check is not an error
// here: the failure sentinel is the output.
func RunStatus(ctx context.Context, client *api.Client, locale string, out io.Writer) error {
	m := ui.NewStatusModel(client, ui.StringsFor(locale))
	m, check := m.Mount(ctx)
	if check != nil {
		m, _ = m.Update(check())
	}
	m = m.Unmount()

	_, err := fmt.Fprintln(out, m.StatusLine())
	return err
}

// StatusCmd returns the `finance status` command.
func StatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Print the API health status once",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			cfg, logger, err := Setup(c)
			if err != nil {
				return err
			}
			defer logger.Sync()

			logger.Info("status check", zap.String("api_url", cfg.APIURL))
			return RunStatus(c.Context(), NewClient(cfg), cfg.Locale, c.OutOrStdout())
		},
	}
}
