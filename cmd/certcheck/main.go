package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/five82/certcheck/internal/app"
	"github.com/five82/certcheck/internal/ui"
)

type runFunc func(ctx context.Context, opts app.Options) error

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCommand(app.Run).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "certcheck: %v\n", err)
		return 1
	}
	return 0
}

// newRootCommand builds the CLI. runApp receives the options assembled from
// flags.
func newRootCommand(runApp runFunc) *cobra.Command {
	var (
		opts    app.Options
		delayMS int64
	)

	cmd := &cobra.Command{
		Use:   "certcheck",
		Short: "Validate training certificates against a certificate database",
		Long: `certcheck loads a certificate database (a headerless CSV or XLSX file,
local or over HTTP) and opens a terminal form for looking up a certificate
by its number. Matching ignores case and surrounding whitespace.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("delay") {
				if delayMS < 0 {
					return fmt.Errorf("--delay must not be negative")
				}
				delay := time.Duration(delayMS) * time.Millisecond
				opts.LookupDelay = &delay
			}
			return runApp(cmd.Context(), opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.ConfigPath, "config", "", "config file path (default ~/.config/certcheck/config.toml)")
	flags.StringVar(&opts.EnvFile, "env-file", "", "dotenv file seeding CERTCHECK_* variables (default ./.env)")
	flags.StringVar(&opts.PrefsPath, "prefs", "", "preferences file path (default ~/.config/certcheck/prefs.toml)")
	flags.StringVarP(&opts.Dataset, "dataset", "d", "", "certificate database path or http(s) URL")
	flags.StringVar(&opts.Theme, "theme", "", fmt.Sprintf("color theme %v", ui.ThemeNames()))
	flags.Int64Var(&delayMS, "delay", 0, "lookup delay in milliseconds (default 500)")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}
