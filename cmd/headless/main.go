// cmd/headless/main.go
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"go-ant-colony/internal/config"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var envFile string
	root := &cobra.Command{
		Use:           "antcolony",
		Short:         "Headless ant colony simulation",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.LoadSettings(envFile)
			if err != nil {
				return err
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: settings.LogLevel}))
			slog.SetDefault(logger)
			cmd.SetContext(withSettings(cmd.Context(), settings))
			return nil
		},
	}
	root.PersistentFlags().StringVar(&envFile, "env", ".env", "optional .env file with ANTS_* settings")
	root.AddCommand(newRunCmd(), newInspectCmd())
	return root
}

type settingsKey struct{}

func withSettings(ctx context.Context, s config.Settings) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, settingsKey{}, s)
}

func settingsFrom(ctx context.Context) config.Settings {
	if s, ok := ctx.Value(settingsKey{}).(config.Settings); ok {
		return s
	}
	return config.DefaultSettings()
}
