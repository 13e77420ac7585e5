package cli

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// NewRootCommand builds the presenterctl command tree writing to out
func NewRootCommand(out io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "presenterctl",
		Short:         "Operator tooling for the AI Presenter backend",
		Long:          `Checks presentations against the upload rules and probes a running backend.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)

	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newHealthCommand())
	return rootCmd
}

func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := NewRootCommand(os.Stdout).ExecuteContext(ctx); err != nil {
		slog.Error("command failed", "error", err)
		cancel()
		os.Exit(1)
	}
}
