package command

import (
	"context"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/tomasbasham/frontdesk"
	"github.com/tomasbasham/frontdesk/internal/config"
	"github.com/tomasbasham/frontdesk/internal/logger"
	"github.com/tomasbasham/frontdesk/internal/shell"
)

// Shell runs an interactive front-desk session on stdin and stdout.
type Shell struct {
	ConfigPath *string
}

func (cmd Shell) Command(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "run an interactive front-desk session",
		RunE:  cmd.Run(ctx),
	}
}

// Run returns the cobra handler for the session, shared with the root
// command.
func (cmd Shell) Run(ctx context.Context) func(*cobra.Command, []string) error {
	return func(_ *cobra.Command, _ []string) error {
		return cmd.main(ctx)
	}
}

func (cmd Shell) main(ctx context.Context) error {
	cfg, err := config.Load(*cmd.ConfigPath)
	if err != nil {
		return err
	}

	log, closeLog := logger.Open(cfg)
	defer closeLog()
	entry := logger.WithSession(log, cfg)

	store, closeStore, err := openArchive(cfg)
	if err != nil {
		return errors.Wrap(err, "shell : failed to open archive")
	}
	defer func() {
		if err := closeStore(); err != nil {
			entry.WithError(err).Warn("failed to close archive")
		}
	}()

	desk := frontdesk.New(
		frontdesk.WithArchive(store),
		frontdesk.WithMetricsHook(&logger.Metrics{Logger: entry}),
		frontdesk.WithRunLimits(cfg.Scheduler),
	)

	entry.WithField("archive", cfg.Archive.Driver).Debug("starting session")
	return shell.New(desk, os.Stdin, os.Stdout, entry).Run(ctx)
}
