package command

import (
	"context"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/tomasbasham/frontdesk/archive"
	"github.com/tomasbasham/frontdesk/internal/config"
	"github.com/tomasbasham/frontdesk/internal/logger"
)

// Migrate manages the schema of the Postgres archive.
type Migrate struct {
	ConfigPath *string
}

func (cmd Migrate) Command(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down]",
		Short:     "run postgres archive migrations",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(archive.Up), string(archive.Down)},
		RunE: func(_ *cobra.Command, args []string) error {
			return cmd.main(ctx, args[0])
		},
	}
}

func (cmd Migrate) main(ctx context.Context, direction string) error {
	cfg, err := config.Load(*cmd.ConfigPath)
	if err != nil {
		return err
	}

	log, closeLog := logger.Open(cfg)
	defer closeLog()

	if cfg.Archive.Driver != config.PostgresDriver {
		log.WithContext(ctx).Warnf("archive.driver is %q; migrating postgres anyway", cfg.Archive.Driver)
	}

	if err := archive.Migrate(cfg.Postgres, archive.Direction(direction)); err != nil {
		return errors.Wrap(err, "migrate : failed")
	}

	log.WithContext(ctx).Infof("postgres archive migrated %s", direction)
	return nil
}
