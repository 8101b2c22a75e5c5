package command

import (
	"github.com/pkg/errors"

	"github.com/tomasbasham/frontdesk"
	"github.com/tomasbasham/frontdesk/archive"
	"github.com/tomasbasham/frontdesk/internal/config"
)

// openArchive returns the archive selected by the configuration and a
// function releasing it.
func openArchive(cfg *config.Config) (frontdesk.Archive, func() error, error) {
	switch cfg.Archive.Driver {
	case config.PostgresDriver:
		pg, err := archive.OpenPostgres(cfg.Postgres)
		if err != nil {
			return nil, nil, err
		}
		return pg, pg.Close, nil
	case config.FileDriver:
		return archive.NewFile(cfg.Archive.Path), func() error { return nil }, nil
	default:
		return nil, nil, errors.Errorf("archive driver %q is not supported", cfg.Archive.Driver)
	}
}
