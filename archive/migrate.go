package archive

import (
	"database/sql"
	"embed"

	"github.com/golang-migrate/migrate/v4"
	migratePsql "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Direction selects which way [Migrate] moves the schema.
type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

// Migrate applies or rolls back every migration for the Postgres archive. An
// already up to date schema is not an error.
func Migrate(cfg PostgresConfig, direction Direction) error {
	if direction != Up && direction != Down {
		return errors.Errorf("migration direction %q is not supported", direction)
	}

	conn, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return errors.Wrap(err, "open postgres connection")
	}
	defer conn.Close()

	m, err := prepareMigration(conn, cfg.Database)
	if err != nil {
		return err
	}

	if direction == Up {
		err = m.Up()
	} else {
		err = m.Down()
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrapf(err, "migrate %s", direction)
	}
	return nil
}

func prepareMigration(conn *sql.DB, dbName string) (*migrate.Migrate, error) {
	driver, err := migratePsql.WithInstance(conn, &migratePsql.Config{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create postgres migration driver")
	}

	source, err := iofs.New(migrations, "migrations")
	if err != nil {
		return nil, errors.Wrap(err, "failed to read embedded migrations")
	}

	m, err := migrate.NewWithInstance("iofs", source, dbName, driver)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create migrations instance")
	}
	return m, nil
}
