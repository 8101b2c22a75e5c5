package archive

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/tomasbasham/frontdesk"
)

// Ensure Postgres implements [frontdesk.Archive].
var _ frontdesk.Archive = (*Postgres)(nil)

// PostgresConfig holds the connection settings for the Postgres archive.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

// DSN returns the libpq connection string for the configuration.
func (c PostgresConfig) DSN() string {
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host,
		c.Port,
		c.User,
		c.Password,
		c.Database,
		sslMode,
	)
}

// attendedPerson is the row stored for each attended person. Rows are read
// back in seq order, which is the order they were appended.
type attendedPerson struct {
	Seq         int64     `gorm:"column:seq;primaryKey;autoIncrement"`
	PersonID    int32     `gorm:"column:person_id"`
	LastName    string    `gorm:"column:last_name"`
	FirstName   string    `gorm:"column:first_name"`
	Age         int32     `gorm:"column:age"`
	Gender      string    `gorm:"column:gender"`
	Phone       string    `gorm:"column:phone"`
	ServiceDate string    `gorm:"column:service_date"`
	ArchivedAt  time.Time `gorm:"column:archived_at"`
}

func (attendedPerson) TableName() string {
	return "attended_people"
}

func toRow(p frontdesk.Person, now time.Time) attendedPerson {
	var gender string
	if p.Gender != 0 {
		gender = string([]byte{p.Gender})
	}
	return attendedPerson{
		PersonID:    p.ID,
		LastName:    p.LastName,
		FirstName:   p.FirstName,
		Age:         p.Age,
		Gender:      gender,
		Phone:       p.Phone,
		ServiceDate: p.ServiceDate,
		ArchivedAt:  now,
	}
}

func (r attendedPerson) person() frontdesk.Person {
	var gender byte
	if r.Gender != "" {
		gender = r.Gender[0]
	}
	return frontdesk.Person{
		ID:          r.PersonID,
		LastName:    r.LastName,
		FirstName:   r.FirstName,
		Age:         r.Age,
		Gender:      gender,
		Phone:       r.Phone,
		ServiceDate: r.ServiceDate,
	}
}

// Postgres is an append-only archive backed by the attended_people table.
// The schema is created by [Migrate].
type Postgres struct {
	db  *gorm.DB
	now func() time.Time
}

// NewPostgres creates a [Postgres] archive using an open gorm connection.
func NewPostgres(db *gorm.DB) *Postgres {
	return &Postgres{db: db, now: time.Now}
}

// OpenPostgres connects to the database described by cfg.
func OpenPostgres(cfg PostgresConfig) (*Postgres, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{SkipDefaultTransaction: true})
	if err != nil {
		return nil, errors.Wrapf(frontdesk.ErrStorageUnavailable, "connect to postgres %s:%d: %v", cfg.Host, cfg.Port, err)
	}
	return NewPostgres(db), nil
}

// Close releases the underlying connection pool.
func (p *Postgres) Close() error {
	conn, err := p.db.DB()
	if err != nil {
		return err
	}
	return conn.Close()
}

// Load returns every archived person in the order they were appended.
func (p *Postgres) Load(ctx context.Context) ([]frontdesk.Person, error) {
	var rows []attendedPerson
	if err := p.db.WithContext(ctx).Order("seq ASC").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "load attended people")
	}

	people := make([]frontdesk.Person, 0, len(rows))
	for _, r := range rows {
		people = append(people, r.person())
	}
	return people, nil
}

// Append inserts people in order with a single statement.
func (p *Postgres) Append(ctx context.Context, people []frontdesk.Person) error {
	if len(people) == 0 {
		return nil
	}

	now := p.now().UTC()
	rows := make([]attendedPerson, 0, len(people))
	for _, person := range people {
		if err := person.Validate(); err != nil {
			return errors.Wrapf(err, "archive person %d", person.ID)
		}
		rows = append(rows, toRow(person, now))
	}

	if err := p.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return errors.Wrapf(frontdesk.ErrStorageUnavailable, "insert %d attended people: %v", len(rows), err)
	}
	return nil
}
