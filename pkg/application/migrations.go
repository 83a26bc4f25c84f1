package application

import (
	"context"
	"embed"
	"errors"
	"io/fs"
	"path"
	"testing/fstest"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
)

var ErrNoDatabase = errors.New("migrations: no database configured")

type MigrationStatus struct {
	Version   int64
	Source    string
	Applied   bool
	AppliedAt time.Time
}

// NewMigrationManager collects module schemas and runs them with goose.
// Every registered file must live under a "schema/" directory of its embed.FS
// and carry a unique numeric prefix across modules.
func NewMigrationManager(db *sqlx.DB) MigrationManager {
	return &migrationManager{db: db}
}

type migrationManager struct {
	db      *sqlx.DB
	schemas []*embed.FS
}

func (m *migrationManager) RegisterSchema(migrations ...*embed.FS) {
	m.schemas = append(m.schemas, migrations...)
}

// mergedFS flattens every registered schema file into one directory as goose expects.
func (m *migrationManager) mergedFS() (fs.FS, error) {
	merged := fstest.MapFS{}
	for _, schema := range m.schemas {
		files, err := listFiles(schema, ".")
		if err != nil {
			return nil, err
		}
		for _, file := range files {
			data, err := schema.ReadFile(file)
			if err != nil {
				return nil, err
			}
			merged[path.Base(file)] = &fstest.MapFile{Data: data}
		}
	}
	return merged, nil
}

func (m *migrationManager) provider() (*goose.Provider, error) {
	if m.db == nil {
		return nil, ErrNoDatabase
	}
	fsys, err := m.mergedFS()
	if err != nil {
		return nil, err
	}
	return goose.NewProvider(goose.DialectPostgres, m.db.DB, fsys)
}

func (m *migrationManager) Up(ctx context.Context) error {
	p, err := m.provider()
	if err != nil {
		return err
	}
	_, err = p.Up(ctx)
	return err
}

func (m *migrationManager) Down(ctx context.Context) error {
	p, err := m.provider()
	if err != nil {
		return err
	}
	_, err = p.Down(ctx)
	return err
}

func (m *migrationManager) Status(ctx context.Context) ([]MigrationStatus, error) {
	p, err := m.provider()
	if err != nil {
		return nil, err
	}
	statuses, err := p.Status(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]MigrationStatus, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, MigrationStatus{
			Version:   s.Source.Version,
			Source:    s.Source.Path,
			Applied:   s.State == goose.StateApplied,
			AppliedAt: s.AppliedAt,
		})
	}
	return out, nil
}
