package docstore

import (
	"context"
	"database/sql"
	"time"

	"github.com/bookriapp/bookri/pkg/models"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

// SQLiteBackend stores documents as rows in a single documents table, for
// installs that want one data file instead of a directory of JSON files.
type SQLiteBackend struct {
	db *bun.DB
}

func NewSQLiteBackend(ctx context.Context, db *bun.DB) (*SQLiteBackend, error) {
	_, err := db.NewCreateTable().
		Model((*models.Document)(nil)).
		IfNotExists().
		Exec(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return &SQLiteBackend{db: db}, nil
}

func (b *SQLiteBackend) Read(ctx context.Context, name string) ([]byte, error) {
	doc := &models.Document{}
	err := b.db.NewSelect().
		Model(doc).
		Where("d.name = ?", name).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotExist
		}
		return nil, errors.WithStack(err)
	}
	return doc.Data, nil
}

func (b *SQLiteBackend) Write(ctx context.Context, name string, data []byte) error {
	doc := &models.Document{
		Name:      name,
		Data:      data,
		UpdatedAt: time.Now(),
	}

	_, err := b.db.NewInsert().
		Model(doc).
		On("CONFLICT (name) DO UPDATE").
		Set("data = EXCLUDED.data").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	return errors.WithStack(err)
}
