package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	json "github.com/goccy/go-json"
	pkgerrors "github.com/pkg/errors"

	"github.com/mbolis/quick-docs/model"
)

type sqlite struct {
	db *sql.DB
}

// Sqlite returns the durable tier, backed by the drafts table.
func Sqlite(db *sql.DB) Store {
	return &sqlite{db}
}

func (s *sqlite) Save(ctx context.Context, templateID string, values model.ValueSet) error {
	payload, err := json.Marshal(values)
	if err != nil {
		return pkgerrors.Wrap(err, "store.save.marshal")
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO draft (template_id, payload, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (template_id)
		DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		templateID,
		string(payload),
		time.Now(),
	)
	return pkgerrors.Wrap(err, "store.save")
}

func (s *sqlite) Load(ctx context.Context, templateID string) (model.ValueSet, bool, error) {
	var payload string
	err := s.db.QueryRowContext(ctx, `
		SELECT payload FROM draft
		WHERE template_id = ?`,
		templateID,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, pkgerrors.Wrap(err, "store.load")
	}

	values := model.ValueSet{}
	if err := json.Unmarshal([]byte(payload), &values); err != nil {
		return nil, false, pkgerrors.Wrap(err, "store.load.unmarshal")
	}
	return values, true, nil
}

func (s *sqlite) Delete(ctx context.Context, templateID string) error {
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM draft WHERE template_id = ?`,
		templateID,
	)
	return pkgerrors.Wrap(err, "store.delete")
}

func (s *sqlite) List(ctx context.Context) ([]Draft, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT template_id, payload, updated_at FROM draft
		ORDER BY updated_at DESC`)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "store.list")
	}
	defer rows.Close()

	drafts := []Draft{}
	for rows.Next() {
		var d Draft
		var payload string
		if err := rows.Scan(&d.TemplateID, &payload, &d.UpdatedAt); err != nil {
			return nil, pkgerrors.Wrap(err, "store.list.scan")
		}
		d.Values = model.ValueSet{}
		if err := json.Unmarshal([]byte(payload), &d.Values); err != nil {
			return nil, pkgerrors.Wrap(err, "store.list.unmarshal")
		}
		drafts = append(drafts, d)
	}
	return drafts, rows.Err()
}
