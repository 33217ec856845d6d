package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/PratikDhanave/data-catalog-service/internal/models"
	"github.com/PratikDhanave/data-catalog-service/internal/store"
)

type eventStore struct{ q querier }

func (s eventStore) Create(ctx context.Context, e *models.Event) error {
	err := s.q.QueryRow(ctx, `
		INSERT INTO events(name, type, description)
		VALUES ($1, $2, $3)
		RETURNING id
	`, e.Name, e.Type, e.Description).Scan(&e.ID)
	return mapError(err)
}

func (s eventStore) FetchAll(ctx context.Context) ([]models.Event, error) {
	rows, err := s.q.Query(ctx, `
		SELECT id, name, type, description
		FROM events
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Event{}
	for rows.Next() {
		var e models.Event
		if err := rows.Scan(&e.ID, &e.Name, &e.Type, &e.Description); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s eventStore) FindByID(ctx context.Context, id int64) (*models.Event, error) {
	var e models.Event
	err := s.q.QueryRow(ctx, `
		SELECT id, name, type, description
		FROM events
		WHERE id = $1
	`, id).Scan(&e.ID, &e.Name, &e.Type, &e.Description)
	if err != nil {
		return nil, mapError(err)
	}
	return &e, nil
}

// FindOrCreate resolves by (name, type): the insert loses against an existing
// row thanks to ON CONFLICT DO NOTHING, in which case the winning row is
// re-read. This also absorbs a concurrent writer racing on the same identity.
func (s eventStore) FindOrCreate(ctx context.Context, e *models.Event) (*models.Event, error) {
	var out models.Event
	err := s.q.QueryRow(ctx, `
		INSERT INTO events(name, type, description)
		VALUES ($1, $2, $3)
		ON CONFLICT (name, type) DO NOTHING
		RETURNING id, name, type, description
	`, e.Name, e.Type, e.Description).Scan(&out.ID, &out.Name, &out.Type, &out.Description)
	if err == nil {
		return &out, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, mapError(err)
	}

	err = s.q.QueryRow(ctx, `
		SELECT id, name, type, description
		FROM events
		WHERE name = $1 AND type = $2
	`, e.Name, e.Type).Scan(&out.ID, &out.Name, &out.Type, &out.Description)
	if err != nil {
		return nil, mapError(err)
	}
	return &out, nil
}

func (s eventStore) Update(ctx context.Context, e *models.Event) error {
	tag, err := s.q.Exec(ctx, `
		UPDATE events
		SET name = $2, type = $3, description = $4
		WHERE id = $1
	`, e.ID, e.Name, e.Type, e.Description)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s eventStore) Delete(ctx context.Context, id int64) error {
	tag, err := s.q.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
