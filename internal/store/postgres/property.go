package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/PratikDhanave/data-catalog-service/internal/models"
	"github.com/PratikDhanave/data-catalog-service/internal/store"
)

type propertyStore struct{ q querier }

func (s propertyStore) Create(ctx context.Context, p *models.Property) error {
	err := s.q.QueryRow(ctx, `
		INSERT INTO properties(name, type, description)
		VALUES ($1, $2, $3)
		RETURNING id
	`, p.Name, p.Type, p.Description).Scan(&p.ID)
	return mapError(err)
}

func (s propertyStore) FetchAll(ctx context.Context) ([]models.Property, error) {
	rows, err := s.q.Query(ctx, `
		SELECT id, name, type, description
		FROM properties
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Property{}
	for rows.Next() {
		var p models.Property
		if err := rows.Scan(&p.ID, &p.Name, &p.Type, &p.Description); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s propertyStore) FindByID(ctx context.Context, id int64) (*models.Property, error) {
	var p models.Property
	err := s.q.QueryRow(ctx, `
		SELECT id, name, type, description
		FROM properties
		WHERE id = $1
	`, id).Scan(&p.ID, &p.Name, &p.Type, &p.Description)
	if err != nil {
		return nil, mapError(err)
	}
	return &p, nil
}

func (s propertyStore) FindOrCreate(ctx context.Context, p *models.Property) (*models.Property, error) {
	var out models.Property
	err := s.q.QueryRow(ctx, `
		INSERT INTO properties(name, type, description)
		VALUES ($1, $2, $3)
		ON CONFLICT (name, type) DO NOTHING
		RETURNING id, name, type, description
	`, p.Name, p.Type, p.Description).Scan(&out.ID, &out.Name, &out.Type, &out.Description)
	if err == nil {
		return &out, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, mapError(err)
	}

	err = s.q.QueryRow(ctx, `
		SELECT id, name, type, description
		FROM properties
		WHERE name = $1 AND type = $2
	`, p.Name, p.Type).Scan(&out.ID, &out.Name, &out.Type, &out.Description)
	if err != nil {
		return nil, mapError(err)
	}
	return &out, nil
}

func (s propertyStore) Update(ctx context.Context, p *models.Property) error {
	tag, err := s.q.Exec(ctx, `
		UPDATE properties
		SET name = $2, type = $3, description = $4
		WHERE id = $1
	`, p.ID, p.Name, p.Type, p.Description)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s propertyStore) Delete(ctx context.Context, id int64) error {
	tag, err := s.q.Exec(ctx, `DELETE FROM properties WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
