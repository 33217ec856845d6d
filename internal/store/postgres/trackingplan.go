package postgres

import (
	"context"

	"github.com/PratikDhanave/data-catalog-service/internal/models"
	"github.com/PratikDhanave/data-catalog-service/internal/store"
)

type trackingPlanStore struct{ q querier }

func (s trackingPlanStore) Create(ctx context.Context, p *models.TrackingPlan) error {
	err := s.q.QueryRow(ctx, `
		INSERT INTO tracking_plans(name, description)
		VALUES ($1, $2)
		RETURNING id
	`, p.Name, p.Description).Scan(&p.ID)
	return mapError(err)
}

func (s trackingPlanStore) FetchAll(ctx context.Context) ([]models.TrackingPlan, error) {
	return s.fetchGraphs(ctx, nil)
}

func (s trackingPlanStore) FindByID(ctx context.Context, id int64) (*models.TrackingPlan, error) {
	plans, err := s.fetchGraphs(ctx, &id)
	if err != nil {
		return nil, err
	}
	if len(plans) == 0 {
		return nil, store.ErrNotFound
	}
	return &plans[0], nil
}

// fetchGraphs loads plans together with their nested event/property graph in
// three queries. A nil planID loads every plan.
func (s trackingPlanStore) fetchGraphs(ctx context.Context, planID *int64) ([]models.TrackingPlan, error) {
	plans := []models.TrackingPlan{}
	index := map[int64]int{}

	rows, err := s.q.Query(ctx, `
		SELECT id, name, description
		FROM tracking_plans
		WHERE $1::bigint IS NULL OR id = $1
		ORDER BY id
	`, planID)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var p models.TrackingPlan
		if err := rows.Scan(&p.ID, &p.Name, &p.Description); err != nil {
			rows.Close()
			return nil, err
		}
		p.Events = []models.TrackingPlanEvent{}
		index[p.ID] = len(plans)
		plans = append(plans, p)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(plans) == 0 {
		return plans, nil
	}

	// peIndex records where each join row landed as (plan, event) indices.
	// Appending to a plan's Events slice can move its backing array, so
	// element pointers must not be held across iterations.
	type peLoc struct{ plan, event int }
	peIndex := map[int64]peLoc{}
	rows, err = s.q.Query(ctx, `
		SELECT pe.id, pe.tracking_plan_id, pe.event_id, pe.additional_properties,
		       e.name, e.type, e.description
		FROM tracking_plan_events pe
		JOIN events e ON e.id = pe.event_id
		WHERE $1::bigint IS NULL OR pe.tracking_plan_id = $1
		ORDER BY pe.id
	`, planID)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var pe models.TrackingPlanEvent
		if err := rows.Scan(&pe.ID, &pe.TrackingPlanID, &pe.EventID, &pe.AdditionalProperties,
			&pe.Event.Name, &pe.Event.Type, &pe.Event.Description); err != nil {
			rows.Close()
			return nil, err
		}
		pe.Event.ID = pe.EventID
		pe.Properties = []models.TrackingPlanEventProperty{}

		i, ok := index[pe.TrackingPlanID]
		if !ok {
			continue
		}
		plans[i].Events = append(plans[i].Events, pe)
		peIndex[pe.ID] = peLoc{plan: i, event: len(plans[i].Events) - 1}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = s.q.Query(ctx, `
		SELECT pp.id, pp.tracking_plan_event_id, pp.property_id, pp.required,
		       p.name, p.type, p.description
		FROM tracking_plan_event_properties pp
		JOIN properties p ON p.id = pp.property_id
		JOIN tracking_plan_events pe ON pe.id = pp.tracking_plan_event_id
		WHERE $1::bigint IS NULL OR pe.tracking_plan_id = $1
		ORDER BY pp.id
	`, planID)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var pp models.TrackingPlanEventProperty
		if err := rows.Scan(&pp.ID, &pp.TrackingPlanEventID, &pp.PropertyID, &pp.Required,
			&pp.Property.Name, &pp.Property.Type, &pp.Property.Description); err != nil {
			rows.Close()
			return nil, err
		}
		pp.Property.ID = pp.PropertyID

		loc, ok := peIndex[pp.TrackingPlanEventID]
		if !ok {
			continue
		}
		pe := &plans[loc.plan].Events[loc.event]
		pe.Properties = append(pe.Properties, pp)
	}
	rows.Close()
	return plans, rows.Err()
}

func (s trackingPlanStore) Update(ctx context.Context, p *models.TrackingPlan) error {
	tag, err := s.q.Exec(ctx, `
		UPDATE tracking_plans
		SET name = $2, description = $3
		WHERE id = $1
	`, p.ID, p.Name, p.Description)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

// Delete removes the plan row; the schema cascades the join rows.
func (s trackingPlanStore) Delete(ctx context.Context, id int64) error {
	tag, err := s.q.Exec(ctx, `DELETE FROM tracking_plans WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s trackingPlanStore) CreateEvent(ctx context.Context, pe *models.TrackingPlanEvent) error {
	err := s.q.QueryRow(ctx, `
		INSERT INTO tracking_plan_events(tracking_plan_id, event_id, additional_properties)
		VALUES ($1, $2, $3)
		RETURNING id
	`, pe.TrackingPlanID, pe.EventID, pe.AdditionalProperties).Scan(&pe.ID)
	return mapError(err)
}

func (s trackingPlanStore) FindEvent(ctx context.Context, planID, id int64) (*models.TrackingPlanEvent, error) {
	var pe models.TrackingPlanEvent
	err := s.q.QueryRow(ctx, `
		SELECT id, tracking_plan_id, event_id, additional_properties
		FROM tracking_plan_events
		WHERE id = $1 AND tracking_plan_id = $2
	`, id, planID).Scan(&pe.ID, &pe.TrackingPlanID, &pe.EventID, &pe.AdditionalProperties)
	if err != nil {
		return nil, mapError(err)
	}
	return &pe, nil
}

func (s trackingPlanStore) UpdateEvent(ctx context.Context, pe *models.TrackingPlanEvent) error {
	tag, err := s.q.Exec(ctx, `
		UPDATE tracking_plan_events
		SET additional_properties = $2
		WHERE id = $1
	`, pe.ID, pe.AdditionalProperties)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s trackingPlanStore) CreateEventProperty(ctx context.Context, pep *models.TrackingPlanEventProperty) error {
	err := s.q.QueryRow(ctx, `
		INSERT INTO tracking_plan_event_properties(tracking_plan_event_id, property_id, required)
		VALUES ($1, $2, $3)
		RETURNING id
	`, pep.TrackingPlanEventID, pep.PropertyID, pep.Required).Scan(&pep.ID)
	return mapError(err)
}

func (s trackingPlanStore) FindEventProperty(ctx context.Context, planEventID, id int64) (*models.TrackingPlanEventProperty, error) {
	var pep models.TrackingPlanEventProperty
	err := s.q.QueryRow(ctx, `
		SELECT id, tracking_plan_event_id, property_id, required
		FROM tracking_plan_event_properties
		WHERE id = $1 AND tracking_plan_event_id = $2
	`, id, planEventID).Scan(&pep.ID, &pep.TrackingPlanEventID, &pep.PropertyID, &pep.Required)
	if err != nil {
		return nil, mapError(err)
	}
	return &pep, nil
}

func (s trackingPlanStore) UpdateEventProperty(ctx context.Context, pep *models.TrackingPlanEventProperty) error {
	tag, err := s.q.Exec(ctx, `
		UPDATE tracking_plan_event_properties
		SET required = $2
		WHERE id = $1
	`, pep.ID, pep.Required)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
