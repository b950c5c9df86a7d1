package store

import (
	"context"
	"fmt"

	"care-companion/internal/database"
	"care-companion/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const carePlanColumns = `id, user_id, name, description, conditions, medications, created_at, updated_at`

type CarePlanStore struct {
	db database.DB
}

func NewCarePlanStore(db database.DB) *CarePlanStore {
	return &CarePlanStore{db: db}
}

func scanCarePlan(row pgx.Row, p *model.CarePlan) error {
	return row.Scan(
		&p.ID,
		&p.UserID,
		&p.Name,
		&p.Description,
		&p.Conditions,
		&p.Medications,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
}

// ListByOwner 依 updated_at 由新到舊列出 owner 的照護計畫
func (s *CarePlanStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.CarePlan, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+carePlanColumns+`
		 FROM care_plans
		 WHERE user_id = $1
		 ORDER BY updated_at DESC`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListCarePlansByOwner: %w", err)
	}
	defer rows.Close()

	plans := make([]model.CarePlan, 0)
	for rows.Next() {
		var p model.CarePlan
		if err := scanCarePlan(rows, &p); err != nil {
			return nil, fmt.Errorf("ListCarePlansByOwner: %w", err)
		}
		plans = append(plans, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListCarePlansByOwner: %w", err)
	}
	return plans, nil
}

func (s *CarePlanStore) Create(ctx context.Context, p *model.CarePlan) (*model.CarePlan, error) {
	row := s.db.QueryRow(ctx,
		`INSERT INTO care_plans (user_id, name, description, conditions, medications)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		p.UserID,
		p.Name,
		p.Description,
		nonNil(p.Conditions),
		nonNil(p.Medications),
	)
	if err := row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, fmt.Errorf("CreateCarePlan: %w", translate(err))
	}
	p.Conditions = nonNil(p.Conditions)
	p.Medications = nonNil(p.Medications)
	return p, nil
}

func (s *CarePlanStore) FindByID(ctx context.Context, id uuid.UUID) (*model.CarePlan, error) {
	row := s.db.QueryRow(ctx,
		`SELECT `+carePlanColumns+`
		 FROM care_plans WHERE id = $1`,
		id,
	)
	p := &model.CarePlan{}
	if err := scanCarePlan(row, p); err != nil {
		return nil, fmt.Errorf("FindCarePlanByID: %w", translate(err))
	}
	return p, nil
}

// Update 以整筆取代方式更新 owner 擁有的計畫並刷新 updated_at
func (s *CarePlanStore) Update(ctx context.Context, p *model.CarePlan) (*model.CarePlan, error) {
	row := s.db.QueryRow(ctx,
		`UPDATE care_plans SET
		     name = $1,
		     description = $2,
		     conditions = $3,
		     medications = $4,
		     updated_at = now()
		 WHERE id = $5 AND user_id = $6
		 RETURNING created_at, updated_at`,
		p.Name,
		p.Description,
		nonNil(p.Conditions),
		nonNil(p.Medications),
		p.ID,
		p.UserID,
	)
	if err := row.Scan(&p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, fmt.Errorf("UpdateCarePlan: %w", translate(err))
	}
	p.Conditions = nonNil(p.Conditions)
	p.Medications = nonNil(p.Medications)
	return p, nil
}

// Delete 只刪除 owner 自己的計畫；沒有任何列被刪除時回傳 ErrNotFound
func (s *CarePlanStore) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	tag, err := s.db.Exec(ctx,
		`DELETE FROM care_plans WHERE id = $1 AND user_id = $2`,
		id,
		ownerID,
	)
	if err != nil {
		return fmt.Errorf("DeleteCarePlan: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("DeleteCarePlan: %w", ErrNotFound)
	}
	return nil
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
