package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gymapi/internal/models/db_models"
)

type PlanRepository interface {
	GetPlanById(ctx context.Context, id uint) (*db_models.Plan, error)
	GetPlanByName(ctx context.Context, name string) (*db_models.Plan, error)
	ListPlans(ctx context.Context, offset, limit int) ([]db_models.Plan, error)
	CreatePlan(ctx context.Context, plan *db_models.Plan) error
	UpdatePlan(ctx context.Context, id uint, fields db_models.Plan) (*db_models.Plan, error)
	DeletePlan(ctx context.Context, id uint) (*db_models.Plan, error)
}

type planRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &planRepository{db: db}
}

func (p *planRepository) GetPlanById(ctx context.Context, id uint) (*db_models.Plan, error) {
	var plan db_models.Plan
	err := p.db.WithContext(ctx).First(&plan, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &plan, nil
}

func (p *planRepository) GetPlanByName(ctx context.Context, name string) (*db_models.Plan, error) {
	var plan db_models.Plan
	err := p.db.WithContext(ctx).First(&plan, "name = ?", name).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &plan, nil
}

func (p *planRepository) ListPlans(ctx context.Context, offset, limit int) ([]db_models.Plan, error) {
	var plans []db_models.Plan
	err := p.db.WithContext(ctx).
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

func (p *planRepository) CreatePlan(ctx context.Context, plan *db_models.Plan) error {
	return classifyError(p.db.WithContext(ctx).Create(plan).Error)
}

// UpdatePlan overwrites every column, zero values included.
func (p *planRepository) UpdatePlan(ctx context.Context, id uint, fields db_models.Plan) (*db_models.Plan, error) {
	err := p.db.WithContext(ctx).
		Model(&db_models.Plan{ID: id}).
		Select("name", "value", "description").
		Updates(&fields).Error
	if err != nil {
		return nil, classifyError(err)
	}
	return p.GetPlanById(ctx, id)
}

func (p *planRepository) DeletePlan(ctx context.Context, id uint) (*db_models.Plan, error) {
	plan, err := p.GetPlanById(ctx, id)
	if err != nil || plan == nil {
		return plan, err
	}

	if err := p.db.WithContext(ctx).Delete(&db_models.Plan{}, "id = ?", id).Error; err != nil {
		return nil, classifyError(err)
	}
	return plan, nil
}
