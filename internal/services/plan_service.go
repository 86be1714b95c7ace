package services

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gymapi/internal/models/db_models"
	"gymapi/internal/models/request_models"
	"gymapi/internal/models/response_models"
	"gymapi/internal/repositories"
	"gymapi/pkg/utils"
)

type PlanServiceInterface interface {
	ListPlans(ctx context.Context, page request_models.ListRequest) ([]response_models.PlanResponse, error)
	GetPlanById(ctx context.Context, id uint) (response_models.PlanResponse, error)
	GetPlanByName(ctx context.Context, name string) (response_models.PlanResponse, error)
	ListMembersOfPlan(ctx context.Context, id uint) ([]response_models.MemberResponse, error)
	CreatePlan(ctx context.Context, req request_models.PlanRequest) (response_models.PlanResponse, error)
	UpdatePlan(ctx context.Context, id uint, req request_models.PlanRequest) (response_models.PlanResponse, error)
	DeletePlan(ctx context.Context, id uint) (response_models.PlanResponse, error)
}

type PlanService struct {
	store  repositories.Store
	log    logrus.FieldLogger
	tracer trace.Tracer
}

func NewPlanService(store repositories.Store, log logrus.FieldLogger) PlanServiceInterface {
	return &PlanService{
		store:  store,
		log:    log.WithField("service", "plans"),
		tracer: otel.Tracer("PlanService"),
	}
}

func (p *PlanService) ListPlans(ctx context.Context, page request_models.ListRequest) (_ []response_models.PlanResponse, err error) {
	ctx, span := startSpan(ctx, p.tracer, "ListPlans",
		attribute.Int("page.skip", page.Skip), attribute.Int("page.limit", page.Limit))
	defer func() { endSpan(span, err) }()

	plans, err := p.store.Plans().ListPlans(ctx, page.Skip, page.Limit)
	if err != nil {
		return nil, translateStoreError(p.log, "ListPlans", err)
	}

	if len(plans) == 0 {
		return nil, utils.ErrPlansNotFound
	}

	result := make([]response_models.PlanResponse, 0, len(plans))
	for _, plan := range plans {
		result = append(result, toPlanResponse(plan))
	}
	return result, nil
}

func (p *PlanService) GetPlanById(ctx context.Context, id uint) (_ response_models.PlanResponse, err error) {
	ctx, span := startSpan(ctx, p.tracer, "GetPlanById", planIDAttr(id))
	defer func() { endSpan(span, err) }()

	plan, err := p.store.Plans().GetPlanById(ctx, id)
	if err != nil {
		return response_models.PlanResponse{}, translateStoreError(p.log, "GetPlanById", err)
	}

	if plan == nil {
		return response_models.PlanResponse{}, utils.ErrPlanNotFound
	}

	return toPlanResponse(*plan), nil
}

func (p *PlanService) GetPlanByName(ctx context.Context, name string) (_ response_models.PlanResponse, err error) {
	ctx, span := startSpan(ctx, p.tracer, "GetPlanByName", attribute.String("plan.name", name))
	defer func() { endSpan(span, err) }()

	plan, err := p.store.Plans().GetPlanByName(ctx, name)
	if err != nil {
		return response_models.PlanResponse{}, translateStoreError(p.log, "GetPlanByName", err)
	}

	if plan == nil {
		return response_models.PlanResponse{}, utils.ErrPlanNotFound
	}

	return toPlanResponse(*plan), nil
}

// ListMembersOfPlan does not distinguish an unknown plan from a plan nobody
// has subscribed to; both are an empty result.
func (p *PlanService) ListMembersOfPlan(ctx context.Context, id uint) (_ []response_models.MemberResponse, err error) {
	ctx, span := startSpan(ctx, p.tracer, "ListMembersOfPlan", planIDAttr(id))
	defer func() { endSpan(span, err) }()

	members, err := p.store.Members().ListMembersOfPlan(ctx, id)
	if err != nil {
		return nil, translateStoreError(p.log, "ListMembersOfPlan", err)
	}

	if len(members) == 0 {
		return nil, utils.ErrPlanHasNoMembers
	}

	result := make([]response_models.MemberResponse, 0, len(members))
	for _, member := range members {
		result = append(result, toMemberResponse(member))
	}
	return result, nil
}

func (p *PlanService) CreatePlan(ctx context.Context, req request_models.PlanRequest) (_ response_models.PlanResponse, err error) {
	ctx, span := startSpan(ctx, p.tracer, "CreatePlan")
	defer func() { endSpan(span, err) }()

	if err := validateRequest(req); err != nil {
		return response_models.PlanResponse{}, err
	}

	plan := planFromRequest(req)
	err = p.store.WithinTransaction(ctx, func(plans repositories.PlanRepository, _ repositories.MemberRepository) error {
		existing, err := plans.GetPlanByName(ctx, plan.Name)
		if err != nil {
			return err
		}
		if existing != nil {
			return utils.ErrPlanExists
		}
		return plans.CreatePlan(ctx, &plan)
	})
	if err != nil {
		err = remap(err, repositories.ErrUniqueViolation, utils.ErrPlanExists)
		return response_models.PlanResponse{}, translateStoreError(p.log, "CreatePlan", err)
	}

	p.log.WithField("plan_id", plan.ID).Info("plan created")
	return toPlanResponse(plan), nil
}

func (p *PlanService) UpdatePlan(ctx context.Context, id uint, req request_models.PlanRequest) (_ response_models.PlanResponse, err error) {
	ctx, span := startSpan(ctx, p.tracer, "UpdatePlan", planIDAttr(id))
	defer func() { endSpan(span, err) }()

	if err := validateRequest(req); err != nil {
		return response_models.PlanResponse{}, err
	}

	var updated *db_models.Plan
	err = p.store.WithinTransaction(ctx, func(plans repositories.PlanRepository, _ repositories.MemberRepository) error {
		current, err := plans.GetPlanById(ctx, id)
		if err != nil {
			return err
		}
		if current == nil {
			return utils.ErrPlanNotFound
		}

		updated, err = plans.UpdatePlan(ctx, id, planFromRequest(req))
		if err != nil {
			return err
		}
		if updated == nil {
			return utils.ErrPlanNotFound
		}
		return nil
	})
	if err != nil {
		err = remap(err, repositories.ErrUniqueViolation, utils.ErrPlanExists)
		return response_models.PlanResponse{}, translateStoreError(p.log, "UpdatePlan", err)
	}

	p.log.WithField("plan_id", id).Info("plan updated")
	return toPlanResponse(*updated), nil
}

// DeletePlan refuses while any member still references the plan. That check
// runs before the existence check.
func (p *PlanService) DeletePlan(ctx context.Context, id uint) (_ response_models.PlanResponse, err error) {
	ctx, span := startSpan(ctx, p.tracer, "DeletePlan", planIDAttr(id))
	defer func() { endSpan(span, err) }()

	var deleted *db_models.Plan
	err = p.store.WithinTransaction(ctx, func(plans repositories.PlanRepository, members repositories.MemberRepository) error {
		subscribed, err := members.ListMembersOfPlan(ctx, id)
		if err != nil {
			return err
		}
		if len(subscribed) > 0 {
			return utils.ErrPlanHasMembers
		}

		current, err := plans.GetPlanById(ctx, id)
		if err != nil {
			return err
		}
		if current == nil {
			return utils.ErrPlanNotFound
		}

		deleted, err = plans.DeletePlan(ctx, id)
		if err != nil {
			return err
		}
		if deleted == nil {
			return utils.ErrPlanNotFound
		}
		return nil
	})
	if err != nil {
		err = remap(err, repositories.ErrForeignKeyViolation, utils.ErrPlanHasMembers)
		return response_models.PlanResponse{}, translateStoreError(p.log, "DeletePlan", err)
	}

	p.log.WithField("plan_id", id).Info("plan deleted")
	return toPlanResponse(*deleted), nil
}

func planIDAttr(id uint) attribute.KeyValue {
	return attribute.Int64("plan.id", int64(id))
}

func planFromRequest(req request_models.PlanRequest) db_models.Plan {
	return db_models.Plan{
		Name:        *req.Name,
		Value:       *req.Value,
		Description: req.Description,
	}
}

func toPlanResponse(plan db_models.Plan) response_models.PlanResponse {
	return response_models.PlanResponse{
		ID:          plan.ID,
		Name:        plan.Name,
		Value:       plan.Value,
		Description: plan.Description,
	}
}
