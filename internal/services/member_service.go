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

type MemberServiceInterface interface {
	ListMembers(ctx context.Context, page request_models.ListRequest) ([]response_models.MemberResponse, error)
	GetMemberById(ctx context.Context, id uint) (response_models.MemberResponse, error)
	GetMemberByName(ctx context.Context, firstName, lastName string) (response_models.MemberResponse, error)
	CreateMember(ctx context.Context, req request_models.MemberRequest) (response_models.MemberResponse, error)
	UpdateMember(ctx context.Context, id uint, req request_models.MemberRequest) (response_models.MemberResponse, error)
	DeleteMember(ctx context.Context, id uint) (response_models.MemberResponse, error)
}

type MemberService struct {
	store  repositories.Store
	log    logrus.FieldLogger
	tracer trace.Tracer
}

func NewMemberService(store repositories.Store, log logrus.FieldLogger) MemberServiceInterface {
	return &MemberService{
		store:  store,
		log:    log.WithField("service", "members"),
		tracer: otel.Tracer("MemberService"),
	}
}

func (m *MemberService) ListMembers(ctx context.Context, page request_models.ListRequest) (_ []response_models.MemberResponse, err error) {
	ctx, span := startSpan(ctx, m.tracer, "ListMembers",
		attribute.Int("page.skip", page.Skip), attribute.Int("page.limit", page.Limit))
	defer func() { endSpan(span, err) }()

	members, err := m.store.Members().ListMembers(ctx, page.Skip, page.Limit)
	if err != nil {
		return nil, translateStoreError(m.log, "ListMembers", err)
	}

	if len(members) == 0 {
		return nil, utils.ErrMembersNotFound
	}

	result := make([]response_models.MemberResponse, 0, len(members))
	for _, member := range members {
		result = append(result, toMemberResponse(member))
	}
	return result, nil
}

func (m *MemberService) GetMemberById(ctx context.Context, id uint) (_ response_models.MemberResponse, err error) {
	ctx, span := startSpan(ctx, m.tracer, "GetMemberById", memberIDAttr(id))
	defer func() { endSpan(span, err) }()

	member, err := m.store.Members().GetMemberById(ctx, id)
	if err != nil {
		return response_models.MemberResponse{}, translateStoreError(m.log, "GetMemberById", err)
	}

	if member == nil {
		return response_models.MemberResponse{}, utils.ErrMemberNotFound
	}

	return toMemberResponse(*member), nil
}

func (m *MemberService) GetMemberByName(ctx context.Context, firstName, lastName string) (_ response_models.MemberResponse, err error) {
	ctx, span := startSpan(ctx, m.tracer, "GetMemberByName")
	defer func() { endSpan(span, err) }()

	member, err := m.store.Members().GetMemberByName(ctx, firstName, lastName)
	if err != nil {
		return response_models.MemberResponse{}, translateStoreError(m.log, "GetMemberByName", err)
	}

	if member == nil {
		return response_models.MemberResponse{}, utils.ErrMemberNotFound
	}

	return toMemberResponse(*member), nil
}

// CreateMember checks the plan first, then the name pair. A taken email is
// left to the unique constraint.
func (m *MemberService) CreateMember(ctx context.Context, req request_models.MemberRequest) (_ response_models.MemberResponse, err error) {
	ctx, span := startSpan(ctx, m.tracer, "CreateMember")
	defer func() { endSpan(span, err) }()

	if err := validateRequest(req); err != nil {
		return response_models.MemberResponse{}, err
	}

	member := memberFromRequest(req)
	err = m.store.WithinTransaction(ctx, func(plans repositories.PlanRepository, members repositories.MemberRepository) error {
		plan, err := plans.GetPlanById(ctx, member.PlanID)
		if err != nil {
			return err
		}
		if plan == nil {
			return utils.ErrMemberPlanMissing
		}

		existing, err := members.GetMemberByName(ctx, member.FirstName, member.LastName)
		if err != nil {
			return err
		}
		if existing != nil {
			return utils.ErrMemberExists
		}

		return members.CreateMember(ctx, &member)
	})
	if err != nil {
		err = remap(err, repositories.ErrUniqueViolation, utils.ErrEmailTaken)
		err = remap(err, repositories.ErrForeignKeyViolation, utils.ErrMemberPlanMissing)
		return response_models.MemberResponse{}, translateStoreError(m.log, "CreateMember", err)
	}

	m.log.WithFields(logrus.Fields{"member_id": member.ID, "plan_id": member.PlanID}).Info("member created")
	return toMemberResponse(member), nil
}

// UpdateMember overwrites every field. The new plan is checked before the
// write so a bad plan_id leaves the stored record untouched.
func (m *MemberService) UpdateMember(ctx context.Context, id uint, req request_models.MemberRequest) (_ response_models.MemberResponse, err error) {
	ctx, span := startSpan(ctx, m.tracer, "UpdateMember", memberIDAttr(id))
	defer func() { endSpan(span, err) }()

	if err := validateRequest(req); err != nil {
		return response_models.MemberResponse{}, err
	}

	fields := memberFromRequest(req)
	var updated *db_models.Member
	err = m.store.WithinTransaction(ctx, func(plans repositories.PlanRepository, members repositories.MemberRepository) error {
		current, err := members.GetMemberById(ctx, id)
		if err != nil {
			return err
		}
		if current == nil {
			return utils.ErrMemberNotFound
		}

		plan, err := plans.GetPlanById(ctx, fields.PlanID)
		if err != nil {
			return err
		}
		if plan == nil {
			return utils.ErrMemberNewPlanGone
		}

		updated, err = members.UpdateMember(ctx, id, fields)
		if err != nil {
			return err
		}
		if updated == nil {
			return utils.ErrMemberNotFound
		}
		return nil
	})
	if err != nil {
		err = remap(err, repositories.ErrUniqueViolation, utils.ErrEmailTaken)
		err = remap(err, repositories.ErrForeignKeyViolation, utils.ErrMemberNewPlanGone)
		return response_models.MemberResponse{}, translateStoreError(m.log, "UpdateMember", err)
	}

	m.log.WithFields(logrus.Fields{"member_id": id, "plan_id": updated.PlanID}).Info("member updated")
	return toMemberResponse(*updated), nil
}

func (m *MemberService) DeleteMember(ctx context.Context, id uint) (_ response_models.MemberResponse, err error) {
	ctx, span := startSpan(ctx, m.tracer, "DeleteMember", memberIDAttr(id))
	defer func() { endSpan(span, err) }()

	var deleted *db_models.Member
	err = m.store.WithinTransaction(ctx, func(_ repositories.PlanRepository, members repositories.MemberRepository) error {
		current, err := members.GetMemberById(ctx, id)
		if err != nil {
			return err
		}
		if current == nil {
			return utils.ErrMemberNotFound
		}

		deleted, err = members.DeleteMember(ctx, id)
		if err != nil {
			return err
		}
		if deleted == nil {
			return utils.ErrMemberNotFound
		}
		return nil
	})
	if err != nil {
		return response_models.MemberResponse{}, translateStoreError(m.log, "DeleteMember", err)
	}

	m.log.WithField("member_id", id).Info("member deleted")
	return toMemberResponse(*deleted), nil
}

func memberIDAttr(id uint) attribute.KeyValue {
	return attribute.Int64("member.id", int64(id))
}

func memberFromRequest(req request_models.MemberRequest) db_models.Member {
	first, last := req.Names()
	return db_models.Member{
		FirstName: first,
		LastName:  last,
		Email:     *req.Email,
		PlanID:    *req.PlanID,
	}
}

func toMemberResponse(member db_models.Member) response_models.MemberResponse {
	return response_models.MemberResponse{
		ID:        member.ID,
		FirstName: member.FirstName,
		LastName:  member.LastName,
		Email:     member.Email,
		PlanID:    member.PlanID,
	}
}
