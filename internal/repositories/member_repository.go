package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gymapi/internal/models/db_models"
)

type MemberRepository interface {
	GetMemberById(ctx context.Context, id uint) (*db_models.Member, error)
	GetMemberByEmail(ctx context.Context, email string) (*db_models.Member, error)
	GetMemberByName(ctx context.Context, firstName, lastName string) (*db_models.Member, error)
	ListMembers(ctx context.Context, offset, limit int) ([]db_models.Member, error)
	ListMembersOfPlan(ctx context.Context, planID uint) ([]db_models.Member, error)
	CreateMember(ctx context.Context, member *db_models.Member) error
	UpdateMember(ctx context.Context, id uint, fields db_models.Member) (*db_models.Member, error)
	DeleteMember(ctx context.Context, id uint) (*db_models.Member, error)
}

type memberRepository struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

func (m *memberRepository) first(ctx context.Context, query string, args ...interface{}) (*db_models.Member, error) {
	var member db_models.Member
	err := m.db.WithContext(ctx).Where(query, args...).First(&member).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &member, nil
}

func (m *memberRepository) GetMemberById(ctx context.Context, id uint) (*db_models.Member, error) {
	return m.first(ctx, "id = ?", id)
}

func (m *memberRepository) GetMemberByEmail(ctx context.Context, email string) (*db_models.Member, error) {
	return m.first(ctx, "email = ?", email)
}

// GetMemberByName matches on both halves of the name.
func (m *memberRepository) GetMemberByName(ctx context.Context, firstName, lastName string) (*db_models.Member, error) {
	return m.first(ctx, "first_name = ? AND last_name = ?", firstName, lastName)
}

func (m *memberRepository) ListMembers(ctx context.Context, offset, limit int) ([]db_models.Member, error) {
	var members []db_models.Member
	err := m.db.WithContext(ctx).
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

func (m *memberRepository) ListMembersOfPlan(ctx context.Context, planID uint) ([]db_models.Member, error) {
	var members []db_models.Member
	err := m.db.WithContext(ctx).
		Where("plan_id = ?", planID).
		Order("id").
		Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

func (m *memberRepository) CreateMember(ctx context.Context, member *db_models.Member) error {
	return classifyError(m.db.WithContext(ctx).Create(member).Error)
}

func (m *memberRepository) UpdateMember(ctx context.Context, id uint, fields db_models.Member) (*db_models.Member, error) {
	err := m.db.WithContext(ctx).
		Model(&db_models.Member{ID: id}).
		Select("first_name", "last_name", "email", "plan_id").
		Updates(&fields).Error
	if err != nil {
		return nil, classifyError(err)
	}
	return m.GetMemberById(ctx, id)
}

func (m *memberRepository) DeleteMember(ctx context.Context, id uint) (*db_models.Member, error) {
	member, err := m.GetMemberById(ctx, id)
	if err != nil || member == nil {
		return member, err
	}

	if err := m.db.WithContext(ctx).Delete(&db_models.Member{}, "id = ?", id).Error; err != nil {
		return nil, classifyError(err)
	}
	return member, nil
}
