package services

import (
	"context"

	"github.com/stretchr/testify/mock"
	"gymapi/internal/models/db_models"
	"gymapi/internal/repositories"
)

// MockPlanRepository is a mock implementation of repositories.PlanRepository
type MockPlanRepository struct {
	mock.Mock
}

func (m *MockPlanRepository) GetPlanById(ctx context.Context, id uint) (*db_models.Plan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.Plan), args.Error(1)
}

func (m *MockPlanRepository) GetPlanByName(ctx context.Context, name string) (*db_models.Plan, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.Plan), args.Error(1)
}

func (m *MockPlanRepository) ListPlans(ctx context.Context, offset, limit int) ([]db_models.Plan, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db_models.Plan), args.Error(1)
}

func (m *MockPlanRepository) CreatePlan(ctx context.Context, plan *db_models.Plan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

func (m *MockPlanRepository) UpdatePlan(ctx context.Context, id uint, fields db_models.Plan) (*db_models.Plan, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.Plan), args.Error(1)
}

func (m *MockPlanRepository) DeletePlan(ctx context.Context, id uint) (*db_models.Plan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.Plan), args.Error(1)
}

// MockMemberRepository is a mock implementation of repositories.MemberRepository
type MockMemberRepository struct {
	mock.Mock
}

func (m *MockMemberRepository) GetMemberById(ctx context.Context, id uint) (*db_models.Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.Member), args.Error(1)
}

func (m *MockMemberRepository) GetMemberByEmail(ctx context.Context, email string) (*db_models.Member, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.Member), args.Error(1)
}

func (m *MockMemberRepository) GetMemberByName(ctx context.Context, firstName, lastName string) (*db_models.Member, error) {
	args := m.Called(ctx, firstName, lastName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.Member), args.Error(1)
}

func (m *MockMemberRepository) ListMembers(ctx context.Context, offset, limit int) ([]db_models.Member, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db_models.Member), args.Error(1)
}

func (m *MockMemberRepository) ListMembersOfPlan(ctx context.Context, planID uint) ([]db_models.Member, error) {
	args := m.Called(ctx, planID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db_models.Member), args.Error(1)
}

func (m *MockMemberRepository) CreateMember(ctx context.Context, member *db_models.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockMemberRepository) UpdateMember(ctx context.Context, id uint, fields db_models.Member) (*db_models.Member, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.Member), args.Error(1)
}

func (m *MockMemberRepository) DeleteMember(ctx context.Context, id uint) (*db_models.Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.Member), args.Error(1)
}

// fakeStore hands the same mocks to transactional and plain calls. commitErr
// simulates a failure reported by the engine at commit time.
type fakeStore struct {
	plans     *MockPlanRepository
	members   *MockMemberRepository
	commitErr error
	txCount   int
}

func newFakeStore() *fakeStore {
	return &fakeStore{plans: new(MockPlanRepository), members: new(MockMemberRepository)}
}

func (s *fakeStore) Plans() repositories.PlanRepository { return s.plans }

func (s *fakeStore) Members() repositories.MemberRepository { return s.members }

func (s *fakeStore) WithinTransaction(_ context.Context, fn repositories.TxFunc) error {
	s.txCount++
	if err := fn(s.plans, s.members); err != nil {
		return err
	}
	return s.commitErr
}

func (s *fakeStore) Ping(context.Context) error { return nil }

func (s *fakeStore) assertExpectations(t mock.TestingT) {
	s.plans.AssertExpectations(t)
	s.members.AssertExpectations(t)
}

func strPtr(v string) *string { return &v }

func floatPtr(v float64) *float64 { return &v }

func uintPtr(v uint) *uint { return &v }
