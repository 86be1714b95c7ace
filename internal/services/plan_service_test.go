package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gymapi/internal/models/db_models"
	"gymapi/internal/models/request_models"
	"gymapi/internal/repositories"
	"gymapi/pkg/utils"
)

func setupPlanServiceTest() (PlanServiceInterface, *fakeStore, *logtest.Hook) {
	logger, hook := logtest.NewNullLogger()
	store := newFakeStore()
	return NewPlanService(store, logger), store, hook
}

func TestPlanService_ListPlans(t *testing.T) {
	ctx := context.Background()
	page := request_models.DefaultListRequest()

	t.Run("success", func(t *testing.T) {
		service, store, _ := setupPlanServiceTest()
		store.plans.On("ListPlans", mock.Anything, 0, 100).
			Return([]db_models.Plan{{ID: 1, Name: "Basic", Value: 50}, {ID: 2, Name: "Pro", Value: 90}}, nil).Once()

		plans, err := service.ListPlans(ctx, page)
		require.NoError(t, err)
		require.Len(t, plans, 2)
		assert.Equal(t, "Pro", plans[1].Name)
		store.assertExpectations(t)
	})

	t.Run("empty result", func(t *testing.T) {
		service, store, _ := setupPlanServiceTest()
		store.plans.On("ListPlans", mock.Anything, 5, 10).Return([]db_models.Plan{}, nil).Once()

		_, err := service.ListPlans(ctx, request_models.ListRequest{Skip: 5, Limit: 10})
		assert.ErrorIs(t, err, utils.ErrPlansNotFound)
		assert.ErrorIs(t, err, utils.ErrEmptyResult)
		store.assertExpectations(t)
	})

	t.Run("storage failure is logged and hidden", func(t *testing.T) {
		service, store, hook := setupPlanServiceTest()
		store.plans.On("ListPlans", mock.Anything, 0, 100).Return(nil, errors.New("connection reset")).Once()

		_, err := service.ListPlans(ctx, page)
		assert.ErrorIs(t, err, utils.ErrDatabaseError)
		require.NotNil(t, hook.LastEntry())
		assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
		assert.Equal(t, "ListPlans", hook.LastEntry().Data["op"])
	})
}

func TestPlanService_GetPlan(t *testing.T) {
	ctx := context.Background()

	t.Run("by id", func(t *testing.T) {
		service, store, _ := setupPlanServiceTest()
		store.plans.On("GetPlanById", mock.Anything, uint(3)).
			Return(&db_models.Plan{ID: 3, Name: "Basic", Value: 50, Description: strPtr("monthly")}, nil).Once()

		plan, err := service.GetPlanById(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, uint(3), plan.ID)
		assert.Equal(t, "monthly", *plan.Description)
	})

	t.Run("by id absent", func(t *testing.T) {
		service, store, _ := setupPlanServiceTest()
		store.plans.On("GetPlanById", mock.Anything, uint(3)).Return(nil, nil).Once()

		_, err := service.GetPlanById(ctx, 3)
		assert.ErrorIs(t, err, utils.ErrPlanNotFound)
	})

	t.Run("by name absent", func(t *testing.T) {
		service, store, _ := setupPlanServiceTest()
		store.plans.On("GetPlanByName", mock.Anything, "Gold").Return(nil, nil).Once()

		_, err := service.GetPlanByName(ctx, "Gold")
		assert.ErrorIs(t, err, utils.ErrNotFound)
	})
}

func TestPlanService_ListMembersOfPlan(t *testing.T) {
	ctx := context.Background()

	t.Run("members", func(t *testing.T) {
		service, store, _ := setupPlanServiceTest()
		store.members.On("ListMembersOfPlan", mock.Anything, uint(1)).
			Return([]db_models.Member{{ID: 4, Email: "a@gym.com", PlanID: 1}}, nil).Once()

		members, err := service.ListMembersOfPlan(ctx, 1)
		require.NoError(t, err)
		require.Len(t, members, 1)
		assert.Equal(t, "a@gym.com", members[0].Email)
	})

	t.Run("none", func(t *testing.T) {
		service, store, _ := setupPlanServiceTest()
		store.members.On("ListMembersOfPlan", mock.Anything, uint(1)).Return([]db_models.Member{}, nil).Once()

		_, err := service.ListMembersOfPlan(ctx, 1)
		assert.ErrorIs(t, err, utils.ErrPlanHasNoMembers)
	})
}

func TestPlanService_CreatePlan(t *testing.T) {
	ctx := context.Background()
	valid := request_models.PlanRequest{Name: strPtr("Basic"), Value: floatPtr(50), Description: strPtr("monthly")}

	t.Run("success", func(t *testing.T) {
		service, store, _ := setupPlanServiceTest()
		store.plans.On("GetPlanByName", mock.Anything, "Basic").Return(nil, nil).Once()
		store.plans.On("CreatePlan", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { args.Get(1).(*db_models.Plan).ID = 7 }).
			Return(nil).Once()

		plan, err := service.CreatePlan(ctx, valid)
		require.NoError(t, err)
		assert.Equal(t, uint(7), plan.ID)
		assert.Equal(t, "Basic", plan.Name)
		assert.Equal(t, 1, store.txCount)
		store.assertExpectations(t)
	})

	t.Run("zero value is accepted", func(t *testing.T) {
		service, store, _ := setupPlanServiceTest()
		store.plans.On("GetPlanByName", mock.Anything, "Free").Return(nil, nil).Once()
		store.plans.On("CreatePlan", mock.Anything, mock.Anything).Return(nil).Once()

		plan, err := service.CreatePlan(ctx, request_models.PlanRequest{Name: strPtr("Free"), Value: floatPtr(0)})
		require.NoError(t, err)
		assert.Zero(t, plan.Value)
		assert.Nil(t, plan.Description)
	})

	t.Run("missing fields", func(t *testing.T) {
		service, store, _ := setupPlanServiceTest()

		_, err := service.CreatePlan(ctx, request_models.PlanRequest{Name: strPtr("Basic")})
		assert.ErrorIs(t, err, utils.ErrValidation)
		assert.Equal(t, "Missing required fields: value", err.Error())
		assert.Zero(t, store.txCount)
	})

	t.Run("name too long", func(t *testing.T) {
		service, _, _ := setupPlanServiceTest()

		_, err := service.CreatePlan(ctx, request_models.PlanRequest{Name: strPtr("a name well over twenty"), Value: floatPtr(1)})
		assert.ErrorIs(t, err, utils.ErrValidation)
		assert.Contains(t, err.Error(), "name (max=20)")
	})

	t.Run("name exists", func(t *testing.T) {
		service, store, _ := setupPlanServiceTest()
		store.plans.On("GetPlanByName", mock.Anything, "Basic").Return(&db_models.Plan{ID: 1, Name: "Basic"}, nil).Once()

		_, err := service.CreatePlan(ctx, valid)
		assert.ErrorIs(t, err, utils.ErrPlanExists)
		store.plans.AssertNotCalled(t, "CreatePlan", mock.Anything, mock.Anything)
	})

	t.Run("concurrent insert of the same name", func(t *testing.T) {
		service, store, _ := setupPlanServiceTest()
		store.plans.On("GetPlanByName", mock.Anything, "Basic").Return(nil, nil).Once()
		store.plans.On("CreatePlan", mock.Anything, mock.Anything).
			Return(fmt.Errorf("%w: plans_name_key", repositories.ErrUniqueViolation)).Once()

		_, err := service.CreatePlan(ctx, valid)
		assert.ErrorIs(t, err, utils.ErrPlanExists)
		assert.ErrorIs(t, err, utils.ErrConflict)
	})

	t.Run("serialization failure at commit", func(t *testing.T) {
		service, store, hook := setupPlanServiceTest()
		store.commitErr = fmt.Errorf("%w: could not serialize access", repositories.ErrSerializationFailure)
		store.plans.On("GetPlanByName", mock.Anything, "Basic").Return(nil, nil).Once()
		store.plans.On("CreatePlan", mock.Anything, mock.Anything).Return(nil).Once()

		_, err := service.CreatePlan(ctx, valid)
		assert.ErrorIs(t, err, utils.ErrConcurrentModified)
		assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	})
}

func TestPlanService_UpdatePlan(t *testing.T) {
	ctx := context.Background()
	req := request_models.PlanRequest{Name: strPtr("Hard"), Value: floatPtr(0)}

	t.Run("success overwrites every field", func(t *testing.T) {
		service, store, _ := setupPlanServiceTest()
		store.plans.On("GetPlanById", mock.Anything, uint(3)).
			Return(&db_models.Plan{ID: 3, Name: "Basic", Value: 50, Description: strPtr("monthly")}, nil).Once()
		store.plans.On("UpdatePlan", mock.Anything, uint(3), db_models.Plan{Name: "Hard", Value: 0}).
			Return(&db_models.Plan{ID: 3, Name: "Hard", Value: 0}, nil).Once()

		plan, err := service.UpdatePlan(ctx, 3, req)
		require.NoError(t, err)
		assert.Equal(t, "Hard", plan.Name)
		assert.Nil(t, plan.Description)
		store.assertExpectations(t)
	})

	t.Run("absent", func(t *testing.T) {
		service, store, _ := setupPlanServiceTest()
		store.plans.On("GetPlanById", mock.Anything, uint(3)).Return(nil, nil).Once()

		_, err := service.UpdatePlan(ctx, 3, req)
		assert.ErrorIs(t, err, utils.ErrPlanNotFound)
		store.plans.AssertNotCalled(t, "UpdatePlan", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("rename onto a taken name", func(t *testing.T) {
		service, store, _ := setupPlanServiceTest()
		store.plans.On("GetPlanById", mock.Anything, uint(3)).Return(&db_models.Plan{ID: 3}, nil).Once()
		store.plans.On("UpdatePlan", mock.Anything, uint(3), mock.Anything).
			Return(nil, fmt.Errorf("%w: plans_name_key", repositories.ErrUniqueViolation)).Once()

		_, err := service.UpdatePlan(ctx, 3, req)
		assert.ErrorIs(t, err, utils.ErrPlanExists)
	})
}

func TestPlanService_DeletePlan(t *testing.T) {
	ctx := context.Background()

	t.Run("has members", func(t *testing.T) {
		service, store, _ := setupPlanServiceTest()
		store.members.On("ListMembersOfPlan", mock.Anything, uint(1)).
			Return([]db_models.Member{{ID: 1, PlanID: 1}}, nil).Once()

		_, err := service.DeletePlan(ctx, 1)
		assert.ErrorIs(t, err, utils.ErrPlanHasMembers)
		assert.Equal(t, "Plan has members. First update members' plan", err.Error())
		store.plans.AssertNotCalled(t, "GetPlanById", mock.Anything, mock.Anything)
		store.plans.AssertNotCalled(t, "DeletePlan", mock.Anything, mock.Anything)
	})

	t.Run("absent", func(t *testing.T) {
		service, store, _ := setupPlanServiceTest()
		store.members.On("ListMembersOfPlan", mock.Anything, uint(9)).Return([]db_models.Member{}, nil).Once()
		store.plans.On("GetPlanById", mock.Anything, uint(9)).Return(nil, nil).Once()

		_, err := service.DeletePlan(ctx, 9)
		assert.ErrorIs(t, err, utils.ErrPlanNotFound)
	})

	t.Run("success returns the deleted record", func(t *testing.T) {
		service, store, _ := setupPlanServiceTest()
		before := &db_models.Plan{ID: 2, Name: "Pro", Value: 90}
		store.members.On("ListMembersOfPlan", mock.Anything, uint(2)).Return([]db_models.Member{}, nil).Once()
		store.plans.On("GetPlanById", mock.Anything, uint(2)).Return(before, nil).Once()
		store.plans.On("DeletePlan", mock.Anything, uint(2)).Return(before, nil).Once()

		plan, err := service.DeletePlan(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, "Pro", plan.Name)
		store.assertExpectations(t)
	})

	t.Run("member added concurrently", func(t *testing.T) {
		service, store, _ := setupPlanServiceTest()
		store.members.On("ListMembersOfPlan", mock.Anything, uint(2)).Return([]db_models.Member{}, nil).Once()
		store.plans.On("GetPlanById", mock.Anything, uint(2)).Return(&db_models.Plan{ID: 2}, nil).Once()
		store.plans.On("DeletePlan", mock.Anything, uint(2)).
			Return(nil, fmt.Errorf("%w: members_plan_id_fkey", repositories.ErrForeignKeyViolation)).Once()

		_, err := service.DeletePlan(ctx, 2)
		assert.ErrorIs(t, err, utils.ErrPlanHasMembers)
	})
}
