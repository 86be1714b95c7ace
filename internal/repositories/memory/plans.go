package memory

import (
	"context"
	"fmt"

	"gymapi/internal/models/db_models"
	"gymapi/internal/repositories"
)

type planRepo struct {
	view view
}

func (r *planRepo) GetPlanById(_ context.Context, id uint) (*db_models.Plan, error) {
	var out *db_models.Plan
	err := r.view.read(func(st *state) error {
		if p, ok := st.plans[id]; ok {
			p = clonePlan(p)
			out = &p
		}
		return nil
	})
	return out, err
}

func (r *planRepo) GetPlanByName(_ context.Context, name string) (*db_models.Plan, error) {
	var out *db_models.Plan
	err := r.view.read(func(st *state) error {
		for _, id := range sortedKeys(st.plans) {
			if p := st.plans[id]; p.Name == name {
				p = clonePlan(p)
				out = &p
				return nil
			}
		}
		return nil
	})
	return out, err
}

func (r *planRepo) ListPlans(_ context.Context, offset, limit int) ([]db_models.Plan, error) {
	var out []db_models.Plan
	err := r.view.read(func(st *state) error {
		all := make([]db_models.Plan, 0, len(st.plans))
		for _, id := range sortedKeys(st.plans) {
			all = append(all, clonePlan(st.plans[id]))
		}
		out = page(all, offset, limit)
		return nil
	})
	return out, err
}

func (r *planRepo) CreatePlan(_ context.Context, plan *db_models.Plan) error {
	return r.view.write(func(st *state) error {
		if err := checkPlanName(st, 0, plan.Name); err != nil {
			return err
		}
		plan.ID = st.nextPlanID
		st.nextPlanID++
		st.plans[plan.ID] = clonePlan(*plan)
		return nil
	})
}

func (r *planRepo) UpdatePlan(_ context.Context, id uint, fields db_models.Plan) (*db_models.Plan, error) {
	var out *db_models.Plan
	err := r.view.write(func(st *state) error {
		if _, ok := st.plans[id]; !ok {
			return nil
		}
		if err := checkPlanName(st, id, fields.Name); err != nil {
			return err
		}
		fields.ID = id
		st.plans[id] = clonePlan(fields)
		p := clonePlan(fields)
		out = &p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *planRepo) DeletePlan(_ context.Context, id uint) (*db_models.Plan, error) {
	var out *db_models.Plan
	err := r.view.write(func(st *state) error {
		p, ok := st.plans[id]
		if !ok {
			return nil
		}
		for _, m := range st.members {
			if m.PlanID == id {
				return fmt.Errorf("%w: plan %d is still referenced from table members", repositories.ErrForeignKeyViolation, id)
			}
		}
		delete(st.plans, id)
		out = &p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func checkPlanName(st *state, self uint, name string) error {
	for id, p := range st.plans {
		if id != self && p.Name == name {
			return uniqueViolation("plans_name_key", name)
		}
	}
	return nil
}
