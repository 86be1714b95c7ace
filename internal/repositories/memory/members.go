package memory

import (
	"context"

	"gymapi/internal/models/db_models"
)

type memberRepo struct {
	view view
}

func (r *memberRepo) find(match func(m db_models.Member) bool) (*db_models.Member, error) {
	var out *db_models.Member
	err := r.view.read(func(st *state) error {
		for _, id := range sortedKeys(st.members) {
			if m := st.members[id]; match(m) {
				out = &m
				return nil
			}
		}
		return nil
	})
	return out, err
}

func (r *memberRepo) GetMemberById(_ context.Context, id uint) (*db_models.Member, error) {
	var out *db_models.Member
	err := r.view.read(func(st *state) error {
		if m, ok := st.members[id]; ok {
			out = &m
		}
		return nil
	})
	return out, err
}

func (r *memberRepo) GetMemberByEmail(_ context.Context, email string) (*db_models.Member, error) {
	return r.find(func(m db_models.Member) bool { return m.Email == email })
}

func (r *memberRepo) GetMemberByName(_ context.Context, firstName, lastName string) (*db_models.Member, error) {
	return r.find(func(m db_models.Member) bool {
		return m.FirstName == firstName && m.LastName == lastName
	})
}

func (r *memberRepo) ListMembers(_ context.Context, offset, limit int) ([]db_models.Member, error) {
	var out []db_models.Member
	err := r.view.read(func(st *state) error {
		all := make([]db_models.Member, 0, len(st.members))
		for _, id := range sortedKeys(st.members) {
			all = append(all, st.members[id])
		}
		out = page(all, offset, limit)
		return nil
	})
	return out, err
}

func (r *memberRepo) ListMembersOfPlan(_ context.Context, planID uint) ([]db_models.Member, error) {
	out := []db_models.Member{}
	err := r.view.read(func(st *state) error {
		for _, id := range sortedKeys(st.members) {
			if m := st.members[id]; m.PlanID == planID {
				out = append(out, m)
			}
		}
		return nil
	})
	return out, err
}

func (r *memberRepo) CreateMember(_ context.Context, member *db_models.Member) error {
	return r.view.write(func(st *state) error {
		if err := checkMember(st, 0, *member); err != nil {
			return err
		}
		member.ID = st.nextMemberID
		st.nextMemberID++
		st.members[member.ID] = *member
		return nil
	})
}

func (r *memberRepo) UpdateMember(_ context.Context, id uint, fields db_models.Member) (*db_models.Member, error) {
	var out *db_models.Member
	err := r.view.write(func(st *state) error {
		if _, ok := st.members[id]; !ok {
			return nil
		}
		if err := checkMember(st, id, fields); err != nil {
			return err
		}
		fields.ID = id
		st.members[id] = fields
		out = &fields
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *memberRepo) DeleteMember(_ context.Context, id uint) (*db_models.Member, error) {
	var out *db_models.Member
	err := r.view.write(func(st *state) error {
		m, ok := st.members[id]
		if !ok {
			return nil
		}
		delete(st.members, id)
		out = &m
		return nil
	})
	return out, err
}

func checkMember(st *state, self uint, m db_models.Member) error {
	if _, ok := st.plans[m.PlanID]; !ok {
		return foreignKeyViolation(m.PlanID)
	}
	for id, other := range st.members {
		if id != self && other.Email == m.Email {
			return uniqueViolation("members_email_key", m.Email)
		}
	}
	return nil
}
