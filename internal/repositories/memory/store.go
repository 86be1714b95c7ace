// Package memory provides an in-memory implementation of repositories.Store
// used for tests and ephemeral environments. It enforces the same constraints
// as the SQL schema: unique plan names, unique member emails and the
// members.plan_id foreign key.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"gymapi/internal/models/db_models"
	"gymapi/internal/repositories"
)

var _ repositories.Store = (*Store)(nil)

type state struct {
	plans        map[uint]db_models.Plan
	members      map[uint]db_models.Member
	nextPlanID   uint
	nextMemberID uint
}

func newState() state {
	return state{
		plans:        map[uint]db_models.Plan{},
		members:      map[uint]db_models.Member{},
		nextPlanID:   1,
		nextMemberID: 1,
	}
}

func (s state) clone() state {
	out := state{
		plans:        make(map[uint]db_models.Plan, len(s.plans)),
		members:      make(map[uint]db_models.Member, len(s.members)),
		nextPlanID:   s.nextPlanID,
		nextMemberID: s.nextMemberID,
	}
	for id, p := range s.plans {
		out.plans[id] = clonePlan(p)
	}
	for id, m := range s.members {
		out.members[id] = m
	}
	return out
}

// Store keeps plans and members in maps guarded by one lock.
type Store struct {
	mu    sync.RWMutex
	state state
}

func NewStore() *Store {
	return &Store{state: newState()}
}

func (s *Store) Plans() repositories.PlanRepository {
	return &planRepo{view: &lockedView{store: s}}
}

func (s *Store) Members() repositories.MemberRepository {
	return &memberRepo{view: &lockedView{store: s}}
}

// WithinTransaction runs fn against a copy of the state and swaps it in only
// when fn succeeds. Transactions are serialized by the store lock.
func (s *Store) WithinTransaction(ctx context.Context, fn repositories.TxFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	tx := &txView{state: s.state.clone()}
	if err := fn(&planRepo{view: tx}, &memberRepo{view: tx}); err != nil {
		return err
	}
	s.state = tx.state
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

// view gives repositories read or write access to a state.
type view interface {
	read(fn func(st *state) error) error
	write(fn func(st *state) error) error
}

// lockedView serves single statements outside a transaction. A failed write
// leaves the state untouched because every write validates before mutating.
type lockedView struct {
	store *Store
}

func (v *lockedView) read(fn func(st *state) error) error {
	v.store.mu.RLock()
	defer v.store.mu.RUnlock()
	return fn(&v.store.state)
}

func (v *lockedView) write(fn func(st *state) error) error {
	v.store.mu.Lock()
	defer v.store.mu.Unlock()
	return fn(&v.store.state)
}

// txView is handed out while WithinTransaction holds the lock.
type txView struct {
	state state
}

func (v *txView) read(fn func(st *state) error) error  { return fn(&v.state) }
func (v *txView) write(fn func(st *state) error) error { return fn(&v.state) }

func clonePlan(p db_models.Plan) db_models.Plan {
	if p.Description != nil {
		d := *p.Description
		p.Description = &d
	}
	return p
}

func page[T any](items []T, offset, limit int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit >= 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

func sortedKeys[V any](m map[uint]V) []uint {
	keys := make([]uint, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func uniqueViolation(constraint, value string) error {
	return fmt.Errorf("%w: duplicate key value %q violates %s", repositories.ErrUniqueViolation, value, constraint)
}

func foreignKeyViolation(planID uint) error {
	return fmt.Errorf("%w: plan %d is not present in table plans", repositories.ErrForeignKeyViolation, planID)
}
