package repositories

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// TxFunc receives repositories bound to one open transaction.
type TxFunc func(plans PlanRepository, members MemberRepository) error

// Store groups the repositories and runs multi-step sequences atomically.
type Store interface {
	Plans() PlanRepository
	Members() MemberRepository
	// WithinTransaction commits when fn returns nil and rolls back otherwise.
	// The error from fn is returned as is.
	WithinTransaction(ctx context.Context, fn TxFunc) error
	Ping(ctx context.Context) error
}

type gormStore struct {
	db        *gorm.DB
	isolation sql.IsolationLevel
	plans     PlanRepository
	members   MemberRepository
}

func NewGormStore(db *gorm.DB, isolation sql.IsolationLevel) Store {
	return &gormStore{
		db:        db,
		isolation: isolation,
		plans:     NewPlanRepository(db),
		members:   NewMemberRepository(db),
	}
}

func (s *gormStore) Plans() PlanRepository { return s.plans }

func (s *gormStore) Members() MemberRepository { return s.members }

func (s *gormStore) WithinTransaction(ctx context.Context, fn TxFunc) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewPlanRepository(tx), NewMemberRepository(tx))
	}, &sql.TxOptions{Isolation: s.isolation})
	return classifyError(err)
}

func (s *gormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
