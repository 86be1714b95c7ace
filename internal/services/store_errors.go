package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gymapi/internal/repositories"
	"gymapi/pkg/utils"
)

// translateStoreError maps whatever came out of a store call onto the errors
// the handlers understand. Business errors raised inside a transaction pass
// through untouched; raw storage failures are logged and hidden.
func translateStoreError(log logrus.FieldLogger, op string, err error) error {
	if err == nil {
		return nil
	}

	var serviceErr *utils.ServiceError
	if errors.As(err, &serviceErr) {
		return serviceErr
	}

	switch {
	case errors.Is(err, repositories.ErrUniqueViolation):
		return utils.ErrDuplicateRecord
	case errors.Is(err, repositories.ErrForeignKeyViolation):
		return utils.ErrDanglingReference
	case errors.Is(err, repositories.ErrSerializationFailure):
		log.WithField("op", op).WithError(err).Warn("transaction aborted by a concurrent update")
		return utils.ErrConcurrentModified
	}

	log.WithField("op", op).WithError(err).Error("storage failure")
	return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
}

// remap replaces err with target when err is of the given storage class.
func remap(err, class error, target *utils.ServiceError) error {
	if errors.Is(err, class) {
		return target
	}
	return err
}

func startSpan(ctx context.Context, tracer trace.Tracer, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
