package repositories

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Storage failure classes the services care about. Errors returned by the
// repositories wrap one of these when the engine reported that condition.
var (
	ErrUniqueViolation      = errors.New("unique constraint violated")
	ErrForeignKeyViolation  = errors.New("foreign key constraint violated")
	ErrSerializationFailure = errors.New("transaction could not be serialized")
)

// classifyError tags engine errors with one of the classes above. Errors that
// don't match any class are returned unchanged.
func classifyError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrUniqueViolation) || errors.Is(err, ErrForeignKeyViolation) || errors.Is(err, ErrSerializationFailure) {
		return err
	}

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", ErrUniqueViolation, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %v", ErrForeignKeyViolation, err)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code.Name() {
		case "unique_violation":
			return fmt.Errorf("%w: %s (%s)", ErrUniqueViolation, pqErr.Message, pqErr.Constraint)
		case "foreign_key_violation":
			return fmt.Errorf("%w: %s (%s)", ErrForeignKeyViolation, pqErr.Message, pqErr.Constraint)
		case "serialization_failure", "deadlock_detected":
			return fmt.Errorf("%w: %s", ErrSerializationFailure, pqErr.Message)
		}
	}
	return err
}
