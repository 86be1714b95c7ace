package utils

import "errors"

// Error kinds. HandleServiceError picks the status code from these.
var (
	ErrValidation    = errors.New("missing required fields")
	ErrNotFound      = errors.New("record not found")
	ErrEmptyResult   = errors.New("no records found")
	ErrConflict      = errors.New("conflict")
	ErrReference     = errors.New("referenced record does not exist")
	ErrDatabaseError = errors.New("database error")

	ErrInvalidID       = errors.New("invalid id parameter")
	ErrInvalidPage     = errors.New("invalid skip parameter")
	ErrInvalidPageSize = errors.New("invalid limit parameter")
)

// ServiceError is an error with a client facing message that unwraps to one of
// the kinds above.
type ServiceError struct {
	Kind    error
	Message string
}

func (e *ServiceError) Error() string { return e.Message }

func (e *ServiceError) Unwrap() error { return e.Kind }

func newServiceError(kind error, message string) *ServiceError {
	return &ServiceError{Kind: kind, Message: message}
}

var (
	ErrMemberNotFound     = newServiceError(ErrNotFound, "Member not found")
	ErrMembersNotFound    = newServiceError(ErrEmptyResult, "No members found")
	ErrMemberExists       = newServiceError(ErrConflict, "Member already exists")
	ErrMemberPlanMissing  = newServiceError(ErrReference, "Member's plan does not exist")
	ErrMemberNewPlanGone  = newServiceError(ErrReference, "Member's new plan does not exist")
	ErrEmailTaken         = newServiceError(ErrConflict, "Email already in use by another member")
	ErrPlanNotFound       = newServiceError(ErrNotFound, "Plan not found")
	ErrPlansNotFound      = newServiceError(ErrEmptyResult, "No plans found")
	ErrPlanHasNoMembers   = newServiceError(ErrEmptyResult, "Plan has no members")
	ErrPlanExists         = newServiceError(ErrConflict, "Plan already exists")
	ErrPlanHasMembers     = newServiceError(ErrConflict, "Plan has members. First update members' plan")
	ErrDuplicateRecord    = newServiceError(ErrConflict, "A record with the same unique value already exists")
	ErrDanglingReference  = newServiceError(ErrReference, "Referenced plan does not exist")
	ErrConcurrentModified = newServiceError(ErrConflict, "Record was modified concurrently, retry the request")
)

// NewValidationError wraps a validator failure so that it maps to 400 while
// keeping the field details in the message.
func NewValidationError(detail string) *ServiceError {
	if detail == "" {
		return newServiceError(ErrValidation, "Missing required fields")
	}
	return newServiceError(ErrValidation, "Missing required fields: "+detail)
}
