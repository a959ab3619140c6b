package common

import "errors"

type ErrorCode string

const (
	ErrorCodeValidation   ErrorCode = "validation"
	ErrorCodeCapacity     ErrorCode = "capacity"
	ErrorCodeUnauthorized ErrorCode = "unauthorized"
	ErrorCodeForbidden    ErrorCode = "forbidden"
	ErrorCodeConflict     ErrorCode = "conflict"
	ErrorCodeNotFound     ErrorCode = "not_found"
	ErrorCodeInternal     ErrorCode = "internal"
)

type ServiceError struct {
	Code    ErrorCode
	Message string
}

func (e *ServiceError) Error() string {
	return e.Message
}

func NewServiceError(code ErrorCode, message string) error {
	return &ServiceError{Code: code, Message: message}
}

func NewValidationError(message string) error {
	return NewServiceError(ErrorCodeValidation, message)
}

// NewCapacityError marks a rejected upload batch that would exceed the
// caller's storage quota. Distinct from validation so the UI can offer an
// upgrade path.
func NewCapacityError(message string) error {
	return NewServiceError(ErrorCodeCapacity, message)
}

func NewUnauthorizedError(message string) error {
	return NewServiceError(ErrorCodeUnauthorized, message)
}

func NewForbiddenError(message string) error {
	return NewServiceError(ErrorCodeForbidden, message)
}

func NewConflictError(message string) error {
	return NewServiceError(ErrorCodeConflict, message)
}

func NewNotFoundError(message string) error {
	return NewServiceError(ErrorCodeNotFound, message)
}

func NewInternalError(message string) error {
	return NewServiceError(ErrorCodeInternal, message)
}

func AsServiceError(err error) (*ServiceError, bool) {
	var serviceErr *ServiceError
	if errors.As(err, &serviceErr) {
		return serviceErr, true
	}
	return nil, false
}

// IsCode reports whether err is a ServiceError carrying the given code.
func IsCode(err error, code ErrorCode) bool {
	serviceErr, ok := AsServiceError(err)
	return ok && serviceErr.Code == code
}
