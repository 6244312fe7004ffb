package apperror

import "net/http"

// Stable failure kinds. Clients branch on Kind, not on the message text.
const (
	KindUnauthenticated      = "unauthenticated"
	KindForbidden            = "forbidden"
	KindNotFound             = "not_found"
	KindProfileRequired      = "profile_required"
	KindJobClosed            = "job_closed"
	KindDeadlinePassed       = "deadline_passed"
	KindDuplicateApplication = "duplicate_application"
	KindValidation           = "validation_error"
	KindRateLimited          = "rate_limited"
	KindInternal             = "internal"
)

type AppError struct {
	Code    int    `json:"code"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, kind, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

func Unauthenticated(message string) *AppError {
	return New(http.StatusUnauthorized, KindUnauthenticated, message, nil)
}

func Forbidden(message string) *AppError {
	return New(http.StatusForbidden, KindForbidden, message, nil)
}

func NotFound(message string) *AppError {
	return New(http.StatusNotFound, KindNotFound, message, nil)
}

func ProfileRequired(message string) *AppError {
	return New(http.StatusBadRequest, KindProfileRequired, message, nil)
}

func JobClosed(message string) *AppError {
	return New(http.StatusBadRequest, KindJobClosed, message, nil)
}

func DeadlinePassed(message string) *AppError {
	return New(http.StatusBadRequest, KindDeadlinePassed, message, nil)
}

func DuplicateApplication(message string) *AppError {
	return New(http.StatusConflict, KindDuplicateApplication, message, nil)
}

func Validation(message string) *AppError {
	return New(http.StatusBadRequest, KindValidation, message, nil)
}

func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, KindInternal, "Internal Server Error", err)
}
