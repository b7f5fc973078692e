package domain

import "errors"

var (
	ErrWordNotFound       = errors.New("could not find word")
	ErrNotAuthorized      = errors.New("not authorized")
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Violation is one failed validation rule, serialized into the error
// response's array field.
type Violation struct {
	Param   string `json:"param"`
	Message string `json:"message"`
}

// ValidationError carries every violated rule for a request, in rule
// declaration order.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	return "Validation failed, entered data is incorrect."
}
