package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInvalidState indicates that a mutation was attempted on a record whose
// current status does not allow it (e.g. approving an already rejected entry).
var ErrInvalidState = errors.New("invalid state transition")

// ErrForbidden indicates that the acting user's role does not permit the action.
var ErrForbidden = errors.New("action not permitted for role")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInternal indicates an unexpected failure inside the application.
var ErrInternal = errors.New("internal error")
