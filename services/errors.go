package services

// ValidationError reports a malformed or missing request field. Handlers
// render it as 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NotFoundError reports an id that does not resolve, including parents
// referenced in nested paths and re-parent targets. Handlers render it as
// 404.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// ConflictError reports a uniqueness violation. Handlers render it as 409.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }
