package models

// Error taxonomy surfaced to the HTTP layer. The helper package maps each
// type to a status code: not found -> 404, forbidden -> 403,
// unauthorized -> 401, validation -> 400.

type ErrorNotFound struct {
	Message string
	Data    map[string]interface{}
}

func (e ErrorNotFound) Error() string { return e.Message }

type ErrorForbidden struct {
	Message string
}

func (e ErrorForbidden) Error() string { return e.Message }

type ErrorUnauthorized struct {
	Message string
}

func (e ErrorUnauthorized) Error() string { return e.Message }

// ErrorValidation carries per-field messages when the failure maps to named
// payload fields (duplicate username, weak password), or just Message when
// it does not (invalid reaction action).
type ErrorValidation struct {
	Message string
	Fields  map[string][]string
}

func (e ErrorValidation) Error() string {
	if e.Message != "" {
		return e.Message
	}
	for field, msgs := range e.Fields {
		if len(msgs) > 0 {
			return field + ": " + msgs[0]
		}
	}
	return "validation failed"
}

func NewFieldError(field, message string) ErrorValidation {
	return ErrorValidation{Fields: map[string][]string{field: {message}}}
}
