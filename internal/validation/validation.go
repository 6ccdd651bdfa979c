package validation

// Error marks a user-correctable input problem. Handlers map it to a
// 400 response instead of a server error.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(message string) error {
	return &Error{Message: message}
}
