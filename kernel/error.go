package kernel

// Error describes an unrecoverable driver error. All errors in this code
// base are defined as global variables that point to an Error value. The
// driver core must be able to run before any allocator is available so it
// cannot use errors.New.
type Error struct {
	// The module where the error occurred.
	Module string

	// The error message.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}
