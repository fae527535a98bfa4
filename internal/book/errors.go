package book

// ValidationError reports user input that failed a field rule (name, phone
// or birthday). It is recoverable: the shell prints the message and keeps
// the loop alive.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// NotFoundError reports an operation that referenced a contact absent from
// the book. Like ValidationError it is surfaced as a plain message.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string {
	return e.Msg
}
