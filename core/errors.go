package core

// ValidationKind names a distinct input validation failure mode.
type ValidationKind string

const (
	ValidationMissingInput      ValidationKind = "missing_input"
	ValidationTextTooLong       ValidationKind = "text_too_long"
	ValidationTooManyImages     ValidationKind = "too_many_images"
	ValidationInvalidImage      ValidationKind = "invalid_image"
	ValidationUnsupportedType   ValidationKind = "unsupported_type"
	ValidationOversizeImage     ValidationKind = "oversize_image"
	ValidationNameCountMismatch ValidationKind = "name_count_mismatch"
)

// ValidationError reports malformed or out-of-bound text/image input. It is
// raised before any network call and is never retried.
type ValidationError struct {
	Kind ValidationKind

	// Index is the offending image index, or -1 when the failure is not
	// scoped to a single image.
	Index int

	Message string

	// Err is the underlying cause, when one exists.
	Err error
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Unwrap exposes the cause to errors.Is and errors.As.
func (e *ValidationError) Unwrap() error {
	return e.Err
}
