package errs

import "fmt"

// ContextError attaches diagnostic context to a user-visible failure: the
// image file path, the CompressedVector path name, a short context string,
// and — for ErrInternal — an additional integer context such as the
// offending channel index.
type ContextError struct {
	Err             error
	ImageFileName   string
	CVPathName      string
	Context         string
	HasIntContext   bool
	IntContext      int
}

// NewContextError builds a ContextError wrapping sentinel for the named
// image file and CompressedVector path, with a short diagnostic string.
func NewContextError(sentinel error, imageFileName, cvPathName, context string) *ContextError {
	return &ContextError{
		Err:           sentinel,
		ImageFileName: imageFileName,
		CVPathName:    cvPathName,
		Context:       context,
	}
}

// WithIntContext attaches an integer context value (e.g. a channel index)
// to an ErrInternal failure and returns the same error for chaining.
func (e *ContextError) WithIntContext(v int) *ContextError {
	e.HasIntContext = true
	e.IntContext = v
	return e
}

func (e *ContextError) Error() string {
	msg := fmt.Sprintf("%v: imageFileName=%q cvPathName=%q context=%q",
		e.Err, e.ImageFileName, e.CVPathName, e.Context)
	if e.HasIntContext {
		msg += fmt.Sprintf(" intContext=%d", e.IntContext)
	}

	return msg
}

// Unwrap allows errors.Is(err, errs.ErrX) to see through the context
// wrapper to the sentinel.
func (e *ContextError) Unwrap() error {
	return e.Err
}
