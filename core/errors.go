// Package core holds error taxonomy and protocol-wide constants shared by
// the symmetric, curve, and pke packages: the few pieces of state that
// don't belong to any single cryptographic primitive.
package core

// ErrorKind names one of the error categories spec.md §7 calls for,
// independent of how a given package chooses to surface it.
type ErrorKind string

const (
	KindInvalidInputLength ErrorKind = "invalid_input_length"
	KindTagMismatch        ErrorKind = "tag_mismatch"
	KindRootNotFound       ErrorKind = "root_not_found"
	KindEncodingOutOfRange ErrorKind = "encoding_out_of_range"
	KindInvalidCurvePoint  ErrorKind = "invalid_curve_point"
)

// Error is a typed toolkit error carrying an ErrorKind alongside its
// message, so callers can distinguish failure categories with errors.Is
// against the sentinels below without string matching.
type Error struct {
	Kind ErrorKind
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}

// Is reports whether target is a sentinel of the same Kind, so that
// errors.Is(err, core.ErrTagMismatch) works regardless of which
// concrete *Error instance was returned.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinel errors usable with errors.Is. Package-level functions that
// return a *Error wrap or compare against these.
var (
	ErrInvalidInputLength = &Error{Kind: KindInvalidInputLength, Msg: "invalid input length"}
	ErrTagMismatch        = &Error{Kind: KindTagMismatch, Msg: "authentication tag mismatch"}
	ErrRootNotFound       = &Error{Kind: KindRootNotFound, Msg: "no square root exists for the given residue"}
	ErrEncodingOutOfRange = &Error{Kind: KindEncodingOutOfRange, Msg: "value out of range for SP 800-185 encoding"}
	ErrInvalidCurvePoint  = &Error{Kind: KindInvalidCurvePoint, Msg: "point does not satisfy the curve equation"}
)

// WithMessage returns a copy of a sentinel *Error with a more specific
// message, preserving its Kind for errors.Is comparisons.
func (e *Error) WithMessage(msg string) *Error {
	return &Error{Kind: e.Kind, Msg: msg}
}
