package errors

// Code represents an error code
type Code string

// Error codes
//
// The engine distinguishes caller mistakes (CodeInvalidArgument — the caller
// UI is expected to pre-validate and treat these as "no result") from rule
// table defects (CodeFailedPrecondition, CodeOutOfRange — configuration bugs
// that must surface loudly instead of producing wrong gameplay advice).
const (
	CodeOK                 Code = "OK"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeOutOfRange         Code = "OUT_OF_RANGE"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}
