package errors

// InvalidArgument rejects caller input before any backend work
func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

// InvalidArgumentf is InvalidArgument with a formatted message
func InvalidArgumentf(format string, args ...interface{}) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// Internal reports a bug or broken invariant
func Internal(message string) *Error {
	return New(CodeInternal, message)
}

// Internalf is Internal with a formatted message
func Internalf(format string, args ...interface{}) *Error {
	return Newf(CodeInternal, format, args...)
}

// RateLimited is returned when admission control denies a request
func RateLimited(message string) *Error {
	return New(CodeResourceExhausted, message)
}

// ParseError is returned when backend output cannot be decoded
func ParseError(message string) *Error {
	return New(CodeDataLoss, message)
}

// ValidationFailure is returned for a parseable but unplayable document
func ValidationFailure(message string) *Error {
	return New(CodeFailedPrecondition, message)
}

// Upstream wraps a backend failure. Cancellation and deadlines fold into
// the same code.
func Upstream(err error, message string) *Error {
	if err == nil {
		return New(CodeUnavailable, message)
	}
	return &Error{Code: CodeUnavailable, Message: message, Cause: err}
}

func IsInvalidArgument(err error) bool { return GetCode(err) == CodeInvalidArgument }

func IsRateLimited(err error) bool { return GetCode(err) == CodeResourceExhausted }

func IsParseError(err error) bool { return GetCode(err) == CodeDataLoss }

func IsValidationFailure(err error) bool { return GetCode(err) == CodeFailedPrecondition }

func IsUpstream(err error) bool { return GetCode(err) == CodeUnavailable }

// IsGenerationFailure reports whether err should be answered with a
// fallback payload rather than surfaced verbatim
func IsGenerationFailure(err error) bool {
	if err == nil {
		return false
	}
	return mappings[GetCode(err)].degrade
}
