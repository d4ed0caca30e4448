package errors

import (
	"net/http"

	"google.golang.org/grpc/codes"
)

// Code classifies an error
type Code string

// Error codes
const (
	CodeOK                 Code = "OK"
	CodeCanceled           Code = "CANCELED"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeResourceExhausted  Code = "RESOURCE_EXHAUSTED"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
	CodeDataLoss           Code = "DATA_LOSS"
)

type mapping struct {
	http int
	grpc codes.Code
	// degrade marks codes answered with a fallback payload instead of the
	// underlying message
	degrade bool
}

// Generation failures all surface as 500 so callers switch to a fallback
// without distinguishing causes.
var mappings = map[Code]mapping{
	CodeOK:                 {http.StatusOK, codes.OK, false},
	CodeCanceled:           {http.StatusRequestTimeout, codes.Canceled, false},
	CodeInvalidArgument:    {http.StatusBadRequest, codes.InvalidArgument, false},
	CodeResourceExhausted:  {http.StatusTooManyRequests, codes.ResourceExhausted, false},
	CodeFailedPrecondition: {http.StatusInternalServerError, codes.FailedPrecondition, true},
	CodeInternal:           {http.StatusInternalServerError, codes.Internal, true},
	CodeUnavailable:        {http.StatusInternalServerError, codes.Unavailable, true},
	CodeDataLoss:           {http.StatusInternalServerError, codes.DataLoss, true},
}

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// HTTPStatus returns the HTTP status for the code; unknown codes are 500
func (c Code) HTTPStatus() int {
	if m, ok := mappings[c]; ok {
		return m.http
	}
	return http.StatusInternalServerError
}

// GRPCCode returns the gRPC status code; unknown codes are codes.Unknown
func (c Code) GRPCCode() codes.Code {
	if m, ok := mappings[c]; ok {
		return m.grpc
	}
	return codes.Unknown
}

// fromGRPCCode is the inverse of GRPCCode. Unmapped codes become Internal.
func fromGRPCCode(gc codes.Code) Code {
	for code, m := range mappings {
		if m.grpc == gc {
			return code
		}
	}
	return CodeInternal
}
