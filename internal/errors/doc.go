// Package errors classifies failures of the level gateway.
//
// An *Error carries a Code, a caller-safe Message, an optional Cause and
// Meta for logs. Codes map onto the gateway taxonomy:
//
//   - InvalidInput: CodeInvalidArgument, rejected before any backend call
//   - RateLimited: CodeResourceExhausted, admission denied
//   - ParseError: CodeDataLoss, backend output was not structured data
//   - ValidationFailure: CodeFailedPrecondition, parseable but unplayable level
//   - UpstreamError: CodeUnavailable, backend unreachable, failing or cancelled
//
// Each code has one HTTP status and one gRPC code. ToGRPCError attaches Meta
// as a google.protobuf.Struct detail and FromGRPCError restores it.
//
//	if errors.IsRateLimited(err) {
//	    // respond with 429
//	}
package errors
