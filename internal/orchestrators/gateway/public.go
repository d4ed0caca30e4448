package gateway

import (
	"github.com/KirkDiggler/rpg-levelgen/internal/errors"
)

// Keys transports attach to failures so callers can degrade gracefully
const (
	MetaFallback = "fallback"
	MetaDialog   = "dialog"

	MessageLevelFailed  = "failed to generate level"
	MessageDialogFailed = "failed to generate dialog"
)

// PublicLevelError reshapes a GenerateLevel failure for callers. Caller
// mistakes and rate limits keep their message; every generation failure
// becomes a generic message flagged for the procedural fallback, with
// backend detail and validator diagnostics removed.
func PublicLevelError(err error) *errors.Error {
	if pub, ok := publicCallerError(err); ok {
		return pub
	}
	return errors.New(generationCode(err), MessageLevelFailed).WithMeta(MetaFallback, true)
}

// PublicDialogError reshapes a GenerateDialog failure for callers. Generation
// failures carry a family-safe line the caller can show instead.
func PublicDialogError(err error) *errors.Error {
	if pub, ok := publicCallerError(err); ok {
		return pub
	}
	return errors.New(generationCode(err), MessageDialogFailed).WithMeta(MetaDialog, FallbackDialog)
}

// PublicError reshapes failures of the non-generating operations
func PublicError(err error) *errors.Error {
	if pub, ok := publicCallerError(err); ok {
		return pub
	}
	return errors.New(errors.CodeInternal, "internal error")
}

func publicCallerError(err error) (*errors.Error, bool) {
	switch code := errors.GetCode(err); code {
	case errors.CodeInvalidArgument:
		return errors.New(code, errors.GetMessage(err)), true
	case errors.CodeResourceExhausted:
		pub := errors.RateLimited(errors.GetMessage(err))
		if resetAt, ok := errors.GetMeta(err)[MetaResetAt]; ok {
			pub = pub.WithMeta(MetaResetAt, resetAt)
		}
		return pub, true
	default:
		return nil, false
	}
}

func generationCode(err error) errors.Code {
	if errors.IsGenerationFailure(err) {
		return errors.GetCode(err)
	}
	return errors.CodeInternal
}
