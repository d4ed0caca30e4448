package errors_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/rpg-levelgen/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	err := errors.New(errors.CodeInvalidArgument, "prompt is required")
	s.Assert().Equal("INVALID_ARGUMENT: prompt is required", err.Error())
	s.Assert().Equal(errors.CodeInvalidArgument, err.Code)
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("connection reset")
	wrapped := errors.Wrap(baseErr, "failed to cache dialog")

	s.Assert().Equal(errors.CodeInternal, wrapped.Code)
	s.Assert().Equal("failed to cache dialog", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	baseErr := errors.RateLimited("too many requests").WithMeta("limit", 10)
	wrapped := errors.Wrap(baseErr, "admission denied")

	s.Assert().True(errors.IsRateLimited(wrapped))
	s.Assert().Equal(10, errors.GetMeta(wrapped)["limit"])
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Assert().Nil(errors.Wrap(nil, "should be nil"))
	s.Assert().Nil(errors.WrapWithCode(nil, errors.CodeCanceled, "should be nil"))
}

func (s *ErrorsTestSuite) TestTaxonomy() {
	testCases := []struct {
		name  string
		err   error
		check func(error) bool
		http  int
	}{
		{"invalid input", errors.InvalidArgument("bad"), errors.IsInvalidArgument, http.StatusBadRequest},
		{"rate limited", errors.RateLimited("slow down"), errors.IsRateLimited, http.StatusTooManyRequests},
		{"parse error", errors.ParseError("not json"), errors.IsParseError, http.StatusInternalServerError},
		{"validation failure", errors.ValidationFailure("unplayable"), errors.IsValidationFailure, http.StatusInternalServerError},
		{"upstream", errors.Upstream(context.DeadlineExceeded, "backend failed"), errors.IsUpstream, http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Assert().True(tc.check(tc.err))
			s.Assert().Equal(tc.http, errors.GetCode(tc.err).HTTPStatus())
		})
	}
}

func (s *ErrorsTestSuite) TestUpstreamKeepsCause() {
	err := errors.Upstream(context.Canceled, "backend call cancelled")
	s.Assert().ErrorIs(err, context.Canceled)
	s.Assert().True(errors.IsGenerationFailure(err))
	s.Assert().False(errors.IsGenerationFailure(errors.RateLimited("x")))
}

func (s *ErrorsTestSuite) TestGetMessage() {
	s.Assert().Equal("user friendly", errors.GetMessage(errors.ParseError("user friendly")))
	s.Assert().Equal("standard error", errors.GetMessage(fmt.Errorf("standard error")))
	s.Assert().Equal(errors.CodeOK, errors.GetCode(nil))
}

func (s *ErrorsTestSuite) TestWrapWithCodeCopiesMeta() {
	inner := errors.ValidationFailure("unplayable").WithMeta("diagnostics", []string{"gap"})
	outer := errors.WrapWithCode(inner, errors.CodeCanceled, "canceled")

	s.Assert().Equal(errors.CodeCanceled, outer.Code)
	s.Assert().Equal([]string{"gap"}, outer.Meta["diagnostics"])
	s.Assert().True(errors.Is(outer, errors.ValidationFailure("")))

	outer.WithMeta("extra", 1)
	s.Assert().NotContains(inner.Meta, "extra")
}

func (s *ErrorsTestSuite) TestGRPCRoundTripEveryCode() {
	for _, code := range []errors.Code{
		errors.CodeCanceled,
		errors.CodeInvalidArgument,
		errors.CodeResourceExhausted,
		errors.CodeFailedPrecondition,
		errors.CodeInternal,
		errors.CodeUnavailable,
		errors.CodeDataLoss,
	} {
		back := errors.FromGRPCError(errors.ToGRPCError(errors.New(code, "x")))
		s.Assert().Equal(code, errors.GetCode(back), code.String())
	}
}

func (s *ErrorsTestSuite) TestGRPCConversion() {
	err := errors.RateLimited("too many requests").WithMeta("window_seconds", 60)

	grpcErr := errors.ToGRPCError(err)
	st, ok := status.FromError(grpcErr)
	s.Require().True(ok)
	s.Assert().Equal(codes.ResourceExhausted, st.Code())
	s.Assert().Equal("too many requests", st.Message())

	back := errors.FromGRPCError(grpcErr)
	s.Assert().True(errors.IsRateLimited(back))
	s.Assert().Equal(float64(60), errors.GetMeta(back)["window_seconds"])
}

func (s *ErrorsTestSuite) TestGRPCConversionStringifiesUnsupportedMeta() {
	err := errors.ValidationFailure("unplayable").WithMeta("diagnostics", []string{"a", "b"})

	st, ok := status.FromError(errors.ToGRPCError(err))
	s.Require().True(ok)
	s.Assert().Equal(codes.FailedPrecondition, st.Code())

	back := errors.FromGRPCError(st.Err())
	s.Assert().Equal("[a b]", errors.GetMeta(back)["diagnostics"])
}

func (s *ErrorsTestSuite) TestGRPCCodeMapping() {
	testCases := []struct {
		code     errors.Code
		expected codes.Code
	}{
		{errors.CodeInvalidArgument, codes.InvalidArgument},
		{errors.CodeResourceExhausted, codes.ResourceExhausted},
		{errors.CodeDataLoss, codes.DataLoss},
		{errors.CodeFailedPrecondition, codes.FailedPrecondition},
		{errors.CodeUnavailable, codes.Unavailable},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Assert().Equal(tc.expected, tc.code.GRPCCode())
		})
	}
}

func (s *ErrorsTestSuite) TestStandardErrorToGRPC() {
	st, ok := status.FromError(errors.ToGRPCError(fmt.Errorf("boom")))
	s.Require().True(ok)
	s.Assert().Equal(codes.Internal, st.Code())
}
