package errors

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// ToGRPCError converts err to a status error. Meta travels as a
// google.protobuf.Struct detail. Status errors pass through unchanged.
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	var e *Error
	if !errors.As(err, &e) {
		return status.Error(codes.Internal, err.Error())
	}

	st := status.New(e.Code.GRPCCode(), e.Message)
	if len(e.Meta) > 0 {
		if withDetails, detailErr := st.WithDetails(metaToStruct(e.Meta)); detailErr == nil {
			st = withDetails
		}
	}
	return st.Err()
}

// FromGRPCError converts a status error back into an *Error, restoring Meta
// from the first Struct detail. Non-status errors are returned as is.
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	out := New(fromGRPCCode(st.Code()), st.Message())
	for _, detail := range st.Details() {
		if s, ok := detail.(*structpb.Struct); ok {
			out.Meta = s.AsMap()
			break
		}
	}
	return out
}

// metaToStruct stringifies values structpb cannot represent
func metaToStruct(meta map[string]interface{}) *structpb.Struct {
	fields := make(map[string]*structpb.Value, len(meta))
	for k, v := range meta {
		val, err := structpb.NewValue(v)
		if err != nil {
			val = structpb.NewStringValue(fmt.Sprint(v))
		}
		fields[k] = val
	}
	return &structpb.Struct{Fields: fields}
}
