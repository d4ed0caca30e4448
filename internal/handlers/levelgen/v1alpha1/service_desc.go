package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
)

// Fully qualified names of the gateway service and its methods
const (
	ServiceName = "levelgen.v1alpha1.GatewayService"

	GatewayService_GenerateLevel_FullMethodName  = "/levelgen.v1alpha1.GatewayService/GenerateLevel"
	GatewayService_GenerateDialog_FullMethodName = "/levelgen.v1alpha1.GatewayService/GenerateDialog"
	GatewayService_NextDifficulty_FullMethodName = "/levelgen.v1alpha1.GatewayService/NextDifficulty"
	GatewayService_FallbackLevel_FullMethodName  = "/levelgen.v1alpha1.GatewayService/FallbackLevel"
)

// GatewayServiceServer is the server API for the gateway service
type GatewayServiceServer interface {
	GenerateLevel(context.Context, *GenerateLevelRequest) (*GenerateLevelResponse, error)
	GenerateDialog(context.Context, *GenerateDialogRequest) (*GenerateDialogResponse, error)
	NextDifficulty(context.Context, *NextDifficultyRequest) (*NextDifficultyResponse, error)
	FallbackLevel(context.Context, *FallbackLevelRequest) (*FallbackLevelResponse, error)
}

// RegisterGatewayServiceServer registers srv on s
func RegisterGatewayServiceServer(s grpc.ServiceRegistrar, srv GatewayServiceServer) {
	s.RegisterService(&GatewayService_ServiceDesc, srv)
}

// GatewayService_ServiceDesc describes the gateway service to grpc
var GatewayService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*GatewayServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GenerateLevel", Handler: _GatewayService_GenerateLevel_Handler},
		{MethodName: "GenerateDialog", Handler: _GatewayService_GenerateDialog_Handler},
		{MethodName: "NextDifficulty", Handler: _GatewayService_NextDifficulty_Handler},
		{MethodName: "FallbackLevel", Handler: _GatewayService_FallbackLevel_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "levelgen/v1alpha1/gateway",
}

func _GatewayService_GenerateLevel_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GenerateLevelRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GatewayServiceServer).GenerateLevel(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: GatewayService_GenerateLevel_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(GatewayServiceServer).GenerateLevel(ctx, req.(*GenerateLevelRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _GatewayService_GenerateDialog_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GenerateDialogRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GatewayServiceServer).GenerateDialog(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: GatewayService_GenerateDialog_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(GatewayServiceServer).GenerateDialog(ctx, req.(*GenerateDialogRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _GatewayService_NextDifficulty_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(NextDifficultyRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GatewayServiceServer).NextDifficulty(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: GatewayService_NextDifficulty_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(GatewayServiceServer).NextDifficulty(ctx, req.(*NextDifficultyRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _GatewayService_FallbackLevel_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(FallbackLevelRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GatewayServiceServer).FallbackLevel(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: GatewayService_FallbackLevel_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(GatewayServiceServer).FallbackLevel(ctx, req.(*FallbackLevelRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// GatewayServiceClient is the client API for the gateway service
type GatewayServiceClient interface {
	GenerateLevel(ctx context.Context, in *GenerateLevelRequest, opts ...grpc.CallOption) (*GenerateLevelResponse, error)
	GenerateDialog(ctx context.Context, in *GenerateDialogRequest, opts ...grpc.CallOption) (*GenerateDialogResponse, error)
	NextDifficulty(ctx context.Context, in *NextDifficultyRequest, opts ...grpc.CallOption) (*NextDifficultyResponse, error)
	FallbackLevel(ctx context.Context, in *FallbackLevelRequest, opts ...grpc.CallOption) (*FallbackLevelResponse, error)
}

type gatewayServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewGatewayServiceClient creates a client that speaks the JSON codec
func NewGatewayServiceClient(cc grpc.ClientConnInterface) GatewayServiceClient {
	return &gatewayServiceClient{cc}
}

func callOptions(opts []grpc.CallOption) []grpc.CallOption {
	return append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
}

func (c *gatewayServiceClient) GenerateLevel(ctx context.Context, in *GenerateLevelRequest, opts ...grpc.CallOption) (*GenerateLevelResponse, error) {
	out := new(GenerateLevelResponse)
	if err := c.cc.Invoke(ctx, GatewayService_GenerateLevel_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gatewayServiceClient) GenerateDialog(ctx context.Context, in *GenerateDialogRequest, opts ...grpc.CallOption) (*GenerateDialogResponse, error) {
	out := new(GenerateDialogResponse)
	if err := c.cc.Invoke(ctx, GatewayService_GenerateDialog_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gatewayServiceClient) NextDifficulty(ctx context.Context, in *NextDifficultyRequest, opts ...grpc.CallOption) (*NextDifficultyResponse, error) {
	out := new(NextDifficultyResponse)
	if err := c.cc.Invoke(ctx, GatewayService_NextDifficulty_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gatewayServiceClient) FallbackLevel(ctx context.Context, in *FallbackLevelRequest, opts ...grpc.CallOption) (*FallbackLevelResponse, error) {
	out := new(FallbackLevelResponse)
	if err := c.cc.Invoke(ctx, GatewayService_FallbackLevel_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}
