package apiv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "alarm.v1.AlarmService"

// Full method names of AlarmService.
const (
	MethodArm       = "/" + ServiceName + "/Arm"
	MethodCancel    = "/" + ServiceName + "/Cancel"
	MethodGetStatus = "/" + ServiceName + "/GetStatus"
)

// AlarmServiceClient is the client API for AlarmService.
type AlarmServiceClient interface {
	Arm(ctx context.Context, in *ArmRequest, opts ...grpc.CallOption) (*AlarmStatusResponse, error)
	Cancel(ctx context.Context, in *CancelRequest, opts ...grpc.CallOption) (*AlarmStatusResponse, error)
	GetStatus(ctx context.Context, in *GetStatusRequest, opts ...grpc.CallOption) (*AlarmStatusResponse, error)
}

type alarmServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewAlarmServiceClient returns a client that sends messages with the JSON codec.
func NewAlarmServiceClient(cc grpc.ClientConnInterface) AlarmServiceClient {
	return &alarmServiceClient{cc: cc}
}

func (c *alarmServiceClient) Arm(ctx context.Context, in *ArmRequest, opts ...grpc.CallOption) (*AlarmStatusResponse, error) {
	return c.invoke(ctx, MethodArm, in, opts)
}

func (c *alarmServiceClient) Cancel(ctx context.Context, in *CancelRequest, opts ...grpc.CallOption) (*AlarmStatusResponse, error) {
	return c.invoke(ctx, MethodCancel, in, opts)
}

func (c *alarmServiceClient) GetStatus(ctx context.Context, in *GetStatusRequest, opts ...grpc.CallOption) (*AlarmStatusResponse, error) {
	return c.invoke(ctx, MethodGetStatus, in, opts)
}

func (c *alarmServiceClient) invoke(ctx context.Context, method string, in any, opts []grpc.CallOption) (*AlarmStatusResponse, error) {
	out := new(AlarmStatusResponse)
	callOptions := append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)

	if err := c.cc.Invoke(ctx, method, in, out, callOptions...); err != nil {
		return nil, err
	}

	return out, nil
}

// AlarmServiceServer is the server API for AlarmService.
// Implementations must embed UnimplementedAlarmServiceServer.
type AlarmServiceServer interface {
	Arm(ctx context.Context, in *ArmRequest) (*AlarmStatusResponse, error)
	Cancel(ctx context.Context, in *CancelRequest) (*AlarmStatusResponse, error)
	GetStatus(ctx context.Context, in *GetStatusRequest) (*AlarmStatusResponse, error)
	mustEmbedUnimplementedAlarmServiceServer()
}

// UnimplementedAlarmServiceServer answers every method with codes.Unimplemented.
type UnimplementedAlarmServiceServer struct{}

// Arm is not implemented.
func (UnimplementedAlarmServiceServer) Arm(context.Context, *ArmRequest) (*AlarmStatusResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Arm not implemented")
}

// Cancel is not implemented.
func (UnimplementedAlarmServiceServer) Cancel(context.Context, *CancelRequest) (*AlarmStatusResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Cancel not implemented")
}

// GetStatus is not implemented.
func (UnimplementedAlarmServiceServer) GetStatus(context.Context, *GetStatusRequest) (*AlarmStatusResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetStatus not implemented")
}

func (UnimplementedAlarmServiceServer) mustEmbedUnimplementedAlarmServiceServer() {}

// RegisterAlarmServiceServer attaches srv to the gRPC server.
func RegisterAlarmServiceServer(s grpc.ServiceRegistrar, srv AlarmServiceServer) {
	s.RegisterService(&AlarmServiceDesc, srv)
}

// unaryHandler adapts a typed server method to grpc.MethodDesc.
func unaryHandler[Req any](
	method string,
	call func(srv AlarmServiceServer, ctx context.Context, in *Req) (*AlarmStatusResponse, error),
) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}

		server, _ := srv.(AlarmServiceServer)
		if interceptor == nil {
			return call(server, ctx, in)
		}

		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: method,
		}

		handler := func(ctx context.Context, req any) (any, error) {
			typed, _ := req.(*Req)

			return call(server, ctx, typed)
		}

		return interceptor(ctx, in, info, handler)
	}
}

// AlarmServiceDesc describes AlarmService for grpc.Server.RegisterService.
//
//nolint:gochecknoglobals // Service descriptors are package-level by convention.
var AlarmServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*AlarmServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Arm",
			Handler: unaryHandler(MethodArm, func(srv AlarmServiceServer, ctx context.Context, in *ArmRequest) (*AlarmStatusResponse, error) {
				return srv.Arm(ctx, in)
			}),
		},
		{
			MethodName: "Cancel",
			Handler: unaryHandler(MethodCancel, func(srv AlarmServiceServer, ctx context.Context, in *CancelRequest) (*AlarmStatusResponse, error) {
				return srv.Cancel(ctx, in)
			}),
		},
		{
			MethodName: "GetStatus",
			Handler: unaryHandler(MethodGetStatus, func(srv AlarmServiceServer, ctx context.Context, in *GetStatusRequest) (*AlarmStatusResponse, error) {
				return srv.GetStatus(ctx, in)
			}),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "alarm/v1",
}
