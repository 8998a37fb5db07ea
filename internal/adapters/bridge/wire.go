package bridge

import (
	"context"

	"go.trai.ch/zerr"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified name of the v2 bridge service.
const ServiceName = "hostshell.bridge.v2.Bridge"

const invokeMethod = "/" + ServiceName + "/Invoke"

// Request field names.
const (
	fieldCommand = "command"
	fieldArgs    = "args"
)

// Host serves bridge commands on the host side of the v2 protocol.
type Host interface {
	Invoke(ctx context.Context, command string, args map[string]any) (any, error)
}

// ServiceDesc describes the v2 bridge service. A request is a Struct
// {command, args} and the response is a single Value.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*Host)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Invoke",
			Handler:    invokeHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "hostshell/bridge/v2/bridge.proto",
}

// RegisterHost registers h as the bridge implementation on s.
func RegisterHost(s grpc.ServiceRegistrar, h Host) {
	s.RegisterService(&ServiceDesc, h)
}

func encodeRequest(command string, args map[string]any) (*structpb.Struct, error) {
	fields := map[string]any{fieldCommand: command}
	if args != nil {
		fields[fieldArgs] = args
	}

	req, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to encode bridge request"), "command", command)
	}
	return req, nil
}

//nolint:revive // signature fixed by grpc.MethodHandler
func invokeHandler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}

	handle := func(ctx context.Context, req any) (any, error) {
		return serveInvoke(ctx, srv.(Host), req.(*structpb.Struct))
	}
	if interceptor == nil {
		return handle(ctx, in)
	}

	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: invokeMethod,
	}
	return interceptor(ctx, in, info, handle)
}

func serveInvoke(ctx context.Context, host Host, req *structpb.Struct) (*structpb.Value, error) {
	fields := req.AsMap()

	command, _ := fields[fieldCommand].(string)
	if command == "" {
		return nil, status.Error(codes.InvalidArgument, "missing command")
	}
	args, _ := fields[fieldArgs].(map[string]any)

	result, err := host.Invoke(ctx, command, args)
	if err != nil {
		if _, ok := status.FromError(err); ok {
			return nil, err
		}
		return nil, status.Error(codes.Unknown, err.Error())
	}

	if names, ok := result.([]string); ok {
		list := make([]any, len(names))
		for i, n := range names {
			list[i] = n
		}
		result = list
	}

	v, err := structpb.NewValue(result)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return v, nil
}
