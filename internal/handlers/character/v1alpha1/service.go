package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "rpgsheet.character.v1alpha1.CharacterService"

// Method names
const (
	MethodCreateCharacter   = "CreateCharacter"
	MethodGetCharacter      = "GetCharacter"
	MethodUpdateCharacter   = "UpdateCharacter"
	MethodDeleteCharacter   = "DeleteCharacter"
	MethodListCharacters    = "ListCharacters"
	MethodCalculateStats    = "CalculateStats"
	MethodPreviewStats      = "PreviewStats"
	MethodSetPropertyState  = "SetPropertyState"
	MethodRollHitPoints     = "RollHitPoints"
	MethodValidateCharacter = "ValidateCharacter"
)

// CharacterServiceServer is the server API for the character service.
// Every message is a google.protobuf.Struct holding the JSON form of the
// request and response types in messages.go.
type CharacterServiceServer interface {
	CreateCharacter(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetCharacter(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateCharacter(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeleteCharacter(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListCharacters(context.Context, *structpb.Struct) (*structpb.Struct, error)
	CalculateStats(context.Context, *structpb.Struct) (*structpb.Struct, error)
	PreviewStats(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SetPropertyState(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RollHitPoints(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ValidateCharacter(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type unaryMethod func(CharacterServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func methodHandler(name string, call unaryMethod) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(
			srv interface{},
			ctx context.Context,
			dec func(interface{}) error,
			interceptor grpc.UnaryServerInterceptor,
		) (interface{}, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(CharacterServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: "/" + ServiceName + "/" + name,
			}
			handler := func(ctx context.Context, req interface{}) (interface{}, error) {
				return call(srv.(CharacterServiceServer), ctx, req.(*structpb.Struct))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// CharacterServiceDesc describes the character service for grpc.Server
var CharacterServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CharacterServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		methodHandler(MethodCreateCharacter, CharacterServiceServer.CreateCharacter),
		methodHandler(MethodGetCharacter, CharacterServiceServer.GetCharacter),
		methodHandler(MethodUpdateCharacter, CharacterServiceServer.UpdateCharacter),
		methodHandler(MethodDeleteCharacter, CharacterServiceServer.DeleteCharacter),
		methodHandler(MethodListCharacters, CharacterServiceServer.ListCharacters),
		methodHandler(MethodCalculateStats, CharacterServiceServer.CalculateStats),
		methodHandler(MethodPreviewStats, CharacterServiceServer.PreviewStats),
		methodHandler(MethodSetPropertyState, CharacterServiceServer.SetPropertyState),
		methodHandler(MethodRollHitPoints, CharacterServiceServer.RollHitPoints),
		methodHandler(MethodValidateCharacter, CharacterServiceServer.ValidateCharacter),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "rpgsheet/character/v1alpha1/character.proto",
}

// RegisterCharacterServiceServer registers srv on s
func RegisterCharacterServiceServer(s grpc.ServiceRegistrar, srv CharacterServiceServer) {
	s.RegisterService(&CharacterServiceDesc, srv)
}

// CharacterServiceClient calls the character service with Struct messages
type CharacterServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewCharacterServiceClient creates a client on an existing connection
func NewCharacterServiceClient(cc grpc.ClientConnInterface) *CharacterServiceClient {
	return &CharacterServiceClient{cc: cc}
}

// Invoke calls method with a Struct request
func (c *CharacterServiceClient) Invoke(
	ctx context.Context,
	method string,
	in *structpb.Struct,
	opts ...grpc.CallOption,
) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/"+method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// Call encodes req, invokes method and decodes the reply into resp
func (c *CharacterServiceClient) Call(ctx context.Context, method string, req, resp any, opts ...grpc.CallOption) error {
	in, err := ToStruct(req)
	if err != nil {
		return err
	}
	out, err := c.Invoke(ctx, method, in, opts...)
	if err != nil {
		return err
	}
	return FromStruct(out, resp)
}
