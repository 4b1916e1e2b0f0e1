package catalog

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "procat.catalog.v1.CatalogService"

// Full method names.
const (
	ListProductsFullMethod    = "/" + ServiceName + "/ListProducts"
	GetFacetsFullMethod       = "/" + ServiceName + "/GetFacets"
	AggregateFacetsFullMethod = "/" + ServiceName + "/AggregateFacets"
)

// CatalogServiceServer is the server API of the catalog service.
// Messages are google.protobuf.Struct so filter maps travel unchanged.
type CatalogServiceServer interface {
	ListProducts(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetFacets(context.Context, *structpb.Struct) (*structpb.Struct, error)
	AggregateFacets(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// RegisterCatalogServiceServer registers srv with s.
func RegisterCatalogServiceServer(s grpc.ServiceRegistrar, srv CatalogServiceServer) {
	s.RegisterService(&CatalogService_ServiceDesc, srv)
}

// CatalogService_ServiceDesc describes the catalog service for grpc.Server.
var CatalogService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CatalogServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ListProducts", Handler: unaryHandler(ListProductsFullMethod, CatalogServiceServer.ListProducts)},
		{MethodName: "GetFacets", Handler: unaryHandler(GetFacetsFullMethod, CatalogServiceServer.GetFacets)},
		{MethodName: "AggregateFacets", Handler: unaryHandler(AggregateFacetsFullMethod, CatalogServiceServer.AggregateFacets)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: ProtoFile,
}

type method func(CatalogServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(fullMethod string, call method) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(CatalogServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(CatalogServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// CatalogServiceClient is the client API of the catalog service.
type CatalogServiceClient interface {
	ListProducts(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetFacets(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	AggregateFacets(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type catalogServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewCatalogServiceClient creates a client over cc.
func NewCatalogServiceClient(cc grpc.ClientConnInterface) CatalogServiceClient {
	return &catalogServiceClient{cc: cc}
}

func (c *catalogServiceClient) ListProducts(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, ListProductsFullMethod, in, opts)
}

func (c *catalogServiceClient) GetFacets(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, GetFacetsFullMethod, in, opts)
}

func (c *catalogServiceClient) AggregateFacets(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, AggregateFacetsFullMethod, in, opts)
}

func (c *catalogServiceClient) invoke(ctx context.Context, fullMethod string, in *structpb.Struct, opts []grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, fullMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
