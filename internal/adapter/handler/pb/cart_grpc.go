package pb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	CartService_GetCart_FullMethodName        = "/storefront.v1.CartService/GetCart"
	CartService_AddItem_FullMethodName        = "/storefront.v1.CartService/AddItem"
	CartService_UpdateQuantity_FullMethodName = "/storefront.v1.CartService/UpdateQuantity"
	CartService_RemoveItem_FullMethodName     = "/storefront.v1.CartService/RemoveItem"
	CartService_PlaceOrder_FullMethodName     = "/storefront.v1.CartService/PlaceOrder"
	CartService_GetOrder_FullMethodName       = "/storefront.v1.CartService/GetOrder"
)

type CartServiceClient interface {
	GetCart(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*CartResponse, error)
	AddItem(ctx context.Context, in *AddItemRequest, opts ...grpc.CallOption) (*AddItemResponse, error)
	UpdateQuantity(ctx context.Context, in *UpdateQuantityRequest, opts ...grpc.CallOption) (*CartResponse, error)
	RemoveItem(ctx context.Context, in *RemoveItemRequest, opts ...grpc.CallOption) (*CartResponse, error)
	PlaceOrder(ctx context.Context, in *PlaceOrderRequest, opts ...grpc.CallOption) (*OrderResponse, error)
	GetOrder(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*OrderResponse, error)
}

type cartServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewCartServiceClient returns a client that sends every call with the JSON
// codec.
func NewCartServiceClient(cc grpc.ClientConnInterface) CartServiceClient {
	return &cartServiceClient{cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *cartServiceClient) GetCart(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*CartResponse, error) {
	return invoke[CartResponse](ctx, c.cc, CartService_GetCart_FullMethodName, in, opts)
}

func (c *cartServiceClient) AddItem(ctx context.Context, in *AddItemRequest, opts ...grpc.CallOption) (*AddItemResponse, error) {
	return invoke[AddItemResponse](ctx, c.cc, CartService_AddItem_FullMethodName, in, opts)
}

func (c *cartServiceClient) UpdateQuantity(ctx context.Context, in *UpdateQuantityRequest, opts ...grpc.CallOption) (*CartResponse, error) {
	return invoke[CartResponse](ctx, c.cc, CartService_UpdateQuantity_FullMethodName, in, opts)
}

func (c *cartServiceClient) RemoveItem(ctx context.Context, in *RemoveItemRequest, opts ...grpc.CallOption) (*CartResponse, error) {
	return invoke[CartResponse](ctx, c.cc, CartService_RemoveItem_FullMethodName, in, opts)
}

func (c *cartServiceClient) PlaceOrder(ctx context.Context, in *PlaceOrderRequest, opts ...grpc.CallOption) (*OrderResponse, error) {
	return invoke[OrderResponse](ctx, c.cc, CartService_PlaceOrder_FullMethodName, in, opts)
}

func (c *cartServiceClient) GetOrder(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*OrderResponse, error) {
	return invoke[OrderResponse](ctx, c.cc, CartService_GetOrder_FullMethodName, in, opts)
}

type CartServiceServer interface {
	GetCart(context.Context, *SessionRequest) (*CartResponse, error)
	AddItem(context.Context, *AddItemRequest) (*AddItemResponse, error)
	UpdateQuantity(context.Context, *UpdateQuantityRequest) (*CartResponse, error)
	RemoveItem(context.Context, *RemoveItemRequest) (*CartResponse, error)
	PlaceOrder(context.Context, *PlaceOrderRequest) (*OrderResponse, error)
	GetOrder(context.Context, *SessionRequest) (*OrderResponse, error)
	mustEmbedUnimplementedCartServiceServer()
}

// UnimplementedCartServiceServer must be embedded by server implementations.
type UnimplementedCartServiceServer struct{}

func (UnimplementedCartServiceServer) GetCart(context.Context, *SessionRequest) (*CartResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetCart not implemented")
}
func (UnimplementedCartServiceServer) AddItem(context.Context, *AddItemRequest) (*AddItemResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AddItem not implemented")
}
func (UnimplementedCartServiceServer) UpdateQuantity(context.Context, *UpdateQuantityRequest) (*CartResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateQuantity not implemented")
}
func (UnimplementedCartServiceServer) RemoveItem(context.Context, *RemoveItemRequest) (*CartResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RemoveItem not implemented")
}
func (UnimplementedCartServiceServer) PlaceOrder(context.Context, *PlaceOrderRequest) (*OrderResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method PlaceOrder not implemented")
}
func (UnimplementedCartServiceServer) GetOrder(context.Context, *SessionRequest) (*OrderResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetOrder not implemented")
}
func (UnimplementedCartServiceServer) mustEmbedUnimplementedCartServiceServer() {}

func RegisterCartServiceServer(s grpc.ServiceRegistrar, srv CartServiceServer) {
	s.RegisterService(&CartService_ServiceDesc, srv)
}

func unaryHandler[Req any, Resp any](method string, call func(CartServiceServer, context.Context, *Req) (*Resp, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(CartServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: method,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(CartServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var CartService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "storefront.v1.CartService",
	HandlerType: (*CartServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetCart",
			Handler:    unaryHandler(CartService_GetCart_FullMethodName, CartServiceServer.GetCart),
		},
		{
			MethodName: "AddItem",
			Handler:    unaryHandler(CartService_AddItem_FullMethodName, CartServiceServer.AddItem),
		},
		{
			MethodName: "UpdateQuantity",
			Handler:    unaryHandler(CartService_UpdateQuantity_FullMethodName, CartServiceServer.UpdateQuantity),
		},
		{
			MethodName: "RemoveItem",
			Handler:    unaryHandler(CartService_RemoveItem_FullMethodName, CartServiceServer.RemoveItem),
		},
		{
			MethodName: "PlaceOrder",
			Handler:    unaryHandler(CartService_PlaceOrder_FullMethodName, CartServiceServer.PlaceOrder),
		},
		{
			MethodName: "GetOrder",
			Handler:    unaryHandler(CartService_GetOrder_FullMethodName, CartServiceServer.GetOrder),
		},
	},
	Streams: []grpc.StreamDesc{},
}
