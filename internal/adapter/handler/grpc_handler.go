package handler

import (
	"context"
	"errors"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/rl1809/storefront/internal/adapter/handler/pb"
	"github.com/rl1809/storefront/internal/core/domain"
	"github.com/rl1809/storefront/internal/core/service"
	"github.com/rl1809/storefront/internal/page"
	"github.com/rl1809/storefront/internal/render"
)

type GRPCHandler struct {
	pb.UnimplementedCartServiceServer
	sessions *service.Sessions
	logger   *zap.Logger
}

func NewGRPCHandler(sessions *service.Sessions, logger *zap.Logger) *GRPCHandler {
	return &GRPCHandler{sessions: sessions, logger: logger}
}

func (h *GRPCHandler) GetCart(ctx context.Context, req *pb.SessionRequest) (*pb.CartResponse, error) {
	doc := &render.CartDocument{}
	err := h.withPage(ctx, req.GetSessionId(), page.Descriptor{CartTable: doc}, func(ctrl page.Controller) error {
		_, err := ctrl.Enter(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return cartResponse(doc), nil
}

func (h *GRPCHandler) AddItem(ctx context.Context, req *pb.AddItemRequest) (*pb.AddItemResponse, error) {
	var (
		res  page.Result
		item *pb.CartLine
	)
	err := h.withSession(ctx, req.GetSessionId(), func(stores service.Stores) error {
		ctrl, err := page.New(page.Descriptor{AddToCart: true}, stores)
		if err != nil {
			return err
		}
		res, err = ctrl.Handle(ctx, page.AddToCart{Name: req.Name, Price: req.Price, Image: req.Img})
		if err != nil {
			return err
		}

		cart, err := stores.Cart.GetCart(ctx)
		if err != nil {
			return err
		}
		if i := cart.Index(req.Name); i >= 0 {
			item = cartLine(i, cart[i])
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &pb.AddItemResponse{Message: res.Signal, Item: item}, nil
}

func (h *GRPCHandler) UpdateQuantity(ctx context.Context, req *pb.UpdateQuantityRequest) (*pb.CartResponse, error) {
	ev := page.ChangeQuantity{Index: int(req.Index), Value: strconv.Itoa(int(req.Qty))}
	return h.editCart(ctx, req.GetSessionId(), ev)
}

func (h *GRPCHandler) RemoveItem(ctx context.Context, req *pb.RemoveItemRequest) (*pb.CartResponse, error) {
	return h.editCart(ctx, req.GetSessionId(), page.RemoveItem{Index: int(req.Index)})
}

func (h *GRPCHandler) editCart(ctx context.Context, sessionID string, ev page.Event) (*pb.CartResponse, error) {
	doc := &render.CartDocument{}
	err := h.withPage(ctx, sessionID, page.Descriptor{CartTable: doc}, func(ctrl page.Controller) error {
		_, err := ctrl.Handle(ctx, ev)
		return err
	})
	if err != nil {
		return nil, err
	}
	return cartResponse(doc), nil
}

func (h *GRPCHandler) PlaceOrder(ctx context.Context, req *pb.PlaceOrderRequest) (*pb.OrderResponse, error) {
	if req.Customer == nil {
		return nil, status.Error(codes.InvalidArgument, "customer is required")
	}
	c := req.Customer
	form := page.CheckoutForm{
		FullName:   c.Fullname,
		Email:      c.Email,
		Phone:      c.Phone,
		Address:    c.Address,
		City:       c.City,
		Country:    c.Country,
		PostalCode: c.Postalcode,
	}

	var (
		res page.Result
		doc = &render.InvoiceDocument{}
	)
	err := h.withSession(ctx, req.GetSessionId(), func(stores service.Stores) error {
		checkout, err := page.New(page.Descriptor{CheckoutForm: true}, stores)
		if err != nil {
			return err
		}
		if res, err = checkout.Handle(ctx, page.SubmitCheckout{Form: form}); err != nil {
			return err
		}

		invoice, err := page.New(page.Descriptor{Invoice: doc}, stores)
		if err != nil {
			return err
		}
		_, err = invoice.Enter(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}

	resp := orderResponse(doc)
	resp.Message = res.Signal
	return resp, nil
}

func (h *GRPCHandler) GetOrder(ctx context.Context, req *pb.SessionRequest) (*pb.OrderResponse, error) {
	doc := &render.InvoiceDocument{}
	var res page.Result
	err := h.withPage(ctx, req.GetSessionId(), page.Descriptor{Invoice: doc}, func(ctrl page.Controller) error {
		var err error
		res, err = ctrl.Enter(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	if !res.Rendered {
		return nil, status.Error(codes.NotFound, "no order has been placed")
	}
	return orderResponse(doc), nil
}

// withSession runs fn on the stores of one session while holding its lock.
func (h *GRPCHandler) withSession(ctx context.Context, sessionID string, fn func(service.Stores) error) error {
	if err := uuid.Validate(sessionID); err != nil {
		return status.Error(codes.InvalidArgument, "session_id must be a UUID")
	}

	stores, release, err := h.sessions.Acquire(ctx, sessionID)
	if err != nil {
		return h.toStatus(sessionID, err)
	}
	defer release()

	if err := fn(stores); err != nil {
		return h.toStatus(sessionID, err)
	}
	return nil
}

func (h *GRPCHandler) withPage(ctx context.Context, sessionID string, d page.Descriptor, fn func(page.Controller) error) error {
	return h.withSession(ctx, sessionID, func(stores service.Stores) error {
		ctrl, err := page.New(d, stores)
		if err != nil {
			return err
		}
		return fn(ctrl)
	})
}

func (h *GRPCHandler) toStatus(sessionID string, err error) error {
	var parseErr *domain.PriceParseError
	switch {
	case errors.Is(err, domain.ErrInvalidIndex),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.As(err, &parseErr):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, domain.ErrCurrencyMismatch):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	}

	h.logger.Error("cart call failed",
		zap.String("session_id", sessionID),
		zap.Error(err))
	return status.Error(codes.Internal, "internal error")
}

func cartLine(index int, item domain.CartItem) *pb.CartLine {
	return &pb.CartLine{
		Index:    int32(index),
		Name:     item.Name,
		Img:      item.Image,
		Price:    item.Price.Display(),
		Qty:      int32(item.Quantity),
		Subtotal: item.Subtotal().Display(),
	}
}

func cartResponse(doc *render.CartDocument) *pb.CartResponse {
	resp := &pb.CartResponse{Items: make([]*pb.CartLine, 0, len(doc.Rows)), Total: doc.Total}
	for _, row := range doc.Rows {
		resp.Items = append(resp.Items, &pb.CartLine{
			Index:    int32(row.Index),
			Name:     row.Name,
			Img:      row.Image,
			Price:    row.UnitPrice,
			Qty:      int32(row.Quantity),
			Subtotal: row.Subtotal,
		})
	}
	return resp
}

func orderResponse(doc *render.InvoiceDocument) *pb.OrderResponse {
	resp := &pb.OrderResponse{
		Fullname: doc.Customer.FullName,
		Email:    doc.Customer.Email,
		Phone:    doc.Customer.Phone,
		Address:  doc.Customer.Address,
		Items:    make([]*pb.CartLine, 0, len(doc.Lines)),
		Total:    doc.Total,
	}
	for i, line := range doc.Lines {
		resp.Items = append(resp.Items, &pb.CartLine{
			Index:    int32(i),
			Name:     line.Name,
			Price:    line.UnitPrice,
			Qty:      int32(line.Quantity),
			Subtotal: line.Subtotal,
		})
	}
	return resp
}
