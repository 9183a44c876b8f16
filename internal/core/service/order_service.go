package service

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/rl1809/storefront/internal/core/domain"
	"github.com/rl1809/storefront/internal/port"
)

const orderKey = "order"

// OrderService owns the single pending "order" record of a session store.
type OrderService struct {
	store  port.KeyValueStore
	carts  *CartService
	logger *zap.Logger
}

func NewOrderService(store port.KeyValueStore, carts *CartService, logger *zap.Logger) *OrderService {
	return &OrderService{store: store, carts: carts, logger: logger}
}

// GetOrder returns the stored order; ok is false when there is none.
func (s *OrderService) GetOrder(ctx context.Context) (domain.Order, bool, error) {
	raw, ok, err := s.store.Get(ctx, orderKey)
	if err != nil {
		return domain.Order{}, false, fmt.Errorf("read order: %w", err)
	}
	if !ok {
		return domain.Order{}, false, nil
	}

	var order domain.Order
	if err := json.Unmarshal([]byte(raw), &order); err != nil {
		s.logger.Warn("discarding stored order",
			zap.Error(&domain.PersistenceDecodeError{Key: orderKey, Err: err}))
		return domain.Order{}, false, nil
	}

	return order, true, nil
}

func (s *OrderService) SaveOrder(ctx context.Context, order domain.Order) error {
	raw, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("encode order: %w", err)
	}
	if err := s.store.Set(ctx, orderKey, string(raw)); err != nil {
		return fmt.Errorf("write order: %w", err)
	}
	return nil
}

// PlaceOrder snapshots the cart into a new order for customer and empties
// the cart. Both records are written in a single SetMulti call.
func (s *OrderService) PlaceOrder(ctx context.Context, customer domain.Customer) (domain.Order, error) {
	cart, err := s.carts.GetCart(ctx)
	if err != nil {
		return domain.Order{}, err
	}

	total, err := cart.Total(s.carts.Currency())
	if err != nil {
		return domain.Order{}, err
	}

	order := domain.Order{
		Customer: customer,
		Items:    cart.Clone(),
		Total:    total,
	}

	rawOrder, err := json.Marshal(order)
	if err != nil {
		return domain.Order{}, fmt.Errorf("encode order: %w", err)
	}
	emptyCart, err := encodeCart(domain.Cart{})
	if err != nil {
		return domain.Order{}, err
	}

	if err := s.store.SetMulti(ctx, map[string]string{
		orderKey: string(rawOrder),
		cartKey:  emptyCart,
	}); err != nil {
		return domain.Order{}, fmt.Errorf("place order: %w", err)
	}

	s.logger.Info("order placed",
		zap.String("customer", customer.Email),
		zap.Int("lines", len(order.Items)),
		zap.String("total", total.String()))

	return order, nil
}
