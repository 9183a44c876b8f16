package service

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/rl1809/storefront/internal/core/domain"
	"github.com/rl1809/storefront/internal/port"
)

const cartKey = "cart"

// CartService owns the "cart" record of one session store.
type CartService struct {
	store    port.KeyValueStore
	currency domain.Currency
	logger   *zap.Logger
}

func NewCartService(store port.KeyValueStore, currency domain.Currency, logger *zap.Logger) *CartService {
	return &CartService{store: store, currency: currency, logger: logger}
}

// GetCart returns the stored cart. A missing or undecodable record reads as
// an empty cart; only storage failures are returned.
func (s *CartService) GetCart(ctx context.Context) (domain.Cart, error) {
	raw, ok, err := s.store.Get(ctx, cartKey)
	if err != nil {
		return nil, fmt.Errorf("read cart: %w", err)
	}
	if !ok {
		return domain.Cart{}, nil
	}

	var cart domain.Cart
	if err := json.Unmarshal([]byte(raw), &cart); err != nil {
		s.logger.Warn("discarding stored cart",
			zap.Error(&domain.PersistenceDecodeError{Key: cartKey, Err: err}))
		return domain.Cart{}, nil
	}
	if cart == nil {
		cart = domain.Cart{}
	}

	return cart, nil
}

func (s *CartService) SaveCart(ctx context.Context, cart domain.Cart) error {
	raw, err := encodeCart(cart)
	if err != nil {
		return err
	}
	if err := s.store.Set(ctx, cartKey, raw); err != nil {
		return fmt.Errorf("write cart: %w", err)
	}
	return nil
}

// AddItem adds one unit of product and returns the stored line.
func (s *CartService) AddItem(ctx context.Context, product domain.CartItem) (domain.CartItem, error) {
	cart, err := s.GetCart(ctx)
	if err != nil {
		return domain.CartItem{}, err
	}

	cart, added := cart.Add(product)
	if err := s.SaveCart(ctx, cart); err != nil {
		return domain.CartItem{}, err
	}

	s.logger.Debug("item added", zap.String("name", added.Name), zap.Int("qty", added.Quantity))
	return added, nil
}

// UpdateQuantity sets the quantity of the line at index; qty <= 0 removes it.
func (s *CartService) UpdateQuantity(ctx context.Context, index, qty int) error {
	if qty <= 0 {
		return s.RemoveItem(ctx, index)
	}

	cart, err := s.GetCart(ctx)
	if err != nil {
		return err
	}

	cart, err = cart.SetQuantity(index, qty)
	if err != nil {
		return err
	}

	return s.SaveCart(ctx, cart)
}

func (s *CartService) RemoveItem(ctx context.Context, index int) error {
	cart, err := s.GetCart(ctx)
	if err != nil {
		return err
	}

	cart, err = cart.Remove(index)
	if err != nil {
		return err
	}

	return s.SaveCart(ctx, cart)
}

func (s *CartService) CalculateTotal(ctx context.Context) (domain.Money, error) {
	cart, err := s.GetCart(ctx)
	if err != nil {
		return domain.Money{}, err
	}
	return cart.Total(s.currency)
}

// Currency is the currency an empty cart totals in.
func (s *CartService) Currency() domain.Currency {
	return s.currency
}

func encodeCart(cart domain.Cart) (string, error) {
	if cart == nil {
		cart = domain.Cart{}
	}
	raw, err := json.Marshal(cart)
	if err != nil {
		return "", fmt.Errorf("encode cart: %w", err)
	}
	return string(raw), nil
}
