package service

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/rl1809/storefront/internal/core/domain"
	"github.com/rl1809/storefront/internal/port"
)

// Stores groups the cart and order stores of one session.
type Stores struct {
	Cart  *CartService
	Order *OrderService
}

func NewStores(store port.KeyValueStore, currency domain.Currency, logger *zap.Logger) Stores {
	carts := NewCartService(store, currency, logger)
	return Stores{
		Cart:  carts,
		Order: NewOrderService(store, carts, logger),
	}
}

// Sessions hands out per-session stores. Calls for the same session are
// serialised so each read-modify-write runs alone, as it would in a single
// browser tab.
type Sessions struct {
	resolve  port.SessionStoreResolver
	currency domain.Currency
	logger   *zap.Logger

	mu    sync.Mutex
	locks map[string]*sessionLock
}

// sessionLock is held while its one-slot channel is full.
type sessionLock struct {
	held chan struct{}
	refs int
}

func NewSessions(resolve port.SessionStoreResolver, currency domain.Currency, logger *zap.Logger) *Sessions {
	return &Sessions{
		resolve:  resolve,
		currency: currency,
		logger:   logger,
		locks:    make(map[string]*sessionLock),
	}
}

// Acquire locks the session and returns its stores. The caller must call
// release when done. It gives up with ctx.Err() if ctx ends while another
// call holds the session.
func (s *Sessions) Acquire(ctx context.Context, sessionID string) (Stores, func(), error) {
	s.mu.Lock()
	l, ok := s.locks[sessionID]
	if !ok {
		l = &sessionLock{held: make(chan struct{}, 1)}
		s.locks[sessionID] = l
	}
	l.refs++
	s.mu.Unlock()

	select {
	case l.held <- struct{}{}:
	case <-ctx.Done():
		s.unref(sessionID, l)
		return Stores{}, nil, fmt.Errorf("wait for session: %w", ctx.Err())
	}

	var once sync.Once
	release := func() {
		once.Do(func() {
			<-l.held
			s.unref(sessionID, l)
		})
	}

	logger := s.logger.With(zap.String("session_id", sessionID))
	return NewStores(s.resolve(sessionID), s.currency, logger), release, nil
}

func (s *Sessions) unref(sessionID string, l *sessionLock) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l.refs--
	if l.refs == 0 {
		delete(s.locks, sessionID)
	}
}

func (s *Sessions) Currency() domain.Currency {
	return s.currency
}
