package service

import (
	"context"
	"time"

	"sporthub-client/internal/model"

	"github.com/rs/zerolog"
)

const ordersCacheKey = "store_orders"

// orderGateway is the slice of the API client the order workflow needs.
type orderGateway interface {
	StoreOrders(ctx context.Context, status model.OrderStatus) ([]model.Order, error)
	Order(ctx context.Context, id string) (*model.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error)
}

// OrderList carries list results together with the explicit degraded-mode
// flag: true means the backend was unreachable and the data is the last
// cached snapshot, not live state.
type OrderList struct {
	Orders    []model.Order
	Degraded  bool
	FetchedAt time.Time
}

type OrderService interface {
	StoreOrders(ctx context.Context, status model.OrderStatus) (*OrderList, error)
	Order(ctx context.Context, id string) (*model.Order, error)
	Advance(ctx context.Context, order *model.Order) (*model.Order, error)
}

type orderServiceImpl struct {
	gateway orderGateway
	cache   resourceCache
	log     zerolog.Logger
}

func NewOrderService(gateway orderGateway, cache resourceCache, log zerolog.Logger) OrderService {
	return &orderServiceImpl{
		gateway: gateway,
		cache:   cache,
		log:     log.With().Str("component", "orders").Logger(),
	}
}

func (s *orderServiceImpl) StoreOrders(ctx context.Context, status model.OrderStatus) (*OrderList, error) {
	orders, err := s.gateway.StoreOrders(ctx, status)
	if err != nil {
		if cached, fetchedAt, ok := fallbackList[model.Order](ctx, s.cache, ordersCacheKey, err); ok {
			s.log.Warn().Time("fetched_at", fetchedAt).Msg("backend unreachable, serving cached orders")
			return &OrderList{Orders: cached, Degraded: true, FetchedAt: fetchedAt}, nil
		}
		return nil, err
	}

	// only the unfiltered list is cached; a filtered snapshot would be
	// misleading as a fallback
	if status == "" {
		cacheList(ctx, s.cache, ordersCacheKey, orders)
	}
	return &OrderList{Orders: orders, FetchedAt: time.Now()}, nil
}

func (s *orderServiceImpl) Order(ctx context.Context, id string) (*model.Order, error) {
	return s.gateway.Order(ctx, id)
}

// Advance moves the order one step along the fixed fulfillment flow. The
// next status is computed here, not by the backend. Terminal and unknown
// statuses are a local no-op: no request is issued. The returned order is
// the backend's authoritative record; the caller's copy is only reconciled
// after success.
func (s *orderServiceImpl) Advance(ctx context.Context, order *model.Order) (*model.Order, error) {
	next, ok := order.Status.Next()
	if !ok {
		return nil, ErrNoAdvance
	}

	updated, err := s.gateway.UpdateOrderStatus(ctx, order.ID, next)
	if err != nil {
		// prior status is retained; nothing was mutated locally
		return nil, err
	}

	s.log.Info().
		Str("order_id", order.ID).
		Str("from", string(order.Status)).
		Str("to", string(updated.Status)).
		Msg("order status advanced")
	return updated, nil
}
