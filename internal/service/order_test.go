package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"sporthub-client/internal/client"
	"sporthub-client/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeOrderGateway records calls so tests can assert which requests were
// (or were not) issued.
type fakeOrderGateway struct {
	orders      []model.Order
	listErr     error
	updateErr   error
	ListCalls   int
	UpdateCalls []model.OrderStatus
}

func (f *fakeOrderGateway) StoreOrders(ctx context.Context, status model.OrderStatus) ([]model.Order, error) {
	f.ListCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.orders, nil
}

func (f *fakeOrderGateway) Order(ctx context.Context, id string) (*model.Order, error) {
	for i := range f.orders {
		if f.orders[i].ID == id {
			return &f.orders[i], nil
		}
	}
	return nil, &client.APIError{Kind: client.KindNotFound, Message: client.MsgNotFound, Status: 404}
}

// UpdateOrderStatus echoes the backend contract: the requested status wins.
func (f *fakeOrderGateway) UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error) {
	f.UpdateCalls = append(f.UpdateCalls, status)
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return &model.Order{ID: id, Status: status}, nil
}

// fakeCache is an in-memory stand-in for device storage.
type fakeCache struct {
	data      map[string][]byte
	fetchedAt time.Time
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string][]byte), fetchedAt: time.Now()}
}

func (f *fakeCache) PutCache(ctx context.Context, key string, data []byte) error {
	f.data[key] = data
	return nil
}

func (f *fakeCache) GetCache(ctx context.Context, key string) ([]byte, time.Time, error) {
	raw, ok := f.data[key]
	if !ok {
		return nil, time.Time{}, assert.AnError
	}
	return raw, f.fetchedAt, nil
}

func newTestOrderService(gw *fakeOrderGateway, cache resourceCache) OrderService {
	return NewOrderService(gw, cache, zerolog.Nop())
}

func TestOrderService_Advance_ComputesNextStatus(t *testing.T) {
	gw := &fakeOrderGateway{}
	svc := newTestOrderService(gw, nil)

	order := &model.Order{ID: "o-1", Status: model.OrderPending}
	updated, err := svc.Advance(context.Background(), order)

	require.NoError(t, err)
	assert.Equal(t, model.OrderConfirmed, updated.Status)
	require.Len(t, gw.UpdateCalls, 1)
	assert.Equal(t, model.OrderConfirmed, gw.UpdateCalls[0])
}

func TestOrderService_Advance_SequentialCalls(t *testing.T) {
	gw := &fakeOrderGateway{}
	svc := newTestOrderService(gw, nil)

	order := &model.Order{ID: "o-1", Status: model.OrderPending}

	first, err := svc.Advance(context.Background(), order)
	require.NoError(t, err)
	assert.Equal(t, model.OrderConfirmed, first.Status)

	second, err := svc.Advance(context.Background(), first)
	require.NoError(t, err)
	assert.Equal(t, model.OrderProcessing, second.Status)

	assert.Equal(t, []model.OrderStatus{model.OrderConfirmed, model.OrderProcessing}, gw.UpdateCalls)
}

func TestOrderService_Advance_DeliveredIsLocalNoop(t *testing.T) {
	gw := &fakeOrderGateway{}
	svc := newTestOrderService(gw, nil)

	_, err := svc.Advance(context.Background(), &model.Order{ID: "o-1", Status: model.OrderDelivered})

	assert.ErrorIs(t, err, ErrNoAdvance)
	assert.Empty(t, gw.UpdateCalls, "no network call may be issued")
}

func TestOrderService_Advance_CancelledIsLocalNoop(t *testing.T) {
	gw := &fakeOrderGateway{}
	svc := newTestOrderService(gw, nil)

	_, err := svc.Advance(context.Background(), &model.Order{ID: "o-1", Status: model.OrderCancelled})

	assert.ErrorIs(t, err, ErrNoAdvance)
	assert.Empty(t, gw.UpdateCalls)
}

func TestOrderService_Advance_UnknownStatusIsLocalNoop(t *testing.T) {
	gw := &fakeOrderGateway{}
	svc := newTestOrderService(gw, nil)

	_, err := svc.Advance(context.Background(), &model.Order{ID: "o-1", Status: "refunded"})

	assert.ErrorIs(t, err, ErrNoAdvance)
	assert.Empty(t, gw.UpdateCalls)
}

func TestOrderService_Advance_FailureKeepsPriorStatus(t *testing.T) {
	gw := &fakeOrderGateway{
		updateErr: &client.APIError{Kind: client.KindServerError, Message: client.MsgServerError, Status: 500},
	}
	svc := newTestOrderService(gw, nil)

	order := &model.Order{ID: "o-1", Status: model.OrderPending}
	_, err := svc.Advance(context.Background(), order)

	require.Error(t, err)
	// caller's copy untouched, nothing was optimistically mutated
	assert.Equal(t, model.OrderPending, order.Status)
}

// A slow duplicate advance carrying an already-applied status must be
// tolerated: the backend no-ops it and the client does not crash.
func TestOrderService_Advance_DuplicateTolerated(t *testing.T) {
	gw := &fakeOrderGateway{}
	svc := newTestOrderService(gw, nil)

	stale := &model.Order{ID: "o-1", Status: model.OrderPending}

	first, err := svc.Advance(context.Background(), stale)
	require.NoError(t, err)
	assert.Equal(t, model.OrderConfirmed, first.Status)

	// the stale copy still says pending; the duplicate resends confirmed
	dup, err := svc.Advance(context.Background(), stale)
	require.NoError(t, err)
	assert.Equal(t, model.OrderConfirmed, dup.Status)
}

func TestOrderService_StoreOrders_CachesAndServes(t *testing.T) {
	cache := newFakeCache()
	gw := &fakeOrderGateway{orders: []model.Order{{ID: "o-1", Status: model.OrderPending}}}
	svc := newTestOrderService(gw, cache)

	list, err := svc.StoreOrders(context.Background(), "")
	require.NoError(t, err)
	assert.False(t, list.Degraded)
	assert.Len(t, list.Orders, 1)
	assert.Contains(t, cache.data, ordersCacheKey)
}

func TestOrderService_StoreOrders_DegradedFallback(t *testing.T) {
	cache := newFakeCache()
	snapshot, err := json.Marshal([]model.Order{{ID: "o-1", Status: model.OrderShipped}})
	require.NoError(t, err)
	cache.data[ordersCacheKey] = snapshot

	gw := &fakeOrderGateway{listErr: &client.APIError{Kind: client.KindNetwork, Message: client.MsgNetworkError}}
	svc := newTestOrderService(gw, cache)

	list, err := svc.StoreOrders(context.Background(), "")
	require.NoError(t, err)
	assert.True(t, list.Degraded, "cache-served data must be flagged, not passed off as live")
	require.Len(t, list.Orders, 1)
	assert.Equal(t, model.OrderShipped, list.Orders[0].Status)
}

func TestOrderService_StoreOrders_NonNetworkErrorPropagates(t *testing.T) {
	cache := newFakeCache()
	cache.data[ordersCacheKey] = []byte(`[]`)

	gw := &fakeOrderGateway{listErr: &client.APIError{Kind: client.KindForbidden, Message: client.MsgAccessDenied, Status: 403}}
	svc := newTestOrderService(gw, cache)

	_, err := svc.StoreOrders(context.Background(), "")
	require.Error(t, err)
	assert.False(t, client.IsNetwork(err))
}

func TestOrderService_StoreOrders_NoCacheNetworkErrorPropagates(t *testing.T) {
	gw := &fakeOrderGateway{listErr: &client.APIError{Kind: client.KindNetwork, Message: client.MsgNetworkError}}
	svc := newTestOrderService(gw, newFakeCache())

	_, err := svc.StoreOrders(context.Background(), "")
	require.Error(t, err)
	assert.True(t, client.IsNetwork(err))
}
