package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"sporthub-client/internal/model"

	"github.com/rs/zerolog"
)

const productsCacheKey = "store_products"

type inventoryGateway interface {
	StoreProducts(ctx context.Context) ([]model.Product, error)
	SetProductQuantity(ctx context.Context, id string, quantity int) (*model.Product, error)
	SetProductActive(ctx context.Context, id string, active bool) (*model.Product, error)
}

type ProductList struct {
	Products  []model.Product
	Degraded  bool
	FetchedAt time.Time
}

type InventoryService interface {
	Products(ctx context.Context) (*ProductList, error)
	SetQuantity(ctx context.Context, productID string, quantity int) (*model.Product, error)
	SetQuantityFromInput(ctx context.Context, productID, raw string) (*model.Product, error)
	SetActive(ctx context.Context, productID string, active bool) (*model.Product, error)
}

type inventoryServiceImpl struct {
	gateway inventoryGateway
	cache   resourceCache
	log     zerolog.Logger
}

func NewInventoryService(gateway inventoryGateway, cache resourceCache, log zerolog.Logger) InventoryService {
	return &inventoryServiceImpl{
		gateway: gateway,
		cache:   cache,
		log:     log.With().Str("component", "inventory").Logger(),
	}
}

func (s *inventoryServiceImpl) Products(ctx context.Context) (*ProductList, error) {
	products, err := s.gateway.StoreProducts(ctx)
	if err != nil {
		if cached, fetchedAt, ok := fallbackList[model.Product](ctx, s.cache, productsCacheKey, err); ok {
			s.log.Warn().Time("fetched_at", fetchedAt).Msg("backend unreachable, serving cached products")
			return &ProductList{Products: cached, Degraded: true, FetchedAt: fetchedAt}, nil
		}
		return nil, err
	}

	cacheList(ctx, s.cache, productsCacheKey, products)
	return &ProductList{Products: products, FetchedAt: time.Now()}, nil
}

// SetQuantity replaces the stock count outright. Negative values are refused
// locally; no request is issued for them.
func (s *inventoryServiceImpl) SetQuantity(ctx context.Context, productID string, quantity int) (*model.Product, error) {
	if quantity < 0 {
		return nil, &ValidationError{Message: "Quantity must be a non-negative number"}
	}
	return s.gateway.SetProductQuantity(ctx, productID, quantity)
}

// SetQuantityFromInput parses the raw form field. Anything that is not a
// plain non-negative integer is refused before the network is touched.
func (s *inventoryServiceImpl) SetQuantityFromInput(ctx context.Context, productID, raw string) (*model.Product, error) {
	quantity, err := ParseQuantity(raw)
	if err != nil {
		return nil, err
	}
	return s.SetQuantity(ctx, productID, quantity)
}

func (s *inventoryServiceImpl) SetActive(ctx context.Context, productID string, active bool) (*model.Product, error) {
	return s.gateway.SetProductActive(ctx, productID, active)
}

// ParseQuantity validates a quantity form field.
func ParseQuantity(raw string) (int, error) {
	quantity, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, &ValidationError{Message: "Quantity must be a non-negative number"}
	}
	if quantity < 0 {
		return 0, &ValidationError{Message: "Quantity must be a non-negative number"}
	}
	return quantity, nil
}

// FilterByStockLevel keeps only products classified at the given level.
func FilterByStockLevel(products []model.Product, level model.StockLevel) []model.Product {
	var out []model.Product
	for _, p := range products {
		if p.StockLevel() == level {
			out = append(out, p)
		}
	}
	return out
}
