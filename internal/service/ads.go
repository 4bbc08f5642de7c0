package service

import (
	"context"
	"strings"
	"time"

	"sporthub-client/internal/dto"
	"sporthub-client/internal/model"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const adsCacheKey = "store_ads"

type adGateway interface {
	StoreAds(ctx context.Context) ([]model.Ad, error)
	CreateAd(ctx context.Context, input dto.CreateAdInput) (*model.Ad, error)
	AdminAds(ctx context.Context, status model.AdStatus) ([]model.Ad, error)
	ApproveAd(ctx context.Context, id string) (*model.Ad, error)
	RejectAd(ctx context.Context, id, reason string) (*model.Ad, error)
}

type AdList struct {
	Ads       []model.Ad
	Degraded  bool
	FetchedAt time.Time
}

type AdService interface {
	StoreAds(ctx context.Context) (*AdList, error)
	PendingAds(ctx context.Context) ([]model.Ad, error)
	Create(ctx context.Context, input dto.CreateAdInput) (*model.Ad, error)
	Approve(ctx context.Context, adID string) (*model.Ad, error)
	Reject(ctx context.Context, adID, reason string) (*model.Ad, error)
	EstimateCost(adType model.AdType, start, end time.Time) (decimal.Decimal, error)
}

type adServiceImpl struct {
	gateway  adGateway
	cache    resourceCache
	validate *validator.Validate
	log      zerolog.Logger
}

func NewAdService(gateway adGateway, cache resourceCache, log zerolog.Logger) AdService {
	return &adServiceImpl{
		gateway:  gateway,
		cache:    cache,
		validate: validator.New(),
		log:      log.With().Str("component", "ads").Logger(),
	}
}

func (s *adServiceImpl) StoreAds(ctx context.Context) (*AdList, error) {
	ads, err := s.gateway.StoreAds(ctx)
	if err != nil {
		if cached, fetchedAt, ok := fallbackList[model.Ad](ctx, s.cache, adsCacheKey, err); ok {
			s.log.Warn().Time("fetched_at", fetchedAt).Msg("backend unreachable, serving cached ads")
			return &AdList{Ads: cached, Degraded: true, FetchedAt: fetchedAt}, nil
		}
		return nil, err
	}

	cacheList(ctx, s.cache, adsCacheKey, ads)
	return &AdList{Ads: ads, FetchedAt: time.Now()}, nil
}

func (s *adServiceImpl) PendingAds(ctx context.Context) ([]model.Ad, error) {
	return s.gateway.AdminAds(ctx, model.AdPending)
}

// Create validates the form payload locally, then submits it. The estimated
// cost shown during the form flow is never folded into the budget fields
// here; the backend treats totalBudget/dailyBudget as authoritative.
func (s *adServiceImpl) Create(ctx context.Context, input dto.CreateAdInput) (*model.Ad, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, &ValidationError{Message: "Please fill in all required ad fields: " + err.Error()}
	}
	if _, ok := input.Type.DailyRate(); !ok {
		return nil, &ValidationError{Message: "Unknown ad type"}
	}
	return s.gateway.CreateAd(ctx, input)
}

func (s *adServiceImpl) Approve(ctx context.Context, adID string) (*model.Ad, error) {
	ad, err := s.gateway.ApproveAd(ctx, adID)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("ad_id", adID).Str("status", string(ad.Status)).Msg("ad approved")
	return ad, nil
}

// Reject requires a non-blank reason; a whitespace-only reason is refused
// locally and no request goes out.
func (s *adServiceImpl) Reject(ctx context.Context, adID, reason string) (*model.Ad, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, &ValidationError{Message: "Please provide a rejection reason"}
	}

	ad, err := s.gateway.RejectAd(ctx, adID, reason)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("ad_id", adID).Msg("ad rejected")
	return ad, nil
}

// EstimateCost is the flat display estimate: dailyRate x durationInDays with
// a one-day minimum. It is informational only and never reconciled with the
// budget fields collected in the same form.
func (s *adServiceImpl) EstimateCost(adType model.AdType, start, end time.Time) (decimal.Decimal, error) {
	rate, ok := adType.DailyRate()
	if !ok {
		return decimal.Zero, &ValidationError{Message: "Unknown ad type"}
	}
	if end.Before(start) {
		return decimal.Zero, &ValidationError{Message: "End date must be after start date"}
	}

	days := int64(end.Sub(start).Hours()/24) + 1
	return decimal.NewFromInt(rate).Mul(decimal.NewFromInt(days)), nil
}
