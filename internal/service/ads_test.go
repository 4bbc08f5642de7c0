package service

import (
	"context"
	"testing"
	"time"

	"sporthub-client/internal/dto"
	"sporthub-client/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAdGateway struct {
	ads          []model.Ad
	RejectCalls  []string // reasons sent over the wire
	ApproveCalls []string
	CreateCalls  []dto.CreateAdInput
}

func (f *fakeAdGateway) StoreAds(ctx context.Context) ([]model.Ad, error) {
	return f.ads, nil
}

func (f *fakeAdGateway) CreateAd(ctx context.Context, input dto.CreateAdInput) (*model.Ad, error) {
	f.CreateCalls = append(f.CreateCalls, input)
	return &model.Ad{ID: "ad-new", Status: model.AdPending, Type: input.Type}, nil
}

func (f *fakeAdGateway) AdminAds(ctx context.Context, status model.AdStatus) ([]model.Ad, error) {
	out := []model.Ad{}
	for _, a := range f.ads {
		if status == "" || a.Status == status {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAdGateway) ApproveAd(ctx context.Context, id string) (*model.Ad, error) {
	f.ApproveCalls = append(f.ApproveCalls, id)
	return &model.Ad{ID: id, Status: model.AdApproved}, nil
}

func (f *fakeAdGateway) RejectAd(ctx context.Context, id, reason string) (*model.Ad, error) {
	f.RejectCalls = append(f.RejectCalls, reason)
	return &model.Ad{ID: id, Status: model.AdRejected, Reason: reason}, nil
}

func newTestAdService(gw *fakeAdGateway) AdService {
	return NewAdService(gw, nil, zerolog.Nop())
}

func TestAdService_Reject_EmptyReasonRefusedLocally(t *testing.T) {
	gw := &fakeAdGateway{}
	svc := newTestAdService(gw)

	for _, reason := range []string{"", "   ", "\t\n"} {
		_, err := svc.Reject(context.Background(), "ad-1", reason)

		require.Error(t, err, "reason %q", reason)
		assert.True(t, IsValidation(err))
		assert.Equal(t, "Please provide a rejection reason", err.Error())
	}
	assert.Empty(t, gw.RejectCalls, "no network call may be issued for a blank reason")
}

func TestAdService_Reject_NonEmptyReasonSucceeds(t *testing.T) {
	gw := &fakeAdGateway{}
	svc := newTestAdService(gw)

	ad, err := svc.Reject(context.Background(), "ad-1", "misleading pricing")

	require.NoError(t, err)
	assert.Equal(t, model.AdRejected, ad.Status)
	assert.Equal(t, []string{"misleading pricing"}, gw.RejectCalls)
}

func TestAdService_Approve(t *testing.T) {
	gw := &fakeAdGateway{}
	svc := newTestAdService(gw)

	ad, err := svc.Approve(context.Background(), "ad-7")

	require.NoError(t, err)
	assert.Equal(t, model.AdApproved, ad.Status)
	assert.Equal(t, []string{"ad-7"}, gw.ApproveCalls)
}

func TestAdService_PendingAds(t *testing.T) {
	gw := &fakeAdGateway{ads: []model.Ad{
		{ID: "a-1", Status: model.AdPending},
		{ID: "a-2", Status: model.AdActive},
	}}
	svc := newTestAdService(gw)

	ads, err := svc.PendingAds(context.Background())
	require.NoError(t, err)
	require.Len(t, ads, 1)
	assert.Equal(t, "a-1", ads[0].ID)
}

func validCreateInput() dto.CreateAdInput {
	start := time.Now().Add(24 * time.Hour)
	return dto.CreateAdInput{
		Title:       "Badminton Week",
		ProductID:   "p-1",
		Type:        model.AdTypeSponsoredProduct,
		StartDate:   start,
		EndDate:     start.AddDate(0, 0, 7),
		TotalBudget: 5000,
		DailyBudget: 500,
	}
}

func TestAdService_Create_ValidInput(t *testing.T) {
	gw := &fakeAdGateway{}
	svc := newTestAdService(gw)

	ad, err := svc.Create(context.Background(), validCreateInput())

	require.NoError(t, err)
	assert.Equal(t, model.AdPending, ad.Status)
	require.Len(t, gw.CreateCalls, 1)
}

func TestAdService_Create_InvalidInputRefusedLocally(t *testing.T) {
	gw := &fakeAdGateway{}
	svc := newTestAdService(gw)

	tests := []struct {
		name   string
		mutate func(*dto.CreateAdInput)
	}{
		{"missing title", func(in *dto.CreateAdInput) { in.Title = "" }},
		{"missing product", func(in *dto.CreateAdInput) { in.ProductID = "" }},
		{"unknown ad type", func(in *dto.CreateAdInput) { in.Type = "popup" }},
		{"end before start", func(in *dto.CreateAdInput) { in.EndDate = in.StartDate.AddDate(0, 0, -1) }},
		{"zero budget", func(in *dto.CreateAdInput) { in.TotalBudget = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validCreateInput()
			tt.mutate(&input)

			_, err := svc.Create(context.Background(), input)
			require.Error(t, err)
			assert.True(t, IsValidation(err))
		})
	}
	assert.Empty(t, gw.CreateCalls)
}

func TestAdService_EstimateCost(t *testing.T) {
	svc := newTestAdService(&fakeAdGateway{})
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	// 10 calendar days inclusive at the sponsored-product rate of 200
	estimate, err := svc.EstimateCost(model.AdTypeSponsoredProduct, start, start.AddDate(0, 0, 9))
	require.NoError(t, err)
	assert.Equal(t, "2000", estimate.String())

	// single-day campaign still bills one day
	estimate, err = svc.EstimateCost(model.AdTypeHomeBanner, start, start)
	require.NoError(t, err)
	assert.Equal(t, "500", estimate.String())
}

func TestAdService_EstimateCost_Invalid(t *testing.T) {
	svc := newTestAdService(&fakeAdGateway{})
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	_, err := svc.EstimateCost("popup", start, start.AddDate(0, 0, 3))
	assert.True(t, IsValidation(err))

	_, err = svc.EstimateCost(model.AdTypeHomeBanner, start, start.AddDate(0, 0, -3))
	assert.True(t, IsValidation(err))
}
