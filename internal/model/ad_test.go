package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, AdPending.CanTransitionTo(AdApproved))
	assert.True(t, AdPending.CanTransitionTo(AdRejected))
	assert.True(t, AdActive.CanTransitionTo(AdPaused))
	assert.True(t, AdPaused.CanTransitionTo(AdActive))

	// no reverts anywhere
	assert.False(t, AdApproved.CanTransitionTo(AdPending))
	assert.False(t, AdRejected.CanTransitionTo(AdPending))
	assert.False(t, AdCompleted.CanTransitionTo(AdActive))
	assert.False(t, AdExpired.CanTransitionTo(AdActive))

	// no skipping moderation
	assert.False(t, AdDraft.CanTransitionTo(AdApproved))
	assert.False(t, AdPending.CanTransitionTo(AdActive))
}

func TestAdStatus_Moderatable(t *testing.T) {
	assert.True(t, AdPending.Moderatable())
	assert.False(t, AdDraft.Moderatable())
	assert.False(t, AdApproved.Moderatable())
	assert.False(t, AdActive.Moderatable())
}

func TestAdType_DailyRate(t *testing.T) {
	rate, ok := AdTypeHomeBanner.DailyRate()
	assert.True(t, ok)
	assert.EqualValues(t, 500, rate)

	_, ok = AdType("popup").DailyRate()
	assert.False(t, ok)
}

func TestStatusPresentations_CoverAllStatuses(t *testing.T) {
	for _, s := range []OrderStatus{OrderPending, OrderConfirmed, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled} {
		p := s.Presentation()
		assert.NotEmpty(t, p.Label, "order status %s", s)
		assert.NotEmpty(t, p.Color, "order status %s", s)
	}
	for s := range adTransitions {
		p := s.Presentation()
		assert.NotEmpty(t, p.Label, "ad status %s", s)
		assert.NotEmpty(t, p.Color, "ad status %s", s)
	}

	assert.Equal(t, "Unknown", OrderStatus("refunded").Presentation().Label)
}
