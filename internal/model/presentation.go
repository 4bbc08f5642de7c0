package model

// Presentation is the single status-to-display lookup shared by every screen,
// so labels and colors are not re-declared per screen.
type Presentation struct {
	Label string
	Color string
}

var orderPresentations = map[OrderStatus]Presentation{
	OrderPending:    {Label: "Pending", Color: "#F59E0B"},
	OrderConfirmed:  {Label: "Confirmed", Color: "#3B82F6"},
	OrderProcessing: {Label: "Processing", Color: "#8B5CF6"},
	OrderShipped:    {Label: "Shipped", Color: "#06B6D4"},
	OrderDelivered:  {Label: "Delivered", Color: "#10B981"},
	OrderCancelled:  {Label: "Cancelled", Color: "#EF4444"},
}

var adPresentations = map[AdStatus]Presentation{
	AdDraft:     {Label: "Draft", Color: "#9CA3AF"},
	AdPending:   {Label: "Pending Review", Color: "#F59E0B"},
	AdApproved:  {Label: "Approved", Color: "#3B82F6"},
	AdRejected:  {Label: "Rejected", Color: "#EF4444"},
	AdActive:    {Label: "Active", Color: "#10B981"},
	AdPaused:    {Label: "Paused", Color: "#6B7280"},
	AdCompleted: {Label: "Completed", Color: "#10B981"},
	AdExpired:   {Label: "Expired", Color: "#9CA3AF"},
}

var unknownPresentation = Presentation{Label: "Unknown", Color: "#9CA3AF"}

func (s OrderStatus) Presentation() Presentation {
	if p, ok := orderPresentations[s]; ok {
		return p
	}
	return unknownPresentation
}

func (s AdStatus) Presentation() Presentation {
	if p, ok := adPresentations[s]; ok {
		return p
	}
	return unknownPresentation
}
