package model

// PricePair carries the original and discounted price for anything sellable.
// selling <= original is checked at creation time by the forms, the backend
// stays the source of truth.
type PricePair struct {
	Original float64 `json:"original"`
	Selling  float64 `json:"selling"`
}

type Payment struct {
	Method string  `json:"method"`
	Status string  `json:"status"`
	Amount float64 `json:"amount,omitempty"`
}

type Shipping struct {
	Address string `json:"address"`
	Method  string `json:"method"`
}
