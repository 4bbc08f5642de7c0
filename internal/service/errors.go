package service

import "errors"

// ValidationError is a client-side precondition failure. It is never sent to
// the network; the call it guards is simply not made.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ErrNoAdvance means the order is already terminal (delivered, cancelled or
// an unknown status); no advance is offered and no request is issued.
var ErrNoAdvance = errors.New("order status cannot be advanced further")
