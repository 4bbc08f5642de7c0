package client

import (
	"encoding/json"
	"errors"
)

type ErrorKind string

const (
	KindAuthExpired ErrorKind = "auth_expired" // 401, purges credentials
	KindForbidden   ErrorKind = "forbidden"    // 403
	KindNotFound    ErrorKind = "not_found"    // 404
	KindRateLimited ErrorKind = "rate_limited" // 429, no automatic retry
	KindServerError ErrorKind = "server_error" // 5xx
	KindNetwork     ErrorKind = "network"      // no response at all, or timeout
	KindRequest     ErrorKind = "request"      // other rejections, incl. success=false envelopes
)

// User-facing messages the interceptor rewrites raw failures into. Screens
// branch on Kind or show Message, never on raw HTTP status.
const (
	MsgSessionExpired = "Your session has expired. Please log in again."
	MsgAccessDenied   = "You do not have permission to perform this action."
	MsgNotFound       = "The requested resource was not found."
	MsgRateLimited    = "Too many requests. Please try again later."
	MsgServerError    = "Server error. Please try again later."
	MsgNetworkError   = "Network error. Please check your connection."
	MsgRequestFailed  = "Request failed. Please try again."
)

// APIError is the single normalized failure shape every call rejects with.
// Every failure is terminal for that call; retry is always user-initiated.
type APIError struct {
	Kind    ErrorKind
	Message string
	Status  int             // 0 when no response was received
	Payload json.RawMessage // original response body, when one existed
}

func (e *APIError) Error() string {
	return e.Message
}

// AsAPIError unwraps err into an *APIError if it is one.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsNetwork reports whether err is a connectivity failure or timeout;
// callers cannot tell the two apart.
func IsNetwork(err error) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.Kind == KindNetwork
}

// IsAuthExpired reports whether err purged the session.
func IsAuthExpired(err error) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.Kind == KindAuthExpired
}

// normalize maps an HTTP status plus server envelope onto the error taxonomy.
func normalize(status int, serverMessage string, payload []byte) *APIError {
	e := &APIError{Status: status, Payload: payload}
	switch {
	case status == 401:
		e.Kind = KindAuthExpired
		e.Message = MsgSessionExpired
	case status == 403:
		e.Kind = KindForbidden
		e.Message = MsgAccessDenied
		if serverMessage != "" {
			e.Message = serverMessage
		}
	case status == 404:
		e.Kind = KindNotFound
		e.Message = MsgNotFound
		if serverMessage != "" {
			e.Message = serverMessage
		}
	case status == 429:
		e.Kind = KindRateLimited
		e.Message = MsgRateLimited
	case status >= 500:
		e.Kind = KindServerError
		e.Message = MsgServerError
	default:
		e.Kind = KindRequest
		e.Message = MsgRequestFailed
		if serverMessage != "" {
			e.Message = serverMessage
		}
	}
	return e
}

func networkError() *APIError {
	return &APIError{Kind: KindNetwork, Message: MsgNetworkError}
}
