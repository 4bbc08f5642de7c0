package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"sporthub-client/internal/config"
	"sporthub-client/internal/dto"
	"sporthub-client/internal/model"
	"sporthub-client/internal/session"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSession records credential mutations so tests can assert on the 401
// purge side effect.
type fakeSession struct {
	token      string
	user       *model.User
	ClearCalls int
	SavedToken string
}

func (f *fakeSession) Token(ctx context.Context) (string, error) {
	if f.token == "" {
		return "", session.ErrNoSession
	}
	return f.token, nil
}

func (f *fakeSession) User(ctx context.Context) (*model.User, error) {
	if f.user == nil {
		return nil, session.ErrNoSession
	}
	return f.user, nil
}

func (f *fakeSession) Role(ctx context.Context) (model.Role, error) {
	if f.user == nil {
		return "", session.ErrNoSession
	}
	return f.user.Role, nil
}

func (f *fakeSession) Save(ctx context.Context, token string, user *model.User) error {
	f.token = token
	f.user = user
	f.SavedToken = token
	return nil
}

func (f *fakeSession) Clear(ctx context.Context) error {
	f.ClearCalls++
	f.token = ""
	f.user = nil
	return nil
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *fakeSession, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	sess := &fakeSession{token: "test-token"}
	c := New(&config.API{BaseURL: srv.URL, TimeoutSeconds: 5}, sess, zerolog.Nop())
	return c, sess, srv
}

func TestClient_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	c, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"success":true,"data":{"id":"u-1"}}`))
	})

	_, err := c.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer test-token", gotAuth)
}

func TestClient_NoTokenSendsUnauthenticated(t *testing.T) {
	var gotAuth string
	c, sess, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"success":true,"data":[]}`))
	})
	sess.token = ""

	_, err := c.Banners(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClient_DecodesEnvelopeData(t *testing.T) {
	c, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":{"id":"u-9","name":"Asha","role":"store"}}`))
	})

	user, err := c.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "u-9", user.ID)
	assert.Equal(t, model.RoleStore, user.Role)
}

func TestClient_Unauthorized_PurgesSession(t *testing.T) {
	c, sess, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"success":false,"message":"token expired"}`))
	})

	_, err := c.Me(context.Background())
	require.Error(t, err)

	assert.True(t, IsAuthExpired(err))
	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	// fixed message, the server's own wording is not surfaced for 401
	assert.Equal(t, MsgSessionExpired, apiErr.Message)
	assert.Equal(t, 1, sess.ClearCalls)
	assert.Empty(t, sess.token)
}

func TestClient_Forbidden_PreservesServerMessage(t *testing.T) {
	c, sess, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"success":false,"message":"stores cannot moderate ads"}`))
	})

	_, err := c.AdminDashboard(context.Background())
	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, KindForbidden, apiErr.Kind)
	assert.Equal(t, "stores cannot moderate ads", apiErr.Message)
	assert.Zero(t, sess.ClearCalls)
}

func TestClient_Forbidden_FallsBackToFixedMessage(t *testing.T) {
	c, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := c.AdminDashboard(context.Background())
	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, MsgAccessDenied, apiErr.Message)
}

func TestClient_NotFound(t *testing.T) {
	c, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := c.Order(context.Background(), "missing")
	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, KindNotFound, apiErr.Kind)
	assert.Equal(t, MsgNotFound, apiErr.Message)
}

func TestClient_RateLimited_FixedMessageNoRetry(t *testing.T) {
	calls := 0
	c, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"success":false,"message":"slow down"}`))
	})

	_, err := c.StoreOrders(context.Background(), "")
	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, KindRateLimited, apiErr.Kind)
	assert.Equal(t, MsgRateLimited, apiErr.Message)
	// pass-through notification only, never retried
	assert.Equal(t, 1, calls)
}

func TestClient_ServerError_GenericMessage(t *testing.T) {
	c, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	})

	_, err := c.StoreProducts(context.Background())
	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, KindServerError, apiErr.Kind)
	assert.Equal(t, MsgServerError, apiErr.Message)
}

func TestClient_ConnectivityFailure_IsNetworkAndKeepsCredentials(t *testing.T) {
	c, sess, srv := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
	srv.Close() // nothing listening anymore

	_, err := c.Me(context.Background())
	require.Error(t, err)

	assert.True(t, IsNetwork(err))
	assert.Contains(t, strings.ToLower(err.Error()), "network")
	// connectivity loss must never purge the session
	assert.Zero(t, sess.ClearCalls)
	assert.Equal(t, "test-token", sess.token)
}

func TestClient_Timeout_SurfacesAsNetwork(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(1500 * time.Millisecond)
	}))
	t.Cleanup(srv.Close)

	sess := &fakeSession{token: "test-token"}
	c := New(&config.API{BaseURL: srv.URL, TimeoutSeconds: 1}, sess, zerolog.Nop())

	_, err := c.Me(context.Background())
	require.Error(t, err)
	assert.True(t, IsNetwork(err))
	assert.Zero(t, sess.ClearCalls)
}

func TestClient_EnvelopeFailure_SurfacesServerMessage(t *testing.T) {
	c, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"message":"store is suspended"}`))
	})

	_, err := c.StoreDashboard(context.Background())
	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, KindRequest, apiErr.Kind)
	assert.Equal(t, "store is suspended", apiErr.Message)
	assert.Equal(t, http.StatusOK, apiErr.Status)
}

func TestClient_Login_PersistsSession(t *testing.T) {
	c, sess, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":{"token":"fresh-token","user":{"id":"u-1","role":"store"}}}`))
	})
	sess.token = ""

	user, err := c.Login(context.Background(), dto.LoginRequest{Email: "a@b.c", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "u-1", user.ID)
	assert.Equal(t, "fresh-token", sess.SavedToken)
}

func TestClient_MissingID(t *testing.T) {
	c, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be issued for an empty id")
	})

	_, err := c.Order(context.Background(), "")
	assert.ErrorIs(t, err, ErrMissingID)
}
