package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"sporthub-client/internal/model"
	"sporthub-client/internal/storage"

	"github.com/golang-jwt/jwt/v5"
)

// Fixed device-storage keys. All three are written on login and cleared
// together on logout or session expiry.
const (
	KeyAuthToken = "auth_token"
	KeyUserData  = "user_data"
	KeyUserType  = "user_type"
)

var ErrNoSession = errors.New("session: not logged in")

// Store is the explicit session context handed to the gateway client, in
// place of ambient globals.
type Store interface {
	Token(ctx context.Context) (string, error)
	User(ctx context.Context) (*model.User, error)
	Role(ctx context.Context) (model.Role, error)
	Save(ctx context.Context, token string, user *model.User) error
	Clear(ctx context.Context) error
}

type storeImpl struct {
	storage *storage.Store
}

func NewStore(st *storage.Store) Store {
	return &storeImpl{storage: st}
}

func (s *storeImpl) Token(ctx context.Context) (string, error) {
	token, err := s.storage.Get(ctx, KeyAuthToken)
	if errors.Is(err, storage.ErrNotFound) {
		return "", ErrNoSession
	}
	return token, err
}

func (s *storeImpl) User(ctx context.Context) (*model.User, error) {
	raw, err := s.storage.Get(ctx, KeyUserData)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, err
	}

	var user model.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, fmt.Errorf("decode stored user: %w", err)
	}
	return &user, nil
}

func (s *storeImpl) Role(ctx context.Context) (model.Role, error) {
	role, err := s.storage.Get(ctx, KeyUserType)
	if errors.Is(err, storage.ErrNotFound) {
		return "", ErrNoSession
	}
	return model.Role(role), err
}

func (s *storeImpl) Save(ctx context.Context, token string, user *model.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}

	if err := s.storage.Set(ctx, KeyAuthToken, token); err != nil {
		return err
	}
	if err := s.storage.Set(ctx, KeyUserData, string(raw)); err != nil {
		return err
	}
	return s.storage.Set(ctx, KeyUserType, string(user.Role))
}

func (s *storeImpl) Clear(ctx context.Context) error {
	return s.storage.Delete(ctx, KeyAuthToken, KeyUserData, KeyUserType)
}

// TokenExpiry peeks at the bearer token's exp claim without verifying the
// signature; verification is the backend's job, this only lets screens warn
// before an expiring session. ok is false for opaque or claimless tokens.
func TokenExpiry(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
