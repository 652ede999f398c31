package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/teebay/internal/client/client"
	"github.com/dmitrijs2005/teebay/internal/client/models"
	"github.com/dmitrijs2005/teebay/internal/common"
	"github.com/dmitrijs2005/teebay/internal/logging"
	"github.com/golang-jwt/jwt/v5"
)

// LastEmailKey remembers the email of the last successful sign-in.
const LastEmailKey = "lastEmail"

// KeyValueStore is the persistence the session needs. metadata.Store
// satisfies it.
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
	SetMany(ctx context.Context, values map[string][]byte) error
}

// Session holds at most one (token, user) pair. It implements
// client.TokenSource, so the transport always sends the current token.
type Session struct {
	api   client.Client
	store KeyValueStore
	log   logging.Logger
	now   func() time.Time

	mu    sync.RWMutex
	token string
	user  *models.User
}

func NewSession(api client.Client, store KeyValueStore, log logging.Logger) *Session {
	return &Session{api: api, store: store, log: log, now: time.Now}
}

// Token returns the current bearer token, "" when logged out.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns a copy of the current identity, nil when logged out.
func (s *Session) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// IsAuthenticated requires both a token and an identity.
func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != "" && s.user != nil
}

// Restore revalidates a persisted token with the backend. Without a stored
// token it is a no-op. Any failure removes the stored token and leaves the
// session logged out.
func (s *Session) Restore(ctx context.Context) error {
	raw, err := s.store.Get(ctx, common.AuthTokenKey)
	if err != nil {
		return fmt.Errorf("read stored token: %w", err)
	}
	if len(raw) == 0 {
		return nil
	}
	token := string(raw)

	if tokenExpired(token, s.now()) {
		s.discard(ctx)
		s.log.Info(ctx, "stored session expired")
		return common.ErrSessionExpired
	}

	s.mu.Lock()
	s.token, s.user = token, nil
	s.mu.Unlock()

	u, err := s.api.Me(ctx)
	if err == nil && u == nil {
		err = common.ErrNotLoggedIn
	}
	if err != nil {
		s.discard(ctx)
		s.log.Warn(ctx, "session restore failed", "error", err)
		return fmt.Errorf("restore session: %w", err)
	}

	s.mu.Lock()
	s.user = u
	s.mu.Unlock()
	s.api.WriteIdentity(*u)
	s.log.Info(ctx, "session restored", "user", u.Email)
	return nil
}

// tokenExpired reports whether token is a JWT whose exp claim has passed.
// Tokens that are not JWTs are never considered expired here.
func tokenExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return !now.Before(exp.Time)
}

// Login authenticates and, on success, persists the token before adopting
// it. On failure any previous session is left untouched.
func (s *Session) Login(ctx context.Context, email, password string) error {
	payload, err := s.api.Login(ctx, email, password)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	return s.establish(ctx, "login", email, payload)
}

// Register creates an account and signs in with it.
func (s *Session) Register(ctx context.Context, in models.RegisterInput) error {
	payload, err := s.api.Register(ctx, in)
	if err != nil {
		return fmt.Errorf("register: %w", err)
	}
	return s.establish(ctx, "register", in.Email, payload)
}

func (s *Session) establish(ctx context.Context, op, email string, payload *models.AuthPayload) error {
	if payload == nil || payload.User == nil || payload.Token == "" {
		return fmt.Errorf("%s: %w", op, common.ErrOperationFailed)
	}

	err := s.store.SetMany(ctx, map[string][]byte{
		common.AuthTokenKey: []byte(payload.Token),
		LastEmailKey:        []byte(email),
	})
	if err != nil {
		return fmt.Errorf("%s: persist token: %w", op, err)
	}

	u := *payload.User
	s.mu.Lock()
	s.token, s.user = payload.Token, &u
	s.mu.Unlock()

	s.api.WriteIdentity(u)
	s.log.Info(ctx, "signed in", "op", op, "user", u.Email)
	return nil
}

// Logout forgets the session locally and in the store. The backend is not
// contacted.
func (s *Session) Logout(ctx context.Context) error {
	u := s.User()
	err := s.store.Delete(ctx, common.AuthTokenKey)
	s.clear()
	s.api.Invalidate(userScopedRoots...)
	s.api.EvictIdentity()

	if u != nil {
		s.log.Info(ctx, "signed out", "user", u.Email)
	}
	if err != nil {
		return fmt.Errorf("logout: delete stored token: %w", err)
	}
	return nil
}

// LastEmail returns the email of the last successful sign-in, if any.
func (s *Session) LastEmail(ctx context.Context) string {
	v, err := s.store.Get(ctx, LastEmailKey)
	if err != nil {
		s.log.Warn(ctx, "read last email", "error", err)
		return ""
	}
	return string(v)
}

// UpdateProfile applies a partial profile edit to the signed-in user.
func (s *Session) UpdateProfile(ctx context.Context, in models.UpdateProfileInput) (*models.User, error) {
	if !s.IsAuthenticated() {
		return nil, common.ErrNotLoggedIn
	}
	u, err := s.api.UpdateProfile(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	updated := *u
	s.mu.Lock()
	s.user = &updated
	s.mu.Unlock()
	s.api.WriteIdentity(updated)
	return u, nil
}

// lists whose contents depend on who is signed in.
var userScopedRoots = []string{
	client.RootAllProducts,
	client.RootUserProducts,
	client.RootMyBuys,
	client.RootMySales,
	client.RootMyRentals,
	client.RootMyLendings,
}

func (s *Session) discard(ctx context.Context) {
	if err := s.store.Delete(ctx, common.AuthTokenKey); err != nil && !errors.Is(err, context.Canceled) {
		s.log.Error(ctx, "delete stored token", "error", err)
	}
	s.clear()
	s.api.EvictIdentity()
}

func (s *Session) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token, s.user = "", nil
}
