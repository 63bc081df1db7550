// Package session holds the authenticated identity and credential token and
// drives the Anonymous → Authenticating → Authenticated lifecycle. The token
// is the sole artifact persisted across restarts; everything else is rebuilt
// by re-validating it against the backend on startup.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/coinkeeper/internal/client/api"
	"github.com/dmitrijs2005/coinkeeper/internal/client/models"
	"github.com/dmitrijs2005/coinkeeper/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/coinkeeper/internal/common"
	"github.com/dmitrijs2005/coinkeeper/internal/logging"
)

// tokenKey is the single fixed key under which the credential token is
// persisted.
const tokenKey = "auth_token"

// Listener is notified after the identity changes: with the new identity on
// login/register/restore success, with nil on logout.
type Listener func(identity *models.Identity)

// Store is the session store. Constructed once at process start; all state
// is owned here, no package-level singletons.
type Store struct {
	client api.Client
	tokens metadata.Repository
	codec  TokenCodec
	log    logging.Logger

	mu             sync.Mutex
	identity       *models.Identity
	token          string
	authenticating bool
	authErr        string
	listeners      []Listener
}

func NewStore(client api.Client, tokens metadata.Repository, codec TokenCodec, log logging.Logger) *Store {
	return &Store{client: client, tokens: tokens, codec: codec, log: log}
}

// Authenticated reports whether both an identity and a token are present.
func (s *Store) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity != nil && s.token != ""
}

// Identity returns a copy of the current identity, or nil when anonymous.
func (s *Store) Identity() *models.Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == nil {
		return nil
	}
	id := *s.identity
	return &id
}

// Token returns the current credential token ("" when anonymous).
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Authenticating reports whether an auth operation is in flight.
func (s *Store) Authenticating() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticating
}

// AuthError returns the last user-visible auth failure ("" when none).
func (s *Store) AuthError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authErr
}

// OnIdentityChange registers a listener. Listeners are invoked outside the
// store lock, in registration order.
func (s *Store) OnIdentityChange(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

func (s *Store) begin() {
	s.mu.Lock()
	s.authenticating = true
	s.authErr = ""
	s.mu.Unlock()
}

// fail leaves the store anonymous. The message is user-visible; pass "" for
// the silent restore outcomes.
func (s *Store) fail(message string) {
	s.mu.Lock()
	s.authenticating = false
	s.identity = nil
	s.token = ""
	s.authErr = message
	s.mu.Unlock()
}

func (s *Store) succeed(identity models.Identity, token string) {
	s.mu.Lock()
	s.authenticating = false
	s.identity = &identity
	s.token = token
	s.authErr = ""
	listeners := append([]Listener(nil), s.listeners...)
	s.mu.Unlock()

	for _, l := range listeners {
		id := identity
		l(&id)
	}
}

// Login authenticates against the backend record by plain equality. The
// backend owns any password hashing; this client sees the stored value as-is.
func (s *Store) Login(ctx context.Context, email, password string) (*models.Identity, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", common.ErrValidation)
	}

	s.begin()

	user, err := s.client.FindUserByEmail(ctx, email)
	if err != nil {
		s.fail(err.Error())
		return nil, err
	}
	if user == nil {
		err := fmt.Errorf("%w: user not found", common.ErrAuth)
		s.fail(err.Error())
		return nil, err
	}
	if user.Password != password {
		err := fmt.Errorf("%w: invalid password", common.ErrAuth)
		s.fail(err.Error())
		return nil, err
	}

	return s.establish(ctx, user.Identity())
}

// Register creates the account and logs in with it.
func (s *Store) Register(ctx context.Context, email, password string) (*models.Identity, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", common.ErrValidation)
	}

	s.begin()

	existing, err := s.client.FindUserByEmail(ctx, email)
	if err != nil {
		s.fail(err.Error())
		return nil, err
	}
	if existing != nil {
		err := fmt.Errorf("%w: user with this email already exists", common.ErrAuth)
		s.fail(err.Error())
		return nil, err
	}

	user, err := s.client.CreateUser(ctx, email, password)
	if err != nil {
		s.fail(err.Error())
		return nil, err
	}

	return s.establish(ctx, user.Identity())
}

// establish issues and persists the token for identity, then flips the store
// to Authenticated.
func (s *Store) establish(ctx context.Context, identity models.Identity) (*models.Identity, error) {
	token, err := s.codec.Issue(identity.ID)
	if err != nil {
		s.fail(err.Error())
		return nil, fmt.Errorf("issuing token: %w", err)
	}
	if err := s.tokens.Set(ctx, tokenKey, token); err != nil {
		s.fail(err.Error())
		return nil, fmt.Errorf("persisting token: %w", err)
	}

	s.succeed(identity, token)
	return &identity, nil
}

// Restore re-validates a persisted token on startup. A missing token, a
// malformed token, or a token whose owner no longer exists all resolve to
// (nil, nil): logged out, silently, with no user-visible error. Only a
// transport failure is returned as an error, and it leaves the persisted
// token in place so a later run can retry.
func (s *Store) Restore(ctx context.Context) (*models.Identity, error) {
	token, err := s.tokens.Get(ctx, tokenKey)
	if err != nil {
		return nil, fmt.Errorf("reading persisted token: %w", err)
	}
	if token == "" {
		return nil, nil
	}

	s.begin()

	userID, err := s.codec.Subject(token)
	if err != nil {
		s.discardToken(ctx)
		s.fail("")
		return nil, nil
	}

	user, err := s.client.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			s.discardToken(ctx)
			s.fail("")
			return nil, nil
		}
		s.fail("")
		return nil, err
	}

	identity := user.Identity()
	s.succeed(identity, token)
	return &identity, nil
}

// Logout synchronously clears all session state and the persisted token,
// then notifies the backend on a best-effort basis.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	token := s.token
	s.identity = nil
	s.token = ""
	s.authenticating = false
	s.authErr = ""
	listeners := append([]Listener(nil), s.listeners...)
	s.mu.Unlock()

	s.discardToken(ctx)

	for _, l := range listeners {
		l(nil)
	}

	if token != "" {
		if err := s.client.Logout(ctx, token); err != nil {
			s.log.Debug(ctx, "backend logout notification failed", "error", err)
		}
	}
}

func (s *Store) discardToken(ctx context.Context) {
	if err := s.tokens.Delete(ctx, tokenKey); err != nil {
		s.log.Warn(ctx, "failed to discard persisted token", "error", err)
	}
}
