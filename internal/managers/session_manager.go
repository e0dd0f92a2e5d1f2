package managers

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/cloudnest/cloudnest/pkg/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// SessionVault holds the current-user record under its single
// namespaced key. It is the explicit session object page controllers
// receive instead of reaching into ambient storage.
type SessionVault struct {
	mu      sync.RWMutex
	records map[string]domain.Session
}

func NewSessionVault() *SessionVault {
	return &SessionVault{
		records: make(map[string]domain.Session),
	}
}

func (v *SessionVault) Put(session domain.Session) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.records[domain.SessionStorageKey] = session
}

func (v *SessionVault) Get() (domain.Session, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	session, ok := v.records[domain.SessionStorageKey]
	return session, ok
}

func (v *SessionVault) Clear() {
	v.mu.Lock()
	defer v.mu.Unlock()

	delete(v.records, domain.SessionStorageKey)
}

// SessionManager fakes authentication: any credentials succeed, the
// token is a real JWT signed with a demo secret. The session lives
// from login or signup until logout.
type SessionManager struct {
	vault   *SessionVault
	secret  []byte
	latency time.Duration
}

type SessionManagerDependencies struct {
	Vault   *SessionVault
	Secret  string
	Latency time.Duration
}

func NewSessionManager(deps SessionManagerDependencies) *SessionManager {
	return &SessionManager{
		vault:   deps.Vault,
		secret:  []byte(deps.Secret),
		latency: deps.Latency,
	}
}

func (m *SessionManager) Login(ctx context.Context, email, password string) (domain.Session, error) {
	log.Info().Str("email", email).Msg("Login attempt")
	return m.createSession(ctx, email)
}

func (m *SessionManager) Signup(ctx context.Context, email, password string) (domain.Session, error) {
	log.Info().Str("email", email).Msg("Signup attempt")
	return m.createSession(ctx, email)
}

func (m *SessionManager) createSession(ctx context.Context, email string) (domain.Session, error) {
	if !emailPattern.MatchString(email) {
		return domain.Session{}, domain.ErrInvalidRecipient
	}

	if err := simulateLatency(ctx, m.latency); err != nil {
		return domain.Session{}, err
	}

	sessionID := uuid.NewString()
	now := time.Now()

	claims := jwt.MapClaims{
		"sub": email,
		"sid": sessionID,
		"iat": now.Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return domain.Session{}, fmt.Errorf("failed to sign session token: %w", err)
	}

	session := domain.Session{
		ID:        sessionID,
		User:      domain.User{Email: email},
		Token:     token,
		CreatedAt: now,
	}

	m.vault.Put(session)
	return session, nil
}

func (m *SessionManager) Logout(ctx context.Context) error {
	log.Info().Msg("Logout")
	m.vault.Clear()
	return nil
}

// Current reads the stored record synchronously; no latency is
// simulated, matching a page-load read.
func (m *SessionManager) Current(ctx context.Context) (domain.Session, error) {
	session, ok := m.vault.Get()
	if !ok {
		return domain.Session{}, domain.ErrNoSession
	}
	return session, nil
}

// Validate checks the token signature and that it belongs to the
// current session.
func (m *SessionManager) Validate(ctx context.Context, token string) (domain.Session, error) {
	session, ok := m.vault.Get()
	if !ok {
		return domain.Session{}, domain.ErrNoSession
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return domain.Session{}, domain.ErrNoSession
	}

	if token != session.Token {
		return domain.Session{}, domain.ErrNoSession
	}

	return session, nil
}
