package service

import (
	"context"
	"fmt"
	"time"

	"easydonate-payments/internal/core/ports"
	"easydonate-payments/pkg/apperror"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// SessionServiceImpl implements ports.SessionService with HS256 JWTs.
// The signed token carries only the session id; the upstream bearer token
// stays server-side in the session store.
type SessionServiceImpl struct {
	store  ports.SessionStore
	secret []byte
	ttl    time.Duration
	issuer string
	log    zerolog.Logger
}

// NewSessionService creates a new SessionServiceImpl.
func NewSessionService(store ports.SessionStore, secret string, ttl time.Duration, issuer string, log zerolog.Logger) *SessionServiceImpl {
	return &SessionServiceImpl{
		store:  store,
		secret: []byte(secret),
		ttl:    ttl,
		issuer: issuer,
		log:    log,
	}
}

// Open stores the upstream token under a fresh session id and returns a
// signed session token for the dashboard.
func (s *SessionServiceImpl) Open(ctx context.Context, userID, upstreamToken string) (string, time.Time, error) {
	sessionID := uuid.New().String()

	if err := s.store.Put(ctx, sessionID, userID, upstreamToken, s.ttl); err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("storing session: %w", err))
	}

	now := time.Now()
	expiresAt := now.Add(s.ttl)

	claims := jwt.MapClaims{
		"sub": userID,
		"sid": sessionID,
		"iat": now.Unix(),
		"exp": expiresAt.Unix(),
		"iss": s.issuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("signing session token: %w", err))
	}

	s.log.Info().Str("session_id", sessionID).Msg("session opened")
	return tokenString, expiresAt, nil
}

// Resolve validates a signed session token and loads the stored upstream
// credentials. An expired or unknown session yields AUTH_001.
func (s *SessionServiceImpl) Resolve(ctx context.Context, signedToken string) (*ports.SessionClaims, error) {
	token, err := jwt.Parse(signedToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, apperror.ErrInvalidSession()
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, apperror.ErrInvalidSession()
	}

	sessionID, ok := claims["sid"].(string)
	if !ok || sessionID == "" {
		return nil, apperror.ErrInvalidSession()
	}

	userID, upstreamToken, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("loading session: %w", err))
	}
	if upstreamToken == "" {
		// Store entry gone: logged out or TTL expired.
		return nil, apperror.ErrInvalidSession()
	}

	return &ports.SessionClaims{
		SessionID:     sessionID,
		UserID:        userID,
		UpstreamToken: upstreamToken,
	}, nil
}

// Close discards the session and its stored token.
func (s *SessionServiceImpl) Close(ctx context.Context, sessionID string) error {
	if err := s.store.Delete(ctx, sessionID); err != nil {
		return apperror.InternalError(fmt.Errorf("deleting session: %w", err))
	}
	s.log.Info().Str("session_id", sessionID).Msg("session closed")
	return nil
}
