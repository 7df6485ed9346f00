package session

import (
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Store keeps sessions in memory, keyed by a random id. The browser only
// ever sees an HS256-signed token carrying that id, so cookies cannot be
// forged to point at someone else's session.
type Store struct {
	secret []byte
	ttl    time.Duration

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewStore(secret string, ttl time.Duration) *Store {
	return &Store{
		secret:   []byte(secret),
		ttl:      ttl,
		sessions: make(map[string]*Session),
	}
}

// Lookup resolves a cookie token to a live session. Tampered tokens and
// expired sessions come back as not-found; the caller starts fresh.
func (st *Store) Lookup(token string) (*Session, bool) {
	id, err := st.parse(token)
	if err != nil {
		return nil, false
	}

	st.mu.Lock()
	sess, ok := st.sessions[id]
	st.mu.Unlock()
	if !ok {
		return nil, false
	}
	if sess.expired(time.Now()) {
		st.mu.Lock()
		delete(st.sessions, id)
		st.mu.Unlock()
		return nil, false
	}
	sess.touch(st.ttl)
	return sess, true
}

// Create starts a new session and returns it with its signed cookie token.
func (st *Store) Create() (*Session, string, error) {
	id := uuid.NewString()
	sess := newSession(id, st.ttl)

	token, err := st.sign(id)
	if err != nil {
		return nil, "", err
	}

	st.mu.Lock()
	st.sessions[id] = sess
	st.mu.Unlock()
	return sess, token, nil
}

func (st *Store) sign(id string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   id,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(st.ttl)),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(st.secret)
}

func (st *Store) parse(token string) (string, error) {
	tok, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return st.secret, nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := tok.Claims.(*jwt.RegisteredClaims)
	if !ok || !tok.Valid || claims.Subject == "" {
		return "", errors.New("invalid session token")
	}
	return claims.Subject, nil
}
