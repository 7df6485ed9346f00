package session

import (
	"sync"
	"time"

	"bluewear/internal/cart"
	"bluewear/internal/domain/user"
	"bluewear/internal/view"
)

// Session is everything this frontend remembers about one browser: the
// logged-in user, the cart, the active view and a one-shot flash notice.
// It lives only in process memory; restarting the server forgets it.
type Session struct {
	ID   string
	Cart *cart.Cart

	mu        sync.Mutex
	user      *user.User
	current   view.View
	flash     string
	expiresAt time.Time
}

func newSession(id string, ttl time.Duration) *Session {
	return &Session{
		ID:        id,
		Cart:      cart.New(),
		current:   view.Home,
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *Session) User() *user.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

func (s *Session) SetUser(u user.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &u
}

func (s *Session) ClearUser() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
}

func (s *Session) CurrentView() view.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Navigate applies the navigator rule against the session's user and
// records the view that was entered.
func (s *Session) Navigate(target view.View) view.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = view.Navigate(target, s.user)
	return s.current
}

// SetFlash stores a one-shot notice shown on the next rendered page.
func (s *Session) SetFlash(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flash = msg
}

// Flash returns the pending notice and clears it.
func (s *Session) Flash() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	msg := s.flash
	s.flash = ""
	return msg
}

func (s *Session) expired(now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.After(s.expiresAt)
}

func (s *Session) touch(ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expiresAt = time.Now().Add(ttl)
}
