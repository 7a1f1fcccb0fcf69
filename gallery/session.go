package gallery

import "sync"

// Session tracks the signed-in user. An empty user ID means anonymous.
// Change callbacks run outside the session lock, in registration order.
type Session struct {
	mu       sync.Mutex
	userID   string
	onChange []func(userID string)
}

// NewSession creates an anonymous session.
func NewSession() *Session {
	return &Session{}
}

// UserID returns the signed-in user, or empty while anonymous.
func (s *Session) UserID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userID
}

// SignedIn reports whether a user is signed in.
func (s *Session) SignedIn() bool {
	return s.UserID() != ""
}

// SignIn records the user and notifies subscribers. Signing in while
// already signed in as the same user is a no-op.
func (s *Session) SignIn(userID string) {
	s.mu.Lock()
	if s.userID == userID {
		s.mu.Unlock()
		return
	}
	s.userID = userID
	s.mu.Unlock()
	s.notify(userID)
}

// SignOut returns the session to anonymous and notifies subscribers.
func (s *Session) SignOut() {
	s.mu.Lock()
	if s.userID == "" {
		s.mu.Unlock()
		return
	}
	s.userID = ""
	s.mu.Unlock()
	s.notify("")
}

// OnChange registers a callback invoked with the new user ID after every
// sign-in and sign-out.
func (s *Session) OnChange(fn func(userID string)) {
	s.mu.Lock()
	s.onChange = append(s.onChange, fn)
	s.mu.Unlock()
}

func (s *Session) notify(userID string) {
	s.mu.Lock()
	subscribers := make([]func(string), len(s.onChange))
	copy(subscribers, s.onChange)
	s.mu.Unlock()

	for _, fn := range subscribers {
		fn(userID)
	}
}
