// Package auth implements the admin login: a plaintext credentials file
// fetched over HTTP and compared verbatim. This is a deliberate placeholder
// mechanism kept from the original store, not real authentication.
package auth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrCredentialsUnavailable means the credentials file could not be fetched.
// Callers surface it with a different message than a wrong-credential attempt.
var ErrCredentialsUnavailable = errors.New("credentials file not found")

// Verifier checks a username/password pair against the credentials file.
type Verifier struct {
	URL    string
	Client *http.Client
}

func NewVerifier(url string) *Verifier {
	return &Verifier{URL: url, Client: &http.Client{Timeout: 10 * time.Second}}
}

// Verify fetches the credentials file and compares the given pair against
// its Login:/Senha: lines. No hashing, no lockout.
func (v *Verifier) Verify(ctx context.Context, username, password string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.URL, nil)
	if err != nil {
		return false, err
	}
	resp, err := v.Client.Do(req)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrCredentialsUnavailable, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return false, ErrCredentialsUnavailable
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrCredentialsUnavailable, err)
	}

	var storedLogin, storedPassword string
	for _, line := range strings.Split(string(body), "\n") {
		if v, ok := strings.CutPrefix(line, "Login:"); ok {
			storedLogin = strings.TrimSpace(v)
		}
		if v, ok := strings.CutPrefix(line, "Senha:"); ok {
			storedPassword = strings.TrimSpace(v)
		}
	}
	return username == storedLogin && password == storedPassword, nil
}

// Sessions holds in-memory admin session tokens, the analog of the
// original's authenticated flag. Tokens live until logout or restart.
type Sessions struct {
	mu     sync.Mutex
	tokens map[string]bool
}

func NewSessions() *Sessions {
	return &Sessions{tokens: make(map[string]bool)}
}

func (s *Sessions) Issue() string {
	t := uuid.NewString()
	s.mu.Lock()
	s.tokens[t] = true
	s.mu.Unlock()
	return t
}

func (s *Sessions) Valid(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tokens[token]
}

func (s *Sessions) Revoke(token string) {
	s.mu.Lock()
	delete(s.tokens, token)
	s.mu.Unlock()
}
