package auth

import "context"

var _ Checker = (*LoginChecker)(nil)
var _ Checker = (*TestChecker)(nil)

type Checker interface {
	// SessionUser returns the user owning a live session token.
	SessionUser(ctx context.Context, token string) (string, error)
}

// TestChecker resolves tokens from a fixed map.
type TestChecker struct {
	Sessions map[string]string
}

func NewTestChecker() *TestChecker {
	return &TestChecker{
		Sessions: map[string]string{},
	}
}

func (c *TestChecker) SessionUser(_ context.Context, token string) (string, error) {
	userID, ok := c.Sessions[token]
	if !ok {
		return "", ErrSessionNotFound
	}
	return userID, nil
}
