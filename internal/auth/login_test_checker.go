package auth

import "context"

// LoginTestChecker maps tokens to user ids in memory.
type LoginTestChecker struct {
	Sessions map[string]string
}

func NewLoginTestChecker() *LoginTestChecker {
	return &LoginTestChecker{
		Sessions: map[string]string{},
	}
}

func (c *LoginTestChecker) UserID(_ context.Context, token string) (string, error) {
	uid, ok := c.Sessions[token]
	if !ok {
		return "", ErrNotLoggedIn
	}
	return uid, nil
}
