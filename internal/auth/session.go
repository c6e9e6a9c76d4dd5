package auth

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultTTL       = 24 * 7 * time.Hour
	TokenHeader      = "X-LIFTSTATS-TOKEN"
	sessionKeyPrefix = "liftstats-session||"
	tokensSetKey     = "liftstats-sessions"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")
	ErrWrongPassword   = errors.New("wrong credentials")
)

type LoginSession struct {
	Token     string
	UserID    string
	CreatedAt time.Time
}

// session values are stored as "<user id>|<created at unix>"
func encodeSession(userID string, createdAt time.Time) string {
	return fmt.Sprintf("%s|%d", userID, createdAt.Unix())
}

func decodeSession(val string) (string, time.Time, error) {
	userID, createdAtStr, found := strings.Cut(val, "|")
	if !found || userID == "" {
		return "", time.Time{}, ErrSessionNotFound
	}
	createdAtUnix, err := strconv.ParseInt(createdAtStr, 10, 64)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("parse session created at: %w", err)
	}
	return userID, time.Unix(createdAtUnix, 0), nil
}
