package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultTTL       = 24 * 7 * time.Hour
	sessionKeyPrefix = "fitgenius-session||"
	tokensSetKey     = "fitgenius-sessions"
	tokenLength      = 35
)

var (
	ErrNotLoggedIn    = errors.New("not logged in")
	errInvalidSession = errors.New("invalid session value")
)

type Service struct {
	redisClient *redis.Client
	ttl         time.Duration
	// ability to inject random string generator func for tokens (for unit and dev testing)
	RandStringFunc func(s int) (string, error)
}

func NewAuthService(
	ttl time.Duration,
	redisClient *redis.Client,
) *Service {
	return &Service{
		ttl:            ttl,
		redisClient:    redisClient,
		RandStringFunc: newSessionToken,
	}
}

// Login starts a new session for the user and returns its token.
func (as *Service) Login(ctx context.Context, uid string, createdAt time.Time) (string, error) {
	token, err := as.RandStringFunc(tokenLength)
	if err != nil {
		return "", err
	}

	sessionKey := sessionKeyPrefix + token
	cmdSet := as.redisClient.Set(ctx, sessionKey, sessionValue(uid, createdAt), as.ttl)
	if err := cmdSet.Err(); err != nil {
		return "", err
	}

	// add token to list of sessions
	cmdSAdd := as.redisClient.SAdd(ctx, tokensSetKey, token)
	if err := cmdSAdd.Err(); err != nil {
		return "", err
	}

	return token, nil
}

// Logout removes the session. It reports whether the session existed.
func (as *Service) Logout(ctx context.Context, token string) (bool, error) {
	sessionKey := sessionKeyPrefix + token
	cmdDel := as.redisClient.Del(ctx, sessionKey)
	if err := cmdDel.Err(); err != nil {
		return false, err
	}

	// remove token from the list of sessions
	cmdSRem := as.redisClient.SRem(ctx, tokensSetKey, token)
	if err := cmdSRem.Err(); err != nil {
		return false, err
	}

	return cmdDel.Val() > 0, nil
}

// ScanAndClean will run through all sessions, check the TTL, and clean them if
// old or already expired by redis. It returns the number of removed sessions.
func (as *Service) ScanAndClean(ctx context.Context) (int, error) {
	cmd := as.redisClient.SMembers(ctx, tokensSetKey)
	if err := cmd.Err(); err != nil {
		return 0, fmt.Errorf("get sessions: %w", err)
	}

	sessionTokens := cmd.Val()
	if len(sessionTokens) == 0 {
		log.Debugln("auth service, scan and clean: no sessions")
		return 0, nil
	}

	log.Debugf("auth service, scan and clean [%d sessions] start ...", len(sessionTokens))
	var toRemove []string
	for _, token := range sessionTokens {
		cmd := as.redisClient.Get(ctx, sessionKeyPrefix+token)
		if errors.Is(cmd.Err(), redis.Nil) {
			toRemove = append(toRemove, token)
			continue
		}
		if err := cmd.Err(); err != nil {
			log.Errorf("auth service, scan and clean token %s: %s", token, err)
			continue
		}

		_, createdAt, err := parseSessionValue(cmd.Val())
		if err != nil || time.Since(createdAt) > as.ttl {
			toRemove = append(toRemove, token)
		}
	}

	removed := 0
	for _, token := range toRemove {
		if err := as.redisClient.Del(ctx, sessionKeyPrefix+token).Err(); err != nil {
			log.Errorf("auth service, clean token %s: %s", token, err)
			continue
		}
		if err := as.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
			log.Errorf("auth service, clean token %s: %s", token, err)
			continue
		}
		removed++
	}

	log.Debugf("auth service, scan and clean removed %d sessions", removed)
	return removed, nil
}

func sessionValue(uid string, createdAt time.Time) string {
	return uid + "|" + strconv.FormatInt(createdAt.Unix(), 10)
}

func parseSessionValue(value string) (string, time.Time, error) {
	uid, createdAtStr, ok := strings.Cut(value, "|")
	if !ok || uid == "" {
		return "", time.Time{}, errInvalidSession
	}
	createdAtUnix, err := strconv.ParseInt(createdAtStr, 10, 64)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%w: %w", errInvalidSession, err)
	}
	return uid, time.Unix(createdAtUnix, 0), nil
}
