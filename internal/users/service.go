package users

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/2beens/fitgenius/internal/docstore"
	"github.com/2beens/fitgenius/internal/telemetry/tracing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const minPasswordLength = 8

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrWeakPassword       = fmt.Errorf("password must have at least %d characters", minPasswordLength)
	ErrInvalidCredentials = errors.New("wrong email or password")
	ErrProfileNotFound    = errors.New("profile not found")
	ErrInvalidTimezone    = errors.New("invalid timezone")
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=users_test

type accountRepo interface {
	Create(ctx context.Context, account Account) (*Account, error)
	GetByEmail(ctx context.Context, email string) (*Account, error)
}

type Service struct {
	accounts accountRepo
	store    docstore.Store
	newID    func() string
}

func NewService(accounts accountRepo, store docstore.Store) *Service {
	return &Service{
		accounts: accounts,
		store:    store,
		newID:    uuid.NewString,
	}
}

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", ErrInvalidEmail
	}
	return email, nil
}

// SignUp creates the account and the profile document of a new user.
func (s *Service) SignUp(ctx context.Context, email, password string, profile Profile) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.users.signUp")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	email, err = normalizeEmail(email)
	if err != nil {
		return "", err
	}
	if len(password) < minPasswordLength {
		return "", ErrWeakPassword
	}

	passwordHash, err := HashPassword(password)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	account, err := s.accounts.Create(ctx, Account{
		ID:           s.newID(),
		Email:        email,
		PasswordHash: passwordHash,
	})
	if err != nil {
		return "", err
	}
	span.SetAttributes(attribute.String("user.id", account.ID))

	profile = profile.Normalized()
	profile.Email = email
	profile.AvatarID = ""
	if err := s.store.Set(ctx, docstore.UserDoc(account.ID), encodeProfile(profile)); err != nil {
		return "", fmt.Errorf("store profile: %w", err)
	}

	log.Infof("new account signed up: %s", account.ID)
	return account.ID, nil
}

// Authenticate returns the user id of the account matching the credentials.
func (s *Service) Authenticate(ctx context.Context, email, password string) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.users.authenticate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	email, err = normalizeEmail(email)
	if err != nil {
		return "", ErrInvalidCredentials
	}

	account, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if !PasswordMatches(password, account.PasswordHash) {
		log.Tracef("[password] failed login attempt for account: %s", account.ID)
		return "", ErrInvalidCredentials
	}

	return account.ID, nil
}

func (s *Service) GetProfile(ctx context.Context, uid string) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.users.getProfile")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	doc, err := s.store.Get(ctx, docstore.UserDoc(uid))
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	profile := decodeProfile(doc.Data)
	return &profile, nil
}

// UpdateProfile replaces the editable profile fields. Email and avatar are kept.
func (s *Service) UpdateProfile(ctx context.Context, uid string, profile Profile) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.users.updateProfile")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	profile = profile.Normalized()
	if profile.Timezone != "" {
		if _, err := time.LoadLocation(profile.Timezone); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidTimezone, profile.Timezone)
		}
	}

	var updated Profile
	_, err = s.store.Update(ctx, docstore.UserDoc(uid), func(data map[string]any) (map[string]any, error) {
		if data == nil {
			data = map[string]any{}
		}
		current := decodeProfile(data)
		profile.Email = current.Email
		profile.AvatarID = current.AvatarID
		updated = profile

		for k, v := range encodeProfile(profile) {
			data[k] = v
		}
		return data, nil
	})
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	return &updated, nil
}

// SetAvatarID stores the avatar reference of the user.
func (s *Service) SetAvatarID(ctx context.Context, uid, avatarID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.users.setAvatarID")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("avatar.id", avatarID))

	_, err = s.store.Update(ctx, docstore.UserDoc(uid), func(data map[string]any) (map[string]any, error) {
		if data == nil {
			data = map[string]any{}
		}
		data["avatarId"] = avatarID
		return data, nil
	})
	if errors.Is(err, docstore.ErrNotFound) {
		return ErrProfileNotFound
	}
	return err
}

// Location returns the time zone of the user. Users without a profile or
// with an unknown time zone get UTC.
func (s *Service) Location(ctx context.Context, uid string) (*time.Location, error) {
	profile, err := s.GetProfile(ctx, uid)
	if errors.Is(err, ErrProfileNotFound) {
		return time.UTC, nil
	}
	if err != nil {
		return nil, err
	}
	return LoadLocation(profile.Timezone), nil
}

// LoadLocation resolves an IANA zone name, falling back to UTC.
func LoadLocation(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Warnf("unknown timezone [%s], using UTC", name)
		return time.UTC
	}
	return loc
}
