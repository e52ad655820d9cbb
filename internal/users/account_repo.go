package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fitgenius/internal/db"
	"github.com/2beens/fitgenius/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Account struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

type AccountRepo struct {
	db *pgxpool.Pool
}

func NewAccountRepo(db *pgxpool.Pool) *AccountRepo {
	return &AccountRepo{
		db: db,
	}
}

func (r *AccountRepo) Create(ctx context.Context, account Account) (_ *Account, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.accounts.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(
		ctx,
		`
			INSERT INTO account (id, email, password_hash)
			VALUES ($1, $2, $3)
			RETURNING created_at
		`,
		account.ID, account.Email, account.PasswordHash,
	).Scan(&account.CreatedAt)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("account [insert]: %w", err)
	}

	return &account, nil
}

func (r *AccountRepo) GetByEmail(ctx context.Context, email string) (_ *Account, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.accounts.getByEmail")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var account Account
	err = r.db.QueryRow(
		ctx,
		`
			SELECT id, email, password_hash, created_at
			FROM account
			WHERE email = $1
		`,
		email,
	).Scan(
		&account.ID,
		&account.Email,
		&account.PasswordHash,
		&account.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("account [query row]: %w", err)
	}

	return &account, nil
}

// Count is used by the ops tool to report the number of registered accounts.
func (r *AccountRepo) Count(ctx context.Context) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.accounts.count")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var count int
	if err = r.db.QueryRow(ctx, `SELECT COUNT(*) FROM account`).Scan(&count); err != nil {
		return 0, fmt.Errorf("account [count]: %w", err)
	}
	return count, nil
}
