package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/tripweaver/backend/internal/domain"
)

// CreditRepo defines the per-user credit ledger operations.
// One credit entitles one fully detailed trip generation.
type CreditRepo interface {
	// Deduct atomically decrements the user's balance by exactly 1 if it
	// is positive. It returns false with no side effects when the balance
	// is zero. The decrement is a single conditional UPDATE, never a
	// read-then-write pair, so concurrent deductions can never drive the
	// balance negative.
	Deduct(ctx context.Context, userID uuid.UUID) (bool, error)

	// AddCredits atomically adds amount credits and records an audit row.
	// Returns the new balance, or domain.ErrNotFound for an unknown profile.
	AddCredits(ctx context.Context, userID uuid.UUID, amount int, productID, eventID string) (int, error)

	// Balance returns the current credit balance.
	Balance(ctx context.Context, userID uuid.UUID) (int, error)

	// CreateProfile inserts a profile row with a starting balance.
	CreateProfile(ctx context.Context, userID uuid.UUID, email string, credits int) error
}

type pgCreditRepo struct {
	db db
}

// NewCreditRepo constructs a CreditRepo backed by the provided db connection.
func NewCreditRepo(db db) CreditRepo {
	return &pgCreditRepo{db: db}
}

func (r *pgCreditRepo) Deduct(ctx context.Context, userID uuid.UUID) (bool, error) {
	// The credits > 0 guard makes the decrement atomic: of N concurrent
	// calls against a balance of N, exactly N succeed and none below zero.
	const q = `
		UPDATE profiles
		SET credits = credits - 1, updated_at = now()
		WHERE id = @id AND credits > 0`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": userID})
	if err != nil {
		return false, fmt.Errorf("repo.CreditRepo.Deduct: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *pgCreditRepo) AddCredits(ctx context.Context, userID uuid.UUID, amount int, productID, eventID string) (int, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("repo.CreditRepo.AddCredits: begin: %w", err)
	}
	defer tx.Rollback(ctx)

	const update = `
		UPDATE profiles
		SET credits = credits + @amount, updated_at = now()
		WHERE id = @id
		RETURNING credits`

	var balance int
	err = tx.QueryRow(ctx, update, pgx.NamedArgs{"id": userID, "amount": amount}).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("repo.CreditRepo.AddCredits: %w", domain.ErrNotFound)
		}
		return 0, fmt.Errorf("repo.CreditRepo.AddCredits: %w", err)
	}

	const audit = `
		INSERT INTO credit_transactions (profile_id, amount, product_id, event_id)
		VALUES (@profile_id, @amount, @product_id, @event_id)`

	_, err = tx.Exec(ctx, audit, pgx.NamedArgs{
		"profile_id": userID,
		"amount":     amount,
		"product_id": productID,
		"event_id":   eventID,
	})
	if err != nil {
		return 0, fmt.Errorf("repo.CreditRepo.AddCredits: audit: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("repo.CreditRepo.AddCredits: commit: %w", err)
	}
	return balance, nil
}

func (r *pgCreditRepo) Balance(ctx context.Context, userID uuid.UUID) (int, error) {
	const q = `SELECT credits FROM profiles WHERE id = @id`

	var credits int
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": userID}).Scan(&credits)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("repo.CreditRepo.Balance: %w", domain.ErrNotFound)
		}
		return 0, fmt.Errorf("repo.CreditRepo.Balance: %w", err)
	}
	return credits, nil
}

func (r *pgCreditRepo) CreateProfile(ctx context.Context, userID uuid.UUID, email string, credits int) error {
	const q = `INSERT INTO profiles (id, email, credits) VALUES (@id, @email, @credits)`

	_, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": userID, "email": email, "credits": credits})
	if err != nil {
		return fmt.Errorf("repo.CreditRepo.CreateProfile: %w", err)
	}
	return nil
}
