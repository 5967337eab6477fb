package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/tripweaver/backend/internal/repo"
)

// CreditService exposes read access to a user's credit balance.
// Grants arrive only through the payment webhook; deductions only through
// plan generation.
type CreditService struct {
	credits repo.CreditRepo
}

func NewCreditService(credits repo.CreditRepo) *CreditService {
	return &CreditService{credits: credits}
}

func (s *CreditService) Balance(ctx context.Context, userID uuid.UUID) (int, error) {
	return s.credits.Balance(ctx, userID)
}
