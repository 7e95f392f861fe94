package wallet

import (
	"context"
	"log/slog"

	"github.com/vela-commerce/vela-commerce/internal/upstream"
)

// BackendPort abstracts the backend deposit call.
type BackendPort interface {
	CreateDeposit(ctx context.Context, email string, deposit upstream.DepositRequest) (upstream.DepositConfirmation, error)
}

// Service validates and relays deposits.
type Service struct {
	backend BackendPort
	logger  *slog.Logger
}

// NewService builds Service.
func NewService(backend BackendPort, logger *slog.Logger) *Service {
	return &Service{backend: backend, logger: logger}
}

// Submit relays one deposit to the backend. The minimum-amount rule is
// enforced here so an undersized deposit never leaves the service.
func (s *Service) Submit(ctx context.Context, deposit Deposit) (Confirmation, error) {
	if deposit.Amount < MinDepositAmount {
		return Confirmation{}, ErrAmountTooSmall
	}

	conf, err := s.backend.CreateDeposit(ctx, deposit.Email, upstream.DepositRequest{
		Amount:        deposit.Amount,
		Method:        deposit.Method,
		TransactionID: deposit.TransactionID,
	})
	if err != nil {
		return Confirmation{}, upstream.NewSubmissionError(err, "deposit submission failed")
	}

	if s.logger != nil {
		s.logger.Info("deposit submitted",
			slog.String("email", deposit.Email),
			slog.Float64("amount", deposit.Amount),
		)
	}
	return Confirmation{Message: conf.Message}, nil
}
