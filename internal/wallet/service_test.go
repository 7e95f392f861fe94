package wallet

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vela-commerce/vela-commerce/internal/upstream"
)

type fakeBackend struct {
	lastEmail   string
	lastDeposit upstream.DepositRequest
	calls       int
	err         error
}

func (f *fakeBackend) CreateDeposit(_ context.Context, email string, deposit upstream.DepositRequest) (upstream.DepositConfirmation, error) {
	f.calls++
	f.lastEmail = email
	f.lastDeposit = deposit
	if f.err != nil {
		return upstream.DepositConfirmation{}, f.err
	}
	return upstream.DepositConfirmation{Message: "Deposit recorded"}, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSubmit(t *testing.T) {
	backend := &fakeBackend{}
	svc := NewService(backend, discardLogger())

	conf, err := svc.Submit(context.Background(), Deposit{
		Email:         "ada@example.com",
		Amount:        75,
		Method:        "Bank Transfer",
		TransactionID: "tx-42",
	})
	require.NoError(t, err)
	require.Equal(t, "Deposit recorded", conf.Message)
	require.Equal(t, "ada@example.com", backend.lastEmail)
	require.InDelta(t, 75.0, backend.lastDeposit.Amount, 1e-9)
	require.Equal(t, "tx-42", backend.lastDeposit.TransactionID)
}

func TestSubmitEnforcesMinimum(t *testing.T) {
	backend := &fakeBackend{}
	svc := NewService(backend, discardLogger())

	_, err := svc.Submit(context.Background(), Deposit{Email: "ada@example.com", Amount: 49.99})
	require.ErrorIs(t, err, ErrAmountTooSmall)
	require.Zero(t, backend.calls)

	// The boundary amount is accepted.
	_, err = svc.Submit(context.Background(), Deposit{Email: "ada@example.com", Amount: MinDepositAmount})
	require.NoError(t, err)
}

func TestSubmitSurfacesBackendMessage(t *testing.T) {
	backend := &fakeBackend{err: &upstream.APIError{StatusCode: 404, Message: "Account not found"}}
	svc := NewService(backend, discardLogger())

	_, err := svc.Submit(context.Background(), Deposit{Email: "ghost@example.com", Amount: 60})

	var subErr *upstream.SubmissionError
	require.ErrorAs(t, err, &subErr)
	require.Equal(t, "Account not found", subErr.Message)
}
