package suppliers

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vela-commerce/vela-commerce/internal/upstream"
)

type fakeBackend struct {
	records []upstream.Supplier
	created upstream.Supplier
	err     error
	last    upstream.Supplier
}

func (f *fakeBackend) FetchSuppliers(context.Context) ([]upstream.Supplier, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.records, nil
}

func (f *fakeBackend) CreateSupplier(_ context.Context, supplier upstream.Supplier) (upstream.Supplier, error) {
	f.last = supplier
	if f.err != nil {
		return upstream.Supplier{}, f.err
	}
	return f.created, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestList(t *testing.T) {
	backend := &fakeBackend{records: []upstream.Supplier{
		{ID: "s1", Name: "Acme Metals", ContactPerson: "Joan", Email: "joan@acme.test", Phone: "0123", Address: "4 Forge Rd"},
	}}
	svc := NewService(backend, discardLogger())

	records, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "s1", records[0].ID)
	require.Equal(t, "Acme Metals", records[0].Name)
	require.Equal(t, "Joan", records[0].ContactPerson)
}

func TestListFetchFailure(t *testing.T) {
	backend := &fakeBackend{err: errors.New("connection refused")}
	svc := NewService(backend, discardLogger())

	_, err := svc.List(context.Background())
	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
}

func TestCreate(t *testing.T) {
	backend := &fakeBackend{created: upstream.Supplier{ID: "s2", Name: "Acme Metals"}}
	svc := NewService(backend, discardLogger())

	created, err := svc.Create(context.Background(), Supplier{
		Name:    "Acme Metals",
		Phone:   "0123",
		Address: "4 Forge Rd",
	})
	require.NoError(t, err)
	require.Equal(t, "s2", created.ID)
	require.Equal(t, "Acme Metals", backend.last.Name)
	require.Empty(t, backend.last.ID)
}

func TestCreateSurfacesBackendMessage(t *testing.T) {
	backend := &fakeBackend{err: &upstream.APIError{StatusCode: 400, Message: "Supplier already exists"}}
	svc := NewService(backend, discardLogger())

	_, err := svc.Create(context.Background(), Supplier{Name: "Acme Metals"})

	var subErr *upstream.SubmissionError
	require.ErrorAs(t, err, &subErr)
	require.Equal(t, "Supplier already exists", subErr.Message)
}
