package suppliers

import (
	"context"
	"log/slog"

	"github.com/vela-commerce/vela-commerce/internal/upstream"
)

// BackendPort abstracts the backend supplier operations.
type BackendPort interface {
	FetchSuppliers(ctx context.Context) ([]upstream.Supplier, error)
	CreateSupplier(ctx context.Context, supplier upstream.Supplier) (upstream.Supplier, error)
}

// Service lists and creates suppliers on the backend.
type Service struct {
	backend BackendPort
	logger  *slog.Logger
}

// NewService builds Service.
func NewService(backend BackendPort, logger *slog.Logger) *Service {
	return &Service{backend: backend, logger: logger}
}

// List returns all suppliers.
func (s *Service) List(ctx context.Context) ([]Supplier, error) {
	records, err := s.backend.FetchSuppliers(ctx)
	if err != nil {
		return nil, &FetchError{Err: err}
	}

	suppliers := make([]Supplier, 0, len(records))
	for _, r := range records {
		suppliers = append(suppliers, fromUpstream(r))
	}
	return suppliers, nil
}

// Create registers a new supplier.
func (s *Service) Create(ctx context.Context, supplier Supplier) (Supplier, error) {
	created, err := s.backend.CreateSupplier(ctx, upstream.Supplier{
		Name:          supplier.Name,
		ContactPerson: supplier.ContactPerson,
		Email:         supplier.Email,
		Phone:         supplier.Phone,
		Address:       supplier.Address,
	})
	if err != nil {
		return Supplier{}, upstream.NewSubmissionError(err, "supplier creation failed")
	}

	if s.logger != nil {
		s.logger.Info("supplier created", slog.String("name", created.Name))
	}
	return fromUpstream(created), nil
}

func fromUpstream(r upstream.Supplier) Supplier {
	return Supplier{
		ID:            r.ID,
		Name:          r.Name,
		ContactPerson: r.ContactPerson,
		Email:         r.Email,
		Phone:         r.Phone,
		Address:       r.Address,
	}
}
