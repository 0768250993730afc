package content

import (
	"context"

	"beautysalon/internal/domain"
)

type ContentStore interface {
	FirstContact(ctx context.Context) (*domain.Contact, bool, error)
	FirstSalonInfo(ctx context.Context) (*domain.SalonInfo, bool, error)
}

// Service exposes the first-record singletons. The admin collaborator is
// expected to keep each table at one meaningful row.
type Service struct {
	store ContentStore
}

func NewService(store ContentStore) *Service {
	return &Service{store: store}
}

// Contact returns the contact block, or ok=false when none was entered yet.
func (s *Service) Contact(ctx context.Context) (*domain.Contact, bool, error) {
	return s.store.FirstContact(ctx)
}

func (s *Service) SalonInfo(ctx context.Context) (*domain.SalonInfo, bool, error) {
	return s.store.FirstSalonInfo(ctx)
}
