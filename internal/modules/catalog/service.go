package catalog

import (
	"context"

	"beautysalon/internal/domain"
)

type ServiceStore interface {
	GetActive(ctx context.Context) ([]domain.Service, error)
	GetActiveByID(ctx context.Context, id int64) (*domain.Service, error)
}

type MasterStore interface {
	GetActive(ctx context.Context) ([]domain.Master, error)
	GetActiveByID(ctx context.Context, id int64) (*domain.Master, error)
	GetActiveByServiceID(ctx context.Context, serviceID int64) ([]domain.Master, error)
}

type Service struct {
	services ServiceStore
	masters  MasterStore
}

func NewService(services ServiceStore, masters MasterStore) *Service {
	return &Service{services: services, masters: masters}
}

// ActiveServices lists the public catalog, ordered by (category, name).
func (s *Service) ActiveServices(ctx context.Context) ([]ServiceResponse, error) {
	rows, err := s.services.GetActive(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]ServiceResponse, 0, len(rows))
	for _, svc := range rows {
		out = append(out, toServiceResponse(svc))
	}
	return out, nil
}

// ServicesByCategory buckets the active catalog by category label,
// preserving the (category, name) order inside each bucket.
func (s *Service) ServicesByCategory(ctx context.Context) ([]CategoryGroup, error) {
	rows, err := s.services.GetActive(ctx)
	if err != nil {
		return nil, err
	}

	groups := make([]CategoryGroup, 0)
	for _, svc := range rows {
		resp := toServiceResponse(svc)
		if n := len(groups); n > 0 && groups[n-1].Category == resp.Category {
			groups[n-1].Services = append(groups[n-1].Services, resp)
			continue
		}
		groups = append(groups, CategoryGroup{
			Category:        resp.Category,
			CategoryDisplay: resp.CategoryDisplay,
			Services:        []ServiceResponse{resp},
		})
	}
	return groups, nil
}

func (s *Service) ServiceByID(ctx context.Context, id int64) (*ServiceResponse, error) {
	svc, err := s.services.GetActiveByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toServiceResponse(*svc)
	return &resp, nil
}

// ActiveMasters lists working masters with their service sets, ordered by
// name.
func (s *Service) ActiveMasters(ctx context.Context) ([]MasterResponse, error) {
	rows, err := s.masters.GetActive(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]MasterResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, toMasterResponse(m))
	}
	return out, nil
}

func (s *Service) MasterByID(ctx context.Context, id int64) (*MasterResponse, error) {
	m, err := s.masters.GetActiveByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toMasterResponse(*m)
	return &resp, nil
}

// MastersForService lists the active masters capable of one service.
func (s *Service) MastersForService(ctx context.Context, serviceID int64) ([]MasterResponse, error) {
	rows, err := s.masters.GetActiveByServiceID(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	out := make([]MasterResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, toMasterResponse(m))
	}
	return out, nil
}
