package repository

import (
	"context"

	"beautysalon/internal/domain"

	"gorm.io/gorm"
)

type ServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

func toDomainService(m serviceModel) domain.Service {
	return domain.Service{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		Duration:    m.Duration,
		Category:    domain.ServiceCategory(m.Category),
		Image:       m.Image,
		IsActive:    m.IsActive,
	}
}

func toServiceModel(s *domain.Service) serviceModel {
	return serviceModel{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Price:       s.Price,
		Duration:    s.Duration,
		Category:    string(s.Category),
		Image:       s.Image,
		IsActive:    s.IsActive,
	}
}

func (r *ServiceRepository) Create(ctx context.Context, s *domain.Service) error {
	m := toServiceModel(s)
	if tx := conn(ctx, r.db).Create(&m); tx.Error != nil {
		return tx.Error
	}
	*s = toDomainService(m)
	return nil
}

func (r *ServiceRepository) Update(ctx context.Context, s *domain.Service) error {
	m := toServiceModel(s)
	return conn(ctx, r.db).Save(&m).Error
}

// GetByID resolves a service regardless of its is_active flag. Booking
// references may point at soft-disabled services.
func (r *ServiceRepository) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	var m serviceModel
	if tx := conn(ctx, r.db).First(&m, id); tx.Error != nil {
		return nil, tx.Error
	}
	s := toDomainService(m)
	return &s, nil
}

// GetActiveByID resolves a service for the public catalog; soft-disabled
// services are invisible there.
func (r *ServiceRepository) GetActiveByID(ctx context.Context, id int64) (*domain.Service, error) {
	var m serviceModel
	tx := conn(ctx, r.db).Where("is_active = ?", true).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	s := toDomainService(m)
	return &s, nil
}

func (r *ServiceRepository) GetActive(ctx context.Context) ([]domain.Service, error) {
	var ms []serviceModel
	tx := conn(ctx, r.db).
		Where("is_active = ?", true).
		Order("category").
		Order("name").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Service, 0, len(ms))
	for _, m := range ms {
		out = append(out, toDomainService(m))
	}
	return out, nil
}
