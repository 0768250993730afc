package repository

import (
	"context"

	"beautysalon/internal/domain"

	"gorm.io/gorm"
)

type MasterRepository struct {
	db *gorm.DB
}

func NewMasterRepository(db *gorm.DB) *MasterRepository {
	return &MasterRepository{db: db}
}

func toDomainMaster(m masterModel) domain.Master {
	services := make([]domain.Service, 0, len(m.Services))
	for _, s := range m.Services {
		services = append(services, toDomainService(s))
	}

	return domain.Master{
		ID:             m.ID,
		Name:           m.Name,
		Photo:          m.Photo,
		Specialization: m.Specialization,
		Experience:     m.Experience,
		Bio:            m.Bio,
		IsActive:       m.IsActive,
		Services:       services,
	}
}

func (r *MasterRepository) Create(ctx context.Context, master *domain.Master) error {
	m := masterModel{
		ID:             master.ID,
		Name:           master.Name,
		Photo:          master.Photo,
		Specialization: master.Specialization,
		Experience:     master.Experience,
		Bio:            master.Bio,
		IsActive:       master.IsActive,
	}
	for _, s := range master.Services {
		m.Services = append(m.Services, toServiceModel(&s))
	}

	if tx := conn(ctx, r.db).Create(&m); tx.Error != nil {
		return tx.Error
	}
	*master = toDomainMaster(m)
	return nil
}

// SetServices replaces the master's capable-service set. The join table
// keeps no duplicates and no ordering.
func (r *MasterRepository) SetServices(ctx context.Context, masterID int64, serviceIDs []int64) error {
	refs := make([]serviceModel, 0, len(serviceIDs))
	for _, id := range serviceIDs {
		refs = append(refs, serviceModel{ID: id})
	}

	return conn(ctx, r.db).
		Model(&masterModel{ID: masterID}).
		Association("Services").
		Replace(refs)
}

// GetByID loads a master with their service set, active or not. Used for
// booking reference resolution.
func (r *MasterRepository) GetByID(ctx context.Context, id int64) (*domain.Master, error) {
	var m masterModel
	tx := conn(ctx, r.db).Preload("Services").First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	master := toDomainMaster(m)
	return &master, nil
}

func (r *MasterRepository) GetActiveByID(ctx context.Context, id int64) (*domain.Master, error) {
	var m masterModel
	tx := conn(ctx, r.db).
		Preload("Services").
		Where("is_active = ?", true).
		First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	master := toDomainMaster(m)
	return &master, nil
}

func (r *MasterRepository) GetActive(ctx context.Context) ([]domain.Master, error) {
	var ms []masterModel
	tx := conn(ctx, r.db).
		Preload("Services").
		Where("is_active = ?", true).
		Order("name").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Master, 0, len(ms))
	for _, m := range ms {
		out = append(out, toDomainMaster(m))
	}
	return out, nil
}

// GetActiveByServiceID lists active masters capable of the given service.
// The join produces at most one row per master, so no dedup is needed on
// top of the query itself.
func (r *MasterRepository) GetActiveByServiceID(ctx context.Context, serviceID int64) ([]domain.Master, error) {
	var ms []masterModel
	tx := conn(ctx, r.db).
		Preload("Services").
		Joins("JOIN master_services ms ON ms.master_id = masters.id").
		Where("ms.service_id = ?", serviceID).
		Where("masters.is_active = ?", true).
		Order("masters.name").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Master, 0, len(ms))
	for _, m := range ms {
		out = append(out, toDomainMaster(m))
	}
	return out, nil
}

// Delete removes a master; appointments cascade at the database level.
func (r *MasterRepository) Delete(ctx context.Context, id int64) error {
	return conn(ctx, r.db).Delete(&masterModel{}, id).Error
}
