package repository

import (
	"context"
	"errors"

	"beautysalon/internal/domain"

	"gorm.io/gorm"
)

// ContentRepository serves the first-record singletons: the Contact block
// and the SalonInfo block. The admin collaborator is responsible for
// keeping those tables at one meaningful row; reads always take the first.
type ContentRepository struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) *ContentRepository {
	return &ContentRepository{db: db}
}

func toDomainContact(m contactModel) domain.Contact {
	return domain.Contact{
		ID:            m.ID,
		Address:       m.Address,
		Phone:         m.Phone,
		Email:         m.Email,
		WorkingHours:  m.WorkingHours,
		MapEmbed:      m.MapEmbed,
		VKLink:        m.VKLink,
		InstagramLink: m.InstagramLink,
		TelegramLink:  m.TelegramLink,
	}
}

func toDomainSalonInfo(m salonInfoModel) domain.SalonInfo {
	return domain.SalonInfo{
		ID:        m.ID,
		Name:      m.Name,
		Tagline:   m.Tagline,
		AboutText: m.AboutText,
		HeroImage: m.HeroImage,
	}
}

// FirstContact returns the contact block, or ok=false when the table is
// empty.
func (r *ContentRepository) FirstContact(ctx context.Context) (*domain.Contact, bool, error) {
	var m contactModel
	tx := conn(ctx, r.db).Order("id").First(&m)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, tx.Error
	}
	c := toDomainContact(m)
	return &c, true, nil
}

func (r *ContentRepository) FirstSalonInfo(ctx context.Context) (*domain.SalonInfo, bool, error) {
	var m salonInfoModel
	tx := conn(ctx, r.db).Order("id").First(&m)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, tx.Error
	}
	info := toDomainSalonInfo(m)
	return &info, true, nil
}

func (r *ContentRepository) SaveContact(ctx context.Context, c *domain.Contact) error {
	m := contactModel{
		ID:            c.ID,
		Address:       c.Address,
		Phone:         c.Phone,
		Email:         c.Email,
		WorkingHours:  c.WorkingHours,
		MapEmbed:      c.MapEmbed,
		VKLink:        c.VKLink,
		InstagramLink: c.InstagramLink,
		TelegramLink:  c.TelegramLink,
	}
	if tx := conn(ctx, r.db).Save(&m); tx.Error != nil {
		return tx.Error
	}
	c.ID = m.ID
	return nil
}

func (r *ContentRepository) SaveSalonInfo(ctx context.Context, info *domain.SalonInfo) error {
	m := salonInfoModel{
		ID:        info.ID,
		Name:      info.Name,
		Tagline:   info.Tagline,
		AboutText: info.AboutText,
		HeroImage: info.HeroImage,
	}
	if tx := conn(ctx, r.db).Save(&m); tx.Error != nil {
		return tx.Error
	}
	info.ID = m.ID
	return nil
}
