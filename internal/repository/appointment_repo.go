package repository

import (
	"context"

	"beautysalon/internal/domain"

	"gorm.io/gorm"
)

type AppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

func toDomainAppointment(m appointmentModel) *domain.Appointment {
	var comment string
	if m.Comment != nil {
		comment = *m.Comment
	}

	a := &domain.Appointment{
		ID:          m.ID,
		ClientName:  m.ClientName,
		ClientPhone: m.ClientPhone,
		ClientEmail: m.ClientEmail,
		MasterID:    m.MasterID,
		ServiceID:   m.ServiceID,
		Date:        m.Date,
		Time:        m.Time,
		Status:      domain.AppointmentStatus(m.Status),
		Comment:     comment,
		CreatedAt:   m.CreatedAt,
	}
	if m.Master != nil {
		master := toDomainMaster(*m.Master)
		a.Master = &master
	}
	if m.Service != nil {
		service := toDomainService(*m.Service)
		a.Service = &service
	}
	return a
}

func toAppointmentModel(a *domain.Appointment) appointmentModel {
	var comment *string
	if a.Comment != "" {
		v := a.Comment
		comment = &v
	}

	return appointmentModel{
		ID:          a.ID,
		ClientName:  a.ClientName,
		ClientPhone: a.ClientPhone,
		ClientEmail: a.ClientEmail,
		MasterID:    a.MasterID,
		ServiceID:   a.ServiceID,
		Date:        a.Date,
		Time:        a.Time,
		Status:      string(a.Status),
		Comment:     comment,
		CreatedAt:   a.CreatedAt,
	}
}

func (r *AppointmentRepository) Create(ctx context.Context, a *domain.Appointment) error {
	m := toAppointmentModel(a)
	if tx := conn(ctx, r.db).Omit("Master", "Service").Create(&m); tx.Error != nil {
		return tx.Error
	}
	*a = *toDomainAppointment(m)
	return nil
}

func (r *AppointmentRepository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	var m appointmentModel
	tx := conn(ctx, r.db).
		Preload("Master.Services").
		Preload("Service").
		First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainAppointment(m), nil
}

// List returns all appointments, newest first, with master and service
// attached for the staff view.
func (r *AppointmentRepository) List(ctx context.Context) ([]domain.Appointment, error) {
	var ms []appointmentModel
	tx := conn(ctx, r.db).
		Preload("Master").
		Preload("Service").
		Order("date DESC").
		Order("time DESC").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Appointment, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainAppointment(m))
	}
	return out, nil
}

// UpdateStatus unconditionally sets the status of one appointment and
// reports whether a row was touched.
func (r *AppointmentRepository) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) (int64, error) {
	tx := conn(ctx, r.db).
		Model(&appointmentModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if tx.Error != nil {
		return 0, tx.Error
	}
	return tx.RowsAffected, nil
}

// UpdateStatusBulk applies one status to many appointments at once and
// returns the affected-row count.
func (r *AppointmentRepository) UpdateStatusBulk(ctx context.Context, ids []int64, status domain.AppointmentStatus) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	tx := conn(ctx, r.db).
		Model(&appointmentModel{}).
		Where("id IN ?", ids).
		Update("status", string(status))
	if tx.Error != nil {
		return 0, tx.Error
	}
	return tx.RowsAffected, nil
}
