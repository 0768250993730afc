package booking

import (
	"context"

	"beautysalon/internal/domain"
)

type AppointmentStore interface {
	Create(ctx context.Context, a *domain.Appointment) error
	List(ctx context.Context) ([]domain.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) (int64, error)
	UpdateStatusBulk(ctx context.Context, ids []int64, status domain.AppointmentStatus) (int64, error)
}

type MasterStore interface {
	GetByID(ctx context.Context, id int64) (*domain.Master, error)
}

type ServiceStore interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// Transactor wraps existence checks, rule evaluation and the insert into
// one atomic unit, so a master or service deleted mid-request cannot leave
// a dangling appointment behind.
type Transactor interface {
	InTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
