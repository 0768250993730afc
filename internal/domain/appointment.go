package domain

import "time"

type AppointmentStatus string

const (
	AppointmentNew       AppointmentStatus = "new"
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentNew, AppointmentConfirmed, AppointmentCompleted, AppointmentCancelled:
		return true
	}
	return false
}

// Display returns the status label shown to staff.
func (s AppointmentStatus) Display() string {
	switch s {
	case AppointmentNew:
		return "Новая"
	case AppointmentConfirmed:
		return "Подтверждена"
	case AppointmentCompleted:
		return "Выполнена"
	case AppointmentCancelled:
		return "Отменена"
	}
	return string(s)
}

type Appointment struct {
	ID          int64             `json:"id"`
	ClientName  string            `json:"client_name" validate:"required"`
	ClientPhone string            `json:"client_phone" validate:"required"`
	ClientEmail string            `json:"client_email,omitempty"`
	MasterID    int64             `json:"master" validate:"required"`
	ServiceID   int64             `json:"service" validate:"required"`
	Date        time.Time         `json:"date"`
	Time        string            `json:"time"`
	Status      AppointmentStatus `json:"status"`
	Comment     string            `json:"comment,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`

	Master  *Master  `json:"-"`
	Service *Service `json:"-"`
}
