package booking

import "time"

// CreateAppointmentRequest is the public booking form. There is no status
// field on purpose: a new appointment always starts as "new".
type CreateAppointmentRequest struct {
	ClientName  string `json:"client_name" validate:"required"`
	ClientPhone string `json:"client_phone" validate:"required"`
	ClientEmail string `json:"client_email" validate:"omitempty,email"`
	MasterID    int64  `json:"master" validate:"required"`
	ServiceID   int64  `json:"service" validate:"required"`
	Date        string `json:"date" validate:"required"`
	Time        string `json:"time" validate:"required"`
	Comment     string `json:"comment"`
}

// AppointmentSummary is what the visitor gets back after a successful
// booking. Dates are formatted the way the site shows them (DD.MM.YYYY).
type AppointmentSummary struct {
	ID      int64
	Name    string
	Date    string
	Time    string
	Master  string
	Service string
}

type MasterShort struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
}

type ServiceShort struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Duration int    `json:"duration"`
	Category string `json:"category"`
}

// AppointmentResponse is the staff-facing representation.
type AppointmentResponse struct {
	ID             int64         `json:"id"`
	ClientName     string        `json:"client_name"`
	ClientPhone    string        `json:"client_phone"`
	ClientEmail    string        `json:"client_email,omitempty"`
	Master         int64         `json:"master"`
	MasterDetails  *MasterShort  `json:"master_details,omitempty"`
	Service        int64         `json:"service"`
	ServiceDetails *ServiceShort `json:"service_details,omitempty"`
	Date           string        `json:"date"`
	Time           string        `json:"time"`
	Status         string        `json:"status"`
	StatusDisplay  string        `json:"status_display"`
	Comment        string        `json:"comment,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type BulkStatusRequest struct {
	IDs    []int64 `json:"ids" validate:"required,min=1"`
	Status string  `json:"status" validate:"required"`
}
