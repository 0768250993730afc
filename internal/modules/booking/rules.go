package booking

import (
	"errors"
	"fmt"
	"time"

	"beautysalon/internal/domain"
)

// Business hours form the half-open interval [09:00, 21:00): a 09:00
// appointment is accepted, a 21:00 one is not.
const (
	openingMinute = 9 * 60
	closingMinute = 21 * 60
)

var (
	ErrPastDate             = errors.New("date is in the past")
	ErrOutsideBusinessHours = errors.New("time is outside business hours")
)

// ServiceNotOfferedError names both entities so the message can be shown
// to the visitor as-is.
type ServiceNotOfferedError struct {
	MasterName  string
	ServiceName string
}

func (e *ServiceNotOfferedError) Error() string {
	return fmt.Sprintf("Мастер %s не оказывает услугу \"%s\"", e.MasterName, e.ServiceName)
}

// ValidateDate rejects dates before the current calendar day. Today is
// still bookable.
func ValidateDate(date, now time.Time) error {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, date.Location())
	if date.Before(today) {
		return ErrPastDate
	}
	return nil
}

// ValidateTime checks the appointment time against business hours.
func ValidateTime(t time.Time) error {
	minute := t.Hour()*60 + t.Minute()
	if minute < openingMinute || minute >= closingMinute {
		return ErrOutsideBusinessHours
	}
	return nil
}

// ValidateMasterOffersService checks that the service belongs to the
// master's capable-service set.
func ValidateMasterOffersService(master *domain.Master, service *domain.Service) error {
	if !master.Offers(service.ID) {
		return &ServiceNotOfferedError{MasterName: master.Name, ServiceName: service.Name}
	}
	return nil
}
