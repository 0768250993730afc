package booking

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"beautysalon/internal/domain"
	"beautysalon/internal/pkg/phone"
	"beautysalon/internal/pkg/validator"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"

	msgRequired       = "Обязательное поле."
	msgBadEmail       = "Введите корректный адрес электронной почты."
	msgBadPhone       = "Введите корректный номер телефона (например: +79001234567)"
	msgBadDate        = "Введите дату в формате ГГГГ-ММ-ДД."
	msgBadTime        = "Введите время в формате ЧЧ:ММ."
	msgPastDate       = "Нельзя записаться на прошедшую дату"
	msgOutsideHours   = "Запись возможна с 09:00 до 21:00"
	msgMasterMissing  = "Мастер не найден."
	msgServiceMissing = "Услуга не найдена."
)

type Service struct {
	appointments AppointmentStore
	masters      MasterStore
	services     ServiceStore
	tx           Transactor

	now func() time.Time
}

func NewService(appointments AppointmentStore, masters MasterStore, services ServiceStore, tx Transactor) *Service {
	return &Service{
		appointments: appointments,
		masters:      masters,
		services:     services,
		tx:           tx,
		now:          time.Now,
	}
}

// CreateAppointment validates the booking form against every rule at once
// and persists the appointment inside one transaction. On any violation it
// returns *ValidationErrors and persists nothing.
func (s *Service) CreateAppointment(ctx context.Context, req CreateAppointmentRequest) (*AppointmentSummary, error) {
	ve := newValidationErrors()

	for field, tag := range validator.Validate(req) {
		switch tag {
		case "email":
			ve.Add(field, msgBadEmail)
		default:
			ve.Add(field, msgRequired)
		}
	}

	if req.ClientPhone != "" && !phone.Valid(req.ClientPhone) {
		ve.Add("client_phone", msgBadPhone)
	}

	var (
		date      time.Time
		timeOfDay time.Time
		dateOK    bool
		timeOK    bool
	)
	if req.Date != "" {
		var err error
		if date, err = time.Parse(dateLayout, req.Date); err != nil {
			ve.Add("date", msgBadDate)
		} else {
			dateOK = true
		}
	}
	if req.Time != "" {
		var err error
		if timeOfDay, err = time.Parse(timeLayout, req.Time); err != nil {
			ve.Add("time", msgBadTime)
		} else {
			timeOK = true
		}
	}

	var summary *AppointmentSummary
	err := s.tx.InTransaction(ctx, func(ctx context.Context) error {
		var master *domain.Master
		var service *domain.Service

		if req.MasterID != 0 {
			m, err := s.masters.GetByID(ctx, req.MasterID)
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				ve.Add("master", msgMasterMissing)
			case err != nil:
				return err
			default:
				master = m
			}
		}

		if req.ServiceID != 0 {
			sv, err := s.services.GetByID(ctx, req.ServiceID)
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				ve.Add("service", msgServiceMissing)
			case err != nil:
				return err
			default:
				service = sv
			}
		}

		if dateOK {
			if err := ValidateDate(date, s.now()); err != nil {
				ve.Add("date", msgPastDate)
			}
		}
		if timeOK {
			if err := ValidateTime(timeOfDay); err != nil {
				ve.Add("time", msgOutsideHours)
			}
		}
		if master != nil && service != nil {
			if err := ValidateMasterOffersService(master, service); err != nil {
				ve.Add("service", err.Error())
			}
		}

		if !ve.Empty() {
			return ve
		}

		a := &domain.Appointment{
			ClientName:  strings.TrimSpace(req.ClientName),
			ClientPhone: phone.Normalize(req.ClientPhone),
			ClientEmail: strings.TrimSpace(req.ClientEmail),
			MasterID:    master.ID,
			ServiceID:   service.ID,
			Date:        date,
			Time:        timeOfDay.Format(timeLayout),
			Status:      domain.AppointmentNew,
			Comment:     strings.TrimSpace(req.Comment),
			CreatedAt:   s.now(),
		}

		if err := s.appointments.Create(ctx, a); err != nil {
			// The master or service may have been deleted after the reads
			// above; the FK violation is reported the same way as a failed
			// lookup.
			if field, ok := fkViolationField(err); ok {
				if field == "service" {
					ve.Add("service", msgServiceMissing)
				} else {
					ve.Add("master", msgMasterMissing)
				}
				return ve
			}
			return err
		}

		summary = &AppointmentSummary{
			ID:      a.ID,
			Name:    a.ClientName,
			Date:    a.Date.Format("02.01.2006"),
			Time:    a.Time,
			Master:  master.Name,
			Service: service.Name,
		}
		return nil
	})
	if err != nil {
		var vErr *ValidationErrors
		if errors.As(err, &vErr) {
			return nil, vErr
		}
		return nil, err
	}

	return summary, nil
}

// SetStatus unconditionally moves an appointment to the given status. Any
// status can follow any other; the guard point is kept here so a stricter
// state machine only has to touch this method.
func (s *Service) SetStatus(ctx context.Context, id int64, status domain.AppointmentStatus) (int64, error) {
	if !status.Valid() {
		return 0, ErrInvalidStatus
	}
	return s.appointments.UpdateStatus(ctx, id, status)
}

// SetStatusBulk applies one status to many appointments and returns how
// many rows changed.
func (s *Service) SetStatusBulk(ctx context.Context, ids []int64, status domain.AppointmentStatus) (int64, error) {
	if !status.Valid() {
		return 0, ErrInvalidStatus
	}
	return s.appointments.UpdateStatusBulk(ctx, ids, status)
}

// ListAppointments returns the staff view, newest first.
func (s *Service) ListAppointments(ctx context.Context) ([]AppointmentResponse, error) {
	rows, err := s.appointments.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]AppointmentResponse, 0, len(rows))
	for _, a := range rows {
		resp := AppointmentResponse{
			ID:            a.ID,
			ClientName:    a.ClientName,
			ClientPhone:   a.ClientPhone,
			ClientEmail:   a.ClientEmail,
			Master:        a.MasterID,
			Service:       a.ServiceID,
			Date:          a.Date.Format(dateLayout),
			Time:          a.Time,
			Status:        string(a.Status),
			StatusDisplay: a.Status.Display(),
			Comment:       a.Comment,
			CreatedAt:     a.CreatedAt,
		}
		if a.Master != nil {
			resp.MasterDetails = &MasterShort{
				ID:             a.Master.ID,
				Name:           a.Master.Name,
				Specialization: a.Master.Specialization,
			}
		}
		if a.Service != nil {
			resp.ServiceDetails = &ServiceShort{
				ID:       a.Service.ID,
				Name:     a.Service.Name,
				Price:    formatPrice(a.Service.Price),
				Duration: a.Service.Duration,
				Category: string(a.Service.Category),
			}
		}
		out = append(out, resp)
	}
	return out, nil
}

func formatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', 2, 64)
}

func fkViolationField(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23503" {
		return "", false
	}
	if strings.Contains(pgErr.ConstraintName, "service") {
		return "service", true
	}
	return "master", true
}
