package booking

import (
	"errors"
	"net/http"
	"strconv"

	"beautysalon/internal/domain"
	"beautysalon/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

const createdMessage = "Запись успешно создана! Мы свяжемся с вами для подтверждения."

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires the public booking endpoint plus the staff surface.
// extra middleware (rate limiting) applies to the visitor-facing POST only.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, createMiddleware ...gin.HandlerFunc) {
	create := append(createMiddleware, h.CreateAppointment)
	rg.POST("/appointments/", create...)

	rg.GET("/appointments/", h.ListAppointments)
	rg.PATCH("/appointments/:id/status/", h.UpdateStatus)
	rg.POST("/appointments/status/", h.UpdateStatusBulk)
}

func (h *Handler) CreateAppointment(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, map[string][]string{
			"non_field_errors": {"Некорректное тело запроса."},
		})
		return
	}

	summary, err := h.service.CreateAppointment(c.Request.Context(), req)
	if err != nil {
		var ve *ValidationErrors
		if errors.As(err, &ve) {
			response.ValidationFailed(c, ve.Fields)
			return
		}
		_ = c.Error(err)
		response.Internal(c)
		return
	}

	response.Created(c, createdMessage, summary.ID, gin.H{
		"name":    summary.Name,
		"date":    summary.Date,
		"time":    summary.Time,
		"master":  summary.Master,
		"service": summary.Service,
	})
}

func (h *Handler) ListAppointments(c *gin.Context) {
	list, err := h.service.ListAppointments(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		response.Internal(c)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ValidationFailed(c, map[string][]string{
			"id": {"Некорректный идентификатор записи."},
		})
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, map[string][]string{
			"non_field_errors": {"Некорректное тело запроса."},
		})
		return
	}

	affected, err := h.service.SetStatus(c.Request.Context(), id, domain.AppointmentStatus(req.Status))
	if err != nil {
		if errors.Is(err, ErrInvalidStatus) {
			response.ValidationFailed(c, map[string][]string{
				"status": {"Недопустимый статус."},
			})
			return
		}
		_ = c.Error(err)
		response.Internal(c)
		return
	}
	if affected == 0 {
		response.NotFound(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"status":  req.Status,
	})
}

func (h *Handler) UpdateStatusBulk(c *gin.Context) {
	var req BulkStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, map[string][]string{
			"non_field_errors": {"Некорректное тело запроса."},
		})
		return
	}
	if len(req.IDs) == 0 {
		response.ValidationFailed(c, map[string][]string{
			"ids": {"Укажите хотя бы одну запись."},
		})
		return
	}

	affected, err := h.service.SetStatusBulk(c.Request.Context(), req.IDs, domain.AppointmentStatus(req.Status))
	if err != nil {
		if errors.Is(err, ErrInvalidStatus) {
			response.ValidationFailed(c, map[string][]string{
				"status": {"Недопустимый статус."},
			})
			return
		}
		_ = c.Error(err)
		response.Internal(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"updated": affected,
	})
}
