package content

import (
	"net/http"

	"beautysalon/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/contacts/", h.GetContacts)
	rg.GET("/salon-info/", h.GetSalonInfo)
}

// GetContacts handles GET /api/contacts/. An empty table yields {} with
// HTTP 200, the shape the landing page expects.
func (h *Handler) GetContacts(c *gin.Context) {
	contact, ok, err := h.service.Contact(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		response.Internal(c)
		return
	}
	if !ok {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.JSON(http.StatusOK, contact)
}

func (h *Handler) GetSalonInfo(c *gin.Context) {
	info, ok, err := h.service.SalonInfo(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		response.Internal(c)
		return
	}
	if !ok {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.JSON(http.StatusOK, info)
}
