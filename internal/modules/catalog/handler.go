package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"beautysalon/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/services/", h.GetServices)
	rg.GET("/services/by-category/", h.GetServicesByCategory)
	rg.GET("/services/:id/", h.GetService)
	rg.GET("/services/:id/masters/", h.GetMastersForService)
	rg.GET("/masters/", h.GetMasters)
	rg.GET("/masters/:id/", h.GetMaster)
}

// GetServices handles GET /api/services/. Soft-disabled services never
// appear here.
func (h *Handler) GetServices(c *gin.Context) {
	services, err := h.service.ActiveServices(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		response.Internal(c)
		return
	}
	c.JSON(http.StatusOK, services)
}

func (h *Handler) GetServicesByCategory(c *gin.Context) {
	groups, err := h.service.ServicesByCategory(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		response.Internal(c)
		return
	}
	c.JSON(http.StatusOK, groups)
}

func (h *Handler) GetService(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.NotFound(c)
		return
	}

	service, err := h.service.ServiceByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		_ = c.Error(err)
		response.Internal(c)
		return
	}
	c.JSON(http.StatusOK, service)
}

func (h *Handler) GetMasters(c *gin.Context) {
	masters, err := h.service.ActiveMasters(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		response.Internal(c)
		return
	}
	c.JSON(http.StatusOK, masters)
}

func (h *Handler) GetMaster(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.NotFound(c)
		return
	}

	master, err := h.service.MasterByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		_ = c.Error(err)
		response.Internal(c)
		return
	}
	c.JSON(http.StatusOK, master)
}

// GetMastersForService handles GET /api/services/:id/masters/. A service
// id nobody offers yields an empty list, not a 404, matching the site's
// booking form behavior.
func (h *Handler) GetMastersForService(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.NotFound(c)
		return
	}

	masters, err := h.service.MastersForService(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		response.Internal(c)
		return
	}
	c.JSON(http.StatusOK, masters)
}
