package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Created is the booking success envelope.
func Created(c *gin.Context, message string, appointmentID int64, details interface{}) {
	c.JSON(http.StatusCreated, gin.H{
		"success":        true,
		"message":        message,
		"appointment_id": appointmentID,
		"details":        details,
	})
}

// ValidationFailed returns every collected violation keyed by field.
func ValidationFailed(c *gin.Context, errors map[string][]string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"errors":  errors,
	})
}

func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
}

func Internal(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"message": "Внутренняя ошибка сервера. Попробуйте позже.",
	})
}
