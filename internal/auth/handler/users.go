package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListUsers is an unpaginated bulk read for administrative use.
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.svc.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Error fetching users",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Users fetched successfully",
		"users":   users,
	})
}
