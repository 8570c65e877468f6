package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codewithharshjha/micro-services/internal/auth"
)

func (h *Handler) Register(c *gin.Context) {
	var req auth.RegisterInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid data"})
		return
	}

	u, err := h.svc.Register(c.Request.Context(), req)
	if err != nil {
		var ve *auth.ValidationError
		switch {
		case errors.Is(err, auth.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid data"})
		case errors.As(err, &ve):
			c.JSON(http.StatusBadRequest, gin.H{"message": ve.Error()})
		case errors.Is(err, auth.ErrAlreadyExists):
			c.JSON(http.StatusBadRequest, gin.H{"message": "User already exists"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"message": "Unexpected server error",
				"error":   err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"user":    u,
	})
}
