package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codewithharshjha/micro-services/internal/auth"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid data"})
		return
	}

	token, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// The two failure messages are intentionally distinct.
		switch {
		case errors.Is(err, auth.ErrNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"message": "User not found"})
		case errors.Is(err, auth.ErrInvalidCredentials):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid password"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"message": "Unexpected server error",
				"error":   err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
	})
}
