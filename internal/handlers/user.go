package handlers

import (
	"net/http"

	"hirehub/internal/repository"
	"hirehub/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserHandler struct {
	log *zap.Logger
}

func NewUserHandler(log *zap.Logger) *UserHandler {
	return &UserHandler{log: log}
}

type updatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

// UpdatePassword changes the caller's password after re-checking the
// current one.
func (h *UserHandler) UpdatePassword(c *gin.Context) {
	userID := c.GetUint("userID")

	var req updatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if err := utils.ValidatePassword(req.NewPassword); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := repository.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}
	if !user.CheckPassword(req.CurrentPassword) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Current password is incorrect"})
		return
	}

	if err := repository.UpdateUserPassword(c.Request.Context(), userID, req.NewPassword); err != nil {
		h.log.Error("Failed to update password", zap.Uint("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Password updated"})
}

// DeleteAccount removes the caller's account. Owned rows go with it via the
// foreign key constraints.
func (h *UserHandler) DeleteAccount(c *gin.Context) {
	userID := c.GetUint("userID")

	if err := repository.DeleteUser(c.Request.Context(), userID); err != nil {
		h.log.Error("Failed to delete account", zap.Uint("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete account"})
		return
	}

	h.log.Info("Account deleted", zap.Uint("userID", userID))
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Account deleted"})
}
