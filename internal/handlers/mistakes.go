package handlers

import (
	"net/http"

	"hirehub/internal/models"
	"hirehub/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type MistakesHandler struct {
	log *zap.Logger
}

func NewMistakesHandler(log *zap.Logger) *MistakesHandler {
	return &MistakesHandler{log: log}
}

type mistakeRequest struct {
	Type     string `json:"type" binding:"required"`
	Topic    string `json:"topic"`
	Question string `json:"question" binding:"required"`
	Response string `json:"response"`
	Solution string `json:"solution"`
}

func validMistakeType(t string) bool {
	switch t {
	case models.MistakeAptitude, models.MistakeCoding, models.MistakeSpoken:
		return true
	}
	return false
}

// Save records a mistake the client logged manually.
func (h *MistakesHandler) Save(c *gin.Context) {
	userID := c.GetUint("userID")

	var req mistakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if !validMistakeType(req.Type) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown mistake type"})
		return
	}

	mistake := models.Mistake{
		UserID:   userID,
		Type:     req.Type,
		Topic:    req.Topic,
		Question: req.Question,
		Response: req.Response,
		Solution: req.Solution,
	}
	if err := repository.AppendMistake(c.Request.Context(), &mistake); err != nil {
		h.log.Error("Failed to save mistake", zap.Uint("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save mistake"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "mistake": mistake})
}

// List returns the user's mistakes, newest first. An optional ?type=
// query filters by mistake type.
func (h *MistakesHandler) List(c *gin.Context) {
	userID := c.GetUint("userID")

	mistakeType := c.Query("type")
	if mistakeType != "" && !validMistakeType(mistakeType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown mistake type"})
		return
	}

	mistakes, err := repository.ListMistakes(c.Request.Context(), userID, mistakeType)
	if err != nil {
		h.log.Error("Failed to list mistakes", zap.Uint("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load mistakes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "mistakes": mistakes})
}

// MarkReviewed flags one mistake as reviewed.
func (h *MistakesHandler) MarkReviewed(c *gin.Context) {
	userID := c.GetUint("userID")
	id := c.Param("id")

	if err := repository.MarkMistakeReviewed(c.Request.Context(), userID, id); err != nil {
		h.log.Error("Failed to mark mistake reviewed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update mistake"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Delete removes one mistake owned by the caller.
func (h *MistakesHandler) Delete(c *gin.Context) {
	userID := c.GetUint("userID")
	id := c.Param("id")

	if err := repository.DeleteMistake(c.Request.Context(), userID, id); err != nil {
		h.log.Error("Failed to delete mistake", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete mistake"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Clear removes every mistake the caller owns.
func (h *MistakesHandler) Clear(c *gin.Context) {
	userID := c.GetUint("userID")

	if err := repository.ClearMistakes(c.Request.Context(), userID); err != nil {
		h.log.Error("Failed to clear mistakes", zap.Uint("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear mistakes"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
