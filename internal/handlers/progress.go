package handlers

import (
	"net/http"
	"time"

	"hirehub/internal/models"
	"hirehub/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

type ProgressHandler struct {
	log *zap.Logger
}

func NewProgressHandler(log *zap.Logger) *ProgressHandler {
	return &ProgressHandler{log: log}
}

type progressRequest struct {
	Date               *time.Time `json:"date"`
	CodingProblems     int        `json:"codingProblems"`
	AptitudeScore      int        `json:"aptitudeScore"`
	InterviewQuestions int        `json:"interviewQuestions"`
	TopicsCovered      []string   `json:"topicsCovered"`
	WeakTopics         []string   `json:"weakTopics"`
	Notes              string     `json:"notes"`
}

func (h *ProgressHandler) Save(c *gin.Context) {
	userID := c.GetUint("userID")

	var req progressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.CodingProblems < 0 || req.AptitudeScore < 0 || req.InterviewQuestions < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Counters must be non-negative"})
		return
	}

	entry := models.ProgressEntry{
		UserID:             userID,
		CodingProblems:     req.CodingProblems,
		AptitudeScore:      req.AptitudeScore,
		InterviewQuestions: req.InterviewQuestions,
		TopicsCovered:      pq.StringArray(req.TopicsCovered),
		WeakTopics:         pq.StringArray(req.WeakTopics),
		Notes:              req.Notes,
	}
	if req.Date != nil {
		entry.Date = *req.Date
	}

	if err := repository.AppendProgress(c.Request.Context(), &entry); err != nil {
		h.log.Error("Failed to save progress", zap.Uint("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save progress"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "progress": entry})
}

func (h *ProgressHandler) List(c *gin.Context) {
	userID := c.GetUint("userID")

	entries, err := repository.ListProgress(c.Request.Context(), userID, 30)
	if err != nil {
		h.log.Error("Failed to list progress", zap.Uint("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch progress"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "progress": entries})
}
