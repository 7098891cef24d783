package handlers

import (
	"net/http"
	"time"

	"hirehub/internal/analytics"
	"hirehub/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AnalyticsHandler struct {
	log *zap.Logger
}

func NewAnalyticsHandler(log *zap.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{log: log}
}

// Get recomputes the dashboard numbers from the full activity history.
func (h *AnalyticsHandler) Get(c *gin.Context) {
	userID := c.GetUint("userID")

	records, err := repository.ListAllProgress(c.Request.Context(), userID)
	if err != nil {
		h.log.Error("Failed to load activity records", zap.Uint("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch analytics"})
		return
	}

	now := time.Now()
	summary := analytics.Compute(records, now)
	series := analytics.WeeklySeries(records, now)

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"analytics":    summary,
		"weekly":       series,
		"weeklyGrowth": analytics.WeeklyGrowth(series),
	})
}
