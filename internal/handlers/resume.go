package handlers

import (
	"errors"
	"io"
	"net/http"

	"hirehub/internal/models"
	"hirehub/internal/repository"
	"hirehub/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const maxResumeBytes = 5 << 20 // 5MB upload limit

var errFileTooLarge = errors.New("resume file exceeds the 5MB limit")

type ResumeHandler struct {
	log     *zap.Logger
	service *services.ResumeService
}

func NewResumeHandler(log *zap.Logger, service *services.ResumeService) *ResumeHandler {
	return &ResumeHandler{log: log, service: service}
}

// Analyze accepts resume text either as a multipart "resume" file or as a
// JSON body {"text": ...}, runs the analysis and persists the result.
func (h *ResumeHandler) Analyze(c *gin.Context) {
	userID := c.GetUint("userID")

	resumeText, err := h.readResumeText(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if resumeText == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No resume content provided"})
		return
	}

	report := h.service.Analyze(c.Request.Context(), resumeText)

	record := models.NewResumeAnalysis(userID, resumeText, report)
	if err := repository.SaveResumeAnalysis(c.Request.Context(), &record); err != nil {
		// The analysis itself succeeded; persisting is best-effort.
		h.log.Error("Failed to persist resume analysis", zap.Uint("userID", userID), zap.Error(err))
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "analysis": report})
}

func (h *ResumeHandler) readResumeText(c *gin.Context) (string, error) {
	if file, err := c.FormFile("resume"); err == nil {
		if file.Size > maxResumeBytes {
			return "", errFileTooLarge
		}
		f, err := file.Open()
		if err != nil {
			return "", err
		}
		defer f.Close()
		data, err := io.ReadAll(io.LimitReader(f, maxResumeBytes))
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	var body struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		return "", err
	}
	return body.Text, nil
}

// Latest returns the user's most recent stored analysis.
func (h *ResumeHandler) Latest(c *gin.Context) {
	userID := c.GetUint("userID")

	record, err := repository.LatestResumeAnalysis(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No analysis found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "analysis": record})
}
