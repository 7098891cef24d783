package handlers

import (
	"net/http"

	"hirehub/internal/models"
	"hirehub/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type QuestionsHandler struct {
	log  *zap.Logger
	bank *models.QuestionBank
}

func NewQuestionsHandler(log *zap.Logger, bank *models.QuestionBank) *QuestionsHandler {
	return &QuestionsHandler{log: log, bank: bank}
}

// ByTopic serves the interview question bank for one topic. Unknown topics
// return an empty list, not an error.
func (h *QuestionsHandler) ByTopic(c *gin.Context) {
	topic := c.Param("topic")
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"questions": h.bank.ByTopic(topic),
	})
}

// AptitudeSet serves one randomly chosen aptitude test set. Correct indexes
// stay server-side; grading happens in Submit.
func (h *QuestionsHandler) AptitudeSet(c *gin.Context) {
	set := h.bank.PickAptitudeSet()
	if set == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No aptitude sets loaded"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "set": set})
}

type aptitudeSubmission struct {
	SetName string      `json:"setName" binding:"required"`
	Answers map[int]int `json:"answers"` // question index -> chosen option
}

// SubmitAptitude grades a completed aptitude set. Wrong answers are
// forwarded to the mistake log, fire-and-forget.
func (h *QuestionsHandler) SubmitAptitude(c *gin.Context) {
	userID := c.GetUint("userID")

	var sub aptitudeSubmission
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	var set *models.AptitudeSet
	for i := range h.bank.AptitudeSets {
		if h.bank.AptitudeSets[i].Name == sub.SetName {
			set = &h.bank.AptitudeSets[i]
			break
		}
	}
	if set == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown aptitude set"})
		return
	}

	correct := 0
	for i, q := range set.Questions {
		chosen, answered := sub.Answers[i]
		if answered && chosen == q.Correct {
			correct++
			continue
		}
		if !answered {
			continue
		}

		given := ""
		if chosen >= 0 && chosen < len(q.Options) {
			given = q.Options[chosen]
		}
		mistake := models.Mistake{
			UserID:   userID,
			Type:     models.MistakeAptitude,
			Topic:    set.Name,
			Question: q.Prompt,
			Response: given,
			Solution: q.Solution,
		}
		if err := repository.AppendMistake(c.Request.Context(), &mistake); err != nil {
			h.log.Warn("Failed to record aptitude mistake", zap.Uint("userID", userID), zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"score":   correct,
		"total":   len(set.Questions),
	})
}
