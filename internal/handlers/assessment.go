package handlers

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"hirehub/internal/assessment"
	"hirehub/internal/models"
	"hirehub/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// maxAudioBytes caps uploaded answer recordings.
const maxAudioBytes = 10 << 20

type AssessmentHandler struct {
	log         *zap.Logger
	runner      *assessment.Runner
	transcriber assessment.Transcriber
	speaker     assessment.Speaker
}

func NewAssessmentHandler(log *zap.Logger, runner *assessment.Runner, t assessment.Transcriber, sp assessment.Speaker) *AssessmentHandler {
	return &AssessmentHandler{log: log, runner: runner, transcriber: t, speaker: sp}
}

// Start begins a fresh session for the caller, replacing any previous one.
func (h *AssessmentHandler) Start(c *gin.Context) {
	userID := c.GetUint("userID")
	session := h.runner.Start(userID)
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"session":  session.Snapshot(),
		"maxScore": h.runner.Plan().MaxScore(),
	})
}

// State returns the caller's session snapshot.
func (h *AssessmentHandler) State(c *gin.Context) {
	session, ok := h.runner.Get(c.GetUint("userID"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No assessment session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "session": session.Snapshot()})
}

// Section serves the active section's prompts. Answer keys are stripped by
// the model's JSON tags.
func (h *AssessmentHandler) Section(c *gin.Context) {
	session, ok := h.runner.Get(c.GetUint("userID"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No assessment session"})
		return
	}
	snap := session.Snapshot()
	if snap.State != assessment.StateInProgress {
		c.JSON(http.StatusConflict, gin.H{"error": "Session is not in progress"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"section": session.CurrentSection(),
		"session": snap,
	})
}

type respondRequest struct {
	SectionIndex int    `json:"sectionIndex"`
	ItemIndex    int    `json:"itemIndex"`
	Option       *int   `json:"option,omitempty"`
	Text         string `json:"text,omitempty"`
}

// Respond records an answer for the active item. Multipart uploads carry an
// "audio" file which is transcribed first; JSON bodies carry an option index
// or text directly. A stale slot (user already advanced) is accepted with
// recorded=false rather than treated as an error.
func (h *AssessmentHandler) Respond(c *gin.Context) {
	userID := c.GetUint("userID")
	session, ok := h.runner.Get(userID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No assessment session"})
		return
	}

	var req respondRequest
	var answer assessment.Answer

	if file, err := c.FormFile("audio"); err == nil {
		text, terr := h.transcribeUpload(c, file)
		if terr != nil {
			h.log.Warn("Transcription failed, item left unanswered",
				zap.Uint("userID", userID), zap.Error(terr))
			c.JSON(http.StatusOK, gin.H{
				"success":  true,
				"recorded": false,
				"message":  "Could not transcribe audio",
			})
			return
		}
		req.SectionIndex = atoiDefault(c.PostForm("sectionIndex"), -1)
		req.ItemIndex = atoiDefault(c.PostForm("itemIndex"), -1)
		answer = assessment.Answer{Text: text}
	} else {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		answer = assessment.Answer{Option: req.Option, Text: req.Text}
	}

	recorded := session.Record(req.SectionIndex, req.ItemIndex, answer)
	c.JSON(http.StatusOK, gin.H{"success": true, "recorded": recorded})
}

func (h *AssessmentHandler) transcribeUpload(c *gin.Context, file *multipart.FileHeader) (string, error) {
	if file.Size > maxAudioBytes {
		return "", fmt.Errorf("audio upload exceeds %d bytes", maxAudioBytes)
	}
	f, err := file.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	audio, err := io.ReadAll(io.LimitReader(f, maxAudioBytes))
	if err != nil {
		return "", err
	}
	return h.transcriber.Transcribe(c.Request.Context(), audio)
}

// Speak plays an item prompt aloud on the server-side speaker. Overlapping
// requests while playback is running are rejected.
func (h *AssessmentHandler) Speak(c *gin.Context) {
	var req struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if h.speaker.Playing() {
		c.JSON(http.StatusConflict, gin.H{"error": "Playback already in progress"})
		return
	}
	h.speaker.Speak(req.Text)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Advance moves the cursor forward; past the final item it completes the
// session and the response carries the result.
func (h *AssessmentHandler) Advance(c *gin.Context) {
	userID := c.GetUint("userID")
	session, ok := h.runner.Get(userID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No assessment session"})
		return
	}

	completed := session.Advance()
	resp := gin.H{"success": true, "session": session.Snapshot()}
	if completed {
		if result, ok := session.Result(); ok {
			resp["result"] = result
			if session.ClaimMistakeLog() {
				h.recordMistakes(c, userID, result)
			}
		}
	}
	c.JSON(http.StatusOK, resp)
}

// Finish ends the session early and returns the result.
func (h *AssessmentHandler) Finish(c *gin.Context) {
	userID := c.GetUint("userID")
	session, ok := h.runner.Get(userID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No assessment session"})
		return
	}

	session.Finish()
	result, ok := session.Result()
	if !ok {
		c.JSON(http.StatusConflict, gin.H{"error": "Session has no result"})
		return
	}
	if session.ClaimMistakeLog() {
		h.recordMistakes(c, userID, result)
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "result": result})
}

// Result re-reads the result of a completed session.
func (h *AssessmentHandler) Result(c *gin.Context) {
	session, ok := h.runner.Get(c.GetUint("userID"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No assessment session"})
		return
	}
	result, ok := session.Result()
	if !ok {
		c.JSON(http.StatusConflict, gin.H{"error": "Session is still in progress"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "result": result})
}

// Abandon throws the session away without scoring.
func (h *AssessmentHandler) Abandon(c *gin.Context) {
	h.runner.Abandon(c.GetUint("userID"))
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// recordMistakes forwards incorrectly answered graded items to the mistake
// log. Failures are logged and swallowed.
func (h *AssessmentHandler) recordMistakes(c *gin.Context, userID uint, result assessment.Result) {
	for _, item := range result.Items {
		if item.Correct == nil || *item.Correct || !item.Answered {
			continue
		}
		mistake := models.Mistake{
			UserID:   userID,
			Type:     models.MistakeSpoken,
			Topic:    string(item.Type),
			Question: item.Prompt,
			Response: item.Given,
			Solution: item.Expected,
		}
		if err := repository.AppendMistake(c.Request.Context(), &mistake); err != nil {
			h.log.Warn("Failed to record assessment mistake",
				zap.Uint("userID", userID), zap.Error(err))
		}
	}
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
