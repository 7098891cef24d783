package handlers

import (
	"errors"
	"net/http"

	"hirehub/internal/sandbox"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// maxCodeBytes caps submitted source size.
const maxCodeBytes = 64 << 10

type CodeHandler struct {
	log    *zap.Logger
	runner *sandbox.Runner // nil when the Docker daemon was unreachable at startup
}

func NewCodeHandler(log *zap.Logger, runner *sandbox.Runner) *CodeHandler {
	return &CodeHandler{log: log, runner: runner}
}

type runRequest struct {
	Language string `json:"language" binding:"required"`
	Code     string `json:"code" binding:"required"`
}

// Run executes a code submission in an isolated container and returns the
// captured output. 503 when the sandbox is not available.
func (h *CodeHandler) Run(c *gin.Context) {
	if h.runner == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Code execution is not available"})
		return
	}

	var req runRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if len(req.Code) > maxCodeBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Code submission too large"})
		return
	}

	result, err := h.runner.Run(c.Request.Context(), req.Language, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, sandbox.ErrUnknownLanguage):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, sandbox.ErrUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Code execution is not available"})
		default:
			h.log.Error("Sandbox run failed", zap.String("language", req.Language), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to execute code"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"exitCode":   result.ExitCode,
		"stdout":     result.Stdout,
		"stderr":     result.Stderr,
		"timedOut":   result.TimedOut,
		"durationMs": result.Duration.Milliseconds(),
	})
}

// Languages lists the supported sandbox languages.
func (h *CodeHandler) Languages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"languages": sandbox.LanguageNames(),
		"available": h.runner != nil,
	})
}
