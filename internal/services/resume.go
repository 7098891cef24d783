package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"hirehub/internal/config"
	"hirehub/internal/models"

	"go.uber.org/zap"
)

const anthropicEndpoint = "https://api.anthropic.com/v1/messages"

const analysisPrompt = `Analyze this resume and provide:
1. Missing technical skills for software engineering roles
2. Improvement suggestions
3. Overall score (0-100)
4. Key strengths
5. Areas to improve

Resume:
%s

Respond ONLY in this JSON format:
{
  "missingSkills": ["skill1", "skill2"],
  "suggestions": ["suggestion1", "suggestion2"],
  "score": 75,
  "strengths": ["strength1", "strength2"],
  "improvements": ["improvement1", "improvement2"]
}`

// ResumeService analyzes resume text through the AI completion API, falling
// back to a local keyword heuristic whenever the call or its output fails.
type ResumeService struct {
	log    *zap.Logger
	client *http.Client
}

func NewResumeService(log *zap.Logger) *ResumeService {
	timeout := 30 * time.Second
	if config.Conf != nil && config.Conf.Resume.TimeoutSeconds > 0 {
		timeout = time.Duration(config.Conf.Resume.TimeoutSeconds) * time.Second
	}
	return &ResumeService{
		log:    log,
		client: &http.Client{Timeout: timeout},
	}
}

// Analyze never returns an error: any failure path degrades to the fallback
// report so the user always gets an analysis.
func (s *ResumeService) Analyze(ctx context.Context, resumeText string) models.ResumeReport {
	report, err := s.analyzeWithAI(ctx, resumeText)
	if err != nil {
		s.log.Warn("AI resume analysis failed, using fallback", zap.Error(err))
		return FallbackAnalysis(resumeText)
	}
	return report
}

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Text string `json:"text"`
	} `json:"content"`
}

func (s *ResumeService) analyzeWithAI(ctx context.Context, resumeText string) (models.ResumeReport, error) {
	apiKey := config.Conf.Resume.APIKey
	if apiKey == "" {
		return models.ResumeReport{}, fmt.Errorf("no API key configured")
	}

	reqBody := anthropicRequest{
		Model:     config.Conf.Resume.Model,
		MaxTokens: 1000,
		Messages: []anthropicMessage{
			{Role: "user", Content: fmt.Sprintf(analysisPrompt, resumeText)},
		},
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return models.ResumeReport{}, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, anthropicEndpoint, bytes.NewReader(payload))
	if err != nil {
		return models.ResumeReport{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", apiKey)
	req.Header.Set("anthropic-version", "2023-06-01")

	resp, err := s.client.Do(req)
	if err != nil {
		return models.ResumeReport{}, fmt.Errorf("call completion API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.ResumeReport{}, fmt.Errorf("completion API returned status %d", resp.StatusCode)
	}

	var apiResp anthropicResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return models.ResumeReport{}, fmt.Errorf("decode response: %w", err)
	}
	if len(apiResp.Content) == 0 {
		return models.ResumeReport{}, fmt.Errorf("empty completion")
	}

	report, ok := ExtractReportJSON(apiResp.Content[0].Text)
	if !ok {
		return models.ResumeReport{}, fmt.Errorf("no JSON object in completion")
	}
	return report, nil
}

// ExtractReportJSON pulls the first {...} block out of the completion text
// and parses it. Model output often wraps the JSON in prose.
func ExtractReportJSON(text string) (models.ResumeReport, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return models.ResumeReport{}, false
	}

	var report models.ResumeReport
	if err := json.Unmarshal([]byte(text[start:end+1]), &report); err != nil {
		return models.ResumeReport{}, false
	}
	return report, true
}

// fallbackSkills is the keyword list the heuristic scorer scans for.
var fallbackSkills = []string{"react", "node", "python", "java", "sql", "aws", "docker", "git"}

// FallbackAnalysis is the local heuristic used when the AI collaborator is
// unavailable: keyword presence drives the score and skill lists.
func FallbackAnalysis(resumeText string) models.ResumeReport {
	text := strings.ToLower(resumeText)

	var found, missing []string
	for _, skill := range fallbackSkills {
		if strings.Contains(text, skill) {
			found = append(found, skill)
		} else {
			missing = append(missing, skill)
		}
	}
	if len(missing) > 5 {
		missing = missing[:5]
	}

	score := len(found)*12 + 20
	if score > 85 {
		score = 85
	}

	strengths := []string{"Shows initiative in learning"}
	if len(found) > 0 {
		strengths = []string{fmt.Sprintf("Good technical foundation with %s", strings.Join(found, ", "))}
	}

	return models.ResumeReport{
		MissingSkills: missing,
		Suggestions: []string{
			"Add quantifiable achievements (e.g., \"Improved performance by 40%\")",
			"Include relevant technical projects with GitHub links",
			"Add certifications or courses completed",
			"Use action verbs (Built, Developed, Implemented)",
			"Ensure consistent formatting throughout",
		},
		Score:     score,
		Strengths: strengths,
		Improvements: []string{
			"Add more industry-relevant skills",
			"Include measurable project impacts",
			"Enhance technical depth in descriptions",
		},
	}
}
