package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractReportJSON(t *testing.T) {
	text := `Here is the analysis you asked for:
{"missingSkills": ["aws"], "suggestions": ["add projects"], "score": 70, "strengths": ["solid basics"], "improvements": ["depth"]}
Let me know if you need anything else.`

	report, ok := ExtractReportJSON(text)
	require.True(t, ok)
	assert.Equal(t, 70, report.Score)
	assert.Equal(t, []string{"aws"}, report.MissingSkills)
	assert.Equal(t, []string{"solid basics"}, report.Strengths)
}

func TestExtractReportJSONBare(t *testing.T) {
	report, ok := ExtractReportJSON(`{"score": 55}`)
	require.True(t, ok)
	assert.Equal(t, 55, report.Score)
}

func TestExtractReportJSONFailures(t *testing.T) {
	for name, text := range map[string]string{
		"no braces":    "sorry, I cannot help with that",
		"empty":        "",
		"invalid json": "{score: oops}",
		"reversed":     "} nothing here {",
	} {
		t.Run(name, func(t *testing.T) {
			_, ok := ExtractReportJSON(text)
			assert.False(t, ok)
		})
	}
}

func TestFallbackAnalysisScoring(t *testing.T) {
	// no keywords at all
	report := FallbackAnalysis("I enjoy gardening and long walks.")
	assert.Equal(t, 20, report.Score)
	assert.Len(t, report.MissingSkills, 5, "missing skills list is capped at five")
	assert.Equal(t, []string{"Shows initiative in learning"}, report.Strengths)

	// a few keywords, case-insensitive
	report = FallbackAnalysis("Built services with Python, Docker and SQL.")
	assert.Equal(t, 3*12+20, report.Score)
	assert.Contains(t, report.Strengths[0], "python")

	// every keyword hits; score is capped
	report = FallbackAnalysis("react node python java sql aws docker git")
	assert.Equal(t, 85, report.Score)
	assert.Empty(t, report.MissingSkills)
}

func TestFallbackAnalysisAlwaysGivesAdvice(t *testing.T) {
	report := FallbackAnalysis("")
	assert.NotEmpty(t, report.Suggestions)
	assert.NotEmpty(t, report.Improvements)
	assert.True(t, report.Score >= 0 && report.Score <= 100)
}

func TestFallbackMissingSkillsComeFromKeywordList(t *testing.T) {
	report := FallbackAnalysis("react developer")
	for _, skill := range report.MissingSkills {
		assert.NotEqual(t, "react", skill)
		assert.Contains(t, strings.Join(fallbackSkills, " "), skill)
	}
}
