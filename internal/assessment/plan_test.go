package assessment

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

func newTestLogger(t *testing.T) *zap.Logger {
	return zaptest.NewLogger(t)
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return string(data)
}

func writePlanFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "assessment.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const validPlanYAML = `
duration_seconds: 60
sections:
  - title: "Vocabulary"
    type: multiple-choice
    items:
      - prompt: "Synonym of 'Vivid'"
        options: ["Dull", "Bright"]
        correct: 1
  - title: "Typing"
    type: typing
    items:
      - prompt: "Type this passage accurately."
`

func TestLoadPlan(t *testing.T) {
	plan, err := LoadPlan(writePlanFile(t, validPlanYAML))
	require.NoError(t, err)

	assert.Equal(t, 60, plan.DurationSeconds)
	require.Len(t, plan.Sections, 2)
	assert.Equal(t, SectionMultipleChoice, plan.Sections[0].Type)
	assert.Equal(t, 2, plan.TotalItems())
	assert.Equal(t, GradedPoints+PresencePoints, plan.MaxScore())
}

func TestLoadPlanMissingFile(t *testing.T) {
	_, err := LoadPlan(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadPlanRejectsBadPlans(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			"zero duration",
			`
duration_seconds: 0
sections:
  - title: "Typing"
    type: typing
    items:
      - prompt: "Type."
`,
		},
		{
			"no sections",
			`
duration_seconds: 60
sections: []
`,
		},
		{
			"empty section",
			`
duration_seconds: 60
sections:
  - title: "Vocabulary"
    type: multiple-choice
    items: []
`,
		},
		{
			"correct index out of range",
			`
duration_seconds: 60
sections:
  - title: "Vocabulary"
    type: multiple-choice
    items:
      - prompt: "Synonym of 'Vivid'"
        options: ["Dull", "Bright"]
        correct: 5
`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadPlan(writePlanFile(t, tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestPlanAnswerKeysNotSerialized(t *testing.T) {
	plan, err := LoadPlan(writePlanFile(t, validPlanYAML))
	require.NoError(t, err)

	item := plan.Sections[0].Items[0]
	assert.Equal(t, 1, item.Correct, "answer key loads from YAML")
	// json tags keep Correct and Target out of API responses; covered by the
	// "-" tags on Item, asserted here via the section payload shape
	assert.NotContains(t, mustJSON(t, item), "correct")
	assert.NotContains(t, mustJSON(t, item), "target")
}
