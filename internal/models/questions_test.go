package models

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bankYAML = `
interview:
  javascript:
    - question: "Explain closures"
    - question: "What is the event loop?"
  dsa:
    - question: "Implement binary search"

aptitude_sets:
  - name: "Set 1"
    questions:
      - prompt: "What is 2 + 2?"
        options: ["3", "4", "5"]
        correct: 1
        solution: "2 + 2 = 4."
`

func loadTestBank(t *testing.T) *QuestionBank {
	t.Helper()
	path := filepath.Join(t.TempDir(), "questions.yaml")
	require.NoError(t, os.WriteFile(path, []byte(bankYAML), 0644))
	bank, err := LoadQuestionBank(path)
	require.NoError(t, err)
	return bank
}

func TestLoadQuestionBank(t *testing.T) {
	bank := loadTestBank(t)
	assert.Len(t, bank.Interview, 2)
	require.Len(t, bank.AptitudeSets, 1)
	assert.Equal(t, 1, bank.AptitudeSets[0].Questions[0].Correct)
}

func TestLoadQuestionBankMissingFile(t *testing.T) {
	_, err := LoadQuestionBank(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestByTopicCaseInsensitive(t *testing.T) {
	bank := loadTestBank(t)

	assert.Len(t, bank.ByTopic("javascript"), 2)
	assert.Len(t, bank.ByTopic("JavaScript"), 2)
	assert.Len(t, bank.ByTopic("DSA"), 1)
}

func TestByTopicUnknownIsEmptyNotNil(t *testing.T) {
	bank := loadTestBank(t)
	qs := bank.ByTopic("cobol")
	assert.NotNil(t, qs)
	assert.Empty(t, qs)
}

func TestPickAptitudeSet(t *testing.T) {
	bank := loadTestBank(t)

	set := bank.PickAptitudeSet()
	require.NotNil(t, set)
	assert.Equal(t, "Set 1", set.Name)

	empty := &QuestionBank{}
	assert.Nil(t, empty.PickAptitudeSet())
}

func TestPickAptitudeSetConcurrent(t *testing.T) {
	// Set serving happens from concurrent request handlers; picking must not
	// race on shared RNG state (checked under the race detector).
	bank := loadTestBank(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				require.NotNil(t, bank.PickAptitudeSet())
			}
		}()
	}
	wg.Wait()
}
