package models

import (
	"fmt"
	"math/rand"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// InterviewQuestion is one entry in the topic question bank.
type InterviewQuestion struct {
	Question   string `yaml:"question" json:"question"`
	Answer     string `yaml:"answer,omitempty" json:"answer,omitempty"`
	Difficulty string `yaml:"difficulty,omitempty" json:"difficulty,omitempty"`
}

// AptitudeQuestion is one multiple-choice aptitude item.
type AptitudeQuestion struct {
	Prompt   string   `yaml:"prompt" json:"prompt"`
	Options  []string `yaml:"options" json:"options"`
	Correct  int      `yaml:"correct" json:"-"` // never sent to the client
	Solution string   `yaml:"solution,omitempty" json:"-"`
}

// AptitudeSet is a named block of aptitude questions served as one test.
type AptitudeSet struct {
	Name      string             `yaml:"name" json:"name"`
	Questions []AptitudeQuestion `yaml:"questions" json:"questions"`
}

// QuestionBank holds all static question content loaded at startup.
type QuestionBank struct {
	Interview    map[string][]InterviewQuestion `yaml:"interview"`
	AptitudeSets []AptitudeSet                  `yaml:"aptitude_sets"`
}

// LoadQuestionBank reads and parses the questions YAML file.
func LoadQuestionBank(path string) (*QuestionBank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read question bank file: %w", err)
	}

	var bank QuestionBank
	if err := yaml.Unmarshal(data, &bank); err != nil {
		return nil, fmt.Errorf("failed to unmarshal question bank YAML: %w", err)
	}

	return &bank, nil
}

// ByTopic returns the interview questions for a topic, matching
// case-insensitively. Unknown topics yield an empty slice.
func (b *QuestionBank) ByTopic(topic string) []InterviewQuestion {
	if qs, ok := b.Interview[strings.ToLower(topic)]; ok {
		return qs
	}
	return []InterviewQuestion{}
}

// PickAptitudeSet returns a random aptitude set, or nil when none are
// loaded. The top-level rand functions serialize access internally, so this
// is safe from concurrent request handlers.
func (b *QuestionBank) PickAptitudeSet() *AptitudeSet {
	if len(b.AptitudeSets) == 0 {
		return nil
	}
	return &b.AptitudeSets[rand.Intn(len(b.AptitudeSets))]
}
