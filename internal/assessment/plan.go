// Package assessment drives one timed, multi-section spoken-English style
// test per user. The section plan is static YAML content; each live session
// is in-memory state owned by the Runner.
package assessment

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SectionType tags how a section's items are presented and scored.
type SectionType string

const (
	SectionReadAloud      SectionType = "read-aloud"
	SectionRepeatAudio    SectionType = "repeat-audio"
	SectionWordReorder    SectionType = "word-reorder"
	SectionMultipleChoice SectionType = "multiple-choice"
	SectionFreeText       SectionType = "free-text"
	SectionTyping         SectionType = "typing"
)

// Point values per item. Graded items are worth more than presence-scored
// ones (audio, free text and typing count any non-empty submission).
const (
	GradedPoints   = 10
	PresencePoints = 5
)

// Item is a single prompt within a section.
type Item struct {
	Prompt  string   `yaml:"prompt" json:"prompt"`
	Words   []string `yaml:"words,omitempty" json:"words,omitempty"`     // word-reorder tiles
	Target  string   `yaml:"target,omitempty" json:"-"`                  // word-reorder answer
	Options []string `yaml:"options,omitempty" json:"options,omitempty"` // multiple choice
	Correct int      `yaml:"correct,omitempty" json:"-"`
}

// Section is one phase of the assessment with an ordered item list.
type Section struct {
	Title string      `yaml:"title" json:"title"`
	Type  SectionType `yaml:"type" json:"type"`
	Items []Item      `yaml:"items" json:"items"`
}

// Plan is the fixed ordered section sequence plus the shared countdown.
type Plan struct {
	DurationSeconds int       `yaml:"duration_seconds"`
	Sections        []Section `yaml:"sections"`
}

// LoadPlan reads and parses the assessment plan YAML file.
func LoadPlan(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read assessment plan: %w", err)
	}

	var plan Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("failed to unmarshal assessment plan YAML: %w", err)
	}
	if err := plan.validate(); err != nil {
		return nil, err
	}
	return &plan, nil
}

func (p *Plan) validate() error {
	if p.DurationSeconds <= 0 {
		return fmt.Errorf("assessment plan: duration_seconds must be positive")
	}
	if len(p.Sections) == 0 {
		return fmt.Errorf("assessment plan: no sections defined")
	}
	for i, s := range p.Sections {
		if len(s.Items) == 0 {
			return fmt.Errorf("assessment plan: section %d (%s) has no items", i, s.Title)
		}
		if s.Type == SectionMultipleChoice {
			for j, item := range s.Items {
				if item.Correct < 0 || item.Correct >= len(item.Options) {
					return fmt.Errorf("assessment plan: section %d item %d: correct index out of range", i, j)
				}
			}
		}
	}
	return nil
}

// TotalItems counts items across all sections.
func (p *Plan) TotalItems() int {
	n := 0
	for _, s := range p.Sections {
		n += len(s.Items)
	}
	return n
}

// MaxScore sums the maximum points across all items.
func (p *Plan) MaxScore() int {
	total := 0
	for _, s := range p.Sections {
		total += len(s.Items) * maxPointsFor(s.Type)
	}
	return total
}

func maxPointsFor(t SectionType) int {
	switch t {
	case SectionMultipleChoice, SectionWordReorder:
		return GradedPoints
	default:
		return PresencePoints
	}
}
