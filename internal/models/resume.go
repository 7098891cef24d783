package models

import (
	"time"

	"github.com/lib/pq"
)

// ResumeReport is the analysis returned to the client, either from the
// AI collaborator or from the local fallback scorer.
type ResumeReport struct {
	MissingSkills []string `json:"missingSkills"`
	Suggestions   []string `json:"suggestions"`
	Score         int      `json:"score"`
	Strengths     []string `json:"strengths"`
	Improvements  []string `json:"improvements"`
}

// ResumeAnalysis is the persisted record of one analysis run.
type ResumeAnalysis struct {
	ID            uint           `gorm:"primaryKey"`
	UserID        uint           `gorm:"index"`
	User          User           `gorm:"foreignKey:UserID"`
	ResumeText    string         // first 1000 chars only
	MissingSkills pq.StringArray `gorm:"type:text[]"`
	Suggestions   pq.StringArray `gorm:"type:text[]"`
	Score         int
	Strengths     pq.StringArray `gorm:"type:text[]"`
	Improvements  pq.StringArray `gorm:"type:text[]"`
	AnalyzedAt    time.Time
}

// NewResumeAnalysis builds the persisted row from a report.
func NewResumeAnalysis(userID uint, resumeText string, report ResumeReport) ResumeAnalysis {
	if len(resumeText) > 1000 {
		resumeText = resumeText[:1000]
	}
	return ResumeAnalysis{
		UserID:        userID,
		ResumeText:    resumeText,
		MissingSkills: report.MissingSkills,
		Suggestions:   report.Suggestions,
		Score:         report.Score,
		Strengths:     report.Strengths,
		Improvements:  report.Improvements,
		AnalyzedAt:    time.Now(),
	}
}
