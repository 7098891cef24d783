package models

import (
	"time"

	"github.com/lib/pq"
)

// ProgressEntry is one day's logged preparation activity.
// Counters default to zero; topic lists default to empty.
type ProgressEntry struct {
	ID                 uint           `gorm:"primaryKey" json:"id"`
	UserID             uint           `gorm:"index" json:"userId"`
	User               User           `gorm:"foreignKey:UserID" json:"-"`
	Date               time.Time      `json:"date"`
	CodingProblems     int            `json:"codingProblems"`
	AptitudeScore      int            `json:"aptitudeScore"`
	InterviewQuestions int            `json:"interviewQuestions"`
	TopicsCovered      pq.StringArray `gorm:"type:text[]" json:"topicsCovered"`
	WeakTopics         pq.StringArray `gorm:"type:text[]" json:"weakTopics"`
	Notes              string         `json:"notes"`
	CreatedAt          time.Time      `json:"createdAt"`
}
