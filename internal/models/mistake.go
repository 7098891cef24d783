package models

import "time"

// Mistake types.
const (
	MistakeAptitude = "aptitude"
	MistakeCoding   = "coding"
	MistakeSpoken   = "spoken"
)

// Mistake is one failed or incorrect item forwarded to the append-only
// mistake log. Fire-and-forget from the caller's point of view.
type Mistake struct {
	ID        string    `gorm:"primaryKey" json:"id"` // uuid
	UserID    uint      `gorm:"index" json:"userId"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
	Type      string    `gorm:"index" json:"type"`
	Topic     string    `json:"topic"`
	Question  string    `json:"question"`
	Response  string    `json:"response"` // answer text or code
	Solution  string    `json:"solution,omitempty"`
	Reviewed  bool      `json:"reviewed"`
	CreatedAt time.Time `json:"createdAt"`
}
