package model

import (
	"strings"
	"time"
)

// Question lives inside its quiz document; the whole slice is stored as one
// JSON column so a quiz is read and written as a single record.
type Question struct {
	QuestionText  string   `json:"question_text"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"` // letter A-D indexing into Options
}

// CorrectIndex converts the answer letter to its zero-based option index.
// The letter is matched case-insensitively; a second return of false means the
// letter does not map inside Options.
func (q Question) CorrectIndex() (int, bool) {
	letter := strings.ToUpper(strings.TrimSpace(q.CorrectAnswer))
	if len(letter) != 1 || letter[0] < 'A' || letter[0] > 'Z' {
		return 0, false
	}
	idx := int(letter[0] - 'A')
	if idx < 0 || idx >= len(q.Options) {
		return 0, false
	}
	return idx, true
}

type Quiz struct {
	ID          uint       `gorm:"primarykey" json:"id"`
	Title       string     `json:"title" gorm:"not null"`
	Description string     `json:"description" gorm:"type:text"`
	Category    string     `json:"category" gorm:"not null;index"` // name reference, not a FK
	CreatedBy   string     `json:"created_by" gorm:"not null"`
	Questions   []Question `json:"questions" gorm:"serializer:json;not null"`
	CreatedAt   time.Time  `json:"created_at"`
}

func (Quiz) TableName() string { return "quizzes" }
