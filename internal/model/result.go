package model

import "time"

// DetailedResult is the per-question outcome of one submission.
type DetailedResult struct {
	QuestionIndex int  `json:"question_index"`
	UserAnswer    *int `json:"user_answer"` // nil when the question was left blank
	CorrectAnswer int  `json:"correct_answer"`
	IsCorrect     bool `json:"is_correct"`
}

// Result is written once per submission and never mutated; it is only removed
// when the referenced user or quiz is deleted by an admin.
type Result struct {
	ID              uint             `gorm:"primarykey" json:"id"`
	QuizID          uint             `json:"quiz_id" gorm:"not null;index"`
	UserID          string           `json:"user_id" gorm:"not null;index"` // username of the submitter
	Score           int              `json:"score" gorm:"not null"`
	TotalQuestions  int              `json:"total_questions" gorm:"not null"`
	PercentageScore float64          `json:"percentage_score" gorm:"not null"`
	Details         []DetailedResult `json:"detailed_results" gorm:"serializer:json;not null"`
	SubmittedAt     time.Time        `json:"submission_time" gorm:"not null"`
}

func (Result) TableName() string { return "quiz_results" }
