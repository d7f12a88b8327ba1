package dto

import "time"

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// UserSummaryDTO is the credential-free view of a user.
type UserSummaryDTO struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type LoginResponse struct {
	Message string         `json:"message"`
	User    UserSummaryDTO `json:"user"`
	Token   string         `json:"token"`
}

type CategoryDTO struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type QuestionDTO struct {
	QuestionText  string   `json:"question_text"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
}

type QuizResponseDTO struct {
	ID          uint          `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Category    string        `json:"category"`
	CreatedBy   string        `json:"created_by"`
	Questions   []QuestionDTO `json:"questions"`
	CreatedAt   time.Time     `json:"created_at"`
}

type QuizCreateResponse struct {
	Message string `json:"message"`
	QuizID  uint   `json:"quiz_id"`
}

type SubmitQuizResponse struct {
	Message         string  `json:"message"`
	Score           int     `json:"score"`
	TotalQuestions  int     `json:"total_questions"`
	PercentageScore float64 `json:"percentage_score"`
	ResultID        uint    `json:"result_id"`
}

type DetailedResultDTO struct {
	QuestionIndex int  `json:"question_index"`
	UserAnswer    *int `json:"user_answer"`
	CorrectAnswer int  `json:"correct_answer"`
	IsCorrect     bool `json:"is_correct"`
}

// ResultResponseDTO serializes the submission timestamp to RFC 3339 text.
type ResultResponseDTO struct {
	ID              uint                `json:"id"`
	QuizID          uint                `json:"quiz_id"`
	UserID          string              `json:"user_id"`
	Score           int                 `json:"score"`
	TotalQuestions  int                 `json:"total_questions"`
	PercentageScore float64             `json:"percentage_score"`
	DetailedResults []DetailedResultDTO `json:"detailed_results"`
	SubmissionTime  string              `json:"submission_time"`
}

// HistoryEntryDTO is a result enriched with the quiz title when the quiz
// still exists.
type HistoryEntryDTO struct {
	ResultResponseDTO
	QuizTitle string `json:"quiz_title,omitempty"`
}

type ProfileResponseDTO struct {
	Username    string            `json:"username"`
	Email       string            `json:"email"`
	Role        string            `json:"role"`
	QuizHistory []HistoryEntryDTO `json:"quiz_history"`
}

type LeaderboardEntryDTO struct {
	Username     string  `json:"username"`
	HighestScore float64 `json:"highest_score"`
}

// GeneratedQuestionDTO mirrors the JSON contract of the AI generator.
type GeneratedQuestionDTO struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
}

type GenerateQuizResponse struct {
	Message  string                 `json:"message"`
	QuizData []GeneratedQuestionDTO `json:"quiz_data"`
}
