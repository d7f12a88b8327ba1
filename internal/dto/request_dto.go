package dto

// SignupRequest creates a new account; role is always "user" at signup.
type SignupRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LogoutRequest struct {
	Username string `json:"username" binding:"required"`
}

// QuestionCreateDTO is one question inside a quiz creation payload.
type QuestionCreateDTO struct {
	QuestionText  string   `json:"question_text" binding:"required"`
	Options       []string `json:"options" binding:"required,min=1,dive,required"`
	CorrectAnswer string   `json:"correct_answer" binding:"required"`
}

// QuizCreateDTO is the payload for creating a quiz with all its questions.
type QuizCreateDTO struct {
	Title       string              `json:"title" binding:"required"`
	Description string              `json:"description" binding:"required"`
	Category    string              `json:"category" binding:"required"`
	CreatedBy   string              `json:"created_by" binding:"required"`
	Questions   []QuestionCreateDTO `json:"questions" binding:"required,min=1,dive"`
}

// SubmitQuizRequest carries one answer slot per question; a null entry means
// the question was left blank.
type SubmitQuizRequest struct {
	Username    string `json:"username" binding:"required"`
	UserAnswers []*int `json:"user_answers" binding:"required"`
}

// GenerateQuizRequest asks the AI generator for questions over free text.
type GenerateQuizRequest struct {
	Content      string `json:"content" binding:"required"`
	NumQuestions int    `json:"num_questions"`
	QuizType     string `json:"quiz_type"`
	Difficulty   string `json:"difficulty"`
}

type CategoryCreateDTO struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
}

type CategoryUpdateDTO struct {
	Description string `json:"description" binding:"required"`
}
