package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"

	"quizhub/config"
	"quizhub/internal/apperr"
	"quizhub/internal/dto"
	"quizhub/internal/model"
)

// GeminiQuizService generates quiz questions from free text through the
// Gemini API. The contract: a JSON array of objects with 'question',
// 'options' (four strings) and 'correct_answer' (letter A-D).
type GeminiQuizService interface {
	Generate(ctx context.Context, req dto.GenerateQuizRequest) ([]dto.GeneratedQuestionDTO, error)
}

type geminiQuizService struct {
	client *genai.GenerativeModel
	cfg    *config.Config
}

func NewGeminiQuizService(cfg *config.Config) (GeminiQuizService, error) {
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. GeminiQuizService will be non-functional.")
		return &geminiQuizService{cfg: cfg, client: nil}, nil
	}
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	return &geminiQuizService{client: client.GenerativeModel("gemini-1.5-flash"), cfg: cfg}, nil
}

func (s *geminiQuizService) Generate(ctx context.Context, req dto.GenerateQuizRequest) ([]dto.GeneratedQuestionDTO, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, apperr.New(apperr.InvalidInput, "Content for quiz generation is required.")
	}
	if s.client == nil {
		return nil, apperr.New(apperr.StoreUnavailable, "AI quiz generation is unavailable (client not configured).")
	}

	numQuestions := req.NumQuestions
	if numQuestions <= 0 {
		numQuestions = 5
	}
	quizType := req.QuizType
	if quizType == "" {
		quizType = "multiple choice"
	}
	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = "medium"
	}

	prompt := buildGenerationPrompt(req.Content, numQuestions, quizType, difficulty)

	resp, err := s.client.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Error().Err(err).Msg("Gemini API error during quiz generation")
		return nil, fmt.Errorf("gemini API error: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("gemini returned no content")
	}

	raw := ""
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			raw += string(txt)
		}
	}

	questions, err := parseGeneratedQuiz(raw)
	if err != nil {
		log.Warn().Err(err).Str("rawResponse", raw).Msg("Failed to parse generated quiz")
		return nil, err
	}
	return questions, nil
}

func buildGenerationPrompt(content string, numQuestions int, quizType, difficulty string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate a %s difficulty %s quiz with %d questions based on the following content.\n", difficulty, quizType, numQuestions)
	b.WriteString("For each question, provide 4 options (A, B, C, D) and indicate the correct answer.\n")
	b.WriteString("Ensure the questions and answers are directly derivable from the provided content.\n")
	b.WriteString("The output should be a JSON array of objects, where each object has 'question', 'options' (an array of strings),\n")
	b.WriteString("and 'correct_answer' (the letter A, B, C, or D).\n\n")
	b.WriteString("Content:\n")
	b.WriteString(content)
	b.WriteString("\n\nExample JSON format:\n")
	b.WriteString(`[
  {
    "question": "What is the capital of France?",
    "options": ["Berlin", "Paris", "Rome", "Madrid"],
    "correct_answer": "B"
  }
]`)
	return b.String()
}

// parseGeneratedQuiz unwraps an optional markdown code fence, decodes the
// JSON array and checks every question maps its answer letter to an option.
func parseGeneratedQuiz(raw string) ([]dto.GeneratedQuestionDTO, error) {
	text := strings.TrimSpace(raw)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(strings.TrimSpace(text), "```")
		text = strings.TrimSpace(text)
	}

	var questions []dto.GeneratedQuestionDTO
	if err := json.Unmarshal([]byte(text), &questions); err != nil {
		return nil, fmt.Errorf("generated quiz is not valid JSON: %w", err)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("generated quiz contains no questions")
	}
	for i, q := range questions {
		if q.Question == "" || len(q.Options) == 0 {
			return nil, fmt.Errorf("generated question %d is missing text or options", i)
		}
		check := model.Question{Options: q.Options, CorrectAnswer: q.CorrectAnswer}
		if _, ok := check.CorrectIndex(); !ok {
			return nil, fmt.Errorf("generated question %d has correct answer %q outside its options", i, q.CorrectAnswer)
		}
	}
	return questions, nil
}
