package service

import (
	"time"

	"github.com/rs/zerolog/log"

	"quizhub/internal/apperr"
	"quizhub/internal/dto"
	"quizhub/internal/model"
	"quizhub/internal/repository"
)

// SubmissionService is the scoring engine: it turns a quiz plus a set of
// submitted answers into a persisted, immutable result.
type SubmissionService interface {
	Submit(quizID uint, req dto.SubmitQuizRequest) (*dto.SubmitQuizResponse, error)
	GetResult(id uint) (*dto.ResultResponseDTO, error)
}

type submissionService struct {
	quizRepo   repository.QuizRepository
	resultRepo repository.ResultRepository
}

func NewSubmissionService(quizRepo repository.QuizRepository, resultRepo repository.ResultRepository) SubmissionService {
	return &submissionService{quizRepo: quizRepo, resultRepo: resultRepo}
}

// Submit scores answers against the quiz definition. A submission must carry
// exactly one answer slot per question; a nil slot is a blank answer and is
// never correct. Scoring is deterministic and every call writes a new result.
func (s *submissionService) Submit(quizID uint, req dto.SubmitQuizRequest) (*dto.SubmitQuizResponse, error) {
	quiz, err := s.quizRepo.FindByID(quizID)
	if err != nil {
		return nil, mapStoreErr(err, "Quiz not found.")
	}

	if len(req.UserAnswers) != len(quiz.Questions) {
		return nil, apperr.New(apperr.InvalidInput,
			"Expected %d answers, got %d.", len(quiz.Questions), len(req.UserAnswers))
	}

	score := 0
	details := make([]model.DetailedResult, 0, len(quiz.Questions))
	for i, question := range quiz.Questions {
		correctIdx, ok := question.CorrectIndex()
		if !ok {
			// Creation validates this; a bad letter here means the stored quiz
			// was corrupted out of band.
			return nil, apperr.New(apperr.InvalidInput, "Quiz question %d has an invalid correct answer.", i)
		}
		userAnswer := req.UserAnswers[i]
		isCorrect := userAnswer != nil && *userAnswer == correctIdx
		if isCorrect {
			score++
		}
		details = append(details, model.DetailedResult{
			QuestionIndex: i,
			UserAnswer:    userAnswer,
			CorrectAnswer: correctIdx,
			IsCorrect:     isCorrect,
		})
	}

	total := len(quiz.Questions)
	percentage := 0.0
	if total > 0 {
		percentage = float64(score) / float64(total) * 100
	}

	result := model.Result{
		QuizID:          quizID,
		UserID:          req.Username,
		Score:           score,
		TotalQuestions:  total,
		PercentageScore: percentage,
		Details:         details,
		SubmittedAt:     time.Now(),
	}
	if err := s.resultRepo.Create(&result); err != nil {
		log.Error().Err(err).Uint("quizID", quizID).Str("username", req.Username).Msg("Failed to persist submission result")
		return nil, apperr.Wrap(apperr.StoreUnavailable, err, "failed to save submission result")
	}

	return &dto.SubmitQuizResponse{
		Message:         "Quiz submitted successfully!",
		Score:           score,
		TotalQuestions:  total,
		PercentageScore: percentage,
		ResultID:        result.ID,
	}, nil
}

func (s *submissionService) GetResult(id uint) (*dto.ResultResponseDTO, error) {
	result, err := s.resultRepo.FindByID(id)
	if err != nil {
		return nil, mapStoreErr(err, "Result not found.")
	}
	resp := resultToDTO(result)
	return &resp, nil
}
