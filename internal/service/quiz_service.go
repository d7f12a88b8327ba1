package service

import (
	"time"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"

	"quizhub/internal/apperr"
	"quizhub/internal/dto"
	"quizhub/internal/model"
	"quizhub/internal/repository"
)

type QuizService interface {
	Create(req dto.QuizCreateDTO) (uint, error)
	List(category string) ([]dto.QuizResponseDTO, error)
	Get(id uint) (*dto.QuizResponseDTO, error)
	Delete(id uint) error
}

type quizService struct {
	quizRepo   repository.QuizRepository
	resultRepo repository.ResultRepository
}

func NewQuizService(quizRepo repository.QuizRepository, resultRepo repository.ResultRepository) QuizService {
	return &quizService{quizRepo: quizRepo, resultRepo: resultRepo}
}

// Create validates every question before anything is stored: non-empty text,
// at least one option, and a correct-answer letter that lands inside the
// options. The letter is accepted case-insensitively.
func (s *quizService) Create(req dto.QuizCreateDTO) (uint, error) {
	questions := make([]model.Question, 0, len(req.Questions))
	for _, q := range req.Questions {
		if q.QuestionText == "" || len(q.Options) == 0 || q.CorrectAnswer == "" {
			return 0, apperr.New(apperr.InvalidInput, "Each question must have text, options, and a correct answer.")
		}
		question := model.Question{
			QuestionText:  q.QuestionText,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
		}
		if _, ok := question.CorrectIndex(); !ok {
			return 0, apperr.New(apperr.InvalidInput, "Correct answer letter does not correspond to a valid option.")
		}
		questions = append(questions, question)
	}

	quiz := model.Quiz{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		CreatedBy:   req.CreatedBy,
		Questions:   questions,
		CreatedAt:   time.Now(),
	}
	if err := s.quizRepo.Create(&quiz); err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("Failed to create quiz")
		return 0, apperr.Wrap(apperr.StoreUnavailable, err, "failed to create quiz")
	}
	return quiz.ID, nil
}

func (s *quizService) List(category string) ([]dto.QuizResponseDTO, error) {
	quizzes, err := s.quizRepo.FindAll(category)
	if err != nil {
		return nil, apperr.Wrap(apperr.StoreUnavailable, err, "failed to list quizzes")
	}
	dtos := make([]dto.QuizResponseDTO, 0, len(quizzes))
	copier.Copy(&dtos, &quizzes)
	return dtos, nil
}

func (s *quizService) Get(id uint) (*dto.QuizResponseDTO, error) {
	quiz, err := s.quizRepo.FindByID(id)
	if err != nil {
		return nil, mapStoreErr(err, "Quiz not found.")
	}
	var resp dto.QuizResponseDTO
	if err := copier.Copy(&resp, quiz); err != nil {
		return nil, apperr.Wrap(apperr.InvalidInput, err, "error preparing quiz response")
	}
	return &resp, nil
}

// Delete removes the quiz and then clears results referencing it. The cascade
// is best-effort: a failed result cleanup is logged, the quiz stays deleted.
func (s *quizService) Delete(id uint) error {
	rows, err := s.quizRepo.Delete(id)
	if err != nil {
		return apperr.Wrap(apperr.StoreUnavailable, err, "store operation failed")
	}
	if rows == 0 {
		return apperr.New(apperr.NotFound, "Quiz not found.")
	}
	if _, err := s.resultRepo.DeleteByQuizID(id); err != nil {
		log.Warn().Err(err).Uint("quizID", id).Msg("Quiz deleted but result cleanup failed")
	}
	return nil
}
