package service

import (
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"

	"quizhub/internal/apperr"
	"quizhub/internal/dto"
	"quizhub/internal/model"
	"quizhub/internal/repository"
)

// AdminService is the moderation surface: user and quiz removal with their
// cascades, role changes, and full listings. Callers are already gated on the
// admin role before anything here runs.
type AdminService interface {
	ListUsers() ([]dto.AdminUserDTO, error)
	SetRole(username, role string) error
	DeleteUser(username string) error
	ListQuizzes() ([]dto.QuizResponseDTO, error)
	DeleteQuiz(id uint) error
}

type adminService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	quizRepo    repository.QuizRepository
	resultRepo  repository.ResultRepository
}

func NewAdminService(
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	quizRepo repository.QuizRepository,
	resultRepo repository.ResultRepository,
) AdminService {
	return &adminService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		quizRepo:    quizRepo,
		resultRepo:  resultRepo,
	}
}

func (s *adminService) ListUsers() ([]dto.AdminUserDTO, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, apperr.Wrap(apperr.StoreUnavailable, err, "failed to list users")
	}
	dtos := make([]dto.AdminUserDTO, 0, len(users))
	copier.Copy(&dtos, &users)
	return dtos, nil
}

func (s *adminService) SetRole(username, role string) error {
	if !model.ValidRole(role) {
		return apperr.New(apperr.InvalidInput, "Invalid role provided. Must be 'user' or 'admin'.")
	}
	rows, err := s.userRepo.UpdateRole(username, role)
	if err != nil {
		return apperr.Wrap(apperr.StoreUnavailable, err, "store operation failed")
	}
	if rows == 0 {
		return apperr.New(apperr.NotFound, "User not found.")
	}
	return nil
}

// DeleteUser removes the user and then, best-effort, everything that hangs
// off the username: results and sessions. Cascade failures are logged, the
// user stays deleted.
func (s *adminService) DeleteUser(username string) error {
	rows, err := s.userRepo.DeleteByUsername(username)
	if err != nil {
		return apperr.Wrap(apperr.StoreUnavailable, err, "store operation failed")
	}
	if rows == 0 {
		return apperr.New(apperr.NotFound, "User not found.")
	}
	if _, err := s.resultRepo.DeleteByUser(username); err != nil {
		log.Warn().Err(err).Str("username", username).Msg("User deleted but result cleanup failed")
	}
	if _, err := s.sessionRepo.DeleteByUsername(username); err != nil {
		log.Warn().Err(err).Str("username", username).Msg("User deleted but session cleanup failed")
	}
	return nil
}

func (s *adminService) ListQuizzes() ([]dto.QuizResponseDTO, error) {
	quizzes, err := s.quizRepo.FindAll("")
	if err != nil {
		return nil, apperr.Wrap(apperr.StoreUnavailable, err, "failed to list quizzes")
	}
	dtos := make([]dto.QuizResponseDTO, 0, len(quizzes))
	copier.Copy(&dtos, &quizzes)
	return dtos, nil
}

func (s *adminService) DeleteQuiz(id uint) error {
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
