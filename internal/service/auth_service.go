package service

import (
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"quizhub/internal/apperr"
	"quizhub/internal/auth"
	"quizhub/internal/dto"
	"quizhub/internal/model"
	"quizhub/internal/repository"
)

// AuthService covers account lifecycle, credential checks and the session
// bookkeeping that goes with logging in and out.
type AuthService interface {
	Signup(req dto.SignupRequest) error
	Login(req dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(username string) error
	Profile(username string) (*dto.ProfileResponseDTO, error)
}

type authService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	resultRepo  repository.ResultRepository
	quizRepo    repository.QuizRepository
	tokens      *auth.TokenIssuer
}

func NewAuthService(
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	resultRepo repository.ResultRepository,
	quizRepo repository.QuizRepository,
	tokens *auth.TokenIssuer,
) AuthService {
	return &authService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		resultRepo:  resultRepo,
		quizRepo:    quizRepo,
		tokens:      tokens,
	}
}

func (s *authService) Signup(req dto.SignupRequest) error {
	if _, err := s.userRepo.FindByUsername(req.Username); err == nil {
		return apperr.New(apperr.Conflict, "Username already exists.")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.Wrap(apperr.StoreUnavailable, err, "store operation failed")
	}
	if _, err := s.userRepo.FindByEmail(req.Email); err == nil {
		return apperr.New(apperr.Conflict, "Email already exists.")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.Wrap(apperr.StoreUnavailable, err, "store operation failed")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return apperr.Wrap(apperr.InvalidInput, err, "could not hash password")
	}

	user := model.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hash,
		Role:     model.RoleUser,
	}
	if err := s.userRepo.Create(&user); err != nil {
		log.Error().Err(err).Str("username", req.Username).Msg("Signup: failed to create user")
		return apperr.Wrap(apperr.StoreUnavailable, err, "failed to create user")
	}
	return nil
}

func (s *authService) Login(req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByUsername(req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.Unauthenticated, "Invalid username or password.")
		}
		return nil, apperr.Wrap(apperr.StoreUnavailable, err, "store operation failed")
	}
	if err := auth.CheckPassword(user.Password, req.Password); err != nil {
		return nil, apperr.New(apperr.Unauthenticated, "Invalid username or password.")
	}

	session := model.Session{
		UserID:    user.ID,
		Username:  user.Username,
		LoginTime: time.Now(),
	}
	if err := s.sessionRepo.Create(&session); err != nil {
		log.Error().Err(err).Str("username", user.Username).Msg("Login: failed to record session")
		return nil, apperr.Wrap(apperr.StoreUnavailable, err, "failed to record login session")
	}

	token, err := s.tokens.Mint(user.Username, user.Role)
	if err != nil {
		log.Error().Err(err).Str("username", user.Username).Msg("Login: failed to mint session token")
		return nil, apperr.Wrap(apperr.StoreUnavailable, err, "failed to issue session token")
	}

	return &dto.LoginResponse{
		Message: "Login successful!",
		User: dto.UserSummaryDTO{
			Username: user.Username,
			Email:    user.Email,
			Role:     user.Role,
		},
		Token: token,
	}, nil
}

// Logout closes the most recently opened session that is still open. Older
// open sessions are deliberately left untouched.
func (s *authService) Logout(username string) error {
	rows, err := s.sessionRepo.CloseLatestOpen(username, time.Now())
	if err != nil {
		return apperr.Wrap(apperr.StoreUnavailable, err, "store operation failed")
	}
	if rows == 0 {
		return apperr.New(apperr.NotFound, "No active session found for this user.")
	}
	return nil
}

func (s *authService) Profile(username string) (*dto.ProfileResponseDTO, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return nil, mapStoreErr(err, "User not found.")
	}

	results, err := s.resultRepo.FindAllByUser(username)
	if err != nil {
		return nil, apperr.Wrap(apperr.StoreUnavailable, err, "failed to load quiz history")
	}

	history := make([]dto.HistoryEntryDTO, 0, len(results))
	for i := range results {
		entry := dto.HistoryEntryDTO{ResultResponseDTO: resultToDTO(&results[i])}
		if quiz, qErr := s.quizRepo.FindByID(results[i].QuizID); qErr == nil {
			entry.QuizTitle = quiz.Title
		}
		history = append(history, entry)
	}

	return &dto.ProfileResponseDTO{
		Username:    user.Username,
		Email:       user.Email,
		Role:        user.Role,
		QuizHistory: history,
	}, nil
}
