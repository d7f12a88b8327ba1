package user

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"quizhub/internal/controller"
	"quizhub/internal/dto"
	"quizhub/internal/service"
)

type QuizController struct {
	quizService       service.QuizService
	categoryService   service.CategoryService
	submissionService service.SubmissionService
	leaderboard       service.LeaderboardService
	geminiService     service.GeminiQuizService
}

func NewQuizController(
	quizService service.QuizService,
	categoryService service.CategoryService,
	submissionService service.SubmissionService,
	leaderboard service.LeaderboardService,
	geminiService service.GeminiQuizService,
) *QuizController {
	return &QuizController{
		quizService:       quizService,
		categoryService:   categoryService,
		submissionService: submissionService,
		leaderboard:       leaderboard,
		geminiService:     geminiService,
	}
}

// ListCategories godoc
// @Summary List all quiz categories
// @Tags Quizzes
// @Produce json
// @Success 200 {array} dto.CategoryDTO
// @Router /categories [get]
func (c *QuizController) ListCategories(ctx *gin.Context) {
	categories, err := c.categoryService.List()
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, categories)
}

// CreateQuiz godoc
// @Summary Create a quiz with its questions
// @Description Every question needs text, options and a correct-answer letter mapping into the options.
// @Tags Quizzes
// @Accept json
// @Produce json
// @Param quiz_data body dto.QuizCreateDTO true "Quiz definition"
// @Success 201 {object} dto.QuizCreateResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid quiz or question data"
// @Router /quizzes [post]
func (c *QuizController) CreateQuiz(ctx *gin.Context) {
	var req dto.QuizCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	id, err := c.quizService.Create(req)
	if err != nil {
		log.Warn().Err(err).Str("title", req.Title).Msg("CreateQuiz failed")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.QuizCreateResponse{Message: "Quiz created successfully!", QuizID: id})
}

// ListQuizzes godoc
// @Summary List quizzes, optionally filtered by category
// @Tags Quizzes
// @Produce json
// @Param category query string false "Exact category name"
// @Success 200 {array} dto.QuizResponseDTO
// @Router /quizzes [get]
func (c *QuizController) ListQuizzes(ctx *gin.Context) {
	quizzes, err := c.quizService.List(ctx.Query("category"))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, quizzes)
}

// GetQuiz godoc
// @Summary Fetch one quiz with its questions
// @Tags Quizzes
// @Produce json
// @Param quiz_id path int true "Quiz ID"
// @Success 200 {object} dto.QuizResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Router /quizzes/{quiz_id} [get]
func (c *QuizController) GetQuiz(ctx *gin.Context) {
	quizID, err := strconv.ParseUint(ctx.Param("quiz_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid quiz ID format"})
		return
	}
	quiz, err := c.quizService.Get(uint(quizID))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, quiz)
}

// SubmitQuiz godoc
// @Summary Submit answers for a quiz
// @Description Scores the submission and persists an immutable result. One answer slot per question; null means blank.
// @Tags Quizzes
// @Accept json
// @Produce json
// @Param quiz_id path int true "Quiz ID"
// @Param submission body dto.SubmitQuizRequest true "Username and answer indices"
// @Success 200 {object} dto.SubmitQuizResponse
// @Failure 400 {object} dto.ErrorResponse "Answer count mismatch or malformed payload"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Router /quizzes/{quiz_id}/submissions [post]
func (c *QuizController) SubmitQuiz(ctx *gin.Context) {
	quizID, err := strconv.ParseUint(ctx.Param("quiz_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid quiz ID format"})
		return
	}
	var req dto.SubmitQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	resp, err := c.submissionService.Submit(uint(quizID), req)
	if err != nil {
		log.Warn().Err(err).Uint64("quizID", quizID).Str("username", req.Username).Msg("SubmitQuiz failed")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetResult godoc
// @Summary Fetch one submission result
// @Tags Quizzes
// @Produce json
// @Param result_id path int true "Result ID"
// @Success 200 {object} dto.ResultResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Result not found"
// @Router /results/{result_id} [get]
func (c *QuizController) GetResult(ctx *gin.Context) {
	resultID, err := strconv.ParseUint(ctx.Param("result_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid result ID format"})
		return
	}
	result, err := c.submissionService.GetResult(uint(resultID))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// Leaderboard godoc
// @Summary Top users by best percentage score
// @Tags Quizzes
// @Produce json
// @Success 200 {array} dto.LeaderboardEntryDTO
// @Router /leaderboard [get]
func (c *QuizController) Leaderboard(ctx *gin.Context) {
	entries, err := c.leaderboard.Top(service.DefaultLeaderboardSize)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, entries)
}

// GenerateQuiz godoc
// @Summary Generate quiz questions from text with AI
// @Tags Quizzes
// @Accept json
// @Produce json
// @Param generation_request body dto.GenerateQuizRequest true "Source content and generation options"
// @Success 200 {object} dto.GenerateQuizResponse
// @Failure 400 {object} dto.ErrorResponse "Missing content"
// @Failure 503 {object} dto.ErrorResponse "Generator unavailable"
// @Router /generate-quiz [post]
func (c *QuizController) GenerateQuiz(ctx *gin.Context) {
	var req dto.GenerateQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	questions, err := c.geminiService.Generate(ctx.Request.Context(), req)
	if err != nil {
		log.Error().Err(err).Msg("GenerateQuiz failed")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.GenerateQuizResponse{Message: "Quiz generated successfully!", QuizData: questions})
}
