package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"quizhub/config"
	"quizhub/database"
	"quizhub/internal/auth"
	"quizhub/internal/controller"
	adminctrl "quizhub/internal/controller/admin"
	userctrl "quizhub/internal/controller/user"
	"quizhub/internal/logger"
	"quizhub/internal/model"
	"quizhub/internal/repository"
	"quizhub/internal/service"
)

// @title QuizHub API
// @version 1.0
// @description Quiz platform backend: accounts, quiz authoring, submissions with scoring, leaderboards and admin moderation.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
			auth.NewTokenIssuer,
		),

		fx.Provide(
			repository.NewUserRepository,
			repository.NewSessionRepository,
			repository.NewCategoryRepository,
			repository.NewQuizRepository,
			repository.NewResultRepository,
		),

		fx.Provide(
			service.NewAuthService,
			service.NewCategoryService,
			service.NewQuizService,
			service.NewSubmissionService,
			service.NewLeaderboardService,
			service.NewAdminService,
			service.NewGeminiQuizService,
		),

		fx.Provide(
			controller.NewHealthController,
			userctrl.NewAuthController,
			userctrl.NewQuizController,
			adminctrl.NewAdminController,
		),

		fx.Invoke(AutoMigrateDB),
		fx.Invoke(SeedCategories),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures all API routes and ties the HTTP
// server to the fx lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	tokens *auth.TokenIssuer,
	userRepo repository.UserRepository,
	healthCtrl *controller.HealthController,
	authCtrl *userctrl.AuthController,
	quizCtrl *userctrl.QuizController,
	adminCtrl *adminctrl.AdminController,
) {
	router.GET("/status", healthCtrl.Status)
	router.GET("/db_status", healthCtrl.DBStatus)

	api := router.Group("/api/v1")
	{
		api.POST("/signup", authCtrl.Signup)
		api.POST("/login", authCtrl.Login)
		api.POST("/logout", authCtrl.Logout)
		api.GET("/profile/:username", authCtrl.Profile)

		api.GET("/categories", quizCtrl.ListCategories)
		api.POST("/quizzes", quizCtrl.CreateQuiz)
		api.GET("/quizzes", quizCtrl.ListQuizzes)
		api.GET("/quizzes/:quiz_id", quizCtrl.GetQuiz)
		api.POST("/quizzes/:quiz_id/submissions", quizCtrl.SubmitQuiz)
		api.GET("/results/:result_id", quizCtrl.GetResult)
		api.GET("/leaderboard", quizCtrl.Leaderboard)
		api.POST("/generate-quiz", quizCtrl.GenerateQuiz)
	}

	adminAPI := router.Group("/api/v1/admin")
	adminAPI.Use(auth.RequireAdmin(tokens, userRepo))
	{
		adminAPI.GET("/users", adminCtrl.ListUsers)
		adminAPI.PUT("/users/:username/role", adminCtrl.SetRole)
		adminAPI.DELETE("/users/:username", adminCtrl.DeleteUser)
		adminAPI.GET("/quizzes", adminCtrl.ListQuizzes)
		adminAPI.DELETE("/quizzes/:quiz_id", adminCtrl.DeleteQuiz)
		adminAPI.POST("/categories", adminCtrl.AddCategory)
		adminAPI.PUT("/categories/:name", adminCtrl.UpdateCategory)
		adminAPI.DELETE("/categories/:name", adminCtrl.DeleteCategory)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("QuizHub API server starting on port %s", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.User{},
		&model.Session{},
		&model.Category{},
		&model.Quiz{},
		&model.Result{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}

func SeedCategories(categoryService service.CategoryService) error {
	return categoryService.Seed()
}
