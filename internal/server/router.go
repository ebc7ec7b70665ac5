package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/educrate/educrate-backend/internal/handlers"
	"github.com/educrate/educrate-backend/internal/logger"
	"github.com/educrate/educrate-backend/internal/middleware"
)

type RouterConfig struct {
	Log                 *logger.Logger
	UserHandler         *handlers.UserHandler
	AssessmentHandler   *handlers.AssessmentHandler
	StudySessionHandler *handlers.StudySessionHandler
	KitHandler          *handlers.KitHandler
	QAHandler           *handlers.QAHandler
	SSEHandler          *handlers.SSEHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(cfg.Log))

	// Cors
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:80",
			"http://localhost:3000",
			"http://localhost:5174",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", handlers.HealthCheck)

	// SSE
	router.GET("/sse/stream", cfg.SSEHandler.Stream)

	api := router.Group("/api")
	{
		// Users
		api.POST("/users", cfg.UserHandler.CreateUser)
		api.GET("/users/:id", cfg.UserHandler.GetUser)
		api.GET("/users/:id/analytics", cfg.UserHandler.GetAnalytics)

		// Assessment
		api.POST("/users/:id/assessment", cfg.AssessmentHandler.SubmitAssessment)
		api.GET("/learning-assessment-questions", cfg.AssessmentHandler.GetQuestions)

		// Study sessions
		api.POST("/users/:id/study-session", cfg.StudySessionHandler.StartSession)

		// Learning kits
		api.POST("/learning-kits", cfg.KitHandler.CreateKit)
		api.GET("/users/:id/learning-kits", cfg.KitHandler.ListKits)
		api.GET("/learning-kits/:id", cfg.KitHandler.GetKit)

		// Q&A
		api.POST("/qa-sessions", cfg.QAHandler.AskQuestion)
	}

	return router
}
