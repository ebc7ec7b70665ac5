package main

import (
	"fmt"
	"os"
	"time"

	"github.com/educrate/educrate-backend/internal/db"
	"github.com/educrate/educrate-backend/internal/handlers"
	"github.com/educrate/educrate-backend/internal/logger"
	"github.com/educrate/educrate-backend/internal/questionnaire"
	"github.com/educrate/educrate-backend/internal/repos"
	"github.com/educrate/educrate-backend/internal/server"
	"github.com/educrate/educrate-backend/internal/services"
	"github.com/educrate/educrate-backend/internal/sse"
	"github.com/educrate/educrate-backend/internal/utils"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Env
	log.Info("Loading environment variables from main...")
	generatorDelayMS := utils.GetEnvAsInt("GENERATOR_DELAY_MS", 500, log)

	// Database
	dbService, err := db.New(log)
	if err != nil {
		log.Error("Database init failed", "error", err)
		os.Exit(1)
	}
	if err = dbService.AutoMigrateAll(); err != nil {
		log.Error("Auto migration failed", "error", err)
		os.Exit(1)
	}
	theDB := dbService.DB()

	// Repos
	log.Info("Setting up Repos from main...")
	userRepo := repos.NewUserRepo(theDB, log)
	assessmentRepo := repos.NewLearningAssessmentRepo(theDB, log)
	sessionRepo := repos.NewStudySessionRepo(theDB, log)
	kitRepo := repos.NewLearningKitRepo(theDB, log)
	itemRepo := repos.NewContentItemRepo(theDB, log)
	qaRepo := repos.NewQASessionRepo(theDB, log)

	// SSE
	log.Info("Setting up SSE hub now...")
	sseHub := sse.NewHub(log)

	// Questionnaire
	questions, err := questionnaire.Load()
	if err != nil {
		log.Error("Could not load assessment questionnaire", "error", err)
		os.Exit(1)
	}

	// Services
	log.Info("Setting up Services from main...")
	generator := services.NewTemplateGenerator(time.Duration(generatorDelayMS) * time.Millisecond)
	userService := services.NewUserService(theDB, log, userRepo, kitRepo, qaRepo)
	assessmentService := services.NewAssessmentService(theDB, log, userRepo, assessmentRepo)
	sessionService := services.NewStudySessionService(theDB, log, userRepo, sessionRepo)
	kitGenService := services.NewKitGenerationService(theDB, log, sseHub, userRepo, kitRepo, itemRepo, generator)
	kitService := services.NewKitService(theDB, log, kitRepo)
	qaService := services.NewQAService(theDB, log, userRepo, kitRepo, qaRepo, generator)

	// Handlers
	log.Info("Setting up handlers from main...")
	userHandler := handlers.NewUserHandler(log, userService)
	assessmentHandler := handlers.NewAssessmentHandler(log, assessmentService, questions)
	sessionHandler := handlers.NewStudySessionHandler(log, sessionService)
	kitHandler := handlers.NewKitHandler(log, kitService, kitGenService)
	qaHandler := handlers.NewQAHandler(log, qaService)
	sseHandler := handlers.NewSSEHandler(log, sseHub)

	// Router
	log.Info("Setting up router from main...")
	router := server.NewRouter(server.RouterConfig{
		Log:                 log,
		UserHandler:         userHandler,
		AssessmentHandler:   assessmentHandler,
		StudySessionHandler: sessionHandler,
		KitHandler:          kitHandler,
		QAHandler:           qaHandler,
		SSEHandler:          sseHandler,
	})

	port := utils.GetEnv("PORT", "8080", log)
	fmt.Printf("Server listening on :%s\n", port)
	if err := router.Run(":" + port); err != nil {
		log.Warn("Server failed", "error", err)
	}
}
