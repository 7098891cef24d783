package main

import (
	"context"

	"hirehub/internal/assessment"
	"hirehub/internal/config"
	"hirehub/internal/database"
	logger "hirehub/internal/logging"
	"hirehub/internal/models"
	"hirehub/internal/router"
	"hirehub/internal/sandbox"
	"hirehub/internal/services"

	"go.uber.org/zap"
)

func main() {
	// Initialize Logger
	log, err := logger.Init(".")
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer log.Sync()

	// Initialize Configuration
	if err := config.Init(".", log); err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	// Initialize Database
	database.Init(log)

	// Load static question content at startup
	bank, err := models.LoadQuestionBank("config/questions.yaml")
	if err != nil {
		log.Fatal("Failed to load question bank", zap.Error(err))
	}
	plan, err := assessment.LoadPlan("config/assessment.yaml")
	if err != nil {
		log.Fatal("Failed to load assessment plan", zap.Error(err))
	}

	// A missing Docker daemon disables the code runner but nothing else.
	sandboxRunner, err := sandbox.NewRunner(log)
	if err != nil {
		log.Warn("Code sandbox disabled", zap.Error(err))
		sandboxRunner = nil
	} else {
		defer sandboxRunner.Close()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reminder := services.NewReminder(log)
	reminder.Start(ctx)

	deps := router.Deps{
		Runner:      assessment.NewRunner(log, plan),
		Transcriber: services.NoopTranscriber{},
		Speaker:     services.NewLogSpeaker(log),
		Resume:      services.NewResumeService(log),
		Bank:        bank,
		Sandbox:     sandboxRunner,
	}

	// Setup router, passing the logger to it
	r := router.Setup(log, deps)

	// Start the Gin server
	port := ":" + config.Conf.Server.Port
	log.Info("Server listening on http://localhost" + port)
	if err := r.Run(port); err != nil {
		log.Fatal("Failed to run Gin server", zap.Error(err))
	}
}
