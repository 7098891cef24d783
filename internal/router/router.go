package router

import (
	"time"

	"hirehub/internal/assessment"
	"hirehub/internal/config"
	"hirehub/internal/handlers"
	"hirehub/internal/models"
	"hirehub/internal/sandbox"
	"hirehub/internal/services"

	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/unrolled/secure"
	"go.uber.org/zap"
)

func keyFunc(c *gin.Context) string {
	return c.ClientIP()
}
func errorHandler(c *gin.Context, info ratelimit.Info) {
	c.String(429, "Too many requests. Try again later.")
}

// Deps bundles everything the routes need. The sandbox runner may be nil
// when Docker is unreachable; code endpoints then answer 503.
type Deps struct {
	Runner      *assessment.Runner
	Transcriber assessment.Transcriber
	Speaker     assessment.Speaker
	Resume      *services.ResumeService
	Bank        *models.QuestionBank
	Sandbox     *sandbox.Runner
}

func Setup(log *zap.Logger, deps Deps) *gin.Engine {
	// Set up a new Gin router, add recovery middleware and request logging.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger(log))

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.Conf.Server.FrontendOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	secureMiddleware := secure.New(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
	})
	router.Use(func(c *gin.Context) {
		err := secureMiddleware.Process(c.Writer, c.Request)
		if err != nil {
			c.Abort()
			return
		}
	})

	// Handlers and routes
	authHandler := handlers.NewAuthHandler(log)
	progressHandler := handlers.NewProgressHandler(log)
	analyticsHandler := handlers.NewAnalyticsHandler(log)
	resumeHandler := handlers.NewResumeHandler(log, deps.Resume)
	questionsHandler := handlers.NewQuestionsHandler(log, deps.Bank)
	mistakesHandler := handlers.NewMistakesHandler(log)
	userHandler := handlers.NewUserHandler(log)
	assessmentHandler := handlers.NewAssessmentHandler(log, deps.Runner, deps.Transcriber, deps.Speaker)
	codeHandler := handlers.NewCodeHandler(log, deps.Sandbox)

	rateLimitStore := ratelimit.InMemoryStore(&ratelimit.InMemoryOptions{
		Rate:  time.Minute,
		Limit: 5,
	})
	limiter := ratelimit.RateLimiter(rateLimitStore, &ratelimit.Options{
		ErrorHandler: errorHandler,
		KeyFunc:      keyFunc,
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api")

	authRoutes := api.Group("/auth")
	{
		authRoutes.POST("/signup", limiter, authHandler.Signup)
		authRoutes.POST("/login", limiter, authHandler.Login)
	}

	authorized := api.Group("/")
	authorized.Use(AuthRequired(log))
	{
		authorized.POST("/user/update-password", userHandler.UpdatePassword)
		authorized.DELETE("/user", userHandler.DeleteAccount)

		authorized.POST("/progress", progressHandler.Save)
		authorized.GET("/progress", progressHandler.List)
		authorized.GET("/analytics", analyticsHandler.Get)

		authorized.POST("/resume/analyze", resumeHandler.Analyze)
		authorized.GET("/resume/latest", resumeHandler.Latest)

		authorized.GET("/questions/:topic", questionsHandler.ByTopic)
		aptitudeRoutes := authorized.Group("/aptitude")
		{
			aptitudeRoutes.GET("/set", questionsHandler.AptitudeSet)
			aptitudeRoutes.POST("/submit", questionsHandler.SubmitAptitude)
		}

		mistakeRoutes := authorized.Group("/mistakes")
		{
			mistakeRoutes.POST("", mistakesHandler.Save)
			mistakeRoutes.GET("", mistakesHandler.List)
			mistakeRoutes.POST("/:id/reviewed", mistakesHandler.MarkReviewed)
			mistakeRoutes.DELETE("/:id", mistakesHandler.Delete)
			mistakeRoutes.DELETE("", mistakesHandler.Clear)
		}

		assessmentRoutes := authorized.Group("/assessment")
		{
			assessmentRoutes.POST("/start", assessmentHandler.Start)
			assessmentRoutes.GET("/state", assessmentHandler.State)
			assessmentRoutes.GET("/section", assessmentHandler.Section)
			assessmentRoutes.POST("/respond", assessmentHandler.Respond)
			assessmentRoutes.POST("/speak", assessmentHandler.Speak)
			assessmentRoutes.POST("/advance", assessmentHandler.Advance)
			assessmentRoutes.POST("/finish", assessmentHandler.Finish)
			assessmentRoutes.GET("/result", assessmentHandler.Result)
			assessmentRoutes.DELETE("", assessmentHandler.Abandon)
		}

		codeRoutes := authorized.Group("/code")
		{
			codeRoutes.POST("/run", codeHandler.Run)
			codeRoutes.GET("/languages", codeHandler.Languages)
		}
	}

	return router
}
