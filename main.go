package main

import (
	"log"
	"net/http"
	"os"

	"stayconnected-api/config"
	"stayconnected-api/handlers"
	"stayconnected-api/helper"
	"stayconnected-api/middleware"
	"stayconnected-api/repositories"
	"stayconnected-api/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize database
	db := config.InitDB()

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	questionRepo := repositories.NewQuestionRepository(db)
	answerRepo := repositories.NewAnswerRepository(db)
	tagRepo := repositories.NewTagRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	profileService := services.NewProfileService(userRepo)
	questionService := services.NewQuestionService(questionRepo, tagRepo)
	answerService := services.NewAnswerService(answerRepo, questionRepo)
	reputationService := services.NewReputationService(answerRepo, userRepo)
	tagService := services.NewTagService(tagRepo)

	// Initialize handlers
	httpHelper := helper.NewHTTPHelper()
	authHandler := handlers.NewAuthHandler(authService, httpHelper)
	profileHandler := handlers.NewProfileHandler(profileService, httpHelper)
	questionHandler := handlers.NewQuestionHandler(questionService, httpHelper)
	answerHandler := handlers.NewAnswerHandler(answerService, reputationService, httpHelper)
	tagHandler := handlers.NewTagHandler(tagService, httpHelper)
	userHandler := handlers.NewUserHandler(reputationService, httpHelper)

	// Setup router
	router := gin.Default()

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// Auth routes (public)
	router.POST("/register", authHandler.Register)
	router.POST("/login", authHandler.Login)
	router.POST("/token/refresh", authHandler.Refresh)

	// Open read-only routes
	router.GET("/questions/search", questionHandler.Search)
	router.GET("/users/:id/reputation", userHandler.GetReputation)
	router.GET("/users/reputation", userHandler.GetLeaderboard)

	// Protected routes
	protected := router.Group("/")
	protected.Use(middleware.AuthMiddleware())
	{
		// Profile
		protected.GET("/profile", profileHandler.GetProfile)
		protected.POST("/profile", profileHandler.UploadPhoto)
		protected.DELETE("/profile", profileHandler.RemovePhoto)
		protected.PATCH("/settings", profileHandler.UpdateSettings)

		// Questions
		questions := protected.Group("/questions")
		{
			questions.POST("", questionHandler.CreateQuestion)
			questions.GET("", questionHandler.GetQuestions)
			questions.POST("/:id/answers", answerHandler.CreateAnswer)
			questions.GET("/:id/list-answers", answerHandler.ListAnswers)
		}

		protected.GET("/personal/questions", questionHandler.GetMyQuestions)

		// Answers
		answers := protected.Group("/answers")
		{
			answers.POST("/:id/mark-correct", answerHandler.MarkCorrect)
			answers.POST("/:id/:action", answerHandler.React)
		}

		// Tags
		tags := protected.Group("/tags")
		{
			tags.POST("", tagHandler.CreateTag)
			tags.GET("", tagHandler.GetTags)
			tags.GET("/:id", tagHandler.GetTag)
		}
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
