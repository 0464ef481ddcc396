package main

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/JGSSSILVA/Personal-Kanban/internal/board"
	"github.com/JGSSSILVA/Personal-Kanban/internal/config"
	"github.com/JGSSSILVA/Personal-Kanban/internal/database"
	"github.com/JGSSSILVA/Personal-Kanban/internal/handlers"
	"github.com/JGSSSILVA/Personal-Kanban/internal/middleware"
	"github.com/JGSSSILVA/Personal-Kanban/internal/repository"
	"github.com/JGSSSILVA/Personal-Kanban/internal/services"
	"github.com/JGSSSILVA/Personal-Kanban/internal/weather"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logrus.SetFormatter(&logrus.JSONFormatter{})

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to the configured persistence backend
	db, err := database.Connect(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to database")
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		logrus.WithError(err).Fatal("failed to run migrations")
	}

	// Wire collaborators
	taskRepo := repository.NewTaskRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	weatherClient := weather.NewClient(cfg.GeocodingBaseURL, cfg.ForecastBaseURL)
	profileService := services.NewProfileService(profileRepo)
	boards := board.NewManager(func() *board.Board {
		return board.New(taskRepo, weatherClient)
	})

	// Initialize handlers
	boardHandler := handlers.NewBoardHandler(boards, profileService)
	profileHandler := handlers.NewProfileHandler(profileService, boards)
	cityHandler := handlers.NewCityHandler(weatherClient)

	// Initialize Gin router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())

	// CORS for the browser frontend
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = strings.Split(cfg.AllowedOrigins, ",")
	corsConfig.AllowCredentials = true
	r.Use(cors.New(corsConfig))

	// Cookie session carrying the per-client board id
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	isProduction := cfg.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions("kanban_session", store))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Personal Kanban API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	api.Use(middleware.BoardSession())
	{
		profiles := api.Group("/profiles")
		{
			profiles.GET("", profileHandler.ListProfiles)
			profiles.POST("", profileHandler.CreateProfile)
			profiles.PATCH("/:id", profileHandler.UpdateProfile)
			profiles.DELETE("/:id", profileHandler.DeleteProfile)
		}

		boardRoutes := api.Group("/board")
		{
			boardRoutes.GET("", boardHandler.GetBoard)
			boardRoutes.POST("/selection/toggle", boardHandler.ToggleProfile)
			boardRoutes.POST("/move", boardHandler.MoveTask)
		}

		tasks := api.Group("/tasks")
		{
			tasks.POST("", boardHandler.CreateTask)
			tasks.PATCH("/:id", boardHandler.UpdateTask)
			tasks.DELETE("/:id", boardHandler.DeleteTask)
		}

		api.GET("/cities", cityHandler.SearchCities)
	}

	// Start server
	logrus.WithField("port", cfg.Port).Info("server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		logrus.WithError(err).Fatal("failed to start server")
	}
}
