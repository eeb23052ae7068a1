package api

import (
	"net/http"

	"notekeeper-backend/internal/auth/delivery"
	authUsecase "notekeeper-backend/internal/auth/usecase"
	noteDelivery "notekeeper-backend/internal/note/delivery"
	noteUsecase "notekeeper-backend/internal/note/usecase"
	"notekeeper-backend/pkg/config"
	"notekeeper-backend/pkg/ratelimit"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUsecase authUsecase.AuthUsecase, noteUsecase noteUsecase.NoteUsecase, cfg *config.Config) {
	authHandler := delivery.NewAuthHandler(authUsecase)
	noteHandler := noteDelivery.NewNoteHandler(noteUsecase)

	limiter := RateLimit(ratelimit.New(cfg.RateLimitMax, cfg.RateLimitWindow))
	// authLimited is applied to signup and login only unless the scope is global
	authLimited := []gin.HandlerFunc{}
	if cfg.RateLimitScope == config.RateLimitScopeGlobal {
		r.Use(limiter)
	} else {
		authLimited = append(authLimited, limiter)
	}

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"data": "Hello from homepage!"})
	})

	// Health check (no auth required)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Auth routes
	r.POST("/createAccount", append(authLimited, authHandler.CreateAccount)...)
	r.POST("/login", append(authLimited, authHandler.Login)...)
	r.POST("/logout", authHandler.Logout)

	// Protected routes
	protected := r.Group("/")
	protected.Use(delivery.AuthMiddleware(authUsecase))
	{
		protected.GET("/getUsers", authHandler.GetUsers)

		protected.POST("/add-note", noteHandler.AddNote)
		protected.GET("/allNotes", noteHandler.GetNotes)
		protected.GET("/allNotesByUserID", noteHandler.GetAllNotes)
		protected.DELETE("/delete/:noteId", noteHandler.DeleteNote)
		protected.GET("/searchNotes", noteHandler.SearchNotes)
	}
}
