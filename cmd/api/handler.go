package api

import (
	"context"

	authUsecase "notekeeper-backend/internal/auth/usecase"
	noteUsecasePkg "notekeeper-backend/internal/note/usecase"
	"notekeeper-backend/pkg/config"
	"notekeeper-backend/pkg/httpserver"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type Handler struct {
	authUsecase authUsecase.AuthUsecase
	noteUsecase noteUsecasePkg.NoteUsecase
	config      *config.Config
	log         zerolog.Logger
}

func NewHandler(authUc authUsecase.AuthUsecase, noteUc noteUsecasePkg.NoteUsecase, cfg *config.Config, log zerolog.Logger) *Handler {
	return &Handler{
		authUsecase: authUc,
		noteUsecase: noteUc,
		config:      cfg,
		log:         log,
	}
}

// Engine builds the gin engine with middleware and every route.
func (h *Handler) Engine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(RequestLogger(h.log))
	r.Use(Recovery())
	r.Use(SecurityHeaders())
	r.Use(CORS(h.config.CORSOrigin))

	SetupRoutes(r, h.authUsecase, h.noteUsecase, h.config)
	return r
}

// Start serves the API on addr until ctx is cancelled.
func (h *Handler) Start(ctx context.Context, addr string) error {
	return httpserver.Serve(ctx, addr, h.Engine())
}
