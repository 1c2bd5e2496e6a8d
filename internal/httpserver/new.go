package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"focusflow/internal/session/repository"
	sessionUC "focusflow/internal/session/usecase"
	"focusflow/pkg/log"
	"focusflow/pkg/openai"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	corsOrigin  string

	// Session domain
	sessionRepo repository.Repository
	calendar    sessionUC.CalendarClient
	calendarID  string

	// Breakdown domain
	llm                openai.IOpenAI
	openAIModel        string
	breakdownRateLimit int
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	CORSOrigin  string

	// Session domain
	SessionRepo repository.Repository
	Calendar    sessionUC.CalendarClient // nil when no credentials exist
	CalendarID  string

	// Breakdown domain
	LLM                openai.IOpenAI // nil when no API key exists
	OpenAIModel        string
	BreakdownRateLimit int
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                  logger,
		gin:                gin.New(),
		port:               cfg.Port,
		mode:               cfg.Mode,
		environment:        cfg.Environment,
		corsOrigin:         cfg.CORSOrigin,
		sessionRepo:        cfg.SessionRepo,
		calendar:           cfg.Calendar,
		calendarID:         cfg.CalendarID,
		llm:                cfg.LLM,
		openAIModel:        cfg.OpenAIModel,
		breakdownRateLimit: cfg.BreakdownRateLimit,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.sessionRepo == nil {
		return errors.New("session repository is required")
	}
	return nil
}
