package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"aufgabe/internal/suggest"
	"aufgabe/internal/task"
	"aufgabe/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	taskUC    task.UseCase
	suggester interface {
		Suggestions() []suggest.Suggestion
	}
	location *time.Location

	authToken  string
	ratePerMin int
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	TaskUseCase task.UseCase
	Suggester   interface {
		Suggestions() []suggest.Suggestion
	}
	Location *time.Location

	AuthToken  string
	RatePerMin int
}

// New creates a new HTTPServer instance.
func New(cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           cfg.Logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		taskUC:      cfg.TaskUseCase,
		suggester:   cfg.Suggester,
		location:    cfg.Location,
		authToken:   cfg.AuthToken,
		ratePerMin:  cfg.RatePerMin,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mapHandlers()

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.taskUC == nil {
		return errors.New("task usecase is required")
	}
	if srv.suggester == nil {
		return errors.New("suggester is required")
	}
	if srv.location == nil {
		return errors.New("location is required")
	}
	return nil
}
