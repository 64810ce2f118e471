package rest

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/playmixer/scoring-api/internal/core/scoring"
	"github.com/playmixer/scoring-api/pkg/logger"
)

const (
	statusOK                 = http.StatusOK
	statusBadRequest         = http.StatusBadRequest
	statusForbidden          = http.StatusForbidden
	statusNotFound           = http.StatusNotFound
	statusInvalidRequest     = http.StatusUnprocessableEntity
	statusInternalError      = http.StatusInternalServerError
	statusServiceUnavailable = http.StatusServiceUnavailable
)

var statusText = map[int]string{
	statusBadRequest:     "Bad Request",
	statusForbidden:      "Forbidden",
	statusNotFound:       "Not Found",
	statusInvalidRequest: "Invalid Request",
	statusInternalError:  "Internal Server Error",
}

const (
	adminLogin = "admin"

	defaultSalt      = "Otus"
	defaultAdminSalt = "42"
)

var shutdownDelay = time.Second * 5

type Scorer interface {
	Score(ctx context.Context, q scoring.ScoreQuery) float64
	Interests(ctx context.Context, clientID int) []string
}

type Pinger interface {
	Ping(ctx context.Context) error
}

type Server struct {
	log       *logger.Logger
	scorer    Scorer
	pinger    Pinger
	salt      string
	adminSalt string
	s         http.Server
}

type Option func(s *Server)

// New создает Server.
func New(scorer Scorer, log *logger.Logger, options ...Option) *Server {
	srv := &Server{
		scorer:    scorer,
		log:       log,
		salt:      defaultSalt,
		adminSalt: defaultAdminSalt,
	}
	srv.s.Addr = "localhost:8080"

	for _, opt := range options {
		opt(srv)
	}

	return srv
}

// Addr - Настройка сервера, задает адрес сервера.
func Addr(addr string) Option {
	return func(s *Server) {
		s.s.Addr = addr
	}
}

// Salt - задает соль пользовательского токена.
func Salt(salt string) Option {
	return func(s *Server) {
		s.salt = salt
	}
}

// AdminSalt - задает соль административного токена.
func AdminSalt(salt string) Option {
	return func(s *Server) {
		s.adminSalt = salt
	}
}

// HealthPinger - подключает проверку хранилища к /healthz.
func HealthPinger(p Pinger) Option {
	return func(s *Server) {
		s.pinger = p
	}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(
		s.middlewareRequestID(),
		s.middlewareLogger(),
		gin.CustomRecovery(func(c *gin.Context, _ any) {
			respondError(c, statusInternalError, "")
		}),
	)

	r.POST("/method", s.handlerMethod)
	r.GET("/healthz", s.handlerHealthz)
	r.NoRoute(func(c *gin.Context) {
		respondError(c, statusNotFound, "")
	})

	return r
}

func (s *Server) Run() error {
	s.s.Handler = s.SetupRouter().Handler()
	if err := s.s.ListenAndServe(); err != nil {
		return fmt.Errorf("server has failed: %w", err)
	}

	return nil
}

// Stop - остановка сервера.
func (s *Server) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownDelay)
	defer cancel()
	err := s.s.Shutdown(ctx)
	if err != nil {
		s.log.Error("failed shutdown server", zap.Error(err))
	}
	s.log.Info("Server exiting")
}
