package rest

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/playmixer/scoring-api/internal/core/scoring"
)

const (
	methodOnlineScore      = "online_score"
	methodClientsInterests = "clients_interests"

	adminScore = 42

	healthzTimeout = 5 * time.Second
)

func (s *Server) handlerMethod(c *gin.Context) {
	var req MethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// неверный тип поля - ошибка валидации, нечитаемый JSON - Bad Request
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			respondError(c, statusInvalidRequest, typeErr.Error())
			return
		}
		respondError(c, statusBadRequest, "")
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		respondError(c, statusInvalidRequest, strings.Join(errs, ", "))
		return
	}

	if !s.checkAuth(&req) {
		respondError(c, statusForbidden, "")
		return
	}

	switch *req.Method {
	case methodOnlineScore:
		s.handleOnlineScore(c, &req)
	case methodClientsInterests:
		s.handleClientsInterests(c, &req)
	default:
		respondError(c, statusNotFound, "method not found")
	}
}

func (s *Server) handleOnlineScore(c *gin.Context, req *MethodRequest) {
	var args OnlineScoreRequest
	if err := json.Unmarshal(req.Arguments, &args); err != nil {
		respondError(c, statusInvalidRequest, err.Error())
		return
	}
	if errs := args.Validate(); len(errs) > 0 {
		respondError(c, statusInvalidRequest, strings.Join(errs, ", "))
		return
	}

	s.log.Debug("online_score request",
		zap.String("request_id", requestID(c)),
		zap.Strings("has", args.Provided()),
	)

	if req.IsAdmin() {
		respondOK(c, gin.H{"score": float64(adminScore)})
		return
	}

	query := scoring.ScoreQuery{Gender: args.Gender}
	if args.FirstName != nil {
		query.FirstName = *args.FirstName
	}
	if args.LastName != nil {
		query.LastName = *args.LastName
	}
	if args.Email != nil {
		query.Email = *args.Email
	}
	if args.Phone != nil {
		query.Phone = string(*args.Phone)
	}
	if args.Birthday != nil {
		birthday := args.Birthday.Time
		query.Birthday = &birthday
	}

	score := s.scorer.Score(c.Request.Context(), query)
	respondOK(c, gin.H{"score": score})
}

func (s *Server) handleClientsInterests(c *gin.Context, req *MethodRequest) {
	var args ClientsInterestsRequest
	if err := json.Unmarshal(req.Arguments, &args); err != nil {
		respondError(c, statusInvalidRequest, err.Error())
		return
	}
	if errs := args.Validate(); len(errs) > 0 {
		respondError(c, statusInvalidRequest, strings.Join(errs, ", "))
		return
	}

	s.log.Debug("clients_interests request",
		zap.String("request_id", requestID(c)),
		zap.Int("nclients", len(args.ClientIDs)),
	)

	response := gin.H{}
	for _, clientID := range args.ClientIDs {
		response[strconv.Itoa(clientID)] = s.scorer.Interests(c.Request.Context(), clientID)
	}

	respondOK(c, response)
}

// handlerHealthz - проверка живости сервиса и его хранилища.
func (s *Server) handlerHealthz(c *gin.Context) {
	if s.pinger == nil {
		c.JSON(statusOK, gin.H{"status": "ok"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), healthzTimeout)
	defer cancel()
	if err := s.pinger.Ping(ctx); err != nil {
		s.log.Warn("healthcheck failed", zap.Error(err))
		c.JSON(statusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}

	c.JSON(statusOK, gin.H{"status": "ok"})
}
