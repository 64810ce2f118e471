package scoring

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/playmixer/scoring-api/internal/adapters/apperror"
	"github.com/playmixer/scoring-api/pkg/logger"
)

const (
	scoreCacheTTL = time.Hour

	scoreKeyPrefix     = "uid:"
	interestsKeyPrefix = "i:"

	birthdayKeyLayout = "20060102"
)

type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	CacheGet(ctx context.Context, key string) (string, error)
	CacheSet(ctx context.Context, key, value string, ttl time.Duration) error
}

type Service struct {
	log   *logger.Logger
	store Store
}

func New(log *logger.Logger, store Store) *Service {
	return &Service{
		log:   log,
		store: store,
	}
}

// ScoreQuery - проверенные поля запроса online_score.
// Отсутствующие строковые поля - пустые строки, gender и birthday
// различают "не задано" и нулевое значение.
type ScoreQuery struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Birthday  *time.Time
	Gender    *int
}

func (q ScoreQuery) cacheKey() string {
	birthday := ""
	if q.Birthday != nil {
		birthday = q.Birthday.Format(birthdayKeyLayout)
	}
	sum := md5.Sum([]byte(q.FirstName + q.LastName + q.Phone + birthday))
	return scoreKeyPrefix + hex.EncodeToString(sum[:])
}

// Score считает скор по полям запроса. Кеш - только оптимизация:
// недоступность хранилища не мешает посчитать значение заново.
func (s *Service) Score(ctx context.Context, q ScoreQuery) float64 {
	key := q.cacheKey()

	cached, err := s.store.CacheGet(ctx, key)
	if err == nil {
		if score, perr := strconv.ParseFloat(cached, 64); perr == nil {
			return score
		}
		s.log.Warn("unparsable cached score", zap.String("key", key), zap.String("value", cached))
	} else if !errors.Is(err, apperror.ErrNotFoundData) {
		s.log.Warn("failed read score from cache", zap.String("key", key), zap.Error(err))
	}

	score := 0.0
	if q.Phone != "" {
		score += 1.5
	}
	if q.Email != "" {
		score += 1.5
	}
	if q.Birthday != nil && q.Gender != nil {
		score += 1.5
	}
	if q.FirstName != "" && q.LastName != "" {
		score += 0.5
	}

	if err := s.store.CacheSet(ctx, key, strconv.FormatFloat(score, 'f', -1, 64), scoreCacheTTL); err != nil {
		s.log.Warn("failed write score to cache", zap.String("key", key), zap.Error(err))
	}

	return score
}

// Interests возвращает интересы клиента. Отсутствие данных или
// недоступность хранилища - пустой список, не ошибка.
func (s *Service) Interests(ctx context.Context, clientID int) []string {
	key := interestsKey(clientID)

	value, err := s.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, apperror.ErrNotFoundData) {
			s.log.Warn("failed read interests", zap.String("key", key), zap.Error(err))
		}
		return []string{}
	}

	interests := []string{}
	if err := json.Unmarshal([]byte(value), &interests); err != nil {
		s.log.Warn("failed parse interests", zap.String("key", key), zap.Error(err))
		return []string{}
	}

	return interests
}

// SeedInterests записывает интересы клиентов, используется фикстурами.
func (s *Service) SeedInterests(ctx context.Context, interests map[int][]string) error {
	for clientID, list := range interests {
		data, err := json.Marshal(list)
		if err != nil {
			return fmt.Errorf("failed marshal interests for client %d: %w", clientID, err)
		}
		if err := s.store.Set(ctx, interestsKey(clientID), string(data)); err != nil {
			return fmt.Errorf("failed store interests for client %d: %w", clientID, err)
		}
	}

	return nil
}

func interestsKey(clientID int) string {
	return interestsKeyPrefix + strconv.Itoa(clientID)
}
