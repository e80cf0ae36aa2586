package onboarding

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"eventvibe/models"
	"eventvibe/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const sessionKeyPrefix = "regSession:"

// SessionStore persists in-progress onboarding sessions.
type SessionStore interface {
	Save(ctx context.Context, session models.RegistrationSession) error
	// Get returns ErrSessionNotFound when the session expired or never existed.
	Get(ctx context.Context, sessionID string) (*models.RegistrationSession, error)
	Delete(ctx context.Context, sessionID string) error
}

// RedisSessionStore keeps sessions in Redis with a TTL, so abandoned flows
// are reaped automatically and no partial record outlives the wizard.
type RedisSessionStore struct {
	Client *redis.Client
	TTL    time.Duration
}

// NewRedisSessionStore builds a store on the dedicated session cache client.
func NewRedisSessionStore() *RedisSessionStore {
	return &RedisSessionStore{
		Client: utils.GetSessionCacheClient(),
		TTL:    utils.RegistrationSessionTTL,
	}
}

func (s *RedisSessionStore) Save(ctx context.Context, session models.RegistrationSession) error {
	session.LastUpdatedAt = time.Now()
	data, err := json.Marshal(session)
	if err != nil {
		utils.GetLogger().Error("Failed to marshal onboarding session", zap.Error(err))
		return fmt.Errorf("failed to marshal onboarding session: %w", err)
	}
	if err := s.Client.Set(ctx, sessionKeyPrefix+session.TempID, data, s.TTL).Err(); err != nil {
		utils.GetLogger().Error("Failed to save onboarding session",
			zap.String("sessionID", session.TempID), zap.Error(err))
		return fmt.Errorf("failed to save onboarding session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (*models.RegistrationSession, error) {
	data, err := s.Client.Get(ctx, sessionKeyPrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		utils.GetLogger().Error("Failed to get onboarding session",
			zap.String("sessionID", sessionID), zap.Error(err))
		return nil, fmt.Errorf("failed to get onboarding session: %w", err)
	}
	var session models.RegistrationSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal onboarding session: %w", err)
	}
	return &session, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.Client.Del(ctx, sessionKeyPrefix+sessionID).Err(); err != nil {
		utils.GetLogger().Error("Failed to delete onboarding session",
			zap.String("sessionID", sessionID), zap.Error(err))
		return fmt.Errorf("failed to delete onboarding session: %w", err)
	}
	return nil
}
