package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"voyago/models"

	"github.com/go-redis/redis/v8"
)

// AttemptStore persists booking attempts between the availability check, the
// payment intent and the final confirmation, which arrive as separate
// requests. Attempts expire; an expired attempt simply means the caller
// re-checks availability.
type AttemptStore interface {
	Save(ctx context.Context, attempt *models.BookingAttempt) error
	GetByResource(ctx context.Context, tripID string, resourceType models.ResourceType, resourceID string) (*models.BookingAttempt, error)
	GetByIntent(ctx context.Context, paymentIntentID string) (*models.BookingAttempt, error)
}

// attemptTTL is how long an attempt stays resumable.
const attemptTTL = 30 * time.Minute

// RedisAttemptStore implements AttemptStore on the booking session cache.
// The attempt is stored under its (trip, resource) key; once a payment intent
// exists an alias key redirects from the intent id so a confirmation webhook
// can find the attempt.
type RedisAttemptStore struct {
	Client *redis.Client
}

func NewRedisAttemptStore(client *redis.Client) *RedisAttemptStore {
	return &RedisAttemptStore{Client: client}
}

func (s *RedisAttemptStore) Save(ctx context.Context, attempt *models.BookingAttempt) error {
	attempt.UpdatedAt = time.Now()
	data, err := json.Marshal(attempt)
	if err != nil {
		return fmt.Errorf("failed to marshal booking attempt: %w", err)
	}

	key := attemptKey(attempt.TripID, attempt.ResourceType, attempt.ResourceID)
	if err := s.Client.Set(ctx, key, data, attemptTTL).Err(); err != nil {
		return fmt.Errorf("failed to store booking attempt: %w", err)
	}
	if attempt.PaymentIntentID != "" {
		if err := s.Client.Set(ctx, intentKey(attempt.PaymentIntentID), key, attemptTTL).Err(); err != nil {
			return fmt.Errorf("failed to store intent alias: %w", err)
		}
	}
	return nil
}

func (s *RedisAttemptStore) GetByResource(ctx context.Context, tripID string, resourceType models.ResourceType, resourceID string) (*models.BookingAttempt, error) {
	return s.load(ctx, attemptKey(tripID, resourceType, resourceID))
}

func (s *RedisAttemptStore) GetByIntent(ctx context.Context, paymentIntentID string) (*models.BookingAttempt, error) {
	key, err := s.Client.Get(ctx, intentKey(paymentIntentID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to resolve intent alias: %w", err)
	}
	return s.load(ctx, key)
}

func (s *RedisAttemptStore) load(ctx context.Context, key string) (*models.BookingAttempt, error) {
	data, err := s.Client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch booking attempt: %w", err)
	}
	var attempt models.BookingAttempt
	if err := json.Unmarshal([]byte(data), &attempt); err != nil {
		return nil, fmt.Errorf("failed to parse booking attempt: %w", err)
	}
	return &attempt, nil
}

func attemptKey(tripID string, resourceType models.ResourceType, resourceID string) string {
	return fmt.Sprintf("booking:attempt:%s:%s:%s", tripID, resourceType, resourceID)
}

func intentKey(paymentIntentID string) string {
	return "booking:intent:" + paymentIntentID
}
