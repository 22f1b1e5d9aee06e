package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nestandloomco/intentra/domain"
)

// sessionRecord is the stored form of a session. The interest result goes
// through MarshalBinary so the score survives the round trip.
type sessionRecord struct {
	ID        string                     `json:"id"`
	Stage     domain.Stage               `json:"stage"`
	Vehicle   *domain.VehicleDescription `json:"vehicle,omitempty"`
	Result    json.RawMessage            `json:"result,omitempty"`
	Lead      *domain.Lead               `json:"lead,omitempty"`
	UpdatedAt time.Time                  `json:"updated_at"`
}

// SessionRepositoryRedis keeps sessions in redis with a TTL refreshed on
// every save.
type SessionRepositoryRedis struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewSessionRepositoryRedis(client *redis.Client, prefix string, ttl time.Duration) *SessionRepositoryRedis {
	return &SessionRepositoryRedis{client: client, prefix: prefix, ttl: ttl}
}

func (r *SessionRepositoryRedis) Save(ctx context.Context, session *domain.Session) error {
	rec := sessionRecord{
		ID:        session.ID,
		Stage:     session.Stage,
		Vehicle:   session.Vehicle,
		Lead:      session.Lead,
		UpdatedAt: session.UpdatedAt,
	}
	if session.Result != nil {
		raw, err := session.Result.MarshalBinary()
		if err != nil {
			return fmt.Errorf("encode interest result: %w", err)
		}
		rec.Result = raw
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	return r.client.Set(ctx, r.key(session.ID), data, r.ttl).Err()
}

func (r *SessionRepositoryRedis) Get(ctx context.Context, id string) (*domain.Session, error) {
	data, err := r.client.Get(ctx, r.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	var rec sessionRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}

	session := &domain.Session{
		ID:        rec.ID,
		Stage:     rec.Stage,
		Vehicle:   rec.Vehicle,
		Lead:      rec.Lead,
		UpdatedAt: rec.UpdatedAt,
	}
	if len(rec.Result) > 0 {
		var result domain.InterestResult
		if err := result.UnmarshalBinary(rec.Result); err != nil {
			return nil, fmt.Errorf("decode interest result: %w", err)
		}
		session.Result = &result
	}
	return session, nil
}

func (r *SessionRepositoryRedis) Delete(ctx context.Context, id string) error {
	return r.client.Del(ctx, r.key(id)).Err()
}

func (r *SessionRepositoryRedis) key(id string) string {
	return r.prefix + "session:" + id
}
