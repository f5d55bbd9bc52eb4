package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"production/internal/core/domain/model/kernel"
	"production/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

var _ ports.SessionStateStore = (*SessionStateStore)(nil)

// SessionStateStore implements ports.SessionStateStore on Redis.
type SessionStateStore struct {
	client *redis.Client
}

// NewSessionStateStore creates a session state store backed by the given client.
func NewSessionStateStore(client *redis.Client) (*SessionStateStore, error) {
	if client == nil {
		return nil, errors.New("client must not be nil")
	}
	return &SessionStateStore{client: client}, nil
}

// SetLastView remembers the view the account navigated to.
func (s *SessionStateStore) SetLastView(ctx context.Context, accountID kernel.UUID, view string) error {
	if err := accountID.Validate(); err != nil {
		return err
	}
	key := fmt.Sprintf(keyLastView, accountID.String())
	return s.client.Set(ctx, key, view, ttlLastView).Err()
}

// GetLastView returns the remembered view, or ok=false when none.
func (s *SessionStateStore) GetLastView(ctx context.Context, accountID kernel.UUID) (string, bool, error) {
	if err := accountID.Validate(); err != nil {
		return "", false, err
	}
	key := fmt.Sprintf(keyLastView, accountID.String())
	view, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return view, true, nil
}

// SetOrderDraft stores the account's in-progress intake form as JSON.
func (s *SessionStateStore) SetOrderDraft(ctx context.Context, accountID kernel.UUID, draft ports.OrderDraft) error {
	if err := accountID.Validate(); err != nil {
		return err
	}
	payload, err := json.Marshal(draft)
	if err != nil {
		return err
	}
	key := fmt.Sprintf(keyOrderDraft, accountID.String())
	return s.client.Set(ctx, key, payload, ttlOrderDraft).Err()
}

// GetOrderDraft returns the stored draft, or ok=false when none.
func (s *SessionStateStore) GetOrderDraft(ctx context.Context, accountID kernel.UUID) (ports.OrderDraft, bool, error) {
	if err := accountID.Validate(); err != nil {
		return ports.OrderDraft{}, false, err
	}
	key := fmt.Sprintf(keyOrderDraft, accountID.String())
	payload, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ports.OrderDraft{}, false, nil
	}
	if err != nil {
		return ports.OrderDraft{}, false, err
	}

	var draft ports.OrderDraft
	if err = json.Unmarshal(payload, &draft); err != nil {
		return ports.OrderDraft{}, false, err
	}
	return draft, true, nil
}

// ClearOrderDraft drops the stored draft, keeping the last view.
func (s *SessionStateStore) ClearOrderDraft(ctx context.Context, accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return err
	}
	return s.client.Del(ctx, fmt.Sprintf(keyOrderDraft, accountID.String())).Err()
}

// Clear drops all scratch state for the account.
func (s *SessionStateStore) Clear(ctx context.Context, accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return err
	}
	return s.client.Del(ctx,
		fmt.Sprintf(keyLastView, accountID.String()),
		fmt.Sprintf(keyOrderDraft, accountID.String()),
	).Err()
}
