package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"production/internal/core/domain/model/kernel"
)

var ErrInvalidToken = errors.New("invalid auth token")

// TokenStrategy issues and verifies session tokens for accounts.
type TokenStrategy interface {
	IssueToken(accountID kernel.UUID) (string, error)
	ParseToken(token string) (kernel.UUID, error)
}

// Options tunes token issuance.
type Options struct {
	TTL time.Duration
}

// HMACStrategy implements token creation/verification using HMAC signatures.
type HMACStrategy struct {
	secret []byte
	ttl    time.Duration
}

// NewHMACStrategy builds HMACStrategy with provided secret and options.
// A non-positive TTL falls back to 24 hours.
func NewHMACStrategy(secret string, opts Options) *HMACStrategy {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &HMACStrategy{secret: []byte(secret), ttl: ttl}
}

// IssueToken generates a signed session token for the account.
func (s *HMACStrategy) IssueToken(accountID kernel.UUID) (string, error) {
	if err := accountID.Validate(); err != nil {
		return "", err
	}

	expires := time.Now().Add(s.ttl).Unix()
	payload := fmt.Sprintf("%s:%d", accountID.String(), expires)
	token := fmt.Sprintf("%s:%s", payload, s.sign(payload))
	return base64.StdEncoding.EncodeToString([]byte(token)), nil
}

// ParseToken validates the token and returns the encoded account ID.
func (s *HMACStrategy) ParseToken(token string) (kernel.UUID, error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return kernel.UUID{}, ErrInvalidToken
	}

	parts := strings.Split(string(raw), ":")
	if len(parts) != 3 {
		return kernel.UUID{}, ErrInvalidToken
	}

	payload := strings.Join(parts[:2], ":")
	if !hmac.Equal([]byte(s.sign(payload)), []byte(parts[2])) {
		return kernel.UUID{}, ErrInvalidToken
	}

	accountID, err := kernel.UUIDFromString(parts[0])
	if err != nil {
		return kernel.UUID{}, ErrInvalidToken
	}

	expires, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return kernel.UUID{}, ErrInvalidToken
	}

	if time.Unix(expires, 0).Before(time.Now()) {
		return kernel.UUID{}, ErrInvalidToken
	}

	return accountID, nil
}

func (s *HMACStrategy) sign(payload string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(payload))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
