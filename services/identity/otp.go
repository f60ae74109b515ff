package identity

import (
	"context"
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"golang.org/x/crypto/bcrypt"
)

const otpKeyPrefix = "otp:"

// OTPStore keeps one-time passcodes in Redis, hashed at rest, keyed by the
// canonical organization identifier. Verification consumes the code.
type OTPStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewOTPStore creates an OTPStore over the given Redis client.
func NewOTPStore(client *redis.Client, ttl time.Duration) *OTPStore {
	return &OTPStore{client: client, ttl: ttl}
}

// generateSecureOTP generates a secure random OTP of the specified length.
// It returns a base32 encoded string (without padding) truncated to the
// desired length.
func generateSecureOTP(length int) (string, error) {
	numBytes := (length*5 + 7) / 8
	randomBytes := make([]byte, numBytes)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	otp := base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(randomBytes)
	if len(otp) > length {
		otp = otp[:length]
	}
	return otp, nil
}

// Initiate generates a 6-character OTP, stores its bcrypt hash with the
// configured TTL, and returns the cleartext code for delivery.
func (s *OTPStore) Initiate(ctx context.Context, orgID string) (string, error) {
	otp, err := generateSecureOTP(6)
	if err != nil {
		return "", fmt.Errorf("failed to generate OTP: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(otp), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash OTP: %w", err)
	}

	key := otpKeyPrefix + orgID
	if err := s.client.Set(ctx, key, string(hash), s.ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to store OTP: %w", err)
	}
	return otp, nil
}

// Verify compares the provided OTP against the stored hash and deletes it on
// success. A consumed or expired code cannot be replayed.
func (s *OTPStore) Verify(ctx context.Context, orgID, providedOTP string) error {
	key := otpKeyPrefix + orgID

	storedHash, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return ErrOTPExpired
		}
		return fmt.Errorf("failed to retrieve OTP: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(providedOTP)) != nil {
		return ErrInvalidOTP
	}

	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to consume OTP: %w", err)
	}
	return nil
}
