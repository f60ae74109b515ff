package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

// HashToken computes a SHA-256 hash of the token string.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// SignWebhookPayload produces a compact HMAC-signed token binding the given
// payload bytes. Receivers recompute the body hash and verify the signature
// to authenticate webhook deliveries.
func SignWebhookPayload(secret []byte, body []byte) (string, error) {
	if len(secret) == 0 {
		return "", errors.New("webhook signing secret not configured")
	}
	sum := sha256.Sum256(body)
	claims := jwt.MapClaims{
		"body_sha256": hex.EncodeToString(sum[:]),
		"iat":         time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// VerifyWebhookSignature checks a signature token against the payload bytes.
func VerifyWebhookSignature(secret []byte, body []byte, signature string) error {
	token, err := jwt.Parse(signature, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil {
		return err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return errors.New("invalid signature token")
	}
	sum := sha256.Sum256(body)
	if claims["body_sha256"] != hex.EncodeToString(sum[:]) {
		return errors.New("payload hash mismatch")
	}
	return nil
}
