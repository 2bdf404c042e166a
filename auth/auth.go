// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"strings"
)

var ErrInvalidAdminKey = errors.New("invalid admin key")

// GenerateAdminKey derives the admin key for a question from its ID.
// Deterministic, so nothing needs to be stored.
func GenerateAdminKey(questionID, salt string) string {
	sum := mac(questionID, salt)
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// ValidateAdminKey checks adminKey against the key derived for questionID
func ValidateAdminKey(questionID, adminKey, salt string) error {
	expected := GenerateAdminKey(questionID, salt)
	if adminKey == "" || !hmac.Equal([]byte(adminKey), []byte(expected)) {
		return ErrInvalidAdminKey
	}
	return nil
}

// HashIP returns a short salted one-way hash of an IP address, for logs.
func HashIP(ip, salt string) string {
	return hex.EncodeToString(mac(ip, salt)[:8])
}

func mac(msg, salt string) []byte {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(msg))
	return h.Sum(nil)
}
