// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides admin keys and IP hashing.

# Admin Keys

Admin keys use HMAC-SHA256 over the question ID:

	adminKey := auth.GenerateAdminKey(questionID, salt)
	err := auth.ValidateAdminKey(questionID, adminKey, salt)

The key is URL-safe base64 without padding. Because it is derived from the
question ID and salt, it never needs to be stored. Whoever created a
question gets its key and can add choices or preview it before pub_date.

# IP Hashing

Votes are logged with a hashed client address instead of the raw IP:

	hash := auth.HashIP(ipAddress, salt)

Returns the first 8 bytes (16 hex chars) of HMAC-SHA256.
*/
package auth
