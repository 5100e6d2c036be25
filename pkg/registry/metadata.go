/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package registry

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"time"
)

const secondsPerDay = 86400

// ExpirationTime returns the absolute expiration in unix seconds, or 0 when days is 0.
// The result must fit a non-negative int64 since the registry stores it as uint256.
func ExpirationTime(now time.Time, days int) (int64, error) {
	if days == 0 {
		return 0, nil
	}

	base := now.Unix()

	if days < 0 || base < 0 || int64(days) > (math.MaxInt64-base)/secondsPerDay {
		return 0, fmt.Errorf("%w: %d days", ErrInvalidExpiration, days)
	}

	return base + int64(days)*secondsPerDay, nil
}

// EncodeMetadata serializes metadata as compact JSON with keys sorted at every level and
// returns it with the hex SHA-256 digest of those bytes.
func EncodeMetadata(metadata map[string]interface{}) ([]byte, string, error) {
	if metadata == nil {
		metadata = map[string]interface{}{}
	}

	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(metadata); err != nil {
		return nil, "", fmt.Errorf("encode metadata: %w", err)
	}

	encoded := bytes.TrimRight(buf.Bytes(), "\n")
	sum := sha256.Sum256(encoded)

	return encoded, hex.EncodeToString(sum[:]), nil
}
