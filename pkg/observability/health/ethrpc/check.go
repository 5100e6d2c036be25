/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package ethrpc

import (
	"context"
	"fmt"
	"math/big"
)

type chainIDReader interface {
	ChainID(ctx context.Context) (*big.Int, error)
}

// New returns a health check against the chain RPC endpoint. When expected is
// non-nil the node must also report the same chain id.
func New(client chainIDReader, expected *big.Int) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		id, err := client.ChainID(ctx)
		if err != nil {
			return fmt.Errorf("query chain id: %w", err)
		}

		if expected != nil && id.Cmp(expected) != 0 {
			return fmt.Errorf("chain id mismatch: node reports %s, configured %s", id, expected)
		}

		return nil
	}
}
