/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package healthchecks

import (
	"context"
	"math/big"

	"github.com/alexliesenfeld/health"

	"github.com/trustbloc/zkage/pkg/observability/health/blobstore"
	"github.com/trustbloc/zkage/pkg/observability/health/ethrpc"
)

const (
	BlobStoreCheck = "blobstore"
	ChainRPCCheck  = "ethrpc"
)

type Config struct {
	BlobStore interface {
		Ping(ctx context.Context) error
	}
	ChainClient interface {
		ChainID(ctx context.Context) (*big.Int, error)
	}
	ChainID *big.Int
}

// Get returns checks for the dependencies that are configured. Nil dependencies are skipped.
func Get(config *Config) []health.Check {
	var checks []health.Check

	if config.BlobStore != nil {
		checks = append(checks, health.Check{
			Name:               BlobStoreCheck,
			Check:              blobstore.New(config.BlobStore),
			MaxTimeInError:     1,
			MaxContiguousFails: 1,
		})
	}

	if config.ChainClient != nil {
		checks = append(checks, health.Check{
			Name:               ChainRPCCheck,
			Check:              ethrpc.New(config.ChainClient, config.ChainID),
			MaxTimeInError:     1,
			MaxContiguousFails: 1,
		})
	}

	return checks
}
