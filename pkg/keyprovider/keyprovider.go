/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination keyprovider_mocks_test.go -package keyprovider_test -source=keyprovider.go -mock_names blobStore=MockBlobStore

package keyprovider

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/zkage/internal/logfields"
)

// Blob names of the age-verifier key pair inside the key container.
const (
	VerificationKeyBlob = "age-verifier/verification.key"
	ProvingKeyBlob      = "age-verifier/proving.key"
)

// File names the key pair is materialized under in a working directory.
const (
	VerificationKeyFile = "verification.key"
	ProvingKeyFile      = "proving.key"
)

const keyFileMode = 0o600

var logger = log.New("key-provider")

type blobStore interface {
	Download(ctx context.Context, blobName string) ([]byte, error)
}

// Material locates key files written into a working directory.
type Material struct {
	VerificationKeyPath string
	ProvingKeyPath      string
}

// Provider copies the verification and proving keys from the key container into working directories.
type Provider struct {
	store blobStore
}

// New returns a new Provider.
func New(store blobStore) *Provider {
	return &Provider{store: store}
}

// Provision downloads both keys into workDir. The directory must already exist.
// Keys are fetched on every call; failures are returned as-is without retry.
func (p *Provider) Provision(ctx context.Context, workDir string) (*Material, error) {
	fi, err := os.Stat(workDir)
	if err != nil {
		return nil, fmt.Errorf("stat work dir: %w", err)
	}

	if !fi.IsDir() {
		return nil, fmt.Errorf("work dir %s is not a directory", workDir)
	}

	m := &Material{
		VerificationKeyPath: filepath.Join(workDir, VerificationKeyFile),
		ProvingKeyPath:      filepath.Join(workDir, ProvingKeyFile),
	}

	if err = p.fetch(ctx, VerificationKeyBlob, m.VerificationKeyPath); err != nil {
		return nil, err
	}

	if err = p.fetch(ctx, ProvingKeyBlob, m.ProvingKeyPath); err != nil {
		return nil, err
	}

	return m, nil
}

func (p *Provider) fetch(ctx context.Context, blobName, dst string) error {
	content, err := p.store.Download(ctx, blobName)
	if err != nil {
		return fmt.Errorf("download %s: %w", blobName, err)
	}

	if err = os.WriteFile(dst, content, keyFileMode); err != nil {
		return fmt.Errorf("write %s: %w", dst, err)
	}

	logger.Debugc(ctx, "Key material provisioned", logfields.WithBlobName(blobName))

	return nil
}
