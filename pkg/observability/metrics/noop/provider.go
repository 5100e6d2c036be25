/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package noop

import (
	"time"

	"github.com/trustbloc/zkage/pkg/observability/metrics"
)

// Provider is a metrics.Provider whose metrics are discarded.
type Provider struct{}

// NewProvider returns a no-op metrics provider.
func NewProvider() *Provider {
	return &Provider{}
}

func (p *Provider) Create() error            { return nil }
func (p *Provider) Destroy() error           { return nil }
func (p *Provider) Metrics() metrics.Metrics { return GetMetrics() }

// NoMetrics provides default no operation implementation for the NoMetrics interface.
type NoMetrics struct{}

// GetMetrics returns metrics implementation.
func GetMetrics() metrics.Metrics {
	return &NoMetrics{}
}

func (n *NoMetrics) KeyProvisioningTime(_ time.Duration)    {}
func (n *NoMetrics) WitnessComputationTime(_ time.Duration) {}
func (n *NoMetrics) ProofGenerationTime(_ time.Duration)    {}
func (n *NoMetrics) ProofVerificationTime(_ time.Duration)  {}
func (n *NoMetrics) RegistrationTime(_ time.Duration)       {}
func (n *NoMetrics) VerificationCompleted(_, _ string)      {}
