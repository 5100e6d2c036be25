/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package metrics

import (
	"time"

	"github.com/trustbloc/logutil-go/pkg/log"
)

// Logger used by different metrics provider.
var Logger = log.New("metrics-provider")

// Constants used by different metrics provider.
const (
	// Namespace Organization namespace.
	Namespace = "zkage"

	// Keys key material operations.
	Keys                     = "keys"
	KeysProvisionTimeMetric  = "keys_provision_seconds"
	Prover                   = "prover"
	ProverWitnessTimeMetric  = "prover_computeWitness_seconds"
	ProverProofTimeMetric    = "prover_generateProof_seconds"
	ProverVerifyTimeMetric   = "prover_verifyProof_seconds"
	Registry                 = "registry"
	RegistryRegisterMetric   = "registry_registerVerification_seconds"
	Service                  = "service"
	ServiceVerificationCount = "service_verifications_total"
)

// Verification statuses reported by VerificationCompleted.
const (
	StatusRegistered = "registered"
	StatusRejected   = "rejected"
	StatusFailed     = "failed"
)

// Provider is an interface for metrics provider.
type Provider interface {
	// Create creates a metrics provider instance
	Create() error
	// Destroy destroys the metrics provider instance
	Destroy() error
	// Metrics providers metrics
	Metrics() Metrics
}

// Metrics is an interface for the metrics to be supported by the provider.
type Metrics interface {
	KeyProvisioningTime(value time.Duration)
	WitnessComputationTime(value time.Duration)
	ProofGenerationTime(value time.Duration)
	ProofVerificationTime(value time.Duration)
	RegistrationTime(value time.Duration)
	VerificationCompleted(verificationType, status string)
}
