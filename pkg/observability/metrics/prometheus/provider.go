/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package prometheus

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/zkage/pkg/observability/metrics"
)

var logger = metrics.Logger

var (
	createOnce sync.Once       //nolint:gochecknoglobals
	instance   metrics.Metrics //nolint:gochecknoglobals
)

type promProvider struct {
	httpServer *http.Server
}

// NewPrometheusProvider creates new instance of Prometheus Metrics Provider.
// When httpServer is nil the metrics are expected to be served by the caller's router.
func NewPrometheusProvider(httpServer *http.Server) metrics.Provider {
	return &promProvider{httpServer: httpServer}
}

// Create creates/initializes the prometheus metrics provider.
func (pp *promProvider) Create() error {
	if pp.httpServer == nil {
		return nil
	}

	go func() {
		if err := pp.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Metrics HTTP server stopped", log.WithError(err))
		}
	}()

	return nil
}

// Metrics returns supported metrics.
func (pp *promProvider) Metrics() metrics.Metrics {
	return GetMetrics()
}

// Destroy destroys the prometheus metrics provider.
func (pp *promProvider) Destroy() error {
	if pp.httpServer != nil {
		return pp.httpServer.Shutdown(context.Background())
	}

	return nil
}

// GetMetrics returns metrics implementation.
func GetMetrics() metrics.Metrics {
	createOnce.Do(func() {
		instance = NewMetrics()
	})

	return instance
}

// PromMetrics manages the metrics for the age verification service.
type PromMetrics struct {
	keyProvisionTime  prometheus.Histogram
	witnessTime       prometheus.Histogram
	proofTime         prometheus.Histogram
	proofVerifyTime   prometheus.Histogram
	registrationTime  prometheus.Histogram
	verificationCount *prometheus.CounterVec
}

// NewMetrics creates instance of prometheus metrics.
func NewMetrics() metrics.Metrics {
	pm := &PromMetrics{
		keyProvisionTime: newHistogram(
			metrics.Keys, metrics.KeysProvisionTimeMetric,
			"The time (in seconds) it takes to fetch the key pair into a working directory.",
			nil,
		),
		witnessTime: newHistogram(
			metrics.Prover, metrics.ProverWitnessTimeMetric,
			"The time (in seconds) it takes to compute a witness.",
			nil,
		),
		proofTime: newHistogram(
			metrics.Prover, metrics.ProverProofTimeMetric,
			"The time (in seconds) it takes to generate a proof.",
			nil,
		),
		proofVerifyTime: newHistogram(
			metrics.Prover, metrics.ProverVerifyTimeMetric,
			"The time (in seconds) it takes to verify a generated proof.",
			nil,
		),
		registrationTime: newHistogram(
			metrics.Registry, metrics.RegistryRegisterMetric,
			"The time (in seconds) it takes to submit and confirm a registry transaction.",
			nil,
		),
		verificationCount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.Service,
			Name:      metrics.ServiceVerificationCount,
			Help:      "The number of processed age verification requests.",
		}, []string{"type", "status"}),
	}

	registerMetrics(pm)

	return pm
}

// KeyProvisioningTime records the time to provision the key pair.
func (pm *PromMetrics) KeyProvisioningTime(value time.Duration) {
	pm.keyProvisionTime.Observe(value.Seconds())

	logger.Debug("key provisioning time", log.WithDuration(value))
}

// WitnessComputationTime records the time of the compute-witness step.
func (pm *PromMetrics) WitnessComputationTime(value time.Duration) {
	pm.witnessTime.Observe(value.Seconds())

	logger.Debug("witness computation time", log.WithDuration(value))
}

// ProofGenerationTime records the time of the generate-proof step.
func (pm *PromMetrics) ProofGenerationTime(value time.Duration) {
	pm.proofTime.Observe(value.Seconds())

	logger.Debug("proof generation time", log.WithDuration(value))
}

// ProofVerificationTime records the time of the optional proof check.
func (pm *PromMetrics) ProofVerificationTime(value time.Duration) {
	pm.proofVerifyTime.Observe(value.Seconds())

	logger.Debug("proof verification time", log.WithDuration(value))
}

// RegistrationTime records the time of the registry write.
func (pm *PromMetrics) RegistrationTime(value time.Duration) {
	pm.registrationTime.Observe(value.Seconds())

	logger.Debug("registration time", log.WithDuration(value))
}

// VerificationCompleted counts a finished request by type and status.
func (pm *PromMetrics) VerificationCompleted(verificationType, status string) {
	pm.verificationCount.WithLabelValues(verificationType, status).Inc()
}

func registerMetrics(pm *PromMetrics) {
	prometheus.MustRegister(
		pm.keyProvisionTime, pm.witnessTime, pm.proofTime, pm.proofVerifyTime,
		pm.registrationTime, pm.verificationCount,
	)
}

func newHistogram(subsystem, name, help string, labels prometheus.Labels) prometheus.Histogram {
	return prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace:   metrics.Namespace,
		Subsystem:   subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: labels,
	})
}
