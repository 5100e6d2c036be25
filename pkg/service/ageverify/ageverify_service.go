/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination service_mocks_test.go -package ageverify_test -source=ageverify_service.go -mock_names workDirManager=MockWorkDirManager,keyProvider=MockKeyProvider,zkProver=MockProver,registryWriter=MockRegistryWriter,eventPublisher=MockEventPublisher,metricsProvider=MockMetrics

package ageverify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/zkage/internal/logfields"
	"github.com/trustbloc/zkage/internal/workdir"
	"github.com/trustbloc/zkage/pkg/event/spi"
	"github.com/trustbloc/zkage/pkg/keyprovider"
	"github.com/trustbloc/zkage/pkg/observability/metrics"
	"github.com/trustbloc/zkage/pkg/registry"
	"github.com/trustbloc/zkage/pkg/restapi/resterr"
	"github.com/trustbloc/zkage/pkg/zkp/proof"
)

var logger = log.New("age-verification")

const eventSource = "zkage/age-verification"

type workDirManager interface {
	Acquire() (*workdir.Dir, error)
}

type keyProvider interface {
	Provision(ctx context.Context, workDir string) (*keyprovider.Material, error)
}

type zkProver interface {
	Prove(
		ctx context.Context,
		workDir string,
		material *keyprovider.Material,
		req *Request,
	) (*proof.Artifact, *Outcome, error)
}

type registryWriter interface {
	Register(ctx context.Context, reg *registry.Registration) (*registry.Receipt, error)
}

type eventPublisher interface {
	Publish(ctx context.Context, topic string, events ...*spi.Event) error
}

type metricsProvider interface {
	KeyProvisioningTime(value time.Duration)
	VerificationCompleted(verificationType, status string)
}

// Config defines dependencies for the age verification Service.
type Config struct {
	WorkDirs       workDirManager
	KeyProvider    keyProvider
	Prover         zkProver
	Registry       registryWriter
	EventPublisher eventPublisher
	EventTopic     string
	Metrics        metricsProvider
}

// Service runs the verification pipeline. It holds no per-request state, so one instance serves
// concurrent requests.
type Service struct {
	workDirs       workDirManager
	keyProvider    keyProvider
	prover         zkProver
	registry       registryWriter
	eventPublisher eventPublisher
	eventTopic     string
	metrics        metricsProvider
}

// New returns a new Service.
func New(config *Config) *Service {
	topic := config.EventTopic
	if topic == "" {
		topic = spi.AgeVerificationEventTopic
	}

	return &Service{
		workDirs:       config.WorkDirs,
		keyProvider:    config.KeyProvider,
		prover:         config.Prover,
		registry:       config.Registry,
		eventPublisher: config.EventPublisher,
		eventTopic:     topic,
		metrics:        config.Metrics,
	}
}

// Verify validates req, proves it in a fresh working directory and registers the outcome.
// Validation failures are *resterr.ValidationError and happen before any side effect; every
// other failure is a *resterr.ComponentError.
func (s *Service) Verify(ctx context.Context, req *Request) (*Result, error) {
	if err := ValidateRequest(req); err != nil {
		s.metrics.VerificationCompleted(req.VerificationType.String(), metrics.StatusRejected)

		return nil, err
	}

	res, err := s.verify(ctx, req)
	if err != nil {
		s.metrics.VerificationCompleted(req.VerificationType.String(), metrics.StatusFailed)

		return nil, err
	}

	s.metrics.VerificationCompleted(req.VerificationType.String(), metrics.StatusRegistered)

	return res, nil
}

func (s *Service) verify(ctx context.Context, req *Request) (*Result, error) {
	dir, err := s.workDirs.Acquire()
	if err != nil {
		return nil, resterr.NewComponentError(resterr.WorkDirComponent, "acquire", err)
	}

	defer func() {
		if rmErr := dir.Remove(); rmErr != nil {
			logger.Warnc(ctx, "Failed to remove work dir",
				log.WithError(rmErr), logfields.WithWorkDir(dir.Path()))
		}
	}()

	st := time.Now()

	material, err := s.keyProvider.Provision(ctx, dir.Path())
	if err != nil {
		return nil, resterr.NewComponentError(resterr.KeyProviderComponent, "provision", err)
	}

	s.metrics.KeyProvisioningTime(time.Since(st))

	art, outcome, err := s.prover.Prove(ctx, dir.Path(), material, req)
	if err != nil {
		return nil, resterr.NewComponentError(resterr.ProverComponent, "prove", err)
	}

	md := BuildMetadata(req, outcome)

	receipt, err := s.registry.Register(ctx, &registry.Registration{
		Subject:        req.Subject,
		Result:         outcome.Registered(),
		ExpirationDays: lo.FromPtr(req.ExpirationDays),
		Metadata:       md,
	})
	if err != nil {
		return nil, resterr.NewComponentError(resterr.RegistryComponent, "register", err)
	}

	logger.Infoc(ctx, "Age verification registered",
		logfields.WithVerificationID(receipt.VerificationID),
		logfields.WithVerificationType(int(req.VerificationType)),
		logfields.WithTransactionHash(receipt.TransactionHash),
	)

	res := &Result{
		VerificationID:  receipt.VerificationID,
		TransactionHash: receipt.TransactionHash,
		Outcome:         outcome,
		Metadata:        md,
		MetadataHash:    receipt.MetadataHash,
		ExpirationTime:  receipt.ExpirationTime,
		Proof:           art,
	}

	s.publish(ctx, req, res)

	return res, nil
}

// publish reports a registration. Failures are logged and never change the result.
func (s *Service) publish(ctx context.Context, req *Request, res *Result) {
	if s.eventPublisher == nil {
		return
	}

	payload, err := json.Marshal(&spi.RegisteredEventPayload{
		VerificationID:   res.VerificationID,
		VerificationType: int(req.VerificationType),
		Result:           res.Outcome.Registered(),
		BracketID:        int(res.Outcome.Bracket),
		ExpirationTime:   res.ExpirationTime,
		MetadataHash:     res.MetadataHash,
		Metadata:         res.Metadata,
	})
	if err != nil {
		logger.Errorc(ctx, "Failed to marshal registered event", log.WithError(err))

		return
	}

	event := spi.NewEventWithPayload(uuid.NewString(), eventSource, spi.AgeVerificationRegistered, payload)
	event.TransactionID = res.TransactionHash
	event.Subject = req.Subject

	if err = s.eventPublisher.Publish(ctx, s.eventTopic, event); err != nil {
		logger.Warnc(ctx, "Failed to publish registered event",
			log.WithError(err), logfields.WithVerificationID(res.VerificationID))
	}
}
