/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination prover_mocks_test.go -package prover_test -source=prover.go -mock_names runner=MockRunner,metricsProvider=MockMetrics

package prover

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/zkage/internal/logfields"
	"github.com/trustbloc/zkage/pkg/keyprovider"
	"github.com/trustbloc/zkage/pkg/service/ageverify"
	"github.com/trustbloc/zkage/pkg/zkp/proof"
	"github.com/trustbloc/zkage/pkg/zkp/toolchain"
)

var logger = log.New("prover")

// Toolchain subcommands.
const (
	CmdComputeWitness = "compute-witness"
	CmdGenerateProof  = "generate-proof"
	CmdVerify         = "verify"
)

// Files written by the toolchain into the working directory.
const (
	WitnessFile = "witness"
	ProofFile   = "proof.json"
)

const verifyPassedMarker = "PASSED"

// ErrProofCheck is returned when a generated proof does not pass the configured check.
var ErrProofCheck = errors.New("proof check failed")

// CheckMode selects how a generated proof is checked before it is returned.
type CheckMode string

const (
	// CheckNone returns the proof as generated.
	CheckNone CheckMode = "none"
	// CheckVerify runs the toolchain verifier with the verification key.
	CheckVerify CheckMode = "verify"
	// CheckStrict additionally requires the circuit output to agree with the computed outcome.
	CheckStrict CheckMode = "strict"
)

// ParseCheckMode parses a proof check mode; an empty string means CheckNone.
func ParseCheckMode(s string) (CheckMode, error) {
	switch m := CheckMode(strings.ToLower(s)); m {
	case "":
		return CheckNone, nil
	case CheckNone, CheckVerify, CheckStrict:
		return m, nil
	default:
		return "", fmt.Errorf("unsupported proof check mode %q", s)
	}
}

type runner interface {
	Run(ctx context.Context, dir string, args ...string) (*toolchain.Result, error)
}

type metricsProvider interface {
	WitnessComputationTime(value time.Duration)
	ProofGenerationTime(value time.Duration)
	ProofVerificationTime(value time.Duration)
}

// Config defines dependencies for the Prover.
type Config struct {
	Runner      runner
	CircuitPath string
	CheckMode   CheckMode
	Metrics     metricsProvider
}

// Prover drives witness computation and proof generation for one request at a time
// in the request's working directory.
type Prover struct {
	runner      runner
	circuitPath string
	checkMode   CheckMode
	metrics     metricsProvider
}

// New returns a new Prover.
func New(config *Config) *Prover {
	mode := config.CheckMode
	if mode == "" {
		mode = CheckNone
	}

	return &Prover{
		runner:      config.Runner,
		circuitPath: config.CircuitPath,
		checkMode:   mode,
		metrics:     config.Metrics,
	}
}

// Arguments returns the positional witness arguments for req. The last argument is
// always the numeric verification type.
func Arguments(req *ageverify.Request) ([]string, error) {
	var args []int

	switch req.VerificationType {
	case ageverify.SimpleAge:
		if req.Age == nil || req.Threshold == nil {
			return nil, fmt.Errorf("%w: age and threshold", ageverify.ErrMissingField)
		}

		args = []int{*req.Age, *req.Threshold, int(ageverify.SimpleAge)}
	case ageverify.BirthDate:
		if req.BirthDate == nil || req.CurrentDate == nil || req.Threshold == nil {
			return nil, fmt.Errorf("%w: birthDate, currentDate and threshold", ageverify.ErrMissingField)
		}

		args = []int{*req.BirthDate, *req.CurrentDate, *req.Threshold, int(ageverify.BirthDate)}
	case ageverify.AgeBracket:
		if req.Age == nil {
			return nil, fmt.Errorf("%w: age", ageverify.ErrMissingField)
		}

		args = []int{*req.Age, 0, int(ageverify.AgeBracket)}
	default:
		return nil, fmt.Errorf("%w: %d", ageverify.ErrUnsupportedType, int(req.VerificationType))
	}

	out := make([]string, len(args))
	for i, a := range args {
		out[i] = strconv.Itoa(a)
	}

	return out, nil
}

// Prove computes the witness, generates the proof, and returns it together with the
// outcome derived from the request.
func (p *Prover) Prove(
	ctx context.Context,
	workDir string,
	material *keyprovider.Material,
	req *ageverify.Request,
) (*proof.Artifact, *ageverify.Outcome, error) {
	args, err := Arguments(req)
	if err != nil {
		return nil, nil, err
	}

	outcome, err := ageverify.Interpret(req)
	if err != nil {
		return nil, nil, err
	}

	st := time.Now()

	if _, err = p.runner.Run(ctx, workDir,
		append([]string{CmdComputeWitness, "-i", p.circuitPath, "-o", WitnessFile, "-a"}, args...)...,
	); err != nil {
		return nil, nil, fmt.Errorf("compute witness: %w", err)
	}

	p.metrics.WitnessComputationTime(time.Since(st))

	st = time.Now()

	if _, err = p.runner.Run(ctx, workDir,
		CmdGenerateProof, "-i", p.circuitPath, "-w", WitnessFile, "-p", material.ProvingKeyPath, "-j", ProofFile,
	); err != nil {
		return nil, nil, fmt.Errorf("generate proof: %w", err)
	}

	p.metrics.ProofGenerationTime(time.Since(st))

	raw, err := os.ReadFile(filepath.Join(workDir, ProofFile))
	if err != nil {
		return nil, nil, fmt.Errorf("read proof: %w", err)
	}

	art, err := proof.Parse(raw)
	if err != nil {
		return nil, nil, err
	}

	if err = art.Validate(); err != nil {
		return nil, nil, err
	}

	if err = p.check(ctx, workDir, material, req.VerificationType, art, outcome); err != nil {
		return nil, nil, err
	}

	logger.Debugc(ctx, "Proof generated",
		logfields.WithVerificationType(int(req.VerificationType)),
		logfields.WithWorkDir(workDir),
	)

	return art, outcome, nil
}

func (p *Prover) check(
	ctx context.Context,
	workDir string,
	material *keyprovider.Material,
	t ageverify.VerificationType,
	art *proof.Artifact,
	outcome *ageverify.Outcome,
) error {
	if p.checkMode == CheckNone {
		return nil
	}

	st := time.Now()

	res, err := p.runner.Run(ctx, workDir, CmdVerify, "-v", material.VerificationKeyPath, "-j", ProofFile)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrProofCheck, err)
	}

	p.metrics.ProofVerificationTime(time.Since(st))

	if !strings.Contains(string(res.Stdout), verifyPassedMarker) {
		return fmt.Errorf("%w: verifier did not accept the proof", ErrProofCheck)
	}

	if p.checkMode != CheckStrict {
		return nil
	}

	code, err := art.OutputCode()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrProofCheck, err)
	}

	decoded, err := ageverify.DecodeCircuitOutput(t, code)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrProofCheck, err)
	}

	if decoded.Result != outcome.Result || decoded.Bracket != outcome.Bracket {
		return fmt.Errorf("%w: circuit output %d disagrees with the computed outcome", ErrProofCheck, code)
	}

	return nil
}
