/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination writer_mocks_test.go -package registry_test -source=writer.go -mock_names boundContract=MockBoundContract,receiptFetcher=MockReceiptFetcher,metricsProvider=MockMetrics

package registry

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/zkage/internal/logfields"
)

var logger = log.New("registry")

const (
	// DefaultTypeTag is the verification type tag the verifier is authorized for.
	DefaultTypeTag = "AGE_VERIFICATION"

	defaultReceiptTimeout = 2 * time.Minute
	defaultPollInterval   = 2 * time.Second
)

var (
	// ErrInvalidSubject is returned when the subject is not an account address.
	ErrInvalidSubject = errors.New("invalid subject address")
	// ErrVerifierNotAuthorized is returned when the registry does not accept the verifier for the type tag.
	ErrVerifierNotAuthorized = errors.New("verifier is not authorized")
	// ErrTransactionFailed is returned when the transaction was mined with a failure status.
	ErrTransactionFailed = errors.New("registration transaction failed")
	// ErrInvalidExpiration is returned when the expiration does not fit the registry's range.
	ErrInvalidExpiration = errors.New("invalid expiration")
)

type boundContract interface {
	Call(opts *bind.CallOpts, results *[]interface{}, method string, params ...interface{}) error
	Transact(opts *bind.TransactOpts, method string, params ...interface{}) (*types.Transaction, error)
}

type receiptFetcher interface {
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

type metricsProvider interface {
	RegistrationTime(value time.Duration)
}

// Registration is what gets written for one verification.
type Registration struct {
	Subject        string
	Result         bool
	ExpirationDays int
	Metadata       map[string]interface{}
}

// Receipt describes a confirmed registration.
type Receipt struct {
	VerificationID  string
	TransactionHash string
	ExpirationTime  int64
	Metadata        []byte
	MetadataHash    string
	BlockNumber     uint64
}

// Config defines dependencies for the Writer.
type Config struct {
	Contract           boundContract
	Receipts           receiptFetcher
	Signer             *bind.TransactOpts
	TypeTag            string
	CheckAuthorization bool
	ReceiptTimeout     time.Duration
	PollInterval       time.Duration
	Metrics            metricsProvider
	Now                func() time.Time
}

// Writer submits verification records to the registry contract with a pre-authorized verifier key.
type Writer struct {
	contract           boundContract
	receipts           receiptFetcher
	signer             *bind.TransactOpts
	typeTag            string
	checkAuthorization bool
	receiptTimeout     time.Duration
	pollInterval       time.Duration
	metrics            metricsProvider
	now                func() time.Time
}

// NewWriter returns a new Writer.
func NewWriter(config *Config) *Writer {
	w := &Writer{
		contract:           config.Contract,
		receipts:           config.Receipts,
		signer:             config.Signer,
		typeTag:            config.TypeTag,
		checkAuthorization: config.CheckAuthorization,
		receiptTimeout:     config.ReceiptTimeout,
		pollInterval:       config.PollInterval,
		metrics:            config.Metrics,
		now:                config.Now,
	}

	if w.typeTag == "" {
		w.typeTag = DefaultTypeTag
	}

	if w.receiptTimeout <= 0 {
		w.receiptTimeout = defaultReceiptTimeout
	}

	if w.pollInterval <= 0 {
		w.pollInterval = defaultPollInterval
	}

	if w.now == nil {
		w.now = time.Now
	}

	return w
}

// Verifier returns the address transactions are sent from.
func (w *Writer) Verifier() common.Address {
	return w.signer.From
}

// Register writes one record and waits until its transaction is mined. The transaction is
// submitted exactly once.
func (w *Writer) Register(ctx context.Context, reg *Registration) (*Receipt, error) {
	if !common.IsHexAddress(reg.Subject) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSubject, reg.Subject)
	}

	metadata, metadataHash, err := EncodeMetadata(reg.Metadata)
	if err != nil {
		return nil, err
	}

	expiration, err := ExpirationTime(w.now(), reg.ExpirationDays)
	if err != nil {
		return nil, err
	}

	if w.checkAuthorization {
		if err = w.authorized(ctx); err != nil {
			return nil, err
		}
	}

	id := newVerificationID()

	opts := *w.signer
	opts.Context = ctx

	st := time.Now()

	tx, err := w.contract.Transact(&opts, MethodRegisterVerification,
		common.HexToAddress(reg.Subject),
		w.typeTag,
		id,
		reg.Result,
		big.NewInt(expiration),
		string(metadata),
	)
	if err != nil {
		return nil, fmt.Errorf("submit registration: %w", err)
	}

	logger.Infoc(ctx, "Registration submitted",
		logfields.WithVerificationID(hexutil.Encode(id[:])),
		logfields.WithTransactionHash(tx.Hash().Hex()),
		logfields.WithSubject(reg.Subject),
	)

	receipt, err := w.waitMined(ctx, tx.Hash())
	if err != nil {
		return nil, err
	}

	w.metrics.RegistrationTime(time.Since(st))

	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, fmt.Errorf("%w: %s", ErrTransactionFailed, tx.Hash().Hex())
	}

	res := &Receipt{
		VerificationID:  hexutil.Encode(id[:]),
		TransactionHash: tx.Hash().Hex(),
		ExpirationTime:  expiration,
		Metadata:        metadata,
		MetadataHash:    metadataHash,
	}

	if receipt.BlockNumber != nil {
		res.BlockNumber = receipt.BlockNumber.Uint64()
	}

	return res, nil
}

func (w *Writer) authorized(ctx context.Context) error {
	var out []interface{}

	if err := w.contract.Call(&bind.CallOpts{Context: ctx, From: w.signer.From}, &out,
		MethodIsVerifierAuthorized, w.signer.From, w.typeTag); err != nil {
		return fmt.Errorf("check verifier authorization: %w", err)
	}

	if len(out) != 1 {
		return fmt.Errorf("check verifier authorization: unexpected result %v", out)
	}

	if ok, _ := out[0].(bool); !ok {
		return fmt.Errorf("%w: %s for %s", ErrVerifierNotAuthorized, w.signer.From.Hex(), w.typeTag)
	}

	return nil
}

func (w *Writer) waitMined(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	ctx, cancel := context.WithTimeout(ctx, w.receiptTimeout)
	defer cancel()

	var receipt *types.Receipt

	err := backoff.Retry(func() error {
		r, err := w.receipts.TransactionReceipt(ctx, txHash)
		if err != nil {
			if errors.Is(err, ethereum.NotFound) {
				return err
			}

			return backoff.Permanent(err)
		}

		receipt = r

		return nil
	}, backoff.WithContext(backoff.NewConstantBackOff(w.pollInterval), ctx))
	if err != nil {
		return nil, fmt.Errorf("wait for transaction %s: %w", txHash.Hex(), err)
	}

	return receipt, nil
}

func newVerificationID() [32]byte {
	return crypto.Keccak256Hash([]byte(uuid.NewString()))
}
