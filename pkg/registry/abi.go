/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package registry

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Contract method names.
const (
	MethodRegisterVerification = "registerVerification"
	MethodIsVerifierAuthorized = "isVerifierAuthorized"
)

// VerificationRegistryABI is the subset of the verification registry contract used by the writer.
const VerificationRegistryABI = `[
  {
    "type": "function",
    "name": "registerVerification",
    "stateMutability": "nonpayable",
    "inputs": [
      {"name": "subject", "type": "address"},
      {"name": "verificationType", "type": "string"},
      {"name": "verificationId", "type": "bytes32"},
      {"name": "result", "type": "bool"},
      {"name": "expirationTime", "type": "uint256"},
      {"name": "metadata", "type": "string"}
    ],
    "outputs": []
  },
  {
    "type": "function",
    "name": "isVerifierAuthorized",
    "stateMutability": "view",
    "inputs": [
      {"name": "verifier", "type": "address"},
      {"name": "verificationType", "type": "string"}
    ],
    "outputs": [{"name": "", "type": "bool"}]
  },
  {
    "type": "event",
    "name": "VerificationRegistered",
    "anonymous": false,
    "inputs": [
      {"name": "verificationId", "type": "bytes32", "indexed": true},
      {"name": "subject", "type": "address", "indexed": true},
      {"name": "verifier", "type": "address", "indexed": true},
      {"name": "verificationType", "type": "string", "indexed": false},
      {"name": "result", "type": "bool", "indexed": false},
      {"name": "expirationTime", "type": "uint256", "indexed": false}
    ]
  }
]`

// NewBoundContract binds the registry ABI at address to backend.
func NewBoundContract(address string, backend bind.ContractBackend) (*bind.BoundContract, error) {
	if !common.IsHexAddress(address) {
		return nil, fmt.Errorf("invalid contract address %q", address)
	}

	parsed, err := abi.JSON(strings.NewReader(VerificationRegistryABI))
	if err != nil {
		return nil, fmt.Errorf("parse registry abi: %w", err)
	}

	return bind.NewBoundContract(common.HexToAddress(address), parsed, backend, backend, backend), nil
}

// NewSigner returns transact options signing with the hex encoded secp256k1 key for chainID.
func NewSigner(privateKeyHex string, chainID *big.Int) (*bind.TransactOpts, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(privateKeyHex, "0x"))
	if err != nil {
		return nil, fmt.Errorf("parse verifier private key: %w", err)
	}

	opts, err := bind.NewKeyedTransactorWithChainID(key, chainID)
	if err != nil {
		return nil, fmt.Errorf("create transactor: %w", err)
	}

	return opts, nil
}
