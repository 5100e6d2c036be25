/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package ageverification

import (
	"github.com/trustbloc/zkage/pkg/zkp/proof"
)

// VerificationRequest is the body of POST /age-verification.
type VerificationRequest struct {
	VerificationType int                    `json:"verificationType"`
	Age              *int                   `json:"age,omitempty"`
	BirthDate        *int                   `json:"birthDate,omitempty"`
	CurrentDate      *int                   `json:"currentDate,omitempty"`
	Threshold        *int                   `json:"threshold,omitempty"`
	Subject          string                 `json:"subject"`
	ExpirationDays   *int                   `json:"expirationDays,omitempty"`
	Metadata         map[string]interface{} `json:"metadata,omitempty"`
}

// VerificationResponse is returned once the verification is registered.
// Result holds a boolean for threshold checks and the bracket id for bracket checks.
type VerificationResponse struct {
	Success         bool                   `json:"success"`
	VerificationID  string                 `json:"verificationId"`
	TransactionHash string                 `json:"transactionHash"`
	Result          interface{}            `json:"result"`
	BracketName     string                 `json:"bracketName,omitempty"`
	Metadata        map[string]interface{} `json:"metadata"`
	MetadataHash    string                 `json:"metadataHash"`
	ExpirationTime  int64                  `json:"expirationTime"`
	Proof           *proof.Artifact        `json:"proof,omitempty"`
}
