/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package ageverify

import (
	"context"
	"fmt"

	"github.com/trustbloc/zkage/pkg/zkp/proof"
)

// VerificationType is the kind of age claim being proven.
type VerificationType int

const (
	SimpleAge  VerificationType = 1
	BirthDate  VerificationType = 2
	AgeBracket VerificationType = 3
)

// Valid reports whether t is one of the supported verification types.
func (t VerificationType) Valid() bool {
	return t == SimpleAge || t == BirthDate || t == AgeBracket
}

func (t VerificationType) String() string {
	switch t {
	case SimpleAge:
		return "simple_age"
	case BirthDate:
		return "birth_date"
	case AgeBracket:
		return "age_bracket"
	default:
		return fmt.Sprintf("VerificationType(%d)", int(t))
	}
}

// Bracket identifies an age bracket. The zero value means no bracket was assigned.
type Bracket int

const (
	BracketNone   Bracket = 0
	BracketChild  Bracket = 1
	BracketAdult  Bracket = 2
	BracketSenior Bracket = 3
)

// Label returns the human-readable bracket name.
func (b Bracket) Label() string {
	switch b {
	case BracketChild:
		return "Child (0-17)"
	case BracketAdult:
		return "Adult (18-64)"
	case BracketSenior:
		return "Senior (65+)"
	default:
		return ""
	}
}

// Request is a caller-supplied verification request. Optional fields are nil when absent.
type Request struct {
	VerificationType VerificationType
	Age              *int
	BirthDate        *int
	CurrentDate      *int
	Threshold        *int
	Subject          string
	ExpirationDays   *int
	Metadata         map[string]interface{}
}

// Outcome is the verification result derived from the request fields.
type Outcome struct {
	Result      bool
	Bracket     Bracket
	BracketName string
}

// Registered reports the boolean written to the registry. For age brackets any assigned
// bracket counts as a positive result.
func (o *Outcome) Registered() bool {
	return o.Result || o.Bracket > BracketNone
}

// Result is returned for an accepted and registered request.
type Result struct {
	VerificationID  string
	TransactionHash string
	Outcome         *Outcome
	Metadata        map[string]interface{}
	MetadataHash    string
	ExpirationTime  int64
	Proof           *proof.Artifact
}

// ServiceInterface runs one age verification end to end.
type ServiceInterface interface {
	Verify(ctx context.Context, req *Request) (*Result, error)
}
