/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package ageverify

import (
	"errors"
	"fmt"
)

const (
	adultAge  = 18
	seniorAge = 65
)

var (
	// ErrUnsupportedType is returned when a request reaches interpretation with an unmapped type.
	ErrUnsupportedType = errors.New("unsupported verification type")
	// ErrMissingField is returned when a type-specific field is absent.
	ErrMissingField = errors.New("missing required field")
	// ErrInvalidCircuitOutput is returned for circuit output codes outside the type's code set.
	ErrInvalidCircuitOutput = errors.New("invalid circuit output code")
)

// Circuit output codes written by the toolchain as the last public input.
const (
	CodeFail    int64 = 0
	CodePass    int64 = 1
	CodeInvalid int64 = 0
)

// DecomposeDate splits a YYYYMMDD integer into year, month and day.
func DecomposeDate(d int) (year, month, day int) {
	return d / 10000, (d % 10000) / 100, d % 100
}

// AgeFromDates returns the calendar age at currentDate of someone born on birthDate,
// both encoded as YYYYMMDD.
func AgeFromDates(birthDate, currentDate int) int {
	birthYear, birthMonth, birthDay := DecomposeDate(birthDate)
	currentYear, currentMonth, currentDay := DecomposeDate(currentDate)

	age := currentYear - birthYear

	if currentMonth < birthMonth || (currentMonth == birthMonth && currentDay < birthDay) {
		age--
	}

	return age
}

// BracketFor maps an age to its bracket.
func BracketFor(age int) Bracket {
	switch {
	case age < adultAge:
		return BracketChild
	case age < seniorAge:
		return BracketAdult
	default:
		return BracketSenior
	}
}

// Interpret derives the outcome of a validated request from its own fields.
// It is a pure function of the request.
func Interpret(req *Request) (*Outcome, error) {
	switch req.VerificationType {
	case SimpleAge:
		if req.Age == nil || req.Threshold == nil {
			return nil, fmt.Errorf("%w: age and threshold", ErrMissingField)
		}

		return &Outcome{Result: *req.Age >= *req.Threshold}, nil
	case BirthDate:
		if req.BirthDate == nil || req.CurrentDate == nil || req.Threshold == nil {
			return nil, fmt.Errorf("%w: birthDate, currentDate and threshold", ErrMissingField)
		}

		age := AgeFromDates(*req.BirthDate, *req.CurrentDate)

		return &Outcome{Result: age >= *req.Threshold}, nil
	case AgeBracket:
		if req.Age == nil {
			return nil, fmt.Errorf("%w: age", ErrMissingField)
		}

		bracket := BracketFor(*req.Age)

		return &Outcome{Bracket: bracket, BracketName: bracket.Label()}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedType, int(req.VerificationType))
	}
}

// DecodeCircuitOutput maps the circuit's numeric output code to an outcome.
// Threshold circuits emit 1 (pass) or 0 (fail). The bracket circuit emits the bracket
// id, or 0 when the input was rejected by the circuit.
func DecodeCircuitOutput(t VerificationType, code int64) (*Outcome, error) {
	switch t {
	case SimpleAge, BirthDate:
		switch code {
		case CodePass:
			return &Outcome{Result: true}, nil
		case CodeFail:
			return &Outcome{Result: false}, nil
		}
	case AgeBracket:
		switch bracket := Bracket(code); bracket {
		case BracketChild, BracketAdult, BracketSenior:
			return &Outcome{Bracket: bracket, BracketName: bracket.Label()}, nil
		case BracketNone:
			return nil, fmt.Errorf("%w: circuit rejected the input (code %d)", ErrInvalidCircuitOutput, CodeInvalid)
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedType, int(t))
	}

	return nil, fmt.Errorf("%w: %d for %s", ErrInvalidCircuitOutput, code, t)
}
