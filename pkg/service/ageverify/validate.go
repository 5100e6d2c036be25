/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package ageverify

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/trustbloc/zkage/pkg/restapi/resterr"
)

const (
	minDate = 1_01_01
	maxDate = 9999_12_31

	// MaxExpirationDays bounds expirationDays to one hundred years.
	MaxExpirationDays = 36500
)

// ValidateRequest checks a request before any side effect takes place.
// All failures are *resterr.ValidationError.
func ValidateRequest(req *Request) error {
	if strings.TrimSpace(req.Subject) == "" {
		return resterr.NewValidationError("subject", errors.New("Subject address is required"))
	}

	if !common.IsHexAddress(req.Subject) {
		return resterr.NewValidationError("subject", errors.New("Subject must be a valid account address"))
	}

	if !req.VerificationType.Valid() {
		return resterr.NewValidationError("verificationType", errors.New(
			"Invalid verification type. Must be 1 (SimpleAge), 2 (BirthDate), or 3 (AgeBracket)"))
	}

	if req.ExpirationDays != nil && *req.ExpirationDays < 0 {
		return resterr.NewValidationError("expirationDays", errors.New("expirationDays must be non-negative"))
	}

	if req.ExpirationDays != nil && *req.ExpirationDays > MaxExpirationDays {
		return resterr.NewValidationError("expirationDays",
			fmt.Errorf("expirationDays must not exceed %d", MaxExpirationDays))
	}

	switch req.VerificationType {
	case SimpleAge:
		if req.Age == nil || req.Threshold == nil {
			return resterr.NewValidationError("age",
				errors.New("Age and threshold are required for simple age verification"))
		}
	case BirthDate:
		if req.BirthDate == nil || req.CurrentDate == nil || req.Threshold == nil {
			return resterr.NewValidationError("birthDate",
				errors.New("Birth date, current date and threshold are required for birth date verification"))
		}

		if err := checkDate("birthDate", *req.BirthDate); err != nil {
			return err
		}

		if err := checkDate("currentDate", *req.CurrentDate); err != nil {
			return err
		}
	case AgeBracket:
		if req.Age == nil {
			return resterr.NewValidationError("age", errors.New("Age is required for age bracket verification"))
		}
	}

	if req.Age != nil && *req.Age < 0 {
		return resterr.NewValidationError("age", errors.New("age must be non-negative"))
	}

	// threshold is not an input of the bracket circuit
	if req.VerificationType != AgeBracket && req.Threshold != nil && *req.Threshold < 0 {
		return resterr.NewValidationError("threshold", errors.New("threshold must be non-negative"))
	}

	return nil
}

func checkDate(field string, d int) error {
	_, month, day := DecomposeDate(d)

	if d < minDate || d > maxDate || month < 1 || month > 12 || day < 1 || day > 31 {
		return resterr.NewValidationError(field, fmt.Errorf("%s must be a date in YYYYMMDD format", field))
	}

	return nil
}
