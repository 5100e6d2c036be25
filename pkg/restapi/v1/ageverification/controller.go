/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package ageverification

//go:generate mockgen -destination controller_mocks_test.go -package ageverification_test -source=controller.go -mock_names router=MockRouter,verificationService=MockVerificationService

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/zkage/internal/logfields"
	"github.com/trustbloc/zkage/pkg/restapi/v1/util"
	"github.com/trustbloc/zkage/pkg/service/ageverify"
)

const Path = "/age-verification"

var logger = log.New("age-verification-rest")

type router interface {
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

type verificationService interface {
	Verify(ctx context.Context, req *ageverify.Request) (*ageverify.Result, error)
}

// Controller exposes the age verification pipeline over HTTP.
type Controller struct {
	svc verificationService
}

func NewController(router router, svc verificationService) *Controller {
	c := &Controller{svc: svc}

	router.POST(Path, func(ctx echo.Context) error {
		return c.PostAgeVerification(ctx)
	})

	return c
}

// PostAgeVerification proves and registers an age claim.
// POST /age-verification.
func (c *Controller) PostAgeVerification(e echo.Context) error {
	var body VerificationRequest

	if err := util.ReadBody(e, &body); err != nil {
		return err
	}

	return util.WriteOutput(e)(c.verify(e.Request().Context(), &body))
}

func (c *Controller) verify(ctx context.Context, body *VerificationRequest) (*VerificationResponse, error) {
	res, err := c.svc.Verify(ctx, toRequest(body))
	if err != nil {
		return nil, err
	}

	logger.Debugc(ctx, "age verification registered",
		logfields.WithVerificationID(res.VerificationID),
		logfields.WithTransactionHash(res.TransactionHash),
	)

	return toResponse(ageverify.VerificationType(body.VerificationType), res), nil
}

func toRequest(body *VerificationRequest) *ageverify.Request {
	return &ageverify.Request{
		VerificationType: ageverify.VerificationType(body.VerificationType),
		Age:              body.Age,
		BirthDate:        body.BirthDate,
		CurrentDate:      body.CurrentDate,
		Threshold:        body.Threshold,
		Subject:          body.Subject,
		ExpirationDays:   body.ExpirationDays,
		Metadata:         body.Metadata,
	}
}

func toResponse(vt ageverify.VerificationType, res *ageverify.Result) *VerificationResponse {
	resp := &VerificationResponse{
		Success:         true,
		VerificationID:  res.VerificationID,
		TransactionHash: res.TransactionHash,
		Metadata:        res.Metadata,
		MetadataHash:    res.MetadataHash,
		ExpirationTime:  res.ExpirationTime,
		Proof:           res.Proof,
	}

	if vt == ageverify.AgeBracket {
		resp.Result = int(res.Outcome.Bracket)
		resp.BracketName = res.Outcome.BracketName
	} else {
		resp.Result = res.Outcome.Result
	}

	return resp
}
