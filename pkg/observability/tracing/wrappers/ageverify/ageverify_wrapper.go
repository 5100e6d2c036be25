/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination gomocks_test.go -package ageverify . Service

package ageverify

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/trustbloc/zkage/pkg/observability/tracing/attributeutil"
	"github.com/trustbloc/zkage/pkg/service/ageverify"
)

var _ Service = (*Wrapper)(nil) // make sure Wrapper implements ageverify.ServiceInterface

type Service ageverify.ServiceInterface

type Wrapper struct {
	svc    Service
	tracer trace.Tracer
}

func Wrap(svc Service, tracer trace.Tracer) *Wrapper {
	return &Wrapper{svc: svc, tracer: tracer}
}

func (w *Wrapper) Verify(ctx context.Context, req *ageverify.Request) (*ageverify.Result, error) {
	ctx, span := w.tracer.Start(ctx, "ageverify.Verify")
	defer span.End()

	span.SetAttributes(attribute.Int("verification_type", int(req.VerificationType)))
	span.SetAttributes(attribute.String("subject", req.Subject))
	span.SetAttributes(attributeutil.JSON("request", req,
		attributeutil.WithRedacted("Age"),
		attributeutil.WithRedacted("BirthDate"),
		attributeutil.WithRedacted("CurrentDate"),
	))

	res, err := w.svc.Verify(ctx, req)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.String("verification_id", res.VerificationID))
	span.SetAttributes(attribute.String("transaction_hash", res.TransactionHash))

	return res, nil
}
