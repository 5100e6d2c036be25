/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/trustbloc/logutil-go/pkg/log"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/trustbloc/zkage/internal/logfields"
	"github.com/trustbloc/zkage/pkg/restapi/resterr"
)

var logger = log.New("rest-err")

type httpError interface {
	HTTPCodeMsg() (int, interface{})
}

// HTTPErrorHandler is the single place where request failures become HTTP responses.
func HTTPErrorHandler(tracer trace.Tracer) func(err error, c echo.Context) {
	return func(err error, c echo.Context) {
		ctx, span := tracer.Start(c.Request().Context(), "HTTPErrorHandler")
		defer span.End()

		code, message := processError(err)

		span.SetStatus(codes.Error, err.Error())
		span.RecordError(err)

		fields := []zap.Field{
			log.WithURL(c.Request().RequestURI),
			log.WithHTTPStatus(code),
			logfields.WithAdditionalMessage(err.Error()),
		}

		if code >= http.StatusInternalServerError {
			logger.Errorc(ctx, "HTTP Error Handler", fields...)
		} else {
			logger.Warnc(ctx, "HTTP Error Handler", fields...)
		}

		sendResponse(c, code, message)
	}
}

func sendResponse(c echo.Context, code int, message interface{}) {
	if c.Response().Committed {
		return
	}

	var err error

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, message)
	}

	if err != nil {
		logger.Errorc(c.Request().Context(), "write http response", log.WithError(err))
	}
}

func processError(err error) (int, interface{}) {
	var echoHTTPError *echo.HTTPError
	if errors.As(err, &echoHTTPError) {
		message := fmt.Sprintf("%v", echoHTTPError.Message)
		if echoHTTPError.Internal != nil {
			message = err.Error()
		}

		return echoHTTPError.Code, &resterr.ErrorResponse{Error: message}
	}

	var restErr httpError
	if errors.As(err, &restErr) {
		return restErr.HTTPCodeMsg()
	}

	return http.StatusInternalServerError, &resterr.ErrorResponse{Error: err.Error()}
}
