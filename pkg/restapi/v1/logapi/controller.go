/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package logapi

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/zkage/internal/logfields"
	"github.com/trustbloc/zkage/pkg/restapi/resterr"
)

const Path = "/loglevels"

var logger = log.New("logapi")

type Controller struct{}

type router interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

func NewController(router router) *Controller {
	c := &Controller{}

	router.GET(Path, c.GetLogLevels)
	router.POST(Path, c.PostLogLevels)

	return c
}

// GetLogLevels returns the active log spec as plain text.
// (GET /loglevels).
func (c *Controller) GetLogLevels(ctx echo.Context) error {
	return ctx.String(http.StatusOK, log.GetSpec())
}

// PostLogLevels updates log levels, e.g. "prover=DEBUG:INFO".
// (POST /loglevels).
func (c *Controller) PostLogLevels(ctx echo.Context) error {
	logLevelBytes, err := io.ReadAll(ctx.Request().Body)
	if err != nil {
		return fmt.Errorf("failed to read body: %w", err)
	}

	logLevels := strings.TrimSpace(string(logLevelBytes))

	if err = log.SetSpec(logLevels); err != nil {
		return resterr.NewValidationError("logLevels", fmt.Errorf("failed to set log spec: %w", err))
	}

	logger.Info("log levels modified", logfields.WithUserLogLevel(logLevels))

	return ctx.NoContent(http.StatusOK)
}
