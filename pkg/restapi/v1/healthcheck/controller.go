/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package healthcheck

import (
	"net/http"
	"time"

	"github.com/alexliesenfeld/health"
	"github.com/labstack/echo/v4"

	"github.com/trustbloc/zkage/pkg/observability/health/healthutil"
)

const (
	Path = "/healthcheck"

	defaultTimeout = 10 * time.Second
)

type router interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// Controller for health check API.
type Controller struct {
	handler http.Handler
}

// NewController registers GET /healthcheck backed by the given dependency checks.
// Checks run synchronously on every request.
func NewController(router router, checks []health.Check) *Controller {
	responseTimes := healthutil.NewResponseTimes()

	opts := []health.CheckerOption{
		health.WithCacheDuration(0),
		health.WithTimeout(defaultTimeout),
	}

	for _, check := range checks {
		opts = append(opts, health.WithCheck(check))
	}

	opts = append(opts, health.WithInterceptors(healthutil.ResponseTimeInterceptor(responseTimes)))

	checker := health.NewChecker(opts...)

	c := &Controller{
		handler: health.NewHandler(checker,
			health.WithResultWriter(healthutil.NewJSONResultWriter(responseTimes)),
		),
	}

	router.GET(Path, c.GetHealthcheck)

	return c
}

// GetHealthcheck returns the health check status.
// GET /healthcheck.
func (c *Controller) GetHealthcheck(ctx echo.Context) error {
	c.handler.ServeHTTP(ctx.Response(), ctx.Request())

	return nil
}
