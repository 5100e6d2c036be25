/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package version

import (
	"net/http"
	"runtime"

	"github.com/labstack/echo/v4"
)

type router interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

type Config struct {
	Version       string
	ServerVersion string
	CircuitPath   string
}

type Controller struct {
	cfg Config
}

type versionResponse struct {
	Version string `json:"version"`
}

type systemVersionResponse struct {
	Version   string `json:"version"`
	GoVersion string `json:"goVersion"`
	Circuit   string `json:"circuit,omitempty"`
}

func NewController(router router, cfg Config) *Controller {
	c := &Controller{cfg: cfg}

	router.GET("/version", c.Version)
	router.GET("/version/system", c.ServerVersion)

	return c
}

func (c *Controller) Version(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, versionResponse{Version: c.cfg.Version})
}

// ServerVersion reports the server build together with the runtime and circuit in use.
func (c *Controller) ServerVersion(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, systemVersionResponse{
		Version:   c.cfg.ServerVersion,
		GoVersion: runtime.Version(),
		Circuit:   c.cfg.CircuitPath,
	})
}
