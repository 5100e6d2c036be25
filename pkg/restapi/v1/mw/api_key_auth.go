/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package mw

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

const (
	header     = "X-API-Key"
	queryParam = "code"
)

// Paths that stay reachable without a key so that probes and scrapers keep working.
var publicPaths = []string{"/healthcheck", "/ready", "/version", "/metrics"}

// APIKeyAuth returns a middleware that authenticates requests with a shared key. The key
// is read from the X-API-Key header, falling back to the "code" query parameter.
func APIKeyAuth(apiKey string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if isPublic(c.Request().URL.Path) {
				return next(c)
			}

			key := c.Request().Header.Get(header)
			if key == "" {
				key = c.QueryParam(queryParam)
			}

			if key == "" || subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) != 1 {
				return &echo.HTTPError{
					Code:    http.StatusUnauthorized,
					Message: "Unauthorized",
				}
			}

			return next(c)
		}
	}
}

func isPublic(path string) bool {
	path = strings.ToLower(strings.TrimSuffix(path, "/"))

	for _, p := range publicPaths {
		if strings.HasSuffix(path, p) || strings.Contains(path, p+"/") {
			return true
		}
	}

	return false
}
