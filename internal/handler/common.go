// Package handler contains the HTTP handlers of the rental management
// API. Handlers validate input before any write, delegate persistence to
// the repositories and translate sentinel errors into status codes:
// 400 validation, 401 authentication, 404 not found, 500 everything else.
package handler

import (
	"context"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

// dbTimeout bounds every database call issued by a handler.
const dbTimeout = 5 * time.Second

// reqContext derives a bounded context from the incoming request.
func reqContext(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), dbTimeout)
}

// pathID parses the named path parameter as an integer id.
func pathID(c echo.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}
