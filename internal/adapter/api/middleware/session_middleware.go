package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const SessionHeader = "X-Session-ID"

// SessionMiddleware resolves the browsing session behind each request.
// There are no accounts: an absent or blank session header mints a fresh
// id, echoed back so the client can carry it forward.
type SessionMiddleware struct{}

func NewSessionMiddleware() *SessionMiddleware {
	return &SessionMiddleware{}
}

func (m *SessionMiddleware) Resolve(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sid := c.Request().Header.Get(SessionHeader)
		if sid == "" {
			sid = uuid.New().String()
		}

		c.Response().Header().Set(SessionHeader, sid)
		c.Set("sid", sid)

		return next(c)
	}
}
