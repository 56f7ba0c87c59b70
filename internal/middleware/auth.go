package middleware

import (
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"

	"github.com/iwootapp/iwoot/pkg/dto"
	"github.com/iwootapp/iwoot/pkg/errs"
)

// Auth validates the bearer token and stashes it in the echo context under
// "user" for utils.ExtractTokenUser. The token's ownerID claim is the opaque
// identity every service call is scoped by.
func Auth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, "Bearer ") {
				return dto.WriteErrorResponse(c, errs.ErrNotLoggedIn, nil)
			}

			tokenString := strings.TrimPrefix(header, "Bearer ")
			token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !token.Valid {
				return dto.WriteErrorResponse(c, errs.ErrNotLoggedIn, nil)
			}

			c.Set("user", token)
			return next(c)
		}
	}
}
