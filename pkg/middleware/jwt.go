package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// Claims are the JWT claims this API issues and accepts.
type Claims struct {
	UserEmail string `json:"user_email"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

// JWTMiddleware validates the Authorization bearer token and stores the
// claims on the request context under "claims".
func JWTMiddleware(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error":   "missing_token",
					"message": "Authorization header is required",
				})
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error":   "invalid_token_format",
					"message": "Authorization header must be 'Bearer {token}'",
				})
			}

			claims := &Claims{}
			token, err := jwt.ParseWithClaims(parts[1], claims, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error":   "invalid_token",
					"message": "Token is invalid or expired",
				})
			}

			c.Set("claims", claims)
			return next(c)
		}
	}
}

// UserEmail extracts the authenticated user's email from the context, if any.
func UserEmail(c echo.Context) string {
	claims, ok := c.Get("claims").(*Claims)
	if !ok {
		return ""
	}
	return claims.UserEmail
}
