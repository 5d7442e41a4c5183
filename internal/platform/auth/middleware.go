package auth

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Claims carried by portal access tokens. Subject holds the account id;
// DoctorID is set for doctor accounts only.
type Claims struct {
	jwt.RegisteredClaims
	DoctorID string   `json:"doctor_id,omitempty"`
	Roles    []string `json:"roles"`
}

// JWTConfig configures the bearer-token middleware.
type JWTConfig struct {
	Issuer     string
	SigningKey []byte
}

// JWTMiddleware validates the Authorization bearer token and stores the
// caller's identity on the echo context.
func JWTMiddleware(cfg JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}
			raw := strings.TrimPrefix(header, "Bearer ")

			claims := &Claims{}
			token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
				}
				return cfg.SigningKey, nil
			}, jwt.WithIssuer(cfg.Issuer))
			if err != nil || !token.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set("user_id", claims.Subject)
			c.Set("user_roles", claims.Roles)
			c.Set("doctor_id", claims.DoctorID)
			return next(c)
		}
	}
}

// DevAuthMiddleware grants every request the doctor role with a fixed
// identity. Development only.
func DevAuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("user_id", "dev-user")
			c.Set("user_roles", []string{"admin", "doctor", "patient"})
			if c.Get("doctor_id") == nil {
				c.Set("doctor_id", "")
			}
			return next(c)
		}
	}
}

// RequireRole rejects requests whose token carries none of the given roles.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userRoles, _ := c.Get("user_roles").([]string)
			for _, r := range userRoles {
				if allowed[r] {
					return next(c)
				}
			}
			return echo.NewHTTPError(http.StatusForbidden, "insufficient role")
		}
	}
}

// RequireDoctorMatch rejects doctor tokens whose identity differs from the
// :id path parameter. Admin tokens are not bound to a single doctor and pass
// through.
func RequireDoctorMatch() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userRoles, _ := c.Get("user_roles").([]string)
			for _, r := range userRoles {
				if r == "admin" {
					return next(c)
				}
			}
			id, ok := DoctorFromContext(c)
			if !ok || id.String() != c.Param("id") {
				return echo.NewHTTPError(http.StatusForbidden, "doctor id mismatch")
			}
			return next(c)
		}
	}
}

// DoctorFromContext returns the authenticated doctor's id, if any.
func DoctorFromContext(c echo.Context) (uuid.UUID, bool) {
	raw, _ := c.Get("doctor_id").(string)
	if raw == "" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
