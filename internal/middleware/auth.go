package middleware

import (
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"elearning/internal/auth"
	"elearning/internal/dto"
	"elearning/internal/model"
	"elearning/internal/repository"
)

// identityKey is the echo context key under which the authenticated user
// is stored for the rest of the request.
const identityKey = "identity"

// Authenticate verifies the bearer token, resolves its subject against the
// user store, and stashes the loaded user in the request context. It never
// rejects a request: a missing, invalid, or expired token (or a subject
// that no longer exists) simply leaves the request unauthenticated, and
// the route guards decide whether that matters.
func Authenticate(jwtService *auth.JWTService, users repository.UserRepository) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		TokenLookup:            "header:" + echo.HeaderAuthorization + ":Bearer ",
		ContinueOnIgnoredError: true,
		ErrorHandler: func(c echo.Context, err error) error {
			// proceed unauthenticated on every failure branch
			return nil
		},
		ParseTokenFunc: func(c echo.Context, tokenString string) (interface{}, error) {
			claims, err := jwtService.Verify(tokenString)
			if err != nil {
				return nil, err
			}
			user, err := users.FindByEmail(c.Request().Context(), claims.Subject)
			if err != nil {
				return nil, err
			}
			c.Set(identityKey, user)
			return claims, nil
		},
	})
}

// CurrentUser returns the authenticated user for this request, or nil.
func CurrentUser(c echo.Context) *model.User {
	user, _ := c.Get(identityKey).(*model.User)
	return user
}

// RequireAuth rejects unauthenticated requests with 401.
func RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if CurrentUser(c) == nil {
			return c.JSON(http.StatusUnauthorized, dto.Response{
				StatusCode: http.StatusUnauthorized,
				Message:    "authentication required",
			})
		}
		return next(c)
	}
}

// RequireRole rejects requests whose authenticated user does not hold one
// of the given roles. Unauthenticated requests get 401, wrong role 403.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := CurrentUser(c)
			if user == nil {
				return c.JSON(http.StatusUnauthorized, dto.Response{
					StatusCode: http.StatusUnauthorized,
					Message:    "authentication required",
				})
			}
			if !allowed[user.Role] {
				return c.JSON(http.StatusForbidden, dto.Response{
					StatusCode: http.StatusForbidden,
					Message:    "insufficient role",
				})
			}
			return next(c)
		}
	}
}
