package middleware

import (
	"fmt"
	"strings"
	"time"

	"gde/config"
	"gde/database"
	"gde/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// Auth issues and verifies the stateless bearer tokens. Tokens are signed
// with a server-held secret and stay valid until expiry; there is no
// revocation list.
type Auth struct {
	secret []byte
	ttl    time.Duration
}

func NewAuth(cfg *config.Config) *Auth {
	return &Auth{
		secret: []byte(cfg.JWTSecret),
		ttl:    cfg.TokenTTL,
	}
}

// GenerateToken signs a token carrying the user's email as subject.
func (a *Auth) GenerateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub": user.Email,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(a.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.secret)
}

// Authenticate resolves the current user from the Authorization header and
// stores it in the request context. Every failure mode (missing header,
// malformed or expired token, unknown subject) collapses to the same 401
// so callers cannot probe for accounts.
func (a *Auth) Authenticate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return unauthenticated(c)
		}
		tokenString := authHeader[len("Bearer "):]

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return a.secret, nil
		})
		if err != nil || !token.Valid {
			return unauthenticated(c)
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return unauthenticated(c)
		}
		email, ok := claims["sub"].(string)
		if !ok || email == "" {
			return unauthenticated(c)
		}

		var user models.User
		if err := database.Database.Db.Where("email = ?", email).First(&user).Error; err != nil {
			return unauthenticated(c)
		}

		c.Locals("currentUser", &user)
		return c.Next()
	}
}

// RequireRole gates a route to the given roles. Must run after
// Authenticate. The check is flat set membership.
func (a *Auth) RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := CurrentUser(c)
		if !ok {
			return unauthenticated(c)
		}
		for _, role := range roles {
			if user.Role == role {
				return c.Next()
			}
		}
		return JsonResponse(c, fiber.StatusForbidden, false, "Not enough permissions!", nil)
	}
}

// CurrentUser returns the user resolved by Authenticate.
func CurrentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals("currentUser").(*models.User)
	return user, ok
}

func unauthenticated(c *fiber.Ctx) error {
	c.Set("WWW-Authenticate", "Bearer")
	return JsonResponse(c, fiber.StatusUnauthorized, false, "Could not validate credentials!", nil)
}
