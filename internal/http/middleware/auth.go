package middleware

import (
	"crypto/sha256"
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
)

// AuthTokenHeader is the header the phone client sends its shared secret in.
const AuthTokenHeader = "X-Auth-Token"

// openPaths can be probed without credentials; health checks must work
// before the client has its token configured.
var openPaths = map[string]bool{
	"/status":  true,
	"/metrics": true,
}

// Auth validates the shared-secret header on every request except the open
// paths. Tokens are compared in constant time so a mismatch reveals nothing
// about the secret, and an optional source-IP allow-list rejects requests
// from outside the expected overlay network.
//
// No handler behind this middleware runs on rejection, so an unauthorized
// request can never cause a file write.
func Auth(token string, allowedIPs []string) fiber.Handler {
	want := sha256.Sum256([]byte(token))

	allowed := make(map[string]bool, len(allowedIPs))
	for _, ip := range allowedIPs {
		allowed[ip] = true
	}

	return func(c *fiber.Ctx) error {
		if openPaths[c.Path()] {
			return c.Next()
		}

		if len(allowed) > 0 && !allowed[c.IP()] {
			return fiber.NewError(fiber.StatusForbidden, "source address not allowed")
		}

		got := sha256.Sum256([]byte(c.Get(AuthTokenHeader)))
		if subtle.ConstantTimeCompare(got[:], want[:]) != 1 {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid or missing auth token")
		}

		return c.Next()
	}
}
