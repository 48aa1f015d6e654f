package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/subtrackr/subtrackr/internal/pkg/session"
	"github.com/subtrackr/subtrackr/internal/pkg/usercontext"
)

// UserContextMiddleware resolves the caller's identity from the session and
// sets up the user context for every request.
func UserContextMiddleware(c *fiber.Ctx) error {
	// Goth uses its own fiber session store and relies on per-request locals.
	// We skip our app session on /auth/* to prevent cross-store collisions.
	if strings.HasPrefix(c.Path(), "/auth/") {
		return c.Next()
	}

	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		setAnonymous(c)
		return c.Next()
	}

	userCtx, ok := identityFromSession(sess.Get(usercontext.KeyUserID), sess.Get(usercontext.KeyUserEmail))
	if !ok {
		setAnonymous(c)
		return c.Next()
	}

	c.Locals("USER_CONTEXT", userCtx)
	c.Locals(usercontext.KeyFromProtected, true)

	return c.Next()
}

// identityFromSession converts raw session values into a logged-in context.
// A missing, zero or foreign-typed user id yields no identity; stale session
// payloads must degrade to anonymous, never panic.
func identityFromSession(userID, email interface{}) (usercontext.UserContext, bool) {
	uid, ok := userID.(uint)
	if !ok || uid == 0 {
		return usercontext.UserContext{}, false
	}
	mail, _ := email.(string)
	return usercontext.UserContext{UserID: uid, Email: mail, IsLoggedIn: true}, true
}

func setAnonymous(c *fiber.Ctx) {
	c.Locals("USER_CONTEXT", usercontext.UserContext{IsLoggedIn: false})
	c.Locals(usercontext.KeyFromProtected, false)
}
