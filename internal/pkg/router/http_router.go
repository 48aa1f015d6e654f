package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/subtrackr/subtrackr/app/controllers"
	"github.com/subtrackr/subtrackr/internal/pkg/middleware"
	"github.com/subtrackr/subtrackr/internal/pkg/oauth"
	"github.com/subtrackr/subtrackr/internal/pkg/session"
)

type HttpRouter struct {
	deps Deps
}

func NewHttpRouter(deps Deps) *HttpRouter {
	return &HttpRouter{deps: deps}
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	// init session
	session.NewSessionStore()

	// init oauth providers
	oauth.Setup()

	// Apply UserContext middleware globally as first middleware
	app.Use(middleware.UserContextMiddleware)

	oauthCtrl := controllers.NewOAuthController(h.deps.Repos.User)
	app.Get("/auth/:provider", oauthCtrl.HandleOAuthLogin)
	app.Get("/auth/:provider/callback", oauthCtrl.HandleOAuthCallback)
	app.Get("/logout", oauthCtrl.HandleOAuthLogout)
}
