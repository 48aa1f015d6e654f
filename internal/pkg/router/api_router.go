package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/subtrackr/subtrackr/app/controllers"
	"github.com/subtrackr/subtrackr/internal/pkg/middleware"
)

type ApiRouter struct {
	deps Deps
}

func NewApiRouter(deps Deps) *ApiRouter {
	return &ApiRouter{deps: deps}
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group("/api", limiter.New())

	authCtrl := controllers.NewAuthController(h.deps.Repos.User)
	api.Post("/auth/register", authCtrl.HandleRegister)
	api.Post("/auth/login", authCtrl.HandleLogin)
	api.Post("/auth/logout", authCtrl.HandleLogout)
	api.Get("/auth/user", middleware.RequireAPISessionAuth, authCtrl.HandleGetUser)

	subCtrl := controllers.NewSubscriptionController(h.deps.Repos.Subscription, h.deps.Exporter)
	subs := api.Group("/subscriptions", middleware.RequireAPISessionAuth)
	subs.Get("/", subCtrl.HandleList)
	subs.Get("/upcoming", subCtrl.HandleUpcoming)
	subs.Get("/export", subCtrl.HandleExport)
	subs.Get("/:id", subCtrl.HandleGet)
	subs.Post("/", subCtrl.HandleCreate)
	subs.Put("/:id", subCtrl.HandleUpdate)
	subs.Delete("/:id", subCtrl.HandleDelete)

	settingsCtrl := controllers.NewSettingsController(h.deps.Repos.Settings)
	api.Get("/settings", middleware.RequireAPISessionAuth, settingsCtrl.HandleGet)
	api.Put("/settings", middleware.RequireAPISessionAuth, settingsCtrl.HandleUpdate)

	statsCtrl := controllers.NewStatsController(h.deps.Repos.Subscription)
	api.Get("/stats", middleware.RequireAPISessionAuth, statsCtrl.HandleStats)
}
