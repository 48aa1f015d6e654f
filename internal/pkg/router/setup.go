package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/subtrackr/subtrackr/app/repository"
	"github.com/subtrackr/subtrackr/internal/pkg/export"
)

// Router installs a set of routes on the fiber app
type Router interface {
	InstallRouter(app *fiber.App)
}

// Deps carries the explicitly constructed dependencies into the routers.
type Deps struct {
	Repos    *repository.Repositories
	Exporter *export.Client // nil when S3 export is disabled
}

// InstallRouter installs the HttpRouter first to initialize the session
// store, oauth providers and the global UserContext middleware, then the API
// routes which depend on that middleware.
func InstallRouter(app *fiber.App, deps Deps) {
	setup(app, NewHttpRouter(deps), NewApiRouter(deps))
}

func setup(app *fiber.App, router ...Router) {
	for _, r := range router {
		r.InstallRouter(app)
	}
}
