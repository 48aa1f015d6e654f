package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/subtrackr/subtrackr/app/repository"
	"github.com/subtrackr/subtrackr/internal/pkg/cache"
	"github.com/subtrackr/subtrackr/internal/pkg/database"
	"github.com/subtrackr/subtrackr/internal/pkg/env"
	"github.com/subtrackr/subtrackr/internal/pkg/export"
	"github.com/subtrackr/subtrackr/internal/pkg/router"
)

func main() {
	app := NewApplication()
	err := app.Listen(fmt.Sprintf("%s:%s", env.GetEnv("APP_HOST", "localhost"), env.GetEnv("APP_PORT", "4000")))
	log.Fatal(err)
}

func NewApplication() *fiber.App {
	env.SetupEnvFile()
	cache.SetupCache()

	db, err := database.SetupDatabase()
	if err != nil {
		log.Fatalf("database setup failed: %v", err)
	}
	repos := repository.NewRepositories(db)

	var exporter *export.Client
	if cfg, err := export.LoadConfig(); err != nil {
		log.Fatalf("export config invalid: %v", err)
	} else if cfg.IsEnabled() {
		exporter, err = export.NewClient(cfg)
		if err != nil {
			log.Fatalf("export client setup failed: %v", err)
		}
	}

	// Find the project root when started from cmd/subtrackr
	basePath := "./"
	for _, path := range []string{"./", "../../", "../../../"} {
		if _, err := os.Stat(path + "public"); !os.IsNotExist(err) {
			basePath = path
			break
		}
	}

	app := fiber.New(fiber.Config{
		AppName: "SubTrackr",
	})
	app.Use(recover.New(), logger.New())
	app.Get("/metrics", monitor.New())

	// SWAGGER / OPENAPI
	openAPICfg := swagger.Config{
		BasePath: "/docs/api/",
		FilePath: basePath + "public/docs/v1/openapi.yml",
		Path:     "v1",
	}
	app.Use(swagger.New(openAPICfg))

	// ROUTER
	router.InstallRouter(app, router.Deps{Repos: repos, Exporter: exporter})

	return app
}
