// Command consoled serves the console bundle and its configuration endpoint
// for local development.
package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/pinpoint-apm/pinpoint-console/internal/config"
	"github.com/pinpoint-apm/pinpoint-console/internal/configsrv"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	configsrv.NewHandler(cfg.Web, cfg.SSO, configsrv.NewStaticUsers(cfg.Users), logger).Register(e)

	e.Static("/", cfg.Server.StaticDir)
	e.GET("/healthz", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	logger.Info("server starting", "addr", cfg.Server.Addr, "static", cfg.Server.StaticDir)
	e.Logger.Fatal(e.Start(cfg.Server.Addr))
}
