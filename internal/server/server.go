package server

import (
	"net/http"

	"opsconsole/internal/config"
	"opsconsole/internal/handler"
	"opsconsole/internal/middleware"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

type Handlers struct {
	Order   *handler.OrderHandler
	Job     *handler.JobHandler
	Setting *handler.SettingHandler
}

// Start wires middleware and routes, then blocks on the listener.
func Start(cfg config.Config, h Handlers) error {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	if cfg.FEURL != "" {
		e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
			AllowOrigins:     []string{cfg.FEURL},
			AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
			AllowCredentials: true,
		}))
	}

	e.GET("/healthz", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	api := e.Group("/api", middleware.AuthJWT(cfg))
	h.Order.RegisterRoutes(api)
	h.Job.RegisterRoutes(api)
	h.Setting.RegisterRoutes(api)

	return e.Start(":" + cfg.Port)
}
