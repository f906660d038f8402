package main

import (
	"embed"
	"net/http"
	"runtime/pprof"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/template/html/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/conectahub/conecta/pkg/log"
)

//go:embed templates
var templates embed.FS

type HttpServer struct {
	f    *fiber.App
	addr string
}

func NewHttpServer(app *App, addr string) *HttpServer {
	srv := &HttpServer{addr: addr}

	engine := html.NewFileSystem(http.FS(templates), ".html")
	engine.Delims("[[", "]]")

	srv.f = fiber.New(fiber.Config{
		EnablePrintRoutes:     false,
		DisableStartupMessage: true,
		Views:                 engine,
	})

	srv.f.Use(log.NewFiberLogger(&log.LoggerConfig{Name: "http", DoMetrics: true, LogErrorsOnly: true}))

	srv.f.Get("/", getIndexPageHandler())
	srv.f.Get("/aplicar", getApplyPageHandler())
	srv.f.Get("/cadastro/:token", getRegisterPageHandler())
	srv.f.Get("/admin/candidatos", getAdminApplicationsPageHandler())
	srv.f.Get("/admin/dashboard", getAdminDashboardPageHandler())

	admin := adminAuth(app.config.AdminToken())

	api := srv.f.Group("/api")
	api.Post("/applications", getApplicationPostHandler(app))
	api.Get("/applications", admin, getApplicationsListHandler(app))
	api.Get("/applications/:id", admin, getApplicationHandler(app))
	api.Post("/applications/:id/approve", admin, getApplicationApproveHandler(app))
	api.Post("/applications/:id/reject", admin, getApplicationRejectHandler(app))

	api.Post("/members", getMemberPostHandler(app))
	api.Get("/members", getMembersListHandler(app))
	api.Get("/members/:id", getMemberHandler(app))

	api.Get("/dashboard/stats", admin, getDashboardStatsHandler(app))

	srv.f.Get("/health", getHealthHandler(app))
	srv.f.Get("/stack", getStackHandler())
	srv.f.Get("/metrics", getMetricsHandler())

	return srv
}

func (srv *HttpServer) Address() string {
	return srv.addr
}

func (srv *HttpServer) Listen() error {
	return srv.f.Listen(srv.addr)
}

func (srv *HttpServer) Shutdown() error {
	return srv.f.ShutdownWithTimeout(time.Second * 5)
}

func getHealthHandler(app *App) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if err := app.dbm.Ping(); err != nil {
			return ctx.Status(fiber.StatusServiceUnavailable).JSON(&answer{
				Success: false,
				Data: fiber.Map{
					"status":    "unhealthy",
					"timestamp": time.Now().UTC().Format(time.RFC3339),
					"database":  "disconnected",
				},
				Error: &apiError{Code: "HEALTH_CHECK_FAILED", Message: "Erro ao verificar status da API"},
			})
		}

		return ok(ctx, fiber.Map{
			"status":    "healthy",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"database":  "connected",
			"version":   getVersion(),
		}, "API está funcionando corretamente")
	}
}

func getStackHandler() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		return pprof.Lookup("goroutine").WriteTo(ctx.Response().BodyWriter(), 1)
	}
}

func getMetricsHandler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(
		prometheus.DefaultGatherer,
		promhttp.HandlerOpts{DisableCompression: true},
	))
}
