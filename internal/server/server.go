package server

import (
	"context"
	"time"

	"github.com/cloudnest/cloudnest/internal/controllers"
	"github.com/cloudnest/cloudnest/internal/middlewares"
	"github.com/cloudnest/cloudnest/internal/version"
	"github.com/cloudnest/cloudnest/pkg/domain"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/rs/zerolog/log"
)

type HTTPServerDependencies struct {
	SessionService     domain.SessionService
	AuthController     *controllers.AuthController
	FileController     *controllers.FileController
	TrashController    *controllers.TrashController
	FolderController   *controllers.FolderController
	BillingController  *controllers.BillingController
	ActivityController *controllers.ActivityController
	PageController     *controllers.PageController
	AdminController    *controllers.AdminController
}

func NewHTTPServer(ctx context.Context, deps HTTPServerDependencies) *fiber.App {
	router := fiber.New(fiber.Config{
		AppName: "cloudnest",
	})

	// Add basic middleware
	router.Use(cors.New())
	router.Use(logger.New())

	// Health check endpoint (no authentication required)
	router.Get("/health", func(c fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":    "healthy",
			"service":   "cloudnest",
			"version":   version.GetVersion(),
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	if deps.SessionService == nil {
		log.Fatal().Msg("Session service is nil, please set up the server with a session service")
	}

	// Page routes
	router.Get("/login", deps.PageController.Login)
	router.Get("/signup", deps.PageController.Signup)
	router.Get("/dashboard", deps.PageController.Dashboard)
	router.Get("/trash", deps.PageController.Trash)
	router.Get("/pricing", deps.PageController.Pricing)

	api := router.Group("/api")

	api.Post("/login", deps.AuthController.Login)
	api.Post("/signup", deps.AuthController.Signup)
	api.Post("/logout", deps.AuthController.Logout)

	api.Get("/files", deps.FileController.List)
	api.Get("/folders", deps.FolderController.List)
	api.Get("/trash", deps.TrashController.List)
	api.Get("/plans", deps.BillingController.Plans)
	api.Get("/activity", deps.ActivityController.Recent)
	api.Get("/presence", deps.ActivityController.Presence)

	// Mutations sit behind the demo session token
	authed := api.Group("", middlewares.SessionMiddleware(deps.SessionService))

	authed.Post("/files", deps.FileController.Upload)
	authed.Delete("/files/:id", deps.FileController.Delete)
	authed.Post("/files/:id/restore", deps.FileController.Restore)
	authed.Post("/files/:id/share", deps.FileController.Share)
	authed.Post("/files/:id/send", deps.FileController.Send)

	authed.Delete("/trash/:id", deps.TrashController.PermanentDelete)
	authed.Delete("/trash", deps.TrashController.Empty)

	authed.Post("/folders", deps.FolderController.Create)
	authed.Patch("/folders/:id", deps.FolderController.Rename)
	authed.Delete("/folders/:id", deps.FolderController.Delete)

	authed.Post("/checkout", deps.BillingController.Checkout)

	api.Post("/reset", deps.AdminController.Reset)

	// Everything else redirects to the login page
	router.Use(deps.PageController.RedirectToLogin)

	return router
}
