package controllers

import (
	"github.com/cloudnest/cloudnest/internal/store"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"
)

// AdminController exposes demo housekeeping.
type AdminController struct {
	store *store.Store
}

type AdminControllerDependencies struct {
	Store *store.Store
}

func NewAdminController(deps AdminControllerDependencies) *AdminController {
	return &AdminController{
		store: deps.Store,
	}
}

// Reset reseeds every collection with the demo catalog.
func (c *AdminController) Reset(ctx fiber.Ctx) error {
	c.store.Seed()
	log.Info().Msg("Reseeded demo data")

	return ctx.JSON(fiber.Map{"success": true})
}
