package controllers

import (
	"github.com/cloudnest/cloudnest/pkg/domain"

	"github.com/gofiber/fiber/v3"
)

// ActivityController serves the dashboard's realtime widgets from the
// simulated event feed.
type ActivityController struct {
	activityService domain.ActivityService
}

type ActivityControllerDependencies struct {
	ActivityService domain.ActivityService
}

func NewActivityController(deps ActivityControllerDependencies) *ActivityController {
	return &ActivityController{
		activityService: deps.ActivityService,
	}
}

func (c *ActivityController) Recent(ctx fiber.Ctx) error {
	events, err := c.activityService.Recent(ctx.RequestCtx())
	if err != nil {
		return statusError(err)
	}

	return ctx.JSON(events)
}

func (c *ActivityController) Presence(ctx fiber.Ctx) error {
	users, err := c.activityService.Presence(ctx.RequestCtx())
	if err != nil {
		return statusError(err)
	}

	return ctx.JSON(fiber.Map{"users": users})
}
