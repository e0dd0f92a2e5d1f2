package controllers

import (
	"github.com/cloudnest/cloudnest/pkg/domain"

	"github.com/gofiber/fiber/v3"
)

// TrashController handles the trash collection. The destructive
// operations require ?confirm=true; without it they no-op with a 400
// so the gate is observable.
type TrashController struct {
	fileService domain.FileService
}

type TrashControllerDependencies struct {
	FileService domain.FileService
}

func NewTrashController(deps TrashControllerDependencies) *TrashController {
	return &TrashController{
		fileService: deps.FileService,
	}
}

func (c *TrashController) List(ctx fiber.Ctx) error {
	items, err := c.fileService.Trash(ctx.RequestCtx())
	if err != nil {
		return statusError(err)
	}

	return ctx.JSON(items)
}

func (c *TrashController) PermanentDelete(ctx fiber.Ctx) error {
	trashID, err := pathID(ctx)
	if err != nil {
		return err
	}

	if err := c.fileService.PermanentDelete(ctx.RequestCtx(), domain.PermanentDeleteParams{
		TrashID:   trashID,
		Confirmed: ctx.Query("confirm") == "true",
	}); err != nil {
		return statusError(err)
	}

	return ctx.JSON(fiber.Map{"success": true})
}

func (c *TrashController) Empty(ctx fiber.Ctx) error {
	if err := c.fileService.EmptyTrash(ctx.RequestCtx(), domain.EmptyTrashParams{
		Confirmed: ctx.Query("confirm") == "true",
	}); err != nil {
		return statusError(err)
	}

	return ctx.JSON(fiber.Map{"success": true})
}
