package controllers

import (
	"github.com/cloudnest/cloudnest/pkg/domain"

	"github.com/gofiber/fiber/v3"
)

type FolderController struct {
	folderService domain.FolderService
}

type FolderControllerDependencies struct {
	FolderService domain.FolderService
}

func NewFolderController(deps FolderControllerDependencies) *FolderController {
	return &FolderController{
		folderService: deps.FolderService,
	}
}

func (c *FolderController) List(ctx fiber.Ctx) error {
	folders, err := c.folderService.Folders(ctx.RequestCtx())
	if err != nil {
		return statusError(err)
	}

	return ctx.JSON(folders)
}

type folderRequest struct {
	Name string `json:"name"`
}

func (c *FolderController) Create(ctx fiber.Ctx) error {
	var req folderRequest

	if err := ctx.Bind().Body(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Folder name is required")
	}

	folder, err := c.folderService.Create(ctx.RequestCtx(), req.Name)
	if err != nil {
		return statusError(err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(folder)
}

func (c *FolderController) Rename(ctx fiber.Ctx) error {
	folderID, err := pathID(ctx)
	if err != nil {
		return err
	}

	var req folderRequest
	if err := ctx.Bind().Body(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Folder name is required")
	}

	folder, err := c.folderService.Rename(ctx.RequestCtx(), folderID, req.Name)
	if err != nil {
		return statusError(err)
	}

	return ctx.JSON(folder)
}

func (c *FolderController) Delete(ctx fiber.Ctx) error {
	folderID, err := pathID(ctx)
	if err != nil {
		return err
	}

	if err := c.folderService.Delete(ctx.RequestCtx(), folderID); err != nil {
		return statusError(err)
	}

	return ctx.JSON(fiber.Map{"success": true})
}
