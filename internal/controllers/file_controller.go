package controllers

import (
	"strconv"

	"github.com/cloudnest/cloudnest/pkg/domain"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"
)

// FileController handles the file collection and its mutations.
type FileController struct {
	fileService domain.FileService
}

type FileControllerDependencies struct {
	FileService domain.FileService
}

func NewFileController(deps FileControllerDependencies) *FileController {
	return &FileController{
		fileService: deps.FileService,
	}
}

func (c *FileController) List(ctx fiber.Ctx) error {
	files, err := c.fileService.Files(ctx.RequestCtx())
	if err != nil {
		return statusError(err)
	}

	return ctx.JSON(files)
}

func (c *FileController) Upload(ctx fiber.Ctx) error {
	var req domain.UploadRequest

	if err := ctx.Bind().Body(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	log.Info().Str("name", req.Name).Str("content_type", req.ContentType).Msg("Starting upload")

	file, err := c.fileService.Upload(ctx.RequestCtx(), domain.UploadParams{Request: req})
	if err != nil {
		return statusError(err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(file)
}

func (c *FileController) Delete(ctx fiber.Ctx) error {
	fileID, err := pathID(ctx)
	if err != nil {
		return err
	}

	if err := c.fileService.Delete(ctx.RequestCtx(), fileID); err != nil {
		return statusError(err)
	}

	return ctx.JSON(fiber.Map{"success": true})
}

func (c *FileController) Restore(ctx fiber.Ctx) error {
	trashID, err := pathID(ctx)
	if err != nil {
		return err
	}

	file, err := c.fileService.Restore(ctx.RequestCtx(), trashID)
	if err != nil {
		return statusError(err)
	}

	return ctx.JSON(file)
}

type shareRequest struct {
	Email      string                 `json:"email"`
	Permission domain.SharePermission `json:"permission"`
}

func (c *FileController) Share(ctx fiber.Ctx) error {
	fileID, err := pathID(ctx)
	if err != nil {
		return err
	}

	var req shareRequest
	if err := ctx.Bind().Body(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	result, err := c.fileService.Share(ctx.RequestCtx(), domain.ShareParams{
		FileID:     fileID,
		Email:      req.Email,
		Permission: req.Permission,
	})
	if err != nil {
		return statusError(err)
	}

	return ctx.JSON(fiber.Map{
		"success":   true,
		"shareLink": result.ShareLink,
	})
}

type sendRequest struct {
	Method    domain.SendMethod `json:"method"`
	Recipient string            `json:"recipient"`
}

func (c *FileController) Send(ctx fiber.Ctx) error {
	fileID, err := pathID(ctx)
	if err != nil {
		return err
	}

	var req sendRequest
	if err := ctx.Bind().Body(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := c.fileService.Send(ctx.RequestCtx(), domain.SendParams{
		FileID:    fileID,
		Method:    req.Method,
		Recipient: req.Recipient,
	}); err != nil {
		return statusError(err)
	}

	return ctx.JSON(fiber.Map{"success": true})
}

func pathID(ctx fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	return id, nil
}
