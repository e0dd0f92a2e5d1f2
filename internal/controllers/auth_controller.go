package controllers

import (
	"github.com/cloudnest/cloudnest/pkg/domain"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"
)

type AuthController struct {
	sessionService domain.SessionService
}

type AuthControllerDependencies struct {
	SessionService domain.SessionService
}

func NewAuthController(deps AuthControllerDependencies) *AuthController {
	return &AuthController{
		sessionService: deps.SessionService,
	}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	User  domain.User `json:"user"`
	Token string      `json:"token"`
}

func (c *AuthController) Login(ctx fiber.Ctx) error {
	var req credentialsRequest

	if err := ctx.Bind().Body(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	session, err := c.sessionService.Login(ctx.RequestCtx(), req.Email, req.Password)
	if err != nil {
		return statusError(err)
	}

	return ctx.JSON(authResponse{User: session.User, Token: session.Token})
}

func (c *AuthController) Signup(ctx fiber.Ctx) error {
	var req credentialsRequest

	if err := ctx.Bind().Body(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	session, err := c.sessionService.Signup(ctx.RequestCtx(), req.Email, req.Password)
	if err != nil {
		return statusError(err)
	}

	return ctx.JSON(authResponse{User: session.User, Token: session.Token})
}

func (c *AuthController) Logout(ctx fiber.Ctx) error {
	if err := c.sessionService.Logout(ctx.RequestCtx()); err != nil {
		log.Error().Err(err).Msg("Failed to log out")
		return statusError(err)
	}

	return ctx.JSON(fiber.Map{"success": true})
}
