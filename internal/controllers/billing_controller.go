package controllers

import (
	"github.com/cloudnest/cloudnest/internal/middlewares"
	"github.com/cloudnest/cloudnest/pkg/domain"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"
)

type BillingController struct {
	billingService domain.BillingService
}

type BillingControllerDependencies struct {
	BillingService domain.BillingService
}

func NewBillingController(deps BillingControllerDependencies) *BillingController {
	return &BillingController{
		billingService: deps.BillingService,
	}
}

func (c *BillingController) Plans(ctx fiber.Ctx) error {
	plans, err := c.billingService.Plans(ctx.RequestCtx())
	if err != nil {
		return statusError(err)
	}

	return ctx.JSON(plans)
}

type checkoutRequest struct {
	PlanID string `json:"planId"`
	Email  string `json:"email"`
}

func (c *BillingController) Checkout(ctx fiber.Ctx) error {
	var req checkoutRequest

	if err := ctx.Bind().Body(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	// The receipt goes to the logged-in user unless the request names
	// another address.
	if req.Email == "" {
		if session, ok := middlewares.SessionFromLocals(ctx); ok {
			req.Email = session.User.Email
		}
	}

	log.Info().Str("plan", req.PlanID).Msg("Processing checkout")

	receipt, err := c.billingService.Checkout(ctx.RequestCtx(), domain.CheckoutParams{
		PlanID: req.PlanID,
		Email:  req.Email,
	})
	if err != nil {
		return statusError(err)
	}

	return ctx.JSON(receipt)
}
