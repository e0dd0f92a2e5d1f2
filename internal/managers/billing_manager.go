package managers

import (
	"context"
	"time"

	"github.com/cloudnest/cloudnest/pkg/domain"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var plans = []domain.Plan{
	{
		ID:      "free",
		Name:    "Free",
		Price:   0,
		Period:  "forever",
		Storage: "15 GB",
		Features: []string{
			"15 GB storage",
			"Basic file sharing",
			"Mobile app access",
			"Email support",
		},
	},
	{
		ID:      "pro",
		Name:    "Pro",
		Price:   9.99,
		Period:  "/month",
		Storage: "100 GB",
		Features: []string{
			"100 GB storage",
			"Advanced sharing controls",
			"Priority support",
			"File versioning",
			"Custom branding",
		},
		Popular: true,
	},
	{
		ID:      "enterprise",
		Name:    "Enterprise",
		Price:   29.99,
		Period:  "/month",
		Storage: "2 TB",
		Features: []string{
			"2 TB storage",
			"Team collaboration",
			"Admin console",
			"SSO integration",
			"Audit logs",
			"Dedicated support",
		},
	},
}

// BillingManager serves the pricing catalog and a checkout that only
// pretends to process payment.
type BillingManager struct {
	processingDelay time.Duration
}

type BillingManagerDependencies struct {
	ProcessingDelay time.Duration
}

func NewBillingManager(deps BillingManagerDependencies) *BillingManager {
	return &BillingManager{
		processingDelay: deps.ProcessingDelay,
	}
}

func (m *BillingManager) Plans(ctx context.Context) ([]domain.Plan, error) {
	return append([]domain.Plan(nil), plans...), nil
}

func (m *BillingManager) Checkout(ctx context.Context, params domain.CheckoutParams) (domain.Receipt, error) {
	if !emailPattern.MatchString(params.Email) {
		return domain.Receipt{}, domain.ErrInvalidRecipient
	}

	var plan *domain.Plan
	for i := range plans {
		if plans[i].ID == params.PlanID {
			plan = &plans[i]
			break
		}
	}
	if plan == nil {
		return domain.Receipt{}, domain.ErrInvalidPlan
	}

	if err := simulateLatency(ctx, m.processingDelay); err != nil {
		return domain.Receipt{}, err
	}

	receipt := domain.Receipt{
		Reference: uuid.NewString(),
		PlanID:    plan.ID,
		Email:     params.Email,
		Amount:    plan.Price,
		PaidAt:    domain.Today(),
	}

	log.Info().Str("plan", plan.ID).Str("reference", receipt.Reference).Msg("Checkout completed")
	return receipt, nil
}
