package managers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudnest/cloudnest/pkg/domain"
)

func TestPlansCatalog(t *testing.T) {
	m := NewBillingManager(BillingManagerDependencies{})

	catalog, err := m.Plans(context.Background())
	require.NoError(t, err)
	require.Len(t, catalog, 3)

	assert.Equal(t, "free", catalog[0].ID)
	assert.Equal(t, 0.0, catalog[0].Price)
	assert.Equal(t, "forever", catalog[0].Period)

	assert.Equal(t, "pro", catalog[1].ID)
	assert.Equal(t, 9.99, catalog[1].Price)
	assert.True(t, catalog[1].Popular, "pro is the highlighted plan")

	assert.Equal(t, "enterprise", catalog[2].ID)
	assert.Equal(t, 29.99, catalog[2].Price)
	assert.Equal(t, "2 TB", catalog[2].Storage)
}

func TestCheckout(t *testing.T) {
	m := NewBillingManager(BillingManagerDependencies{})

	receipt, err := m.Checkout(context.Background(), domain.CheckoutParams{
		PlanID: "pro",
		Email:  "alice@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, "pro", receipt.PlanID)
	assert.Equal(t, 9.99, receipt.Amount)
	assert.Equal(t, "alice@example.com", receipt.Email)
	assert.NotEmpty(t, receipt.Reference)
	assert.Equal(t, domain.Today(), receipt.PaidAt)
}

func TestCheckoutValidation(t *testing.T) {
	m := NewBillingManager(BillingManagerDependencies{})

	_, err := m.Checkout(context.Background(), domain.CheckoutParams{
		PlanID: "pro",
		Email:  "not-an-email",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidRecipient)

	_, err = m.Checkout(context.Background(), domain.CheckoutParams{
		PlanID: "platinum",
		Email:  "alice@example.com",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidPlan)
}

func TestCheckoutReferencesUnique(t *testing.T) {
	m := NewBillingManager(BillingManagerDependencies{})

	first, err := m.Checkout(context.Background(), domain.CheckoutParams{PlanID: "free", Email: "a@b.co"})
	require.NoError(t, err)
	second, err := m.Checkout(context.Background(), domain.CheckoutParams{PlanID: "free", Email: "a@b.co"})
	require.NoError(t, err)

	assert.NotEqual(t, first.Reference, second.Reference)
}
