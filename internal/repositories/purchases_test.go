package repositories

import (
	"context"
	"testing"

	"detailing-platform/internal/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_PurchaseJoin_ShouldCompleteOnReachingTarget(t *testing.T) {
	store := newTestStore(t)
	purchases := NewPurchasesRepository(store)
	ctx := context.Background()

	purchase, err := purchases.Create(ctx, entities.CollectivePurchase{
		SupplierID:   "sup1",
		Product:      "NanoMagic shampoo 1L",
		TargetVolume: 100,
	})
	require.NoError(t, err)
	assert.Equal(t, entities.PurchaseActive, purchase.Status)
	assert.Zero(t, purchase.CurrentVolume)

	require.NoError(t, purchases.Join(ctx, purchase.ID, "emp1", "AutoShine Studio", 60))

	active, err := purchases.GetActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, 60, active[0].CurrentVolume)

	require.NoError(t, purchases.Join(ctx, purchase.ID, "emp2", "CleanCar Express", 40))

	all, err := purchases.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, 100, all[0].CurrentVolume)
	assert.Equal(t, entities.PurchaseCompleted, all[0].Status)

	active, err = purchases.GetActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)
}

func Test_PurchaseJoin_WhenRepeatJoin_ShouldIncrementQuantity(t *testing.T) {
	store := newTestStore(t)
	purchases := NewPurchasesRepository(store)
	ctx := context.Background()

	purchase, err := purchases.Create(ctx, entities.CollectivePurchase{SupplierID: "sup1", TargetVolume: 100})
	require.NoError(t, err)

	require.NoError(t, purchases.Join(ctx, purchase.ID, "emp1", "AutoShine Studio", 20))
	require.NoError(t, purchases.Join(ctx, purchase.ID, "emp1", "AutoShine Studio", 15))

	all, err := purchases.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Len(t, all[0].Participants, 1)
	assert.Equal(t, 35, all[0].Participants[0].Quantity)
	assert.Equal(t, 35, all[0].CurrentVolume)
}

func Test_PurchaseJoin_AfterCompletion_ShouldStayCompleted(t *testing.T) {
	store := newTestStore(t)
	purchases := NewPurchasesRepository(store)
	ctx := context.Background()

	purchase, err := purchases.Create(ctx, entities.CollectivePurchase{SupplierID: "sup1", TargetVolume: 50})
	require.NoError(t, err)

	require.NoError(t, purchases.Join(ctx, purchase.ID, "emp1", "AutoShine Studio", 50))
	require.NoError(t, purchases.Join(ctx, purchase.ID, "emp2", "CleanCar Express", 10))

	all, err := purchases.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, entities.PurchaseCompleted, all[0].Status)
	assert.Equal(t, 60, all[0].CurrentVolume)
}

func Test_PurchaseJoin_WhenUnknownPurchase_ShouldBeNoOp(t *testing.T) {
	store := newTestStore(t)
	purchases := NewPurchasesRepository(store)

	assert.NoError(t, purchases.Join(context.Background(), "missing", "emp1", "AutoShine Studio", 10))
}
