package repositories

import (
	"context"
	"testing"

	"detailing-platform/internal/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_PromoCreate_ShouldStartWithEmptyUsedBy(t *testing.T) {
	store := newTestStore(t)
	promos := NewPromosRepository(store)
	ctx := context.Background()

	promo, err := promos.Create(ctx, entities.Promo{
		CreatorID:   "sup1",
		CompanyName: "DetailPro Supply",
		Code:        "DETAIL15",
		Description: "15% off Koch Chemie",
		Discount:    "15%",
		MaxUses:     50,
		IsActive:    true,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, promo.ID)
	assert.Empty(t, promo.UsedBy)

	all, err := promos.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func Test_UsePromo_ShouldBeIdempotentPerUser(t *testing.T) {
	store := newTestStore(t)
	promos := NewPromosRepository(store)
	ctx := context.Background()

	promo, err := promos.Create(ctx, entities.Promo{CreatorID: "sup1", Code: "SHINE5FREE", IsActive: true})
	require.NoError(t, err)

	require.NoError(t, promos.UsePromo(ctx, promo.ID, "spec1"))
	require.NoError(t, promos.UsePromo(ctx, promo.ID, "spec1"))
	require.NoError(t, promos.UsePromo(ctx, promo.ID, "emp1"))

	all, err := promos.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, []string{"spec1", "emp1"}, all[0].UsedBy)
}

func Test_UsePromo_WhenUnknownPromo_ShouldBeNoOp(t *testing.T) {
	store := newTestStore(t)
	promos := NewPromosRepository(store)

	assert.NoError(t, promos.UsePromo(context.Background(), "missing", "spec1"))
}
