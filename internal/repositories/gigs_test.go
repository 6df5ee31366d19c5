package repositories

import (
	"context"
	"testing"

	"detailing-platform/internal/entities"
	"detailing-platform/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_GigCreate_ShouldDefaultToActive(t *testing.T) {
	store := newTestStore(t)
	gigs := NewGigsRepository(store)
	ctx := context.Background()

	gig, err := gigs.Create(ctx, entities.Gig{
		AuthorID:   "emp1",
		AuthorName: "AutoShine Studio",
		Type:       entities.RoleEmployer,
		Title:      "Washer for one day",
	})
	require.NoError(t, err)

	assert.Equal(t, entities.GigActive, gig.Status)
	assert.Empty(t, gig.Responses)
}

func Test_GigRespond_AllowsDuplicateResponses(t *testing.T) {
	store := newTestStore(t)
	gigs := NewGigsRepository(store)
	ctx := context.Background()

	gig, err := gigs.Create(ctx, entities.Gig{AuthorID: "emp1", Type: entities.RoleEmployer, Title: "Shift"})
	require.NoError(t, err)

	require.NoError(t, gigs.Respond(ctx, gig.ID, "spec1", "Alexey", "can come"))
	require.NoError(t, gigs.Respond(ctx, gig.ID, "spec1", "Alexey", "still can"))

	mine, err := gigs.GetByAuthor(ctx, "emp1")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Len(t, mine[0].Responses, 2)
	for _, response := range mine[0].Responses {
		assert.Equal(t, entities.ApplicationPending, response.Status)
	}
}

func Test_GigRespond_WhenUnknownGig_ShouldBeNoOp(t *testing.T) {
	store := newTestStore(t)
	gigs := NewGigsRepository(store)

	assert.NoError(t, gigs.Respond(context.Background(), "missing", "spec1", "Alexey", "hi"))
}

func Test_GigGetAll_ShouldReturnActiveOnly(t *testing.T) {
	store := newTestStore(t)
	gigs := NewGigsRepository(store)
	ctx := context.Background()

	active, err := gigs.Create(ctx, entities.Gig{AuthorID: "emp1", Title: "Shift"})
	require.NoError(t, err)
	taken, err := gigs.Create(ctx, entities.Gig{AuthorID: "emp1", Title: "Other shift"})
	require.NoError(t, err)

	all, err := storage.GetCollection[entities.Gig](ctx, store, storage.KeyGigs)
	require.NoError(t, err)
	for i := range all {
		if all[i].ID == taken.ID {
			all[i].Status = entities.GigTaken
		}
	}
	require.NoError(t, storage.SetCollection(ctx, store, storage.KeyGigs, all))

	remaining, err := gigs.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, active.ID, remaining[0].ID)
}

func Test_GigDelete_ShouldRemoveFromStore(t *testing.T) {
	store := newTestStore(t)
	gigs := NewGigsRepository(store)
	ctx := context.Background()

	gig, err := gigs.Create(ctx, entities.Gig{AuthorID: "spec1", Type: entities.RoleSpecialist, Title: "Free Friday"})
	require.NoError(t, err)

	require.NoError(t, gigs.Delete(ctx, gig.ID))

	mine, err := gigs.GetByAuthor(ctx, "spec1")
	require.NoError(t, err)
	assert.Empty(t, mine)
}
