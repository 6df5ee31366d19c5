package repositories

import (
	"context"
	"time"

	"detailing-platform/internal/entities"
	"detailing-platform/internal/metrics"
	"detailing-platform/internal/storage"

	"github.com/samber/lo"
)

// Gigs owns the one-off job collection.
type Gigs struct {
	store *storage.Store
}

func NewGigsRepository(store *storage.Store) *Gigs {
	return &Gigs{store: store}
}

// GetAll returns active gigs only.
func (r *Gigs) GetAll(ctx context.Context) ([]entities.Gig, error) {
	all, err := storage.GetCollection[entities.Gig](ctx, r.store, storage.KeyGigs)
	if err != nil {
		return nil, err
	}
	return lo.Filter(all, func(g entities.Gig, _ int) bool { return g.Status == entities.GigActive }), nil
}

func (r *Gigs) GetByAuthor(ctx context.Context, authorID string) ([]entities.Gig, error) {
	all, err := storage.GetCollection[entities.Gig](ctx, r.store, storage.KeyGigs)
	if err != nil {
		return nil, err
	}
	return lo.Filter(all, func(g entities.Gig, _ int) bool { return g.AuthorID == authorID }), nil
}

func (r *Gigs) Create(ctx context.Context, gig entities.Gig) (*entities.Gig, error) {
	metrics.RepositoryCalls.WithLabelValues("gigs", "create").Inc()

	all, err := storage.GetCollection[entities.Gig](ctx, r.store, storage.KeyGigs)
	if err != nil {
		return nil, err
	}

	gig.ID = entities.NewID()
	gig.CreatedAt = time.Now().UTC()
	gig.Responses = []entities.GigResponse{}
	gig.Status = entities.GigActive

	if err = storage.SetCollection(ctx, r.store, storage.KeyGigs, append(all, gig)); err != nil {
		return nil, err
	}
	return &gig, nil
}

// Respond appends a pending response. Unlike vacancy applications there is
// no duplicate-response guard, and an unknown gig id is a silent no-op;
// both match the documented store behavior.
func (r *Gigs) Respond(ctx context.Context, gigID, responderID, responderName, message string) error {
	metrics.RepositoryCalls.WithLabelValues("gigs", "respond").Inc()

	all, err := storage.GetCollection[entities.Gig](ctx, r.store, storage.KeyGigs)
	if err != nil {
		return err
	}

	_, idx, found := lo.FindIndexOf(all, func(g entities.Gig) bool { return g.ID == gigID })
	if !found {
		return nil
	}

	all[idx].Responses = append(all[idx].Responses, entities.GigResponse{
		ID:            entities.NewID(),
		GigID:         gigID,
		ResponderID:   responderID,
		ResponderName: responderName,
		Message:       message,
		Status:        entities.ApplicationPending,
		CreatedAt:     time.Now().UTC(),
	})
	return storage.SetCollection(ctx, r.store, storage.KeyGigs, all)
}

// Delete removes the gig from the store entirely.
func (r *Gigs) Delete(ctx context.Context, id string) error {
	metrics.RepositoryCalls.WithLabelValues("gigs", "delete").Inc()

	all, err := storage.GetCollection[entities.Gig](ctx, r.store, storage.KeyGigs)
	if err != nil {
		return err
	}
	remaining := lo.Filter(all, func(g entities.Gig, _ int) bool { return g.ID != id })
	return storage.SetCollection(ctx, r.store, storage.KeyGigs, remaining)
}
