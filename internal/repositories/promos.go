package repositories

import (
	"context"

	"detailing-platform/internal/entities"
	"detailing-platform/internal/metrics"
	"detailing-platform/internal/storage"

	"github.com/samber/lo"
)

// Promos owns the partner discount codes. The repository only guards set
// membership in usedBy; maxUses and validity checks are left to the caller.
type Promos struct {
	store *storage.Store
}

func NewPromosRepository(store *storage.Store) *Promos {
	return &Promos{store: store}
}

func (r *Promos) GetAll(ctx context.Context) ([]entities.Promo, error) {
	return storage.GetCollection[entities.Promo](ctx, r.store, storage.KeyPromos)
}

func (r *Promos) Create(ctx context.Context, promo entities.Promo) (*entities.Promo, error) {
	metrics.RepositoryCalls.WithLabelValues("promos", "create").Inc()

	all, err := storage.GetCollection[entities.Promo](ctx, r.store, storage.KeyPromos)
	if err != nil {
		return nil, err
	}

	promo.ID = entities.NewID()
	promo.UsedBy = []string{}

	if err = storage.SetCollection(ctx, r.store, storage.KeyPromos, append(all, promo)); err != nil {
		return nil, err
	}
	return &promo, nil
}

// UsePromo records userID in the promo's usedBy set. Repeat uses and
// unknown promo ids are silent no-ops.
func (r *Promos) UsePromo(ctx context.Context, promoID, userID string) error {
	metrics.RepositoryCalls.WithLabelValues("promos", "use").Inc()

	all, err := storage.GetCollection[entities.Promo](ctx, r.store, storage.KeyPromos)
	if err != nil {
		return err
	}

	_, idx, found := lo.FindIndexOf(all, func(p entities.Promo) bool { return p.ID == promoID })
	if !found {
		return nil
	}

	if lo.Contains(all[idx].UsedBy, userID) {
		return nil
	}
	all[idx].UsedBy = append(all[idx].UsedBy, userID)
	return storage.SetCollection(ctx, r.store, storage.KeyPromos, all)
}
