package repositories

import (
	"context"
	"time"

	"detailing-platform/internal/entities"
	"detailing-platform/internal/metrics"
	"detailing-platform/internal/storage"

	"github.com/samber/lo"
)

// Purchases owns the supplier group buys.
type Purchases struct {
	store *storage.Store
}

func NewPurchasesRepository(store *storage.Store) *Purchases {
	return &Purchases{store: store}
}

func (r *Purchases) GetAll(ctx context.Context) ([]entities.CollectivePurchase, error) {
	return storage.GetCollection[entities.CollectivePurchase](ctx, r.store, storage.KeyCollectivePurchases)
}

func (r *Purchases) GetActive(ctx context.Context) ([]entities.CollectivePurchase, error) {
	all, err := storage.GetCollection[entities.CollectivePurchase](ctx, r.store, storage.KeyCollectivePurchases)
	if err != nil {
		return nil, err
	}
	return lo.Filter(all, func(p entities.CollectivePurchase, _ int) bool { return p.Status == entities.PurchaseActive }), nil
}

func (r *Purchases) Create(ctx context.Context, purchase entities.CollectivePurchase) (*entities.CollectivePurchase, error) {
	metrics.RepositoryCalls.WithLabelValues("purchases", "create").Inc()

	all, err := storage.GetCollection[entities.CollectivePurchase](ctx, r.store, storage.KeyCollectivePurchases)
	if err != nil {
		return nil, err
	}

	purchase.ID = entities.NewID()
	purchase.Participants = []entities.PurchaseParticipant{}
	purchase.CurrentVolume = 0
	purchase.Status = entities.PurchaseActive

	if err = storage.SetCollection(ctx, r.store, storage.KeyCollectivePurchases, append(all, purchase)); err != nil {
		return nil, err
	}
	return &purchase, nil
}

// Join adds quantity to the user's participation, creating it when absent,
// then recomputes the current volume as the sum over all participants.
// Reaching the target volume completes the purchase for good; further joins
// keep accumulating but the status never reverts. An unknown purchase id is
// a silent no-op.
func (r *Purchases) Join(ctx context.Context, purchaseID, userID, userName string, quantity int) error {
	metrics.RepositoryCalls.WithLabelValues("purchases", "join").Inc()

	all, err := storage.GetCollection[entities.CollectivePurchase](ctx, r.store, storage.KeyCollectivePurchases)
	if err != nil {
		return err
	}

	_, idx, found := lo.FindIndexOf(all, func(p entities.CollectivePurchase) bool { return p.ID == purchaseID })
	if !found {
		return nil
	}

	joined := false
	for i := range all[idx].Participants {
		if all[idx].Participants[i].UserID == userID {
			all[idx].Participants[i].Quantity += quantity
			joined = true
			break
		}
	}
	if !joined {
		all[idx].Participants = append(all[idx].Participants, entities.PurchaseParticipant{
			UserID:   userID,
			UserName: userName,
			Quantity: quantity,
			JoinedAt: time.Now().UTC(),
		})
	}

	all[idx].CurrentVolume = lo.SumBy(all[idx].Participants, func(p entities.PurchaseParticipant) int { return p.Quantity })
	if all[idx].CurrentVolume >= all[idx].TargetVolume {
		all[idx].Status = entities.PurchaseCompleted
	}

	return storage.SetCollection(ctx, r.store, storage.KeyCollectivePurchases, all)
}
