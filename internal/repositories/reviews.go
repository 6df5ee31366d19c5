package repositories

import (
	"context"
	"math"
	"time"

	"detailing-platform/internal/entities"
	"detailing-platform/internal/events"
	"detailing-platform/internal/metrics"
	"detailing-platform/internal/storage"

	"github.com/asaskevich/EventBus"
	"github.com/samber/lo"
)

// Reviews owns the review collection. Persisting a review recomputes the
// target's rating aggregate and publishes it as a ReviewRecorded event; the
// Users repository applies it to the user record.
type Reviews struct {
	store *storage.Store
	bus   EventBus.Bus
}

func NewReviewsRepository(store *storage.Store, bus EventBus.Bus) *Reviews {
	return &Reviews{store: store, bus: bus}
}

func (r *Reviews) GetByTarget(ctx context.Context, targetID string) ([]entities.Review, error) {
	all, err := storage.GetCollection[entities.Review](ctx, r.store, storage.KeyReviews)
	if err != nil {
		return nil, err
	}
	return lo.Filter(all, func(rv entities.Review, _ int) bool { return rv.TargetID == targetID }), nil
}

func (r *Reviews) Create(ctx context.Context, review entities.Review) (*entities.Review, error) {
	metrics.RepositoryCalls.WithLabelValues("reviews", "create").Inc()

	if review.Rating < 1 || review.Rating > 5 {
		return nil, ErrInvalidRating
	}

	all, err := storage.GetCollection[entities.Review](ctx, r.store, storage.KeyReviews)
	if err != nil {
		return nil, err
	}

	review.ID = entities.NewID()
	review.CreatedAt = time.Now().UTC()
	all = append(all, review)

	if err = storage.SetCollection(ctx, r.store, storage.KeyReviews, all); err != nil {
		return nil, err
	}

	targetReviews := lo.Filter(all, func(rv entities.Review, _ int) bool { return rv.TargetID == review.TargetID })
	sum := lo.SumBy(targetReviews, func(rv entities.Review) int { return rv.Rating })
	mean := float64(sum) / float64(len(targetReviews))

	r.bus.Publish(events.ReviewRecordedTopic, events.ReviewRecorded{
		TargetID:    review.TargetID,
		Rating:      math.Round(mean*10) / 10,
		ReviewCount: len(targetReviews),
	})

	return &review, nil
}
