// Package seed populates an empty store with demo records for every
// collection: accounts across all four roles, vacancies, gigs, orders,
// promos, a running group buy, graduated trainings and chat history.
// It runs once per store, gated by the dp_initialized sentinel.
package seed

import (
	"context"
	"time"

	"detailing-platform/internal/storage"

	log "github.com/sirupsen/logrus"
)

// Initialize seeds every collection unless the sentinel key is already set.
func Initialize(ctx context.Context, store *storage.Store) error {
	sentinel, err := storage.GetRecord[bool](ctx, store, storage.KeyInitialized)
	if err != nil {
		return err
	}
	if sentinel != nil && *sentinel {
		log.Debug("store already initialized, skipping seed")
		return nil
	}

	if err = storage.SetCollection(ctx, store, storage.KeyUsers, seedUsers()); err != nil {
		return err
	}
	if err = storage.SetCollection(ctx, store, storage.KeyVacancies, seedVacancies()); err != nil {
		return err
	}
	if err = storage.SetCollection(ctx, store, storage.KeyGigs, seedGigs()); err != nil {
		return err
	}
	if err = storage.SetCollection(ctx, store, storage.KeyClientOrders, seedOrders()); err != nil {
		return err
	}
	if err = storage.SetCollection(ctx, store, storage.KeyPromos, seedPromos()); err != nil {
		return err
	}
	if err = storage.SetCollection(ctx, store, storage.KeyCollectivePurchases, seedPurchases()); err != nil {
		return err
	}
	if err = storage.SetCollection(ctx, store, storage.KeyTrainingEnrollments, seedEnrollments()); err != nil {
		return err
	}
	if err = storage.SetCollection(ctx, store, storage.KeyChatMessages, seedChatMessages()); err != nil {
		return err
	}
	if err = storage.SetCollection(ctx, store, storage.KeyConversations, seedConversations()); err != nil {
		return err
	}
	if err = storage.SetCollection(ctx, store, storage.KeyMessages, seedMessages()); err != nil {
		return err
	}

	done := true
	if err = storage.SetRecord(ctx, store, storage.KeyInitialized, &done); err != nil {
		return err
	}

	log.Info("store seeded with demo data")
	return nil
}

func ts(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		log.Fatalf("bad seed timestamp %v: %v", value, err)
	}
	return t
}
