package storage

import (
	"context"

	"detailing-platform/internal/metrics"

	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Collection and record keys. One key per entity-type collection, one
// singleton key for the active session, one sentinel key for seeding.
const (
	KeyUsers               = "dp_users"
	KeyCurrentUser         = "dp_current_user"
	KeyVacancies           = "dp_vacancies"
	KeyGigs                = "dp_gigs"
	KeyClientOrders        = "dp_client_orders"
	KeyConversations       = "dp_conversations"
	KeyMessages            = "dp_messages"
	KeyChatMessages        = "dp_chat_messages"
	KeyPromos              = "dp_promos"
	KeyReviews             = "dp_reviews"
	KeyCollectivePurchases = "dp_collective_purchases"
	KeyTrainingEnrollments = "dp_training_enrollments"
	KeyInitialized         = "dp_initialized"
)

// record is one named JSON payload. Every write replaces the whole value,
// so a collection update is all-or-nothing at this granularity.
type record struct {
	ID    string `gorm:"primaryKey"`
	Value []byte
}

func (record) TableName() string {
	return "records"
}

// Store is the persistence substrate: a durable key -> JSON blob table.
// It knows nothing about entity types; typed access goes through the
// generic GetCollection/SetCollection/GetRecord/SetRecord helpers.
type Store struct {
	db *gorm.DB
}

func NewStore(connectionString string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(connectionString), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite")
	}
	return &Store{db: db}, nil
}

func (s *Store) Migrate() error {
	if err := s.db.AutoMigrate(record{}); err != nil {
		return errors.Wrap(err, "failed to migrate record table")
	}
	return nil
}

// Load returns the stored payload for key, or nil if the key is absent.
func (s *Store) Load(ctx context.Context, key string) ([]byte, error) {
	metrics.StoreOps.WithLabelValues(key, "load").Inc()

	rec := &record{}
	err := s.db.WithContext(ctx).First(rec, "id = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec.Value, nil
}

func (s *Store) Save(ctx context.Context, key string, value []byte) error {
	metrics.StoreOps.WithLabelValues(key, "save").Inc()

	return s.db.WithContext(ctx).Save(record{
		ID:    key,
		Value: value,
	}).Error
}

func (s *Store) Remove(ctx context.Context, key string) error {
	metrics.StoreOps.WithLabelValues(key, "remove").Inc()

	return s.db.WithContext(ctx).Delete(&record{}, "id = ?", key).Error
}

func (s *Store) Close() error {
	db, err := s.db.DB()
	if err != nil {
		return err
	}
	return db.Close()
}
