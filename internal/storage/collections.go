package storage

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// GetCollection returns the stored sequence under key. An absent key and an
// unparsable payload both yield an empty sequence; a parse failure is logged
// but not surfaced, so a corrupted collection behaves like a fresh one.
func GetCollection[T any](ctx context.Context, s *Store, key string) ([]T, error) {
	raw, err := s.Load(ctx, key)
	if err != nil {
		return nil, errors.Wrapf(err, "load collection %v", key)
	}
	if raw == nil {
		return []T{}, nil
	}

	var items []T
	if err = json.Unmarshal(raw, &items); err != nil {
		log.Warnf("collection %v holds unparsable data, treating as empty: %v", key, err)
		return []T{}, nil
	}
	return items, nil
}

// SetCollection overwrites the whole stored sequence under key.
func SetCollection[T any](ctx context.Context, s *Store, key string, items []T) error {
	data, err := json.Marshal(items)
	if err != nil {
		return errors.Wrapf(err, "marshal collection %v", key)
	}
	return errors.Wrapf(s.Save(ctx, key, data), "save collection %v", key)
}

// GetRecord returns the singleton stored under key, or nil when the key is
// absent or unparsable.
func GetRecord[T any](ctx context.Context, s *Store, key string) (*T, error) {
	raw, err := s.Load(ctx, key)
	if err != nil {
		return nil, errors.Wrapf(err, "load record %v", key)
	}
	if raw == nil {
		return nil, nil
	}

	rec := new(T)
	if err = json.Unmarshal(raw, rec); err != nil {
		log.Warnf("record %v holds unparsable data, treating as absent: %v", key, err)
		return nil, nil
	}
	return rec, nil
}

// SetRecord overwrites the singleton under key; a nil value removes the key.
func SetRecord[T any](ctx context.Context, s *Store, key string, rec *T) error {
	if rec == nil {
		return errors.Wrapf(s.Remove(ctx, key), "remove record %v", key)
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return errors.Wrapf(err, "marshal record %v", key)
	}
	return errors.Wrapf(s.Save(ctx, key, data), "save record %v", key)
}
