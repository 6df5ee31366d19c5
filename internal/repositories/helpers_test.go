package repositories

import (
	"context"
	"path/filepath"
	"testing"

	"detailing-platform/internal/entities"
	"detailing-platform/internal/storage"

	"github.com/asaskevich/EventBus"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *storage.Store {
	t.Helper()

	store, err := storage.NewStore(filepath.Join(t.TempDir(), "platform.db"))
	require.NoError(t, err)
	require.NoError(t, store.Migrate())
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

// newTestUsers wires a Users repository with its event subscriptions, the
// same way the entrypoint does.
func newTestUsers(t *testing.T, store *storage.Store) (*Users, EventBus.Bus) {
	t.Helper()

	bus := EventBus.New()
	users := NewUsersRepository(store)
	require.NoError(t, users.SubscribeTo(bus))
	return users, bus
}

func registerEmployer(t *testing.T, users *Users, email, inn, address string) *entities.User {
	t.Helper()

	user, err := users.Register(context.Background(), entities.User{
		Role:     entities.RoleEmployer,
		Email:    email,
		Password: "123456",
		Name:     "Test Employer",
		City:     "Moscow",
		INN:      inn,
		Address:  address,
	})
	require.NoError(t, err)
	return user
}

func registerSpecialist(t *testing.T, users *Users, email string) *entities.User {
	t.Helper()

	user, err := users.Register(context.Background(), entities.User{
		Role:     entities.RoleSpecialist,
		Email:    email,
		Password: "123456",
		Name:     "Test Specialist",
		City:     "Moscow",
	})
	require.NoError(t, err)
	return user
}
