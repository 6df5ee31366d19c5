package repositories

import (
	"context"
	"time"

	"detailing-platform/internal/entities"

	gocache "github.com/patrickmn/go-cache"
)

type userLookup interface {
	GetUser(ctx context.Context, id string) (*entities.User, error)
}

// CachedUsers is a read-through cache over user lookups. Profile edits are
// rare compared to reads, so a short TTL is enough; callers that need the
// freshest record (login, profile updates) go to the Users repository
// directly.
type CachedUsers struct {
	repo  userLookup
	cache *gocache.Cache
}

func NewCachedUsers(repo userLookup) *CachedUsers {
	return &CachedUsers{repo: repo, cache: gocache.New(5*time.Minute, 10*time.Minute)}
}

func (c *CachedUsers) GetUser(ctx context.Context, id string) (*entities.User, error) {
	if value, found := c.cache.Get(id); found {
		user := value.(entities.User)
		return &user, nil
	}

	user, err := c.repo.GetUser(ctx, id)
	if user != nil {
		if err = c.cache.Add(id, *user, gocache.DefaultExpiration); err != nil {
			return user, err
		}
	}

	return user, err
}
