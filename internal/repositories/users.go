package repositories

import (
	"context"
	"time"

	"detailing-platform/internal/entities"
	"detailing-platform/internal/events"
	"detailing-platform/internal/metrics"
	"detailing-platform/internal/storage"

	"github.com/asaskevich/EventBus"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
)

// Users owns the account collection and the current-session singleton.
// It is the only repository other repositories read from, and the only
// writer of user records: the cross-entity effects of reviews and
// certifications arrive here as domain events.
type Users struct {
	store    *storage.Store
	validate *validator.Validate
}

func NewUsersRepository(store *storage.Store) *Users {
	return &Users{store: store, validate: validator.New()}
}

// SubscribeTo registers the event handlers that apply review aggregates and
// granted certifications to user records.
func (r *Users) SubscribeTo(bus EventBus.Bus) error {
	if err := bus.Subscribe(events.ReviewRecordedTopic, r.handleReviewRecorded); err != nil {
		return err
	}
	return bus.Subscribe(events.CertificationGrantedTopic, r.handleCertificationGranted)
}

type registerChecks struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
	Role     string `validate:"required,oneof=employer specialist client supplier"`
}

// Register stores a new account and makes it the current session.
// The caller provides the full record; id, creation time, verification
// flag, rating aggregates and favorites are assigned here.
func (r *Users) Register(ctx context.Context, user entities.User) (*entities.User, error) {
	metrics.RepositoryCalls.WithLabelValues("users", "register").Inc()

	checks := registerChecks{Email: user.Email, Password: user.Password, Role: string(user.Role)}
	if err := r.validate.Struct(checks); err != nil {
		return nil, err
	}

	users, err := storage.GetCollection[entities.User](ctx, r.store, storage.KeyUsers)
	if err != nil {
		return nil, err
	}

	for _, existing := range users {
		if existing.Email == user.Email {
			return nil, ErrDuplicateEmail
		}
	}
	if user.Role == entities.RoleEmployer && user.INN != "" {
		for _, existing := range users {
			if existing.INN == user.INN {
				return nil, ErrDuplicateTaxID
			}
		}
	}
	if user.Role == entities.RoleEmployer && user.Address != "" {
		for _, existing := range users {
			if existing.Role == entities.RoleEmployer && existing.Address == user.Address {
				return nil, ErrDuplicateAddress
			}
		}
	}

	user.ID = entities.NewID()
	user.CreatedAt = time.Now().UTC()
	user.IsVerified = user.Role == entities.RoleClient
	user.Rating = 0
	user.ReviewCount = 0
	user.Favorites = []string{}

	if err = storage.SetCollection(ctx, r.store, storage.KeyUsers, append(users, user)); err != nil {
		return nil, err
	}
	if err = storage.SetRecord(ctx, r.store, storage.KeyCurrentUser, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login checks credentials by exact match and makes the matching account
// the current session. Employers with a lapsed subscription are rejected;
// the expiry is only ever checked here, there is no background sweep.
func (r *Users) Login(ctx context.Context, email, password string) (*entities.User, error) {
	metrics.RepositoryCalls.WithLabelValues("users", "login").Inc()

	users, err := storage.GetCollection[entities.User](ctx, r.store, storage.KeyUsers)
	if err != nil {
		return nil, err
	}

	user, found := lo.Find(users, func(u entities.User) bool {
		return u.Email == email && u.Password == password
	})
	if !found {
		return nil, ErrInvalidCredentials
	}

	if user.Role == entities.RoleEmployer && user.SubscriptionExpiry != "" {
		if expiry, ok := parseExpiry(user.SubscriptionExpiry); ok && expiry.Before(time.Now()) {
			return nil, ErrSubscriptionExpired
		}
	}

	if err = storage.SetRecord(ctx, r.store, storage.KeyCurrentUser, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Users) Logout(ctx context.Context) error {
	return storage.SetRecord[entities.User](ctx, r.store, storage.KeyCurrentUser, nil)
}

// CurrentUser returns the session account, or nil when nobody is logged in.
func (r *Users) CurrentUser(ctx context.Context) (*entities.User, error) {
	return storage.GetRecord[entities.User](ctx, r.store, storage.KeyCurrentUser)
}

// UpdateProfile applies a partial mutation to the stored user record and,
// when that record is the session user, refreshes the session copy too.
func (r *Users) UpdateProfile(ctx context.Context, userID string, mutate func(*entities.User)) (*entities.User, error) {
	metrics.RepositoryCalls.WithLabelValues("users", "update_profile").Inc()

	users, err := storage.GetCollection[entities.User](ctx, r.store, storage.KeyUsers)
	if err != nil {
		return nil, err
	}

	_, idx, found := lo.FindIndexOf(users, func(u entities.User) bool { return u.ID == userID })
	if !found {
		return nil, ErrUserNotFound
	}

	mutate(&users[idx])
	users[idx].ID = userID

	if err = storage.SetCollection(ctx, r.store, storage.KeyUsers, users); err != nil {
		return nil, err
	}
	if err = r.refreshSession(ctx, users[idx]); err != nil {
		return nil, err
	}
	return &users[idx], nil
}

func (r *Users) GetUser(ctx context.Context, id string) (*entities.User, error) {
	users, err := storage.GetCollection[entities.User](ctx, r.store, storage.KeyUsers)
	if err != nil {
		return nil, err
	}
	if user, found := lo.Find(users, func(u entities.User) bool { return u.ID == id }); found {
		return &user, nil
	}
	return nil, nil
}

func (r *Users) GetUsersByRole(ctx context.Context, role entities.UserRole) ([]entities.User, error) {
	users, err := storage.GetCollection[entities.User](ctx, r.store, storage.KeyUsers)
	if err != nil {
		return nil, err
	}
	return lo.Filter(users, func(u entities.User, _ int) bool { return u.Role == role }), nil
}

// ToggleFavorite flips targetID's membership in the user's favorites set.
// The target is not checked for existence; an unknown userID is a no-op.
func (r *Users) ToggleFavorite(ctx context.Context, userID, targetID string) error {
	metrics.RepositoryCalls.WithLabelValues("users", "toggle_favorite").Inc()

	users, err := storage.GetCollection[entities.User](ctx, r.store, storage.KeyUsers)
	if err != nil {
		return err
	}

	for i := range users {
		if users[i].ID != userID {
			continue
		}
		if lo.Contains(users[i].Favorites, targetID) {
			users[i].Favorites = lo.Without(users[i].Favorites, targetID)
		} else {
			users[i].Favorites = append(users[i].Favorites, targetID)
		}
		if err = storage.SetCollection(ctx, r.store, storage.KeyUsers, users); err != nil {
			return err
		}
		return r.refreshSession(ctx, users[i])
	}
	return nil
}

func (r *Users) refreshSession(ctx context.Context, user entities.User) error {
	current, err := r.CurrentUser(ctx)
	if err != nil {
		return err
	}
	if current == nil || current.ID != user.ID {
		return nil
	}
	return storage.SetRecord(ctx, r.store, storage.KeyCurrentUser, &user)
}

func (r *Users) handleReviewRecorded(event events.ReviewRecorded) {
	_, err := r.UpdateProfile(context.Background(), event.TargetID, func(u *entities.User) {
		u.Rating = event.Rating
		u.ReviewCount = event.ReviewCount
	})
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		log.Errorf("couldn't apply review aggregate to user %v: %v", event.TargetID, err)
	}
}

func (r *Users) handleCertificationGranted(event events.CertificationGranted) {
	_, err := r.UpdateProfile(context.Background(), event.UserID, func(u *entities.User) {
		u.IsCertified = true
		u.CertificateNumber = event.CertificateNumber
	})
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		log.Errorf("couldn't mark user %v as certified: %v", event.UserID, err)
	}
}

// parseExpiry accepts both full timestamps and bare dates; anything else is
// treated as "no expiry set".
func parseExpiry(value string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, true
	}
	return time.Time{}, false
}
