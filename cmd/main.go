package main

import (
	"context"
	"os/signal"
	"syscall"

	"detailing-platform/internal/config"
	"detailing-platform/internal/logger"
	"detailing-platform/internal/metrics"
	"detailing-platform/internal/repositories"
	"detailing-platform/internal/seed"
	"detailing-platform/internal/storage"

	"github.com/asaskevich/EventBus"
	log "github.com/sirupsen/logrus"
)

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Get()

	logger.Setup(cfg.Logger)
	defer logger.Cleanup()

	if cfg.Metrics.Enabled {
		metrics.StartMetricsServer(cfg.Metrics.Port)
	}

	store, err := storage.NewStore(cfg.DB.ConnectionString)
	if err != nil {
		log.Fatalf("can't open store: %v", err)
	}
	defer store.Close()

	if err = store.Migrate(); err != nil {
		log.Fatalf("can't migrate store: %v", err)
	}

	if cfg.Seed.Enabled {
		if err = seed.Initialize(ctx, store); err != nil {
			log.WithField(logger.ErrorTypeField, logger.ErrorTypeSeed).Fatalf("can't seed store: %v", err)
		}
	}

	bus := EventBus.New()

	users := repositories.NewUsersRepository(store)
	if err = users.SubscribeTo(bus); err != nil {
		log.Fatalf("can't subscribe user event handlers: %v", err)
	}

	cachedUsers := repositories.NewCachedUsers(users)
	vacancies := repositories.NewVacanciesRepository(store, cachedUsers)
	gigs := repositories.NewGigsRepository(store)
	orders := repositories.NewOrdersRepository(store)
	purchases := repositories.NewPurchasesRepository(store)
	training := repositories.NewTrainingRepository(store, bus)

	logSummary(ctx, vacancies, gigs, orders, purchases, training, users)
}

func logSummary(ctx context.Context, vacancies *repositories.Vacancies, gigs *repositories.Gigs,
	orders *repositories.Orders, purchases *repositories.Purchases,
	training *repositories.Training, users *repositories.Users) {

	activeVacancies, err := vacancies.GetAll(ctx)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Fatalf("can't read vacancies: %v", err)
	}
	activeGigs, err := gigs.GetAll(ctx)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Fatalf("can't read gigs: %v", err)
	}
	activeOrders, err := orders.GetActive(ctx)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Fatalf("can't read orders: %v", err)
	}
	activePurchases, err := purchases.GetActive(ctx)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Fatalf("can't read purchases: %v", err)
	}
	allGraduates, err := training.GetAllGraduates(ctx)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Fatalf("can't read enrollments: %v", err)
	}
	current, err := users.CurrentUser(ctx)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Fatalf("can't read session: %v", err)
	}

	session := "nobody"
	if current != nil {
		session = current.Email
	}

	log.Infof("store ready: %v active vacancies, %v active gigs, %v active orders, %v running purchases, %v graduates, session: %v",
		len(activeVacancies), len(activeGigs), len(activeOrders), len(activePurchases), len(allGraduates), session)
}
