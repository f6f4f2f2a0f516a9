package main

import (
	"context"
	"log"

	"phoenix-booking-service/config"
	bookingHandler "phoenix-booking-service/internal/module/booking/handler"
	bookingRepositories "phoenix-booking-service/internal/module/booking/repositories"
	bookingUsecases "phoenix-booking-service/internal/module/booking/usecases"
	maintenanceHandler "phoenix-booking-service/internal/module/maintenance/handler"
	maintenanceRepositories "phoenix-booking-service/internal/module/maintenance/repositories"
	maintenanceUsecases "phoenix-booking-service/internal/module/maintenance/usecases"
	waitlistHandler "phoenix-booking-service/internal/module/waitlist/handler"
	waitlistRepositories "phoenix-booking-service/internal/module/waitlist/repositories"
	waitlistUsecases "phoenix-booking-service/internal/module/waitlist/usecases"
	"phoenix-booking-service/internal/pkg/database"
	"phoenix-booking-service/internal/pkg/http"
	"phoenix-booking-service/internal/pkg/httpclient"
	"phoenix-booking-service/internal/pkg/lock"
	log_internal "phoenix-booking-service/internal/pkg/log"
	"phoenix-booking-service/internal/pkg/messagestream"
	"phoenix-booking-service/internal/pkg/middleware"
	"phoenix-booking-service/internal/pkg/notification"
	"phoenix-booking-service/internal/pkg/redis"
	"phoenix-booking-service/internal/pkg/scheduler"
	router "phoenix-booking-service/internal/route"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/casbin/casbin"
	"github.com/go-playground/validator/v10"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v82"
)

func main() {
	cfg := config.InitConfig()

	app, messageRouters, startTasks := initService(cfg)

	for _, router := range messageRouters {
		ctx := context.Background()
		go func(router *message.Router) {
			err := router.Run(ctx)
			if err != nil {
				log.Fatal(err)
			}
		}(router)
	}

	go startTasks()

	// start http server
	http.StartHttpServer(app, cfg.HttpServer.Port, cfg.HttpServer.ShutdownPeriod)
}

func initService(cfg *config.Config) (*fiber.App, []*message.Router, func()) {
	// init logger
	logZap := log_internal.SetupLogger()
	log_internal.Init(logZap)
	logger := log_internal.GetLogger()

	ctx := context.Background()

	// init database
	db := database.GetConnection(&cfg.Database)
	if err := database.Migrate(ctx, db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}
	// init redis
	redisClient := redis.SetupClient(&cfg.Redis)
	// init http client
	cb := httpclient.InitCircuitBreaker(&cfg.HttpClient, cfg.HttpClient.Type)
	httpClient := httpclient.InitHttpClient(&cfg.HttpClient, cb)

	// init message stream
	watermillLogger := log_internal.NewWatermillAdapter(logZap)
	amqp := messagestream.NewAmpq(&cfg.MessageStream, watermillLogger)

	// Init Subscriber
	subscriber, err := amqp.NewSubscriber()
	if err != nil {
		logger.Error(ctx, "Failed to create subscriber", err)
	}

	// Init Publisher
	publisher, err := amqp.NewPublisher()
	if err != nil {
		log.Fatalf("failed to create publisher: %v", err)
	}

	// init scheduler
	sch := scheduler.Scheduler{Log: logger}
	asynqClient := sch.InitClient(&cfg.Redis)

	// init capacity lock
	locker := lock.NewNoopLocker()
	if cfg.Lock.Enabled {
		locker = lock.NewRedisLocker(goredis.NewPool(redisClient), &cfg.Lock, logger)
	}

	// init rbac
	enforcer, err := casbin.NewEnforcerSafe(cfg.Auth.ModelPath, cfg.Auth.PolicyPath)
	if err != nil {
		log.Fatalf("failed to load rbac policy: %v", err)
	}

	var stripeClient *stripe.Client
	if cfg.Stripe.APIKey != "" {
		stripeClient = stripe.NewClient(cfg.Stripe.APIKey)
	}

	notifier := notification.NewPublisherSink(publisher, cfg.MessageStream.NotificationTopic, cfg.MessageStream.PublishTimeout)

	maintenanceRepo := maintenanceRepositories.New(db, logger, asynqClient)
	maintenanceUsecase := maintenanceUsecases.New(maintenanceRepo, logger)

	waitlistRepo := waitlistRepositories.New(db, logger)
	waitlistUsecase := waitlistUsecases.New(waitlistRepo, logger, notifier)

	bookingRepo := bookingRepositories.New(db, logger, httpClient, asynqClient, stripeClient, &cfg.Services, &cfg.Cache)
	bookingUsecase := bookingUsecases.New(bookingRepo, maintenanceUsecase, waitlistUsecase, notifier, locker, logger, bookingUsecases.Options{
		LoyaltyMultiplier: cfg.Loyalty.PointsPerCurrency,
		WakeLimit:         cfg.Waitlist.WakeLimit,
		Currency:          cfg.Stripe.Currency,
		PaymentsEnabled:   stripeClient != nil,
	})

	middleware := middleware.Middleware{
		Log:      logZap,
		Repo:     bookingRepo,
		Enforcer: enforcer,
	}

	validator := validator.New()
	handlerBooking := bookingHandler.BookingHandler{
		Log:       logZap,
		Validator: validator,
		Usecase:   bookingUsecase,
	}
	handlerWaitlist := waitlistHandler.WaitlistHandler{
		Log:       logZap,
		Validator: validator,
		Usecase:   waitlistUsecase,
	}
	handlerMaintenance := maintenanceHandler.MaintenanceHandler{
		Log:       logZap,
		Validator: validator,
		Usecase:   maintenanceUsecase,
	}

	var messageRouters []*message.Router

	consumeCancellationRouter, err := messagestream.NewRouter(publisher, cfg.MessageStream.CancellationPoisonTopic, "booking_cancellation_handler", cfg.MessageStream.CancellationTopic, subscriber, handlerBooking.ConsumeCancellationQueue, watermillLogger)
	if err != nil {
		logger.Error(ctx, "Failed to create booking_cancellation router", err)
	} else {
		messageRouters = append(messageRouters, consumeCancellationRouter)
	}

	startTasks := func() {
		if cfg.Scheduler.Monitoring {
			go sch.StartMonitoring(&cfg.Redis, cfg.Scheduler.MonitoringPort)
		}
		sch.StartHandler(&cfg.Redis, cfg.Scheduler.Concurrency,
			[]string{scheduler.TypeAwardLoyaltyPoints, scheduler.TypeMaintenanceStart, scheduler.TypeMaintenanceComplete},
			[]func(ctx context.Context, t *asynq.Task) error{handlerBooking.AwardLoyaltyPoints, handlerMaintenance.TransitionMaintenance, handlerMaintenance.TransitionMaintenance},
		)
	}

	serverHttp := http.SetupHttpEngine(&cfg.HttpServer)

	r := router.Initialize(serverHttp, &handlerBooking, &handlerWaitlist, &handlerMaintenance, &middleware)

	return r, messageRouters, startTasks

}
