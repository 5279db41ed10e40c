package bootstrap

import (
	"context"
	"log"

	"fx-backoffice-be/internal/config"
	"fx-backoffice-be/internal/controller"
	"fx-backoffice-be/internal/pkg/logger"
	"fx-backoffice-be/internal/pkg/mailer"
	"fx-backoffice-be/internal/pkg/serverutils"
	"fx-backoffice-be/internal/pricefeed"
	"fx-backoffice-be/internal/repository/unitofwork"
	"fx-backoffice-be/internal/service"
	"fx-backoffice-be/internal/websocket"
	"fx-backoffice-be/pkg/audit"
	pkgNats "fx-backoffice-be/pkg/nats"
	"fx-backoffice-be/pkg/metaapi"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController         controller.IAuthController
	AdminController        controller.IAdminController
	CustodyController      controller.ICustodyController
	SettingsController     controller.ISettingsController
	UserController         controller.IUserController
	KYCController          controller.IKYCController
	BannerController       controller.IBannerController
	PriceController        controller.IPriceController
	LogsController         controller.ILogsController
	NotificationController controller.INotificationController

	// Background services, main.go runs these
	ConsumerService service.IConsumerService
	PriceRelay      *pricefeed.Relay
	WebSocketHub    *websocket.Hub

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
		sysLogger,
	)

	// 2. Event bus
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermill.NewStdLogger(false, false),
	)
	publisher := service.NewEventPublisher(pubSub, sysLogger)

	// NATS audit stream is optional, a nil recorder is a no-op.
	var recorder *audit.Recorder
	if cfg.App.NatsURL != "" {
		natsPub, err := pkgNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS: %v", err)
		} else {
			recorder = audit.NewRecorder(natsPub, sysLogger)
		}
	}

	// Redis backs cross-instance websocket delivery, also optional.
	var rdb *redis.Client
	if cfg.App.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{Addr: cfg.App.RedisURL}
		}
		rdb = redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
	}

	// 3. Websocket hub
	wsLogger := logger.NewIsolatedLogger("logs/notification.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 4. Price feed
	metaClient := metaapi.NewClient(cfg.MetaAPI.BaseURL, cfg.MetaAPI.Token, cfg.MetaAPI.AccountID)
	relay := pricefeed.NewRelay(cfg.MetaAPI, metaClient, sysLogger)

	// 5. Services
	authService := service.NewAuthService(uowFactory, cfg.JWT)
	adminService := service.NewAdminService(uowFactory)
	custodyService := service.NewCustodyService(uowFactory, publisher, recorder)
	settingsService := service.NewSettingsService(uowFactory)
	userService := service.NewUserService(uowFactory, publisher, cfg.JWT)
	kycService := service.NewKYCService(uowFactory, publisher)
	bannerService := service.NewBannerService(uowFactory)

	notificationService := service.NewNotificationService(uowFactory)
	notificationService.SetDelivery(wsHub)

	consumerService := service.NewConsumerService(
		pubSub,
		uowFactory,
		emailService,
		notificationService,
		sysLogger,
	)

	// 6. Controllers
	auth := serverutils.NewAuthMiddleware(cfg.JWT.Secret, uowFactory)

	return &Container{
		AuthController:         controller.NewAuthController(authService, auth),
		AdminController:        controller.NewAdminController(adminService, auth),
		CustodyController:      controller.NewCustodyController(custodyService, auth),
		SettingsController:     controller.NewSettingsController(settingsService, auth),
		UserController:         controller.NewUserController(userService, auth),
		KYCController:          controller.NewKYCController(kycService, auth),
		BannerController:       controller.NewBannerController(bannerService, auth),
		PriceController:        controller.NewPriceController(relay),
		LogsController:         controller.NewLogsController(sysLogger, auth),
		NotificationController: controller.NewNotificationController(notificationService, wsHub, auth),

		ConsumerService: consumerService,
		PriceRelay:      relay,
		WebSocketHub:    wsHub,
		Logger:          sysLogger,
	}
}
