package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/portal-b2b/internal/application/analytics"
	"github.com/jhoicas/portal-b2b/internal/application/auth"
	"github.com/jhoicas/portal-b2b/internal/application/ordering"
	"github.com/jhoicas/portal-b2b/internal/application/ports"
	"github.com/jhoicas/portal-b2b/internal/application/session"
	"github.com/jhoicas/portal-b2b/internal/application/usecase"
	"github.com/jhoicas/portal-b2b/internal/domain/order"
	"github.com/jhoicas/portal-b2b/internal/domain/repository"
	"github.com/jhoicas/portal-b2b/internal/infrastructure/cache"
	"github.com/jhoicas/portal-b2b/internal/infrastructure/cnpj"
	"github.com/jhoicas/portal-b2b/internal/infrastructure/erp"
	"github.com/jhoicas/portal-b2b/internal/infrastructure/mail"
	"github.com/jhoicas/portal-b2b/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/portal-b2b/internal/infrastructure/pdf"
	"github.com/jhoicas/portal-b2b/internal/infrastructure/postgres"
	"github.com/jhoicas/portal-b2b/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/portal-b2b/internal/interfaces/http"
	"github.com/jhoicas/portal-b2b/pkg/config"
	"github.com/jhoicas/portal-b2b/pkg/logger"
)

// kvStores stores de chave-valor: Redis quando configurado, memória caso contrário.
type kvStores struct {
	carts     repository.CartStore
	idem      ports.IdempotencyStore
	blacklist ports.TokenBlacklist
	resets    ports.ResetTokenStore
	profiles  ports.ProfileCache
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: os.Getenv("LOG_LEVEL"),
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("order_policy", cfg.Orders.StatusPolicy).
		Msg("iniciando aplicação")

	ctx := context.Background()

	if cfg.App.AutoMigrate {
		migrator, err := postgres.NewMigrator(cfg.DB.ConnectionString(), log.Component("migrate"))
		if err != nil {
			log.Fatal().Err(err).Msg("preparar migrações")
		}
		if err := migrator.Up(); err != nil {
			log.Fatal().Err(err).Msg("aplicar migrações")
		}
		_ = migrator.Close()
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão com PostgreSQL")
	}
	defer pool.Close()

	health := map[string]httpRouter.HealthCheck{"postgres": pool.Ping}

	var kv kvStores
	if cfg.Redis.Enabled() {
		rdb, err := cache.NewClient(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("conexão com Redis")
		}
		defer rdb.Close()
		health["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
		kv = kvStores{
			carts:     cache.NewCartStore(rdb, log),
			idem:      cache.NewIdempotencyStore(rdb),
			blacklist: cache.NewTokenBlacklist(rdb),
			resets:    cache.NewResetTokenStore(rdb),
			profiles:  cache.NewProfileCache(rdb),
		}
	} else {
		log.Warn().Msg("REDIS_ADDR vazio: carrinhos, sessões e idempotência ficam em memória")
		kv = kvStores{
			carts:     memory.NewCartStore(log),
			idem:      memory.NewIdempotencyStore(),
			blacklist: memory.NewTokenBlacklist(),
			resets:    memory.NewResetTokenStore(),
			profiles:  memory.NewProfileCache(),
		}
	}

	userRepo := postgres.NewUserRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	var mailer ports.Mailer = mail.NewLogMailer(log)
	if cfg.SMTP.Enabled() {
		mailer = mail.NewSMTPMailer(cfg.SMTP, log)
	}

	// Upload de imagens só com bucket configurado
	var blobs ports.BlobStorage
	if cfg.S3.Enabled() {
		s3Storage, err := storage.NewS3Storage(ctx, cfg.S3, log)
		if err != nil {
			log.Fatal().Err(err).Msg("cliente S3")
		}
		blobs = s3Storage
	} else {
		log.Warn().Msg("S3_BUCKET vazio: upload de imagens desabilitado")
	}

	sessions := session.NewService(userRepo, kv.profiles, kv.blacklist, cfg.JWT.Secret, log)
	authUC := auth.NewAuthUseCase(auth.Deps{
		Users:     userRepo,
		Sessions:  sessions,
		Blacklist: kv.blacklist,
		Resets:    kv.resets,
		Mailer:    mailer,
		JWT: auth.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		},
		BaseURL: cfg.App.BaseURL,
		Log:     log,
	})

	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.App.Name, cfg.App.BaseURL)
	erpClient := erp.NewGestaoClick(cfg.ERP, log)

	cartUC := ordering.NewCartUseCase(kv.carts, productRepo, log)
	checkoutUC := ordering.NewCheckoutUseCase(kv.carts, orderRepo, clientRepo, kv.idem, erpClient, log)
	orderUC := ordering.NewOrderUseCase(orderRepo, txRunner, clientRepo, pdfGenerator, order.ParsePolicy(cfg.Orders.StatusPolicy), log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    25 << 20, // uploads de imagens
		ErrorHandler: httpRouter.FiberErrorHandler,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Portal B2B API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		Sessions:    sessions,
		AuthUC:      authUC,
		ProfileUC:   usecase.NewProfileUseCase(userRepo, sessions, time.Duration(cfg.JWT.RecentLoginMinutes)*time.Minute),
		CartUC:      cartUC,
		CheckoutUC:  checkoutUC,
		OrderUC:     orderUC,
		ClientUC:    usecase.NewClientUseCase(clientRepo, txRunner, sessions, cnpj.NewLookup(cfg.CNPJ, log), authUC, log),
		ProductUC:   usecase.NewProductUseCase(productRepo, categoryRepo, blobs, log),
		CategoryUC:  usecase.NewCategoryUseCase(categoryRepo),
		SettingsUC:  usecase.NewSettingsUseCase(settingsRepo),
		UserUC:      usecase.NewUserUseCase(userRepo, sessions, log),
		DashboardUC: analytics.NewDashboardUseCase(userRepo, orderRepo),
		ReportUC:    analytics.NewReportUseCase(orderRepo),
		Health:      health,
	})

	go func() {
		addr := cfg.HTTP.Addr()
		log.Info().Str("addr", addr).Msg("servidor HTTP escutando")
		if err := app.Listen(addr); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("encerrando servidor...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown do servidor")
	}
	log.Info().Msg("servidor encerrado")
}
