package app

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/stpnv0/LaundryLocker/internal/allocator"
	"github.com/stpnv0/LaundryLocker/internal/config"
	"github.com/stpnv0/LaundryLocker/internal/domain"
	"github.com/stpnv0/LaundryLocker/internal/handler"
	"github.com/stpnv0/LaundryLocker/internal/locker"
	"github.com/stpnv0/LaundryLocker/internal/machine"
	"github.com/stpnv0/LaundryLocker/internal/metrics"
	"github.com/stpnv0/LaundryLocker/internal/middleware"
	"github.com/stpnv0/LaundryLocker/internal/notification"
	"github.com/stpnv0/LaundryLocker/internal/repository"
	"github.com/stpnv0/LaundryLocker/internal/router"
	"github.com/stpnv0/LaundryLocker/internal/service"
	"github.com/stpnv0/LaundryLocker/internal/service/ports"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	redis      *redis.Client
	amqpConn   *amqp.Connection
	amqpCh     *amqp.Channel
	httpServer *http.Server
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"LaundryLocker",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if cfg.Storage.Driver == config.StorageDriverPostgres {
		if err = app.runMigrations(); err != nil {
			return nil, fmt.Errorf("migrations: %w", err)
		}

		if err = app.initDB(); err != nil {
			return nil, fmt.Errorf("init db: %w", err)
		}
	}

	if cfg.Notifier.EmailDriver == config.EmailDriverRabbitMQ {
		if err = app.initBroker(); err != nil {
			app.closeResources()
			return nil, fmt.Errorf("init broker: %w", err)
		}
	}

	if err = app.initServices(); err != nil {
		app.closeResources()
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	db.Master.SetConnMaxLifetime(a.cfg.Postgres.ConnMaxLifetime)

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initBroker() error {
	conn, err := amqp.Dial(a.cfg.RabbitMQ.URL)
	if err != nil {
		return fmt.Errorf("dial rabbitmq: %w", err)
	}
	a.amqpConn = conn

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("open rabbitmq channel: %w", err)
	}
	a.amqpCh = ch

	a.log.Info("rabbitmq connected", logger.String("queue", a.cfg.RabbitMQ.EmailQueue))
	return nil
}

func (a *App) initStore() ports.ReservationRepo {
	if a.cfg.Storage.Driver == config.StorageDriverMemory {
		a.log.Warn("using in-memory reservation store, data is lost on restart")
		return repository.NewMemoryRepo()
	}
	return repository.NewReservationRepo(a.db)
}

func (a *App) initLocker(ctx context.Context) (ports.ClaimLocker, error) {
	if a.cfg.Locker.Driver != config.LockerDriverRedis {
		return locker.NewLocal(), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     a.cfg.Redis.Addr,
		Password: a.cfg.Redis.Password,
		DB:       a.cfg.Redis.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	a.redis = client

	a.log.Info("redis connected", logger.String("addr", a.cfg.Redis.Addr))

	return locker.NewRedis(client, locker.RedisConfig{
		TTL:         a.cfg.Locker.TTL,
		WaitTimeout: a.cfg.Locker.WaitTimeout,
	}, a.log), nil
}

func (a *App) initNotifiers(templates *notification.Templates) (email, sms ports.Notifier, err error) {
	var telegram *notification.TelegramNotifier
	if a.cfg.Notifier.EmailDriver == config.EmailDriverTelegram || a.cfg.Notifier.SMSDriver == config.SMSDriverTelegram {
		telegram, err = notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.cfg.Telegram.ChatID, templates, a.log)
		if err != nil {
			return nil, nil, fmt.Errorf("init telegram notifier: %w", err)
		}
	}

	if a.cfg.Notifier.EmailDriver == config.EmailDriverTelegram {
		email = telegram
	} else {
		email, err = notification.NewQueueNotifier(a.amqpCh, a.cfg.RabbitMQ.EmailQueue, domain.ChannelEmail, templates, a.log)
		if err != nil {
			return nil, nil, fmt.Errorf("init email notifier: %w", err)
		}
	}

	if a.cfg.Notifier.SMSDriver == config.SMSDriverTelegram {
		sms = telegram
	} else {
		sms = notification.NewSMSGateway(a.cfg.SMS.URL, a.cfg.SMS.Token, a.cfg.SMS.Timeout, templates)
	}

	return email, sms, nil
}

func (a *App) initServices() error {
	m := metrics.New(prometheus.DefaultRegisterer)

	templates, err := notification.NewTemplates(map[domain.NotificationEvent]string{
		domain.EventConfirm:  a.cfg.Notifier.ConfirmTemplate,
		domain.EventResetPIN: a.cfg.Notifier.ResetTemplate,
	})
	if err != nil {
		return fmt.Errorf("init templates: %w", err)
	}

	email, sms, err := a.initNotifiers(templates)
	if err != nil {
		return err
	}

	claimLocker, err := a.initLocker(context.Background())
	if err != nil {
		return fmt.Errorf("init locker: %w", err)
	}

	alloc := allocator.New(allocator.Config{
		MachinesCount: a.cfg.Reservation.MachinesCount,
		PINDigits:     a.cfg.Reservation.PINDigits,
	}, rand.NewSource(time.Now().UnixNano()))

	gateway := machine.NewHTTPGateway(a.cfg.Machine.GatewayURL, &http.Client{Timeout: a.cfg.Machine.Timeout}, m)

	reservationService := service.NewReservationService(
		a.initStore(),
		alloc,
		gateway,
		email,
		sms,
		claimLocker,
		service.ReservationConfig{MaxFailedAttempts: a.cfg.Reservation.MaxFailedAttempts},
		m,
		a.log,
	)

	h := handler.NewHandler(reservationService)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		promhttp.Handler(),
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		a.closeResources()
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	a.closeResources()

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

// closeResources releases whatever New managed to open. Safe to call on a partially built App.
func (a *App) closeResources() {
	if a.amqpCh != nil {
		if err := a.amqpCh.Close(); err != nil {
			a.log.Warn("close rabbitmq channel", logger.String("error", err.Error()))
		}
	}
	if a.amqpConn != nil {
		if err := a.amqpConn.Close(); err != nil {
			a.log.Warn("close rabbitmq connection", logger.String("error", err.Error()))
		}
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.log.Warn("close redis", logger.String("error", err.Error()))
		}
	}
	if a.db != nil {
		if err := a.db.Master.Close(); err != nil {
			a.log.Warn("close db", logger.String("error", err.Error()))
		} else {
			a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")
		}
	}
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
