package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ariefcatur/go-food-orders/internal/auth"
	"github.com/ariefcatur/go-food-orders/internal/config"
	"github.com/ariefcatur/go-food-orders/internal/httpx"
	kafkax "github.com/ariefcatur/go-food-orders/internal/kafka"
	"github.com/ariefcatur/go-food-orders/internal/logging"
	"github.com/ariefcatur/go-food-orders/internal/media"
	"github.com/ariefcatur/go-food-orders/internal/postgres"
	"github.com/ariefcatur/go-food-orders/internal/redisx"
	"github.com/ariefcatur/go-food-orders/internal/shop"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.New("info").WithError(err).Fatal("config")
	}
	log := logging.New(cfg.LogLevel).WithField("service", cfg.ServiceName)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// DB
	db, err := postgres.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		log.WithError(err).Fatal("db connect")
	}
	defer db.Close()

	// Redis (session store)
	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	// Object storage
	store, err := media.NewMinioStore(cfg.Storage.Endpoint, cfg.Storage.AccessKey, cfg.Storage.SecretKey,
		cfg.Storage.Bucket, cfg.Storage.PublicURL, cfg.Storage.UseSSL)
	if err != nil {
		log.WithError(err).Fatal("storage client")
	}
	if err := store.EnsureBucket(ctx); err != nil {
		// upload akan gagal per request, API lain tetap jalan
		log.WithError(err).Warn("storage bucket not ready")
	}
	mgr := &media.Manager{Store: store, Log: log}

	// Change feed (opsional)
	var (
		feed *httpx.ChangeFeed
		prod *kafkax.Producer
	)
	if len(cfg.KafkaBrokers) > 0 {
		prod = kafkax.NewProducer(cfg.KafkaBrokers, cfg.ChangeTopic, 1024, log)
		prod.Start(ctx)
		feed = &httpx.ChangeFeed{Pub: prod, Service: cfg.ServiceName}
	} else {
		log.Info("KAFKA_BROKERS kosong, change feed dimatikan")
	}

	// Repo & handler
	users := &shop.UserRepo{DB: db}
	accounts := &auth.Service{Users: users, Redis: rdb, TTL: cfg.SessionTTL, Log: log}
	guard := &httpx.Guard{Sessions: accounts, Roles: users, Log: log}

	router := httpx.NewRouter(log, cfg.CORSOrigins)
	httpx.MountAPI(router, guard,
		&httpx.AuthHandler{Accounts: accounts, Users: users, CookieSecure: cfg.CookieSecure, Log: log},
		&httpx.ProductsHandler{Repo: &shop.ProductRepo{DB: db}, Media: mgr, Feed: feed},
		&httpx.UsersHandler{Repo: users, Media: mgr, Feed: feed},
		&httpx.PesananHandler{Repo: &shop.PesananRepo{DB: db}, Feed: feed},
		&httpx.ReviewsHandler{Repo: &shop.ReviewRepo{DB: db}, Feed: feed},
		&httpx.OrdersHandler{Repo: &shop.OrderItemRepo{DB: db}, Feed: feed},
		&httpx.CartsHandler{Repo: &shop.CartRepo{DB: db}, Feed: feed},
	)

	// HTTP server
	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router, ReadHeaderTimeout: 10 * time.Second}

	// graceful shutdown
	go func() {
		log.WithField("addr", cfg.HTTPAddr).Info("HTTP listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("listen")
		}
	}()

	// wait signal
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Info("shutting down...")

	ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	_ = srv.Shutdown(ctx2)
	if prod != nil {
		prod.Close()      // tutup inbox -> flush & close writer
		cancel()          // stop producer loop
		prod.WaitClosed() // drain
	}
}
