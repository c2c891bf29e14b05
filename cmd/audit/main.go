package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ariefcatur/go-food-orders/internal/audit"
	"github.com/ariefcatur/go-food-orders/internal/config"
	kafkax "github.com/ariefcatur/go-food-orders/internal/kafka"
	"github.com/ariefcatur/go-food-orders/internal/logging"
	"github.com/ariefcatur/go-food-orders/internal/redisx"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.New("info").WithError(err).Fatal("config")
	}
	name := cfg.ServiceName + "-audit"
	log := logging.New(cfg.LogLevel).WithField("service", name)
	if len(cfg.KafkaBrokers) == 0 {
		log.Fatal("KAFKA_BROKERS wajib diisi untuk audit consumer")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Redis
	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	// Service
	svc := &audit.Service{Redis: rdb, Log: log, ServiceName: name}

	// Consumer
	cons := kafkax.NewConsumer(cfg.KafkaBrokers, cfg.AuditGroup, cfg.ChangeTopic, cfg.AuditWorkers, log)

	done := make(chan struct{})
	go func() {
		defer close(done)
		log.WithFields(logrus.Fields{
			"group":   cfg.AuditGroup,
			"topic":   cfg.ChangeTopic,
			"workers": cfg.AuditWorkers,
		}).Info("audit consumer started")
		if err := cons.Start(ctx, svc.HandleChange); err != nil {
			log.WithError(err).Error("consumer exit")
			cancel()
		}
	}()

	// graceful shutdown
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sig:
	case <-ctx.Done():
	}
	log.Info("shutting down consumer...")
	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		log.Warn("consumer did not stop in time")
	}
	if counts, err := svc.Counts(context.Background()); err == nil {
		log.WithField("counts", counts).Info("audit totals")
	}
}
