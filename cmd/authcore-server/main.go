// Command authcore-server runs the authentication HTTP API.
//
// Configuration comes from the environment:
//
//	AUTHCORE_ADDR        listen address (default ":8080")
//	AUTHCORE_JWT_SECRET  token signing secret (required, min 16 bytes)
//	AUTHCORE_TOKEN_TTL   session token lifetime (default "100h")
//	AUTHCORE_REDIS_ADDR  redis address; empty starts an embedded miniredis
//	                     suitable for local development only
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/caarlos0/env/v11"
	"github.com/redis/go-redis/v9"

	"github.com/devgrid/authcore"
	"github.com/devgrid/authcore/httpapi"
)

type serverEnv struct {
	Addr      string        `env:"AUTHCORE_ADDR" envDefault:":8080"`
	JWTSecret string        `env:"AUTHCORE_JWT_SECRET,required"`
	TokenTTL  time.Duration `env:"AUTHCORE_TOKEN_TTL" envDefault:"100h"`
	RedisAddr string        `env:"AUTHCORE_REDIS_ADDR"`
}

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if err := run(log); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(log *slog.Logger) error {
	var cfg serverEnv
	if err := env.Parse(&cfg); err != nil {
		return err
	}

	redisAddr := cfg.RedisAddr
	if redisAddr == "" {
		mr, err := miniredis.Run()
		if err != nil {
			return err
		}
		defer mr.Close()
		redisAddr = mr.Addr()
		log.Warn("no redis configured, using embedded in-process store", "addr", redisAddr)
	}

	client := redis.NewClient(&redis.Options{Addr: redisAddr})
	defer func() { _ = client.Close() }()

	engineCfg := authcore.DefaultConfig()
	engineCfg.Token.Secret = []byte(cfg.JWTSecret)
	engineCfg.Token.TTL = cfg.TokenTTL

	engine, err := authcore.New().
		WithConfig(engineCfg).
		WithRedis(client).
		WithAuditSink(authcore.NewJSONWriterSink(os.Stdout)).
		Build()
	if err != nil {
		return err
	}
	defer engine.Close()

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           httpapi.NewHandler(engine),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", "addr", cfg.Addr, "token_ttl", cfg.TokenTTL.String())
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		log.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
