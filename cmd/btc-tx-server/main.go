package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"

	"github.com/harshaaaaaaaaaa/btc-tx-visualizer/internal/metrics"
	"github.com/harshaaaaaaaaaa/btc-tx-visualizer/internal/transport"
)

var config struct {
	Addr      string `long:"addr" env:"BTC_TX_SERVER_ADDR" description:"listen addr" default:":8080"`
	RateLimit int    `long:"rate-limit" env:"BTC_TX_SERVER_RATE_LIMIT" description:"max decode requests per second" default:"100"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&config, os.Args[1:]); err != nil {
		if flags.WroteHelp(err) {
			return
		}
		logger.Fatal("Failed to parse arguments", zap.Error(err))
	}

	mux := http.NewServeMux()
	transport.NewDecodeHandler(logger, metrics.NewDecodeService()).Register(mux)
	mux.Handle("/metrics", promhttp.Handler())

	limiter := ratelimit.New(config.RateLimit)
	handler := cors.Default().Handler(rateLimited(limiter, mux))

	s := &http.Server{
		Addr:              config.Addr,
		Handler:           handler,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		if err := s.Shutdown(context.Background()); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server", zap.String("addr", config.Addr))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Failed to listen and serve", zap.Error(err))
	}
}

// rateLimited blocks each request on the leaky-bucket limiter before
// passing it through.
func rateLimited(limiter ratelimit.Limiter, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limiter.Take()
		next.ServeHTTP(w, r)
	})
}
